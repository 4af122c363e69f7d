// =============================================================================
// Huronalytics Site Builder - League Configuration
// =============================================================================
//
// Static league data: the team table, the accordion section layout, and the
// category sets that drive feed eligibility, column skipping, and column
// pairing. These tables define externally visible behavior of the generated
// site, so they are compiled in rather than loaded from configuration, and
// exposed only through read-only lookups.
//
// =============================================================================

package league

import "sort"

// Team holds the display names for one organization.
type Team struct {
	// Name is the full display name, e.g. "Boston Red Sox".
	Name string

	// Short is the grid label, e.g. "Red Sox".
	Short string
}

// Section is one collapsible display group on a team page. A section covers
// one or more sheet categories; when Subheaders is set and more than one
// category is covered, each category renders as its own titled sub-list.
type Section struct {
	Title      string
	Categories []string
	Subheaders bool
}

var teams = map[string]Team{
	"ARI": {Name: "Arizona Diamondbacks", Short: "Diamondbacks"},
	"ATH": {Name: "Athletics", Short: "Athletics"},
	"ATL": {Name: "Atlanta Braves", Short: "Braves"},
	"BAL": {Name: "Baltimore Orioles", Short: "Orioles"},
	"BOS": {Name: "Boston Red Sox", Short: "Red Sox"},
	"CHC": {Name: "Chicago Cubs", Short: "Cubs"},
	"CHW": {Name: "Chicago White Sox", Short: "White Sox"},
	"CIN": {Name: "Cincinnati Reds", Short: "Reds"},
	"CLE": {Name: "Cleveland Guardians", Short: "Guardians"},
	"COL": {Name: "Colorado Rockies", Short: "Rockies"},
	"DET": {Name: "Detroit Tigers", Short: "Tigers"},
	"HOU": {Name: "Houston Astros", Short: "Astros"},
	"KCR": {Name: "Kansas City Royals", Short: "Royals"},
	"LAA": {Name: "Los Angeles Angels", Short: "Angels"},
	"LAD": {Name: "Los Angeles Dodgers", Short: "Dodgers"},
	"MIA": {Name: "Miami Marlins", Short: "Marlins"},
	"MIL": {Name: "Milwaukee Brewers", Short: "Brewers"},
	"MIN": {Name: "Minnesota Twins", Short: "Twins"},
	"NYM": {Name: "New York Mets", Short: "Mets"},
	"NYY": {Name: "New York Yankees", Short: "Yankees"},
	"PHI": {Name: "Philadelphia Phillies", Short: "Phillies"},
	"PIT": {Name: "Pittsburgh Pirates", Short: "Pirates"},
	"SDP": {Name: "San Diego Padres", Short: "Padres"},
	"SEA": {Name: "Seattle Mariners", Short: "Mariners"},
	"SFG": {Name: "San Francisco Giants", Short: "Giants"},
	"STL": {Name: "St. Louis Cardinals", Short: "Cardinals"},
	"TBR": {Name: "Tampa Bay Rays", Short: "Rays"},
	"TEX": {Name: "Texas Rangers", Short: "Rangers"},
	"TOR": {Name: "Toronto Blue Jays", Short: "Blue Jays"},
	"WSH": {Name: "Washington Nationals", Short: "Nationals"},
}

// excludedSheets are workbook sheets that are never parsed even though they
// may sit next to team sheets.
var excludedSheets = map[string]bool{
	"Indy Ball": true,
}

// mlbRelevant is the fixed set of headline categories eligible for the MLB
// feed. The set is part of the site's configuration surface and is kept
// byte-for-byte as published, including the two names that differ from the
// sheet headers currently in use.
var mlbRelevant = map[string]bool{
	"MLB Signing":      true,
	"Extension":        true,
	"Traded For":       true,
	"Traded Away":      true,
	"Waiver Claim":     true,
	"Lost off Waivers": true,
}

// skipColumns exist only to annotate an adjacent primary column and are
// never iterated on their own.
var skipColumns = map[string]bool{
	"New Team": true,
}

// pairings maps a primary category to the header its pairing column must
// carry. The pairing only takes effect when the immediately following
// column's header matches this value.
var pairings = map[string]string{
	"Elected MLB FA/Non-tendered": "New Team",
	"Elected MiLB FA":             "New Team",
	"Released":                    "New Team",
}

// sections is the ordered accordion layout for team pages.
var sections = []Section{
	{Title: "MLB Signings", Categories: []string{"MLB Signings"}},
	{Title: "MiLB Signings", Categories: []string{"MiLB Signings"}},
	{Title: "International Signings", Categories: []string{"Intl Amateur Signings"}},
	{Title: "Trades", Categories: []string{"Traded For", "Traded Away"}, Subheaders: true},
	{Title: "Extensions", Categories: []string{"Extensions"}},
	{Title: "Waiver Claims", Categories: []string{"Waiver Claims"}},
	{Title: "Lost off Waivers", Categories: []string{"Lost off Waivers"}},
	{Title: "Outrighted", Categories: []string{"Outrighted"}},
	{Title: "Added to 40-Man", Categories: []string{"Added to 40-Man"}},
	{Title: "Rule-5 Draft", Categories: []string{"Rule-5 Draft Additions", "Rule-5 Draft Losses"}, Subheaders: true},
	{Title: "MLB Free Agents / Non-tendered", Categories: []string{"Elected MLB FA/Non-tendered"}},
	{Title: "MiLB Free Agents", Categories: []string{"Elected MiLB FA"}},
	{Title: "Released", Categories: []string{"Released"}},
	{Title: "Retired", Categories: []string{"Retired"}},
}

// subheaderLabels override the raw category name in subheader mode.
var subheaderLabels = map[string]string{
	"Traded For":             "Acquired",
	"Traded Away":            "Traded Away",
	"Rule-5 Draft Additions": "Additions",
	"Rule-5 Draft Losses":    "Losses",
}

// IsKnownTeam reports whether code is one of the 30 tracked organizations.
func IsKnownTeam(code string) bool {
	_, ok := teams[code]
	return ok
}

// IsExcludedSheet reports whether a sheet name is explicitly ignored.
func IsExcludedSheet(name string) bool {
	return excludedSheets[name]
}

// TeamName returns the full display name for a team code, or "" when the
// code is unknown.
func TeamName(code string) string {
	return teams[code].Name
}

// TeamShort returns the grid label for a team code.
func TeamShort(code string) string {
	return teams[code].Short
}

// TeamCodes returns all known team codes in alphabetical order.
func TeamCodes() []string {
	codes := make([]string, 0, len(teams))
	for code := range teams {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// IsMLBRelevant reports whether a category is in the headline feed set.
func IsMLBRelevant(category string) bool {
	return mlbRelevant[category]
}

// IsSkipColumn reports whether a header names a pairing-only column.
func IsSkipColumn(header string) bool {
	return skipColumns[header]
}

// PairedHeader returns the header the pairing column of category must carry.
// The second return is false when the category has no pairing column.
func PairedHeader(category string) (string, bool) {
	h, ok := pairings[category]
	return h, ok
}

// Sections returns the accordion layout in display order. The returned slice
// is a copy; callers cannot alter the layout.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// SubheaderLabel returns the display label for a category rendered in
// subheader mode, falling back to the category name itself.
func SubheaderLabel(category string) string {
	if label, ok := subheaderLabels[category]; ok {
		return label
	}
	return category
}
