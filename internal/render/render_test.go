package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/huronalytics/sitebuilder/internal/league"
	"github.com/huronalytics/sitebuilder/internal/types"
)

func TestFormatEntry(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Signed RHSP Player (TEX)", "Signed RHSP Player (TEX)"},
		{"strikethrough", "~~Cut Player~~", "<s>Cut Player</s>"},
		{"italics", "_Rule-5 Pick_", "<em>Rule-5 Pick</em>"},
		{"nested", "~~_Player X_~~", "<s><em>Player X</em></s>"},
		{"two italic runs", "_a_ and _b_", "<em>a</em> and <em>b</em>"},
		{"mid-word underscores", "a_b_c", "a<em>b</em>c"},
		{"double underscore untouched", "__shout__", "__shout__"},
		{"lone underscore untouched", "snake_case", "snake_case"},
		{"trailing underscore untouched", "odd_", "odd_"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatEntry(tt.in))
		})
	}
}

func TestFormatEntry_EscapesBeforeConverting(t *testing.T) {
	got := FormatEntry(`~~<script>alert("x")</script>~~`)
	assert.NotContains(t, got, "<script>")
	assert.True(t, strings.HasPrefix(got, "<s>"))
	assert.True(t, strings.HasSuffix(got, "</s>"))
	assert.Contains(t, got, "&lt;script&gt;")
}

func TestFormatEntry_SideBySideStrikethroughs(t *testing.T) {
	got := FormatEntry("~~one~~ and ~~two~~")
	assert.Equal(t, "<s>one</s> and <s>two</s>", got)
}

func TestCategoryClass(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"MLB Signings", "signing"},
		{"MiLB Signings", "signing"},
		{"Extensions", "signing"},
		{"Traded For", "trade"},
		{"Traded Away", "trade"},
		{"Waiver Claims", "waiver"},
		{"Lost off Waivers", "lost"},
		{"Retired", ""},
		{"Released", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CategoryClass(tt.category), tt.category)
	}
}

func TestTeamGrid(t *testing.T) {
	grid := TeamGrid("")

	assert.Equal(t, 30, strings.Count(grid, `class="team-card`))
	assert.NotContains(t, grid, "team-card current")
	assert.Contains(t, grid, `href="bos.html"`)
	assert.Contains(t, grid, `<span class="team-name">Red Sox</span>`)
}

func TestTeamGrid_HighlightsCurrentTeam(t *testing.T) {
	grid := TeamGrid("SEA")

	assert.Equal(t, 1, strings.Count(grid, "team-card current"))
	assert.Contains(t, grid, `<a href="sea.html" class="team-card current">`)
}

func TestAccordionSection_EmptyReturnsNothing(t *testing.T) {
	section := league.Section{Title: "Retired", Categories: []string{"Retired"}}
	assert.Empty(t, AccordionSection(section, map[string][]types.Transaction{
		"Retired": nil,
	}))
	assert.Empty(t, AccordionSection(section, map[string][]types.Transaction{}))
}

func TestAccordionSection_SingleCategory(t *testing.T) {
	section := league.Section{Title: "MLB Signings", Categories: []string{"MLB Signings"}}
	byCategory := map[string][]types.Transaction{
		"MLB Signings": {
			{Category: "MLB Signings", Date: "12/1", Entry: "Signed OF", Raw: "12/1: Signed OF"},
			{Category: "MLB Signings", Date: "11/5", Entry: "Signed C", Raw: "11/5: Signed C"},
		},
	}

	got := AccordionSection(section, byCategory)

	assert.Contains(t, got, `<span class="accordion-count">2</span>`)
	assert.NotContains(t, got, `class="subheader"`)
	// Chronological order regardless of bucket order.
	assert.Less(t, strings.Index(got, "Signed C"), strings.Index(got, "Signed OF"))
}

func TestAccordionSection_SubheaderMode(t *testing.T) {
	section := league.Section{
		Title:      "Trades",
		Categories: []string{"Traded For", "Traded Away"},
		Subheaders: true,
	}
	byCategory := map[string][]types.Transaction{
		"Traded For":  {{Category: "Traded For", Date: "12/15", Entry: "Acquired SS", Raw: "12/15: Acquired SS"}},
		"Traded Away": {{Category: "Traded Away", Date: "12/15", Entry: "Sent RHRP", Raw: "12/15: Sent RHRP"}},
	}

	got := AccordionSection(section, byCategory)

	assert.Contains(t, got, `<li class="subheader">Acquired</li>`)
	assert.Contains(t, got, `<li class="subheader">Traded Away</li>`)
	assert.Contains(t, got, `<span class="accordion-count">2</span>`)
	assert.Less(t, strings.Index(got, "Acquired SS"), strings.Index(got, "Sent RHRP"))
}

func TestAccordionSection_SubheaderModeSkipsEmptyCategory(t *testing.T) {
	section := league.Section{
		Title:      "Rule-5 Draft",
		Categories: []string{"Rule-5 Draft Additions", "Rule-5 Draft Losses"},
		Subheaders: true,
	}
	byCategory := map[string][]types.Transaction{
		"Rule-5 Draft Additions": {{Category: "Rule-5 Draft Additions", Date: "12/10", Entry: "_RHRP Pick_", Raw: "12/10: _RHRP Pick_"}},
	}

	got := AccordionSection(section, byCategory)

	assert.Contains(t, got, `<li class="subheader">Additions</li>`)
	assert.NotContains(t, got, "Losses")
	assert.Contains(t, got, "<em>RHRP Pick</em>")
}

func TestAccordionSection_MissingDateAndPairedValue(t *testing.T) {
	section := league.Section{Title: "Released", Categories: []string{"Released"}}
	byCategory := map[string][]types.Transaction{
		"Released": {{
			Category:    "Released",
			Entry:       "RHRP Player",
			Raw:         "RHRP Player",
			PairedValue: "NYM <MLB>",
		}},
	}

	got := AccordionSection(section, byCategory)

	assert.Contains(t, got, `<span class="tx-date">—</span>`)
	assert.Contains(t, got, "RHRP Player → NYM &lt;MLB&gt;")
}

func TestFeedItems(t *testing.T) {
	txns := []types.Transaction{
		{TeamCode: "BOS", Category: "MLB Signing", Date: "12/20", Entry: "Signed RHSP", Raw: "12/20: Signed RHSP"},
		{TeamCode: "SEA", Category: "Traded For", Date: "12/18", Entry: "Acquired OF", Raw: "12/18: Acquired OF"},
		{TeamCode: "TBR", Category: "Waiver Claim", Entry: "Claimed IF", Raw: "Claimed IF"},
	}

	got := FeedItems(txns, 2)

	assert.Contains(t, got, "Signed RHSP")
	assert.Contains(t, got, "Acquired OF")
	assert.NotContains(t, got, "Claimed IF")
	assert.Contains(t, got, `<span class="feed-category signing">MLB Signing</span>`)
	assert.Contains(t, got, `<span class="feed-category trade">Traded For</span>`)
}

func TestFeedItems_NonPositiveLimit(t *testing.T) {
	txns := []types.Transaction{
		{TeamCode: "BOS", Category: "MLB Signing", Date: "12/20", Entry: "Signed RHSP", Raw: "12/20: Signed RHSP"},
	}

	assert.Empty(t, FeedItems(txns, 0))
	assert.Empty(t, FeedItems(txns, -5))
}

func TestFeedItems_LimitAboveLength(t *testing.T) {
	txns := []types.Transaction{
		{TeamCode: "TBR", Category: "Retired", Entry: "C Player", Raw: "C Player"},
	}

	got := FeedItems(txns, 25)

	assert.Equal(t, 1, strings.Count(got, `class="feed-item"`))
	assert.Contains(t, got, `<span class="feed-date">—</span>`)
	assert.Contains(t, got, `<span class="feed-category ">Retired</span>`)
}
