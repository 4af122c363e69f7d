// =============================================================================
// Huronalytics Site Builder - Transaction Corpus
// =============================================================================
//
// The corpus aggregates per-sheet transactions into the two views the
// renderer works from:
//
//   1. A flat list of every transaction, sorted chronologically (oldest
//      first) once Finalize is called.
//   2. A per-team, per-category lookup in original sheet order. Date sorting
//      of these buckets happens at render time, per display group.
//
// Both views hold the same transaction set: every transaction appears
// exactly once in the flat list and in exactly one team/category bucket.
//
// =============================================================================

package corpus

import (
	"sort"

	"github.com/huronalytics/sitebuilder/internal/types"
)

// Corpus holds all transactions parsed from the workbook.
type Corpus struct {
	// All is the flat transaction list. Chronologically sorted after
	// Finalize; before that, in workbook sheet / column-major order.
	All []types.Transaction

	// byTeam maps team code -> category -> transactions in sheet order.
	byTeam map[string]map[string][]types.Transaction

	// teamOrder records team codes in workbook encounter order.
	teamOrder []string
}

// New returns an empty corpus.
func New() *Corpus {
	return &Corpus{
		byTeam: make(map[string]map[string][]types.Transaction),
	}
}

// AddSheet records one team sheet's transactions. categories lists the
// sheet's non-skip column headers in column order; buckets exist for every
// listed category even when no transactions landed in it, mirroring the
// sheet itself.
func (c *Corpus) AddSheet(teamCode string, categories []string, txns []types.Transaction) {
	if _, seen := c.byTeam[teamCode]; !seen {
		c.byTeam[teamCode] = make(map[string][]types.Transaction)
		c.teamOrder = append(c.teamOrder, teamCode)
	}
	buckets := c.byTeam[teamCode]

	for _, category := range categories {
		if _, ok := buckets[category]; !ok {
			buckets[category] = []types.Transaction{}
		}
	}

	for _, t := range txns {
		c.All = append(c.All, t)
		buckets[t.Category] = append(buckets[t.Category], t)
	}
}

// Finalize sorts the flat list chronologically. The sort is stable, so
// entries with equal keys keep workbook order and repeated builds produce
// identical output.
func (c *Corpus) Finalize() {
	sort.SliceStable(c.All, func(i, j int) bool {
		return DateKey(c.All[i]).Before(DateKey(c.All[j]))
	})
}

// TeamCodes returns the teams present in the workbook, in encounter order.
func (c *Corpus) TeamCodes() []string {
	out := make([]string, len(c.teamOrder))
	copy(out, c.teamOrder)
	return out
}

// Team returns the category buckets for one team, or nil when the team had
// no sheet in the workbook.
func (c *Corpus) Team(teamCode string) map[string][]types.Transaction {
	return c.byTeam[teamCode]
}

// SortByDate returns a chronologically sorted copy of txns. Used by the
// renderer to order each display group independently.
func SortByDate(txns []types.Transaction) []types.Transaction {
	out := make([]types.Transaction, len(txns))
	copy(out, txns)
	sort.SliceStable(out, func(i, j int) bool {
		return DateKey(out[i]).Before(DateKey(out[j]))
	})
	return out
}

// feedExcluded are categories dropped from the homepage feed because they
// duplicate information already carried by their counterpart category
// (a waiver claim names the losing team, a trade names the trading partner).
var feedExcluded = map[string]bool{
	"Lost off Waivers": true,
	"Traded Away":      true,
}

// FeedOrder returns the reverse-chronological feed view of txns: excluded
// categories removed, newest entries first, undated entries last.
func FeedOrder(txns []types.Transaction) []types.Transaction {
	out := make([]types.Transaction, 0, len(txns))
	for _, t := range txns {
		if feedExcluded[t.Category] {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return FeedKey(out[j]).Before(FeedKey(out[i]))
	})
	return out
}

// MLBOnly filters txns down to headline-feed-eligible categories.
func MLBOnly(txns []types.Transaction) []types.Transaction {
	out := make([]types.Transaction, 0, len(txns))
	for _, t := range txns {
		if t.MLBRelevant {
			out = append(out, t)
		}
	}
	return out
}
