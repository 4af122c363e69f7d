// =============================================================================
// Huronalytics Site Builder - HTML Fragment Renderer
// =============================================================================
//
// Pure string transformations from transaction records to HTML fragments.
// Nothing in this package touches the filesystem.
//
// ESCAPING ORDER:
//   Every user-sourced string is entity-escaped before it is embedded.
//   Inline annotation conversion (~~x~~ -> <s>, _x_ -> <em>) runs AFTER
//   escaping, on the escaped text, so literal '<' and '&' inside an
//   annotated entry render safely while the generated tags survive.
//
// =============================================================================

package render

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/huronalytics/sitebuilder/internal/corpus"
	"github.com/huronalytics/sitebuilder/internal/league"
	"github.com/huronalytics/sitebuilder/internal/types"
)

// missingDate is shown where a transaction carries no date.
const missingDate = "—"

// strikeRe converts a full ~~wrapped~~ run. Non-greedy, so side-by-side
// strikethroughs stay separate.
var strikeRe = regexp.MustCompile(`~~(.+?)~~`)

// Escape HTML-entity-escapes a user-sourced string.
func Escape(s string) string {
	if s == "" {
		return ""
	}
	return html.EscapeString(s)
}

// FormatEntry escapes an entry and converts its inline annotations to tags.
func FormatEntry(s string) string {
	if s == "" {
		return ""
	}
	text := html.EscapeString(s)
	text = strikeRe.ReplaceAllString(text, "<s>$1</s>")
	return convertItalics(text)
}

// convertItalics rewrites _x_ runs as <em>x</em>. A run opens at an
// underscore not preceded by another underscore, closes at the next
// underscore (shortest enclosed run, which therefore contains none), and
// neither delimiter may touch a further underscore. Go's regexp has no
// lookaround, so this is a plain scan.
func convertItalics(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] != '_' || (i > 0 && s[i-1] == '_') || i+1 >= len(s) || s[i+1] == '_' {
			b.WriteByte(s[i])
			i++
			continue
		}

		end := strings.IndexByte(s[i+1:], '_')
		if end < 0 {
			b.WriteByte(s[i])
			i++
			continue
		}
		end += i + 1

		// The closing delimiter must not be glued to another underscore.
		if end+1 < len(s) && s[end+1] == '_' {
			b.WriteByte(s[i])
			i++
			continue
		}

		b.WriteString("<em>")
		b.WriteString(s[i+1 : end])
		b.WriteString("</em>")
		i = end + 1
	}

	return b.String()
}

// CategoryClass maps a category name to its semantic style class. Substring
// tests run in fixed priority order; categories matching none map to "".
func CategoryClass(category string) string {
	switch {
	case strings.Contains(category, "Signing") || strings.Contains(category, "Extension"):
		return "signing"
	case strings.Contains(category, "Trade"):
		return "trade"
	case strings.Contains(category, "Waiver") && !strings.Contains(category, "Lost"):
		return "waiver"
	case strings.Contains(category, "Lost"):
		return "lost"
	default:
		return ""
	}
}

// TeamGrid renders the navigation grid of all known teams, alphabetically.
// currentTeam, when non-empty, gets the highlighted card.
func TeamGrid(currentTeam string) string {
	var cards []string
	for _, code := range league.TeamCodes() {
		active := ""
		if code == currentTeam {
			active = " current"
		}
		cards = append(cards, fmt.Sprintf(
			`            <a href="%s.html" class="team-card%s"><span class="team-abbr">%s</span><span class="team-name">%s</span></a>`,
			strings.ToLower(code), active, code, league.TeamShort(code)))
	}

	return fmt.Sprintf(`        <div class="teams-grid">
%s
        </div>`, strings.Join(cards, "\n"))
}

// AccordionSection renders one collapsible section from the team's category
// buckets. It returns "" when every mapped category is empty. The displayed
// count is the total across all mapped categories.
//
// In subheader mode (multi-category sections only), each category renders as
// its own labeled sub-list, sorted independently; otherwise all categories
// merge into one chronologically sorted list.
func AccordionSection(section league.Section, byCategory map[string][]types.Transaction) string {
	total := 0
	for _, category := range section.Categories {
		total += len(byCategory[category])
	}
	if total == 0 {
		return ""
	}

	var items []string
	if section.Subheaders && len(section.Categories) > 1 {
		for _, category := range section.Categories {
			txns := byCategory[category]
			if len(txns) == 0 {
				continue
			}
			items = append(items, fmt.Sprintf(
				`                    <li class="subheader">%s</li>`,
				Escape(league.SubheaderLabel(category))))
			for _, t := range corpus.SortByDate(txns) {
				items = append(items, transactionItem(t))
			}
		}
	} else {
		var merged []types.Transaction
		for _, category := range section.Categories {
			merged = append(merged, byCategory[category]...)
		}
		for _, t := range corpus.SortByDate(merged) {
			items = append(items, transactionItem(t))
		}
	}

	return fmt.Sprintf(`        <div class="accordion-section">
            <div class="accordion-header" onclick="toggleAccordion(this)">
                <div class="accordion-title">
                    %s
                    <span class="accordion-count">%d</span>
                </div>
                <span class="accordion-icon">▼</span>
            </div>
            <div class="accordion-content">
                <ul class="transaction-list">
%s
                </ul>
            </div>
        </div>
`, Escape(section.Title), total, strings.Join(items, "\n"))
}

// transactionItem renders a single list entry, with the paired "New Team"
// value appended after a directional separator when present.
func transactionItem(t types.Transaction) string {
	date := t.Date
	if date == "" {
		date = missingDate
	}

	paired := ""
	if t.PairedValue != "" {
		paired = " → " + Escape(t.PairedValue)
	}

	return fmt.Sprintf(`                    <li class="transaction-item">
                        <span class="tx-date">%s</span>
                        <span class="tx-player">%s%s</span>
                    </li>`, date, FormatEntry(t.Entry), paired)
}

// FeedItems renders up to limit transactions as feed rows. Callers are
// expected to pass an already ordered slice (see corpus.FeedOrder).
func FeedItems(txns []types.Transaction, limit int) string {
	if limit < 0 {
		limit = 0
	}
	if limit > len(txns) {
		limit = len(txns)
	}

	var items []string
	for _, t := range txns[:limit] {
		date := t.Date
		if date == "" {
			date = missingDate
		}
		items = append(items, fmt.Sprintf(`                <div class="feed-item">
                    <span class="feed-team">%s</span>
                    <span class="feed-date">%s</span>
                    <div class="feed-content">
                        <span class="feed-player">%s</span>
                        <span class="feed-category %s">%s</span>
                    </div>
                </div>`,
			t.TeamCode, date, FormatEntry(t.Entry), CategoryClass(t.Category), Escape(t.Category)))
	}

	return strings.Join(items, "\n")
}
