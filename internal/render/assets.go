// =============================================================================
// Huronalytics Site Builder - Static Assets
// =============================================================================
//
// The shared stylesheet and the generated search script. The stylesheet is a
// fixed rendering target; the search script embeds a JSON-serialized array
// of every transaction so the client-side substring search works on any
// page without a server.
//
// =============================================================================

package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huronalytics/sitebuilder/internal/types"
)

// searchRecord is one entry of the client-side search index. Date is a
// pointer so undated transactions serialize as null, which the script's
// truthiness check relies on.
type searchRecord struct {
	Entry    string  `json:"entry"`
	Team     string  `json:"team"`
	Category string  `json:"category"`
	Date     *string `json:"date"`
	TeamPage string  `json:"team_page"`
}

// SearchJS renders search.js: the searchable transaction array followed by
// the input handling. Records keep the chronological corpus order, so the
// output is deterministic for a given workbook.
func SearchJS(txns []types.Transaction) (string, error) {
	records := make([]searchRecord, 0, len(txns))
	for _, t := range txns {
		rec := searchRecord{
			Entry:    t.Entry,
			Team:     t.TeamCode,
			Category: t.Category,
			TeamPage: strings.ToLower(t.TeamCode) + ".html",
		}
		if t.Date != "" {
			d := t.Date
			rec.Date = &d
		}
		records = append(records, rec)
	}

	// json.Marshal escapes <, > and & inside strings, so embedding the
	// array in a script file is safe even for hostile entry text.
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("failed to serialize search index: %w", err)
	}

	return "// Search functionality\nconst searchData = " + string(data) +
		";  // All transactions searchable\n" + searchScript, nil
}

// searchScript is the static half of search.js.
const searchScript = `
const searchInput = document.getElementById('searchInput');
const searchResults = document.getElementById('searchResults');

if (searchInput && searchResults) {
    searchInput.addEventListener('input', function() {
        const query = this.value.toLowerCase().trim();

        if (query.length < 2) {
            searchResults.classList.remove('active');
            return;
        }

        const matches = searchData.filter(t =>
            t.entry.toLowerCase().includes(query)
        ).slice(0, 10);

        if (matches.length === 0) {
            searchResults.innerHTML = '<div class="search-result-item"><div class="search-result-detail">No results found</div></div>';
        } else {
            searchResults.innerHTML = matches.map(t =>
                '<a href="' + t.team_page + '" class="search-result-item">' +
                '<div class="search-result-player">' + t.entry + '</div>' +
                '<div class="search-result-detail">' + t.team + ' - ' + t.category + (t.date ? ' (' + t.date + ')' : '') + '</div>' +
                '</a>'
            ).join('');
        }

        searchResults.classList.add('active');
    });

    searchInput.addEventListener('blur', function() {
        setTimeout(() => searchResults.classList.remove('active'), 200);
    });

    searchInput.addEventListener('focus', function() {
        if (this.value.length >= 2) {
            searchResults.classList.add('active');
        }
    });
}
`

// StyleSheet is the shared site stylesheet, written once per build as
// styles.css and linked from every page.
const StyleSheet = `/* Huronalytics Styles */
:root {
    --bg-primary: #0a0a0a;
    --bg-secondary: #111;
    --bg-tertiary: #1a1a1a;
    --text-primary: #f0f0f0;
    --text-secondary: #888;
    --text-muted: #555;
    --accent: #c41e3a;
    --accent-light: #e63757;
    --accent-dim: #8b1528;
    --border: #2a2a2a;
    --green: #3d9942;
    --red: #c73e4d;
    --blue: #3b7dd8;
}

* {
    margin: 0;
    padding: 0;
    box-sizing: border-box;
}

body {
    font-family: 'Space Grotesk', sans-serif;
    background: var(--bg-primary);
    color: var(--text-primary);
    min-height: 100vh;
}

/* Header */
.header {
    padding: 1.5rem 3rem;
    border-bottom: 1px solid var(--border);
    display: flex;
    justify-content: space-between;
    align-items: center;
    position: sticky;
    top: 0;
    background: var(--bg-primary);
    z-index: 100;
}

.logo {
    font-size: 1.5rem;
    font-weight: 700;
    letter-spacing: -0.02em;
    text-decoration: none;
    color: var(--text-primary);
}

.logo span {
    color: var(--accent-light);
}

.nav {
    display: flex;
    gap: 2rem;
    align-items: center;
}

.nav a {
    color: var(--text-secondary);
    text-decoration: none;
    font-size: 0.9rem;
    transition: color 0.2s;
}

.nav a:hover, .nav a.active {
    color: var(--text-primary);
}

/* Search */
.search-container {
    position: relative;
}

.search-input {
    background: var(--bg-secondary);
    border: 1px solid var(--border);
    border-radius: 6px;
    padding: 0.5rem 1rem 0.5rem 2.5rem;
    color: var(--text-primary);
    font-family: 'Space Grotesk', sans-serif;
    font-size: 0.85rem;
    width: 250px;
    transition: border-color 0.2s, width 0.2s;
}

.search-input:focus {
    outline: none;
    border-color: var(--accent);
    width: 300px;
}

.search-icon {
    position: absolute;
    left: 0.75rem;
    top: 50%;
    transform: translateY(-50%);
    color: var(--text-muted);
    font-size: 0.9rem;
}

.search-results {
    position: absolute;
    top: 100%;
    left: 0;
    right: 0;
    background: var(--bg-secondary);
    border: 1px solid var(--border);
    border-radius: 6px;
    margin-top: 0.5rem;
    max-height: 400px;
    overflow-y: auto;
    display: none;
    z-index: 200;
}

.search-results.active {
    display: block;
}

.search-result-item {
    padding: 0.75rem 1rem;
    border-bottom: 1px solid var(--border);
    cursor: pointer;
    transition: background 0.2s;
}

.search-result-item:hover {
    background: var(--bg-tertiary);
}

.search-result-item:last-child {
    border-bottom: none;
}

.search-result-player {
    font-weight: 600;
    margin-bottom: 0.25rem;
}

.search-result-detail {
    font-size: 0.75rem;
    color: var(--text-secondary);
    font-family: 'JetBrains Mono', monospace;
}

/* Hero */
.hero {
    padding: 3rem;
    background: linear-gradient(135deg, var(--accent-dim) 0%, var(--bg-primary) 60%);
    border-bottom: 1px solid var(--border);
}

.hero h1 {
    font-size: 2.5rem;
    font-weight: 700;
    letter-spacing: -0.03em;
    margin-bottom: 0.5rem;
}

.hero p {
    color: var(--text-secondary);
    font-size: 1.1rem;
}

/* Team Header (for team pages) */
.team-header {
    padding: 3rem;
    background: linear-gradient(135deg, var(--accent) 0%, #1a0a0a 100%);
    border-bottom: 3px solid var(--accent-light);
}

.team-name {
    font-size: 3rem;
    font-weight: 700;
    letter-spacing: -0.03em;
    margin-bottom: 0.5rem;
}

.team-subtitle {
    color: rgba(255,255,255,0.7);
    font-family: 'JetBrains Mono', monospace;
    font-size: 0.85rem;
    text-transform: uppercase;
    letter-spacing: 0.1em;
}

/* Teams Grid */
.teams-section {
    padding: 2rem 3rem;
    border-bottom: 1px solid var(--border);
}

.section-header {
    display: flex;
    justify-content: space-between;
    align-items: center;
    margin-bottom: 1.5rem;
}

.section-title {
    font-size: 1.25rem;
    font-weight: 600;
}

/* Key Section */
.key-section {
    padding: 2rem 3rem;
    border-bottom: 1px solid var(--border);
    background: var(--bg-secondary);
}

.key-content {
    display: grid;
    grid-template-columns: repeat(auto-fit, minmax(300px, 1fr));
    gap: 2rem;
}

.key-group {
    background: var(--bg-primary);
    border: 1px solid var(--border);
    border-radius: 6px;
    padding: 1.5rem;
}

.key-heading {
    font-size: 1rem;
    font-weight: 600;
    color: var(--accent-light);
    margin-bottom: 1rem;
    font-family: 'JetBrains Mono', monospace;
}

.key-list {
    list-style: none;
    padding: 0;
    margin: 0;
}

.key-list li {
    font-size: 0.85rem;
    line-height: 1.8;
    color: var(--text-secondary);
    padding: 0.25rem 0;
}

.key-list li strong {
    color: var(--text-primary);
    font-family: 'JetBrains Mono', monospace;
}

.teams-grid {
    display: grid;
    grid-template-columns: repeat(auto-fill, minmax(140px, 1fr));
    gap: 0.75rem;
}

.team-card {
    background: var(--bg-secondary);
    border: 1px solid var(--border);
    border-radius: 6px;
    padding: 0.75rem 1rem;
    text-decoration: none;
    color: var(--text-primary);
    transition: border-color 0.2s, transform 0.2s;
    display: flex;
    align-items: center;
    gap: 0.5rem;
}

.team-card:hover {
    border-color: var(--accent);
    transform: translateY(-2px);
}

.team-card.current {
    border-color: var(--accent-light);
    background: var(--accent-dim);
}

.team-abbr {
    font-family: 'JetBrains Mono', monospace;
    font-weight: 600;
    font-size: 0.9rem;
    color: var(--accent-light);
}

.team-name {
    font-size: 0.8rem;
    color: var(--text-secondary);
    white-space: nowrap;
    overflow: hidden;
    text-overflow: ellipsis;
}

/* Feeds */
.feeds-container {
    display: grid;
    grid-template-columns: 1fr 1fr;
    gap: 2rem;
    padding: 2rem 3rem;
}

@media (max-width: 1200px) {
    .feeds-container {
        grid-template-columns: 1fr;
    }
}

.feed {
    background: var(--bg-secondary);
    border: 1px solid var(--border);
    border-radius: 8px;
    overflow: hidden;
}

.feed-header {
    padding: 1rem 1.25rem;
    background: var(--bg-tertiary);
    border-bottom: 1px solid var(--border);
    display: flex;
    justify-content: space-between;
    align-items: center;
}

.feed-title {
    font-weight: 600;
    font-size: 1rem;
}

.feed-body {
    max-height: 700px;
    overflow-y: auto;
}

.feed-item {
    display: grid;
    grid-template-columns: 50px 55px 1fr;
    gap: 0.75rem;
    padding: 0.75rem 1.25rem;
    border-bottom: 1px solid var(--border);
    font-size: 0.85rem;
    align-items: baseline;
    transition: background 0.2s;
}

.feed-item:hover {
    background: var(--bg-tertiary);
}

.feed-item:last-child {
    border-bottom: none;
}

.feed-team {
    font-family: 'JetBrains Mono', monospace;
    font-weight: 600;
    color: var(--accent-light);
    font-size: 0.8rem;
}

.feed-date {
    font-family: 'JetBrains Mono', monospace;
    color: var(--text-muted);
    font-size: 0.75rem;
}

.feed-content {
    display: flex;
    flex-direction: column;
    gap: 0.15rem;
}

.feed-player {
    color: var(--text-primary);
}

.feed-category {
    font-size: 0.7rem;
    color: var(--text-muted);
    font-family: 'JetBrains Mono', monospace;
}

.feed-category.signing { color: var(--green); }
.feed-category.trade { color: var(--blue); }
.feed-category.waiver { color: #9b59b6; }
.feed-category.lost { color: var(--red); }

.load-more {
    padding: 1rem;
    text-align: center;
    border-top: 1px solid var(--border);
}

.load-more-btn {
    background: var(--bg-tertiary);
    border: 1px solid var(--border);
    color: var(--text-secondary);
    padding: 0.5rem 1.5rem;
    border-radius: 4px;
    cursor: pointer;
    font-family: 'Space Grotesk', sans-serif;
    font-size: 0.85rem;
    transition: all 0.2s;
}

.load-more-btn:hover {
    border-color: var(--accent);
    color: var(--text-primary);
}

/* Accordion */
.accordion-container {
    max-width: 900px;
    margin: 0 auto;
    padding: 2rem;
}

.accordion-section {
    border: 1px solid var(--border);
    margin-bottom: 0.5rem;
    border-radius: 4px;
    overflow: hidden;
}

.accordion-header {
    background: var(--bg-secondary);
    padding: 1rem 1.5rem;
    cursor: pointer;
    display: flex;
    justify-content: space-between;
    align-items: center;
    transition: background 0.2s;
}

.accordion-header:hover {
    background: var(--bg-tertiary);
}

.accordion-title {
    font-weight: 600;
    font-size: 0.95rem;
    display: flex;
    align-items: center;
    gap: 0.75rem;
}

.accordion-count {
    font-family: 'JetBrains Mono', monospace;
    font-size: 0.75rem;
    color: var(--text-muted);
    background: var(--bg-primary);
    padding: 0.2rem 0.5rem;
    border-radius: 3px;
}

.accordion-icon {
    font-size: 1.25rem;
    color: var(--text-muted);
    transition: transform 0.3s;
}

.accordion-section.open .accordion-icon {
    transform: rotate(180deg);
}

.accordion-content {
    display: none;
    background: var(--bg-primary);
    border-top: 1px solid var(--border);
}

.accordion-section.open .accordion-content {
    display: block;
}

.transaction-list {
    padding: 0;
    list-style: none;
}

.transaction-item {
    display: grid;
    grid-template-columns: 60px 1fr;
    gap: 1rem;
    padding: 0.75rem 1.5rem;
    border-bottom: 1px solid var(--border);
    font-family: 'JetBrains Mono', monospace;
    font-size: 0.8rem;
    align-items: baseline;
}

.transaction-item:last-child {
    border-bottom: none;
}

.transaction-item:hover {
    background: var(--bg-secondary);
}

.transaction-list .subheader {
    padding: 0.5rem 1.5rem;
    background: var(--bg-tertiary);
    color: var(--text-secondary);
    font-size: 0.7rem;
    text-transform: uppercase;
    letter-spacing: 0.1em;
    font-family: 'JetBrains Mono', monospace;
    border-bottom: 1px solid var(--border);
    list-style: none;
}

.tx-date {
    color: var(--text-muted);
    font-size: 0.75rem;
}

.tx-player {
    color: var(--text-primary);
}

/* Footer */
.footer {
    padding: 2rem 3rem;
    border-top: 1px solid var(--border);
    text-align: center;
    color: var(--text-muted);
    font-size: 0.8rem;
}

.footer a {
    color: var(--accent-light);
    text-decoration: none;
}

/* Scrollbars */
.feed-body::-webkit-scrollbar,
.accordion-content::-webkit-scrollbar {
    width: 6px;
}

.feed-body::-webkit-scrollbar-track,
.accordion-content::-webkit-scrollbar-track {
    background: var(--bg-secondary);
}

.feed-body::-webkit-scrollbar-thumb,
.accordion-content::-webkit-scrollbar-thumb {
    background: var(--border);
    border-radius: 3px;
}

/* Responsive */
@media (max-width: 768px) {
    .header {
        padding: 1rem 1.5rem;
        flex-wrap: wrap;
        gap: 1rem;
    }

    .nav {
        gap: 1rem;
    }

    .search-input {
        width: 180px;
    }

    .search-input:focus {
        width: 200px;
    }

    .hero, .teams-section, .feeds-container {
        padding: 1.5rem;
    }

    .hero h1 {
        font-size: 1.75rem;
    }

    .team-header {
        padding: 2rem 1.5rem;
    }

    .team-header .team-name {
        font-size: 2rem;
    }

    .accordion-container {
        padding: 1rem;
    }
}
`
