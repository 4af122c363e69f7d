// =============================================================================
// Huronalytics Site Builder - Page Assemblers
// =============================================================================
//
// Full-document assembly: the homepage (team directory + notation key) and
// the per-team transaction pages. Fragments come from render.go; these
// functions only compose them into complete HTML documents.
//
// Every page links the shared stylesheet and the generated search script
// rather than inlining them, so the assets are written once per build.
//
// =============================================================================

package render

import (
	"fmt"
	"strings"

	"github.com/huronalytics/sitebuilder/internal/league"
	"github.com/huronalytics/sitebuilder/internal/types"
)

// HomePage assembles index.html: hero, team grid, and the notation key.
//
// The reverse-chronological transaction feed that once sat between the grid
// and the key is intentionally not rendered; corpus.FeedOrder and FeedItems
// remain available should it come back.
func HomePage() string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Huronalytics - 2025-26 MLB Offseason Tracker</title>
    <link rel="preconnect" href="https://fonts.googleapis.com">
    <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
    <link href="https://fonts.googleapis.com/css2?family=JetBrains+Mono:wght@400;600&family=Space+Grotesk:wght@400;600;700&display=swap" rel="stylesheet">
    <link rel="stylesheet" href="styles.css">
</head>
<body>
    <header class="header">
        <a href="index.html" class="logo">huron<span>alytics</span></a>
        <nav class="nav">
            <a href="index.html" class="active">Home</a>
            <div class="search-container">
                <span class="search-icon">⌕</span>
                <input type="text" class="search-input" placeholder="Search players..." id="searchInput">
                <div class="search-results" id="searchResults"></div>
            </div>
        </nav>
    </header>

    <section class="hero">
        <h1>2025-26 MLB Offseason Tracker</h1>
        <p>Comprehensive transaction tracking across all 30 MLB organizations</p>
    </section>

    <section class="teams-section">
        <div class="section-header">
            <h2 class="section-title">Teams</h2>
        </div>
%s
    </section>

%s

    <footer class="footer">
        <p>Built by <a href="#">@huronalytics</a> | Data updated daily during the offseason</p>
    </footer>

    <script src="search.js"></script>
</body>
</html>`, TeamGrid(""), keySection())
}

// TeamPage assembles one team's page from its per-category buckets.
func TeamPage(teamCode string, byCategory map[string][]types.Transaction) string {
	teamName := league.TeamName(teamCode)

	var accordion strings.Builder
	for _, section := range league.Sections() {
		accordion.WriteString(AccordionSection(section, byCategory))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s - Huronalytics</title>
    <link rel="preconnect" href="https://fonts.googleapis.com">
    <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
    <link href="https://fonts.googleapis.com/css2?family=JetBrains+Mono:wght@400;600&family=Space+Grotesk:wght@400;600;700&display=swap" rel="stylesheet">
    <link rel="stylesheet" href="styles.css">
</head>
<body>
    <header class="header">
        <a href="index.html" class="logo">huron<span>alytics</span></a>
        <nav class="nav">
            <a href="index.html">Home</a>
            <div class="search-container">
                <span class="search-icon">⌕</span>
                <input type="text" class="search-input" placeholder="Search players..." id="searchInput">
                <div class="search-results" id="searchResults"></div>
            </div>
        </nav>
    </header>

    <div class="team-header">
        <h1 class="team-name">%s</h1>
        <p class="team-subtitle">2025-26 Offseason Transactions</p>
    </div>

    <div class="accordion-container">
%s
    </div>

    <section class="teams-section">
        <div class="section-header">
            <h2 class="section-title">Other Teams</h2>
        </div>
%s
    </section>

    <footer class="footer">
        <p>Built by <a href="#">@huronalytics</a> | Data updated daily during the offseason</p>
    </footer>

    <script src="search.js"></script>
    <script>
        function toggleAccordion(header) {
            const section = header.parentElement;
            section.classList.toggle('open');
        }
    </script>
</body>
</html>`, teamName, teamName, accordion.String(), TeamGrid(teamCode))
}

// keySection is the homepage notation legend.
func keySection() string {
	return `    <section class="key-section">
        <div class="section-header">
            <h2 class="section-title">Key</h2>
        </div>
        <div class="key-content">
            <div class="key-group">
                <h3 class="key-heading">General Notation</h3>
                <ul class="key-list">
                    <li><strong>*</strong> = Re-signed (MLB Signings, MiLB Signings)</li>
                    <li><strong>(Team)</strong> = Last team played for</li>
                    <li><strong>(Team, Level)</strong> = Last team and highest level reached (MiLB Signings, trades, waivers)</li>
                    <li><strong><em>Italics</em></strong> = MLB portion of Rule-5 Draft, or player subsequently outrighted (Waiver Claims)</li>
                    <li><strong><s>Strikethrough</s></strong> = No longer in organization (except if lost off waivers then re-joined)</li>
                    <li><strong>No date</strong> = Transaction not yet official (MLB/MiLB Signings), except re-signed players at top (*), who are MiLB players who re-signed before reaching MiLB Free Agency</li>
                </ul>
            </div>
            <div class="key-group">
                <h3 class="key-heading">Position Designations</h3>
                <ul class="key-list">
                    <li><strong>RHSP/LHSP</strong> = Right/Left-handed Starting Pitcher</li>
                    <li><strong>RHRP/LHRP</strong> = Right/Left-handed Relief Pitcher</li>
                    <li>Pitchers listed as SP if more starts than relief appearances in most recent season</li>
                    <li>Position players listed by most-played position in most recent season</li>
                </ul>
            </div>
            <div class="key-group">
                <h3 class="key-heading">Free Agents &amp; Released Players</h3>
                <ul class="key-list">
                    <li><strong>New Team (Contract Type)</strong> = Where player signed and contract level</li>
                    <li>Example: "TBR (MiLB)" = Signed with Rays on Minor League contract</li>
                    <li>Example: "Rakuten (NPB)" = Signed with team in foreign league</li>
                </ul>
            </div>
            <div class="key-group">
                <h3 class="key-heading">International Amateur Signings</h3>
                <ul class="key-list">
                    <li><strong>(Three-letter code)</strong> = Player's country using ISO Alpha-3 codes</li>
                    <li>Example: "DOM" = Dominican Republic, "VEN" = Venezuela, "CUB" = Cuba</li>
                </ul>
            </div>
        </div>
    </section>`
}
