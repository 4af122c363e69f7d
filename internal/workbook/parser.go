// =============================================================================
// Huronalytics Site Builder - Workbook Parser
// =============================================================================
//
// This module reads the offseason transaction workbook and maps each team
// sheet into transaction records.
//
// SHEET STRUCTURE (Expected Layout):
//   Row 1 (index 0) : blank / decorative, ignored
//   Row 2 (index 1) : column headers ("MLB Signings", "Traded For", ...)
//   Rows 3+         : cell entries, one transaction per non-empty cell
//
// Columns are identified by header name, never by fixed position. A header
// that is absent simply means the column is ignored; nothing fails. The one
// positional rule is column pairing: for categories in the league pairing
// table, the immediately following column is read as an annotation source
// when (and only when) its header matches the table's expected header.
//
// =============================================================================

package workbook

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/huronalytics/sitebuilder/internal/corpus"
	"github.com/huronalytics/sitebuilder/internal/entry"
	"github.com/huronalytics/sitebuilder/internal/league"
	"github.com/huronalytics/sitebuilder/internal/types"
)

// Row indices of the sheet layout (0-based).
const (
	headerRowIndex = 1
	dataStartRow   = 2
)

// ParseStats reports what the workbook walk encountered.
type ParseStats struct {
	// SheetsParsed is the number of team sheets mapped into transactions.
	SheetsParsed int

	// SheetsSkipped counts sheets dropped because their name is excluded or
	// not a known team code.
	SheetsSkipped int
}

// Parse reads the workbook at path and aggregates every recognized team
// sheet into a finalized corpus. Sheets whose name is not a known team code,
// or that are explicitly excluded, are skipped silently. A failure to open
// or read the workbook is fatal.
func Parse(path string) (*corpus.Corpus, ParseStats, error) {
	var stats ParseStats

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	c := corpus.New()

	for _, sheetName := range f.GetSheetList() {
		if league.IsExcludedSheet(sheetName) || !league.IsKnownTeam(sheetName) {
			stats.SheetsSkipped++
			continue
		}

		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, stats, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
		}

		txns, categories := MapSheet(sheetName, rows)
		c.AddSheet(sheetName, categories, txns)
		stats.SheetsParsed++
	}

	c.Finalize()
	return c, stats, nil
}

// MapSheet walks one team's cell grid and produces its transaction records,
// in column-major order (all of the first column's rows, then the next
// column). The second return lists the sheet's non-skip category headers in
// column order, including categories with no entries.
func MapSheet(teamCode string, rows [][]string) ([]types.Transaction, []string) {
	headers := headerMap(rows)
	if len(headers) == 0 {
		return nil, nil
	}

	// Deterministic column order: map iteration order would reshuffle the
	// corpus between runs.
	columns := make([]int, 0, len(headers))
	for idx := range headers {
		columns = append(columns, idx)
	}
	sort.Ints(columns)

	var categories []string
	seen := make(map[string]bool)
	for _, idx := range columns {
		name := headers[idx]
		if league.IsSkipColumn(name) || seen[name] {
			continue
		}
		seen[name] = true
		categories = append(categories, name)
	}

	var txns []types.Transaction
	for _, colIdx := range columns {
		category := headers[colIdx]
		if league.IsSkipColumn(category) {
			continue
		}

		// Resolve the pairing source for this column: the category must be
		// in the pairing table AND the next column's header must match the
		// expected pairing header. Presumed adjacency alone is not enough.
		pairedIdx := -1
		if expected, ok := league.PairedHeader(category); ok {
			if headers[colIdx+1] == expected {
				pairedIdx = colIdx + 1
			}
		}

		for rowIdx := dataStartRow; rowIdx < len(rows); rowIdx++ {
			raw := cellAt(rows, rowIdx, colIdx)
			if raw == "" {
				continue
			}

			date, text := entry.Parse(raw)

			paired := ""
			if pairedIdx >= 0 {
				paired = cellAt(rows, rowIdx, pairedIdx)
			}

			txns = append(txns, types.Transaction{
				TeamCode:    teamCode,
				TeamName:    league.TeamName(teamCode),
				Category:    category,
				Date:        date,
				Entry:       text,
				Raw:         raw,
				MLBRelevant: league.IsMLBRelevant(category),
				PairedValue: paired,
			})
		}
	}

	return txns, categories
}

// headerMap builds the column-index -> header-name mapping from the header
// row. Empty and whitespace-only header cells are left out, so their columns
// are never iterated.
func headerMap(rows [][]string) map[int]string {
	headers := make(map[int]string)
	if len(rows) <= headerRowIndex {
		return headers
	}
	for i, cell := range rows[headerRowIndex] {
		name := strings.TrimSpace(cell)
		if name != "" {
			headers[i] = name
		}
	}
	return headers
}

// cellAt returns the trimmed cell value at (row, col), treating missing
// cells as empty. excelize trims trailing empty cells from each row, so
// short rows are normal.
func cellAt(rows [][]string, row, col int) string {
	if row >= len(rows) || col >= len(rows[row]) {
		return ""
	}
	return strings.TrimSpace(rows[row][col])
}
