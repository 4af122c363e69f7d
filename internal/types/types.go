// =============================================================================
// Huronalytics Site Builder - Shared Types
// =============================================================================
//
// This package contains the transaction record shared across the workbook
// mapper, the corpus, and the renderer. Keeping it here avoids import cycles
// between those packages.
//
// =============================================================================

package types

// Transaction is a single normalized roster move taken from one sheet cell.
// It is constructed once during ingestion and never mutated afterwards;
// sorting and grouping operate on copies or reordered slices.
type Transaction struct {
	// TeamCode is the 3-letter code of the sheet the cell came from.
	TeamCode string

	// TeamName is the full display name resolved from the team table.
	TeamName string

	// Category is the header of the column the cell came from,
	// e.g. "MLB Signings" or "Traded For".
	Category string

	// Date is the "M/D" prefix extracted from the cell, or empty when no
	// parseable date prefix was found.
	Date string

	// Entry is the cell text after date extraction, with any strikethrough
	// or italic markers re-wrapped around it.
	Entry string

	// Raw is the original trimmed cell string. Re-signed detection inspects
	// this for asterisks, so it must survive unmodified.
	Raw string

	// MLBRelevant reports whether Category belongs to the fixed set of
	// headline categories eligible for the MLB feed.
	MLBRelevant bool

	// PairedValue is the trimmed value of the adjacent "New Team" column,
	// present only for categories in the pairing table.
	PairedValue string
}
