// =============================================================================
// Huronalytics Site Builder - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Huronalytics offseason site builder.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   sitebuilder build         - Parse the transaction workbook and emit the site
//   sitebuilder version       - Display the application version
//
// ARCHITECTURE:
//   cmd/           : CLI command definitions (Cobra)
//   internal/      : Core parsing, sorting, grouping, and rendering logic
//   pkg/           : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/huronalytics/sitebuilder/cmd"
)

func main() {
	cmd.Execute()
}
