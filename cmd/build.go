// =============================================================================
// Huronalytics Site Builder - Build Command
// =============================================================================
//
// The 'build' command runs the full read-transform-write pass:
//
//   1. Load configuration (flags override the YAML file)
//   2. Parse the transaction workbook
//   3. Render homepage, team pages, stylesheet, and search index
//   4. Write the output directory
//
// FLAGS:
//   --excel      : workbook path (overrides excel_file from config)
//   --output     : output directory (overrides output_dir from config)
//   --dry-run    : run the whole pipeline without writing files
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huronalytics/sitebuilder/internal/builder"
	"github.com/huronalytics/sitebuilder/internal/config"
)

// excelPath overrides the configured workbook path when non-empty.
var excelPath string

// outputDir overrides the configured output directory when non-empty.
var outputDir string

// dryRun runs the pipeline without writing any output file.
var dryRun bool

// buildCmd represents the 'build' command.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Parse the transaction workbook and generate the static site",
	Long: `The build command reads the offseason transaction workbook, normalizes
every sheet cell into transaction records, and writes the static site:
index.html, one page per team, the shared stylesheet, and the search index.

The pass is deterministic: rebuilding from the same workbook produces
byte-identical output. Unrecognized sheets are skipped; a workbook that
cannot be read, or an output file that cannot be written, aborts the build.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild()
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVar(
		&excelPath,
		"excel",
		"",
		"Path to the transaction workbook (overrides config)",
	)
	buildCmd.Flags().StringVar(
		&outputDir,
		"output",
		"",
		"Output directory for the generated site (overrides config)",
	)
	buildCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Run the full pipeline without writing output files",
	)
}

// runBuild loads configuration, runs the builder, and prints the summary.
func runBuild() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if excelPath != "" {
		cfg.ExcelFile = excelPath
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	b := builder.New(cfg, logger)
	b.SetDryRun(dryRun)

	result := b.Run()
	if !result.Success {
		return result.Error
	}

	fmt.Println("\n=== Build Complete ===")
	fmt.Printf("Sheets parsed:   %d (%d skipped)\n",
		result.Stats.SheetsParsed, result.Stats.SheetsSkipped)
	fmt.Printf("Transactions:    %d\n", result.Stats.Transactions)
	if dryRun {
		fmt.Println("Pages written:   0 (dry run)")
	} else {
		fmt.Printf("Pages written:   %d\n", result.Stats.PagesWritten)
		fmt.Printf("Open %s/index.html to view the site\n", result.OutputDir)
	}
	fmt.Printf("Time elapsed:    %s\n", result.Stats.BuildTime)

	return nil
}
