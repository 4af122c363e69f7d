// =============================================================================
// Huronalytics Site Builder - Root Command
// =============================================================================
//
// The base Cobra command. Subcommands:
//   sitebuilder build     - run the full site build
//   sitebuilder version   - print version information
//
// The root command owns the global flags (--config, --verbose) and the
// logger setup shared by every subcommand.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cfgFile is the path to the main configuration file, overridable with
// --config.
var cfgFile string

// verbose forces debug-level logging regardless of the configured level.
var verbose bool

// rootCmd is the entry point for the CLI.
var rootCmd = &cobra.Command{
	Use:   "sitebuilder",
	Short: "Huronalytics Site Builder - Generate the offseason transaction site",
	Long: `Huronalytics Site Builder parses the MLB offseason transaction workbook
and generates a static multi-page website: a homepage with the team directory
and notation key, plus one page per team with its categorized transactions in
collapsible sections.

Example Usage:
  sitebuilder build                     # Build the site with config.yaml defaults
  sitebuilder build --excel data.xlsx   # Build from a specific workbook
  sitebuilder build --dry-run           # Run the pipeline without writing files`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// newLogger builds the console logger used by the commands. --verbose wins
// over the configured level.
func newLogger(level string) (*zap.Logger, error) {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("unknown log level %q: %w", level, err)
	}
	if verbose {
		zapLevel = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	return cfg.Build()
}
