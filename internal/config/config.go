// =============================================================================
// Huronalytics Site Builder - Configuration Module
// =============================================================================
//
// Runtime configuration for the build: where the workbook lives, where the
// site is written, and how chatty the logs are. Loaded from a YAML file with
// defaults applied for anything unset.
//
// League data (team table, section layout, category sets) is deliberately
// NOT configuration — it defines the site's behavior and lives compiled-in
// under internal/league.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MainConfig holds the build settings.
type MainConfig struct {
	// ExcelFile is the path to the offseason transaction workbook.
	// Default: "data/2025_26_MLB_Offseason.xlsx"
	ExcelFile string `yaml:"excel_file"`

	// OutputDir is the directory the generated site is written to.
	// Default: "docs"
	OutputDir string `yaml:"output_dir"`

	// LogLevel controls logging verbosity.
	// Valid values: "debug", "info", "warn", "error". Default: "info"
	LogLevel string `yaml:"log_level"`
}

// Load reads the configuration from a YAML file. A missing file is not an
// error; defaults are used so the tool runs out of the box from the repo
// root. A file that exists but fails to parse is fatal.
func Load(path string) (*MainConfig, error) {
	var cfg MainConfig

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Fall through to defaults.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// applyDefaults fills in any unset configuration values.
func applyDefaults(cfg *MainConfig) {
	if cfg.ExcelFile == "" {
		cfg.ExcelFile = "data/2025_26_MLB_Offseason.xlsx"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "docs"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// validate rejects configuration values the build cannot act on.
func validate(cfg *MainConfig) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}
	return nil
}
