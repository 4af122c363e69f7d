// =============================================================================
// Huronalytics Site Builder - Build Orchestrator
// =============================================================================
//
// This module runs the full build pipeline for one workbook:
//
//   1. Parse the workbook into the transaction corpus
//   2. Render the shared assets (stylesheet, search index script)
//   3. Render the homepage
//   4. Render one page per team present in the workbook
//   5. Write everything to the output directory
//
// The build is a single synchronous pass. Given the same workbook it
// produces byte-identical output: sheet iteration, column order, and sorting
// are all deterministic.
//
// =============================================================================

package builder

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/huronalytics/sitebuilder/internal/config"
	"github.com/huronalytics/sitebuilder/internal/render"
	"github.com/huronalytics/sitebuilder/internal/workbook"
	"github.com/huronalytics/sitebuilder/pkg/utils"
)

// Result is the outcome of one build run.
type Result struct {
	// BuildID identifies this run in logs. It is never embedded in the
	// generated files, which must be reproducible.
	BuildID string

	// OutputDir is where the site was written.
	OutputDir string

	// Success indicates whether the build completed.
	Success bool

	// Error holds the failure when Success is false.
	Error error

	// Stats contains build statistics.
	Stats BuildStats
}

// BuildStats contains statistics about one build run.
type BuildStats struct {
	// SheetsParsed is the number of team sheets mapped.
	SheetsParsed int

	// SheetsSkipped counts sheets ignored for unrecognized names.
	SheetsSkipped int

	// Transactions is the total transaction count across all teams.
	Transactions int

	// PagesWritten is the number of files written to the output directory.
	PagesWritten int

	// BuildTime is the wall time of the run.
	BuildTime time.Duration
}

// outputFile pairs a file name with its rendered content.
type outputFile struct {
	name    string
	content string
}

// Builder runs the site build.
type Builder struct {
	cfg    *config.MainConfig
	logger *zap.Logger

	// dryRun executes the whole pipeline without writing any file.
	dryRun bool
}

// New creates a Builder for the given configuration.
func New(cfg *config.MainConfig, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{cfg: cfg, logger: logger}
}

// SetDryRun toggles dry-run mode.
func (b *Builder) SetDryRun(dryRun bool) {
	b.dryRun = dryRun
}

// Run executes the build pipeline and returns its result. Workbook read
// failures and output write failures abort the build.
func (b *Builder) Run() Result {
	start := time.Now()
	result := Result{
		BuildID:   uuid.New().String(),
		OutputDir: b.cfg.OutputDir,
	}

	log := b.logger.With(zap.String("build_id", result.BuildID))
	log.Info("starting build",
		zap.String("excel_file", b.cfg.ExcelFile),
		zap.String("output_dir", b.cfg.OutputDir),
		zap.Bool("dry_run", b.dryRun))

	// STEP 1: parse the workbook into the corpus.
	c, parseStats, err := workbook.Parse(b.cfg.ExcelFile)
	if err != nil {
		result.Error = fmt.Errorf("failed to parse workbook: %w", err)
		return result
	}
	result.Stats.SheetsParsed = parseStats.SheetsParsed
	result.Stats.SheetsSkipped = parseStats.SheetsSkipped
	result.Stats.Transactions = len(c.All)

	log.Info("parsed workbook",
		zap.Int("sheets", parseStats.SheetsParsed),
		zap.Int("skipped", parseStats.SheetsSkipped),
		zap.Int("transactions", len(c.All)))

	// STEP 2: render shared assets.
	searchJS, err := render.SearchJS(c.All)
	if err != nil {
		result.Error = fmt.Errorf("failed to render search index: %w", err)
		return result
	}

	// STEP 3 + 4: render all pages up front so a render problem surfaces
	// before anything is written.
	files := []outputFile{
		{"styles.css", render.StyleSheet},
		{"search.js", searchJS},
		{"index.html", render.HomePage()},
	}
	for _, teamCode := range c.TeamCodes() {
		files = append(files, outputFile{
			name:    strings.ToLower(teamCode) + ".html",
			content: render.TeamPage(teamCode, c.Team(teamCode)),
		})
	}

	// STEP 5: write the output directory.
	if !b.dryRun {
		if err := utils.EnsureDir(b.cfg.OutputDir); err != nil {
			result.Error = err
			return result
		}
		for _, f := range files {
			if _, err := utils.WritePage(b.cfg.OutputDir, f.name, f.content); err != nil {
				result.Error = err
				return result
			}
			log.Debug("wrote file", zap.String("name", f.name))
		}
		result.Stats.PagesWritten = len(files)
	}

	result.Success = true
	result.Stats.BuildTime = time.Since(start)

	log.Info("build complete",
		zap.Int("pages", result.Stats.PagesWritten),
		zap.Duration("elapsed", result.Stats.BuildTime))

	return result
}
