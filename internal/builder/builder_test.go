package builder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/huronalytics/sitebuilder/internal/config"
)

// writeFixtureWorkbook builds a small workbook with two team sheets, one
// excluded sheet, and one unrecognized sheet, and returns its path.
func writeFixtureWorkbook(t *testing.T, dir string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheets := map[string][][]any{
		"BOS": {
			{},
			{"MLB Signings", "Traded For"},
			{"12/1: Signed RHSP Player (TEX)", "12/15: Acquired SS (SEA)"},
			{"Re-signed OF Player*"},
		},
		"SEA": {
			{},
			{"Released", "New Team"},
			{"11/2: RHRP Player", "TBR (MiLB)"},
		},
		"Indy Ball": {
			{},
			{"MLB Signings"},
			{"should never appear"},
		},
		"Notes": {
			{},
			{"MLB Signings"},
			{"should never appear either"},
		},
	}

	for name, rows := range sheets {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
		for i, row := range rows {
			if len(row) == 0 {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}

	// The default sheet has no header row and an unknown name, so it is
	// skipped like any other unrecognized sheet.
	path := filepath.Join(dir, "fixture.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func fixtureConfig(t *testing.T) *config.MainConfig {
	t.Helper()
	dir := t.TempDir()
	return &config.MainConfig{
		ExcelFile: writeFixtureWorkbook(t, dir),
		OutputDir: filepath.Join(dir, "site"),
		LogLevel:  "info",
	}
}

func TestBuilder_Run(t *testing.T) {
	cfg := fixtureConfig(t)

	result := New(cfg, nil).Run()

	require.NoError(t, result.Error)
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.BuildID)
	assert.Equal(t, 2, result.Stats.SheetsParsed)
	// "Indy Ball", "Notes", and the default "Sheet1" are all skipped.
	assert.Equal(t, 3, result.Stats.SheetsSkipped)
	assert.Equal(t, 4, result.Stats.Transactions)

	// Shared assets, homepage, and one page per parsed team.
	assert.Equal(t, 5, result.Stats.PagesWritten)
	for _, name := range []string{"styles.css", "search.js", "index.html", "bos.html", "sea.html"} {
		assert.FileExists(t, filepath.Join(cfg.OutputDir, name))
	}

	// Skipped sheets leave no pages behind.
	assert.NoFileExists(t, filepath.Join(cfg.OutputDir, "indy ball.html"))
	assert.NoFileExists(t, filepath.Join(cfg.OutputDir, "notes.html"))

	page, err := os.ReadFile(filepath.Join(cfg.OutputDir, "bos.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "Signed RHSP Player (TEX)")
	assert.Contains(t, string(page), "Acquired SS (SEA)")

	searchJS, err := os.ReadFile(filepath.Join(cfg.OutputDir, "search.js"))
	require.NoError(t, err)
	assert.Contains(t, string(searchJS), `"team_page":"sea.html"`)
	assert.NotContains(t, string(searchJS), "should never appear")
}

func TestBuilder_RebuildIsByteIdentical(t *testing.T) {
	cfg := fixtureConfig(t)
	b := New(cfg, nil)

	require.NoError(t, b.Run().Error)
	first := readSite(t, cfg.OutputDir)

	require.NoError(t, b.Run().Error)
	second := readSite(t, cfg.OutputDir)

	assert.Equal(t, first, second)
}

func readSite(t *testing.T, dir string) map[string]string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	site := make(map[string]string, len(entries))
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		require.NoError(t, err)
		site[e.Name()] = string(data)
	}
	return site
}

func TestBuilder_DryRunWritesNothing(t *testing.T) {
	cfg := fixtureConfig(t)

	b := New(cfg, nil)
	b.SetDryRun(true)
	result := b.Run()

	require.NoError(t, result.Error)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Stats.SheetsParsed)
	assert.Zero(t, result.Stats.PagesWritten)
	assert.NoDirExists(t, cfg.OutputDir)
}

func TestBuilder_MissingWorkbookFails(t *testing.T) {
	cfg := &config.MainConfig{
		ExcelFile: filepath.Join(t.TempDir(), "absent.xlsx"),
		OutputDir: t.TempDir(),
		LogLevel:  "info",
	}

	result := New(cfg, nil).Run()

	assert.False(t, result.Success)
	require.Error(t, result.Error)
	assert.Contains(t, result.Error.Error(), "failed to parse workbook")
}
