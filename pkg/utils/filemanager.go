// =============================================================================
// Huronalytics Site Builder - File Utilities
// =============================================================================
//
// Small filesystem helpers shared by the builder: output directory handling
// and page writing. Kept in pkg/ because they carry no domain knowledge.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates the output directory (and parents) if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// WritePage writes one generated file into the output directory. Any write
// failure is fatal to the build; there is no partial-success mode.
func WritePage(outputDir, name, content string) (string, error) {
	path := filepath.Join(outputDir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	return path, nil
}

// FileExists reports whether path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
