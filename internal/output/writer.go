// Package output owns every file sink of the migration: markdown documents,
// the redirect map and the raw items dump.
package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer writes rendered markdown documents under a base directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a writer rooted at baseDir.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// BaseDir returns the output root.
func (w *Writer) BaseDir() string {
	return w.baseDir
}

// Path resolves a relative output path against the base directory.
func (w *Writer) Path(rel string) string {
	return filepath.Join(w.baseDir, filepath.FromSlash(rel))
}

// WriteDocument writes a UTF-8 markdown document, creating parent directories
// as needed.
func (w *Writer) WriteDocument(relPath, content string) error {
	full := w.Path(relPath)

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write document %s: %w", relPath, err)
	}

	return nil
}
