// Package output writes rendered exports to disk, one file per export,
// named after the field or batch it came from.
package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer writes rendered output to a directory.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write stores data as <name><ext> and returns the written path.
// Name characters outside [A-Za-z0-9_-] are replaced with underscores.
func (w *Writer) Write(name string, data []byte, ext string) (string, error) {
	filename := sanitize(name)
	if filename == "" {
		filename = "output"
	}
	path := filepath.Join(w.OutputDir, filename+ext)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// sanitize replaces characters unsafe in file names with underscores.
func sanitize(s string) string {
	out := []rune(s)
	for i, ch := range out {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9', ch == '-', ch == '_':
		default:
			out[i] = '_'
		}
	}
	return string(out)
}
