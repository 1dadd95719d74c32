// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package output writes assembled artifact sets to a destination directory.
package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mutebessim/cdpgen/internal/pygen"
)

// Writer writes one artifact set into a destination directory, replacing any
// previously generated files.
type Writer struct {
	// Dir is the destination directory. It is created if missing.
	Dir string
	// Mode is the file permission mode (default 0644).
	Mode os.FileMode
}

// NewWriter creates a Writer targeting dir.
func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir, Mode: 0o644}
}

// Write clears prior generated files from the destination and writes every
// artifact. The clear only removes regular files, never subdirectories:
// leftovers from an earlier run with a different domain selection or
// protocol version must not survive next to fresh output.
func (w *Writer) Write(arts *pygen.Artifacts) error {
	if err := os.MkdirAll(w.Dir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	entries, err := os.ReadDir(w.Dir)
	if err != nil {
		return fmt.Errorf("failed to read output directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(w.Dir, entry.Name())); err != nil {
			return fmt.Errorf("failed to remove stale artifact: %w", err)
		}
	}

	mode := w.Mode
	if mode == 0 {
		mode = 0o644
	}
	for _, name := range arts.Names() {
		if err := validateName(name); err != nil {
			return fmt.Errorf("invalid artifact name %q: %w", name, err)
		}
		path := filepath.Join(w.Dir, name)
		if err := os.WriteFile(path, arts.Get(name), mode); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	return nil
}

// validateName rejects anything but a bare file name. Artifact sets are
// flat; a separator or traversal component means a bug upstream.
func validateName(name string) error {
	if name == "" {
		return errors.New("name is empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return errors.New("path separators not allowed")
	}
	if name == "." || name == ".." {
		return errors.New("path traversal not allowed")
	}
	return nil
}
