// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package fetch defines where protocol descriptors come from. The generator
// only depends on the Source interface; retrieval over the network (and
// resolving the latest version tag from a package registry) belongs to the
// implementation behind it.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// Source provides protocol descriptor documents for a generation run.
type Source interface {
	// Ref resolves the protocol version label to generate against. It is
	// embedded verbatim into every generated header.
	Ref(ctx context.Context) (string, error)

	// Protocols returns the raw descriptor documents for ref, in the order
	// they should be parsed.
	Protocols(ctx context.Context, ref string) ([][]byte, error)
}

// FileSource reads descriptor documents from a filesystem. It cannot resolve
// a latest version tag, so a pinned ref is required.
type FileSource struct {
	fsys   fs.FS
	paths  []string
	pinned string
}

// NewFileSource creates a FileSource reading the given paths from fsys, with
// ref pinned to the provided label.
func NewFileSource(fsys fs.FS, paths []string, ref string) *FileSource {
	return &FileSource{fsys: fsys, paths: paths, pinned: ref}
}

// Ref returns the pinned version label.
func (s *FileSource) Ref(ctx context.Context) (string, error) {
	if s.pinned == "" {
		return "", errors.New("file sources require a pinned ref (--ref)")
	}
	return s.pinned, nil
}

// Protocols reads every descriptor file.
func (s *FileSource) Protocols(ctx context.Context, ref string) ([][]byte, error) {
	docs := make([][]byte, 0, len(s.paths))
	for _, path := range s.paths {
		f, err := s.fsys.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open descriptor: %w", err)
		}
		data, err := io.ReadAll(f)
		f.Close() //nolint:errcheck
		if err != nil {
			return nil, fmt.Errorf("failed to read descriptor %s: %w", path, err)
		}
		docs = append(docs, data)
	}
	return docs, nil
}
