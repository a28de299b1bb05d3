// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// fileBackend keeps every document in <dir>/<name>.json.
type fileBackend struct {
	dir string
}

// NewFileBackend creates dir if needed and returns a [DocumentBackend] over
// it.
func NewFileBackend(dir string) (DocumentBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating data directory: %w", err)
	}
	return &fileBackend{dir: dir}, nil
}

func (b *fileBackend) path(name string) string {
	return filepath.Join(b.dir, name+".json")
}

func (b *fileBackend) Read(_ context.Context, name string) ([]byte, error) {
	body, err := os.ReadFile(b.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentUnreadable, err)
	}

	return body, nil
}

// Write replaces the document through a temporary file and a rename, so a
// reader never sees a partially written document.
func (b *fileBackend) Write(_ context.Context, name string, body []byte) error {
	tmp, err := os.CreateTemp(b.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDocumentNotSaved, err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(body); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrDocumentNotSaved, err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrDocumentNotSaved, err)
	}

	if err = os.Rename(tmpName, b.path(name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrDocumentNotSaved, err)
	}

	return nil
}

func (b *fileBackend) Close() error { return nil }
