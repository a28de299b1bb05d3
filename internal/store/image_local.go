// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// localImageStorage writes images into a directory that the HTTP server
// exposes under the public URL.
type localImageStorage struct {
	dir       string
	publicURL string
}

// NewLocalImageStorage creates dir if needed and returns an [ImageStorage]
// whose URLs start with publicURL.
func NewLocalImageStorage(dir, publicURL string) (ImageStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating upload directory: %w", err)
	}
	return &localImageStorage{
		dir:       dir,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

func (s *localImageStorage) Save(_ context.Context, name, _ string, body []byte) (string, error) {
	name = path.Base(name)
	if err := os.WriteFile(filepath.Join(s.dir, name), body, 0o644); err != nil {
		return "", fmt.Errorf("%w: %w", ErrImageNotSaved, err)
	}
	return s.publicURL + "/" + name, nil
}

func (s *localImageStorage) Delete(_ context.Context, url string) error {
	name, ok := imageName(s.publicURL, url)
	if !ok {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error removing image: %w", err)
	}
	return nil
}

func (s *localImageStorage) Owns(url string) bool {
	_, ok := imageName(s.publicURL, url)
	return ok
}

// imageName extracts the stored file name from url when url lives directly
// under base.
func imageName(base, url string) (string, bool) {
	rest, ok := strings.CutPrefix(url, base+"/")
	if !ok || rest == "" || strings.Contains(rest, "/") || rest == "." || rest == ".." {
		return "", false
	}
	return rest, true
}
