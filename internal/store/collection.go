// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/miam-miam/internal/logger"
)

// Collection is the [RecordStore] of one document. The mutex serialises
// writers within the process; separate processes sharing a backend remain
// last-writer-wins.
type Collection[T any] struct {
	name    string
	backend DocumentBackend
	logger  *logger.Logger

	mu sync.Mutex
}

// NewCollection constructs a [Collection] reading and writing the document
// called name.
func NewCollection[T any](name string, backend DocumentBackend, log *logger.Logger) *Collection[T] {
	log.Debug().Str("document", name).Msg("creating collection")
	return &Collection[T]{
		name:    name,
		backend: backend,
		logger:  log,
	}
}

func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	log := logger.FromContext(ctx)

	body, err := c.backend.Read(ctx, c.name)
	switch {
	case errors.Is(err, ErrDocumentNotFound):
		return []T{}, nil
	case errors.Is(err, ErrDocumentUnreadable):
		log.Warn().Err(err).Str("func", "Collection.Load").Str("document", c.name).Msg("document is unreadable, using an empty list")
		return []T{}, nil
	case err != nil:
		log.Err(err).Str("func", "Collection.Load").Str("document", c.name).Msg("error reading document")
		return nil, err
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return []T{}, nil
	}

	var records []T
	if err = json.Unmarshal(body, &records); err != nil {
		log.Warn().Err(err).Str("func", "Collection.Load").Str("document", c.name).Msg("document is corrupt, using an empty list")
		return []T{}, nil
	}
	if records == nil {
		records = []T{}
	}

	return records, nil
}

func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.save(ctx, records)
}

func (c *Collection[T]) Mutate(ctx context.Context, fn func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.Load(ctx)
	if err != nil {
		return err
	}

	records, err = fn(records)
	if err != nil {
		return err
	}

	return c.save(ctx, records)
}

func (c *Collection[T]) save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}

	body, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDocumentNotSaved, err)
	}

	if err = c.backend.Write(ctx, c.name, body); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "Collection.save").Str("document", c.name).Msg("error writing document")
		return err
	}

	return nil
}
