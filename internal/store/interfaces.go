// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
)

// Document names of the persisted collections.
const (
	RecipesDocument = "recipes"
	UsersDocument   = "users"
	UploadsDocument = "uploads"
)

// DocumentBackend stores named documents as opaque byte blobs. Each document
// holds one whole JSON array.
type DocumentBackend interface {
	// Read returns the document body, [ErrDocumentNotFound] when it was never
	// written, or [ErrDocumentUnreadable] when it exists but cannot be read.
	Read(ctx context.Context, name string) ([]byte, error)
	// Write replaces the document body.
	Write(ctx context.Context, name string, body []byte) error
	Close() error
}

// RecordStore persists a whole list of records as one document.
type RecordStore[T any] interface {
	// Load returns every record. A missing or unreadable document yields an
	// empty list and no error.
	Load(ctx context.Context) ([]T, error)
	// Save overwrites the document with records.
	Save(ctx context.Context, records []T) error
	// Mutate loads the records, applies fn and saves the result while
	// holding the collection lock. Nothing is saved when fn fails.
	Mutate(ctx context.Context, fn func(records []T) ([]T, error)) error
}

// ImageStorage stores uploaded images and hands out their public URLs.
type ImageStorage interface {
	// Save stores body under name and returns the public URL.
	Save(ctx context.Context, name, contentType string, body []byte) (string, error)
	// Delete removes the image behind url. URLs this storage does not own
	// and images that are already gone are ignored.
	Delete(ctx context.Context, url string) error
	// Owns reports whether url points into this storage.
	Owns(url string) bool
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
