// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by document backends and collections. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrDocumentNotFound is returned by a [DocumentBackend] when the named
	// document has never been written. Collections read it as an empty list.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrDocumentUnreadable is returned by the file backend when the document
	// exists but cannot be read. Collections degrade it to an empty list.
	ErrDocumentUnreadable = errors.New("document is unreadable")

	// ErrDocumentNotSaved is returned when a document write fails.
	ErrDocumentNotSaved = errors.New("document was not saved")

	// ErrUnknownDriver is returned by constructors when the configured
	// driver name is not supported.
	ErrUnknownDriver = errors.New("unknown storage driver")

	// ErrImageNotSaved is returned when an image cannot be written to image
	// storage.
	ErrImageNotSaved = errors.New("image was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the SQL backend when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan document row")
)
