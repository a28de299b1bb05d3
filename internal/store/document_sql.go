// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/miam-miam/internal/config"
	"github.com/MKhiriev/miam-miam/internal/logger"
)

const (
	documentsTable = "documents"

	upsertDocumentSuffix = "ON CONFLICT (name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at"

	maxAttempts = 3
)

// sqlBackend keeps each document in one row of the documents table.
type sqlBackend struct {
	db      *DB
	builder sq.StatementBuilderType
	backoff time.Duration
}

// NewSQLBackend returns a [DocumentBackend] over db. The schema must already
// be migrated.
func NewSQLBackend(db *DB) DocumentBackend {
	var placeholder sq.PlaceholderFormat = sq.Question
	if db.dialect == config.StorageDriverPostgres {
		placeholder = sq.Dollar
	}

	return &sqlBackend{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholder),
		backoff: 100 * time.Millisecond,
	}
}

func (b *sqlBackend) Read(ctx context.Context, name string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := b.builder.
		Select("body").
		From(documentsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var body string
	err = b.retry(ctx, func() error {
		return b.db.QueryRowContext(ctx, query, args...).Scan(&body)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "sqlBackend.Read").Str("document", name).Msg("failed to select document")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return []byte(body), nil
}

func (b *sqlBackend) Write(ctx context.Context, name string, body []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := b.builder.
		Insert(documentsTable).
		Columns("name", "body", "updated_at").
		Values(name, string(body), time.Now().UTC()).
		Suffix(upsertDocumentSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = b.retry(ctx, func() error {
		_, execErr := b.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "sqlBackend.Write").Str("document", name).Msg("failed to upsert document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (b *sqlBackend) Close() error {
	return b.db.Close()
}

// retry runs op until it succeeds, fails with a non-retryable error or the
// attempts run out.
func (b *sqlBackend) retry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = op()
		if err == nil || b.db.classify(err) != Retryable || attempt == maxAttempts {
			return err
		}

		b.db.logger.Warn().Err(err).Int("attempt", attempt).Msg("retrying database operation")

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(b.backoff * time.Duration(attempt)):
		}
	}
	return err
}
