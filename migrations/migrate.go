// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the SQL schema of the document table and applies
// it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// gooseDialects maps storage driver names to goose dialects and migration
// directories.
var gooseDialects = map[string]struct{ dialect, dir string }{
	"postgres": {dialect: "pgx", dir: "postgres"},
	"sqlite3":  {dialect: "sqlite3", dir: "sqlite"},
}

// Migrate applies every pending migration for driver ("postgres" or
// "sqlite3").
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	target, ok := gooseDialects[driver]
	if !ok {
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(target.dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, target.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
