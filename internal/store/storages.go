// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/miam-miam/internal/config"
	"github.com/MKhiriev/miam-miam/internal/logger"
	"github.com/MKhiriev/miam-miam/models"
)

// Storages groups every persistence dependency of the services.
type Storages struct {
	Recipes RecordStore[models.Recipe]
	Users   RecordStore[models.User]
	Uploads RecordStore[models.Upload]
	Images  ImageStorage

	backend DocumentBackend
}

// NewStorages opens the document backend and image storage selected in cfg.
// SQL backends are migrated before use.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	backend, err := newDocumentBackend(ctx, cfg.Storage, log)
	if err != nil {
		return nil, err
	}

	images, err := newImageStorage(ctx, cfg.Upload, log)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return &Storages{
		Recipes: NewCollection[models.Recipe](RecipesDocument, backend, log),
		Users:   NewCollection[models.User](UsersDocument, backend, log),
		Uploads: NewCollection[models.Upload](UploadsDocument, backend, log),
		Images:  images,
		backend: backend,
	}, nil
}

// Close releases the document backend.
func (s *Storages) Close() error {
	if s.backend == nil {
		return nil
	}
	return s.backend.Close()
}

func newDocumentBackend(ctx context.Context, cfg config.Storage, log *logger.Logger) (DocumentBackend, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case config.StorageDriverFile:
		log.Info().Str("dir", cfg.DataDir).Msg("using file storage")
		return NewFileBackend(cfg.DataDir)
	case config.StorageDriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	case config.StorageDriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "newDocumentBackend").Msg("error migrating database")
		db.Close()
		return nil, err
	}

	return NewSQLBackend(db), nil
}

func newImageStorage(ctx context.Context, cfg config.Upload, log *logger.Logger) (ImageStorage, error) {
	switch cfg.Driver {
	case config.UploadDriverLocal:
		return NewLocalImageStorage(cfg.Dir, cfg.PublicURL)
	case config.UploadDriverS3:
		return NewS3ImageStorage(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
