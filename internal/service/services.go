// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/miam-miam/internal/cache"
	"github.com/MKhiriev/miam-miam/internal/config"
	"github.com/MKhiriev/miam-miam/internal/events"
	"github.com/MKhiriev/miam-miam/internal/logger"
	"github.com/MKhiriev/miam-miam/internal/store"
	"github.com/MKhiriev/miam-miam/internal/validators"
)

type Services struct {
	AuthService     AuthService
	RecipeService   RecipeService
	ReviewService   ReviewService
	FavoriteService FavoriteService
	UploadService   UploadService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, listingCache cache.ListingCache, publisher events.Publisher, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRecipeValidator(cfg.Upload.PublicURL)
	notifier := newChangeNotifier(listingCache, publisher)

	return &Services{
		AuthService:     NewAuthService(storages.Users, cfg.App, logger),
		RecipeService:   NewRecipeService(storages.Recipes, storages.Images, storages.Uploads, listingCache, notifier, validator, logger),
		ReviewService:   NewReviewService(storages.Recipes, notifier, validator, logger),
		FavoriteService: NewFavoriteService(storages.Users, notifier, logger),
		UploadService:   NewUploadService(storages.Images, storages.Uploads, cfg.Upload, logger),
		AppInfoService:  appInfoService,
	}, nil
}
