// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/miam-miam/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) error
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	ParseToken(ctx context.Context, tokenString string) (models.Authenticated, error)
}

// RecipeService applies visibility rules to every read and ownership rules
// to every write. Successful writes clear the listing cache.
type RecipeService interface {
	List(ctx context.Context, requester models.Requester, query models.ListingQuery) ([]models.Recipe, error)
	Suggest(ctx context.Context, requester models.Requester, query string, limit int) ([]string, error)
	Get(ctx context.Context, requester models.Requester, id string) (models.Recipe, error)
	Create(ctx context.Context, requester models.Requester, in models.RecipeInput) (models.Recipe, error)
	Update(ctx context.Context, requester models.Requester, id string, in models.RecipeInput) (models.Recipe, error)
	Delete(ctx context.Context, requester models.Requester, id string) error
}

// ReviewService keeps recipe ratings equal to the rounded mean of reviews.
type ReviewService interface {
	Add(ctx context.Context, requester models.Requester, recipeID string, in models.ReviewInput) (models.Review, error)
	Update(ctx context.Context, requester models.Requester, recipeID string, in models.ReviewInput) (models.Review, error)
	Delete(ctx context.Context, requester models.Requester, recipeID string) error
}

type FavoriteService interface {
	// Toggle adds recipeID to the requester's favorites or removes it when
	// already present, returning the resulting set.
	Toggle(ctx context.Context, requester models.Requester, recipeID string) ([]string, error)
}

type UploadService interface {
	// Upload stores an image and returns its public URL.
	Upload(ctx context.Context, requester models.Requester, upload models.ImageUpload) (string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
