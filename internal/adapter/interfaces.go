// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a typed client of the MiamMiam REST API.
//
// Error statuses are mapped to the sentinel values in errors.go so callers
// can use [errors.Is] (e.g. [ErrForbidden] for 403, [ErrTooManyRequests] for
// 429). The wrapped message is the one sent by the server.
package adapter

import (
	"context"

	"github.com/MKhiriev/miam-miam/models"
)

// APIClient covers every endpoint of the API.
type APIClient interface {
	// SetToken stores the bearer token attached to subsequent requests.
	SetToken(token string)
	Token() string

	Register(ctx context.Context, req models.RegisterRequest) error
	// Login stores the returned token via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	ListRecipes(ctx context.Context, query models.ListingQuery) ([]models.Recipe, error)
	SuggestRecipes(ctx context.Context, query string, limit int) ([]string, error)
	GetRecipe(ctx context.Context, id string) (models.Recipe, error)
	CreateRecipe(ctx context.Context, in models.RecipeInput) (models.Recipe, error)
	UpdateRecipe(ctx context.Context, id string, in models.RecipeInput) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, id string) error

	// ToggleFavorite returns the caller's favorites after the toggle.
	ToggleFavorite(ctx context.Context, recipeID string) ([]string, error)

	AddReview(ctx context.Context, recipeID string, in models.ReviewInput) (models.Review, error)
	UpdateReview(ctx context.Context, recipeID string, in models.ReviewInput) (models.Review, error)
	DeleteReview(ctx context.Context, recipeID string) error

	// UploadImage sends the file at path and returns its public URL.
	UploadImage(ctx context.Context, path string) (string, error)

	Version(ctx context.Context) (string, error)
}
