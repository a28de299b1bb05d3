// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/miam-miam/internal/cache"
	"github.com/MKhiriev/miam-miam/internal/config"
	"github.com/MKhiriev/miam-miam/internal/logger"
	"github.com/MKhiriev/miam-miam/internal/store"
	"github.com/MKhiriev/miam-miam/internal/validators"
	"github.com/MKhiriev/miam-miam/models"
)

const testUploadURL = "http://127.0.0.1:4000/uploads"

var (
	alice = models.Authenticated{ID: "user-a", Email: "a@example.com", Name: "Alice"}
	bob   = models.Authenticated{ID: "user-b", Email: "b@example.com", Name: "Bob"}
	carol = models.Authenticated{ID: "user-c", Email: "c@example.com", Name: "Carol"}
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e models.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []models.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.EventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type testEnv struct {
	recipes   *store.Collection[models.Recipe]
	users     *store.Collection[models.User]
	uploads   *store.Collection[models.Upload]
	images    store.ImageStorage
	imageDir  string
	cache     *cache.MemoryCache
	publisher *recordingPublisher

	recipeService   RecipeService
	reviewService   ReviewService
	favoriteService FavoriteService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	backend, err := store.NewFileBackend(t.TempDir())
	require.NoError(t, err)

	imageDir := t.TempDir()
	images, err := store.NewLocalImageStorage(imageDir, testUploadURL)
	require.NoError(t, err)

	listingCache, err := cache.NewMemoryCache(64, time.Minute)
	require.NoError(t, err)

	env := &testEnv{
		recipes:   store.NewCollection[models.Recipe](store.RecipesDocument, backend, logger.Nop()),
		users:     store.NewCollection[models.User](store.UsersDocument, backend, logger.Nop()),
		uploads:   store.NewCollection[models.Upload](store.UploadsDocument, backend, logger.Nop()),
		images:    images,
		imageDir:  imageDir,
		cache:     listingCache,
		publisher: &recordingPublisher{},
	}

	notifier := newChangeNotifier(env.cache, env.publisher)
	validator := validators.NewRecipeValidator(testUploadURL)

	env.recipeService = NewRecipeService(env.recipes, env.images, env.uploads, env.cache, notifier, validator, logger.Nop())
	env.reviewService = NewReviewService(env.recipes, notifier, validator, logger.Nop())
	env.favoriteService = NewFavoriteService(env.users, notifier, logger.Nop())

	return env
}

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "miam-miam",
		TokenDuration: time.Hour,
		BcryptCost:    4,
		Version:       "test",
	}
}

func validInput(name string, visibility models.Visibility) models.RecipeInput {
	return models.RecipeInput{
		Name:        name,
		ImageURL:    "https://images.example.com/food.jpg",
		Country:     "France",
		Type:        models.Main,
		Diet:        "omnivore",
		Ingredients: []string{"eggs", "butter"},
		Steps:       []string{"mix", "cook"},
		Time:        20,
		Difficulty:  2,
		Visibility:  visibility,
	}
}

func (e *testEnv) createRecipe(t *testing.T, author models.Authenticated, name string, visibility models.Visibility) models.Recipe {
	t.Helper()
	r, err := e.recipeService.Create(context.Background(), author, validInput(name, visibility))
	require.NoError(t, err)
	return r
}

func storagesOf(e *testEnv) *store.Storages {
	return &store.Storages{Recipes: e.recipes, Users: e.users, Uploads: e.uploads, Images: e.images}
}
