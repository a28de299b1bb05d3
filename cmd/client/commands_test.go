// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/miam-miam/internal/adapter"
	"github.com/MKhiriev/miam-miam/models"
)

// fakeAPI implements the calls exercised below; any other call panics on
// the nil embedded interface.
type fakeAPI struct {
	adapter.APIClient

	reviews  map[string]models.ReviewInput
	created  models.RecipeInput
	query    models.ListingQuery
	recipes  []models.Recipe
	updateOK bool
}

func (f *fakeAPI) Login(_ context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	return models.LoginResponse{Token: "token-for-" + req.Email}, nil
}

func (f *fakeAPI) ListRecipes(_ context.Context, q models.ListingQuery) ([]models.Recipe, error) {
	f.query = q
	return f.recipes, nil
}

func (f *fakeAPI) CreateRecipe(_ context.Context, in models.RecipeInput) (models.Recipe, error) {
	f.created = in
	return models.Recipe{ID: "r1", Name: in.Name}, nil
}

func (f *fakeAPI) AddReview(_ context.Context, id string, in models.ReviewInput) (models.Review, error) {
	if _, ok := f.reviews[id]; ok {
		return models.Review{}, adapter.ErrBadRequest
	}
	f.reviews[id] = in
	return models.Review{Rating: in.Rating}, nil
}

func (f *fakeAPI) UpdateReview(_ context.Context, id string, in models.ReviewInput) (models.Review, error) {
	f.updateOK = true
	f.reviews[id] = in
	return models.Review{Rating: in.Rating}, nil
}

func TestRun_Usage(t *testing.T) {
	var out bytes.Buffer

	assert.ErrorIs(t, run(context.Background(), &fakeAPI{}, nil, &out), errUsage)
	assert.ErrorIs(t, run(context.Background(), &fakeAPI{}, []string{"unknown"}, &out), errUsage)
	assert.ErrorIs(t, run(context.Background(), &fakeAPI{}, []string{"login", "only-email"}, &out), errUsage)
	assert.Contains(t, out.String(), "usage: miam-client")
}

func TestRun_Login(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), &fakeAPI{}, []string{"login", "a@example.com", "pw"}, &out))
	assert.Equal(t, "token-for-a@example.com\n", out.String())
}

func TestRun_List(t *testing.T) {
	var out bytes.Buffer
	api := &fakeAPI{recipes: []models.Recipe{{ID: "r1", Name: "Soup", Type: models.Main, Rating: 4.5, Visibility: models.Public}}}

	require.NoError(t, run(context.Background(), api, []string{"list", "soup", "Plat"}, &out))
	assert.Equal(t, models.ListingQuery{Q: "soup", Type: "Plat"}, api.query)
	assert.Equal(t, "r1\tSoup\tPlat\t4.5\tpublic\n", out.String())
}

func TestRun_Create(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipe.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"Soup","visibility":"private"}`), 0o644))

	var out bytes.Buffer
	api := &fakeAPI{}

	require.NoError(t, run(context.Background(), api, []string{"create", path}, &out))
	assert.Equal(t, "Soup", api.created.Name)
	assert.Equal(t, models.Private, api.created.Visibility)
	assert.Contains(t, out.String(), `"id": "r1"`)
}

func TestRun_ReviewFallsBackToUpdate(t *testing.T) {
	api := &fakeAPI{reviews: map[string]models.ReviewInput{}}

	require.NoError(t, run(context.Background(), api, []string{"review", "r1", "4", "nice"}, &bytes.Buffer{}))
	assert.False(t, api.updateOK)

	require.NoError(t, run(context.Background(), api, []string{"review", "r1", "5"}, &bytes.Buffer{}))
	assert.True(t, api.updateOK)
	assert.Equal(t, 5, api.reviews["r1"].Rating)

	assert.ErrorIs(t, run(context.Background(), api, []string{"review", "r1", "five"}, &bytes.Buffer{}), errUsage)
}
