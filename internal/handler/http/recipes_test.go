// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/miam-miam/internal/service"
	"github.com/MKhiriev/miam-miam/internal/validators"
	"github.com/MKhiriev/miam-miam/models"
)

func recipeInput() models.RecipeInput {
	return models.RecipeInput{
		Name:        "Tarte Tatin",
		Country:     "France",
		Type:        models.Dessert,
		Ingredients: []string{"apples", "butter"},
		Steps:       []string{"caramelise", "bake"},
		Time:        60,
		Difficulty:  3,
		Visibility:  models.Public,
	}
}

func TestHandler_listRecipes(t *testing.T) {
	t.Run("anonymous caller with filters", func(t *testing.T) {
		h, m := newTestHandler(t, nil)
		m.recipes.EXPECT().
			List(gomock.Any(), models.Anonymous{}, models.ListingQuery{Q: "tarte", Type: "Dessert"}).
			Return([]models.Recipe{{ID: "r1", Name: "Tarte Tatin"}}, nil)

		rr := doRequest(t, h.Init(), http.MethodGet, "/api/recettes?q=tarte&type=Dessert", nil, "")

		require.Equal(t, http.StatusOK, rr.Code)
		recipes := decodeBody[[]models.Recipe](t, rr)
		require.Len(t, recipes, 1)
		assert.Equal(t, "r1", recipes[0].ID)
	})

	t.Run("authenticated caller", func(t *testing.T) {
		h, m := newTestHandler(t, nil)
		m.recipes.EXPECT().List(gomock.Any(), alice, models.ListingQuery{}).Return([]models.Recipe{}, nil)

		rr := doRequest(t, h.Init(), http.MethodGet, "/api/recettes", nil, validToken)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})

	t.Run("invalid token is never downgraded", func(t *testing.T) {
		h, m := newTestHandler(t, nil)
		m.auth.EXPECT().ParseToken(gomock.Any(), "forged").Return(models.Authenticated{}, service.ErrTokenIsExpiredOrInvalid)

		rr := doRequest(t, h.Init(), http.MethodGet, "/api/recettes", nil, "forged")

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, "invalid token", decodeBody[models.MessageResponse](t, rr).Message)
	})
}

func TestHandler_suggestRecipes(t *testing.T) {
	h, m := newTestHandler(t, nil)
	m.recipes.EXPECT().Suggest(gomock.Any(), models.Anonymous{}, "tart", 3).Return([]string{"Tarte Tatin"}, nil)
	m.recipes.EXPECT().Suggest(gomock.Any(), models.Anonymous{}, "tart", 0).Return([]string{}, nil)

	router := h.Init()

	rr := doRequest(t, router, http.MethodGet, "/api/recettes/suggest?q=tart&limit=3", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"Tarte Tatin"}, decodeBody[models.SuggestionsResponse](t, rr).Suggestions)

	rr = doRequest(t, router, http.MethodGet, "/api/recettes/suggest?q=tart&limit=abc", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, decodeBody[models.SuggestionsResponse](t, rr).Suggestions)
}

func TestHandler_getRecipe(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "found", wantStatus: http.StatusOK},
		{name: "missing", err: service.ErrRecipeNotFound, wantStatus: http.StatusNotFound},
		{name: "private recipe of someone else", err: service.ErrForbidden, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t, nil)
			m.recipes.EXPECT().Get(gomock.Any(), models.Anonymous{}, "r1").Return(models.Recipe{ID: "r1"}, tt.err)

			rr := doRequest(t, h.Init(), http.MethodGet, "/api/recettes/r1", nil, "")

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestHandler_createRecipe(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		h, _ := newTestHandler(t, nil)

		rr := doRequest(t, h.Init(), http.MethodPost, "/api/recettes", recipeInput(), "")

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, service.ErrUnauthenticated.Error(), decodeBody[models.MessageResponse](t, rr).Message)
	})

	t.Run("created", func(t *testing.T) {
		h, m := newTestHandler(t, nil)
		in := recipeInput()
		m.recipes.EXPECT().Create(gomock.Any(), alice, in).Return(models.Recipe{ID: "r1", Name: in.Name, AuthorID: alice.ID}, nil)

		rr := doRequest(t, h.Init(), http.MethodPost, "/api/recettes", in, validToken)

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, alice.ID, decodeBody[models.Recipe](t, rr).AuthorID)
	})

	t.Run("validation errors are listed", func(t *testing.T) {
		h, m := newTestHandler(t, nil)
		verr := &validators.ValidationError{Errors: []models.FieldError{{Field: "name", Message: "is required"}}}
		m.recipes.EXPECT().Create(gomock.Any(), alice, gomock.Any()).Return(models.Recipe{}, verr)

		rr := doRequest(t, h.Init(), http.MethodPost, "/api/recettes", models.RecipeInput{}, validToken)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		resp := decodeBody[models.ValidationErrorResponse](t, rr)
		assert.Equal(t, "invalid data", resp.Message)
		assert.Equal(t, verr.Errors, resp.Errors)
	})
}

func TestHandler_updateRecipe(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "updated", wantStatus: http.StatusOK},
		{name: "missing", err: service.ErrRecipeNotFound, wantStatus: http.StatusNotFound},
		{name: "not the author", err: service.ErrForbidden, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t, nil)
			m.recipes.EXPECT().Update(gomock.Any(), alice, "r1", recipeInput()).Return(models.Recipe{ID: "r1"}, tt.err)

			rr := doRequest(t, h.Init(), http.MethodPut, "/api/recettes/r1", recipeInput(), validToken)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestHandler_deleteRecipe(t *testing.T) {
	h, m := newTestHandler(t, nil)
	m.recipes.EXPECT().Delete(gomock.Any(), alice, "r1").Return(nil)
	m.recipes.EXPECT().Delete(gomock.Any(), alice, "r2").Return(service.ErrForbidden)

	router := h.Init()

	rr := doRequest(t, router, http.MethodDelete, "/api/recettes/r1", nil, validToken)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "recipe deleted", decodeBody[models.MessageResponse](t, rr).Message)

	rr = doRequest(t, router, http.MethodDelete, "/api/recettes/r2", nil, validToken)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestHandler_toggleFavorite(t *testing.T) {
	h, m := newTestHandler(t, nil)
	m.favorite.EXPECT().Toggle(gomock.Any(), alice, "r1").Return([]string{"r1"}, nil)

	rr := doRequest(t, h.Init(), http.MethodPost, "/api/recettes/r1/favorite", nil, validToken)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"r1"}, decodeBody[models.FavoritesResponse](t, rr).Favorites)
}
