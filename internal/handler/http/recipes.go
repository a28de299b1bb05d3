// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/miam-miam/internal/utils"
	"github.com/MKhiriev/miam-miam/models"
)

const recipeDeletedMessage = "recipe deleted"

func (h *Handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	query := models.ListingQuery{
		Q:    r.URL.Query().Get("q"),
		Type: r.URL.Query().Get("type"),
	}

	recipes, err := h.services.RecipeService.List(r.Context(), utils.GetRequesterFromContext(r.Context()), query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, recipes, http.StatusOK)
}

func (h *Handler) suggestRecipes(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		limit = 0
	}

	suggestions, err := h.services.RecipeService.Suggest(r.Context(), utils.GetRequesterFromContext(r.Context()), r.URL.Query().Get("q"), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuggestionsResponse{Suggestions: suggestions}, http.StatusOK)
}

func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	recipe, err := h.services.RecipeService.Get(r.Context(), utils.GetRequesterFromContext(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, recipe, http.StatusOK)
}

func (h *Handler) createRecipe(w http.ResponseWriter, r *http.Request) {
	var in models.RecipeInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	recipe, err := h.services.RecipeService.Create(r.Context(), utils.GetRequesterFromContext(r.Context()), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, recipe, http.StatusCreated)
}

func (h *Handler) updateRecipe(w http.ResponseWriter, r *http.Request) {
	var in models.RecipeInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	recipe, err := h.services.RecipeService.Update(r.Context(), utils.GetRequesterFromContext(r.Context()), chi.URLParam(r, "id"), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, recipe, http.StatusOK)
}

func (h *Handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	err := h.services.RecipeService.Delete(r.Context(), utils.GetRequesterFromContext(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, recipeDeletedMessage, http.StatusOK)
}

func (h *Handler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.services.FavoriteService.Toggle(r.Context(), utils.GetRequesterFromContext(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.FavoritesResponse{Favorites: favorites}, http.StatusOK)
}
