// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/miam-miam/internal/utils"
	"github.com/MKhiriev/miam-miam/models"
)

const reviewDeletedMessage = "review deleted"

func (h *Handler) addReview(w http.ResponseWriter, r *http.Request) {
	var in models.ReviewInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	review, err := h.services.ReviewService.Add(r.Context(), utils.GetRequesterFromContext(r.Context()), chi.URLParam(r, "id"), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, review, http.StatusCreated)
}

func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) {
	var in models.ReviewInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	review, err := h.services.ReviewService.Update(r.Context(), utils.GetRequesterFromContext(r.Context()), chi.URLParam(r, "id"), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, review, http.StatusOK)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	err := h.services.ReviewService.Delete(r.Context(), utils.GetRequesterFromContext(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, reviewDeletedMessage, http.StatusOK)
}
