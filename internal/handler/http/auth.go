// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/miam-miam/internal/logger"
	"github.com/MKhiriev/miam-miam/internal/utils"
	"github.com/MKhiriev/miam-miam/models"
)

const accountCreatedMessage = "account created"

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.Register(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, accountCreatedMessage, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", resp.User.ID).Msg("user successfully logged in")
	utils.WriteJSON(w, resp, http.StatusOK)
}
