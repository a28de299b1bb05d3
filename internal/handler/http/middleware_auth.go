// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/miam-miam/internal/logger"
	"github.com/MKhiriev/miam-miam/internal/service"
	"github.com/MKhiriev/miam-miam/internal/utils"
	"github.com/MKhiriev/miam-miam/models"
)

const invalidTokenMessage = "invalid token"

// withIdentity resolves the caller of a request and stores it in the context
// under [utils.RequesterCtxKey].
//
// A request without an "Authorization" header proceeds as
// [models.Anonymous]. A header that does not carry a valid, unexpired token
// is rejected with 403; the request is never downgraded to anonymous.
func (h *Handler) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r.WithContext(utils.WithRequester(ctx, models.Anonymous{})))
			return
		}

		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Warn().Err(err).Msg("malformed authorization header")
			utils.WriteMessage(w, invalidTokenMessage, http.StatusForbidden)
			return
		}

		identity, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("error occurred during parsing token")
			utils.WriteMessage(w, invalidTokenMessage, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithRequester(ctx, identity)))
	})
}

// requireAuth rejects anonymous callers with 401. It must run after
// withIdentity.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := models.AsAuthenticated(utils.GetRequesterFromContext(r.Context())); !ok {
			utils.WriteMessage(w, service.ErrUnauthenticated.Error(), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// getTokenFromAuthHeader extracts the token from an
// "Authorization: <scheme> <token>" header value.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
