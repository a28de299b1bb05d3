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
	"github.com/MKhiriev/miam-miam/models"
)

func TestHandler_addReview(t *testing.T) {
	in := models.ReviewInput{Rating: 4, Comment: "tasty"}

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "created", wantStatus: http.StatusCreated},
		{name: "already reviewed", err: service.ErrReviewAlreadyExists, wantStatus: http.StatusBadRequest},
		{name: "private recipe", err: service.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "missing recipe", err: service.ErrRecipeNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t, nil)
			m.reviews.EXPECT().Add(gomock.Any(), alice, "r1", in).
				Return(models.Review{UserID: alice.ID, UserName: alice.Name, Rating: 4, Comment: "tasty"}, tt.err)

			rr := doRequest(t, h.Init(), http.MethodPost, "/api/recettes/r1/reviews", in, validToken)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestHandler_addReview_anonymous(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	rr := doRequest(t, h.Init(), http.MethodPost, "/api/recettes/r1/reviews", models.ReviewInput{Rating: 4}, "")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestHandler_updateReview(t *testing.T) {
	in := models.ReviewInput{Rating: 5, Comment: "better"}

	h, m := newTestHandler(t, nil)
	m.reviews.EXPECT().Update(gomock.Any(), alice, "r1", in).Return(models.Review{UserID: alice.ID, Rating: 5, Comment: "better"}, nil)
	m.reviews.EXPECT().Update(gomock.Any(), alice, "r2", in).Return(models.Review{}, service.ErrReviewNotFound)

	router := h.Init()

	rr := doRequest(t, router, http.MethodPut, "/api/recettes/r1/reviews", in, validToken)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 5, decodeBody[models.Review](t, rr).Rating)

	rr = doRequest(t, router, http.MethodPut, "/api/recettes/r2/reviews", in, validToken)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, service.ErrReviewNotFound.Error(), decodeBody[models.MessageResponse](t, rr).Message)
}

func TestHandler_deleteReview(t *testing.T) {
	h, m := newTestHandler(t, nil)
	m.reviews.EXPECT().Delete(gomock.Any(), alice, "r1").Return(nil)

	rr := doRequest(t, h.Init(), http.MethodDelete, "/api/recettes/r1/reviews", nil, validToken)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "review deleted", decodeBody[models.MessageResponse](t, rr).Message)
}
