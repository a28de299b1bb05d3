// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/miam-miam/internal/config"
	"github.com/MKhiriev/miam-miam/internal/logger"
	"github.com/MKhiriev/miam-miam/internal/mock"
	"github.com/MKhiriev/miam-miam/internal/service"
	"github.com/MKhiriev/miam-miam/models"
)

const validToken = "valid-token"

var alice = models.Authenticated{ID: "user-a", Email: "a@example.com", Name: "Alice"}

type mocks struct {
	auth     *mock.MockAuthService
	recipes  *mock.MockRecipeService
	reviews  *mock.MockReviewService
	favorite *mock.MockFavoriteService
	upload   *mock.MockUploadService
	appInfo  *mock.MockAppInfoService
}

func testConfig() *config.StructuredConfig {
	cfg := config.Defaults()
	cfg.App.TokenSignKey = "test"
	cfg.Server.RateLimit = 1000
	cfg.Server.RateWindow = time.Minute
	cfg.Upload.Driver = config.UploadDriverS3
	return cfg
}

func newTestHandler(t *testing.T, cfg *config.StructuredConfig) (*Handler, *mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &mocks{
		auth:     mock.NewMockAuthService(ctrl),
		recipes:  mock.NewMockRecipeService(ctrl),
		reviews:  mock.NewMockReviewService(ctrl),
		favorite: mock.NewMockFavoriteService(ctrl),
		upload:   mock.NewMockUploadService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}
	m.auth.EXPECT().ParseToken(gomock.Any(), validToken).Return(alice, nil).AnyTimes()

	services := &service.Services{
		AuthService:     m.auth,
		RecipeService:   m.recipes,
		ReviewService:   m.reviews,
		FavoriteService: m.favorite,
		UploadService:   m.upload,
		AppInfoService:  m.appInfo,
	}

	if cfg == nil {
		cfg = testConfig()
	}
	return NewHandler(services, cfg, logger.Nop()), m
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}
