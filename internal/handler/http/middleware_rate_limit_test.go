// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/miam-miam/internal/config"
	"github.com/MKhiriev/miam-miam/models"
)

func TestRateLimiter_Allow(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewRateLimiter(2, time.Minute)
	l.now = func() time.Time { return now }

	first := l.Allow("1.1.1.1")
	assert.True(t, first.Allowed)
	assert.Equal(t, 1, first.Remaining)
	assert.Equal(t, now.Add(time.Minute), first.Reset)

	assert.True(t, l.Allow("1.1.1.1").Allowed)

	third := l.Allow("1.1.1.1")
	assert.False(t, third.Allowed)
	assert.Equal(t, 0, third.Remaining)

	assert.True(t, l.Allow("2.2.2.2").Allowed, "keys are counted separately")

	now = now.Add(time.Minute)
	assert.True(t, l.Allow("1.1.1.1").Allowed, "a new window starts after reset")
}

func TestRateLimiter_Prune(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewRateLimiter(5, time.Minute)
	l.now = func() time.Time { return now }

	l.Allow("a")
	now = now.Add(30 * time.Second)
	l.Allow("b")
	require.Equal(t, 2, l.Len())

	assert.Equal(t, 1, l.Prune(now.Add(45*time.Second)))
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, 1, l.Prune(now.Add(time.Hour)))
	assert.Zero(t, l.Len())
}

func TestHandler_withRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Server.RateLimit = 2
	h, m := newTestHandler(t, cfg)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v").Times(2)

	router := h.Init()
	send := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr
	}

	rr := send("10.0.0.1:5000")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "2", rr.Header().Get("RateLimit-Limit"))
	assert.Equal(t, "1", rr.Header().Get("RateLimit-Remaining"))
	assert.NotEmpty(t, rr.Header().Get("RateLimit-Reset"))

	require.Equal(t, http.StatusOK, send("10.0.0.1:5001").Code)

	rr = send("10.0.0.1:5002")
	require.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "0", rr.Header().Get("RateLimit-Remaining"))
	assert.NotEmpty(t, rr.Header().Get("Retry-After"))
	assert.Equal(t, tooManyRequestsMessage, decodeBody[models.MessageResponse](t, rr).Message)
}

func TestHandler_withRateLimit_skipsUploads(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig()
	cfg.Server.RateLimit = 1
	cfg.Upload.Driver = config.UploadDriverLocal
	cfg.Upload.Dir = dir
	h, _ := newTestHandler(t, cfg)

	router := h.Init()
	for range 3 {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/uploads/missing.png", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	}
	assert.Zero(t, h.RateLimiter().Len())
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", clientIP(req))

	req.RemoteAddr = "192.0.2.1"
	assert.Equal(t, "192.0.2.1", clientIP(req))
}
