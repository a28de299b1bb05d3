// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/miam-miam/internal/config"
	"github.com/MKhiriev/miam-miam/internal/logger"
	"github.com/MKhiriev/miam-miam/internal/service"
)

type Handler struct {
	services *service.Services

	rateLimiter *RateLimiter
	corsOrigins []string
	// uploadDir is served under /uploads/ when images are stored locally.
	uploadDir      string
	maxUploadBytes int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	h := &Handler{
		services:       services,
		rateLimiter:    NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow),
		corsOrigins:    cfg.Server.CORSOrigins,
		maxUploadBytes: cfg.Upload.MaxBytes,
		logger:         logger,
	}
	if cfg.Upload.Driver == config.UploadDriverLocal {
		h.uploadDir = cfg.Upload.Dir
	}

	logger.Info().Msg("http handler created")
	return h
}

// RateLimiter returns the limiter guarding /api routes so that expired
// windows can be pruned in the background.
func (h *Handler) RateLimiter() *RateLimiter {
	return h.rateLimiter
}
