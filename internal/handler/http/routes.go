// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withSecurityHeaders)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.corsOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		ExposedHeaders: []string{"RateLimit-Limit", "RateLimit-Remaining", "RateLimit-Reset", "X-Trace-ID"},
		MaxAge:         300,
	}))

	if h.uploadDir != "" {
		router.Get("/uploads/*", h.serveUploads())
	}

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Use(h.withRateLimit)

		r.Get("/api/version", h.getServerVersion)

		// routes without identity
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		r.Group(func(r chi.Router) {
			r.Use(h.withIdentity)

			r.Get("/api/recettes", h.listRecipes)
			r.Get("/api/recettes/suggest", h.suggestRecipes)
			r.Get("/api/recettes/{id}", h.getRecipe)

			r.Group(func(r chi.Router) {
				r.Use(h.requireAuth)

				r.Post("/api/recettes", h.createRecipe)
				r.Put("/api/recettes/{id}", h.updateRecipe)
				r.Delete("/api/recettes/{id}", h.deleteRecipe)
				r.Post("/api/recettes/{id}/favorite", h.toggleFavorite)
				r.Post("/api/recettes/{id}/reviews", h.addReview)
				r.Put("/api/recettes/{id}/reviews", h.updateReview)
				r.Delete("/api/recettes/{id}/reviews", h.deleteReview)
				r.Post("/api/upload", h.uploadImage)
			})
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// serveUploads serves stored images. Directory listings are not exposed.
func (h *Handler) serveUploads() http.HandlerFunc {
	files := http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.uploadDir)))
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	}
}
