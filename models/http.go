// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// MessageResponse is the generic `{"message": ...}` body used for
// confirmations and errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// FieldError describes one rejected payload field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse is the 400 body for rejected payloads.
type ValidationErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

// FavoritesResponse is returned by the favorite toggle.
type FavoritesResponse struct {
	Favorites []string `json:"favorites"`
}

// ImageResponse is returned by the upload endpoint.
type ImageResponse struct {
	ImageURL string `json:"imageUrl"`
}

// SuggestionsResponse is returned by the recipe name suggestion endpoint.
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// ImageUpload is an uploaded file handed from the transport layer to the
// upload service.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}
