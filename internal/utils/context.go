// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides helpers shared across the application: request
// identity in the context, JWT issuing and parsing, password hashing, JSON
// responses, the outbound HTTP client and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/miam-miam/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RequesterCtxKey is the key under which the identity middleware stores the
// [models.Requester] of a request.
var RequesterCtxKey = contextKey("requester")

// WithRequester returns a copy of ctx carrying r.
func WithRequester(ctx context.Context, r models.Requester) context.Context {
	return context.WithValue(ctx, RequesterCtxKey, r)
}

// GetRequesterFromContext returns the requester stored in ctx, or
// [models.Anonymous] when there is none.
func GetRequesterFromContext(ctx context.Context) models.Requester {
	if r, ok := ctx.Value(RequesterCtxKey).(models.Requester); ok && r != nil {
		return r
	}
	return models.Anonymous{}
}
