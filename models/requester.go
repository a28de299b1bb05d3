// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AnonymousCacheKey is the listing cache key segment used for unauthenticated
// callers.
const AnonymousCacheKey = "anon"

// Requester identifies who issued a request. It is either [Anonymous] or
// [Authenticated]; no other implementations exist.
type Requester interface {
	// CacheKey returns the identity segment of listing cache keys.
	CacheKey() string

	requester()
}

// Anonymous is a caller without a token.
type Anonymous struct{}

func (Anonymous) CacheKey() string { return AnonymousCacheKey }

func (Anonymous) requester() {}

// Authenticated is a caller with a valid token. The fields mirror the token
// claims.
type Authenticated struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (a Authenticated) CacheKey() string { return a.ID }

func (Authenticated) requester() {}

// AsAuthenticated returns the authenticated identity behind r, if any.
func AsAuthenticated(r Requester) (Authenticated, bool) {
	switch v := r.(type) {
	case Authenticated:
		return v, true
	case *Authenticated:
		if v != nil {
			return *v, true
		}
	}
	return Authenticated{}, false
}
