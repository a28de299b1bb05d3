// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued at login. The identity fields mirror
// [Authenticated]; the registered claims carry subject, issuer and expiry.
type Claims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`

	jwt.RegisteredClaims
}

// Requester converts the claims into the authenticated identity they prove.
func (c Claims) Requester() Authenticated {
	return Authenticated{ID: c.ID, Email: c.Email, Name: c.Name}
}

// Token wraps a signed or parsed JWT.
type Token struct {
	// Token is the underlying JWT. Excluded from JSON because only the
	// compact form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims holds the decoded claim set.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS form sent to clients.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
