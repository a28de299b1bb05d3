// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents a registered account.
// PasswordHash is persisted with the record but must never leave the server:
// responses expose a [UserInfo] instead.
type User struct {
	// ID is a UUID assigned at registration.
	ID string `json:"id"`

	// Email is unique across all users.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"passwordHash"`

	// Name is the display name copied into reviews.
	Name string `json:"name"`

	// Favorites holds recipe ids. Order carries no meaning.
	Favorites []string `json:"favorites"`
}

// Info returns the public projection of the user.
func (u User) Info() UserInfo {
	favorites := u.Favorites
	if favorites == nil {
		favorites = []string{}
	}
	return UserInfo{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Favorites: favorites,
	}
}

// HasFavorite reports whether recipeID is among the user's favorites.
func (u User) HasFavorite(recipeID string) bool {
	for _, id := range u.Favorites {
		if id == recipeID {
			return true
		}
	}
	return false
}

// UserInfo is the user as returned by the login endpoint.
type UserInfo struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Favorites []string `json:"favorites"`
}
