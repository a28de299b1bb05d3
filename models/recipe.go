// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RecipeType is the course a recipe belongs to.
type RecipeType string

const (
	Starter RecipeType = "Entrée"
	Main    RecipeType = "Plat"
	Dessert RecipeType = "Dessert"
)

// RecipeTypes lists every accepted [RecipeType] in display order.
var RecipeTypes = []RecipeType{Starter, Main, Dessert}

// Visibility controls who may read a recipe and whether it accepts reviews.
type Visibility string

const (
	Public  Visibility = "public"
	Private Visibility = "private"
)

// Recipe is the persisted recipe record.
//
// Rating is derived from Reviews and is never taken from client input: it is
// the mean of all review ratings rounded to one decimal, or exactly 0 when the
// recipe has no reviews. A private recipe never holds reviews.
type Recipe struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	ImageURL    string     `json:"imageUrl"`
	Country     string     `json:"country"`
	Type        RecipeType `json:"type"`
	Diet        string     `json:"diet"`
	Ingredients []string   `json:"ingredients"`
	Steps       []string   `json:"steps"`
	Time        int        `json:"time"`
	Difficulty  int        `json:"difficulty"`
	AuthorID    string     `json:"authorId"`
	Visibility  Visibility `json:"visibility"`
	Rating      float64    `json:"rating"`
	CreatedAt   string     `json:"createdAt"`
	Reviews     []Review   `json:"reviews"`
}

// IsPublic reports whether the recipe is visible to everyone.
func (r Recipe) IsPublic() bool {
	return r.Visibility == Public
}

// ReviewBy returns the index of the review written by userID, or -1.
func (r Recipe) ReviewBy(userID string) int {
	for i, review := range r.Reviews {
		if review.UserID == userID {
			return i
		}
	}
	return -1
}

// RecipeInput is the client-editable part of a recipe, accepted on create and
// update. Server-owned fields (id, author, rating, timestamps, reviews) are
// not part of it.
type RecipeInput struct {
	Name        string     `json:"name"`
	ImageURL    string     `json:"imageUrl"`
	Country     string     `json:"country"`
	Type        RecipeType `json:"type"`
	Diet        string     `json:"diet"`
	Ingredients []string   `json:"ingredients"`
	Steps       []string   `json:"steps"`
	Time        int        `json:"time"`
	Difficulty  int        `json:"difficulty"`
	Visibility  Visibility `json:"visibility"`
}

// ListingQuery holds the optional listing filters.
type ListingQuery struct {
	// Q is matched case-insensitively as a substring of the name, the
	// country or any ingredient.
	Q string
	// Type is matched case-insensitively for equality against the recipe type.
	Type string
}
