// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EventType names a domain event emitted after a successful mutation.
type EventType string

const (
	RecipeCreated   EventType = "recipe.created"
	RecipeUpdated   EventType = "recipe.updated"
	RecipeDeleted   EventType = "recipe.deleted"
	ReviewCreated   EventType = "review.created"
	ReviewUpdated   EventType = "review.updated"
	ReviewDeleted   EventType = "review.deleted"
	FavoriteToggled EventType = "favorite.toggled"
)

// Event is published to the message broker. Consumers must tolerate
// duplicates and missing events: publishing is best effort.
type Event struct {
	Type       EventType `json:"type"`
	RecipeID   string    `json:"recipeId"`
	UserID     string    `json:"userId"`
	OccurredAt time.Time `json:"occurredAt"`
}
