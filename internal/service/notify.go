// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/miam-miam/internal/cache"
	"github.com/MKhiriev/miam-miam/internal/events"
	"github.com/MKhiriev/miam-miam/internal/logger"
	"github.com/MKhiriev/miam-miam/models"
)

// changeNotifier runs after every successful write: it clears the listing
// cache when recipes changed and publishes the matching domain event.
// Publish failures are logged only.
type changeNotifier struct {
	cache     cache.ListingCache
	publisher events.Publisher
	now       func() time.Time

	// generation counts recipe writes. It moves before the cache is cleared.
	generation atomic.Uint64
}

func newChangeNotifier(listingCache cache.ListingCache, publisher events.Publisher) *changeNotifier {
	if listingCache == nil {
		listingCache = cache.Nop()
	}
	if publisher == nil {
		publisher = events.Nop()
	}
	return &changeNotifier{cache: listingCache, publisher: publisher, now: time.Now}
}

func (n *changeNotifier) recipesChanged(ctx context.Context, eventType models.EventType, recipeID, userID string) {
	n.generation.Add(1)
	n.cache.InvalidateAll(ctx)
	n.publish(ctx, eventType, recipeID, userID)
}

// listingGeneration is read before loading the records a listing is built
// from.
func (n *changeNotifier) listingGeneration() uint64 {
	return n.generation.Load()
}

// cacheListing stores listing unless a write happened since gen was read.
// Writers bump the generation before clearing, so the second check catches a
// write racing the Set.
func (n *changeNotifier) cacheListing(ctx context.Context, gen uint64, key cache.Key, listing []models.Recipe) {
	if n.generation.Load() != gen {
		return
	}
	n.cache.Set(ctx, key, listing)
	if n.generation.Load() != gen {
		n.cache.InvalidateAll(ctx)
	}
}

func (n *changeNotifier) publish(ctx context.Context, eventType models.EventType, recipeID, userID string) {
	event := models.Event{
		Type:       eventType,
		RecipeID:   recipeID,
		UserID:     userID,
		OccurredAt: n.now().UTC(),
	}
	if err := n.publisher.Publish(ctx, event); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "changeNotifier.publish").
			Str("type", string(eventType)).
			Msg("event was not published")
	}
}

// timestamp formats t the way recipes and reviews store it.
func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
