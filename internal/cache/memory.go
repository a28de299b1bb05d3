// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"context"
	"fmt"
	"slices"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/MKhiriev/miam-miam/models"
)

type memoryEntry struct {
	listing []models.Recipe
	expires time.Time
}

// MemoryCache is an in-process [ListingCache] bounded by an LRU size. A
// non-zero TTL also expires entries that no write has cleared.
type MemoryCache struct {
	entries *lru.Cache
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryCache creates a cache holding at most size listings.
func NewMemoryCache(size int, ttl time.Duration) (*MemoryCache, error) {
	entries, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("error creating lru cache: %w", err)
	}

	return &MemoryCache{
		entries: entries,
		ttl:     ttl,
		now:     time.Now,
	}, nil
}

func (c *MemoryCache) Get(_ context.Context, key Key) ([]models.Recipe, bool) {
	v, ok := c.entries.Get(key)
	if !ok {
		return nil, false
	}

	entry := v.(memoryEntry)
	if !entry.expires.IsZero() && c.now().After(entry.expires) {
		c.entries.Remove(key)
		return nil, false
	}

	return slices.Clone(entry.listing), true
}

func (c *MemoryCache) Set(_ context.Context, key Key, listing []models.Recipe) {
	entry := memoryEntry{listing: slices.Clone(listing)}
	if c.ttl > 0 {
		entry.expires = c.now().Add(c.ttl)
	}
	c.entries.Add(key, entry)
}

func (c *MemoryCache) InvalidateAll(context.Context) {
	c.entries.Purge()
}

// Len returns the number of cached listings.
func (c *MemoryCache) Len() int {
	return c.entries.Len()
}
