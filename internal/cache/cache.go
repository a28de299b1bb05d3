// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache holds the recipe listing cache. Entries are the listings
// already filtered for one requester; every write clears all of them.
package cache

import (
	"context"
	"fmt"

	"github.com/MKhiriev/miam-miam/internal/config"
	"github.com/MKhiriev/miam-miam/internal/logger"
	"github.com/MKhiriev/miam-miam/models"
)

// ListingCache caches filtered recipe listings.
type ListingCache interface {
	// Get returns the cached listing for key, if any.
	Get(ctx context.Context, key Key) ([]models.Recipe, bool)
	// Set stores listing under key.
	Set(ctx context.Context, key Key, listing []models.Recipe)
	// InvalidateAll drops every entry.
	InvalidateAll(ctx context.Context)
}

// Key identifies one listing: who asked and with which filters.
type Key struct {
	Requester string
	Query     string
	Type      string
}

// NewKey builds the key of a listing requested by r.
func NewKey(r models.Requester, q models.ListingQuery) Key {
	return Key{
		Requester: r.CacheKey(),
		Query:     q.Q,
		Type:      q.Type,
	}
}

func (k Key) String() string {
	return fmt.Sprintf("recettes_%s_%s_%s", k.Requester, k.Query, k.Type)
}

// NewListingCache returns the cache selected by cfg.Driver.
func NewListingCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (ListingCache, error) {
	switch cfg.Driver {
	case config.CacheDriverMemory:
		c, err := NewMemoryCache(cfg.Size, cfg.TTL)
		if err != nil {
			return nil, err
		}
		return c, nil
	case config.CacheDriverRedis:
		c, err := NewRedisCache(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return c, nil
	case config.CacheDriverNone:
		return Nop(), nil
	default:
		return nil, fmt.Errorf("unknown cache driver %q", cfg.Driver)
	}
}

type nopCache struct{}

// Nop returns a cache that stores nothing.
func Nop() ListingCache { return nopCache{} }

func (nopCache) Get(context.Context, Key) ([]models.Recipe, bool) { return nil, false }

func (nopCache) Set(context.Context, Key, []models.Recipe) {}

func (nopCache) InvalidateAll(context.Context) {}
