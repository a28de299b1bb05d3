// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/miam-miam/internal/config"
	"github.com/MKhiriev/miam-miam/internal/logger"
	"github.com/MKhiriev/miam-miam/models"
)

const scanBatch = 100

// RedisCache is a [ListingCache] shared by every process using the same
// Redis database and prefix. Redis failures are logged and read as misses.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *logger.Logger
}

// NewRedisCache connects to cfg.RedisAddr and pings it.
func NewRedisCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisCache").Msg("error connecting redis")
		client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("addr", cfg.RedisAddr).Msg("using redis listing cache")

	return newRedisCache(client, cfg.Prefix, cfg.TTL, log), nil
}

func newRedisCache(client *redis.Client, prefix string, ttl time.Duration, log *logger.Logger) *RedisCache {
	return &RedisCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		logger: log,
	}
}

func (c *RedisCache) redisKey(key Key) string {
	sum := sha1.Sum([]byte(key.String()))
	return fmt.Sprintf("%s:%x", c.prefix, sum[:])
}

func (c *RedisCache) Get(ctx context.Context, key Key) ([]models.Recipe, bool) {
	raw, err := c.client.Get(ctx, c.redisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.logger.Warn().Err(err).Str("func", "RedisCache.Get").Msg("redis get failed")
		return nil, false
	}

	var listing []models.Recipe
	if err = json.Unmarshal(raw, &listing); err != nil {
		c.logger.Warn().Err(err).Str("func", "RedisCache.Get").Msg("corrupt cache entry")
		return nil, false
	}

	return listing, true
}

func (c *RedisCache) Set(ctx context.Context, key Key, listing []models.Recipe) {
	raw, err := json.Marshal(listing)
	if err != nil {
		return
	}

	// SETEX rejects a zero expiry
	if c.ttl > 0 {
		err = c.client.SetEx(ctx, c.redisKey(key), raw, c.ttl).Err()
	} else {
		err = c.client.Set(ctx, c.redisKey(key), raw, 0).Err()
	}
	if err != nil {
		c.logger.Warn().Err(err).Str("func", "RedisCache.Set").Msg("redis set failed")
	}
}

// InvalidateAll scans the prefix and deletes every key found.
func (c *RedisCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, c.prefix+":*", scanBatch).Result()
		if err != nil {
			c.logger.Warn().Err(err).Str("func", "RedisCache.InvalidateAll").Msg("redis scan failed")
			return
		}

		if len(keys) > 0 {
			if err = c.client.Del(ctx, keys...).Err(); err != nil {
				c.logger.Warn().Err(err).Str("func", "RedisCache.InvalidateAll").Msg("redis del failed")
				return
			}
		}

		cursor = next
		if cursor == 0 {
			return
		}
	}
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
