// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// categories.go provides a Valkey-backed cache for the serialized category
// listing. The listing (titles + product counts) is served on every menu
// visit; caching the final JSON payload skips both the DB aggregate query
// and re-sorting.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// categoriesKey is the Valkey key holding the serialized listing.
	categoriesKey = "categories:list"

	// DefaultCategoryTTL bounds staleness if an invalidation is ever missed.
	DefaultCategoryTTL = 5 * time.Minute
)

// CategoryCache stores the ready-to-serve category listing JSON in Valkey.
type CategoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCategoryCache creates a category cache backed by the given Valkey client.
func NewCategoryCache(client *redis.Client, ttl time.Duration) *CategoryCache {
	if ttl == 0 {
		ttl = DefaultCategoryTTL
	}
	return &CategoryCache{client: client, ttl: ttl}
}

// Get retrieves the cached listing. Returns (nil, false) on miss.
func (cc *CategoryCache) Get(ctx context.Context) ([]byte, bool) {
	val, err := cc.client.Get(ctx, categoriesKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("category cache get error", "error", err)
		return nil, false
	}
	slog.Debug("category cache hit")
	return val, true
}

// Set stores the serialized listing with the configured TTL.
func (cc *CategoryCache) Set(ctx context.Context, payload []byte) {
	if err := cc.client.Set(ctx, categoriesKey, payload, cc.ttl).Err(); err != nil {
		slog.Warn("category cache set error", "error", err)
	}
}

// Invalidate drops the cached listing. Called after any category mutation
// and after product mutations, since product counts are part of the payload.
func (cc *CategoryCache) Invalidate(ctx context.Context) {
	if err := cc.client.Del(ctx, categoriesKey).Err(); err != nil {
		slog.Warn("category cache invalidate error", "error", err)
	}
	slog.Debug("category cache invalidated")
}
