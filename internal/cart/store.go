// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cart

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// keyPrefix namespaces cart snapshots in Valkey.
	keyPrefix = "cart:"

	// DefaultTTL is how long an untouched cart survives. Every write
	// refreshes it, so only abandoned carts expire.
	DefaultTTL = 7 * 24 * time.Hour
)

// Store persists cart snapshots in Valkey, one JSON array per visitor
// token. Writes are last-write-wins; two clients holding the same token
// overwrite each other silently.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a cart store backed by the given Valkey client.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client, ttl: DefaultTTL}
}

// Load restores the cart snapshot for a token. A missing or corrupt
// snapshot yields an empty cart; parse errors are logged, never returned,
// so a damaged snapshot degrades to a fresh cart instead of an error page.
func (s *Store) Load(ctx context.Context, token string) Cart {
	payload, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	if err == redis.Nil {
		return Cart{}
	}
	if err != nil {
		slog.Warn("cart load error", "error", err)
		return Cart{}
	}

	var c Cart
	if err := c.UnmarshalJSON(payload); err != nil {
		slog.Warn("discarding corrupt cart snapshot", "error", err)
		return Cart{}
	}
	return c
}

// Save writes the full cart snapshot for a token and refreshes its TTL.
func (s *Store) Save(ctx context.Context, token string, c Cart) error {
	payload, err := c.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cart marshal: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+token, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("cart save: %w", err)
	}
	return nil
}

// Clear deletes the snapshot for a token entirely.
func (s *Store) Clear(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("cart clear: %w", err)
	}
	return nil
}
