package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ViewCache implements ports.OfferViewCache using Redis. Entries hold
// rendered offer views keyed by their filter, so any catalog mutation
// invalidates the whole prefix.
type ViewCache struct {
	client *goredis.Client
	prefix string
}

// NewViewCache creates a new Redis-backed offer view cache.
func NewViewCache(client *goredis.Client) *ViewCache {
	return &ViewCache{
		client: client,
		prefix: "offerview:",
	}
}

// Get retrieves a cached rendered view by filter key.
// Returns nil, nil if the key does not exist.
func (c *ViewCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis view get: %w", err)
	}
	return val, nil
}

// Set stores a rendered view with TTL.
func (c *ViewCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	err := c.client.Set(ctx, c.prefix+key, payload, ttl).Err()
	if err != nil {
		return fmt.Errorf("redis view set: %w", err)
	}
	return nil
}

// Invalidate drops every cached view. Runs after each catalog mutation.
func (c *ViewCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis view scan: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis view del: %w", err)
	}
	return nil
}
