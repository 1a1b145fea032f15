// Package cache provides the Redis-backed cache for the recruiter UI's
// sidebar counts. Counting applications per status bucket on every page load
// is the hottest query in the system; the cache holds the result for a
// minute and every status transition invalidates it.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/recruitflow/recruitflow/pkg/config"
)

const (
	sidebarCountsKey = "sidebar_counts"
	sidebarCountsTTL = 60 * time.Second
)

// Cache wraps the Redis client.
type Cache struct {
	rdb *redis.Client
}

// New connects to Redis with the given configuration.
func New(cfg config.RedisConfig) *Cache {
	return &Cache{
		rdb: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

// NewFromClient wraps an existing Redis client (useful for testing).
func NewFromClient(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

// Close releases the underlying connection pool.
func (c *Cache) Close() error {
	return c.rdb.Close()
}

// Ping verifies connectivity.
func (c *Cache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// GetSidebarCounts returns the cached per-status counts, or ok=false on a
// cache miss.
func (c *Cache) GetSidebarCounts(ctx context.Context) (map[string]int, bool, error) {
	raw, err := c.rdb.Get(ctx, sidebarCountsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read sidebar counts: %w", err)
	}

	var counts map[string]int
	if err := json.Unmarshal(raw, &counts); err != nil {
		return nil, false, fmt.Errorf("failed to decode sidebar counts: %w", err)
	}
	return counts, true, nil
}

// SetSidebarCounts stores the per-status counts with the standard TTL.
func (c *Cache) SetSidebarCounts(ctx context.Context, counts map[string]int) error {
	raw, err := json.Marshal(counts)
	if err != nil {
		return fmt.Errorf("failed to encode sidebar counts: %w", err)
	}
	if err := c.rdb.Set(ctx, sidebarCountsKey, raw, sidebarCountsTTL).Err(); err != nil {
		return fmt.Errorf("failed to store sidebar counts: %w", err)
	}
	return nil
}

// InvalidateSidebarCounts drops the cached counts. Called after every status
// transition; a missing key is not an error.
func (c *Cache) InvalidateSidebarCounts(ctx context.Context) error {
	if err := c.rdb.Del(ctx, sidebarCountsKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate sidebar counts: %w", err)
	}
	return nil
}
