package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	c := NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestSidebarCounts_RoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	// Miss before anything is stored
	_, ok, err := c.GetSidebarCounts(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	counts := map[string]int{"pending_call": 12, "awaiting_cv": 3}
	require.NoError(t, c.SetSidebarCounts(ctx, counts))

	got, ok, err := c.GetSidebarCounts(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, counts, got)
}

func TestSidebarCounts_Invalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetSidebarCounts(ctx, map[string]int{"qualified": 1}))
	require.NoError(t, c.InvalidateSidebarCounts(ctx))

	_, ok, err := c.GetSidebarCounts(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// Invalidating again is a no-op
	require.NoError(t, c.InvalidateSidebarCounts(ctx))
}

func TestSidebarCounts_Expiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetSidebarCounts(ctx, map[string]int{"closed": 7}))
	mr.FastForward(61 * time.Second)

	_, ok, err := c.GetSidebarCounts(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
