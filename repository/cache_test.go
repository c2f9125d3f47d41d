package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMemoryCache_SetGet(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()
	defer cache.Stop()

	_, ok := cache.Get(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "k", "v", 0))
	val, ok := cache.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", val)
	assert.Equal(t, 1, cache.Len())
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()
	defer cache.Stop()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.Set(ctx, "k", "v", time.Minute))

	now = now.Add(59 * time.Second)
	_, ok := cache.Get(ctx, "k")
	assert.True(t, ok)

	now = now.Add(2 * time.Second)
	_, ok = cache.Get(ctx, "k")
	assert.False(t, ok)
	assert.Zero(t, cache.Len())
}

func TestMemoryCache_SweepRemovesExpired(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()
	defer cache.Stop()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	for _, key := range []string{"a", "b", "c"} {
		require.NoError(t, cache.Set(ctx, key, "v", time.Nanosecond))
	}
	require.NoError(t, cache.Set(ctx, "kept", "v", 0))
	require.Equal(t, 4, cache.Len())

	now = now.Add(time.Second)
	cache.sweep()

	assert.Equal(t, 1, cache.Len())
	_, ok := cache.Get(ctx, "kept")
	assert.True(t, ok)
}

func TestMemoryCache_LimitEvictsSoonestToExpire(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCacheWithLimit(2)
	defer cache.Stop()

	require.NoError(t, cache.Set(ctx, "forever", "v", 0))
	require.NoError(t, cache.Set(ctx, "short", "v", time.Minute))
	require.NoError(t, cache.Set(ctx, "long", "v", time.Hour))

	assert.Equal(t, 2, cache.Len())
	_, ok := cache.Get(ctx, "short")
	assert.False(t, ok)
	_, ok = cache.Get(ctx, "forever")
	assert.True(t, ok)

	// Overwriting an existing key never evicts.
	require.NoError(t, cache.Set(ctx, "long", "v2", time.Hour))
	assert.Equal(t, 2, cache.Len())
}

func TestMemoryCache_StopIsIdempotent(t *testing.T) {
	cache := NewMemoryCache()
	cache.Stop()
	assert.NotPanics(t, cache.Stop)
}

func TestRedisCache_ConnectFailsWithoutServer(t *testing.T) {
	cache := NewRedisCache(RedisOptions{Addr: "127.0.0.1:1"}, zap.NewNop())
	defer cache.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	assert.Error(t, cache.Connect(ctx, 1))
}

var _ CacheRepository = (*MemoryCache)(nil)
var _ CacheRepository = (*RedisCache)(nil)
