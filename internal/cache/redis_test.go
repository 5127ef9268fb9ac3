package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindredapp/kindred/internal/cache"
	"github.com/kindredapp/kindred/internal/config"
)

func setupCache(t *testing.T) (*cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	cfg := &config.Config{}
	cfg.Redis.Addr = mr.Addr()
	return cache.NewRedisCache(cfg), mr
}

func TestRedisCache_SetGetDel(t *testing.T) {
	ctx := context.Background()
	c, _ := setupCache(t)

	require.NoError(t, c.Ping(ctx))
	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))

	val, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)

	require.NoError(t, c.Del(ctx, "k"))
	_, err = c.Get(ctx, "k")
	assert.Error(t, err) // redis.Nil after delete
}

func TestRedisCache_LikeCount(t *testing.T) {
	ctx := context.Background()
	c, mr := setupCache(t)

	// miss reads as zero, not an error
	count, err := c.GetLikeCount(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, c.UpdateLikeCount(ctx, 42, 7))
	count, err = c.GetLikeCount(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)

	// update refreshes the TTL
	ttl := mr.TTL(c.KeyForLikeCount(42))
	assert.Equal(t, time.Hour, ttl)
}

func TestRedisCache_IncrDecr(t *testing.T) {
	ctx := context.Background()
	c, _ := setupCache(t)

	key := c.KeyForLikeCount(7)
	n, err := c.Incr(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = c.Decr(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestRedisCache_InvalidateRecommendations(t *testing.T) {
	ctx := context.Background()
	c, _ := setupCache(t)

	key := c.KeyForRecommendations(7)
	require.NoError(t, c.Set(ctx, key, "cached", time.Minute))
	require.NoError(t, c.InvalidateRecommendations(ctx, 7))

	_, err := c.Get(ctx, key)
	assert.Error(t, err)
}

func TestKeyShapes(t *testing.T) {
	c := &cache.RedisCache{}
	assert.Equal(t, "likes:count:5", c.KeyForLikeCount(5))
	assert.Equal(t, "recs:user:5", c.KeyForRecommendations(5))
}
