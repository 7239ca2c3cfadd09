package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brandbong/Vedham/internal/domain"
)

// setupTestRedis creates a miniredis server and returns a RedisCache instance
func setupTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return NewRedisCache(client), mr
}

func TestGet_Success(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	entries := []domain.CartEntry{
		{ProductID: "moringa-powder", Quantity: 2},
		{ProductID: "ragi-malt", Quantity: 1},
	}
	data, _ := json.Marshal(entries)
	mr.Set(cartKey, string(data))

	result, err := cache.Get(ctx)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "moringa-powder", result[0].ProductID)
	assert.Equal(t, 2, result[0].Quantity)
}

func TestGet_CacheMiss(t *testing.T) {
	cache, _ := setupTestRedis(t)

	result, err := cache.Get(context.Background())
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Nil(t, result)
}

func TestGet_InvalidJSON(t *testing.T) {
	cache, mr := setupTestRedis(t)

	mr.Set(cartKey, "{not json")

	result, err := cache.Get(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
	assert.Nil(t, result)
}

func TestSet_ThenGetRoundTrip(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	entries := []domain.CartEntry{{ProductID: "moringa-dosa-mix", Quantity: 3}}
	require.NoError(t, cache.Set(ctx, entries))

	result, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, result)

	// Entry must carry a TTL so an abandoned cache copy eventually expires
	assert.Greater(t, mr.TTL(cartKey), time.Duration(0))
}

func TestDelete_RemovesEntry(t *testing.T) {
	cache, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, []domain.CartEntry{{ProductID: "ragi-malt", Quantity: 1}}))
	require.NoError(t, cache.Delete(ctx))

	_, err := cache.Get(ctx)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestDelete_MissingKeyIsNoop(t *testing.T) {
	cache, _ := setupTestRedis(t)
	assert.NoError(t, cache.Delete(context.Background()))
}
