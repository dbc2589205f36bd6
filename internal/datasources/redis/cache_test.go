package redis

import (
	"context"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestCache(t *testing.T) (*RecommendationCache, *goredis.Client) {
	if testing.Short() {
		t.Skip("skipping redis integration tests in short mode")
	}

	client, err := Connect(context.Background(), os.Getenv("REDIS_ADDR"), "", 0)
	if err != nil {
		t.Fatal(err)
	}

	require.NoError(t, client.FlushDB(context.Background()).Err())

	return NewRecommendationCache(client), client
}

func TestRecommendationCache_PutThenGet(t *testing.T) {
	sut, client := setupTestCache(t)
	defer func() { _ = client.Close() }()
	ctx := context.Background()

	require.NoError(t, sut.PutCachedRecommendations(ctx, "user-1", 1, 10,
		[]string{"c3", "c1", "c2"}, time.Hour, 0))

	got, ok, err := sut.GetCachedRecommendations(ctx, "user-1", 1, 10)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"c3", "c1", "c2"}, got)

	_, ok, err = sut.GetCachedRecommendations(ctx, "user-1", 2, 10)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecommendationCache_NativeExpiry(t *testing.T) {
	sut, client := setupTestCache(t)
	defer func() { _ = client.Close() }()
	ctx := context.Background()

	require.NoError(t, sut.PutCachedRecommendations(ctx, "user-1", 1, 10,
		[]string{"c1"}, 50*time.Millisecond, 0))

	time.Sleep(100 * time.Millisecond)

	_, ok, err := sut.GetCachedRecommendations(ctx, "user-1", 1, 10)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecommendationCache_InvalidateUser(t *testing.T) {
	sut, client := setupTestCache(t)
	defer func() { _ = client.Close() }()
	ctx := context.Background()

	require.NoError(t, sut.PutCachedRecommendations(ctx, "user-1", 1, 10, []string{"c1"}, time.Hour, 0))
	require.NoError(t, sut.PutCachedRecommendations(ctx, "user-1", 2, 10, []string{"c2"}, time.Hour, 0))
	require.NoError(t, sut.PutCachedRecommendations(ctx, "user-2", 1, 10, []string{"c9"}, time.Hour, 0))

	require.NoError(t, sut.InvalidateUserCache(ctx, "user-1"))

	_, ok, err := sut.GetCachedRecommendations(ctx, "user-1", 1, 10)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = sut.GetCachedRecommendations(ctx, "user-1", 2, 10)
	require.NoError(t, err)
	assert.False(t, ok)

	got, ok, err := sut.GetCachedRecommendations(ctx, "user-2", 1, 10)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"c9"}, got)
}

func TestRecommendationCache_StaleVersionedWriteDiscarded(t *testing.T) {
	sut, client := setupTestCache(t)
	defer func() { _ = client.Close() }()
	ctx := context.Background()

	version, err := sut.GetCacheVersion(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)

	require.NoError(t, sut.InvalidateUserCache(ctx, "user-1"))

	require.NoError(t, sut.PutCachedRecommendations(ctx, "user-1", 1, 10,
		[]string{"stale"}, time.Hour, version))
	_, ok, err := sut.GetCachedRecommendations(ctx, "user-1", 1, 10)
	require.NoError(t, err)
	assert.False(t, ok, "stale write must be discarded")

	current, err := sut.GetCacheVersion(ctx, "user-1")
	require.NoError(t, err)
	assert.Greater(t, current, version)

	require.NoError(t, sut.PutCachedRecommendations(ctx, "user-1", 1, 10,
		[]string{"fresh"}, time.Hour, current))
	got, ok, err := sut.GetCachedRecommendations(ctx, "user-1", 1, 10)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"fresh"}, got)
}
