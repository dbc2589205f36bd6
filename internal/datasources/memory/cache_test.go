package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestRecommendationCache_PutThenGet(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	cache := NewRecommendationCache(clock)

	err := cache.PutCachedRecommendations(ctx, "user-1", 1, 10, []string{"c3", "c1", "c2"}, time.Hour, 0)
	require.NoError(t, err)

	got, ok, err := cache.GetCachedRecommendations(ctx, "user-1", 1, 10)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"c3", "c1", "c2"}, got)
}

func TestRecommendationCache_MissStates(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	cache := NewRecommendationCache(clock)

	require.NoError(t, cache.PutCachedRecommendations(ctx, "user-1", 1, 10, []string{"c1"}, time.Hour, 0))

	cases := []struct {
		name     string
		userID   string
		page     int
		pageSize int
	}{
		{name: "unknown_user", userID: "user-2", page: 1, pageSize: 10},
		{name: "different_page", userID: "user-1", page: 2, pageSize: 10},
		{name: "different_page_size", userID: "user-1", page: 1, pageSize: 20},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok, err := cache.GetCachedRecommendations(ctx, tc.userID, tc.page, tc.pageSize)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestRecommendationCache_ExpiredEntryNeverReturned(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	cache := NewRecommendationCache(clock)

	require.NoError(t, cache.PutCachedRecommendations(ctx, "user-1", 1, 10, []string{"c1"}, time.Hour, 0))

	// Exactly at expiry counts as expired.
	clock.Advance(time.Hour)
	_, ok, err := cache.GetCachedRecommendations(ctx, "user-1", 1, 10)
	require.NoError(t, err)
	assert.False(t, ok)

	// A fresh put right after is served until its own expiry.
	require.NoError(t, cache.PutCachedRecommendations(ctx, "user-1", 1, 10, []string{"c2"}, time.Hour, 0))
	got, ok, err := cache.GetCachedRecommendations(ctx, "user-1", 1, 10)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"c2"}, got)
}

func TestRecommendationCache_InvalidateUserRemovesAllPages(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	cache := NewRecommendationCache(clock)

	require.NoError(t, cache.PutCachedRecommendations(ctx, "user-1", 1, 10, []string{"c1"}, time.Hour, 0))
	require.NoError(t, cache.PutCachedRecommendations(ctx, "user-1", 2, 10, []string{"c2"}, time.Hour, 0))
	require.NoError(t, cache.PutCachedRecommendations(ctx, "user-1", 1, 20, []string{"c1", "c2"}, time.Hour, 0))
	require.NoError(t, cache.PutCachedRecommendations(ctx, "user-2", 1, 10, []string{"c9"}, time.Hour, 0))

	require.NoError(t, cache.InvalidateUserCache(ctx, "user-1"))

	for _, key := range []struct{ page, pageSize int }{{1, 10}, {2, 10}, {1, 20}} {
		_, ok, err := cache.GetCachedRecommendations(ctx, "user-1", key.page, key.pageSize)
		require.NoError(t, err)
		assert.False(t, ok)
	}

	// Other users are untouched.
	got, ok, err := cache.GetCachedRecommendations(ctx, "user-2", 1, 10)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"c9"}, got)
}

func TestRecommendationCache_StaleVersionedWriteDiscarded(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	cache := NewRecommendationCache(clock)

	version, err := cache.GetCacheVersion(ctx, "user-1")
	require.NoError(t, err)

	// An interaction lands while a ranking computed at the old version is in flight.
	require.NoError(t, cache.InvalidateUserCache(ctx, "user-1"))

	require.NoError(t, cache.PutCachedRecommendations(ctx, "user-1", 1, 10, []string{"stale"}, time.Hour, version))
	_, ok, err := cache.GetCachedRecommendations(ctx, "user-1", 1, 10)
	require.NoError(t, err)
	assert.False(t, ok, "stale write must be discarded, not applied")

	// A write carrying the current version lands normally.
	current, err := cache.GetCacheVersion(ctx, "user-1")
	require.NoError(t, err)
	assert.Greater(t, current, version)

	require.NoError(t, cache.PutCachedRecommendations(ctx, "user-1", 1, 10, []string{"fresh"}, time.Hour, current))
	got, ok, err := cache.GetCachedRecommendations(ctx, "user-1", 1, 10)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"fresh"}, got)
}

func TestRecommendationCache_DeleteExpiredCacheEntries(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	clock := newFakeClock(start)
	cache := NewRecommendationCache(clock)

	require.NoError(t, cache.PutCachedRecommendations(ctx, "user-1", 1, 10, []string{"c1"}, time.Hour, 0))
	require.NoError(t, cache.PutCachedRecommendations(ctx, "user-2", 1, 10, []string{"c2"}, 3*time.Hour, 0))

	clock.Advance(2 * time.Hour)
	deleted, err := cache.DeleteExpiredCacheEntries(ctx, clock.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, ok, err := cache.GetCachedRecommendations(ctx, "user-1", 1, 10)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = cache.GetCachedRecommendations(ctx, "user-2", 1, 10)
	require.NoError(t, err)
	assert.True(t, ok)
}
