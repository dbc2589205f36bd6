package memory

import (
	"context"
	"sync"
	"time"

	"github.com/reelworks/reelfeed/internal/datasources"
)

type cacheKey struct {
	userID   string
	page     int
	pageSize int
}

type cacheEntry struct {
	contentIDs []string
	expiresAt  time.Time
}

// RecommendationCache is an in-process cache backend. Entries are indexed per
// user so invalidation touches only that user's keys. Suitable for
// single-instance deployments and tests; use the redis backend when serving
// from more than one process.
type RecommendationCache struct {
	clock datasources.Clock

	mu       sync.Mutex
	entries  map[cacheKey]cacheEntry
	byUser   map[string]map[cacheKey]struct{}
	versions map[string]int64
}

var _ datasources.RecommendationCache = (*RecommendationCache)(nil)

// NewRecommendationCache creates an empty in-process cache.
func NewRecommendationCache(clock datasources.Clock) *RecommendationCache {
	return &RecommendationCache{
		clock:    clock,
		entries:  map[cacheKey]cacheEntry{},
		byUser:   map[string]map[cacheKey]struct{}{},
		versions: map[string]int64{},
	}
}

func (c *RecommendationCache) GetCachedRecommendations(
	_ context.Context,
	userID string,
	page, pageSize int,
) ([]string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey{userID: userID, page: page, pageSize: pageSize}
	entry, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}

	if !c.clock.Now().Before(entry.expiresAt) {
		c.deleteLocked(key)
		return nil, false, nil
	}

	contentIDs := make([]string, len(entry.contentIDs))
	copy(contentIDs, entry.contentIDs)
	return contentIDs, true, nil
}

func (c *RecommendationCache) PutCachedRecommendations(
	_ context.Context,
	userID string,
	page, pageSize int,
	contentIDs []string,
	ttl time.Duration,
	version int64,
) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// An invalidation has landed since this ranking was computed; drop the write.
	if version < c.versions[userID] {
		return nil
	}

	stored := make([]string, len(contentIDs))
	copy(stored, contentIDs)

	key := cacheKey{userID: userID, page: page, pageSize: pageSize}
	c.entries[key] = cacheEntry{
		contentIDs: stored,
		expiresAt:  c.clock.Now().Add(ttl),
	}

	if c.byUser[userID] == nil {
		c.byUser[userID] = map[cacheKey]struct{}{}
	}
	c.byUser[userID][key] = struct{}{}

	return nil
}

func (c *RecommendationCache) GetCacheVersion(_ context.Context, userID string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.versions[userID], nil
}

func (c *RecommendationCache) InvalidateUserCache(_ context.Context, userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.byUser[userID] {
		delete(c.entries, key)
	}
	delete(c.byUser, userID)
	c.versions[userID]++

	return nil
}

func (c *RecommendationCache) DeleteExpiredCacheEntries(_ context.Context, now time.Time) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var deleted int64
	for key, entry := range c.entries {
		if !now.Before(entry.expiresAt) {
			c.deleteLocked(key)
			deleted++
		}
	}

	return deleted, nil
}

func (c *RecommendationCache) deleteLocked(key cacheKey) {
	delete(c.entries, key)
	if keys := c.byUser[key.userID]; keys != nil {
		delete(keys, key)
		if len(keys) == 0 {
			delete(c.byUser, key.userID)
		}
	}
}
