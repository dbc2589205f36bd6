package datasources

import (
	"context"
	"time"
)

// RecommendationCache stores ranked content-id pages per user.
// Entries expire after their TTL and are invalidated wholesale per user.
//
// Writes are guarded by a per-user monotonic version: a put stamped with a
// version older than the user's current one is discarded, never applied. That
// keeps an in-flight cache population from overwriting a later invalidation.
type RecommendationCache interface {
	CachedRecommendationsGetter
	CachedRecommendationsPutter
	CacheVersionGetter
	UserCacheInvalidator
	ExpiredCacheDeleter
}

// CachedRecommendationsGetter serves cache reads.
type CachedRecommendationsGetter interface {
	// GetCachedRecommendations returns the ranked content ids stored for
	// (user, page, pageSize). ok is false when no entry exists or the entry
	// has expired; expired entries are never returned.
	GetCachedRecommendations(ctx context.Context, userID string, page, pageSize int) (contentIDs []string, ok bool, err error)
}

// CachedRecommendationsPutter stores one ranked page window.
type CachedRecommendationsPutter interface {
	// PutCachedRecommendations overwrites the entry for (user, page, pageSize)
	// unless version is older than the user's current cache version, in which
	// case the write is silently dropped.
	PutCachedRecommendations(ctx context.Context, userID string, page, pageSize int, contentIDs []string, ttl time.Duration, version int64) error
}

// CacheVersionGetter reads a user's current cache version token.
type CacheVersionGetter interface {
	GetCacheVersion(ctx context.Context, userID string) (int64, error)
}

// UserCacheInvalidator removes every cached entry for a user, regardless of
// page and page size, and bumps the user's cache version.
type UserCacheInvalidator interface {
	InvalidateUserCache(ctx context.Context, userID string) error
}

// ExpiredCacheDeleter bulk-removes entries past their expiry.
type ExpiredCacheDeleter interface {
	DeleteExpiredCacheEntries(ctx context.Context, now time.Time) (int64, error)
}

// NullRecommendationCache is a null implementation of RecommendationCache.
// Every read misses and every write is dropped, so recommendations are always
// recomputed.
type NullRecommendationCache struct{}

var _ RecommendationCache = NullRecommendationCache{}

func (NullRecommendationCache) GetCachedRecommendations(_ context.Context, _ string, _, _ int) ([]string, bool, error) {
	return nil, false, nil
}

func (NullRecommendationCache) PutCachedRecommendations(_ context.Context, _ string, _, _ int, _ []string, _ time.Duration, _ int64) error {
	return nil
}

func (NullRecommendationCache) GetCacheVersion(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

func (NullRecommendationCache) InvalidateUserCache(_ context.Context, _ string) error {
	return nil
}

func (NullRecommendationCache) DeleteExpiredCacheEntries(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}
