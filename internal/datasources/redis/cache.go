package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/reelworks/reelfeed/internal/datasources"
)

// Connect opens and verifies a redis client connection.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("checking redis connection: %w", err)
	}

	return client, nil
}

// putScript stores an entry only if the carried version is still current, and
// tracks the entry key in the user's index set so invalidation can find it.
// The index set's TTL is kept at least as long as its longest-lived entry.
var putScript = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
if tonumber(ARGV[1]) < current then
	return 0
end
redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
redis.call('SADD', KEYS[3], KEYS[2])
local indexTTL = redis.call('PTTL', KEYS[3])
if indexTTL < tonumber(ARGV[3]) then
	redis.call('PEXPIRE', KEYS[3], ARGV[3])
end
return 1
`)

// invalidateScript bumps the user's version and deletes every indexed entry in
// one atomic step, so no read can observe a deleted entry with an old version.
var invalidateScript = redis.NewScript(`
redis.call('INCR', KEYS[1])
local keys = redis.call('SMEMBERS', KEYS[2])
for i = 1, #keys do
	redis.call('DEL', keys[i])
end
redis.call('DEL', KEYS[2])
return #keys
`)

// RecommendationCache is a redis-backed cache. Entry expiry rides on native key
// TTLs, per-user invalidation on an index set of the user's entry keys, and the
// stale-write guard on a version counter checked inside a script.
type RecommendationCache struct {
	client *redis.Client
}

var _ datasources.RecommendationCache = (*RecommendationCache)(nil)

// NewRecommendationCache creates a cache on top of an existing client.
func NewRecommendationCache(client *redis.Client) *RecommendationCache {
	return &RecommendationCache{client: client}
}

func entryKey(userID string, page, pageSize int) string {
	return fmt.Sprintf("reco:entry:%s:%d:%d", userID, page, pageSize)
}

func versionKey(userID string) string {
	return "reco:ver:" + userID
}

func indexKey(userID string) string {
	return "reco:keys:" + userID
}

func (c *RecommendationCache) GetCachedRecommendations(
	ctx context.Context,
	userID string,
	page, pageSize int,
) ([]string, bool, error) {
	payload, err := c.client.Get(ctx, entryKey(userID, page, pageSize)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("fetching cached recommendations: %w", err)
	}

	var contentIDs []string
	if err := json.Unmarshal([]byte(payload), &contentIDs); err != nil {
		return nil, false, fmt.Errorf("decoding cached recommendations: %w", err)
	}

	return contentIDs, true, nil
}

func (c *RecommendationCache) PutCachedRecommendations(
	ctx context.Context,
	userID string,
	page, pageSize int,
	contentIDs []string,
	ttl time.Duration,
	version int64,
) error {
	// A non-positive TTL would store an already-expired entry; skip the write.
	if ttl <= 0 {
		return nil
	}

	payload, err := json.Marshal(contentIDs)
	if err != nil {
		return fmt.Errorf("encoding cached recommendations: %w", err)
	}

	err = putScript.Run(ctx, c.client,
		[]string{versionKey(userID), entryKey(userID, page, pageSize), indexKey(userID)},
		version, payload, ttl.Milliseconds(),
	).Err()
	if err != nil {
		return fmt.Errorf("storing cached recommendations: %w", err)
	}

	return nil
}

func (c *RecommendationCache) GetCacheVersion(ctx context.Context, userID string) (int64, error) {
	version, err := c.client.Get(ctx, versionKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("fetching cache version: %w", err)
	}

	return version, nil
}

func (c *RecommendationCache) InvalidateUserCache(ctx context.Context, userID string) error {
	err := invalidateScript.Run(ctx, c.client,
		[]string{versionKey(userID), indexKey(userID)},
	).Err()
	if err != nil {
		return fmt.Errorf("invalidating user cache: %w", err)
	}

	return nil
}

// DeleteExpiredCacheEntries is a no-op for this backend: redis drops expired
// keys natively, so only the durable backend needs sweeping.
func (c *RecommendationCache) DeleteExpiredCacheEntries(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}
