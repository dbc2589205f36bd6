package command

import (
	"context"
	"fmt"

	"github.com/reelworks/reelfeed/internal/datasources"
	"github.com/reelworks/reelfeed/internal/domain"
)

// SweepExpiredCacheRequest is the request for the SweepExpiredCache command.
// This command takes no parameters beyond context.
type SweepExpiredCacheRequest struct{}

// SweepExpiredCacheResponse is the response from the SweepExpiredCache command.
type SweepExpiredCacheResponse struct {
	Deleted int64
}

// SweepExpiredCache bulk-removes recommendation cache entries past their
// expiry. Expired entries are already invisible to reads; sweeping just keeps
// durable cache stores from accumulating dead rows.
type SweepExpiredCache struct {
	Deleter datasources.ExpiredCacheDeleter
	Clock   datasources.Clock
}

// NewSweepExpiredCache creates a properly initialized SweepExpiredCache command.
func NewSweepExpiredCache(
	deleter datasources.ExpiredCacheDeleter,
	clock datasources.Clock,
) *SweepExpiredCache {
	return &SweepExpiredCache{
		Deleter: deleter,
		Clock:   clock,
	}
}

// Execute deletes every cache entry whose expiry has passed.
func (c *SweepExpiredCache) Execute(
	ctx context.Context, _ SweepExpiredCacheRequest,
) (SweepExpiredCacheResponse, error) {
	deleted, err := c.Deleter.DeleteExpiredCacheEntries(ctx, c.Clock.Now())
	if err != nil {
		return SweepExpiredCacheResponse{}, fmt.Errorf("deleting expired cache entries: %w", err)
	}

	domain.LoggerFromContext(ctx).InfoContext(ctx, "swept expired cache entries", "deleted", deleted)

	return SweepExpiredCacheResponse{Deleted: deleted}, nil
}
