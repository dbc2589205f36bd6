package command

import (
	"context"
	"fmt"

	"github.com/reelworks/reelfeed/internal/datasources"
	"github.com/reelworks/reelfeed/internal/domain"
)

// InvalidateRecommendationCacheRequest is the request for the
// InvalidateRecommendationCache command.
type InvalidateRecommendationCacheRequest struct {
	UserID string
}

// InvalidateRecommendationCache drops every cached recommendation page for a
// user. It is the administrative counterpart of the invalidation the
// interaction recorder performs automatically.
type InvalidateRecommendationCache struct {
	UserChecker datasources.UserExistenceChecker
	Invalidator datasources.UserCacheInvalidator
}

// NewInvalidateRecommendationCache creates a properly initialized
// InvalidateRecommendationCache command.
func NewInvalidateRecommendationCache(
	userChecker datasources.UserExistenceChecker,
	invalidator datasources.UserCacheInvalidator,
) *InvalidateRecommendationCache {
	return &InvalidateRecommendationCache{
		UserChecker: userChecker,
		Invalidator: invalidator,
	}
}

// Execute removes the user's cached entries across all pages and page sizes.
func (c *InvalidateRecommendationCache) Execute(
	ctx context.Context, req InvalidateRecommendationCacheRequest,
) (Empty, error) {
	exists, err := c.UserChecker.UserExists(ctx, req.UserID)
	if err != nil {
		return Empty{}, fmt.Errorf("checking user: %w", err)
	}
	if !exists {
		return Empty{}, fmt.Errorf("user %q: %w", req.UserID, domain.ErrUserNotFound)
	}

	if err := c.Invalidator.InvalidateUserCache(ctx, req.UserID); err != nil {
		return Empty{}, fmt.Errorf("invalidating recommendation cache: %w", err)
	}

	domain.LoggerFromContext(ctx).InfoContext(ctx, "invalidated recommendation cache", "userID", req.UserID)

	return Empty{}, nil
}
