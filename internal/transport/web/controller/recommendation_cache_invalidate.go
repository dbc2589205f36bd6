package controller

import (
	"errors"
	"net/http"

	"github.com/reelworks/reelfeed/internal/command"
	"github.com/reelworks/reelfeed/internal/domain"
)

// RecommendationCacheInvalidate handles POST /v1/recommendations/cache/invalidate,
// the explicit trigger for dropping the calling user's cached pages.
type RecommendationCacheInvalidate struct {
	InvalidateCmd command.Command[command.InvalidateRecommendationCacheRequest, command.Empty]
}

func (c RecommendationCacheInvalidate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	req := command.InvalidateRecommendationCacheRequest{
		UserID: userID,
	}
	if _, err := c.InvalidateCmd.Execute(ctx, req); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		logger.ErrorContext(ctx, "failed to invalidate recommendation cache", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
