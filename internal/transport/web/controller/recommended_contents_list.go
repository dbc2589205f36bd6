package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/reelworks/reelfeed/internal/command"
	"github.com/reelworks/reelfeed/internal/datasources"
	"github.com/reelworks/reelfeed/internal/domain"
)

// RecommendedContentsListResponse is the JSON envelope for the personalized feed.
type RecommendedContentsListResponse struct {
	Data     []domain.Content                `json:"data"`
	Metadata RecommendedContentsListMetadata `json:"metadata"`
}

// RecommendedContentsListMetadata echoes the window the page was served with.
type RecommendedContentsListMetadata struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// RecommendedContentsList handles GET /v1/contents/recommended.
type RecommendedContentsList struct {
	RecommendCmd command.Command[command.GetRecommendationsRequest, command.GetRecommendationsResponse]
	Fetcher      datasources.ContentsByIDsFetcher
}

func (c RecommendedContentsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse pagination in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	res, err := c.RecommendCmd.Execute(ctx, command.GetRecommendationsRequest{
		UserID:   userID,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		logger.ErrorContext(ctx, "unable to get recommended contents", "error", err)

		if errors.Is(err, domain.ErrDependencyUnavailable) {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	contents, err := c.Fetcher.FetchContentsByIDs(ctx, res.ContentIDs)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch content metadata", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if contents == nil {
		contents = []domain.Content{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(RecommendedContentsListResponse{
		Data: contents,
		Metadata: RecommendedContentsListMetadata{
			Page:     page,
			PageSize: pageSize,
		},
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write recommended contents to response", "error", err)
	}
}
