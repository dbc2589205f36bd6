package command

import (
	"context"
	"fmt"
	"time"

	"github.com/reelworks/reelfeed/internal/datasources"
	"github.com/reelworks/reelfeed/internal/domain"
)

// DefaultCacheTTL is how long a freshly computed ranking stays servable when
// the configuration does not override it.
const DefaultCacheTTL = 6 * time.Hour

// GetRecommendationsRequest is the request for the GetRecommendations command.
// Page is 1-based; Page and PageSize must both be positive.
type GetRecommendationsRequest struct {
	UserID   string
	Page     int
	PageSize int
}

// GetRecommendationsResponse is the response from the GetRecommendations command.
type GetRecommendationsResponse struct {
	ContentIDs []string
}

// GetRecommendationsConfig holds configuration for recommendation serving.
type GetRecommendationsConfig struct {
	// CandidateWindowDays restricts candidates to content published within
	// this many days. Zero disables the window.
	CandidateWindowDays int

	// ExcludeViewed removes content the user has already viewed from the
	// candidate set.
	ExcludeViewed bool

	// FeaturedSlots is how many currently-featured items are pinned ahead of
	// the scored ranking. Zero disables pinning.
	FeaturedSlots int

	// ReadAheadPages is how many leading page windows of a fresh ranking are
	// cached beyond the requested one.
	ReadAheadPages int

	// CacheTTL overrides DefaultCacheTTL when positive.
	CacheTTL time.Duration
}

// TTL returns the effective cache lifetime.
func (c GetRecommendationsConfig) TTL() time.Duration {
	if c.CacheTTL > 0 {
		return c.CacheTTL
	}
	return DefaultCacheTTL
}

// GetRecommendations serves one page of a user's personalized ranking.
// It coordinates cache lookup, candidate fetch, scoring, and cache population.
//
// Cache writes carry the version captured before scoring began, so a ranking
// computed from pre-interaction preference state is discarded by the store
// rather than overwriting that interaction's invalidation.
type GetRecommendations struct {
	CandidateLister  datasources.EligibleCandidateLister
	FeaturedLister   datasources.FeaturedContentLister
	PreferenceGetter datasources.PreferenceGetter
	CacheGetter      datasources.CachedRecommendationsGetter
	CachePutter      datasources.CachedRecommendationsPutter
	VersionGetter    datasources.CacheVersionGetter
	Clock            datasources.Clock
	Scorer           domain.Scorer
	Config           GetRecommendationsConfig
}

// NewGetRecommendations creates a properly initialized GetRecommendations command.
func NewGetRecommendations(
	candidateLister datasources.EligibleCandidateLister,
	featuredLister datasources.FeaturedContentLister,
	preferenceGetter datasources.PreferenceGetter,
	cache datasources.RecommendationCache,
	clock datasources.Clock,
	scorer domain.Scorer,
	config GetRecommendationsConfig,
) *GetRecommendations {
	return &GetRecommendations{
		CandidateLister:  candidateLister,
		FeaturedLister:   featuredLister,
		PreferenceGetter: preferenceGetter,
		CacheGetter:      cache,
		CachePutter:      cache,
		VersionGetter:    cache,
		Clock:            clock,
		Scorer:           scorer,
		Config:           config,
	}
}

// Execute returns the ranked content ids for the requested page window.
func (c *GetRecommendations) Execute(
	ctx context.Context, req GetRecommendationsRequest,
) (GetRecommendationsResponse, error) {
	logger := domain.LoggerFromContext(ctx)

	if req.Page < 1 || req.PageSize < 1 {
		return GetRecommendationsResponse{}, fmt.Errorf("page and page size must be positive, got page=%d page_size=%d", req.Page, req.PageSize)
	}

	// 1. Serve straight from cache when a fresh entry exists. A failed cache
	// read degrades to recomputation; the result is correct either way.
	cached, ok, err := c.CacheGetter.GetCachedRecommendations(ctx, req.UserID, req.Page, req.PageSize)
	if err != nil {
		logger.WarnContext(ctx, "recommendation cache read failed, recomputing", "error", err)
	} else if ok {
		return GetRecommendationsResponse{ContentIDs: cached}, nil
	}

	// 2. Capture the user's cache version before any scoring input is read.
	// Interactions landing after this point bump the version, and the store
	// then discards our writes while we surface the freshly computed result.
	version, versionErr := c.VersionGetter.GetCacheVersion(ctx, req.UserID)
	if versionErr != nil {
		logger.WarnContext(ctx, "cache version unavailable, skipping cache population", "error", versionErr)
	}

	ranked, err := c.computeRanking(ctx, req.UserID)
	if err != nil {
		return GetRecommendationsResponse{}, err
	}

	// 3. Populate the leading page windows plus the requested one, then
	// return the requested window. Failed writes only cost a recompute on
	// the next read, so they are logged rather than surfaced.
	if versionErr == nil {
		c.populateCache(ctx, req, ranked, version)
	}

	return GetRecommendationsResponse{ContentIDs: pageWindow(ranked, req.Page, req.PageSize)}, nil
}

// computeRanking produces the full ordered content-id list for the user:
// pinned featured items first, then every eligible candidate by score.
func (c *GetRecommendations) computeRanking(ctx context.Context, userID string) ([]string, error) {
	now := c.Clock.Now()

	filters := domain.CandidateFilters{ExcludeCreatorID: userID}
	if c.Config.CandidateWindowDays > 0 {
		filters.PublishedAfter = now.AddDate(0, 0, -c.Config.CandidateWindowDays)
	}
	if c.Config.ExcludeViewed {
		filters.ExcludeViewedByUserID = userID
	}

	candidates, err := c.CandidateLister.ListEligibleCandidates(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("listing candidates: %w: %w", domain.ErrDependencyUnavailable, err)
	}

	pref, err := c.PreferenceGetter.GetUserPreference(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading preferences: %w: %w", domain.ErrDependencyUnavailable, err)
	}

	scored := c.Scorer.RankCandidates(pref, candidates, now)

	ids := make([]string, 0, len(scored))
	for _, s := range scored {
		ids = append(ids, s.Content.ID)
	}

	return c.pinFeatured(ctx, ids), nil
}

// pinFeatured prepends up to FeaturedSlots currently-featured content ids,
// deduplicating them out of the scored tail. Featured lookup is best-effort;
// on failure the scored ranking is served as-is.
func (c *GetRecommendations) pinFeatured(ctx context.Context, ranked []string) []string {
	if c.Config.FeaturedSlots <= 0 {
		return ranked
	}

	logger := domain.LoggerFromContext(ctx)
	featured, err := c.FeaturedLister.ListFeaturedContent(ctx, c.Config.FeaturedSlots)
	if err != nil {
		logger.WarnContext(ctx, "failed to list featured content", "error", err)
		return ranked
	}
	if len(featured) == 0 {
		return ranked
	}

	pinned := make([]string, 0, len(featured)+len(ranked))
	seen := make(map[string]struct{}, len(featured))
	for _, f := range featured {
		if _, dup := seen[f.ID]; dup {
			continue
		}
		seen[f.ID] = struct{}{}
		pinned = append(pinned, f.ID)
	}
	for _, id := range ranked {
		if _, dup := seen[id]; dup {
			continue
		}
		pinned = append(pinned, id)
	}

	return pinned
}

// populateCache stores page windows 1..ReadAheadPages of the ranking, plus the
// requested page when it lies beyond the read-ahead.
func (c *GetRecommendations) populateCache(
	ctx context.Context, req GetRecommendationsRequest, ranked []string, version int64,
) {
	logger := domain.LoggerFromContext(ctx)
	ttl := c.Config.TTL()

	totalPages := (len(ranked) + req.PageSize - 1) / req.PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	lastReadAhead := c.Config.ReadAheadPages
	if lastReadAhead < 1 {
		lastReadAhead = 1
	}
	if lastReadAhead > totalPages {
		lastReadAhead = totalPages
	}

	pages := make([]int, 0, lastReadAhead+1)
	for page := 1; page <= lastReadAhead; page++ {
		pages = append(pages, page)
	}
	if req.Page > lastReadAhead {
		pages = append(pages, req.Page)
	}

	for _, page := range pages {
		window := pageWindow(ranked, page, req.PageSize)
		if err := c.CachePutter.PutCachedRecommendations(
			ctx, req.UserID, page, req.PageSize, window, ttl, version,
		); err != nil {
			logger.WarnContext(ctx, "failed to cache recommendation page",
				"error", err, "page", page, "pageSize", req.PageSize)
		}
	}
}

// pageWindow slices the 1-based page out of the full ranking. Pages past the
// end are empty, not an error.
func pageWindow(ranked []string, page, pageSize int) []string {
	start := (page - 1) * pageSize
	if start >= len(ranked) {
		return []string{}
	}

	end := start + pageSize
	if end > len(ranked) {
		end = len(ranked)
	}

	return ranked[start:end]
}
