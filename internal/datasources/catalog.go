package datasources

import (
	"context"

	"github.com/reelworks/reelfeed/internal/domain"
)

// CatalogRepository combines the content catalog reads the engine consumes.
// The catalog itself is owned by the wider platform; the engine never writes it.
type CatalogRepository interface {
	EligibleCandidateLister
	ContentGetter
	ContentsByIDsFetcher
	FeaturedContentLister
}

// EligibleCandidateLister supplies the unscored candidate set for ranking.
type EligibleCandidateLister interface {
	ListEligibleCandidates(ctx context.Context, filters domain.CandidateFilters) ([]domain.Content, error)
}

// ContentGetter fetches a single content item by id.
type ContentGetter interface {
	GetContent(ctx context.Context, contentID string) (domain.Content, error)
}

// ContentsByIDsFetcher resolves content ids to full records, preserving the
// input order and dropping ids that no longer exist.
type ContentsByIDsFetcher interface {
	FetchContentsByIDs(ctx context.Context, contentIDs []string) ([]domain.Content, error)
}

// FeaturedContentLister lists currently featured content, highest priority first.
type FeaturedContentLister interface {
	ListFeaturedContent(ctx context.Context, limit int) ([]domain.Content, error)
}

// NullFeaturedContentLister is a null implementation of FeaturedContentLister.
type NullFeaturedContentLister struct{}

var _ FeaturedContentLister = NullFeaturedContentLister{}

func (NullFeaturedContentLister) ListFeaturedContent(_ context.Context, _ int) ([]domain.Content, error) {
	return nil, nil
}
