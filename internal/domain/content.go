package domain

import (
	"time"
)

type Content struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	CreatorID        string    `json:"creator_id"`
	ContentType      string    `json:"content_type"`
	RoleTags         []string  `json:"role_tags"`
	TopicTags        []string  `json:"topic_tags"`
	ViewCount        int64     `json:"view_count"`
	PublishedAt      time.Time `json:"published_at"`
	Featured         bool      `json:"featured"`
	FeaturedPriority int       `json:"featured_priority"`
}

// CandidateFilters restrict the eligible candidate set fetched for scoring.
// Zero values disable the corresponding restriction.
type CandidateFilters struct {
	ExcludeCreatorID string
	// ExcludeViewedByUserID drops content the given user has already viewed.
	ExcludeViewedByUserID string
	// PublishedAfter drops content published at or before the given instant.
	PublishedAfter time.Time
}
