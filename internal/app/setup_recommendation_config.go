package app

import (
	"github.com/reelworks/reelfeed/internal/command"
)

// DefaultGetRecommendationsConfig returns the default config for serving
// recommendations. The candidate window matches the recency decay horizon, so
// no candidate ever scores a negative decay term.
func DefaultGetRecommendationsConfig() command.GetRecommendationsConfig {
	return command.GetRecommendationsConfig{
		CandidateWindowDays: 30,
		ExcludeViewed:       true,
		FeaturedSlots:       5,
		ReadAheadPages:      5,
		CacheTTL:            command.DefaultCacheTTL,
	}
}
