package domain

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// DefaultDecayWindowDays is the horizon of the linear recency falloff.
// Content older than this contributes zero recency.
const DefaultDecayWindowDays = 30.0

// scoringWeightTolerance is how far the weight sum may drift from 1.0.
const scoringWeightTolerance = 0.01

// ScoringWeights set the share each feature contributes to a composite score.
// The five weights must sum to 1.0; retuning any one requires rebalancing the rest.
type ScoringWeights struct {
	RoleTag     float64
	TopicTag    float64
	ContentType float64
	Creator     float64
	Recency     float64
}

// DefaultScoringWeights returns the production weighting.
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		RoleTag:     0.30,
		TopicTag:    0.25,
		ContentType: 0.15,
		Creator:     0.15,
		Recency:     0.15,
	}
}

// Validate checks that every weight is non-negative and the sum is 1.0
// within tolerance.
func (w ScoringWeights) Validate() error {
	for name, v := range map[string]float64{
		"role_tag":     w.RoleTag,
		"topic_tag":    w.TopicTag,
		"content_type": w.ContentType,
		"creator":      w.Creator,
		"recency":      w.Recency,
	} {
		if v < 0 {
			return fmt.Errorf("scoring weight %s must be non-negative, got %v", name, v)
		}
	}

	sum := w.RoleTag + w.TopicTag + w.ContentType + w.Creator + w.Recency
	if math.Abs(sum-1.0) > scoringWeightTolerance {
		return fmt.Errorf("scoring weights must sum to 1.0, got %v", sum)
	}

	return nil
}

// Scorer ranks candidate content against a user's accumulated preferences.
// Pure; all methods are side-effect free and deterministic in their inputs.
type Scorer struct {
	weights         ScoringWeights
	decayWindowDays float64
}

// NewScorer creates a Scorer, validating the weight configuration.
func NewScorer(weights ScoringWeights, decayWindowDays float64) (Scorer, error) {
	if err := weights.Validate(); err != nil {
		return Scorer{}, err
	}
	if decayWindowDays <= 0 {
		return Scorer{}, fmt.Errorf("decay window must be positive, got %v days", decayWindowDays)
	}

	return Scorer{weights: weights, decayWindowDays: decayWindowDays}, nil
}

// Score computes the composite relevance of a candidate for the given preference
// record at the given instant.
//
// A user with no accumulated weights scores every category term as zero, leaving
// recency as the only contribution. That degrades cold-start users to a
// most-recent-first feed rather than an error.
func (s Scorer) Score(pref UserPreference, candidate Content, now time.Time) float64 {
	return s.weights.RoleTag*CategoryMatch(pref.RoleTagWeights, candidate.RoleTags) +
		s.weights.TopicTag*CategoryMatch(pref.TopicTagWeights, candidate.TopicTags) +
		s.weights.ContentType*CategoryMatch(pref.ContentTypeWeights, []string{candidate.ContentType}) +
		s.weights.Creator*CategoryMatch(pref.CreatorWeights, []string{candidate.CreatorID}) +
		s.weights.Recency*RecencyDecay(candidate.PublishedAt, now, s.decayWindowDays)
}

// CategoryMatch returns the user's affinity for the candidate's keys within one
// weight category: the summed weight over matched keys, normalized by the user's
// strongest single weight in the category and clamped to 1. A user with no
// weights in the category matches 0.
func CategoryMatch(weights WeightMap, keys []string) float64 {
	max := weights.Max()
	if max <= 0 {
		return 0
	}

	match := weights.SumFor(keys) / max
	if match > 1 {
		return 1
	}
	return match
}

// RecencyDecay returns the linear falloff max(0, 1 - age_days/windowDays).
// Content at or past the window contributes 0; content published at or after
// now contributes 1.
func RecencyDecay(publishedAt, now time.Time, windowDays float64) float64 {
	ageDays := now.Sub(publishedAt).Hours() / 24
	if ageDays <= 0 {
		return 1
	}

	decay := 1 - ageDays/windowDays
	if decay < 0 {
		return 0
	}
	return decay
}

// ScoredContent pairs a candidate with its computed relevance.
type ScoredContent struct {
	Content Content
	Score   float64
}

// RankCandidates scores every candidate and orders the result by score descending.
// Ties break on raw view count descending, then lexicographically smaller content
// id, so the order is reproducible across runs and stable under pagination.
func (s Scorer) RankCandidates(pref UserPreference, candidates []Content, now time.Time) []ScoredContent {
	ranked := make([]ScoredContent, 0, len(candidates))
	for _, c := range candidates {
		ranked = append(ranked, ScoredContent{Content: c, Score: s.Score(pref, c, now)})
	}

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Content.ViewCount != b.Content.ViewCount {
			return a.Content.ViewCount > b.Content.ViewCount
		}
		return a.Content.ID < b.Content.ID
	})

	return ranked
}
