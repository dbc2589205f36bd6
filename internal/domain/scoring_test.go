package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultScoringWeights_SumToOne(t *testing.T) {
	w := DefaultScoringWeights()

	sum := w.RoleTag + w.TopicTag + w.ContentType + w.Creator + w.Recency
	assert.InDelta(t, 1.0, sum, 0.01)
	assert.NoError(t, w.Validate())
}

func TestScoringWeights_Validate(t *testing.T) {
	cases := []struct {
		name    string
		weights ScoringWeights
		wantErr bool
	}{
		{
			name:    "default_weights_valid",
			weights: DefaultScoringWeights(),
			wantErr: false,
		},
		{
			name:    "sum_within_tolerance_valid",
			weights: ScoringWeights{RoleTag: 0.305, TopicTag: 0.25, ContentType: 0.15, Creator: 0.15, Recency: 0.15},
			wantErr: false,
		},
		{
			name:    "sum_too_low_rejected",
			weights: ScoringWeights{RoleTag: 0.30, TopicTag: 0.25, ContentType: 0.15, Creator: 0.15, Recency: 0.10},
			wantErr: true,
		},
		{
			name:    "sum_too_high_rejected",
			weights: ScoringWeights{RoleTag: 0.40, TopicTag: 0.25, ContentType: 0.15, Creator: 0.15, Recency: 0.15},
			wantErr: true,
		},
		{
			name:    "negative_weight_rejected",
			weights: ScoringWeights{RoleTag: 0.45, TopicTag: 0.25, ContentType: 0.15, Creator: 0.30, Recency: -0.15},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.weights.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInteractionWeights_MonotonicOrdering(t *testing.T) {
	assert.Less(t, ViewWeight, LikeWeight)
	assert.Less(t, LikeWeight, CommentWeight)
	assert.Less(t, CommentWeight, FavoriteWeight)
	assert.Less(t, FavoriteWeight, ShareWeight)
}

func TestRecencyDecay(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name        string
		publishedAt time.Time
		expected    float64
	}{
		{
			name:        "published_now_scores_one",
			publishedAt: now,
			expected:    1.0,
		},
		{
			name:        "published_in_future_clamps_to_one",
			publishedAt: now.AddDate(0, 0, 1),
			expected:    1.0,
		},
		{
			name:        "fifteen_days_old_scores_half",
			publishedAt: now.AddDate(0, 0, -15),
			expected:    0.5,
		},
		{
			name:        "exactly_window_old_scores_zero",
			publishedAt: now.AddDate(0, 0, -30),
			expected:    0.0,
		},
		{
			name:        "older_than_window_never_negative",
			publishedAt: now.AddDate(0, 0, -90),
			expected:    0.0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			decay := RecencyDecay(tc.publishedAt, now, DefaultDecayWindowDays)
			assert.InDelta(t, tc.expected, decay, 0.0001)
		})
	}
}

func TestCategoryMatch(t *testing.T) {
	cases := []struct {
		name     string
		weights  WeightMap
		keys     []string
		expected float64
	}{
		{
			name:     "empty_map_cold_start_scores_zero",
			weights:  WeightMap{},
			keys:     []string{"backend"},
			expected: 0,
		},
		{
			name:     "nil_map_scores_zero",
			weights:  nil,
			keys:     []string{"backend"},
			expected: 0,
		},
		{
			name:     "single_max_key_scores_one",
			weights:  WeightMap{"security": 6, "infra": 2},
			keys:     []string{"security"},
			expected: 1.0,
		},
		{
			name:     "weaker_key_scores_fraction_of_max",
			weights:  WeightMap{"security": 6, "infra": 2},
			keys:     []string{"infra"},
			expected: 2.0 / 6.0,
		},
		{
			name:     "unmatched_keys_score_zero",
			weights:  WeightMap{"security": 6},
			keys:     []string{"frontend", "design"},
			expected: 0,
		},
		{
			name:     "multi_key_sum_clamped_to_one",
			weights:  WeightMap{"security": 6, "infra": 2},
			keys:     []string{"security", "infra"},
			expected: 1.0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, CategoryMatch(tc.weights, tc.keys), 0.0001)
		})
	}
}

func TestScorer_Score_TopicAffinityBeatsRecency(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	scorer, err := NewScorer(DefaultScoringWeights(), DefaultDecayWindowDays)
	require.NoError(t, err)

	pref := NewUserPreference("user-1")
	pref.TopicTagWeights = WeightMap{"security": 6, "infra": 2}

	candidateA := Content{
		ID:          "content-a",
		TopicTags:   []string{"security"},
		PublishedAt: now.AddDate(0, 0, -10),
	}
	candidateB := Content{
		ID:          "content-b",
		TopicTags:   []string{"infra"},
		PublishedAt: now.AddDate(0, 0, -1),
	}

	scoreA := scorer.Score(pref, candidateA, now)
	scoreB := scorer.Score(pref, candidateB, now)

	// A: topic 6/6 = 1.0 * 0.25 = 0.25, decay (1 - 10/30) = 0.667 * 0.15 = 0.10
	assert.InDelta(t, 0.35, scoreA, 0.01)
	// B: topic 2/6 = 0.333 * 0.25 = 0.083, decay (1 - 1/30) = 0.967 * 0.15 = 0.145
	assert.InDelta(t, 0.228, scoreB, 0.01)
	assert.Greater(t, scoreA, scoreB)
}

func TestScorer_Score_ColdStartIsPureRecency(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	scorer, err := NewScorer(DefaultScoringWeights(), DefaultDecayWindowDays)
	require.NoError(t, err)

	pref := NewUserPreference("brand-new-user")

	fresh := Content{
		ID:          "content-fresh",
		RoleTags:    []string{"engineer"},
		TopicTags:   []string{"security"},
		ContentType: "tutorial",
		CreatorID:   "creator-1",
		PublishedAt: now,
	}

	// All category terms are zero, leaving recency alone: 1.0 * 0.15.
	assert.InDelta(t, 0.15, scorer.Score(pref, fresh, now), 0.0001)
}

func TestScorer_RankCandidates(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	scorer, err := NewScorer(DefaultScoringWeights(), DefaultDecayWindowDays)
	require.NoError(t, err)

	pref := NewUserPreference("user-1")
	pref.TopicTagWeights = WeightMap{"security": 6, "infra": 2}

	candidates := []Content{
		{ID: "content-b", TopicTags: []string{"infra"}, PublishedAt: now.AddDate(0, 0, -1)},
		{ID: "content-a", TopicTags: []string{"security"}, PublishedAt: now.AddDate(0, 0, -10)},
	}

	ranked := scorer.RankCandidates(pref, candidates, now)
	require.Len(t, ranked, 2)
	assert.Equal(t, "content-a", ranked[0].Content.ID)
	assert.Equal(t, "content-b", ranked[1].Content.ID)
}

func TestScorer_RankCandidates_TieBreak(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	scorer, err := NewScorer(DefaultScoringWeights(), DefaultDecayWindowDays)
	require.NoError(t, err)

	// Identical publish times and no preference weights make every score equal.
	publishedAt := now.AddDate(0, 0, -3)
	pref := NewUserPreference("user-1")

	cases := []struct {
		name       string
		candidates []Content
		expected   []string
	}{
		{
			name: "higher_view_count_wins",
			candidates: []Content{
				{ID: "content-a", ViewCount: 10, PublishedAt: publishedAt},
				{ID: "content-b", ViewCount: 500, PublishedAt: publishedAt},
			},
			expected: []string{"content-b", "content-a"},
		},
		{
			name: "equal_views_smaller_id_wins",
			candidates: []Content{
				{ID: "content-z", ViewCount: 100, PublishedAt: publishedAt},
				{ID: "content-a", ViewCount: 100, PublishedAt: publishedAt},
			},
			expected: []string{"content-a", "content-z"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ranked := scorer.RankCandidates(pref, tc.candidates, now)
			require.Len(t, ranked, len(tc.expected))

			got := make([]string, 0, len(ranked))
			for _, r := range ranked {
				got = append(got, r.Content.ID)
			}
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestNewScorer_RejectsBadConfig(t *testing.T) {
	_, err := NewScorer(ScoringWeights{RoleTag: 0.5}, DefaultDecayWindowDays)
	assert.Error(t, err, "weights not summing to one must be rejected")

	_, err = NewScorer(DefaultScoringWeights(), 0)
	assert.Error(t, err, "non-positive decay window must be rejected")
}
