package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractionType_Weight(t *testing.T) {
	cases := []struct {
		name     string
		typ      InteractionType
		expected float64
	}{
		{name: "view_weight", typ: InteractionTypeView, expected: 1.0},
		{name: "like_weight", typ: InteractionTypeLike, expected: 2.0},
		{name: "comment_weight", typ: InteractionTypeComment, expected: 2.5},
		{name: "favorite_weight", typ: InteractionTypeFavorite, expected: 3.0},
		{name: "share_weight", typ: InteractionTypeShare, expected: 3.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := tc.typ.Weight()
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, w, 0.0001)
		})
	}

	rejected := []struct {
		name string
		typ  InteractionType
	}{
		{name: "unknown_rejected", typ: "superlike"},
		{name: "empty_rejected", typ: ""},
		{name: "case_sensitive", typ: "View"},
	}

	for _, tc := range rejected {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.typ.Weight()
			assert.ErrorIs(t, err, ErrInvalidInteractionType)
		})
	}
}

func TestUserPreference_Apply(t *testing.T) {
	content := Content{
		ID:          "content-1",
		CreatorID:   "creator-9",
		ContentType: "tutorial",
		RoleTags:    []string{"engineer", "tech_lead"},
		TopicTags:   []string{"security"},
	}

	t.Run("favorite_adds_exact_weight_to_every_category", func(t *testing.T) {
		pref := NewUserPreference("user-1")

		delta, err := NewPreferenceDelta(InteractionTypeFavorite, content, 0)
		require.NoError(t, err)
		pref.Apply(delta)

		assert.InDelta(t, 3.0, pref.TopicTagWeights["security"], 0.0001)
		assert.InDelta(t, 3.0, pref.RoleTagWeights["engineer"], 0.0001)
		assert.InDelta(t, 3.0, pref.RoleTagWeights["tech_lead"], 0.0001)
		assert.InDelta(t, 3.0, pref.ContentTypeWeights["tutorial"], 0.0001)
		assert.InDelta(t, 3.0, pref.CreatorWeights["creator-9"], 0.0001)
		assert.Equal(t, int64(1), pref.TotalFavoriteCount)
		assert.Equal(t, int64(0), pref.TotalWatchCount)
	})

	t.Run("weights_accumulate_additively", func(t *testing.T) {
		pref := NewUserPreference("user-1")

		like, err := NewPreferenceDelta(InteractionTypeLike, content, 0)
		require.NoError(t, err)
		pref.Apply(like)
		pref.Apply(like)

		assert.InDelta(t, 4.0, pref.TopicTagWeights["security"], 0.0001)
		assert.Equal(t, int64(2), pref.TotalLikeCount)
	})

	t.Run("view_adds_watch_duration", func(t *testing.T) {
		pref := NewUserPreference("user-1")

		view, err := NewPreferenceDelta(InteractionTypeView, content, 125)
		require.NoError(t, err)
		pref.Apply(view)

		assert.InDelta(t, 1.0, pref.TopicTagWeights["security"], 0.0001)
		assert.Equal(t, int64(1), pref.TotalWatchCount)
		assert.Equal(t, int64(125), pref.TotalWatchDuration)
	})

	t.Run("apply_initializes_nil_maps", func(t *testing.T) {
		pref := UserPreference{UserID: "user-1"}

		share, err := NewPreferenceDelta(InteractionTypeShare, content, 0)
		require.NoError(t, err)
		pref.Apply(share)

		assert.InDelta(t, 3.5, pref.CreatorWeights["creator-9"], 0.0001)
		assert.Equal(t, int64(1), pref.TotalShareCount)
	})

	t.Run("invalid_type_applies_nothing", func(t *testing.T) {
		_, err := NewPreferenceDelta(InteractionType("poke"), content, 0)
		assert.ErrorIs(t, err, ErrInvalidInteractionType)
	})
}

func TestUserPreference_IsEmpty(t *testing.T) {
	pref := NewUserPreference("user-1")
	assert.True(t, pref.IsEmpty())

	delta, err := NewPreferenceDelta(InteractionTypeView, Content{TopicTags: []string{"infra"}}, 0)
	require.NoError(t, err)
	pref.Apply(delta)
	assert.False(t, pref.IsEmpty())
}

func TestWeightMap_SQLRoundTrip(t *testing.T) {
	m := WeightMap{"security": 6, "infra": 2.5}

	v, err := m.Value()
	require.NoError(t, err)

	var scanned WeightMap
	require.NoError(t, scanned.Scan(v))
	assert.InDelta(t, 6.0, scanned["security"], 0.0001)
	assert.InDelta(t, 2.5, scanned["infra"], 0.0001)
}

func TestWeightMap_ScanEmptyStates(t *testing.T) {
	cases := []struct {
		name  string
		value any
	}{
		{name: "nil_column", value: nil},
		{name: "empty_bytes", value: []byte{}},
		{name: "empty_string", value: ""},
		{name: "empty_object", value: []byte(`{}`)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var m WeightMap
			require.NoError(t, m.Scan(tc.value))
			assert.NotNil(t, m)
			assert.Empty(t, m)
		})
	}
}

func TestNewUserPreference_ZeroState(t *testing.T) {
	pref := NewUserPreference("user-1")

	assert.Equal(t, "user-1", pref.UserID)
	assert.Empty(t, pref.RoleTagWeights)
	assert.Empty(t, pref.TopicTagWeights)
	assert.Empty(t, pref.ContentTypeWeights)
	assert.Empty(t, pref.CreatorWeights)
	assert.Zero(t, pref.TotalWatchCount)
	assert.Zero(t, pref.TotalWatchDuration)
}

func TestWeightMap_MaxAndSumFor(t *testing.T) {
	m := WeightMap{"a": 1.5, "b": 4, "c": 2}

	assert.InDelta(t, 4.0, m.Max(), 0.0001)
	assert.InDelta(t, 3.5, m.SumFor([]string{"a", "c"}), 0.0001)
	assert.InDelta(t, 0.0, m.SumFor([]string{"missing"}), 0.0001)
	assert.InDelta(t, 0.0, WeightMap{}.Max(), 0.0001)
}
