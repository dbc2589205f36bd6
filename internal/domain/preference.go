package domain

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// WeightMap accumulates non-negative affinity weights keyed by a category key
// (a tag, a content type, or a creator id). Missing keys read as zero.
type WeightMap map[string]float64

// Value serializes the map as a JSON object for storage in a JSON column.
func (m WeightMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshaling weight map: %w", err)
	}
	return string(b), nil
}

// Scan deserializes a JSON column value. NULL and empty values scan as an empty map.
func (m *WeightMap) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*m = WeightMap{}
		return nil
	case []byte:
		if len(v) == 0 {
			*m = WeightMap{}
			return nil
		}
		return json.Unmarshal(v, m)
	case string:
		if v == "" {
			*m = WeightMap{}
			return nil
		}
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported weight map column type %T", value)
	}
}

// Max returns the largest single weight in the map, or 0 for an empty map.
func (m WeightMap) Max() float64 {
	var max float64
	for _, w := range m {
		if w > max {
			max = w
		}
	}
	return max
}

// SumFor returns the total weight held across the given keys.
func (m WeightMap) SumFor(keys []string) float64 {
	var sum float64
	for _, k := range keys {
		sum += m[k]
	}
	return sum
}

// UserPreference is a user's accumulated affinity vector plus raw interaction counters.
// Weights only ever grow; normalization is deferred to scoring time so history stays
// comparable across time periods.
type UserPreference struct {
	UserID             string
	RoleTagWeights     WeightMap
	TopicTagWeights    WeightMap
	ContentTypeWeights WeightMap
	CreatorWeights     WeightMap
	TotalWatchCount    int64
	TotalWatchDuration int64
	TotalLikeCount     int64
	TotalFavoriteCount int64
	TotalCommentCount  int64
	TotalShareCount    int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewUserPreference returns the zero-state record a user starts from:
// all weight maps empty, all counters zero.
func NewUserPreference(userID string) UserPreference {
	return UserPreference{
		UserID:             userID,
		RoleTagWeights:     WeightMap{},
		TopicTagWeights:    WeightMap{},
		ContentTypeWeights: WeightMap{},
		CreatorWeights:     WeightMap{},
	}
}

// IsEmpty reports whether the user has no accumulated weights in any category.
func (p UserPreference) IsEmpty() bool {
	return len(p.RoleTagWeights) == 0 &&
		len(p.TopicTagWeights) == 0 &&
		len(p.ContentTypeWeights) == 0 &&
		len(p.CreatorWeights) == 0
}

// PreferenceDelta is the additive effect of one interaction on a preference record.
// Weight is applied to every category key the content exposes.
type PreferenceDelta struct {
	Type         InteractionType
	Weight       float64
	RoleTags     []string
	TopicTags    []string
	ContentType  string
	CreatorID    string
	WatchSeconds int64
}

// NewPreferenceDelta builds the delta an interaction of the given type applies for
// the given content. Returns ErrInvalidInteractionType before touching any state.
func NewPreferenceDelta(t InteractionType, content Content, watchSeconds int64) (PreferenceDelta, error) {
	weight, err := t.Weight()
	if err != nil {
		return PreferenceDelta{}, err
	}

	return PreferenceDelta{
		Type:         t,
		Weight:       weight,
		RoleTags:     content.RoleTags,
		TopicTags:    content.TopicTags,
		ContentType:  content.ContentType,
		CreatorID:    content.CreatorID,
		WatchSeconds: watchSeconds,
	}, nil
}

// Apply folds a delta into the record: every exposed category key gains the
// interaction weight, and the counter matching the interaction type increments.
func (p *UserPreference) Apply(delta PreferenceDelta) {
	if p.RoleTagWeights == nil {
		p.RoleTagWeights = WeightMap{}
	}
	if p.TopicTagWeights == nil {
		p.TopicTagWeights = WeightMap{}
	}
	if p.ContentTypeWeights == nil {
		p.ContentTypeWeights = WeightMap{}
	}
	if p.CreatorWeights == nil {
		p.CreatorWeights = WeightMap{}
	}

	for _, tag := range delta.RoleTags {
		p.RoleTagWeights[tag] += delta.Weight
	}
	for _, tag := range delta.TopicTags {
		p.TopicTagWeights[tag] += delta.Weight
	}
	if delta.ContentType != "" {
		p.ContentTypeWeights[delta.ContentType] += delta.Weight
	}
	if delta.CreatorID != "" {
		p.CreatorWeights[delta.CreatorID] += delta.Weight
	}

	switch delta.Type {
	case InteractionTypeView:
		p.TotalWatchCount++
		p.TotalWatchDuration += delta.WatchSeconds
	case InteractionTypeLike:
		p.TotalLikeCount++
	case InteractionTypeFavorite:
		p.TotalFavoriteCount++
	case InteractionTypeComment:
		p.TotalCommentCount++
	case InteractionTypeShare:
		p.TotalShareCount++
	}
}
