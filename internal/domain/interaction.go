package domain

import (
	"fmt"
	"time"
)

// InteractionType represents the kind of action a user took on a piece of content.
type InteractionType string

const (
	InteractionTypeView     InteractionType = "view"
	InteractionTypeLike     InteractionType = "like"
	InteractionTypeFavorite InteractionType = "favorite"
	InteractionTypeComment  InteractionType = "comment"
	InteractionTypeShare    InteractionType = "share"
)

// Per-type preference weights. Stronger signals of intent carry larger weights;
// the ordering view < like < comment < favorite < share must hold under retuning.
const (
	ViewWeight     = 1.0
	LikeWeight     = 2.0
	CommentWeight  = 2.5
	FavoriteWeight = 3.0
	ShareWeight    = 3.5
)

var interactionWeights = map[InteractionType]float64{
	InteractionTypeView:     ViewWeight,
	InteractionTypeLike:     LikeWeight,
	InteractionTypeComment:  CommentWeight,
	InteractionTypeFavorite: FavoriteWeight,
	InteractionTypeShare:    ShareWeight,
}

// Weight returns the preference delta this interaction type contributes.
func (t InteractionType) Weight() (float64, error) {
	w, ok := interactionWeights[t]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInteractionType, string(t))
	}
	return w, nil
}

// Interaction represents one recorded user action on content.
type Interaction struct {
	UserID       string
	ContentID    string
	Type         InteractionType
	OccurredAt   time.Time
	WatchSeconds int64
}
