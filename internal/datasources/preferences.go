package datasources

import (
	"context"

	"github.com/reelworks/reelfeed/internal/domain"
)

// PreferenceRepository combines preference reads with interaction application.
type PreferenceRepository interface {
	PreferenceGetter
	InteractionApplier
}

// PreferenceGetter returns a user's accumulated preference record.
// A user with no stored record gets the zero-state record, not an error.
type PreferenceGetter interface {
	GetUserPreference(ctx context.Context, userID string) (domain.UserPreference, error)
}
