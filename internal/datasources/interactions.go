package datasources

import (
	"context"

	"github.com/reelworks/reelfeed/internal/domain"
)

// InteractionApplier folds one interaction into a user's preference record.
// The whole application is atomic: the preference row is created on first
// interaction, the delta lands on every category weight and counter, and the
// interaction is appended to the durable log, all or nothing.
type InteractionApplier interface {
	ApplyInteraction(ctx context.Context, interaction domain.Interaction, delta domain.PreferenceDelta) error
}
