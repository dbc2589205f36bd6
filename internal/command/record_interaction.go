package command

import (
	"context"
	"fmt"
	"time"

	"github.com/reelworks/reelfeed/internal/datasources"
	"github.com/reelworks/reelfeed/internal/domain"
)

// RecordInteractionRequest is the request for the RecordInteraction command.
type RecordInteractionRequest struct {
	UserID    string
	ContentID string
	Type      domain.InteractionType

	// OccurredAt is when the interaction happened. Zero means "now".
	OccurredAt time.Time

	// WatchSeconds is only meaningful for view interactions and is added to
	// the user's total watch duration.
	WatchSeconds int64
}

// RecordInteraction converts a raw user action into a weighted preference
// delta, applies it atomically to the user's preference record, and
// invalidates the user's cached recommendations so the next read recomputes
// with the fresh preference state.
type RecordInteraction struct {
	UserChecker   datasources.UserExistenceChecker
	ContentGetter datasources.ContentGetter
	Applier       datasources.InteractionApplier
	Invalidator   datasources.UserCacheInvalidator
	Clock         datasources.Clock
}

// NewRecordInteraction creates a properly initialized RecordInteraction command.
func NewRecordInteraction(
	userChecker datasources.UserExistenceChecker,
	contentGetter datasources.ContentGetter,
	applier datasources.InteractionApplier,
	invalidator datasources.UserCacheInvalidator,
	clock datasources.Clock,
) *RecordInteraction {
	return &RecordInteraction{
		UserChecker:   userChecker,
		ContentGetter: contentGetter,
		Applier:       applier,
		Invalidator:   invalidator,
		Clock:         clock,
	}
}

// Execute records the interaction. Nothing is written when the interaction
// type is unknown or the user or content does not exist.
func (c *RecordInteraction) Execute(ctx context.Context, req RecordInteractionRequest) (Empty, error) {
	logger := domain.LoggerFromContext(ctx)

	// 1. Reject unknown interaction types before touching any state.
	weight, err := req.Type.Weight()
	if err != nil {
		return Empty{}, err
	}

	// 2. Validate the referenced user and content so no phantom weight is
	// recorded against ids that do not exist.
	exists, err := c.UserChecker.UserExists(ctx, req.UserID)
	if err != nil {
		return Empty{}, fmt.Errorf("checking user: %w", err)
	}
	if !exists {
		return Empty{}, fmt.Errorf("user %q: %w", req.UserID, domain.ErrUserNotFound)
	}

	content, err := c.ContentGetter.GetContent(ctx, req.ContentID)
	if err != nil {
		return Empty{}, fmt.Errorf("fetching content: %w", err)
	}

	delta, err := domain.NewPreferenceDelta(req.Type, content, req.WatchSeconds)
	if err != nil {
		return Empty{}, fmt.Errorf("building preference delta: %w", err)
	}

	occurredAt := req.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = c.Clock.Now()
	}

	// 3. Apply the delta atomically. A failure here leaves the preference
	// record and cache untouched.
	interaction := domain.Interaction{
		UserID:       req.UserID,
		ContentID:    req.ContentID,
		Type:         req.Type,
		OccurredAt:   occurredAt,
		WatchSeconds: req.WatchSeconds,
	}
	if err := c.Applier.ApplyInteraction(ctx, interaction, delta); err != nil {
		return Empty{}, fmt.Errorf("applying interaction: %w", err)
	}

	logger.DebugContext(ctx, "recorded interaction",
		"userID", req.UserID, "contentID", req.ContentID, "type", req.Type, "weight", weight)

	// 4. Invalidate the user's cached recommendations. This must surface on
	// failure: leaving stale entries behind would serve rankings computed
	// from the old preference state until they expire.
	if err := c.Invalidator.InvalidateUserCache(ctx, req.UserID); err != nil {
		return Empty{}, fmt.Errorf("invalidating recommendation cache: %w", err)
	}

	return Empty{}, nil
}
