package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/reelworks/reelfeed/internal/datasources/mocks"
	"github.com/reelworks/reelfeed/internal/domain"
)

func testContent() domain.Content {
	return domain.Content{
		ID:          "content-1",
		Title:       "Zero Trust in Practice",
		CreatorID:   "creator-9",
		ContentType: "tutorial",
		RoleTags:    []string{"engineer", "sre"},
		TopicTags:   []string{"security"},
		ViewCount:   420,
		PublishedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRecordInteraction_Execute(t *testing.T) {
	occurredAt := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)

	cases := []struct {
		name        string
		req         RecordInteractionRequest
		userExists  bool
		userErr     error
		contentErr  error
		applyErr    error
		wantErr     error
		errContains string
		wantApply   bool
	}{
		{
			name: "favorite_applies_and_invalidates",
			req: RecordInteractionRequest{
				UserID:     "user-1",
				ContentID:  "content-1",
				Type:       domain.InteractionTypeFavorite,
				OccurredAt: occurredAt,
			},
			userExists: true,
			wantApply:  true,
		},
		{
			name: "unknown_type_rejected_before_any_lookup",
			req: RecordInteractionRequest{
				UserID:    "user-1",
				ContentID: "content-1",
				Type:      domain.InteractionType("clap"),
			},
			wantErr: domain.ErrInvalidInteractionType,
		},
		{
			name: "unknown_user",
			req: RecordInteractionRequest{
				UserID:     "ghost",
				ContentID:  "content-1",
				Type:       domain.InteractionTypeLike,
				OccurredAt: occurredAt,
			},
			userExists: false,
			wantErr:    domain.ErrUserNotFound,
		},
		{
			name: "unknown_content",
			req: RecordInteractionRequest{
				UserID:     "user-1",
				ContentID:  "deleted-content",
				Type:       domain.InteractionTypeLike,
				OccurredAt: occurredAt,
			},
			userExists: true,
			contentErr: domain.ErrContentNotFound,
			wantErr:    domain.ErrContentNotFound,
		},
		{
			name: "apply_failure_skips_invalidation",
			req: RecordInteractionRequest{
				UserID:     "user-1",
				ContentID:  "content-1",
				Type:       domain.InteractionTypeView,
				OccurredAt: occurredAt,
			},
			userExists:  true,
			applyErr:    errors.New("deadlock"),
			errContains: "applying interaction",
			wantApply:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			userChecker := mocks.NewMockUserExistenceChecker(t)
			contentGetter := mocks.NewMockContentGetter(t)
			applier := mocks.NewMockInteractionApplier(t)
			invalidator := mocks.NewMockUserCacheInvalidator(t)
			clock := mocks.NewMockClock(t)

			if _, typeErr := tc.req.Type.Weight(); typeErr == nil {
				userChecker.EXPECT().
					UserExists(mock.Anything, tc.req.UserID).
					Return(tc.userExists, tc.userErr)
			}
			if tc.userExists && tc.userErr == nil {
				contentGetter.EXPECT().
					GetContent(mock.Anything, tc.req.ContentID).
					Return(testContent(), tc.contentErr)
			}
			if tc.wantApply {
				applier.EXPECT().
					ApplyInteraction(mock.Anything, mock.Anything, mock.Anything).
					Return(tc.applyErr)
			}
			if tc.wantApply && tc.applyErr == nil {
				invalidator.EXPECT().
					InvalidateUserCache(mock.Anything, tc.req.UserID).
					Return(nil)
			}

			cmd := NewRecordInteraction(userChecker, contentGetter, applier, invalidator, clock)

			_, err := cmd.Execute(context.Background(), tc.req)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			if tc.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRecordInteraction_Execute_BuildsFavoriteDelta(t *testing.T) {
	occurredAt := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)

	userChecker := mocks.NewMockUserExistenceChecker(t)
	contentGetter := mocks.NewMockContentGetter(t)
	applier := mocks.NewMockInteractionApplier(t)
	invalidator := mocks.NewMockUserCacheInvalidator(t)
	clock := mocks.NewMockClock(t)

	userChecker.EXPECT().UserExists(mock.Anything, "user-1").Return(true, nil)
	contentGetter.EXPECT().GetContent(mock.Anything, "content-1").Return(testContent(), nil)
	invalidator.EXPECT().InvalidateUserCache(mock.Anything, "user-1").Return(nil)

	var gotInteraction domain.Interaction
	var gotDelta domain.PreferenceDelta
	applier.EXPECT().
		ApplyInteraction(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, interaction domain.Interaction, delta domain.PreferenceDelta) {
			gotInteraction = interaction
			gotDelta = delta
		}).
		Return(nil)

	cmd := NewRecordInteraction(userChecker, contentGetter, applier, invalidator, clock)

	_, err := cmd.Execute(context.Background(), RecordInteractionRequest{
		UserID:     "user-1",
		ContentID:  "content-1",
		Type:       domain.InteractionTypeFavorite,
		OccurredAt: occurredAt,
	})
	require.NoError(t, err)

	assert.Equal(t, "user-1", gotInteraction.UserID)
	assert.Equal(t, "content-1", gotInteraction.ContentID)
	assert.Equal(t, occurredAt, gotInteraction.OccurredAt)

	// A favorite carries exactly its fixed weight into every category the
	// content exposes.
	assert.InDelta(t, 3.0, gotDelta.Weight, 0.001)
	assert.Equal(t, []string{"engineer", "sre"}, gotDelta.RoleTags)
	assert.Equal(t, []string{"security"}, gotDelta.TopicTags)
	assert.Equal(t, "tutorial", gotDelta.ContentType)
	assert.Equal(t, "creator-9", gotDelta.CreatorID)
}

func TestRecordInteraction_Execute_DefaultsOccurredAtToNow(t *testing.T) {
	now := time.Date(2025, 6, 3, 18, 0, 0, 0, time.UTC)

	userChecker := mocks.NewMockUserExistenceChecker(t)
	contentGetter := mocks.NewMockContentGetter(t)
	applier := mocks.NewMockInteractionApplier(t)
	invalidator := mocks.NewMockUserCacheInvalidator(t)
	clock := mocks.NewMockClock(t)

	userChecker.EXPECT().UserExists(mock.Anything, "user-1").Return(true, nil)
	contentGetter.EXPECT().GetContent(mock.Anything, "content-1").Return(testContent(), nil)
	invalidator.EXPECT().InvalidateUserCache(mock.Anything, "user-1").Return(nil)
	clock.EXPECT().Now().Return(now)

	var gotInteraction domain.Interaction
	applier.EXPECT().
		ApplyInteraction(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, interaction domain.Interaction, _ domain.PreferenceDelta) {
			gotInteraction = interaction
		}).
		Return(nil)

	cmd := NewRecordInteraction(userChecker, contentGetter, applier, invalidator, clock)

	_, err := cmd.Execute(context.Background(), RecordInteractionRequest{
		UserID:       "user-1",
		ContentID:    "content-1",
		Type:         domain.InteractionTypeView,
		WatchSeconds: 95,
	})
	require.NoError(t, err)

	assert.Equal(t, now, gotInteraction.OccurredAt)
	assert.Equal(t, int64(95), gotInteraction.WatchSeconds)
}

func TestRecordInteraction_Execute_InvalidationFailureSurfaces(t *testing.T) {
	userChecker := mocks.NewMockUserExistenceChecker(t)
	contentGetter := mocks.NewMockContentGetter(t)
	applier := mocks.NewMockInteractionApplier(t)
	invalidator := mocks.NewMockUserCacheInvalidator(t)
	clock := mocks.NewMockClock(t)

	userChecker.EXPECT().UserExists(mock.Anything, "user-1").Return(true, nil)
	contentGetter.EXPECT().GetContent(mock.Anything, "content-1").Return(testContent(), nil)
	applier.EXPECT().ApplyInteraction(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	invalidator.EXPECT().InvalidateUserCache(mock.Anything, "user-1").Return(errors.New("cache down"))

	cmd := NewRecordInteraction(userChecker, contentGetter, applier, invalidator, clock)

	_, err := cmd.Execute(context.Background(), RecordInteractionRequest{
		UserID:     "user-1",
		ContentID:  "content-1",
		Type:       domain.InteractionTypeLike,
		OccurredAt: time.Now(),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalidating recommendation cache")
}
