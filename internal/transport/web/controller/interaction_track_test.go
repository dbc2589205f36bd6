package controller

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/reelworks/reelfeed/internal/command"
	cmdmocks "github.com/reelworks/reelfeed/internal/command/mocks"
	"github.com/reelworks/reelfeed/internal/domain"
)

func TestInteractionTrack_ServeHTTP(t *testing.T) {
	occurredAt := time.Date(2025, 7, 15, 10, 30, 0, 0, time.UTC)

	cases := []struct {
		name       string
		userID     string
		contentID  string
		body       string
		wantReq    command.RecordInteractionRequest
		cmdErr     error
		wantStatus int
		skipCmd    bool
	}{
		{
			name:      "favorite_recorded",
			userID:    "user-1",
			contentID: "content-1",
			body:      `{"type":"favorite"}`,
			wantReq: command.RecordInteractionRequest{
				UserID:    "user-1",
				ContentID: "content-1",
				Type:      domain.InteractionTypeFavorite,
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:      "view_with_watch_seconds",
			userID:    "user-1",
			contentID: "content-1",
			body:      `{"type":"view","watch_seconds":95}`,
			wantReq: command.RecordInteractionRequest{
				UserID:       "user-1",
				ContentID:    "content-1",
				Type:         domain.InteractionTypeView,
				WatchSeconds: 95,
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:      "explicit_occurred_at",
			userID:    "user-1",
			contentID: "content-1",
			body:      `{"type":"like","occurred_at":"2025-07-15T10:30:00Z"}`,
			wantReq: command.RecordInteractionRequest{
				UserID:     "user-1",
				ContentID:  "content-1",
				Type:       domain.InteractionTypeLike,
				OccurredAt: occurredAt,
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "unauthenticated",
			userID:     "",
			contentID:  "content-1",
			body:       `{"type":"favorite"}`,
			wantStatus: http.StatusUnauthorized,
			skipCmd:    true,
		},
		{
			name:       "malformed_body",
			userID:     "user-1",
			contentID:  "content-1",
			body:       `{"type":`,
			wantStatus: http.StatusBadRequest,
			skipCmd:    true,
		},
		{
			name:      "unknown_interaction_type",
			userID:    "user-1",
			contentID: "content-1",
			body:      `{"type":"poke"}`,
			wantReq: command.RecordInteractionRequest{
				UserID:    "user-1",
				ContentID: "content-1",
				Type:      domain.InteractionType("poke"),
			},
			cmdErr:     fmt.Errorf("%w: %q", domain.ErrInvalidInteractionType, "poke"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:      "unknown_user",
			userID:    "user-missing",
			contentID: "content-1",
			body:      `{"type":"favorite"}`,
			wantReq: command.RecordInteractionRequest{
				UserID:    "user-missing",
				ContentID: "content-1",
				Type:      domain.InteractionTypeFavorite,
			},
			cmdErr:     fmt.Errorf("user %q: %w", "user-missing", domain.ErrUserNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name:      "unknown_content",
			userID:    "user-1",
			contentID: "content-missing",
			body:      `{"type":"favorite"}`,
			wantReq: command.RecordInteractionRequest{
				UserID:    "user-1",
				ContentID: "content-missing",
				Type:      domain.InteractionTypeFavorite,
			},
			cmdErr:     fmt.Errorf("fetching content: %w", domain.ErrContentNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name:      "command_error",
			userID:    "user-1",
			contentID: "content-1",
			body:      `{"type":"favorite"}`,
			wantReq: command.RecordInteractionRequest{
				UserID:    "user-1",
				ContentID: "content-1",
				Type:      domain.InteractionTypeFavorite,
			},
			cmdErr:     errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			trackCmd := cmdmocks.NewMockCommand[command.RecordInteractionRequest, command.Empty](t)

			if !tc.skipCmd {
				trackCmd.EXPECT().
					Execute(mock.Anything, tc.wantReq).
					Return(command.Empty{}, tc.cmdErr)
			}

			ctrl := InteractionTrack{
				TrackCmd: trackCmd,
			}

			urlPath := "/v1/contents/" + tc.contentID + "/interactions"
			req := httptest.NewRequest(http.MethodPost, urlPath, strings.NewReader(tc.body))
			req = testContextWithUserID(tc.userID)(req)
			req = mux.SetURLVars(req, map[string]string{
				"content_id": tc.contentID,
			})
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
