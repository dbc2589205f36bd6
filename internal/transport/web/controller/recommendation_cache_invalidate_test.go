package controller

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/reelworks/reelfeed/internal/command"
	cmdmocks "github.com/reelworks/reelfeed/internal/command/mocks"
	"github.com/reelworks/reelfeed/internal/domain"
)

func TestRecommendationCacheInvalidate_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		userID     string
		cmdErr     error
		wantStatus int
		skipCmd    bool
	}{
		{
			name:       "invalidates_for_caller",
			userID:     "user-1",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "unauthenticated",
			userID:     "",
			wantStatus: http.StatusUnauthorized,
			skipCmd:    true,
		},
		{
			name:       "unknown_user",
			userID:     "user-missing",
			cmdErr:     fmt.Errorf("user %q: %w", "user-missing", domain.ErrUserNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "command_error",
			userID:     "user-1",
			cmdErr:     errors.New("cache backend down"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			invalidateCmd := cmdmocks.NewMockCommand[command.InvalidateRecommendationCacheRequest, command.Empty](t)

			if !tc.skipCmd {
				invalidateCmd.EXPECT().
					Execute(mock.Anything, command.InvalidateRecommendationCacheRequest{UserID: tc.userID}).
					Return(command.Empty{}, tc.cmdErr)
			}

			ctrl := RecommendationCacheInvalidate{
				InvalidateCmd: invalidateCmd,
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/recommendations/cache/invalidate", nil)
			req = testContextWithUserID(tc.userID)(req)
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
