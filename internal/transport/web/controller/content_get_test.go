package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/reelworks/reelfeed/internal/datasources/mocks"
	"github.com/reelworks/reelfeed/internal/domain"
)

func TestContentGet_ServeHTTP(t *testing.T) {
	publishedAt := time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC)

	testContent := domain.Content{
		ID:          "content-1",
		Title:       "Postmortem Writing Workshop",
		CreatorID:   "creator-9",
		ContentType: "tutorial",
		RoleTags:    []string{"engineer", "sre"},
		TopicTags:   []string{"incident-response"},
		ViewCount:   1280,
		PublishedAt: publishedAt,
	}

	cases := []struct {
		name          string
		contentID     string
		setupContext  func(r *http.Request) *http.Request
		content       domain.Content
		getErr        error
		wantStatus    int
		wantCacheCtrl string
		wantContent   *domain.Content
	}{
		{
			name:          "successful_fetch",
			contentID:     "content-1",
			setupContext:  testContext(),
			content:       testContent,
			wantStatus:    http.StatusOK,
			wantCacheCtrl: "max-age=3600",
			wantContent:   &testContent,
		},
		{
			name:          "no_cache_for_authenticated_user",
			contentID:     "content-1",
			setupContext:  testContextWithUserID("user-1"),
			content:       testContent,
			wantStatus:    http.StatusOK,
			wantCacheCtrl: "",
			wantContent:   &testContent,
		},
		{
			name:         "content_not_found",
			contentID:    "content-missing",
			setupContext: testContext(),
			getErr:       fmt.Errorf("fetching content: %w", domain.ErrContentNotFound),
			wantStatus:   http.StatusNotFound,
		},
		{
			name:         "fetch_error",
			contentID:    "content-1",
			setupContext: testContext(),
			getErr:       errors.New("database error"),
			wantStatus:   http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			getter := mocks.NewMockContentGetter(t)

			getter.EXPECT().
				GetContent(mock.Anything, tc.contentID).
				Return(tc.content, tc.getErr)

			ctrl := ContentGet{
				Getter:      getter,
				CacheMaxAge: time.Hour,
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/contents/"+tc.contentID, nil)
			req = tc.setupContext(req)
			req = mux.SetURLVars(req, map[string]string{"content_id": tc.contentID})
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				if tc.wantCacheCtrl != "" {
					assert.Equal(t, tc.wantCacheCtrl, rec.Header().Get("Cache-Control"))
				} else {
					assert.Empty(t, rec.Header().Get("Cache-Control"))
				}

				var content domain.Content
				err := json.NewDecoder(rec.Body).Decode(&content)
				require.NoError(t, err)
				assert.Equal(t, *tc.wantContent, content)
			}
		})
	}
}
