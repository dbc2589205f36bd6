package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/reelworks/reelfeed/internal/command"
	"github.com/reelworks/reelfeed/internal/domain"
)

// InteractionTrackRequest is the JSON request body for recording an interaction.
// OccurredAt is optional; omitted means the event happened now.
type InteractionTrackRequest struct {
	Type         string     `json:"type"`
	WatchSeconds int64      `json:"watch_seconds,omitempty"`
	OccurredAt   *time.Time `json:"occurred_at,omitempty"`
}

// InteractionTrack handles POST /v1/contents/{content_id}/interactions.
type InteractionTrack struct {
	TrackCmd command.Command[command.RecordInteractionRequest, command.Empty]
}

func (c InteractionTrack) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	contentID := vars["content_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("content_id", contentID))

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var reqBody InteractionTrackRequest
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		logger.ErrorContext(ctx, "unable to parse request body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	req := command.RecordInteractionRequest{
		UserID:       userID,
		ContentID:    contentID,
		Type:         domain.InteractionType(reqBody.Type),
		WatchSeconds: reqBody.WatchSeconds,
	}
	if reqBody.OccurredAt != nil {
		req.OccurredAt = *reqBody.OccurredAt
	}

	if _, err := c.TrackCmd.Execute(ctx, req); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInteractionType):
			logger.ErrorContext(ctx, "invalid interaction type", "value", reqBody.Type)
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrContentNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			logger.ErrorContext(ctx, "failed to record interaction", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
