package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/reelworks/reelfeed/internal/datasources"
	"github.com/reelworks/reelfeed/internal/domain"
)

// ContentGet handles GET /v1/contents/{content_id}, the thin metadata fetch
// clients use to hydrate recommendation ids.
type ContentGet struct {
	Getter      datasources.ContentGetter
	CacheMaxAge time.Duration
}

func (c ContentGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["content_id"]

	content, err := c.Getter.GetContent(r.Context(), id)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)

		if errors.Is(err, domain.ErrContentNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		logger.ErrorContext(ctx, "unable to fetch content", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if domain.UserIDFromContext(r.Context()) == "" {
		w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	}

	if err := json.NewEncoder(w).Encode(content); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write content to response", "error", err)
	}
}
