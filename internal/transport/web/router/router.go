package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/reelworks/reelfeed/internal/command"
	"github.com/reelworks/reelfeed/internal/datasources"
	"github.com/reelworks/reelfeed/internal/transport/web/controller"
)

func MakeRouter(
	catalog datasources.CatalogRepository,
	tokens datasources.APITokenRepository,
	contentCacheMaxAge time.Duration,
	authMiddleware func(http.Handler) http.Handler,
	recommendCmd command.Command[command.GetRecommendationsRequest, command.GetRecommendationsResponse],
	trackCmd command.Command[command.RecordInteractionRequest, command.Empty],
	invalidateCmd command.Command[command.InvalidateRecommendationCacheRequest, command.Empty],
	createAPITokenCmd *command.CreateAPIToken,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	// Registered ahead of the {content_id} route so "recommended" never
	// resolves as a content id.
	r.Handle("/v1/contents/recommended", requireAuthMiddleware(controller.RecommendedContentsList{
		RecommendCmd: recommendCmd,
		Fetcher:      catalog,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/contents/{content_id}", controller.ContentGet{
		Getter:      catalog,
		CacheMaxAge: contentCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/contents/{content_id}/interactions", requireAuthMiddleware(controller.InteractionTrack{
		TrackCmd: trackCmd,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/recommendations/cache/invalidate", requireAuthMiddleware(controller.RecommendationCacheInvalidate{
		InvalidateCmd: invalidateCmd,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/api-tokens", requireAuthMiddleware(controller.APITokenCreate{
		CreateCmd: createAPITokenCmd,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/api-tokens", requireAuthMiddleware(controller.APITokenList{
		TokenLister: tokens,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/api-tokens/{token_id}", requireAuthMiddleware(controller.APITokenRevoke{
		TokenRevoker: tokens,
	})).Methods(http.MethodDelete, http.MethodOptions)

	return r, nil
}
