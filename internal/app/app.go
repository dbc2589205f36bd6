package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/reelworks/reelfeed/internal/command"
	"github.com/reelworks/reelfeed/internal/datasources"
	"github.com/reelworks/reelfeed/internal/datasources/memory"
	"github.com/reelworks/reelfeed/internal/datasources/mysql"
	"github.com/reelworks/reelfeed/internal/datasources/redis"
	"github.com/reelworks/reelfeed/internal/domain"
	"github.com/reelworks/reelfeed/internal/transport/web/router"
	"github.com/reelworks/reelfeed/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	repo, err := setupRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up repository: %w", err)
	}

	clock := datasources.SystemClock{}

	cache, err := setupRecommendationCache(ctx, repo, clock)
	if err != nil {
		return nil, fmt.Errorf("setting up recommendation cache: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	scorer, err := domain.NewScorer(domain.DefaultScoringWeights(), domain.DefaultDecayWindowDays)
	if err != nil {
		return nil, fmt.Errorf("setting up scorer: %w", err)
	}

	createAPITokenCmd := command.NewCreateAPIToken(repo, repo)

	recommendCmd := command.NewGetRecommendations(
		repo,
		repo,
		repo,
		cache,
		clock,
		scorer,
		DefaultGetRecommendationsConfig(),
	)

	trackCmd := command.NewRecordInteraction(repo, repo, repo, cache, clock)

	invalidateCmd := command.NewInvalidateRecommendationCache(repo, cache)

	sweepCmd := command.NewSweepExpiredCache(cache, clock)

	httpRouter, err := router.MakeRouter(
		repo,
		repo,
		MustGetEnvAsDuration(ctx, "CONTENT_CACHE_MAX_AGE"),
		authMiddleware,
		recommendCmd,
		trackCmd,
		invalidateCmd,
		createAPITokenCmd,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
		command.NewRunCacheSweeper(sweepCmd, MustGetEnvAsDuration(ctx, "CACHE_SWEEP_INTERVAL")),
	}, nil
}

func setupRepository(ctx context.Context) (*mysql.Repository, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}
	return mysql.New(db), nil
}

func setupRecommendationCache(
	ctx context.Context, repo *mysql.Repository, clock datasources.Clock,
) (datasources.RecommendationCache, error) {
	switch driver := MustGetEnvAsString(ctx, "CACHE_DRIVER"); driver {
	case "null":
		return datasources.NullRecommendationCache{}, nil
	case "memory":
		return memory.NewRecommendationCache(clock), nil
	case "mysql":
		return repo, nil
	case "redis":
		client, err := redis.Connect(
			ctx,
			MustGetEnvAsString(ctx, "REDIS_ADDR"),
			MustGetEnvAsString(ctx, "REDIS_PASSWORD"),
			MustGetEnvAsInt(ctx, "REDIS_DB"),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return redis.NewRecommendationCache(client), nil
	default:
		return nil, fmt.Errorf("unknown cache driver [%s]", driver)
	}
}

func setupAuthMiddleware(
	ctx context.Context, repo *mysql.Repository,
) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "":
			// Skip empty strings (e.g., from splitting an empty AUTH_DRIVERS)
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		case "jwt":
			validators = append(validators, router.NewSessionJWTValidator(
				MustGetEnvAsString(ctx, "SESSION_JWT_SECRET"),
			))
		case "api_token":
			validators = append(validators, router.NewAPITokenValidator(ctx, repo, repo))
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
