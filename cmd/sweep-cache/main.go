package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/reelworks/reelfeed/internal/command"
	"github.com/reelworks/reelfeed/internal/datasources"
	"github.com/reelworks/reelfeed/internal/datasources/mysql"
	"github.com/reelworks/reelfeed/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx := context.Background()

	// Setup logger
	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	if err := run(ctx); err != nil {
		logger.ErrorContext(ctx, "cache sweep failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "cache sweep completed successfully")
}

func run(ctx context.Context) error {
	mysqlURI := os.Getenv("MYSQL_URI")
	if mysqlURI == "" {
		return fmt.Errorf("MYSQL_URI environment variable is required")
	}

	db, err := mysql.Connect(ctx, mysqlURI)
	if err != nil {
		return fmt.Errorf("connecting to MySQL: %w", err)
	}
	defer func() { _ = db.Close() }()

	repo := mysql.New(db)

	sweepCmd := command.NewSweepExpiredCache(repo, datasources.SystemClock{})

	_, err = sweepCmd.Execute(ctx, command.SweepExpiredCacheRequest{})
	return err
}
