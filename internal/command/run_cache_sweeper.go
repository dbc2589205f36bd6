package command

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/reelworks/reelfeed/internal/domain"
)

// RunCacheSweeper periodically runs the expired-cache sweep until its context
// is cancelled. It satisfies the app component contract.
type RunCacheSweeper struct {
	Sweeper  *SweepExpiredCache
	Interval time.Duration
}

// NewRunCacheSweeper creates a properly initialized RunCacheSweeper component.
func NewRunCacheSweeper(sweeper *SweepExpiredCache, interval time.Duration) *RunCacheSweeper {
	return &RunCacheSweeper{
		Sweeper:  sweeper,
		Interval: interval,
	}
}

// Run sweeps once immediately, then on every tick. Sweep failures are logged
// and the loop keeps going; only context cancellation stops it.
func (c *RunCacheSweeper) Run(ctx context.Context) error {
	c.sweep(ctx)

	ticker := time.NewTicker(c.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.sweep(ctx)
		}
	}
}

func (c *RunCacheSweeper) sweep(ctx context.Context) {
	logger := domain.LoggerFromContext(ctx).With("traceID", "sweep-"+uuid.NewString())
	ctx = domain.ContextWithLogger(ctx, logger)

	if _, err := c.Sweeper.Execute(ctx, SweepExpiredCacheRequest{}); err != nil {
		logger.ErrorContext(ctx, "cache sweep failed", "error", err)
	}
}
