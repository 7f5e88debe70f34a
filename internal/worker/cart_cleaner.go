package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// CartPurger exposes the subset of cart functionality the cleaner needs.
type CartPurger interface {
	PurgeAbandoned(ctx context.Context, maxAge time.Duration) (int64, error)
}

// CartCleaner periodically deletes anonymous carts that aged out without
// ever being claimed by an account.
type CartCleaner struct {
	purger   CartPurger
	interval time.Duration
	maxAge   time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewCartCleaner constructs the cleanup worker.
func NewCartCleaner(purger CartPurger, interval, maxAge time.Duration, logger *slog.Logger) *CartCleaner {
	if interval <= 0 {
		interval = time.Hour
	}
	if maxAge <= 0 {
		maxAge = 7 * 24 * time.Hour
	}
	return &CartCleaner{
		purger:   purger,
		interval: interval,
		maxAge:   maxAge,
		logger:   logger,
	}
}

// Start launches background cleanup.
func (c *CartCleaner) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	c.wg.Add(1)
	go c.run(runCtx)
}

// Stop waits for the cleanup loop to finish.
func (c *CartCleaner) Stop() {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.mu.Unlock()

	c.wg.Wait()
}

func (c *CartCleaner) run(ctx context.Context) {
	defer c.wg.Done()
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.sweep(ctx)
		}
	}
}

func (c *CartCleaner) sweep(ctx context.Context) {
	removed, err := c.purger.PurgeAbandoned(ctx, c.maxAge)
	if err != nil {
		c.logger.Error("cart cleanup failed", slog.String("error", err.Error()))
		return
	}
	if removed > 0 {
		c.logger.Info("abandoned carts removed", slog.Int64("count", removed))
	}
}
