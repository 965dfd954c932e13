package exchange

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Cache owns the current rate snapshot for the process lifetime and refreshes
// it lazily, on demand, once it turns stale.
//
// A refresh failure never discards rates already held: stale data is
// preferable to no data, so lookups fall back to the previous snapshot with a
// warning. Only an empty cache propagates the fetch error.
type Cache struct {
	snapshot Snapshot
	provider RateProvider
	maxAge   time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

// NewCache creates a cache seeded with a previously loaded snapshot.
func NewCache(
	snapshot Snapshot,
	provider RateProvider,
	maxAge time.Duration,
	logger *slog.Logger,
) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	if snapshot.Rates == nil {
		snapshot.Rates = map[string]float64{}
	}
	return &Cache{
		snapshot: snapshot,
		provider: provider,
		maxAge:   maxAge,
		logger:   logger,
		now:      time.Now,
	}
}

// Stale reports whether the snapshot has reached its maximum age.
func (c *Cache) Stale() bool {
	return c.now().Sub(c.snapshot.FetchedAt) >= c.maxAge
}

// Refresh fetches a full snapshot and replaces the current one wholesale.
// On failure the previous snapshot is left untouched.
func (c *Cache) Refresh(ctx context.Context) error {
	snap, err := c.provider.FetchRates(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if snap.FetchedAt.IsZero() {
		snap.FetchedAt = c.now()
	}
	c.snapshot = snap
	c.logger.Info("exchange rates refreshed",
		"provider", c.provider.Name(),
		"currencies", len(snap.Rates),
		"fetched_at", snap.FetchedAt,
	)
	return nil
}

// Rate returns the rate of code relative to BaseCurrency, refreshing the
// snapshot first when it is stale.
func (c *Cache) Rate(ctx context.Context, code string) (float64, error) {
	if c.Stale() {
		if err := c.Refresh(ctx); err != nil {
			if c.snapshot.IsEmpty() {
				return 0, err
			}
			c.logger.Warn("refresh failed, using stale exchange rates",
				"error", err,
				"fetched_at", c.snapshot.FetchedAt,
			)
		}
	}
	rate, ok := c.snapshot.Rates[code]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCurrency, code)
	}
	return rate, nil
}

// Convert converts a value between two currencies using cached rates.
func (c *Cache) Convert(ctx context.Context, value float64, from, to string) (float64, error) {
	fromRate, err := c.Rate(ctx, from)
	if err != nil {
		return 0, err
	}
	toRate, err := c.Rate(ctx, to)
	if err != nil {
		return 0, err
	}
	return value * toRate / fromRate, nil
}

// Snapshot returns the current snapshot for persisting at exit.
func (c *Cache) Snapshot() Snapshot {
	return c.snapshot
}
