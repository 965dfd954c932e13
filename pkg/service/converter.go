// Package service glues the static conversion engine to the currency
// subsystem.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/unitconv/pkg/exchange"
	"github.com/amirasaad/unitconv/pkg/unit"
)

// Converter dispatches conversions: currency pairs go through the rate
// cache, everything else through the pure unit engine.
type Converter struct {
	cache  *exchange.Cache
	logger *slog.Logger
}

// NewConverter creates a converter backed by the given rate cache.
func NewConverter(cache *exchange.Cache, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{cache: cache, logger: logger}
}

// Convert converts value from one unit to another. Units from different
// categories fail with unit.ErrIncompatibleUnits.
func (c *Converter) Convert(ctx context.Context, value float64, from, to unit.Unit) (float64, error) {
	if from.Category != to.Category {
		return 0, fmt.Errorf("%w: cannot convert from %s to %s",
			unit.ErrIncompatibleUnits, from, to)
	}
	if from.Category == unit.Currency {
		result, err := c.cache.Convert(ctx, value, from.Abbr, to.Abbr)
		if err != nil {
			return 0, err
		}
		c.logger.Debug("currency conversion",
			"value", value, "from", from.Abbr, "to", to.Abbr, "result", result)
		return result, nil
	}
	return unit.Convert(value, from, to)
}
