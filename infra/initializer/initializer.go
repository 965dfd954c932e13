// Package initializer wires the application dependencies.
package initializer

import (
	"fmt"
	"log/slog"

	"github.com/amirasaad/unitconv/infra"
	infra_provider "github.com/amirasaad/unitconv/infra/provider"
	"github.com/amirasaad/unitconv/infra/repository/snapshot"
	"github.com/amirasaad/unitconv/pkg/config"
	"github.com/amirasaad/unitconv/pkg/exchange"
	"github.com/amirasaad/unitconv/pkg/service"
)

// Deps holds everything the command loop needs.
type Deps struct {
	Logger    *slog.Logger
	Cache     *exchange.Cache
	Converter *service.Converter
	Snapshots *snapshot.Repository
}

// InitializeDependencies opens the snapshot store, loads the persisted
// snapshot and builds the rate cache and conversion service.
//
// A load failure degrades to an empty cache with a warning; only a storage
// engine that cannot be opened at all aborts startup.
func InitializeDependencies(cfg *config.App) (*Deps, error) {
	logger := setupLogger(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot store: %w", err)
	}

	snapshots, err := snapshot.New(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize snapshot repository: %w", err)
	}

	snap, err := snapshots.Load()
	if err != nil {
		logger.Warn("failed to load persisted rates, starting with an empty cache", "error", err)
		snap = exchange.EmptySnapshot()
	} else if !snap.IsEmpty() {
		logger.Debug("loaded persisted exchange rates",
			"currencies", len(snap.Rates), "fetched_at", snap.FetchedAt)
	}

	rateProvider := infra_provider.NewOpenExchangeRatesProvider(cfg.OpenExchangeRates, logger)
	cache := exchange.NewCache(snap, rateProvider, cfg.Rates.MaxAge, logger)

	return &Deps{
		Logger:    logger,
		Cache:     cache,
		Converter: service.NewConverter(cache, logger),
		Snapshots: snapshots,
	}, nil
}
