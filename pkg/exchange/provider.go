package exchange

import "context"

// RateProvider fetches a full rate snapshot from an external source.
//
// Implementations live under infra/provider; tests inject fakes.
type RateProvider interface {
	// FetchRates returns a complete snapshot of rates relative to
	// BaseCurrency. Any failure mode (network, credentials, bad payload)
	// surfaces as an error.
	FetchRates(ctx context.Context) (Snapshot, error)

	// Name identifies the provider in logs.
	Name() string
}
