// Package exchange provides the currency rate cache and its staleness policy.
package exchange

import "time"

// BaseCurrency is the currency all cached rates are expressed against.
const BaseCurrency = "USD"

// DefaultMaxAge is how long a fetched snapshot stays fresh.
const DefaultMaxAge = 7 * 24 * time.Hour

// Snapshot is a point-in-time mapping of currency codes to rates relative to
// BaseCurrency, plus the moment it was fetched.
type Snapshot struct {
	Rates     map[string]float64
	FetchedAt time.Time
}

// EmptySnapshot returns a snapshot with no rates and a zero timestamp, which
// is always stale and forces a refresh on first currency use.
func EmptySnapshot() Snapshot {
	return Snapshot{Rates: map[string]float64{}}
}

// IsEmpty reports whether the snapshot holds no rates at all.
func (s Snapshot) IsEmpty() bool {
	return len(s.Rates) == 0
}
