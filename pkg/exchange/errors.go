package exchange

import "errors"

var (
	// ErrUnknownCurrency indicates a code absent from the rate snapshot even
	// after a refresh.
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrFetchFailed indicates the rate provider could not deliver a snapshot
	// (network, authentication or malformed response).
	ErrFetchFailed = errors.New("failed to fetch exchange rates")
)
