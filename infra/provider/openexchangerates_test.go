package provider

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/unitconv/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestProvider(url, appID string) *OpenExchangeRatesProvider {
	return NewOpenExchangeRatesProvider(&config.OpenExchangeRates{
		AppID:       appID,
		ApiUrl:      url,
		HTTPTimeout: 5 * time.Second,
	}, testLogger())
}

func TestFetchRates_Success(t *testing.T) {
	fetched := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("app_id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"timestamp": ` + "1748736000" + `,
			"base": "USD",
			"rates": {"USD": 1, "EUR": 0.88, "JPY": 156.3}
		}`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, "test-key")
	snap, err := p.FetchRates(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 0.88, snap.Rates["EUR"], 0)
	assert.InDelta(t, 156.3, snap.Rates["JPY"], 0)
	assert.Equal(t, fetched, snap.FetchedAt.UTC())
}

func TestFetchRates_MissingAppID(t *testing.T) {
	p := newTestProvider("https://openexchangerates.org/api/latest.json", "")
	_, err := p.FetchRates(context.Background())
	assert.ErrorIs(t, err, ErrMissingAppID)
}

func TestFetchRates_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": true, "message": "invalid_app_id"}`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, "bad-key")
	_, err := p.FetchRates(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestFetchRates_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, "test-key")
	_, err := p.FetchRates(context.Background())
	assert.Error(t, err)
}

func TestFetchRates_EmptyRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"timestamp": 0, "base": "USD", "rates": {}}`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, "test-key")
	_, err := p.FetchRates(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no rates")
}
