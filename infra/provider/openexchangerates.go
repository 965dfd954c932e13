// Package provider implements the external rate providers.
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/amirasaad/unitconv/pkg/config"
	"github.com/amirasaad/unitconv/pkg/exchange"
)

// ErrMissingAppID indicates no API credential was configured. The check is
// deferred until the first fetch so static conversions work without one.
var ErrMissingAppID = errors.New(
	"no API key found; set the OPENEXCHANGERATES_APP_ID environment variable")

// OpenExchangeRatesProvider fetches rates from openexchangerates.org.
// Rates in the response are relative to USD.
type OpenExchangeRatesProvider struct {
	appID      string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// latestResponse is the shape of /api/latest.json.
// Example: {"timestamp": 1585267200, "base": "USD", "rates": {"EUR": 0.91, ...}}
type latestResponse struct {
	Timestamp   int64              `json:"timestamp"`
	Base        string             `json:"base"`
	Rates       map[string]float64 `json:"rates"`
	Description string             `json:"description,omitempty"`
}

// NewOpenExchangeRatesProvider creates a provider using config.
func NewOpenExchangeRatesProvider(
	cfg *config.OpenExchangeRates,
	logger *slog.Logger,
) *OpenExchangeRatesProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &OpenExchangeRatesProvider{
		appID:   cfg.AppID,
		baseURL: cfg.ApiUrl,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		logger: logger,
	}
}

// FetchRates fetches the full USD-based rate snapshot.
func (p *OpenExchangeRatesProvider) FetchRates(ctx context.Context) (exchange.Snapshot, error) {
	if p.appID == "" {
		return exchange.Snapshot{}, ErrMissingAppID
	}

	reqURL := fmt.Sprintf("%s?app_id=%s", p.baseURL, url.QueryEscape(p.appID))
	p.logger.Debug("fetching exchange rates", "provider", p.Name(), "url", p.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return exchange.Snapshot{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return exchange.Snapshot{}, fmt.Errorf("failed to fetch rates: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return exchange.Snapshot{}, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return exchange.Snapshot{}, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(apiResp.Rates) == 0 {
		return exchange.Snapshot{}, errors.New("response contained no rates")
	}

	fetchedAt := time.Now()
	if apiResp.Timestamp > 0 {
		fetchedAt = time.Unix(apiResp.Timestamp, 0)
	}

	return exchange.Snapshot{Rates: apiResp.Rates, FetchedAt: fetchedAt}, nil
}

// Name returns the provider's name.
func (p *OpenExchangeRatesProvider) Name() string {
	return "openexchangerates"
}

// Ensure OpenExchangeRatesProvider implements exchange.RateProvider.
var _ exchange.RateProvider = (*OpenExchangeRatesProvider)(nil)
