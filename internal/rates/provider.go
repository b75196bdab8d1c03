package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/salon-pay/salon_pay/internal/currency"
)

// Provider fetches a fresh exchange-rate table from an upstream source.
type Provider interface {
	Fetch(ctx context.Context) (currency.Table, error)
}

// HTTPProvider pulls rates from a JSON endpoint shaped {"rates": {code: rate}}
// with every rate expressed relative to the configured base currency.
type HTTPProvider struct {
	url    string
	base   string
	client *http.Client
}

// NewHTTPProvider builds a provider for the given endpoint and base currency.
func NewHTTPProvider(url, base string) *HTTPProvider {
	return &HTTPProvider{
		url:    url,
		base:   base,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type providerResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// Fetch performs a single GET against the rate endpoint.
func (p *HTTPProvider) Fetch(ctx context.Context) (currency.Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return currency.Table{}, fmt.Errorf("build rates request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return currency.Table{}, fmt.Errorf("fetch rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return currency.Table{}, fmt.Errorf("rate provider returned status %d", resp.StatusCode)
	}

	var payload providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return currency.Table{}, fmt.Errorf("decode rates: %w", err)
	}
	if len(payload.Rates) == 0 {
		return currency.Table{}, fmt.Errorf("rate provider returned no rates")
	}

	return currency.Table{Base: p.base, Rates: payload.Rates}, nil
}
