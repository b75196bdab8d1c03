package preference

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salon-pay/salon_pay/internal/currency"
)

// ErrUnknownCurrency rejects codes outside the fixed catalog.
var ErrUnknownCurrency = errors.New("unknown currency code")

// Service resolves and stores per-client display currencies.
type Service struct {
	repo            Repository
	defaultCurrency string
}

// NewService builds a preference service. Clients that never picked a
// currency resolve to defaultCode.
func NewService(repo Repository, defaultCode string) *Service {
	if _, ok := currency.Lookup(defaultCode); !ok {
		defaultCode = currency.FallbackBase
	}
	return &Service{repo: repo, defaultCurrency: defaultCode}
}

// Get returns the client's stored currency, falling back to the default when
// nothing was ever saved.
func (s *Service) Get(ctx context.Context, clientID string) (currency.Currency, error) {
	if clientID == "" {
		return currency.Currency{}, fmt.Errorf("client id is required")
	}

	pref, err := s.repo.Get(ctx, clientID)
	if errors.Is(err, ErrNotFound) {
		cur, _ := currency.Lookup(s.defaultCurrency)
		return cur, nil
	}
	if err != nil {
		return currency.Currency{}, err
	}

	cur, ok := currency.Lookup(pref.CurrencyCode)
	if !ok {
		// A stored code that left the catalog degrades to the default.
		cur, _ = currency.Lookup(s.defaultCurrency)
	}
	return cur, nil
}

// Set validates the code against the catalog and persists it.
func (s *Service) Set(ctx context.Context, clientID, code string) (currency.Currency, error) {
	if clientID == "" {
		return currency.Currency{}, fmt.Errorf("client id is required")
	}

	cur, ok := currency.Lookup(code)
	if !ok {
		return currency.Currency{}, ErrUnknownCurrency
	}

	err := s.repo.Put(ctx, Preference{
		ClientID:     clientID,
		CurrencyCode: cur.Code,
		UpdatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return currency.Currency{}, err
	}
	return cur, nil
}
