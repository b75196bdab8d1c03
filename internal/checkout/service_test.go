package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/salon-pay/salon_pay/internal/currency"
	"github.com/salon-pay/salon_pay/internal/logging"
	"github.com/salon-pay/salon_pay/internal/rates"
)

type staticProvider struct{ table currency.Table }

func (p staticProvider) Fetch(context.Context) (currency.Table, error) {
	return p.table, nil
}

func fixedClock() time.Time {
	return time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	rateSvc := rates.New(staticProvider{table: currency.Fallback()}, nil, logging.Discard(), 0)
	return NewService(rateSvc, fixedClock)
}

func TestValidateCardAcceptsGoodCard(t *testing.T) {
	svc := newTestService(t)

	resp := svc.ValidateCard(ValidateCardRequest{
		CardNumber: "4242 4242 4242 4242",
		Expiry:     "08/26",
		CVV:        "123",
		HolderName: "John Doe",
	})
	if !resp.Valid {
		t.Fatalf("expected valid, errors: %v", resp.Errors)
	}
	if resp.CardType != "visa" {
		t.Fatalf("card type = %s, want visa", resp.CardType)
	}
	if len(resp.Errors) != 0 {
		t.Fatalf("expected empty errors, got %v", resp.Errors)
	}
}

func TestValidateCardCollectsEveryError(t *testing.T) {
	svc := newTestService(t)

	resp := svc.ValidateCard(ValidateCardRequest{
		CardNumber: "4242424242424241",
		Expiry:     "07/26",
		CVV:        "12",
		HolderName: "Cher",
	})
	if resp.Valid {
		t.Fatal("expected invalid result")
	}
	if len(resp.Errors) != 4 {
		t.Fatalf("expected 4 errors, got %d: %v", len(resp.Errors), resp.Errors)
	}
}

func TestQuoteConvertsAndFormats(t *testing.T) {
	svc := newTestService(t)

	resp := svc.Quote(100, "USD")
	if resp.Amount != 27 {
		t.Fatalf("amount = %v, want 27", resp.Amount)
	}
	if resp.Formatted != "$27" {
		t.Fatalf("formatted = %q, want $27", resp.Formatted)
	}
	if resp.BaseCurrency != "AED" {
		t.Fatalf("base = %s, want AED", resp.BaseCurrency)
	}
}

func TestQuoteSuffixPlacement(t *testing.T) {
	svc := newTestService(t)

	resp := svc.Quote(100, "TRY")
	if resp.Formatted != "880 ₺" {
		t.Fatalf("formatted = %q, want 880 ₺", resp.Formatted)
	}
}

func TestQuoteUnknownCurrencyIsIdentity(t *testing.T) {
	svc := newTestService(t)

	resp := svc.Quote(50, "XYZ")
	if resp.Amount != 50 {
		t.Fatalf("amount = %v, want 50 (identity fallback)", resp.Amount)
	}
}
