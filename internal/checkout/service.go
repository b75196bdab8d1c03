package checkout

import (
	"time"

	"github.com/salon-pay/salon_pay/internal/card"
	"github.com/salon-pay/salon_pay/internal/currency"
	"github.com/salon-pay/salon_pay/internal/metrics"
	"github.com/salon-pay/salon_pay/internal/rates"
)

// Service runs submit-time card checks and prices amounts in display
// currencies. The rate table is taken fresh from the rates service per call;
// the card validators are pure and share no state.
type Service struct {
	rates *rates.Service
	now   func() time.Time
}

// NewService builds a checkout service. A nil clock defaults to time.Now so
// tests can pin the expiry reference date.
func NewService(rateSvc *rates.Service, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{rates: rateSvc, now: now}
}

// ValidateCard runs the aggregate card check and reports the outcome.
func (s *Service) ValidateCard(req ValidateCardRequest) ValidateCardResponse {
	result := card.Validate(card.Card{
		Number:     req.CardNumber,
		Expiry:     req.Expiry,
		CVV:        req.CVV,
		HolderName: req.HolderName,
	}, s.now())

	outcome := "invalid"
	if result.Valid {
		outcome = "valid"
	}
	metrics.CardValidations.WithLabelValues(string(result.Network), outcome).Inc()

	errs := result.Errors
	if errs == nil {
		errs = []string{}
	}
	return ValidateCardResponse{Valid: result.Valid, CardType: string(result.Network), Errors: errs}
}

// Quote converts a base-currency amount into the requested display currency
// and formats it. A code without a rate degrades to identity conversion; the
// client always gets a price.
func (s *Service) Quote(amount float64, code string) QuoteResponse {
	table := s.rates.Table()

	cur, ok := currency.Lookup(code)
	if !ok {
		cur = currency.Currency{Code: code, Symbol: code + " "}
	}

	converted := currency.Convert(amount, table, table.Base, cur.Code)
	metrics.Quotes.WithLabelValues(cur.Code).Inc()

	return QuoteResponse{
		Amount:       converted,
		CurrencyCode: cur.Code,
		Formatted:    currency.Format(converted, cur),
		BaseAmount:   amount,
		BaseCurrency: table.Base,
	}
}
