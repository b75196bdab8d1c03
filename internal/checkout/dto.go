package checkout

// ValidateCardRequest carries the submit-time card fields. Nothing in it is
// persisted; the payload is validated and discarded.
type ValidateCardRequest struct {
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
	HolderName string `json:"holder_name"`
}

// ValidateCardResponse is the structured validation outcome. Failures are
// data, not HTTP errors, so the client can render every message at once.
type ValidateCardResponse struct {
	Valid    bool     `json:"valid"`
	CardType string   `json:"card_type"`
	Errors   []string `json:"errors"`
}

// QuoteResponse is a price converted into the requested display currency.
type QuoteResponse struct {
	Amount       float64 `json:"amount"`
	CurrencyCode string  `json:"currency_code"`
	Formatted    string  `json:"formatted"`
	BaseAmount   float64 `json:"base_amount"`
	BaseCurrency string  `json:"base_currency"`
}
