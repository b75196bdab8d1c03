package card

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	minNumberLength = 13
	maxNumberLength = 19
)

// Card carries the submit-time fields of a payment card. Values are
// ephemeral: they are validated and discarded, never persisted.
type Card struct {
	Number     string
	Expiry     string
	CVV        string
	HolderName string
}

// Result is the outcome of a validation pass. Errors are accumulated in a
// fixed order rather than short-circuited so a caller can surface every
// problem at once.
type Result struct {
	Valid   bool
	Network Network
	Errors  []string
}

// ValidateNumber checks a raw card number: length, digit content, Luhn
// checksum and the canonical pattern of the detected network. It is a total
// function and never returns a Go error; failures are messages in the Result.
func ValidateNumber(raw string) Result {
	cleaned := stripSpaces(raw)
	var errs []string

	if len(cleaned) < minNumberLength || len(cleaned) > maxNumberLength {
		errs = append(errs, "Card number must be between 13 and 19 digits")
	}

	if !allDigits(cleaned) {
		errs = append(errs, "Card number must contain only digits")
		return Result{Valid: false, Network: NetworkUnknown, Errors: errs}
	}

	if !luhnValid(cleaned) {
		errs = append(errs, "Invalid card number (failed Luhn check)")
	}

	network := Detect(cleaned)
	if rule, ok := ruleFor(network); ok {
		if !rule.canonical.MatchString(cleaned) {
			errs = append(errs, fmt.Sprintf("Invalid %s card format", rule.display))
		}
	}

	return Result{Valid: len(errs) == 0, Network: network, Errors: errs}
}

// ValidateExpiry reports whether an MM/YY expiry (slash optional) is a real
// month that has not passed. Cards expiring in the current month are still
// valid; only strictly past months fail. The reference time is injected so
// callers and tests control "now".
func ValidateExpiry(expiry string, now time.Time) bool {
	s := strings.ReplaceAll(strings.TrimSpace(expiry), "/", "")
	if len(s) != 4 || !allDigits(s) {
		return false
	}
	month, _ := strconv.Atoi(s[:2])
	year := 2000 + mustAtoi(s[2:])
	if month < 1 || month > 12 {
		return false
	}
	if year < now.Year() {
		return false
	}
	if year == now.Year() && month < int(now.Month()) {
		return false
	}
	return true
}

// ValidateCVV reports whether the CVV has the length the network requires:
// 4 digits for American Express, 3 for everything else.
func ValidateCVV(cvv string, network Network) bool {
	return len(cvv) == CVVLength(network) && allDigits(cvv)
}

// ValidateHolderName requires at least a first and last name: two or more
// whitespace-separated tokens after trimming.
func ValidateHolderName(name string) bool {
	return len(strings.Fields(name)) >= 2
}

// Validate runs the full submit-time check over all card fields, collecting
// every failing message into one ordered list. The card is accepted only if
// the list is empty. Nothing is retried and no partial state is committed.
func Validate(c Card, now time.Time) Result {
	result := ValidateNumber(c.Number)

	if !ValidateExpiry(c.Expiry, now) {
		result.Errors = append(result.Errors, "Card expiry is invalid or in the past")
	}
	if !ValidateCVV(c.CVV, result.Network) {
		result.Errors = append(result.Errors, fmt.Sprintf("CVV must be %d digits", CVVLength(result.Network)))
	}
	if !ValidateHolderName(c.HolderName) {
		result.Errors = append(result.Errors, "Cardholder name must include first and last name")
	}

	result.Valid = len(result.Errors) == 0
	return result
}

func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
