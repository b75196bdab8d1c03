package currency

import (
	"math"
	"strings"
)

// Table holds exchange rates, each expressed as units of a currency per one
// unit of the base. Tables are replaced wholesale, never mutated in place.
type Table struct {
	Base  string
	Rates map[string]float64
}

// Clone copies the table so a snapshot handed to callers stays immutable for
// the duration of a conversion even if the live table is replaced.
func (t Table) Clone() Table {
	rates := make(map[string]float64, len(t.Rates))
	for code, rate := range t.Rates {
		rates[code] = rate
	}
	return Table{Base: t.Base, Rates: rates}
}

// Convert translates an amount from one currency to another, always routing
// through the table's base currency. If either rate is missing the amount is
// returned unchanged: a missing rate degrades to identity conversion rather
// than failing the caller. The result is rounded half-up on the cent.
func Convert(amount float64, t Table, from, to string) float64 {
	fromRate, okFrom := t.Rates[from]
	toRate, okTo := t.Rates[to]
	if !okFrom || !okTo || fromRate == 0 {
		return amount
	}

	inBase := amount
	if from != t.Base {
		inBase = amount / fromRate
	}
	return roundCents(inBase * toRate)
}

// Placement groups for the formatted symbol. Everything not listed renders
// as "{symbol}{number}".
var (
	suffixCurrencies       = map[string]bool{"TRY": true, "RUB": true, "UAH": true, "PLN": true}
	spacedPrefixCurrencies = map[string]bool{
		"AED": true, "SAR": true, "QAR": true, "KWD": true,
		"BHD": true, "OMR": true, "EGP": true,
	}
)

// Format renders an amount with the currency's symbol in its conventional
// position. The numeric part uses thousands separators and at most two
// fraction digits, with trailing zeros dropped.
func Format(amount float64, cur Currency) string {
	number := formatNumber(amount)
	switch {
	case suffixCurrencies[cur.Code]:
		return number + " " + cur.Symbol
	case spacedPrefixCurrencies[cur.Code]:
		return cur.Symbol + " " + number
	default:
		return cur.Symbol + number
	}
}

func formatNumber(v float64) string {
	v = roundCents(v)

	neg := math.Signbit(v) && v != 0
	if neg {
		v = -v
	}

	whole := math.Trunc(v)
	frac := roundCents(v - whole)
	if frac >= 1 {
		whole++
		frac = 0
	}

	intPart := groupThousands(int64(whole))

	cents := int(math.Round(frac * 100))
	s := intPart
	switch {
	case cents == 0:
	case cents%10 == 0:
		s += "." + string('0'+rune(cents/10))
	default:
		s += "." + string('0'+rune(cents/10)) + string('0'+rune(cents%10))
	}

	if neg {
		s = "-" + s
	}
	return s
}

func groupThousands(n int64) string {
	digits := []byte(strings.TrimLeft(formatInt(n), "-"))
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(d)
	}
	return b.String()
}

func formatInt(n int64) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// roundCents rounds half-up on the cent boundary.
func roundCents(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
