package currency

// FallbackBase is the base currency of the built-in rate snapshot.
const FallbackBase = "AED"

// Fallback returns the built-in exchange-rate snapshot, expressed as units
// per one AED. It is served whenever the live provider cannot be reached and
// must stay byte-for-byte stable so offline behavior is deterministic.
func Fallback() Table {
	return Table{
		Base: FallbackBase,
		Rates: map[string]float64{
			"AED": 1.0,
			"USD": 0.27,
			"EUR": 0.25,
			"GBP": 0.21,
			"SAR": 1.02,
			"QAR": 0.99,
			"KWD": 0.083,
			"BHD": 0.10,
			"OMR": 0.105,
			"EGP": 13.35,
			"TRY": 8.80,
			"RUB": 24.50,
			"UAH": 11.20,
			"PLN": 1.07,
			"JPY": 40.90,
			"CNY": 1.96,
			"INR": 22.70,
			"CAD": 0.37,
			"AUD": 0.41,
			"CHF": 0.24,
		},
	}
}
