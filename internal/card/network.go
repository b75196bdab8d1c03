package card

import "regexp"

// Network identifies the issuing scheme of a payment card.
type Network string

const (
	NetworkVisa       Network = "visa"
	NetworkMastercard Network = "mastercard"
	NetworkAmex       Network = "amex"
	NetworkDiscover   Network = "discover"
	NetworkJCB        Network = "jcb"
	NetworkDiners     Network = "diners"
	NetworkMaestro    Network = "maestro"
	NetworkUnknown    Network = "unknown"
)

// networkRule pairs a detection prefix with the canonical full-number pattern
// for one scheme. Adding a network is a table change, not new control flow.
type networkRule struct {
	network   Network
	display   string
	prefix    *regexp.Regexp
	canonical *regexp.Regexp
	cvvLength int
}

// networkRules is ordered: detection takes the first matching prefix.
var networkRules = []networkRule{
	{
		network:   NetworkVisa,
		display:   "Visa",
		prefix:    regexp.MustCompile(`^4`),
		canonical: regexp.MustCompile(`^4\d{12}(?:\d{3}){0,2}$`),
		cvvLength: 3,
	},
	{
		network:   NetworkMastercard,
		display:   "Mastercard",
		prefix:    regexp.MustCompile(`^5[1-5]`),
		canonical: regexp.MustCompile(`^5[1-5]\d{14}$`),
		cvvLength: 3,
	},
	{
		network:   NetworkAmex,
		display:   "American Express",
		prefix:    regexp.MustCompile(`^3[47]`),
		canonical: regexp.MustCompile(`^3[47]\d{13}$`),
		cvvLength: 4,
	},
	{
		network:   NetworkDiscover,
		display:   "Discover",
		prefix:    regexp.MustCompile(`^6(?:011|5)`),
		canonical: regexp.MustCompile(`^6(?:011\d{12}|5\d{14})$`),
		cvvLength: 3,
	},
	{
		network:   NetworkJCB,
		display:   "JCB",
		prefix:    regexp.MustCompile(`^35`),
		canonical: regexp.MustCompile(`^35\d{14}$`),
		cvvLength: 3,
	},
	{
		network:   NetworkDiners,
		display:   "Diners Club",
		prefix:    regexp.MustCompile(`^3(?:0[0-5]|[68])`),
		canonical: regexp.MustCompile(`^3(?:0[0-5]|[68])\d{11}$`),
		cvvLength: 3,
	},
	{
		network:   NetworkMaestro,
		display:   "Maestro",
		prefix:    regexp.MustCompile(`^(?:5018|5020|5038|5893|6304|6759|676[1-3])`),
		canonical: regexp.MustCompile(`^(?:5018|5020|5038|5893|6304|6759|676[1-3])\d{8,15}$`),
		cvvLength: 3,
	},
}

// Detect classifies a raw card number by digit prefix. Spaces are ignored.
// It always returns a tag; numbers matching no known scheme map to unknown.
func Detect(raw string) Network {
	cleaned := stripSpaces(raw)
	for _, rule := range networkRules {
		if rule.prefix.MatchString(cleaned) {
			return rule.network
		}
	}
	return NetworkUnknown
}

// CVVLength returns the required CVV length for a network. Unknown networks
// default to 3 digits.
func CVVLength(network Network) int {
	for _, rule := range networkRules {
		if rule.network == network {
			return rule.cvvLength
		}
	}
	return 3
}

func ruleFor(network Network) (networkRule, bool) {
	for _, rule := range networkRules {
		if rule.network == network {
			return rule, true
		}
	}
	return networkRule{}, false
}
