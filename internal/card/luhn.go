package card

import "strings"

// luhnValid reports whether a digit string passes the Luhn mod-10 checksum.
// Every second digit from the rightmost is doubled, doubles above 9 are
// reduced by 9, and the total must divide evenly by 10.
func luhnValid(digits string) bool {
	if digits == "" {
		return false
	}
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
