package processor

import (
	"strings"
	"unicode"
)

// FormatExpiry converts the form's "MM / YY" display value into the
// processor's MM20YY wire format by inserting the literal century prefix
// "20" before the two-digit year. Known limitation: this assumes a 20xx
// expiry year. Not idempotent; must not be applied to an already-formatted
// value.
func FormatExpiry(expiry string) string {
	parts := strings.SplitN(expiry, " / ", 2)
	if len(parts) < 2 {
		return parts[0] + "20"
	}
	return parts[0] + "20" + parts[1]
}

// FormatCardNumber strips all whitespace from a card number as entered in
// the form ("4111 1111 1111 1111" -> "4111111111111111"). Digits-only input
// is a fixed point.
func FormatCardNumber(cardNumber string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, cardNumber)
}
