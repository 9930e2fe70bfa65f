package telemetry

import "strings"

const redacted = "[REDACTED]"

// RedactSecret replaces a secret value (token, password, CVV) with a fixed
// placeholder. Empty values pass through so missing-field logs stay readable.
func RedactSecret(v string) string {
	if v == "" {
		return ""
	}
	return redacted
}

// RedactPAN reduces a card number to its last four digits. Anything shorter
// than four digits is fully redacted.
func RedactPAN(v string) string {
	digits := strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return -1
		}
		return r
	}, v)
	if len(digits) <= 4 {
		return redacted
	}
	return "****" + digits[len(digits)-4:]
}
