package utils

import (
	"errors"
	"strings"
	"unicode"
)

// NormalizePhone reduces a phone number to digits only (a leading + is
// dropped). Session records and pending orders are keyed by this form.
func NormalizePhone(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	phone := b.String()
	if len(phone) < 8 || len(phone) > 15 {
		return "", errors.New("invalid phone number")
	}
	return phone, nil
}
