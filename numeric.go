package stockdesk

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FilterNumeric keeps only digits and the first decimal point of s.
// The console applies it on every keystroke of a price or quantity
// field, so a draft value never contains a second decimal point or a
// non-digit character.
func FilterNumeric(s string) string {
	var b strings.Builder
	dot := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !dot:
			dot = true
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParsePositiveAmount parses a filtered numeric draft into a strictly
// positive float. The empty string, zero and negative values are all
// rejected.
func ParsePositiveAmount(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if !d.IsPositive() {
		return 0, fmt.Errorf("amount must be greater than 0")
	}
	return d.InexactFloat64(), nil
}
