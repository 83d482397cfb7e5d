// Package money converts between display amounts and the integer cents
// stored in the database. All arithmetic on amounts happens on int64
// cents; decimals only appear at the parse/format edges.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a user-entered amount like "18500.00" into cents.
// At most two decimal places are accepted.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("amount is empty")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("amount %q is not a number", s)
	}
	cents := d.Shift(2)
	if !cents.IsInteger() {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	return cents.IntPart(), nil
}

// FormatCents renders cents with exactly two decimal places.
func FormatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// Format renders cents with the session currency prefix.
func Format(symbol string, cents int64) string {
	return symbol + FormatCents(cents)
}
