package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a user-entered monetary amount. It accepts both
// dot (12.34) and comma (12,34) decimal separators. Amounts must be
// strictly positive; the sign of a transaction comes from its type,
// never from the entered number.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if d.Sign() <= 0 {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}
