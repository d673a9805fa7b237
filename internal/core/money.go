// Package core defines the read-only entities of the mock banking dataset
// and the money-parsing helpers used at the loading boundary.
//
// Monetary fields arrive as signed decimal strings ("-5000.00" is statement
// debt). They are parsed exactly once, here, into decimal values; nothing
// downstream re-parses strings.
package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// ParseAmount parses a signed decimal string from the fixture. The sign is
// preserved: debts stay negative. An empty string is rejected; use
// ParseOptionalAmount for fields the fixture may omit.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}

// ParseOptionalAmount is ParseAmount for nullable fields: an empty string
// parses to zero.
func ParseOptionalAmount(s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, nil
	}
	return ParseAmount(s)
}

// SignedDebtString re-serializes an absolute amount using the fixture's
// negative-for-debt convention, with two decimal places.
func SignedDebtString(abs decimal.Decimal) string {
	return abs.Abs().Neg().StringFixed(2)
}

// Percentage returns value/total*100 rounded to one decimal place, and 0
// when total is zero.
func Percentage(value, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return value.Div(total).Mul(decimal.NewFromInt(100)).Round(1)
}
