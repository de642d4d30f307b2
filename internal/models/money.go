package models

import (
	"errors"

	"fjacquet/fintrack/internal/currencyutils"
	"fjacquet/fintrack/internal/trackererror"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a non-negative decimal amount typed by the user.
func ParseAmount(text string) (decimal.Decimal, error) {
	amount, err := currencyutils.ParseAmount(text)
	if err != nil {
		return decimal.Zero, &trackererror.ParseError{Field: "amount", Value: text, Err: err}
	}
	if amount.IsNegative() {
		return decimal.Zero, &trackererror.ParseError{Field: "amount", Value: text, Err: errors.New("amount must not be negative")}
	}
	return amount, nil
}
