package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name      string
		amountStr string
		expected  string
		hasError  bool
	}{
		{"Simple decimal", "123.45", "123.45", false},
		{"Integer", "100", "100", false},
		{"Negative decimal", "-123.45", "-123.45", false},
		{"Comma decimal separator", "123,45", "123.45", false},
		{"Comma thousands separator", "1,234.56", "1234.56", false},
		{"Apostrophe thousands separator", "1'234.56", "1234.56", false},
		{"European format", "1.234,56", "1234.56", false},
		{"Dollar sign", "$50", "50", false},
		{"Currency code", "CHF 12.50", "12.5", false},
		{"Spaces", "  7.25  ", "7.25", false},
		{"Empty", "", "", true},
		{"Only spaces", "   ", "", true},
		{"Malformed", "12.3.4", "", true},
		{"Letters", "abc", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ParseAmount(tc.amountStr)
			if tc.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.expected).Equal(result),
				"expected %s but got %s", tc.expected, result)
		})
	}
}

func TestStandardizeAmount(t *testing.T) {
	assert.Equal(t, "1234567.89", StandardizeAmount("1,234,567.89"))
	assert.Equal(t, "1234567.89", StandardizeAmount("1.234.567,89"))
	assert.Equal(t, "1234", StandardizeAmount("1,234"))
	assert.Equal(t, "1234.56", StandardizeAmount("€1.234,56"))
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		currency string
		expected string
	}{
		{"Dollar symbol", decimal.NewFromInt(50), "$", "$50.00"},
		{"USD code", decimal.RequireFromString("1234.5"), "USD", "$1234.50"},
		{"EUR code", decimal.RequireFromString("0.1"), "eur", "€0.10"},
		{"CHF code", decimal.NewFromInt(3), "CHF", "CHF 3.00"},
		{"Empty currency", decimal.RequireFromString("-12.3"), "", "-12.30"},
		{"Zero", decimal.Zero, "$", "$0.00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatAmount(tc.amount, tc.currency))
		})
	}
}
