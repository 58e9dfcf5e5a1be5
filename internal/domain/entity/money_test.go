package entity

import (
	"testing"

	errs "github.com/guidy-app/joblight/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAndConvertAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			currency Currency
			expected int64
		}{
			{"100.00", CurrencyUSD, 10000},
			{"0.01", CurrencyUSD, 1},
			{"1", CurrencyUSD, 100},
			{"1.5", CurrencyEUR, 150},
			{"1500", CurrencyXAF, 1500},
			{"1500.00", CurrencyXAF, 1500},
			{"100", CurrencyXOF, 100},
			{"0", CurrencyXAF, 0},
		}

		for _, tc := range testCases {
			t.Run(tc.input+"_"+string(tc.currency), func(t *testing.T) {
				minor, err := ValidateAndConvertAmount(tc.input, tc.currency)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, minor)
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			currency    Currency
			errorType   error
			description string
		}{
			{"", CurrencyXAF, errs.ErrInvalidAmount, "Empty string"},
			{"   ", CurrencyXAF, errs.ErrInvalidAmount, "Whitespace only"},
			{"-1.00", CurrencyUSD, errs.ErrNegativeAmount, "Negative amount"},
			{"1.234", CurrencyUSD, errs.ErrInvalidAmount, "Too many decimal places"},
			{"1500.5", CurrencyXAF, errs.ErrInvalidAmount, "Fraction on zero-decimal currency"},
			{"abc", CurrencyXAF, errs.ErrInvalidAmount, "Non-numeric"},
			{"1,000.00", CurrencyUSD, errs.ErrInvalidAmount, "Comma as thousands separator"},
			{"1.00.00", CurrencyUSD, errs.ErrInvalidAmount, "Multiple decimal points"},
			{"1e5", CurrencyXAF, errs.ErrInvalidAmount, "Exponent notation"},
			{"$100", CurrencyUSD, errs.ErrInvalidAmount, "Currency symbol"},
			{"99999999999999999999", CurrencyXAF, errs.ErrAmountOverflow, "Overflow"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ValidateAndConvertAmount(tc.input, tc.currency)
				assert.Error(t, err)
				assert.ErrorIs(t, err, tc.errorType)
			})
		}
	})
}

func TestParseCurrency(t *testing.T) {
	c, err := ParseCurrency(" xaf ")
	require.NoError(t, err)
	assert.Equal(t, CurrencyXAF, c)
	assert.Equal(t, int32(0), c.Decimals())

	_, err = ParseCurrency("BTC")
	assert.ErrorIs(t, err, errs.ErrUnsupportedCurrency)
}

func TestFormatAmount(t *testing.T) {
	testCases := []struct {
		minor    int64
		currency Currency
		expected string
	}{
		{10000, CurrencyUSD, "100.00"},
		{1, CurrencyUSD, "0.01"},
		{150, CurrencyEUR, "1.50"},
		{0, CurrencyUSD, "0.00"},
		{1500, CurrencyXAF, "1500"},
		{0, CurrencyXOF, "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatAmount(tc.minor, tc.currency))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	testCases := []string{"0.00", "0.01", "1.00", "10.50", "1234.56", "9999999.99"}

	for _, tc := range testCases {
		t.Run(tc, func(t *testing.T) {
			minor, err := ValidateAndConvertAmount(tc, CurrencyUSD)
			require.NoError(t, err)
			assert.Equal(t, tc, FormatAmount(minor, CurrencyUSD))
		})
	}
}
