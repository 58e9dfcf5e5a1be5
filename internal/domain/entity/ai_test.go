package entity

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/guidy-app/joblight/internal/domain/error"
)

func TestQuotePrice(t *testing.T) {
	testCases := []struct {
		name      string
		tokens    int64
		unitPrice string
		discount  int64
		currency  Currency
		amount    int64
		formatted string
	}{
		{"No discount", 40, "2.5", 0, CurrencyXAF, 100, "100"},
		{"Rounded up", 3, "2.5", 0, CurrencyXAF, 8, "8"},
		{"Pack discount", 1000, "2.5", 15, CurrencyXAF, 2125, "2125"},
		{"Cents", 3, "0.35", 0, CurrencyUSD, 105, "1.05"},
		{"Discount clamped", 10, "2", 150, CurrencyXAF, 0, "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := QuotePrice(tc.tokens, decimal.RequireFromString(tc.unitPrice), tc.discount, tc.currency)

			require.NoError(t, err)
			assert.Equal(t, tc.amount, q.Amount)
			assert.Equal(t, tc.formatted, q.FormattedAmount)
			assert.Equal(t, tc.tokens, q.Tokens)
		})
	}
}

func TestQuotePrice_Overflow(t *testing.T) {
	// Arrange
	unitPrice := decimal.RequireFromString("2.5")

	// Act
	_, err := QuotePrice(7378697629483820647, unitPrice, 0, CurrencyXAF)
	_, errCents := QuotePrice(math.MaxInt64/10, unitPrice, 0, CurrencyUSD)

	// Assert
	assert.ErrorIs(t, err, errs.ErrAmountOverflow)
	assert.ErrorIs(t, errCents, errs.ErrAmountOverflow)
}

func TestTokensForAmount(t *testing.T) {
	testCases := []struct {
		name      string
		minor     int64
		unitPrice string
		want      int64
	}{
		{"Exact", 5000, "10", 500},
		{"Rounded down", 29, "10", 2},
		{"Free tokens", 5000, "0", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := TokensForAmount(tc.minor, decimal.RequireFromString(tc.unitPrice), CurrencyXAF)

			require.NoError(t, err)
			assert.Equal(t, tc.want, tokens)
		})
	}

	t.Run("Overflow", func(t *testing.T) {
		_, err := TokensForAmount(math.MaxInt64, decimal.RequireFromString("0.0001"), CurrencyXAF)

		assert.ErrorIs(t, err, errs.ErrAmountOverflow)
	})
}

func TestNewAccessCheck(t *testing.T) {
	service := AIService{Code: "cv_review", Tokens: 40}

	denied := NewAccessCheck(service, 25)
	assert.False(t, denied.Allowed)
	assert.Equal(t, int64(15), denied.MissingTokens)

	allowed := NewAccessCheck(service, 40)
	assert.True(t, allowed.Allowed)
	assert.Equal(t, int64(0), allowed.MissingTokens)
}
