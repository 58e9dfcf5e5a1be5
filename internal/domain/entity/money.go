package entity

import (
	"fmt"
	"math"
	"strings"

	errs "github.com/guidy-app/joblight/internal/domain/error"
	"github.com/shopspring/decimal"
)

// Currency is an ISO 4217 currency code
type Currency string

// Currencies accepted by at least one provider
const (
	CurrencyXAF Currency = "XAF"
	CurrencyXOF Currency = "XOF"
	CurrencyCDF Currency = "CDF"
	CurrencyGNF Currency = "GNF"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// currencyDecimals maps a currency to the number of digits in its minor unit.
// CFA francs and friends have no minor unit.
var currencyDecimals = map[Currency]int32{
	CurrencyXAF: 0,
	CurrencyXOF: 0,
	CurrencyCDF: 2,
	CurrencyGNF: 0,
	CurrencyUSD: 2,
	CurrencyEUR: 2,
}

// ParseCurrency normalizes and validates a currency code
func ParseCurrency(code string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	if _, ok := currencyDecimals[c]; !ok {
		return "", fmt.Errorf("%w: %q", errs.ErrUnsupportedCurrency, code)
	}
	return c, nil
}

// Decimals returns the number of minor-unit digits for the currency
func (c Currency) Decimals() int32 {
	return currencyDecimals[c]
}

// ValidateAndConvertAmount parses a decimal string amount into minor units of the currency.
// "1500" XAF becomes 1500, "12.5" USD becomes 1250. Amounts with more precision than the
// currency allows are rejected rather than rounded.
func ValidateAndConvertAmount(amount string, currency Currency) (int64, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return 0, errs.ErrNegativeAmount
	}

	// decimal accepts exponents and signs; only plain digits with one optional point are valid here
	for _, r := range amount {
		if (r < '0' || r > '9') && r != '.' {
			return 0, fmt.Errorf("%w: invalid character %q", errs.ErrInvalidAmount, r)
		}
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	decimals := currency.Decimals()
	minor := value.Shift(decimals)
	if !minor.Equal(minor.Truncate(0)) {
		return 0, fmt.Errorf("%w: maximum %d decimal places allowed for %s", errs.ErrInvalidAmount, decimals, currency)
	}

	if minor.GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return 0, errs.ErrAmountOverflow
	}

	return minor.IntPart(), nil
}

// FormatAmount converts minor units back to a decimal string with the currency's precision.
// For example 1015 USD becomes "10.15" and 1500 XAF becomes "1500".
func FormatAmount(minor int64, currency Currency) string {
	return decimal.New(minor, -currency.Decimals()).StringFixed(currency.Decimals())
}

// MajorUnits returns the amount in major units as a decimal
func MajorUnits(minor int64, currency Currency) decimal.Decimal {
	return decimal.New(minor, -currency.Decimals())
}
