package httpclient

import (
	"encoding/json"
	"fmt"

	"github.com/guidy-app/joblight/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Major renders a minor-unit amount as the JSON number providers expect, e.g. 1250 USD as 12.5
func Major(minor int64, currency entity.Currency) json.Number {
	return json.Number(entity.MajorUnits(minor, currency).String())
}

// Minor converts a provider amount in major units back to minor units.
// Providers send numbers or numeric strings; anything else yields 0.
func Minor(v any, currency entity.Currency) int64 {
	var d decimal.Decimal
	var err error
	switch n := v.(type) {
	case float64:
		d = decimal.NewFromFloat(n)
	case json.Number:
		d, err = decimal.NewFromString(n.String())
	case string:
		d, err = decimal.NewFromString(n)
	case int64:
		d = decimal.NewFromInt(n)
	case int:
		d = decimal.NewFromInt(int64(n))
	default:
		return 0
	}
	if err != nil {
		return 0
	}
	return d.Shift(currency.Decimals()).Round(0).IntPart()
}

// String renders a loosely typed JSON value as text
func String(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return decimal.NewFromFloat(s).String()
	default:
		return fmt.Sprint(s)
	}
}
