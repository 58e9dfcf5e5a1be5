package entity

import (
	"math"

	"github.com/shopspring/decimal"

	errs "github.com/guidy-app/joblight/internal/domain/error"
)

// MaxTokensPerPurchase bounds the tokens a single payment may buy
const MaxTokensPerPurchase int64 = 10_000_000

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// AIService is a metered AI feature with a fixed token cost per use
type AIService struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Tokens int64  `json:"tokens"`
}

// TokenPack is a purchasable bundle of tokens
type TokenPack struct {
	Code            string `json:"code"`
	Tokens          int64  `json:"tokens"`
	DiscountPercent int64  `json:"discount_percent"`
}

// PriceQuote is what a number of tokens costs
type PriceQuote struct {
	Tokens          int64    `json:"tokens"`
	UnitPrice       string   `json:"unit_price"`
	DiscountPercent int64    `json:"discount_percent"`
	Amount          int64    `json:"amount"`
	FormattedAmount string   `json:"formatted_amount"`
	Currency        Currency `json:"currency"`
}

// QuotePrice computes ceil(tokens * unitPrice * (100 - discount) / 100) in minor units of currency.
// unitPrice is expressed in major units. A price that does not fit in int64 minor units
// returns errs.ErrAmountOverflow.
func QuotePrice(tokens int64, unitPrice decimal.Decimal, discountPercent int64, currency Currency) (PriceQuote, error) {
	if discountPercent < 0 {
		discountPercent = 0
	}
	if discountPercent > 100 {
		discountPercent = 100
	}

	major := decimal.NewFromInt(tokens).
		Mul(unitPrice).
		Mul(decimal.NewFromInt(100 - discountPercent)).
		Div(decimal.NewFromInt(100))
	ceiled := major.Shift(currency.Decimals()).Ceil()
	if ceiled.GreaterThan(maxMinorUnits) || ceiled.IsNegative() {
		return PriceQuote{}, errs.ErrAmountOverflow
	}
	minor := ceiled.IntPart()

	return PriceQuote{
		Tokens:          tokens,
		UnitPrice:       unitPrice.String(),
		DiscountPercent: discountPercent,
		Amount:          minor,
		FormattedAmount: FormatAmount(minor, currency),
		Currency:        currency,
	}, nil
}

// TokensForAmount converts a paid amount back to tokens, rounding down
func TokensForAmount(minor int64, unitPrice decimal.Decimal, currency Currency) (int64, error) {
	if !unitPrice.IsPositive() {
		return 0, nil
	}
	tokens := MajorUnits(minor, currency).Div(unitPrice).Floor()
	if tokens.GreaterThan(maxMinorUnits) {
		return 0, errs.ErrAmountOverflow
	}
	return tokens.IntPart(), nil
}

// AccessCheck is the answer to "may this user run this service now"
type AccessCheck struct {
	Service        string `json:"service"`
	Allowed        bool   `json:"allowed"`
	RequiredTokens int64  `json:"required_tokens"`
	Balance        int64  `json:"balance"`
	MissingTokens  int64  `json:"missing_tokens"`
}

// NewAccessCheck compares a service cost with a balance
func NewAccessCheck(service AIService, balance int64) AccessCheck {
	missing := service.Tokens - balance
	if missing < 0 {
		missing = 0
	}
	return AccessCheck{
		Service:        service.Code,
		Allowed:        missing == 0,
		RequiredTokens: service.Tokens,
		Balance:        balance,
		MissingTokens:  missing,
	}
}
