package payment

import (
	"context"
	"strings"
	"unicode"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
	"github.com/guidy-app/joblight/internal/domain/port/gateway"
	"github.com/guidy-app/joblight/internal/domain/port/usecase"
)

// MethodDirectMobile asks for a provider able to push a prompt to a phone
const MethodDirectMobile = "direct_mobile"

// cinetPayCurrencies are the currencies CinetPay settles
var cinetPayCurrencies = map[entity.Currency]bool{
	entity.CurrencyXOF: true,
	entity.CurrencyXAF: true,
	entity.CurrencyCDF: true,
	entity.CurrencyGNF: true,
	entity.CurrencyUSD: true,
}

// candidate is a provider with the reason it would be picked
type candidate struct {
	name   entity.ProviderName
	reason string
}

// RecommendProvider picks the provider best suited to a payment among the enabled ones
func (s *Service) RecommendProvider(_ context.Context, in usecase.RecommendInput) (*entity.Recommendation, error) {
	currency, err := s.currency(in.Currency)
	if err != nil {
		return nil, err
	}

	direct := in.Method == MethodDirectMobile
	for _, c := range rankProviders(currency, in.Phone, in.Country, direct) {
		p, ok := s.providers[c.name]
		if !ok {
			continue
		}
		if direct {
			if _, ok := p.(gateway.DirectCharger); !ok {
				continue
			}
		}
		if !info(p).Supports(currency) {
			continue
		}
		return &entity.Recommendation{Provider: c.name, Reason: c.reason}, nil
	}

	return nil, errs.ErrProviderNotFound
}

// rankProviders orders providers by preference for a payment
func rankProviders(currency entity.Currency, phone, country string, direct bool) []candidate {
	if direct {
		return []candidate{
			{entity.ProviderFapshi, "direct mobile money prompt"},
			{entity.ProviderPluto, "direct mobile money prompt"},
		}
	}

	var ranked []candidate
	if currency == entity.CurrencyXAF && isCameroon(phone, country) {
		ranked = append(ranked, candidate{entity.ProviderFapshi, "XAF payment from Cameroon"})
	}
	if cinetPayCurrencies[currency] {
		ranked = append(ranked, candidate{entity.ProviderCinetPay, "CinetPay settles " + string(currency)})
	}
	ranked = append(ranked,
		candidate{entity.ProviderNotchPay, "default provider"},
		candidate{entity.ProviderCinetPay, "fallback provider"},
		candidate{entity.ProviderFapshi, "fallback provider"},
		candidate{entity.ProviderPluto, "fallback provider"},
	)
	return ranked
}

// isCameroon reports whether the payer is in Cameroon, from the country or the phone number
func isCameroon(phone, country string) bool {
	switch strings.ToUpper(strings.TrimSpace(country)) {
	case "CM", "CMR", "237", "CAMEROON", "CAMEROUN":
		return true
	}

	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)

	if len(digits) == 12 && strings.HasPrefix(digits, "237") {
		return true
	}
	return len(digits) == 9 && digits[0] == '6'
}
