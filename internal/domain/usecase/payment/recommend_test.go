package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
	"github.com/guidy-app/joblight/internal/domain/port/gateway"
	"github.com/guidy-app/joblight/internal/domain/port/usecase"
)

func TestIsCameroon(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		country string
		want    bool
	}{
		{"country code", "", "CM", true},
		{"dialing prefix as country", "", "237", true},
		{"international number", "+237 670 00 00 00", "", true},
		{"local mobile number", "670000000", "", true},
		{"local number not starting with 6", "270000000", "", false},
		{"senegal number", "+221 77 000 00 00", "SN", false},
		{"nothing given", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isCameroon(tt.phone, tt.country))
		})
	}
}

func TestService_RecommendProvider(t *testing.T) {
	ctx := context.Background()

	all := func(t *testing.T) []gateway.Provider {
		return []gateway.Provider{
			newHosted(t, entity.ProviderCinetPay, entity.CurrencyXOF, entity.CurrencyXAF, entity.CurrencyCDF, entity.CurrencyGNF, entity.CurrencyUSD),
			newFull(t, entity.ProviderFapshi, entity.CurrencyXAF),
			newMobile(t, entity.ProviderPluto, entity.CurrencyXAF, entity.CurrencyXOF),
			newHosted(t, entity.ProviderNotchPay, entity.CurrencyXAF, entity.CurrencyXOF, entity.CurrencyEUR, entity.CurrencyUSD),
		}
	}

	tests := []struct {
		name      string
		providers func(t *testing.T) []gateway.Provider
		input     usecase.RecommendInput
		want      entity.ProviderName
		wantErr   error
	}{
		{
			name:      "direct mobile prefers fapshi",
			providers: all,
			input:     usecase.RecommendInput{Currency: "XAF", Method: MethodDirectMobile},
			want:      entity.ProviderFapshi,
		},
		{
			name: "direct mobile falls back to pluto",
			providers: func(t *testing.T) []gateway.Provider {
				return []gateway.Provider{
					newHosted(t, entity.ProviderCinetPay, entity.CurrencyXAF),
					newMobile(t, entity.ProviderPluto, entity.CurrencyXAF),
				}
			},
			input: usecase.RecommendInput{Currency: "XAF", Method: MethodDirectMobile},
			want:  entity.ProviderPluto,
		},
		{
			name: "direct mobile never picks a hosted-only provider",
			providers: func(t *testing.T) []gateway.Provider {
				return []gateway.Provider{newHosted(t, entity.ProviderCinetPay, entity.CurrencyXAF)}
			},
			input:   usecase.RecommendInput{Currency: "XAF", Method: MethodDirectMobile},
			wantErr: errs.ErrProviderNotFound,
		},
		{
			name:      "xaf from a cameroonian phone goes to fapshi",
			providers: all,
			input:     usecase.RecommendInput{Currency: "XAF", Phone: "+237670000000"},
			want:      entity.ProviderFapshi,
		},
		{
			name:      "xaf without cameroon goes to cinetpay",
			providers: all,
			input:     usecase.RecommendInput{Currency: "XAF", Country: "GA"},
			want:      entity.ProviderCinetPay,
		},
		{
			name:      "xof goes to cinetpay",
			providers: all,
			input:     usecase.RecommendInput{Currency: "XOF"},
			want:      entity.ProviderCinetPay,
		},
		{
			name:      "eur goes to notchpay",
			providers: all,
			input:     usecase.RecommendInput{Currency: "EUR"},
			want:      entity.ProviderNotchPay,
		},
		{
			name: "disabled cinetpay is skipped",
			providers: func(t *testing.T) []gateway.Provider {
				return []gateway.Provider{
					newHosted(t, entity.ProviderNotchPay, entity.CurrencyXOF),
				}
			},
			input: usecase.RecommendInput{Currency: "XOF"},
			want:  entity.ProviderNotchPay,
		},
		{
			name:      "empty currency uses the default",
			providers: all,
			input:     usecase.RecommendInput{Phone: "670000000"},
			want:      entity.ProviderFapshi,
		},
		{
			name:      "unknown currency is rejected",
			providers: all,
			input:     usecase.RecommendInput{Currency: "BTC"},
			wantErr:   errs.ErrUnsupportedCurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			f := newFixture(t)
			svc := f.service(tt.providers(t)...)

			// Act
			rec, err := svc.RecommendProvider(ctx, tt.input)

			// Assert
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, rec.Provider)
			assert.NotEmpty(t, rec.Reason)
		})
	}
}
