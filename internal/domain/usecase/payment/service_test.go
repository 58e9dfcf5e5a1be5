package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
	"github.com/guidy-app/joblight/internal/domain/port/gateway"
)

func TestService_GetProviders(t *testing.T) {
	// Arrange
	f := newFixture(t)
	svc := f.service(
		newHosted(t, entity.ProviderNotchPay, entity.CurrencyXAF),
		newFull(t, entity.ProviderFapshi, entity.CurrencyXAF),
		newHosted(t, entity.ProviderCinetPay, entity.CurrencyXOF),
	)

	// Act
	infos := svc.GetProviders(context.Background())

	// Assert
	require.Len(t, infos, 3)
	assert.Equal(t, entity.ProviderCinetPay, infos[0].Name)
	assert.Equal(t, entity.ProviderFapshi, infos[1].Name)
	assert.Equal(t, entity.ProviderNotchPay, infos[2].Name)

	assert.Equal(t, []entity.Capability{
		entity.CapabilityInitiate,
		entity.CapabilityStatus,
		entity.CapabilityNotification,
	}, infos[0].Capabilities)
	assert.Len(t, infos[1].Capabilities, 8)
}

func TestService_GetBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("should read the balance of a provider that supports it", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		pluto := newMobile(t, entity.ProviderPluto, entity.CurrencyXAF)
		pluto.MockBalanceReader.EXPECT().Balance(mock.Anything).
			Return(&gateway.Balance{Amount: 125000, Currency: entity.CurrencyXAF}, nil).Once()
		svc := f.service(pluto)

		// Act
		balance, err := svc.GetBalance(ctx, "Pluto")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(125000), balance.Amount)
	})

	t.Run("should reject a provider without balance before calling it", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		svc := f.service(newHosted(t, entity.ProviderCinetPay, entity.CurrencyXOF))

		// Act
		_, err := svc.GetBalance(ctx, "cinetpay")

		// Assert
		assert.ErrorIs(t, err, errs.ErrCapabilityNotSupported)
	})

	t.Run("should report unknown or disabled providers as not found", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		svc := f.service(newHosted(t, entity.ProviderCinetPay, entity.CurrencyXOF))

		// Act
		_, errUnknown := svc.GetBalance(ctx, "paypal")
		_, errDisabled := svc.GetBalance(ctx, "fapshi")

		// Assert
		assert.ErrorIs(t, errUnknown, errs.ErrProviderNotFound)
		assert.ErrorIs(t, errDisabled, errs.ErrProviderNotFound)
	})
}

func TestWithQuery(t *testing.T) {
	tests := []struct {
		name string
		base string
		want string
	}{
		{"plain url", "https://x.test/return", "https://x.test/return?reference=JL1"},
		{"url with query", "https://x.test/return?lang=fr", "https://x.test/return?lang=fr&reference=JL1"},
		{"empty base", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, withQuery(tt.base, map[string][]string{"reference": {"JL1"}}))
		})
	}
}
