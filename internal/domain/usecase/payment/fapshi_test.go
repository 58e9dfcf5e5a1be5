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
	"github.com/guidy-app/joblight/internal/domain/port/usecase"
)

func TestValidatePayout(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.PayoutInput
		wantErr bool
	}{
		{"valid", usecase.PayoutInput{Amount: 100, Phone: "670000000"}, false},
		{"amount below minimum", usecase.PayoutInput{Amount: 99, Phone: "670000000"}, true},
		{"phone not starting with 6", usecase.PayoutInput{Amount: 500, Phone: "770000000"}, true},
		{"phone too short", usecase.PayoutInput{Amount: 500, Phone: "6700000"}, true},
		{"phone with country code", usecase.PayoutInput{Amount: 500, Phone: "237670000000"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePayout(tt.input)
			if tt.wantErr {
				assert.True(t, errs.IsValidationError(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFapshiService_Payout(t *testing.T) {
	ctx := context.Background()

	t.Run("should send a valid payout", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		fapshi := newFull(t, entity.ProviderFapshi, entity.CurrencyXAF)
		svc := NewFapshiService(f.service(fapshi))

		f.ids.EXPECT().NewReference().Return("JLout", nil).Once()
		fapshi.MockPayoutSender.EXPECT().Payout(mock.Anything, gateway.PayoutRequest{
			Reference: "JLout",
			Amount:    5000,
			Phone:     "670000000",
			Name:      "Ada",
			UserID:    "42",
		}).Return(&gateway.PayoutResult{ProviderReference: "po-1", Status: entity.StatusPending}, nil).Once()

		// Act
		result, err := svc.Payout(ctx, usecase.PayoutInput{UserID: 42, Amount: 5000, Phone: "670000000", Name: "Ada"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "po-1", result.ProviderReference)
	})

	t.Run("should reject invalid payouts before calling fapshi", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		fapshi := newFull(t, entity.ProviderFapshi, entity.CurrencyXAF)
		svc := NewFapshiService(f.service(fapshi))

		// Act
		_, err := svc.Payout(ctx, usecase.PayoutInput{Amount: 50, Phone: "670000000"})

		// Assert
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("should report fapshi as not found when disabled", func(t *testing.T) {
		f := newFixture(t)
		svc := NewFapshiService(f.service())

		_, err := svc.Payout(ctx, usecase.PayoutInput{Amount: 500, Phone: "670000000"})

		assert.ErrorIs(t, err, errs.ErrProviderNotFound)
	})
}

func TestFapshiService_SearchTransactions(t *testing.T) {
	// Arrange
	f := newFixture(t)
	fapshi := newFull(t, entity.ProviderFapshi, entity.CurrencyXAF)
	svc := NewFapshiService(f.service(fapshi))

	filters := map[string]string{"status": "successful", "limit": "10"}
	fapshi.MockTransactionSearcher.EXPECT().Search(mock.Anything, filters).
		Return([]gateway.ProviderTransaction{{ProviderReference: "a"}, {ProviderReference: "b"}}, nil).Once()

	// Act
	txns, err := svc.SearchTransactions(context.Background(), filters)

	// Assert
	require.NoError(t, err)
	assert.Len(t, txns, 2)
}

func TestFapshiService_ExpirePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("should expire the local transaction too", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.expectUnitOfWork()
		fapshi := newFull(t, entity.ProviderFapshi, entity.CurrencyXAF)
		svc := NewFapshiService(f.service(fapshi))

		txn := pendingTxn("JLx1", entity.PurposeGeneric, 1000)
		txn.ProviderReference = "fap-x1"

		fapshi.MockExpirer.EXPECT().Expire(mock.Anything, "fap-x1").
			Return(&gateway.StatusResult{ProviderReference: "fap-x1", Status: entity.StatusExpired}, nil).Once()
		f.txRepo.EXPECT().GetByProviderReference(mock.Anything, entity.ProviderFapshi, "fap-x1").Return(txn, nil).Once()
		f.txRepo.EXPECT().GetByReferenceForUpdate(mock.Anything, "JLx1").Return(txn, nil).Once()
		f.txRepo.EXPECT().Update(mock.Anything, txn).Return(nil).Once()

		// Act
		result, err := svc.ExpirePayment(ctx, "fap-x1")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, entity.StatusExpired, result.Status)
		assert.Equal(t, entity.StatusExpired, txn.Status)
	})

	t.Run("should pass through payments we do not know", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		fapshi := newFull(t, entity.ProviderFapshi, entity.CurrencyXAF)
		svc := NewFapshiService(f.service(fapshi))

		fapshi.MockExpirer.EXPECT().Expire(mock.Anything, "fap-x2").
			Return(&gateway.StatusResult{Status: entity.StatusExpired}, nil).Once()
		f.txRepo.EXPECT().GetByProviderReference(mock.Anything, entity.ProviderFapshi, "fap-x2").
			Return(nil, errs.ErrTransactionNotFound).Once()

		// Act
		_, err := svc.ExpirePayment(ctx, "fap-x2")

		// Assert
		require.NoError(t, err)
	})
}
