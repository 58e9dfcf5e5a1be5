package entity

import (
	"math"
	"testing"
	"time"

	errs "github.com/guidy-app/joblight/internal/domain/error"
	coremocks "github.com/guidy-app/joblight/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWallet(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid wallet creation", func(t *testing.T) {
		w, err := NewWallet(1, mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), w.UserID)
		assert.Equal(t, int64(0), w.Tokens())
		assert.Equal(t, fixedTime, w.CreatedAt)
	})

	t.Run("Zero userID", func(t *testing.T) {
		w, err := NewWallet(0, mockTime)

		assert.Nil(t, w)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestWallet_CreditDebit(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	newWallet := func(tokens int64) *Wallet {
		w := &Wallet{UserID: 1}
		w.SetTokens(tokens, mockTime)
		return w
	}

	t.Run("Credit adds tokens", func(t *testing.T) {
		w := newWallet(10)

		require.NoError(t, w.Credit(40, mockTime))
		assert.Equal(t, int64(50), w.Tokens())
	})

	t.Run("Credit overflow", func(t *testing.T) {
		w := newWallet(math.MaxInt64 - 1)

		err := w.Credit(2, mockTime)

		assert.ErrorIs(t, err, errs.ErrAmountOverflow)
		assert.Equal(t, int64(math.MaxInt64-1), w.Tokens())
	})

	t.Run("Debit exact balance", func(t *testing.T) {
		w := newWallet(40)

		require.NoError(t, w.Debit(40, mockTime))
		assert.Equal(t, int64(0), w.Tokens())
	})

	t.Run("Debit beyond balance", func(t *testing.T) {
		w := newWallet(39)

		err := w.Debit(40, mockTime)

		var insufficient *errs.InsufficientTokensError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, int64(40), insufficient.Required)
		assert.Equal(t, int64(39), insufficient.Available)
		assert.ErrorIs(t, err, errs.ErrInsufficientTokens)
		assert.Equal(t, int64(39), w.Tokens())
	})

	testCases := []struct {
		name   string
		tokens int64
	}{
		{"Zero tokens", 0},
		{"Negative tokens", -5},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := newWallet(10)

			assert.ErrorIs(t, w.Credit(tc.tokens, mockTime), errs.ErrValidation)
			assert.ErrorIs(t, w.Debit(tc.tokens, mockTime), errs.ErrValidation)
			assert.Equal(t, int64(10), w.Tokens())
		})
	}

	t.Run("CanDebit", func(t *testing.T) {
		w := newWallet(5)
		assert.True(t, w.CanDebit(5))
		assert.False(t, w.CanDebit(6))
		assert.False(t, w.CanDebit(-1))
	})
}
