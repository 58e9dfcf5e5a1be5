package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
	"github.com/guidy-app/joblight/internal/domain/port/usecase"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/api/dto"
	mockusecase "github.com/guidy-app/joblight/mocks/port/usecase"
)

func TestAIHandler_CheckAccess(t *testing.T) {
	t.Run("should report missing tokens", func(t *testing.T) {
		// Arrange
		ai := mockusecase.NewMockAIUseCase(t)
		h := NewAIHandler(ai, noopLogger)
		router := newRouter(5)
		router.POST("/check-access", h.CheckAccess)

		ai.EXPECT().CheckAccess(mock.Anything, uint64(5), "cv_review").Return(&entity.AccessCheck{
			Service:        "cv_review",
			Allowed:        false,
			RequiredTokens: 10,
			Balance:        4,
			MissingTokens:  6,
		}, nil).Once()

		// Act
		w := perform(router, http.MethodPost, "/check-access", `{"service":"cv_review"}`)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		var check entity.AccessCheck
		decodeData(t, w, &check)
		assert.False(t, check.Allowed)
		assert.Equal(t, int64(6), check.MissingTokens)
	})
}

func TestAIHandler_UseService(t *testing.T) {
	t.Run("should answer 402 when the wallet cannot cover the service", func(t *testing.T) {
		// Arrange
		ai := mockusecase.NewMockAIUseCase(t)
		h := NewAIHandler(ai, noopLogger)
		router := newRouter(5)
		router.POST("/use-service", h.UseService)

		ai.EXPECT().UseService(mock.Anything, usecase.UseServiceInput{UserID: 5, Service: "cv_review", RequestID: "req-1"}).
			Return(nil, errs.ErrInsufficientTokens).Once()

		// Act
		w := perform(router, http.MethodPost, "/use-service", `{"service":"cv_review","request_id":"req-1"}`)

		// Assert
		assert.Equal(t, http.StatusPaymentRequired, w.Code)
	})

	t.Run("should require a request id", func(t *testing.T) {
		// Arrange
		ai := mockusecase.NewMockAIUseCase(t)
		h := NewAIHandler(ai, noopLogger)
		router := newRouter(5)
		router.POST("/use-service", h.UseService)

		// Act
		w := perform(router, http.MethodPost, "/use-service", `{"service":"cv_review"}`)

		// Assert
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, decode(t, w).Errors, "request_id")
	})
}

func TestAIHandler_InitiateTokens(t *testing.T) {
	t.Run("should buy a pack for the current user", func(t *testing.T) {
		// Arrange
		ai := mockusecase.NewMockAIUseCase(t)
		h := NewAIHandler(ai, noopLogger)
		router := newRouter(5)
		router.POST("/initiate-tokens", h.InitiateTokens)

		ai.EXPECT().InitiateTokenPurchase(mock.Anything, mock.MatchedBy(func(in usecase.AIPaymentInput) bool {
			return in.UserID == 5 && in.Pack == "starter" && in.Phone == "677123456"
		})).Return(&usecase.PaymentResult{Reference: "JLtok", Provider: entity.ProviderFapshi, Status: entity.StatusPending}, nil).Once()

		// Act
		w := perform(router, http.MethodPost, "/initiate-tokens", `{"pack":"starter","phone":"677123456"}`)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		var result usecase.PaymentResult
		decodeData(t, w, &result)
		assert.Equal(t, "JLtok", result.Reference)
	})
}

func TestAIHandler_History(t *testing.T) {
	t.Run("should accept an empty body and use the default limit", func(t *testing.T) {
		// Arrange
		ai := mockusecase.NewMockAIUseCase(t)
		h := NewAIHandler(ai, noopLogger)
		router := newRouter(5)
		router.POST("/history", h.History)

		ai.EXPECT().History(mock.Anything, uint64(5), 0).Return([]*entity.WalletEntry{{
			Kind:         entity.EntryCredit,
			Tokens:       100,
			BalanceAfter: 100,
			Reason:       "payment",
			Reference:    "JLtok",
			CreatedAt:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		}}, nil).Once()

		// Act
		w := perform(router, http.MethodPost, "/history", "")

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		var entries []dto.WalletEntryResponse
		decodeData(t, w, &entries)
		assert.Len(t, entries, 1)
		assert.Equal(t, "credit", entries[0].Kind)
	})
}
