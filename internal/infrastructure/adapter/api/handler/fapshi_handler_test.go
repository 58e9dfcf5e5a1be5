package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
	"github.com/guidy-app/joblight/internal/domain/port/gateway"
	"github.com/guidy-app/joblight/internal/domain/port/usecase"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/api/middleware"
	mockusecase "github.com/guidy-app/joblight/mocks/port/usecase"
)

func TestFapshiHandler_Payout(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{name: "amount below minimum", body: `{"amount":99,"phone":"677123456"}`, wantField: "amount"},
		{name: "phone with country code", body: `{"amount":500,"phone":"237677123456"}`, wantField: "phone"},
		{name: "landline number", body: `{"amount":500,"phone":"222123456"}`, wantField: "phone"},
	}

	for _, tt := range tests {
		t.Run("should reject "+tt.name+" without calling Fapshi", func(t *testing.T) {
			// Arrange
			fapshi := mockusecase.NewMockFapshiUseCase(t)
			h := NewFapshiHandler(fapshi, noopLogger)
			router := newRouter(9)
			router.POST("/api/fapshi/payout", h.Payout)

			// Act
			w := perform(router, http.MethodPost, "/api/fapshi/payout", tt.body)

			// Assert
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Contains(t, decode(t, w).Errors, tt.wantField)
		})
	}

	t.Run("should send a valid payout", func(t *testing.T) {
		// Arrange
		fapshi := mockusecase.NewMockFapshiUseCase(t)
		h := NewFapshiHandler(fapshi, noopLogger)
		router := newRouter(9)
		router.POST("/api/fapshi/payout", h.Payout)

		fapshi.EXPECT().Payout(mock.Anything, usecase.PayoutInput{
			UserID: 9,
			Amount: 500,
			Phone:  "677123456",
			Name:   "Paul Essomba",
		}).Return(&gateway.PayoutResult{ProviderReference: "fp_1", Status: entity.StatusSuccess, Message: "ok"}, nil).Once()

		// Act
		w := perform(router, http.MethodPost, "/api/fapshi/payout", `{"amount":500,"phone":"677123456","name":"Paul Essomba"}`)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]any
		decodeData(t, w, &resp)
		assert.Equal(t, "fp_1", resp["trans_id"])
	})
}

func TestFapshiHandler_Search(t *testing.T) {
	t.Run("should forward every query parameter as a filter", func(t *testing.T) {
		// Arrange
		fapshi := mockusecase.NewMockFapshiUseCase(t)
		h := NewFapshiHandler(fapshi, noopLogger)
		router := newRouter(9)
		router.GET("/api/fapshi/transactions/search", h.Search)

		fapshi.EXPECT().SearchTransactions(mock.Anything, map[string]string{"status": "successful", "limit": "10"}).
			Return([]gateway.ProviderTransaction{{ProviderReference: "fp_1", Status: "SUCCESSFUL", Amount: 500}}, nil).Once()

		// Act
		w := perform(router, http.MethodGet, "/api/fapshi/transactions/search?status=successful&limit=10", "")

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		var txs []gateway.ProviderTransaction
		decodeData(t, w, &txs)
		assert.Len(t, txs, 1)
	})
}

func TestFapshiHandler_UserTransactions(t *testing.T) {
	t.Run("should list the caller's own transactions", func(t *testing.T) {
		// Arrange
		fapshi := mockusecase.NewMockFapshiUseCase(t)
		h := NewFapshiHandler(fapshi, noopLogger)
		router := newRouter(9)
		router.GET("/api/fapshi/transactions/user/:userId", h.UserTransactions)

		fapshi.EXPECT().GetUserTransactions(mock.Anything, "9").
			Return([]gateway.ProviderTransaction{{ProviderReference: "fp_9"}}, nil).Once()

		// Act
		w := perform(router, http.MethodGet, "/api/fapshi/transactions/user/9", "")

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("should forbid another user's transactions", func(t *testing.T) {
		// Arrange
		fapshi := mockusecase.NewMockFapshiUseCase(t)
		h := NewFapshiHandler(fapshi, noopLogger)
		router := newRouter(9)
		router.GET("/api/fapshi/transactions/user/:userId", h.UserTransactions)

		// Act
		w := perform(router, http.MethodGet, "/api/fapshi/transactions/user/10", "")

		// Assert
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, errs.CodeForbidden, decode(t, w).Code)
	})

	t.Run("should let an operator list any user's transactions", func(t *testing.T) {
		// Arrange
		fapshi := mockusecase.NewMockFapshiUseCase(t)
		h := NewFapshiHandler(fapshi, noopLogger)
		router := newRouter(9)
		router.Use(func(c *gin.Context) {
			middleware.SetRole(c, middleware.RoleOperator)
			c.Next()
		})
		router.GET("/api/fapshi/transactions/user/:userId", h.UserTransactions)

		fapshi.EXPECT().GetUserTransactions(mock.Anything, "10").Return(nil, nil).Once()

		// Act
		w := perform(router, http.MethodGet, "/api/fapshi/transactions/user/10", "")

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestFapshiHandler_Expire(t *testing.T) {
	t.Run("should expire the payment named in the path", func(t *testing.T) {
		// Arrange
		fapshi := mockusecase.NewMockFapshiUseCase(t)
		h := NewFapshiHandler(fapshi, noopLogger)
		router := newRouter(9)
		router.POST("/api/fapshi/expire/:transactionId", h.Expire)

		fapshi.EXPECT().ExpirePayment(mock.Anything, "fp_1").
			Return(&gateway.StatusResult{ProviderReference: "fp_1", Reference: "JLref", Status: entity.StatusExpired}, nil).Once()

		// Act
		w := perform(router, http.MethodPost, "/api/fapshi/expire/fp_1", "")

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]any
		decodeData(t, w, &resp)
		assert.Equal(t, "expired", resp["status"])
	})
}
