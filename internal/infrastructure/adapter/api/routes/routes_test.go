package routes

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guidy-app/joblight/internal/domain/port/gateway"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/api/dto"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/api/handler"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/api/middleware"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/logger"
	mockusecase "github.com/guidy-app/joblight/mocks/port/usecase"
)

const testSecret = "routes-secret"

func init() {
	gin.SetMode(gin.TestMode)
	if err := dto.RegisterValidators(); err != nil {
		panic(err)
	}
}

type testAPI struct {
	router   *gin.Engine
	payments *mockusecase.MockPaymentUseCase
	fapshi   *mockusecase.MockFapshiUseCase
}

func newTestAPI(t *testing.T) *testAPI {
	log := logger.NewNoopLogger()
	api := &testAPI{
		router:   gin.New(),
		payments: mockusecase.NewMockPaymentUseCase(t),
		fapshi:   mockusecase.NewMockFapshiUseCase(t),
	}

	SetupRoutes(api.router, Handlers{
		Payment:   handler.NewPaymentHandler(api.payments, log),
		Webhook:   handler.NewWebhookHandler(api.payments, log),
		Fapshi:    handler.NewFapshiHandler(api.fapshi, log),
		AI:        handler.NewAIHandler(mockusecase.NewMockAIUseCase(t), log),
		Portfolio: handler.NewPortfolioHandler(mockusecase.NewMockPortfolioUseCase(t), mockusecase.NewMockStatsUseCase(t), log),
		Section:   handler.NewSectionHandler(mockusecase.NewMockSectionUseCase(t), log),
		CV:        handler.NewCVHandler(mockusecase.NewMockCVUseCase(t), log),
		Health:    handler.NewHealthHandler(nil),
	}, Options{Auth: middleware.AuthConfig{Secret: testSecret}}, log)
	return api
}

func token(t *testing.T, userID uint64, role string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{
		EmailVerified: true,
		Role:          role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(userID, 10),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func (a *testAPI) call(method, path, body, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+bearer)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func TestSetupRoutes_MerchantOperations(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{name: "payout", method: http.MethodPost, path: "/api/fapshi/payout", body: `{"amount":500,"phone":"677123456"}`},
		{name: "transaction search", method: http.MethodGet, path: "/api/fapshi/transactions/search?status=successful"},
		{name: "expire any payment", method: http.MethodPost, path: "/api/fapshi/expire/fp_1"},
		{name: "merchant balance", method: http.MethodGet, path: "/api/payments/balance/fapshi"},
		{name: "another user's transactions", method: http.MethodGet, path: "/api/fapshi/transactions/user/8"},
	}

	for _, tt := range tests {
		t.Run("should forbid "+tt.name+" to a regular user", func(t *testing.T) {
			// Arrange
			api := newTestAPI(t)

			// Act
			w := api.call(tt.method, tt.path, tt.body, token(t, 7, ""))

			// Assert
			assert.Equal(t, http.StatusForbidden, w.Code)
		})
	}

	t.Run("should let a user list their own transactions", func(t *testing.T) {
		// Arrange
		api := newTestAPI(t)
		api.fapshi.EXPECT().GetUserTransactions(mock.Anything, "7").
			Return([]gateway.ProviderTransaction{{ProviderReference: "fp_7"}}, nil).Once()

		// Act
		w := api.call(http.MethodGet, "/api/fapshi/transactions/user/7", "", token(t, 7, ""))

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("should let an operator send a payout", func(t *testing.T) {
		// Arrange
		api := newTestAPI(t)
		api.fapshi.EXPECT().Payout(mock.Anything, mock.Anything).
			Return(&gateway.PayoutResult{ProviderReference: "fp_2"}, nil).Once()

		// Act
		w := api.call(http.MethodPost, "/api/fapshi/payout", `{"amount":500,"phone":"677123456"}`, token(t, 1, middleware.RoleOperator))

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
