package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
	"github.com/guidy-app/joblight/internal/domain/port/gateway"
	"github.com/guidy-app/joblight/internal/domain/port/usecase"
	mockusecase "github.com/guidy-app/joblight/mocks/port/usecase"
)

func TestWebhookHandler_Provider(t *testing.T) {
	t.Run("should hand the raw JSON body and headers to the payment service", func(t *testing.T) {
		// Arrange
		payments := mockusecase.NewMockPaymentUseCase(t)
		h := NewWebhookHandler(payments, noopLogger)
		router := newRouter(0)
		router.POST("/api/pluto/webhook", h.Provider(entity.ProviderPluto))

		body := `{"id":"evt_1","type":"payment.succeeded"}`
		payments.EXPECT().HandleNotification(mock.Anything, "pluto", mock.MatchedBy(func(cb gateway.Callback) bool {
			return cb.Method == http.MethodPost && string(cb.Body) == body
		})).Return(&usecase.NotificationResult{
			Provider:  entity.ProviderPluto,
			Reference: "JLref",
			Status:    entity.StatusSuccess,
			Known:     true,
		}, nil).Once()

		// Act
		w := perform(router, http.MethodPost, "/api/pluto/webhook", body)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decode(t, w).Success)
	})

	t.Run("should parse a form encoded CinetPay notification", func(t *testing.T) {
		// Arrange
		payments := mockusecase.NewMockPaymentUseCase(t)
		h := NewWebhookHandler(payments, noopLogger)
		router := newRouter(0)
		router.POST("/api/cinetpay/notify", h.Provider(entity.ProviderCinetPay))

		payments.EXPECT().HandleNotification(mock.Anything, "cinetpay", mock.MatchedBy(func(cb gateway.Callback) bool {
			return cb.Form.Get("cpm_trans_id") == "JLref" && cb.Form.Get("cpm_site_id") == "105"
		})).Return(&usecase.NotificationResult{Provider: entity.ProviderCinetPay, Reference: "JLref", Known: true}, nil).Once()

		// Act
		w := perform(router, http.MethodPost, "/api/cinetpay/notify",
			"cpm_trans_id=JLref&cpm_site_id=105", "application/x-www-form-urlencoded")

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("should answer 401 on an invalid signature", func(t *testing.T) {
		// Arrange
		payments := mockusecase.NewMockPaymentUseCase(t)
		h := NewWebhookHandler(payments, noopLogger)
		router := newRouter(0)
		router.POST("/api/notchpay/webhook", h.Provider(entity.ProviderNotchPay))

		payments.EXPECT().HandleNotification(mock.Anything, "notchpay", mock.Anything).
			Return(nil, errs.ErrInvalidSignature).Once()

		// Act
		w := perform(router, http.MethodPost, "/api/notchpay/webhook", `{}`)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, errs.CodeInvalidSignature, decode(t, w).Code)
	})

	t.Run("should answer 200 with success false for an unknown transaction", func(t *testing.T) {
		// Arrange
		payments := mockusecase.NewMockPaymentUseCase(t)
		h := NewWebhookHandler(payments, noopLogger)
		router := newRouter(0)
		router.POST("/payments/notify", h.Notify)

		payments.EXPECT().HandleNotification(mock.Anything, "fapshi", mock.Anything).
			Return(&usecase.NotificationResult{Provider: entity.ProviderFapshi, Known: false}, nil).Once()

		// Act
		w := perform(router, http.MethodPost, "/payments/notify?provider=fapshi", `{"transId":"x"}`)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, decode(t, w).Success)
	})
}

func TestWebhookHandler_CinetPayCallback(t *testing.T) {
	t.Run("should answer the availability ping without touching payments", func(t *testing.T) {
		// Arrange
		payments := mockusecase.NewMockPaymentUseCase(t)
		h := NewWebhookHandler(payments, noopLogger)
		router := newRouter(0)
		router.Any("/api/cinetpay/callback", h.CinetPayCallback)

		// Act
		w := perform(router, http.MethodGet, "/api/cinetpay/callback", "")

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decode(t, w).Success)
	})
}

func TestWebhookHandler_Return(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		path        string
		body        string
		contentType string
	}{
		{name: "reference query", method: http.MethodGet, path: "/return?reference=JLref"},
		{name: "NotchPay trxref", method: http.MethodGet, path: "/return?trxref=JLref"},
		{name: "CinetPay form post", method: http.MethodPost, path: "/return", body: "transaction_id=JLref", contentType: "application/x-www-form-urlencoded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			payments := mockusecase.NewMockPaymentUseCase(t)
			h := NewWebhookHandler(payments, noopLogger)
			router := newRouter(0)
			router.Any("/return", h.Return)

			payments.EXPECT().ReturnPage(mock.Anything, "JLref").
				Return("https://app.example/payment/result?reference=JLref&status=success", nil).Once()

			// Act
			var contentType []string
			if tt.contentType != "" {
				contentType = append(contentType, tt.contentType)
			}
			w := perform(router, tt.method, tt.path, tt.body, contentType...)

			// Assert
			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, "https://app.example/payment/result?reference=JLref&status=success", w.Header().Get("Location"))
		})
	}
}
