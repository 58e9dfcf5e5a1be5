package pluto

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
	"github.com/guidy-app/joblight/internal/domain/port/gateway"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/gateway/httpclient"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/logger"
	"github.com/guidy-app/joblight/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProvider(t *testing.T, handler http.HandlerFunc) *Provider {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer pk_test", r.Header.Get("Authorization"))
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return New(config.ProviderConfig{BaseURL: server.URL, APIKey: "pk_test", SecretKey: "whsec", Timeout: time.Second}, logger.NewNoopLogger())
}

func TestProvider_Initiate(t *testing.T) {
	// Arrange
	p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"pay_1","status":"pending","checkout_url":"https://pay.pluto/c/pay_1"}`))
	})

	// Act
	checkout, err := p.Initiate(context.Background(), gateway.InitiateRequest{Reference: "JL1", Amount: 1000, Currency: entity.CurrencyXAF})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "pay_1", checkout.ProviderReference)
	assert.Equal(t, "https://pay.pluto/c/pay_1", checkout.PaymentURL)
}

func TestProvider_ErrorBody(t *testing.T) {
	// Arrange
	p := newProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":{"code":"invalid_phone","message":"phone is not mobile money"}}`))
	})

	// Act
	_, err := p.ChargeMobile(context.Background(), gateway.InitiateRequest{Reference: "JL1", Amount: 1000, Currency: entity.CurrencyXAF, Phone: "1"})

	// Assert
	var pe *errs.ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "invalid_phone", pe.Code)
	assert.False(t, pe.Transient)
}

func TestProvider_Balance(t *testing.T) {
	p := newProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"available":"98000","currency":"xaf"}`))
	})

	balance, err := p.Balance(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(98000), balance.Amount)
	assert.Equal(t, entity.CurrencyXAF, balance.Currency)
}

func TestProvider_ParseNotification(t *testing.T) {
	body := []byte(`{"id":"evt_1","type":"payment.succeeded","data":{"id":"pay_1","reference":"JL1","status":"succeeded","amount":1000,"currency":"XAF"}}`)

	tests := []struct {
		name      string
		signature string
		wantErr   error
	}{
		{"valid signature", httpclient.Sign("whsec", body), nil},
		{"tampered signature", httpclient.Sign("other", body), errs.ErrInvalidSignature},
		{"missing signature", "", errs.ErrInvalidSignature},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			p := newProvider(t, func(http.ResponseWriter, *http.Request) {})
			header := http.Header{}
			header.Set(SignatureHeader, tt.signature)

			// Act
			n, err := p.ParseNotification(context.Background(), gateway.Callback{Header: header, Body: body})

			// Assert
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "evt_1", n.EventKey)
			assert.Equal(t, "JL1", n.Reference)
			assert.Equal(t, "pay_1", n.ProviderReference)
			assert.Equal(t, entity.StatusSuccess, n.Status)
			assert.Equal(t, int64(1000), n.Amount)
		})
	}
}

func TestMapStatus(t *testing.T) {
	assert.Equal(t, entity.StatusSuccess, MapStatus("Succeeded"))
	assert.Equal(t, entity.StatusFailed, MapStatus("cancelled"))
	assert.Equal(t, entity.StatusExpired, MapStatus("expired"))
	assert.Equal(t, entity.StatusPending, MapStatus("processing"))
}
