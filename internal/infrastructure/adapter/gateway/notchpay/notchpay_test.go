package notchpay

import (
	"context"
	"encoding/json"
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
		assert.Equal(t, "pk.test", r.Header.Get("Authorization"))
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return New(config.ProviderConfig{BaseURL: server.URL, APIKey: "pk.test", SecretKey: "hash", Timeout: time.Second}, logger.NewNoopLogger())
}

func TestProvider_Initiate(t *testing.T) {
	t.Run("returns the authorization url", func(t *testing.T) {
		// Arrange
		p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/payments/initialize", r.URL.Path)
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, float64(12.5), body["amount"])
			assert.Equal(t, "EUR", body["currency"])
			_, _ = w.Write([]byte(`{"status":"Accepted","code":201,"transaction":{"reference":"trx.abc","trxref":"JL1","status":"pending"},"authorization_url":"https://pay.notchpay.co/trx.abc"}`))
		})

		// Act
		checkout, err := p.Initiate(context.Background(), gateway.InitiateRequest{Reference: "JL1", Amount: 1250, Currency: entity.CurrencyEUR})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "trx.abc", checkout.ProviderReference)
		assert.Equal(t, "https://pay.notchpay.co/trx.abc", checkout.PaymentURL)
	})

	t.Run("missing authorization url", func(t *testing.T) {
		p := newProvider(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"transaction":{"reference":"trx.abc"}}`))
		})

		_, err := p.Initiate(context.Background(), gateway.InitiateRequest{Reference: "JL1", Amount: 100, Currency: entity.CurrencyXAF})

		assert.ErrorIs(t, err, errs.ErrProviderFailure)
	})
}

func TestProvider_Status(t *testing.T) {
	// Arrange
	p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments/trx.abc", r.URL.Path)
		_, _ = w.Write([]byte(`{"transaction":{"reference":"trx.abc","trxref":"JL1","status":"canceled","amount":5000,"currency":"XAF"}}`))
	})

	// Act
	status, err := p.Status(context.Background(), "trx.abc")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, entity.StatusFailed, status.Status)
	assert.Equal(t, "JL1", status.Reference)
	assert.Equal(t, int64(5000), status.Amount)
	assert.NotEmpty(t, status.Reason)
}

func TestProvider_ParseNotification(t *testing.T) {
	body := []byte(`{"id":"evt_9","event":"payment.complete","data":{"reference":"trx.abc","trxref":"JL1","status":"complete","amount":5000,"currency":"XAF"}}`)

	t.Run("valid signature", func(t *testing.T) {
		// Arrange
		p := newProvider(t, func(http.ResponseWriter, *http.Request) {})
		header := http.Header{}
		header.Set(SignatureHeader, httpclient.Sign("hash", body))

		// Act
		n, err := p.ParseNotification(context.Background(), gateway.Callback{Header: header, Body: body})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, entity.StatusSuccess, n.Status)
		assert.Equal(t, "evt_9", n.EventKey)
		assert.Equal(t, "JL1", n.Reference)
		assert.Equal(t, "trx.abc", n.ProviderReference)
	})

	t.Run("invalid signature", func(t *testing.T) {
		p := newProvider(t, func(http.ResponseWriter, *http.Request) {})
		header := http.Header{}
		header.Set(SignatureHeader, "deadbeef")

		_, err := p.ParseNotification(context.Background(), gateway.Callback{Header: header, Body: body})

		assert.ErrorIs(t, err, errs.ErrInvalidSignature)
	})
}

func TestMapStatus(t *testing.T) {
	tests := map[string]entity.TransactionStatus{
		"complete":   entity.StatusSuccess,
		"failed":     entity.StatusFailed,
		"canceled":   entity.StatusFailed,
		"expired":    entity.StatusExpired,
		"pending":    entity.StatusPending,
		"processing": entity.StatusPending,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, MapStatus(in))
		})
	}
}
