package fapshi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/guidy-app/joblight/internal/domain/entity"
	"github.com/guidy-app/joblight/internal/domain/port/gateway"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/logger"
	"github.com/guidy-app/joblight/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProvider(t *testing.T, handler http.HandlerFunc) *Provider {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "user", r.Header.Get("apiuser"))
		assert.Equal(t, "key", r.Header.Get("apikey"))
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return New(config.ProviderConfig{BaseURL: server.URL, APIUser: "user", APIKey: "key", Timeout: time.Second}, logger.NewNoopLogger())
}

func TestProvider_Initiate(t *testing.T) {
	// Arrange
	p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/initiate-pay", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(2500), body["amount"])
		assert.Equal(t, "JL9", body["externalId"])
		assert.Equal(t, "42", body["userId"])
		assert.Equal(t, "https://app/return", body["redirectUrl"])
		_, _ = w.Write([]byte(`{"message":"Request successful","link":"https://checkout.fapshi.com/link/1","transId":"FX1"}`))
	})

	// Act
	checkout, err := p.Initiate(context.Background(), gateway.InitiateRequest{
		Reference: "JL9",
		UserID:    42,
		Amount:    2500,
		Currency:  entity.CurrencyXAF,
		ReturnURL: "https://app/return",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "FX1", checkout.ProviderReference)
	assert.Equal(t, "https://checkout.fapshi.com/link/1", checkout.PaymentURL)
}

func TestProvider_ChargeMobile(t *testing.T) {
	// Arrange
	p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/direct-pay", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "670000000", body["phone"])
		_, _ = w.Write([]byte(`{"message":"Accepted","transId":"FX2"}`))
	})

	// Act
	checkout, err := p.ChargeMobile(context.Background(), gateway.InitiateRequest{Reference: "JL1", Amount: 100, Phone: "670000000"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "FX2", checkout.ProviderReference)
	assert.Empty(t, checkout.PaymentURL)
}

func TestProvider_StatusAndExpire(t *testing.T) {
	// Arrange
	p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/payment-status/FX1":
			_, _ = w.Write([]byte(`{"transId":"FX1","status":"SUCCESSFUL","amount":2500,"externalId":"JL9","medium":"mobile money"}`))
		case "/expire-pay":
			_, _ = w.Write([]byte(`{"transId":"FX1","status":"EXPIRED","amount":2500,"externalId":"JL9"}`))
		default:
			http.NotFound(w, r)
		}
	})

	// Act
	status, err := p.Status(context.Background(), "FX1")
	require.NoError(t, err)
	expired, expireErr := p.Expire(context.Background(), "FX1")

	// Assert
	require.NoError(t, expireErr)
	assert.Equal(t, entity.StatusSuccess, status.Status)
	assert.Equal(t, "JL9", status.Reference)
	assert.Equal(t, int64(2500), status.Amount)
	assert.Equal(t, entity.StatusExpired, expired.Status)
}

func TestProvider_BalanceAndPayout(t *testing.T) {
	// Arrange
	p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/balance":
			_, _ = w.Write([]byte(`{"service":"JobLight","balance":125000,"currency":"XAF"}`))
		case "/payout":
			_, _ = w.Write([]byte(`{"message":"Payout sent","transId":"PO1"}`))
		}
	})

	// Act
	balance, err := p.Balance(context.Background())
	require.NoError(t, err)
	payout, payoutErr := p.Payout(context.Background(), gateway.PayoutRequest{Reference: "JLP1", Amount: 1000, Phone: "690000000"})

	// Assert
	require.NoError(t, payoutErr)
	assert.Equal(t, int64(125000), balance.Amount)
	assert.Equal(t, entity.CurrencyXAF, balance.Currency)
	assert.Equal(t, "PO1", payout.ProviderReference)
	assert.Equal(t, entity.StatusPending, payout.Status)
}

func TestProvider_Search(t *testing.T) {
	// Arrange
	p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "successful", r.URL.Query().Get("status"))
		assert.Empty(t, r.URL.Query().Get("bogus"))
		_, _ = w.Write([]byte(`[{"transId":"FX1","status":"SUCCESSFUL","amount":500,"payerName":"Amina","userId":"7"}]`))
	})

	// Act
	txs, err := p.Search(context.Background(), map[string]string{"status": "successful", "bogus": "1"})

	// Assert
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "FX1", txs[0].ProviderReference)
	assert.Equal(t, "Amina", txs[0].Name)
	assert.Equal(t, int64(500), txs[0].Amount)
}

func TestProvider_ParseNotification(t *testing.T) {
	t.Run("re-fetches the status of the webhook transId", func(t *testing.T) {
		// Arrange
		p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/payment-status/FX1", r.URL.Path)
			_, _ = w.Write([]byte(`{"transId":"FX1","status":"FAILED","amount":2500,"externalId":"JL9"}`))
		})

		// Act
		n, err := p.ParseNotification(context.Background(), gateway.Callback{Body: []byte(`{"transId":"FX1","status":"SUCCESSFUL"}`)})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, entity.StatusFailed, n.Status, "the API answer wins over the webhook body")
		assert.Equal(t, "JL9", n.Reference)
		assert.Equal(t, "FX1:failed", n.EventKey)
	})

	t.Run("missing transId", func(t *testing.T) {
		p := newProvider(t, func(http.ResponseWriter, *http.Request) {})

		_, err := p.ParseNotification(context.Background(), gateway.Callback{Body: []byte(`{}`)})

		assert.Error(t, err)
	})
}

func TestMapStatus(t *testing.T) {
	tests := map[string]entity.TransactionStatus{
		"SUCCESSFUL": entity.StatusSuccess,
		"failed":     entity.StatusFailed,
		"EXPIRED":    entity.StatusExpired,
		"CREATED":    entity.StatusPending,
		"PENDING":    entity.StatusPending,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, MapStatus(in))
		})
	}
}
