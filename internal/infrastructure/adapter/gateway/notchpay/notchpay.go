// Package notchpay adapts the NotchPay payments API.
package notchpay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/domain/port/gateway"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/gateway/httpclient"
	"github.com/guidy-app/joblight/internal/infrastructure/config"
)

// SignatureHeader carries the hex HMAC-SHA256 of the raw webhook body under the hash key
const SignatureHeader = "x-notch-signature"

// Provider is the NotchPay adapter
type Provider struct {
	client    *httpclient.Client
	publicKey string
	hashKey   string
	logger    coreport.Logger
}

// New creates a NotchPay adapter. APIKey is the public key, SecretKey the webhook hash key.
func New(cfg config.ProviderConfig, logger coreport.Logger) *Provider {
	return &Provider{
		client:    httpclient.New(string(entity.ProviderNotchPay), cfg.BaseURL, cfg.Timeout, cfg.Debug, logger),
		publicKey: cfg.APIKey,
		hashKey:   cfg.SecretKey,
		logger:    logger,
	}
}

// Name returns the provider name
func (p *Provider) Name() entity.ProviderName { return entity.ProviderNotchPay }

// DisplayName returns the provider label shown to users
func (p *Provider) DisplayName() string { return "NotchPay" }

// Currencies returns the accepted currencies
func (p *Provider) Currencies() []entity.Currency {
	return []entity.Currency{entity.CurrencyXAF, entity.CurrencyXOF, entity.CurrencyUSD, entity.CurrencyEUR}
}

// transaction is NotchPay's payment object
type transaction struct {
	Reference         string `json:"reference"`
	MerchantReference string `json:"trxref"`
	Status            string `json:"status"`
	Amount            any    `json:"amount"`
	Currency          string `json:"currency"`
}

func errorMessage(body []byte) (string, string) {
	var resp struct {
		Code    any    `json:"code"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &resp) != nil {
		return "", ""
	}
	return httpclient.String(resp.Code), resp.Message
}

func (p *Provider) call(ctx context.Context, op, method, path string, body any, out any) error {
	h := http.Header{}
	h.Set("Authorization", p.publicKey)

	resp, err := p.client.Do(ctx, httpclient.Request{
		Operation: op,
		Method:    method,
		Path:      path,
		Header:    h,
		Body:      body,
	}, errorMessage)
	if err != nil {
		return err
	}
	if err := resp.Decode(out); err != nil {
		return httpclient.DecodeError(string(p.Name()), op, err)
	}
	return nil
}

// Initiate opens a NotchPay checkout
func (p *Provider) Initiate(ctx context.Context, req gateway.InitiateRequest) (*gateway.Checkout, error) {
	body := map[string]any{
		"amount":      httpclient.Major(req.Amount, req.Currency),
		"currency":    string(req.Currency),
		"reference":   req.Reference,
		"description": req.Description,
		"callback":    req.ReturnURL,
	}
	if req.CustomerEmail != "" {
		body["email"] = req.CustomerEmail
	}
	if req.Phone != "" {
		body["phone"] = req.Phone
	}

	var out struct {
		Transaction      transaction `json:"transaction"`
		AuthorizationURL string      `json:"authorization_url"`
	}
	if err := p.call(ctx, "initiate", http.MethodPost, "/payments/initialize", body, &out); err != nil {
		return nil, err
	}
	if out.Transaction.Reference == "" || out.AuthorizationURL == "" {
		return nil, errs.NewProviderError(string(p.Name()), "initiate", http.StatusOK, "", "missing authorization_url")
	}

	return &gateway.Checkout{
		ProviderReference: out.Transaction.Reference,
		PaymentURL:        out.AuthorizationURL,
		Status:            entity.StatusPending,
	}, nil
}

// Status reads a payment by NotchPay reference
func (p *Provider) Status(ctx context.Context, reference string) (*gateway.StatusResult, error) {
	var out struct {
		Transaction transaction `json:"transaction"`
	}
	if err := p.call(ctx, "status", http.MethodGet, "/payments/"+url.PathEscape(reference), nil, &out); err != nil {
		return nil, err
	}
	if out.Transaction.Reference == "" {
		out.Transaction.Reference = reference
	}
	return toStatus(out.Transaction), nil
}

// ParseNotification verifies the hash-key signature and reads the payment it describes
func (p *Provider) ParseNotification(_ context.Context, cb gateway.Callback) (*entity.Notification, error) {
	if !httpclient.VerifySignature(p.hashKey, cb.Body, cb.Header.Get(SignatureHeader)) {
		return nil, errs.ErrInvalidSignature
	}

	var event struct {
		ID   string      `json:"id"`
		Type string      `json:"event"`
		Data transaction `json:"data"`
	}
	if err := json.Unmarshal(cb.Body, &event); err != nil {
		return nil, errs.NewValidationError("body", "is not valid JSON")
	}
	if event.Data.Reference == "" && event.Data.MerchantReference == "" {
		return nil, errs.NewValidationError("data.reference", "is required")
	}

	result := toStatus(event.Data)
	eventKey := event.ID
	if eventKey == "" {
		eventKey = firstNonEmpty(event.Data.Reference, event.Data.MerchantReference) + ":" + string(result.Status)
	}

	return &entity.Notification{
		Provider:          p.Name(),
		EventKey:          eventKey,
		Reference:         result.Reference,
		ProviderReference: result.ProviderReference,
		Status:            result.Status,
		Amount:            result.Amount,
		Currency:          result.Currency,
		Raw:               httpclient.NewFields(cb).Raw(),
	}, nil
}

// MapStatus turns a NotchPay status into a transaction status
func MapStatus(status string) entity.TransactionStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "complete", "completed":
		return entity.StatusSuccess
	case "failed", "canceled", "cancelled", "rejected":
		return entity.StatusFailed
	case "expired":
		return entity.StatusExpired
	default:
		return entity.StatusPending
	}
}

func toStatus(t transaction) *gateway.StatusResult {
	currency := entity.Currency(strings.ToUpper(t.Currency))
	result := &gateway.StatusResult{
		ProviderReference: t.Reference,
		Reference:         t.MerchantReference,
		Status:            MapStatus(t.Status),
		Currency:          currency,
	}
	if currency != "" {
		result.Amount = httpclient.Minor(t.Amount, currency)
	}
	if result.Status == entity.StatusFailed {
		result.Reason = "payment " + strings.ToLower(t.Status) + " at NotchPay"
	}
	return result
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

var (
	_ gateway.Initiator            = (*Provider)(nil)
	_ gateway.StatusChecker        = (*Provider)(nil)
	_ gateway.NotificationVerifier = (*Provider)(nil)
)
