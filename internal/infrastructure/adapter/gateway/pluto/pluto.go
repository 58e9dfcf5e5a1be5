// Package pluto adapts the Pluto payments API.
package pluto

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

// SignatureHeader carries the hex HMAC-SHA256 of the raw webhook body
const SignatureHeader = "X-Pluto-Signature"

// Provider is the Pluto adapter
type Provider struct {
	client        *httpclient.Client
	apiKey        string
	webhookSecret string
	logger        coreport.Logger
}

// New creates a Pluto adapter
func New(cfg config.ProviderConfig, logger coreport.Logger) *Provider {
	return &Provider{
		client:        httpclient.New(string(entity.ProviderPluto), cfg.BaseURL, cfg.Timeout, cfg.Debug, logger),
		apiKey:        cfg.APIKey,
		webhookSecret: cfg.SecretKey,
		logger:        logger,
	}
}

// Name returns the provider name
func (p *Provider) Name() entity.ProviderName { return entity.ProviderPluto }

// DisplayName returns the provider label shown to users
func (p *Provider) DisplayName() string { return "Pluto" }

// Currencies returns the accepted currencies
func (p *Provider) Currencies() []entity.Currency {
	return []entity.Currency{entity.CurrencyXAF, entity.CurrencyXOF}
}

// payment is Pluto's payment object
type payment struct {
	ID            string `json:"id"`
	Reference     string `json:"reference"`
	Status        string `json:"status"`
	Amount        any    `json:"amount"`
	Currency      string `json:"currency"`
	CheckoutURL   string `json:"checkout_url"`
	FailureReason string `json:"failure_reason"`
}

func errorMessage(body []byte) (string, string) {
	var resp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(body, &resp) != nil {
		return "", ""
	}
	return resp.Error.Code, resp.Error.Message
}

func (p *Provider) call(ctx context.Context, op, method, path string, body any, out any) error {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+p.apiKey)

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

func paymentBody(req gateway.InitiateRequest) map[string]any {
	body := map[string]any{
		"amount":       httpclient.Major(req.Amount, req.Currency),
		"currency":     string(req.Currency),
		"reference":    req.Reference,
		"description":  req.Description,
		"callback_url": req.NotifyURL,
	}
	if req.CustomerEmail != "" || req.CustomerName != "" {
		body["customer"] = map[string]string{"name": req.CustomerName, "email": req.CustomerEmail}
	}
	return body
}

// Initiate opens a Pluto hosted checkout
func (p *Provider) Initiate(ctx context.Context, req gateway.InitiateRequest) (*gateway.Checkout, error) {
	body := paymentBody(req)
	body["return_url"] = req.ReturnURL

	var out payment
	if err := p.call(ctx, "initiate", http.MethodPost, "/payments", body, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, errs.NewProviderError(string(p.Name()), "initiate", http.StatusOK, "", "missing payment id")
	}
	return &gateway.Checkout{ProviderReference: out.ID, PaymentURL: out.CheckoutURL, Status: MapStatus(out.Status)}, nil
}

// ChargeMobile pushes a payment prompt to the payer's phone
func (p *Provider) ChargeMobile(ctx context.Context, req gateway.InitiateRequest) (*gateway.Checkout, error) {
	body := paymentBody(req)
	body["phone"] = req.Phone

	var out payment
	if err := p.call(ctx, "direct_pay", http.MethodPost, "/payments/mobile", body, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, errs.NewProviderError(string(p.Name()), "direct_pay", http.StatusOK, "", "missing payment id")
	}
	return &gateway.Checkout{ProviderReference: out.ID, Status: MapStatus(out.Status)}, nil
}

// Status reads a payment by Pluto id
func (p *Provider) Status(ctx context.Context, id string) (*gateway.StatusResult, error) {
	var out payment
	if err := p.call(ctx, "status", http.MethodGet, "/payments/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return toStatus(out), nil
}

// Balance reads the merchant balance
func (p *Provider) Balance(ctx context.Context) (*gateway.Balance, error) {
	var out map[string]any
	if err := p.call(ctx, "balance", http.MethodGet, "/balance", nil, &out); err != nil {
		return nil, err
	}

	currency := entity.Currency(strings.ToUpper(httpclient.String(out["currency"])))
	if currency == "" {
		currency = entity.CurrencyXAF
	}
	return &gateway.Balance{
		Amount:   httpclient.Minor(out["available"], currency),
		Currency: currency,
		Raw:      out,
	}, nil
}

// ParseNotification verifies the body signature and reads the payment it describes
func (p *Provider) ParseNotification(_ context.Context, cb gateway.Callback) (*entity.Notification, error) {
	if !httpclient.VerifySignature(p.webhookSecret, cb.Body, cb.Header.Get(SignatureHeader)) {
		return nil, errs.ErrInvalidSignature
	}

	var event struct {
		ID   string  `json:"id"`
		Type string  `json:"type"`
		Data payment `json:"data"`
	}
	if err := json.Unmarshal(cb.Body, &event); err != nil {
		return nil, errs.NewValidationError("body", "is not valid JSON")
	}
	if event.Data.ID == "" && event.Data.Reference == "" {
		return nil, errs.NewValidationError("data.id", "is required")
	}

	result := toStatus(event.Data)
	eventKey := event.ID
	if eventKey == "" {
		eventKey = event.Data.ID + ":" + string(result.Status)
	}

	return &entity.Notification{
		Provider:          p.Name(),
		EventKey:          eventKey,
		Reference:         result.Reference,
		ProviderReference: result.ProviderReference,
		Status:            result.Status,
		Amount:            result.Amount,
		Currency:          result.Currency,
		Reason:            result.Reason,
		Raw:               httpclient.NewFields(cb).Raw(),
	}, nil
}

// MapStatus turns a Pluto status into a transaction status
func MapStatus(status string) entity.TransactionStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "succeeded", "success", "completed":
		return entity.StatusSuccess
	case "failed", "cancelled", "canceled":
		return entity.StatusFailed
	case "expired":
		return entity.StatusExpired
	default:
		return entity.StatusPending
	}
}

func toStatus(out payment) *gateway.StatusResult {
	currency := entity.Currency(strings.ToUpper(out.Currency))
	result := &gateway.StatusResult{
		ProviderReference: out.ID,
		Reference:         out.Reference,
		Status:            MapStatus(out.Status),
		Currency:          currency,
		Reason:            out.FailureReason,
	}
	if currency != "" {
		result.Amount = httpclient.Minor(out.Amount, currency)
	}
	return result
}

var (
	_ gateway.Initiator            = (*Provider)(nil)
	_ gateway.StatusChecker        = (*Provider)(nil)
	_ gateway.DirectCharger        = (*Provider)(nil)
	_ gateway.BalanceReader        = (*Provider)(nil)
	_ gateway.NotificationVerifier = (*Provider)(nil)
)
