// Package cinetpay adapts the CinetPay hosted checkout API.
package cinetpay

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/domain/port/gateway"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/gateway/httpclient"
	"github.com/guidy-app/joblight/internal/infrastructure/config"
)

// signedFields are concatenated in this order to compute the x-token HMAC
var signedFields = []string{
	"cpm_site_id", "cpm_trans_id", "cpm_trans_date", "cpm_amount", "cpm_currency", "signature",
	"payment_method", "cel_phone_num", "cpm_phone_prefixe", "cpm_language", "cpm_version",
	"cpm_payment_config", "cpm_page_action", "cpm_custom", "cpm_designation", "cpm_error_message",
}

var currencies = []entity.Currency{
	entity.CurrencyXOF, entity.CurrencyXAF, entity.CurrencyCDF, entity.CurrencyGNF, entity.CurrencyUSD,
}

// Provider is the CinetPay adapter
type Provider struct {
	client    *httpclient.Client
	apiKey    string
	siteID    string
	secretKey string
	logger    coreport.Logger
}

// New creates a CinetPay adapter
func New(cfg config.ProviderConfig, logger coreport.Logger) *Provider {
	return &Provider{
		client:    httpclient.New(string(entity.ProviderCinetPay), cfg.BaseURL, cfg.Timeout, cfg.Debug, logger),
		apiKey:    cfg.APIKey,
		siteID:    cfg.SiteID,
		secretKey: cfg.SecretKey,
		logger:    logger,
	}
}

// Name returns the provider name
func (p *Provider) Name() entity.ProviderName { return entity.ProviderCinetPay }

// DisplayName returns the provider label shown to users
func (p *Provider) DisplayName() string { return "CinetPay" }

// Currencies returns the accepted currencies
func (p *Provider) Currencies() []entity.Currency { return currencies }

type envelope struct {
	Code        string          `json:"code"`
	Message     string          `json:"message"`
	Description string          `json:"description"`
	Data        json.RawMessage `json:"data"`
}

func errorMessage(body []byte) (string, string) {
	var env envelope
	if json.Unmarshal(body, &env) != nil {
		return "", ""
	}
	return env.Code, strings.TrimSpace(env.Message + " " + env.Description)
}

// Initiate opens a CinetPay checkout. The merchant reference is the CinetPay transaction_id.
func (p *Provider) Initiate(ctx context.Context, req gateway.InitiateRequest) (*gateway.Checkout, error) {
	body := map[string]any{
		"apikey":         p.apiKey,
		"site_id":        p.siteID,
		"transaction_id": req.Reference,
		"amount":         httpclient.Major(req.Amount, req.Currency),
		"currency":       string(req.Currency),
		"description":    req.Description,
		"notify_url":     req.NotifyURL,
		"return_url":     req.ReturnURL,
		"channels":       "ALL",
		"metadata":       req.Reference,
	}
	if req.CustomerName != "" {
		body["customer_name"] = req.CustomerName
	}
	if req.CustomerEmail != "" {
		body["customer_email"] = req.CustomerEmail
	}
	if req.Phone != "" {
		body["customer_phone_number"] = req.Phone
	}

	resp, err := p.client.Do(ctx, httpclient.Request{
		Operation: "initiate",
		Method:    http.MethodPost,
		Path:      "/v2/payment",
		Body:      body,
	}, errorMessage)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := resp.Decode(&env); err != nil {
		return nil, httpclient.DecodeError(string(p.Name()), "initiate", err)
	}
	if env.Code != "201" {
		return nil, errs.NewProviderError(string(p.Name()), "initiate", http.StatusBadRequest, env.Code, strings.TrimSpace(env.Message+" "+env.Description))
	}

	var data struct {
		PaymentToken string `json:"payment_token"`
		PaymentURL   string `json:"payment_url"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil || data.PaymentURL == "" {
		return nil, errs.NewProviderError(string(p.Name()), "initiate", http.StatusOK, env.Code, "missing payment_url")
	}

	return &gateway.Checkout{
		ProviderReference: req.Reference,
		PaymentURL:        data.PaymentURL,
		Status:            entity.StatusPending,
	}, nil
}

// Status asks CinetPay for the authoritative state of a payment
func (p *Provider) Status(ctx context.Context, reference string) (*gateway.StatusResult, error) {
	resp, err := p.client.Do(ctx, httpclient.Request{
		Operation: "status",
		Method:    http.MethodPost,
		Path:      "/v2/payment/check",
		Body: map[string]string{
			"apikey":         p.apiKey,
			"site_id":        p.siteID,
			"transaction_id": reference,
		},
	}, errorMessage)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := resp.Decode(&env); err != nil {
		return nil, httpclient.DecodeError(string(p.Name()), "status", err)
	}

	var data map[string]any
	_ = json.Unmarshal(env.Data, &data)

	currency := entity.Currency(httpclient.String(data["currency"]))
	result := &gateway.StatusResult{
		ProviderReference: reference,
		Reference:         reference,
		Status:            MapStatus(env.Code, httpclient.String(data["status"])),
		Currency:          currency,
		Raw:               data,
	}
	if currency != "" {
		result.Amount = httpclient.Minor(data["amount"], currency)
	}
	if result.Status == entity.StatusFailed {
		result.Reason = strings.TrimSpace(env.Message + " " + env.Description)
	}
	return result, nil
}

// MapStatus turns a CinetPay code and status into a transaction status
func MapStatus(code, status string) entity.TransactionStatus {
	switch {
	case code == "00" || strings.EqualFold(status, "ACCEPTED"):
		return entity.StatusSuccess
	case code == "600" || strings.EqualFold(status, "REFUSED"):
		return entity.StatusFailed
	default:
		// 627 and 662 are the waiting states; unknown codes stay pending until the next check
		return entity.StatusPending
	}
}

// ParseNotification verifies the x-token HMAC then fetches the authoritative status
func (p *Provider) ParseNotification(ctx context.Context, cb gateway.Callback) (*entity.Notification, error) {
	fields := httpclient.NewFields(cb)

	var payload strings.Builder
	for _, key := range signedFields {
		payload.WriteString(fields.Get(key))
	}

	token := cb.Header.Get("x-token")
	if !httpclient.VerifySignature(p.secretKey, []byte(payload.String()), token) {
		return nil, errs.ErrInvalidSignature
	}

	reference := fields.Get("cpm_trans_id")
	if reference == "" {
		return nil, errs.NewValidationError("cpm_trans_id", "is required")
	}
	if site := fields.Get("cpm_site_id"); site != "" && p.siteID != "" && site != p.siteID {
		return nil, errs.ErrInvalidSignature
	}

	result, err := p.Status(ctx, reference)
	if err != nil {
		return nil, err
	}

	return &entity.Notification{
		Provider:          p.Name(),
		EventKey:          reference + ":" + string(result.Status),
		Reference:         reference,
		ProviderReference: reference,
		Status:            result.Status,
		Amount:            result.Amount,
		Currency:          result.Currency,
		Reason:            result.Reason,
		Raw:               fields.Raw(),
	}, nil
}

var (
	_ gateway.Initiator            = (*Provider)(nil)
	_ gateway.StatusChecker        = (*Provider)(nil)
	_ gateway.NotificationVerifier = (*Provider)(nil)
)
