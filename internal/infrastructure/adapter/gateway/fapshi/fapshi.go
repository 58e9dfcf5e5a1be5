// Package fapshi adapts the Fapshi mobile money API.
package fapshi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/domain/port/gateway"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/gateway/httpclient"
	"github.com/guidy-app/joblight/internal/infrastructure/config"
)

// searchFilters are the query parameters Fapshi's search endpoint understands
var searchFilters = []string{"status", "medium", "start", "end", "amt", "limit", "sort"}

// Provider is the Fapshi adapter
type Provider struct {
	client  *httpclient.Client
	apiUser string
	apiKey  string
	logger  coreport.Logger
}

// New creates a Fapshi adapter
func New(cfg config.ProviderConfig, logger coreport.Logger) *Provider {
	return &Provider{
		client:  httpclient.New(string(entity.ProviderFapshi), cfg.BaseURL, cfg.Timeout, cfg.Debug, logger),
		apiUser: cfg.APIUser,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

// Name returns the provider name
func (p *Provider) Name() entity.ProviderName { return entity.ProviderFapshi }

// DisplayName returns the provider label shown to users
func (p *Provider) DisplayName() string { return "Fapshi" }

// Currencies returns the accepted currencies
func (p *Provider) Currencies() []entity.Currency { return []entity.Currency{entity.CurrencyXAF} }

// transaction is the payment object Fapshi returns from status, expire, search and webhooks
type transaction struct {
	TransID       string  `json:"transId"`
	Status        string  `json:"status"`
	Medium        string  `json:"medium"`
	Amount        float64 `json:"amount"`
	PayerName     string  `json:"payerName"`
	Email         string  `json:"email"`
	ExternalID    string  `json:"externalId"`
	UserID        string  `json:"userId"`
	Phone         string  `json:"phone"`
	DateInitiated string  `json:"dateInitiated"`
	DateConfirmed string  `json:"dateConfirmed"`
}

func errorMessage(body []byte) (string, string) {
	var resp struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &resp) != nil {
		return "", ""
	}
	return "", resp.Message
}

func (p *Provider) header() http.Header {
	h := http.Header{}
	h.Set("apiuser", p.apiUser)
	h.Set("apikey", p.apiKey)
	return h
}

func (p *Provider) call(ctx context.Context, op, method, path string, body any, out any) error {
	resp, err := p.client.Do(ctx, httpclient.Request{
		Operation: op,
		Method:    method,
		Path:      path,
		Header:    p.header(),
		Body:      body,
	}, errorMessage)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := resp.Decode(out); err != nil {
		return httpclient.DecodeError(string(p.Name()), op, err)
	}
	return nil
}

type opened struct {
	Message string `json:"message"`
	Link    string `json:"link"`
	TransID string `json:"transId"`
}

func paymentBody(req gateway.InitiateRequest) map[string]any {
	body := map[string]any{
		"amount":     req.Amount,
		"externalId": req.Reference,
		"userId":     strconv.FormatUint(req.UserID, 10),
		"message":    req.Description,
	}
	if req.CustomerEmail != "" {
		body["email"] = req.CustomerEmail
	}
	if req.CustomerName != "" {
		body["name"] = req.CustomerName
	}
	return body
}

// Initiate opens a Fapshi payment link
func (p *Provider) Initiate(ctx context.Context, req gateway.InitiateRequest) (*gateway.Checkout, error) {
	body := paymentBody(req)
	if req.ReturnURL != "" {
		body["redirectUrl"] = req.ReturnURL
	}

	var out opened
	if err := p.call(ctx, "initiate", http.MethodPost, "/initiate-pay", body, &out); err != nil {
		return nil, err
	}
	if out.TransID == "" {
		return nil, errs.NewProviderError(string(p.Name()), "initiate", http.StatusOK, "", "missing transId")
	}

	return &gateway.Checkout{
		ProviderReference: out.TransID,
		PaymentURL:        out.Link,
		Status:            entity.StatusPending,
	}, nil
}

// ChargeMobile pushes a payment prompt to the payer's phone
func (p *Provider) ChargeMobile(ctx context.Context, req gateway.InitiateRequest) (*gateway.Checkout, error) {
	body := paymentBody(req)
	body["phone"] = req.Phone

	var out opened
	if err := p.call(ctx, "direct_pay", http.MethodPost, "/direct-pay", body, &out); err != nil {
		return nil, err
	}
	if out.TransID == "" {
		return nil, errs.NewProviderError(string(p.Name()), "direct_pay", http.StatusOK, "", "missing transId")
	}

	return &gateway.Checkout{
		ProviderReference: out.TransID,
		Status:            entity.StatusPending,
	}, nil
}

// Status reads a payment by Fapshi transId
func (p *Provider) Status(ctx context.Context, transID string) (*gateway.StatusResult, error) {
	var out transaction
	if err := p.call(ctx, "status", http.MethodGet, "/payment-status/"+url.PathEscape(transID), nil, &out); err != nil {
		return nil, err
	}
	return p.toStatus(out), nil
}

// Expire cancels a pending payment
func (p *Provider) Expire(ctx context.Context, transID string) (*gateway.StatusResult, error) {
	var out transaction
	if err := p.call(ctx, "expire", http.MethodPost, "/expire-pay", map[string]string{"transId": transID}, &out); err != nil {
		return nil, err
	}
	if out.TransID == "" {
		out.TransID = transID
		out.Status = "EXPIRED"
	}
	return p.toStatus(out), nil
}

// Balance reads the merchant balance
func (p *Provider) Balance(ctx context.Context) (*gateway.Balance, error) {
	var out map[string]any
	if err := p.call(ctx, "balance", http.MethodGet, "/balance", nil, &out); err != nil {
		return nil, err
	}

	currency := entity.CurrencyXAF
	if c := httpclient.String(out["currency"]); c != "" {
		currency = entity.Currency(strings.ToUpper(c))
	}
	return &gateway.Balance{
		Amount:   httpclient.Minor(out["balance"], currency),
		Currency: currency,
		Raw:      out,
	}, nil
}

// Payout sends money to a mobile money account
func (p *Provider) Payout(ctx context.Context, req gateway.PayoutRequest) (*gateway.PayoutResult, error) {
	body := map[string]any{
		"amount":     req.Amount,
		"phone":      req.Phone,
		"externalId": req.Reference,
	}
	for key, value := range map[string]string{"name": req.Name, "email": req.Email, "message": req.Message, "userId": req.UserID} {
		if value != "" {
			body[key] = value
		}
	}

	var out opened
	if err := p.call(ctx, "payout", http.MethodPost, "/payout", body, &out); err != nil {
		return nil, err
	}

	return &gateway.PayoutResult{
		ProviderReference: out.TransID,
		Status:            entity.StatusPending,
		Message:           out.Message,
	}, nil
}

// Search lists transactions matching the known filters; unknown keys are dropped
func (p *Provider) Search(ctx context.Context, filters map[string]string) ([]gateway.ProviderTransaction, error) {
	query := url.Values{}
	for _, key := range searchFilters {
		if v := strings.TrimSpace(filters[key]); v != "" {
			query.Set(key, v)
		}
	}

	path := "/search"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var out []transaction
	if err := p.call(ctx, "search", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return toProviderTransactions(out), nil
}

// UserTransactions lists the transactions Fapshi holds for one of our user ids
func (p *Provider) UserTransactions(ctx context.Context, userID string) ([]gateway.ProviderTransaction, error) {
	var out []transaction
	if err := p.call(ctx, "user_transactions", http.MethodGet, "/transaction/"+url.PathEscape(userID), nil, &out); err != nil {
		return nil, err
	}
	return toProviderTransactions(out), nil
}

// ParseNotification reads the transId of an unsigned webhook and re-fetches the status from the API
func (p *Provider) ParseNotification(ctx context.Context, cb gateway.Callback) (*entity.Notification, error) {
	fields := httpclient.NewFields(cb)
	transID := fields.Get("transId")
	if transID == "" {
		return nil, errs.NewValidationError("transId", "is required")
	}

	result, err := p.Status(ctx, transID)
	if err != nil {
		return nil, err
	}

	return &entity.Notification{
		Provider:          p.Name(),
		EventKey:          transID + ":" + string(result.Status),
		Reference:         result.Reference,
		ProviderReference: transID,
		Status:            result.Status,
		Amount:            result.Amount,
		Currency:          result.Currency,
		Reason:            result.Reason,
		Raw:               fields.Raw(),
	}, nil
}

// MapStatus turns a Fapshi status into a transaction status
func MapStatus(status string) entity.TransactionStatus {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case "SUCCESSFUL":
		return entity.StatusSuccess
	case "FAILED":
		return entity.StatusFailed
	case "EXPIRED":
		return entity.StatusExpired
	default:
		return entity.StatusPending
	}
}

func (p *Provider) toStatus(t transaction) *gateway.StatusResult {
	result := &gateway.StatusResult{
		ProviderReference: t.TransID,
		Reference:         t.ExternalID,
		Status:            MapStatus(t.Status),
		Amount:            int64(t.Amount),
		Currency:          entity.CurrencyXAF,
		Raw: map[string]any{
			"transId":    t.TransID,
			"status":     t.Status,
			"medium":     t.Medium,
			"amount":     t.Amount,
			"externalId": t.ExternalID,
		},
	}
	if result.Status == entity.StatusFailed {
		result.Reason = "payment failed at Fapshi"
	}
	return result
}

func toProviderTransactions(in []transaction) []gateway.ProviderTransaction {
	out := make([]gateway.ProviderTransaction, 0, len(in))
	for _, t := range in {
		out = append(out, gateway.ProviderTransaction{
			ProviderReference: t.TransID,
			Reference:         t.ExternalID,
			Status:            t.Status,
			Amount:            int64(t.Amount),
			Medium:            t.Medium,
			Phone:             t.Phone,
			Name:              t.PayerName,
			Email:             t.Email,
			UserID:            t.UserID,
			CreatedAt:         t.DateInitiated,
		})
	}
	return out
}

var (
	_ gateway.Initiator            = (*Provider)(nil)
	_ gateway.StatusChecker        = (*Provider)(nil)
	_ gateway.DirectCharger        = (*Provider)(nil)
	_ gateway.BalanceReader        = (*Provider)(nil)
	_ gateway.PayoutSender         = (*Provider)(nil)
	_ gateway.TransactionSearcher  = (*Provider)(nil)
	_ gateway.Expirer              = (*Provider)(nil)
	_ gateway.NotificationVerifier = (*Provider)(nil)
)
