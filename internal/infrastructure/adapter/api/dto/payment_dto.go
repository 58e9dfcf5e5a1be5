package dto

import (
	"time"

	"github.com/guidy-app/joblight/internal/domain/entity"
	"github.com/guidy-app/joblight/internal/domain/port/gateway"
)

// InitiatePaymentRequest opens a hosted checkout
type InitiatePaymentRequest struct {
	Amount        string         `json:"amount" binding:"required"`
	Currency      string         `json:"currency"`
	Provider      string         `json:"provider"`
	Phone         string         `json:"phone"`
	Country       string         `json:"country"`
	Purpose       string         `json:"purpose" binding:"omitempty,oneof=wallet_topup generic"`
	Description   string         `json:"description" binding:"max=255"`
	CustomerName  string         `json:"customer_name"`
	CustomerEmail string         `json:"customer_email" binding:"omitempty,email"`
	Metadata      map[string]any `json:"metadata"`
}

// DirectMobileRequest pushes a payment prompt to a mobile money number
type DirectMobileRequest struct {
	Amount        string         `json:"amount" binding:"required"`
	Currency      string         `json:"currency"`
	Provider      string         `json:"provider"`
	Phone         string         `json:"phone" binding:"required,cmphone"`
	Purpose       string         `json:"purpose" binding:"omitempty,oneof=wallet_topup generic"`
	Description   string         `json:"description" binding:"max=255"`
	CustomerName  string         `json:"customer_name"`
	CustomerEmail string         `json:"customer_email" binding:"omitempty,email"`
	Metadata      map[string]any `json:"metadata"`
}

// RecommendProviderRequest asks which provider fits a payment
type RecommendProviderRequest struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	Phone    string `json:"phone"`
	Country  string `json:"country"`
	Method   string `json:"method" binding:"omitempty,oneof=hosted direct_mobile"`
}

// TransactionResponse is a payment as shown to its owner
type TransactionResponse struct {
	Reference       string     `json:"reference"`
	Provider        string     `json:"provider"`
	Purpose         string     `json:"purpose"`
	Status          string     `json:"status"`
	Amount          int64      `json:"amount"`
	FormattedAmount string     `json:"formatted_amount"`
	Currency        string     `json:"currency"`
	PaymentURL      string     `json:"payment_url,omitempty"`
	FailureReason   string     `json:"failure_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// NewTransactionResponse maps a transaction for output
func NewTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		Reference:       t.Reference,
		Provider:        string(t.Provider),
		Purpose:         string(t.Purpose),
		Status:          string(t.Status),
		Amount:          t.Amount,
		FormattedAmount: entity.FormatAmount(t.Amount, t.Currency),
		Currency:        string(t.Currency),
		PaymentURL:      t.PaymentURL,
		FailureReason:   t.FailureReason,
		CreatedAt:       t.CreatedAt,
		CompletedAt:     t.CompletedAt,
	}
}

// BalanceResponse is a merchant balance held at a provider
type BalanceResponse struct {
	Provider        string `json:"provider"`
	Amount          int64  `json:"amount"`
	FormattedAmount string `json:"formatted_amount"`
	Currency        string `json:"currency"`
}

// NewBalanceResponse maps a provider balance for output
func NewBalanceResponse(provider string, b *gateway.Balance) BalanceResponse {
	return BalanceResponse{
		Provider:        provider,
		Amount:          b.Amount,
		FormattedAmount: entity.FormatAmount(b.Amount, b.Currency),
		Currency:        string(b.Currency),
	}
}

// PayoutRequest sends money to a Cameroonian mobile money account
type PayoutRequest struct {
	Amount  int64  `json:"amount" binding:"required,min=100"`
	Phone   string `json:"phone" binding:"required,cmphone"`
	Name    string `json:"name" binding:"max=100"`
	Email   string `json:"email" binding:"omitempty,email"`
	Message string `json:"message" binding:"max=255"`
}
