package usecase

import (
	"context"
	"time"

	"github.com/guidy-app/joblight/internal/domain/entity"
	"github.com/guidy-app/joblight/internal/domain/port/gateway"
)

// InitiatePaymentInput is a request to open a payment
type InitiatePaymentInput struct {
	UserID        uint64
	Amount        string // decimal, major units
	Currency      string
	Provider      string // empty means "recommend one"
	Phone         string
	Country       string
	Purpose       entity.Purpose
	Description   string
	CustomerName  string
	CustomerEmail string
	Metadata      map[string]any
}

// PaymentResult is what a client needs to continue a payment
type PaymentResult struct {
	Reference       string                   `json:"reference"`
	Provider        entity.ProviderName      `json:"provider"`
	PaymentURL      string                   `json:"payment_url,omitempty"`
	Status          entity.TransactionStatus `json:"status"`
	Amount          int64                    `json:"amount"`
	FormattedAmount string                   `json:"formatted_amount"`
	Currency        entity.Currency          `json:"currency"`
}

// RecommendInput describes a payment to pick a provider for
type RecommendInput struct {
	Amount   string
	Currency string
	Phone    string
	Country  string
	Method   string // "direct_mobile" restricts to providers able to push a prompt
}

// NotificationResult is the outcome of a provider callback
type NotificationResult struct {
	Provider  entity.ProviderName
	Reference string
	Status    entity.TransactionStatus
	Known     bool // false when no local transaction matches
	Duplicate bool
}

// PayoutInput sends money out through Fapshi
type PayoutInput struct {
	UserID  uint64
	Amount  int64
	Phone   string
	Name    string
	Email   string
	Message string
}

// PaymentUseCase is the unified payment service over every provider
type PaymentUseCase interface {
	InitiatePayment(ctx context.Context, in InitiatePaymentInput) (*PaymentResult, error)
	DirectMobilePayment(ctx context.Context, in InitiatePaymentInput) (*PaymentResult, error)
	CheckPaymentStatus(ctx context.Context, userID uint64, reference string) (*entity.Transaction, error)
	GetProviders(ctx context.Context) []entity.ProviderInfo
	RecommendProvider(ctx context.Context, in RecommendInput) (*entity.Recommendation, error)
	GetBalance(ctx context.Context, provider string) (*gateway.Balance, error)
	HandleNotification(ctx context.Context, provider string, cb gateway.Callback) (*NotificationResult, error)
	ReturnPage(ctx context.Context, reference string) (string, error)
	ExpireStale(ctx context.Context, olderThan time.Duration, limit int) (int, error)
	ReconcilePending(ctx context.Context, olderThan time.Duration, limit int) (int, error)
}

// FapshiUseCase exposes the Fapshi-only operations
type FapshiUseCase interface {
	Payout(ctx context.Context, in PayoutInput) (*gateway.PayoutResult, error)
	SearchTransactions(ctx context.Context, filters map[string]string) ([]gateway.ProviderTransaction, error)
	GetUserTransactions(ctx context.Context, userID string) ([]gateway.ProviderTransaction, error)
	ExpirePayment(ctx context.Context, transID string) (*gateway.StatusResult, error)
}
