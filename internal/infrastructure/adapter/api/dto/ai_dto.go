package dto

import (
	"time"

	"github.com/guidy-app/joblight/internal/domain/entity"
)

// ServiceRequest names an AI service
type ServiceRequest struct {
	Service string `json:"service" binding:"required"`
}

// PriceRequest selects what to price
type PriceRequest struct {
	Service string `json:"service"`
	Pack    string `json:"pack"`
	Tokens  int64  `json:"tokens" binding:"min=0,max=10000000"`
}

// AIPaymentRequest pays for a service run or a token purchase
type AIPaymentRequest struct {
	Service       string `json:"service"`
	Pack          string `json:"pack"`
	Tokens        int64  `json:"tokens" binding:"min=0,max=10000000"`
	Provider      string `json:"provider"`
	Phone         string `json:"phone" binding:"omitempty,cmphone"`
	Country       string `json:"country"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email" binding:"omitempty,email"`
}

// UseServiceRequest consumes tokens for one service run
type UseServiceRequest struct {
	Service   string `json:"service" binding:"required"`
	RequestID string `json:"request_id" binding:"required,max=64"`
}

// HistoryRequest pages the token ledger
type HistoryRequest struct {
	Limit int `json:"limit" binding:"min=0,max=200"`
}

// WalletEntryResponse is one ledger line
type WalletEntryResponse struct {
	Kind         string    `json:"kind"`
	Tokens       int64     `json:"tokens"`
	BalanceAfter int64     `json:"balance_after"`
	Reason       string    `json:"reason"`
	Reference    string    `json:"reference"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewWalletEntryResponses maps ledger lines for output
func NewWalletEntryResponses(entries []*entity.WalletEntry) []WalletEntryResponse {
	out := make([]WalletEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, WalletEntryResponse{
			Kind:         string(e.Kind),
			Tokens:       e.Tokens,
			BalanceAfter: e.BalanceAfter,
			Reason:       e.Reason,
			Reference:    e.Reference,
			CreatedAt:    e.CreatedAt,
		})
	}
	return out
}
