package usecase

import (
	"context"

	"github.com/guidy-app/joblight/internal/domain/entity"
)

// PriceInput selects what to price: a service, a pack, or a raw token count
type PriceInput struct {
	Service string
	Pack    string
	Tokens  int64
}

// AIPaymentInput pays for a service run or a token purchase
type AIPaymentInput struct {
	UserID        uint64
	Service       string
	Pack          string
	Tokens        int64
	Provider      string
	Phone         string
	Country       string
	CustomerName  string
	CustomerEmail string
}

// UseServiceInput consumes tokens for one service run
type UseServiceInput struct {
	UserID    uint64
	Service   string
	RequestID string // idempotency key chosen by the client
}

// UsageResult is the outcome of a token debit
type UsageResult struct {
	Service    string `json:"service"`
	TokensUsed int64  `json:"tokens_used"`
	Balance    int64  `json:"balance"`
	Duplicate  bool   `json:"duplicate"`
}

// AIUseCase gates AI features behind the token wallet
type AIUseCase interface {
	Catalogue() ([]entity.AIService, []entity.TokenPack)
	CheckAccess(ctx context.Context, userID uint64, service string) (*entity.AccessCheck, error)
	CalculatePrice(ctx context.Context, in PriceInput) (*entity.PriceQuote, error)
	CheckBalance(ctx context.Context, userID uint64) (int64, error)
	InitiateServicePayment(ctx context.Context, in AIPaymentInput) (*PaymentResult, error)
	InitiateTokenPurchase(ctx context.Context, in AIPaymentInput) (*PaymentResult, error)
	UseService(ctx context.Context, in UseServiceInput) (*UsageResult, error)
	History(ctx context.Context, userID uint64, limit int) ([]*entity.WalletEntry, error)
}

// WalletMutation is the outcome of a credit or debit
type WalletMutation struct {
	Wallet    *entity.Wallet
	Entry     *entity.WalletEntry
	Duplicate bool // the reference was already applied; nothing changed
}

// WalletUseCase mutates token wallets one user at a time
type WalletUseCase interface {
	GetBalance(ctx context.Context, userID uint64) (int64, error)
	// Credit adds tokens once per reference
	Credit(ctx context.Context, userID uint64, tokens int64, reason, reference string) (*WalletMutation, error)
	// Debit removes tokens once per reference
	Debit(ctx context.Context, userID uint64, tokens int64, reason, reference string) (*WalletMutation, error)
	History(ctx context.Context, userID uint64, limit int) ([]*entity.WalletEntry, error)
}
