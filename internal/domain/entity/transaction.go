package entity

import (
	"time"

	errs "github.com/guidy-app/joblight/internal/domain/error"
	tport "github.com/guidy-app/joblight/internal/domain/port/core"
)

// TransactionStatus defines possible status values for a transaction
type TransactionStatus string

// TransactionStatus constants
const (
	StatusPending TransactionStatus = "pending"
	StatusSuccess TransactionStatus = "success"
	StatusFailed  TransactionStatus = "failed"
	StatusExpired TransactionStatus = "expired"
)

// IsTerminal reports whether no further transition is allowed
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusSuccess || s == StatusFailed || s == StatusExpired
}

// Purpose says what a successful payment unlocks
type Purpose string

// Payment purposes
const (
	PurposeWalletTopUp Purpose = "wallet_topup"
	PurposeAITokens    Purpose = "ai_tokens"
	PurposeAIService   Purpose = "ai_service"
	PurposeGeneric     Purpose = "generic"
)

// IsValid reports whether p is a known purpose
func (p Purpose) IsValid() bool {
	switch p {
	case PurposeWalletTopUp, PurposeAITokens, PurposeAIService, PurposeGeneric:
		return true
	}
	return false
}

// Metadata keys understood by settlement
const (
	MetaTokens  = "tokens"
	MetaService = "service"
	MetaPack    = "pack"
)

// ClientMetadata copies caller metadata without the keys settlement reads
func ClientMetadata(meta map[string]any) map[string]any {
	if len(meta) == 0 {
		return nil
	}
	out := make(map[string]any, len(meta))
	for k, v := range meta {
		switch k {
		case MetaTokens, MetaService, MetaPack:
			continue
		}
		out[k] = v
	}
	return out
}

// Transaction is one payment attempt through a provider
type Transaction struct {
	ID                uint64
	Reference         string // merchant reference, sent to the provider
	UserID            uint64
	Provider          ProviderName
	Purpose           Purpose
	Amount            int64 // minor units of Currency
	Currency          Currency
	Status            TransactionStatus
	Phone             string
	ProviderReference string // provider-side id (Fapshi transId, NotchPay reference, ...)
	PaymentURL        string
	Description       string
	Metadata          map[string]any
	FailureReason     string
	Settled           bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
	CompletedAt       *time.Time
	ExpiresAt         *time.Time
}

// TransactionOption customizes a new transaction
type TransactionOption func(*Transaction)

// WithPhone sets the mobile money number
func WithPhone(phone string) TransactionOption {
	return func(t *Transaction) { t.Phone = phone }
}

// WithDescription sets the description shown by the provider
func WithDescription(description string) TransactionOption {
	return func(t *Transaction) { t.Description = description }
}

// WithMetadata merges metadata into the transaction
func WithMetadata(meta map[string]any) TransactionOption {
	return func(t *Transaction) {
		for k, v := range meta {
			t.Metadata[k] = v
		}
	}
}

// WithExpiry sets when a pending transaction becomes stale
func WithExpiry(at time.Time) TransactionOption {
	return func(t *Transaction) { t.ExpiresAt = &at }
}

// NewTransaction creates a pending transaction with basic validation
func NewTransaction(
	reference string,
	userID uint64,
	provider ProviderName,
	purpose Purpose,
	amount int64,
	currency Currency,
	timeProvider tport.TimeProvider,
	opts ...TransactionOption,
) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if reference == "" {
		return nil, errs.ErrInvalidReference
	}
	if amount <= 0 {
		return nil, errs.NewValidationError("amount", "must be greater than zero")
	}
	if !purpose.IsValid() {
		return nil, errs.NewValidationError("purpose", "unknown purpose")
	}

	now := timeProvider.Now()
	t := &Transaction{
		Reference: reference,
		UserID:    userID,
		Provider:  provider,
		Purpose:   purpose,
		Amount:    amount,
		Currency:  currency,
		Status:    StatusPending,
		Metadata:  map[string]any{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Transition moves a pending transaction to a terminal status.
// Re-applying the current terminal status is a no-op and returns changed=false.
// Any other change of a terminal status fails with a TransitionError.
func (t *Transaction) Transition(to TransactionStatus, reason string, timeProvider tport.TimeProvider) (bool, error) {
	if t.Status == to {
		return false, nil
	}
	if t.Status.IsTerminal() || !to.IsTerminal() {
		return false, errs.NewTransitionError(t.Reference, string(t.Status), string(to))
	}

	now := timeProvider.Now()
	t.Status = to
	t.UpdatedAt = now
	t.CompletedAt = &now
	if to != StatusSuccess {
		t.FailureReason = reason
	}
	return true, nil
}

// AttachCheckout stores what the provider returned on initiation
func (t *Transaction) AttachCheckout(providerReference, paymentURL string, timeProvider tport.TimeProvider) {
	if providerReference != "" {
		t.ProviderReference = providerReference
	}
	if paymentURL != "" {
		t.PaymentURL = paymentURL
	}
	t.UpdatedAt = timeProvider.Now()
}

// MarkSettled records that the purpose side effect has been applied
func (t *Transaction) MarkSettled(timeProvider tport.TimeProvider) {
	t.Settled = true
	t.UpdatedAt = timeProvider.Now()
}

// NeedsSettlement reports whether a successful payment still owes its side effect
func (t *Transaction) NeedsSettlement() bool {
	return t.Status == StatusSuccess && !t.Settled && t.Purpose != PurposeGeneric
}

// IsStale reports whether a pending transaction is past its expiry
func (t *Transaction) IsStale(now time.Time) bool {
	return t.Status == StatusPending && t.ExpiresAt != nil && now.After(*t.ExpiresAt)
}

// MetaInt64 reads an integer metadata value; JSON round trips turn numbers into float64
func (t *Transaction) MetaInt64(key string) (int64, bool) {
	switch v := t.Metadata[key].(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		return int64(v), true
	}
	return 0, false
}

// MetaString reads a string metadata value
func (t *Transaction) MetaString(key string) string {
	s, _ := t.Metadata[key].(string)
	return s
}

// FormattedAmount returns the amount as a decimal string
func (t *Transaction) FormattedAmount() string {
	return FormatAmount(t.Amount, t.Currency)
}
