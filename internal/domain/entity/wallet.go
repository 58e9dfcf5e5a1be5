package entity

import (
	"math"
	"time"

	errs "github.com/guidy-app/joblight/internal/domain/error"
	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
)

// EntryKind is the direction of a wallet mutation
type EntryKind string

// Wallet entry kinds
const (
	EntryCredit EntryKind = "credit"
	EntryDebit  EntryKind = "debit"
)

// Wallet holds a user's AI token balance
type Wallet struct {
	UserID    uint64
	tokens    int64 // never negative
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewWallet creates an empty wallet for the user
func NewWallet(userID uint64, timeProvider coreport.TimeProvider) (*Wallet, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	now := timeProvider.Now()
	return &Wallet{
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Tokens returns the current token balance
func (w *Wallet) Tokens() int64 {
	return w.tokens
}

// SetTokens updates the balance directly (for repositories)
func (w *Wallet) SetTokens(tokens int64, timeProvider coreport.TimeProvider) {
	w.tokens = tokens
	w.UpdatedAt = timeProvider.Now()
}

// CanDebit checks if the wallet covers n tokens
func (w *Wallet) CanDebit(n int64) bool {
	return n >= 0 && w.tokens >= n
}

// Credit adds n tokens
func (w *Wallet) Credit(n int64, timeProvider coreport.TimeProvider) error {
	if n <= 0 {
		return errs.NewValidationError("tokens", "must be greater than zero")
	}
	if w.tokens > math.MaxInt64-n {
		return errs.ErrAmountOverflow
	}

	w.tokens += n
	w.UpdatedAt = timeProvider.Now()
	return nil
}

// Debit removes n tokens, leaving the balance untouched when it cannot cover them
func (w *Wallet) Debit(n int64, timeProvider coreport.TimeProvider) error {
	if n <= 0 {
		return errs.NewValidationError("tokens", "must be greater than zero")
	}
	if w.tokens < n {
		return errs.NewInsufficientTokensError(w.UserID, n, w.tokens)
	}

	w.tokens -= n
	w.UpdatedAt = timeProvider.Now()
	return nil
}

// WalletEntry is one line of the wallet ledger
type WalletEntry struct {
	ID           string
	UserID       uint64
	Kind         EntryKind
	Tokens       int64
	BalanceAfter int64
	Reason       string
	Reference    string // unique together with Kind
	CreatedAt    time.Time
}
