package wallet

import (
	"context"
	"errors"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/domain/port/persistence"
	"github.com/guidy-app/joblight/internal/domain/port/usecase"
)

// DefaultHistoryLimit caps History when the caller gives no limit
const DefaultHistoryLimit = 50

// Service handles token wallet mutations
type Service struct {
	uow          persistence.UnitOfWork
	executor     *Executor
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new wallet Service
func NewService(
	uow persistence.UnitOfWork,
	executor *Executor,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		executor:     executor,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetBalance returns the token balance of a user
func (s *Service) GetBalance(ctx context.Context, userID uint64) (int64, error) {
	if userID == 0 {
		return 0, errs.ErrInvalidUserID
	}

	wallet, err := s.uow.GetWalletRepository(ctx).GetByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return wallet.Tokens(), nil
}

// Credit adds tokens to a user's wallet once per reference
func (s *Service) Credit(ctx context.Context, userID uint64, tokens int64, reason, reference string) (*usecase.WalletMutation, error) {
	return s.mutate(ctx, entity.EntryCredit, userID, tokens, reason, reference)
}

// Debit removes tokens from a user's wallet once per reference
func (s *Service) Debit(ctx context.Context, userID uint64, tokens int64, reason, reference string) (*usecase.WalletMutation, error) {
	return s.mutate(ctx, entity.EntryDebit, userID, tokens, reason, reference)
}

// History returns the newest ledger entries of a user
func (s *Service) History(ctx context.Context, userID uint64, limit int) ([]*entity.WalletEntry, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if limit <= 0 || limit > DefaultHistoryLimit {
		limit = DefaultHistoryLimit
	}
	return s.uow.GetWalletRepository(ctx).ListEntries(ctx, userID, limit)
}

// mutate validates the request and runs it on the user's queue
func (s *Service) mutate(
	ctx context.Context,
	kind entity.EntryKind,
	userID uint64,
	tokens int64,
	reason, reference string,
) (*usecase.WalletMutation, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if tokens <= 0 {
		return nil, errs.NewValidationError("tokens", "must be greater than zero")
	}
	if reference == "" {
		return nil, errs.ErrInvalidReference
	}

	var result *usecase.WalletMutation
	err := s.executor.Do(ctx, userID, func(ctx context.Context) error {
		var err error
		result, err = s.apply(ctx, kind, userID, tokens, reason, reference)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// apply performs one ledger mutation inside a unit of work holding the wallet row lock
func (s *Service) apply(
	ctx context.Context,
	kind entity.EntryKind,
	userID uint64,
	tokens int64,
	reason, reference string,
) (result *usecase.WalletMutation, err error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
				s.logger.Error("Failed to rollback wallet mutation", map[string]any{
					"user_id": userID,
					"error":   rbErr.Error(),
				})
			}
		}
	}()

	repo := s.uow.GetWalletRepository(txCtx)

	wallet, err := repo.GetForUpdate(txCtx, userID)
	if err != nil {
		return nil, err
	}

	existing, err := repo.FindEntry(txCtx, kind, reference)
	switch {
	case err == nil:
		s.logger.Info("Wallet mutation already applied", map[string]any{
			"user_id":   userID,
			"kind":      string(kind),
			"reference": reference,
		})
		if err = s.uow.Commit(txCtx); err != nil {
			return nil, err
		}
		return &usecase.WalletMutation{Wallet: wallet, Entry: existing, Duplicate: true}, nil
	case !errors.Is(err, errs.ErrNotFound):
		return nil, err
	}

	if kind == entity.EntryCredit {
		err = wallet.Credit(tokens, s.timeProvider)
	} else {
		err = wallet.Debit(tokens, s.timeProvider)
	}
	if err != nil {
		if errs.IsInsufficientTokensError(err) {
			s.logger.Warn("Insufficient tokens for debit", map[string]any{
				"user_id":   userID,
				"required":  tokens,
				"available": wallet.Tokens(),
				"reference": reference,
			})
		}
		return nil, err
	}

	if err = repo.Save(txCtx, wallet); err != nil {
		return nil, err
	}

	entry := &entity.WalletEntry{
		ID:           s.idGenerator.NewID(),
		UserID:       userID,
		Kind:         kind,
		Tokens:       tokens,
		BalanceAfter: wallet.Tokens(),
		Reason:       reason,
		Reference:    reference,
		CreatedAt:    s.timeProvider.Now(),
	}
	if err = repo.AddEntry(txCtx, entry); err != nil {
		return nil, err
	}

	if err = s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Wallet updated", map[string]any{
		"user_id":   userID,
		"kind":      string(kind),
		"tokens":    tokens,
		"balance":   wallet.Tokens(),
		"reference": reference,
		"reason":    reason,
	})

	return &usecase.WalletMutation{Wallet: wallet, Entry: entry}, nil
}
