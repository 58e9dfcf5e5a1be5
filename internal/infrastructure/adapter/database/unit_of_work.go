package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/domain/port/persistence"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/logger"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/pgerr"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

// slowCommitThreshold is the commit duration above which a warning is logged
const slowCommitThreshold = 100 * time.Millisecond

// UnitOfWork implements the unit of work pattern for database transactions.
// Transactions run at READ COMMITTED; repositories take row locks with SELECT ... FOR UPDATE
// where a read-modify-write must not interleave.
type UnitOfWork struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	backoff      backoff
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) persistence.UnitOfWork {
	return &UnitOfWork{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		backoff:      defaultBackoff,
	}
}

// Begin starts a new database transaction, retrying while the pool reports transient failures
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	var tx *gorm.DB
	err := retry(ctx, u.backoff, u.logger, "begin", func() error {
		tx = u.db.WithContext(ctx).Begin()
		return tx.Error
	})
	if err != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": err.Error()})
		return ctx, pgerr.Wrap("begin transaction", err)
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	start := u.timeProvider.Now()
	err := tx.Commit().Error
	if elapsed := u.timeProvider.Since(start); elapsed > slowCommitThreshold {
		u.logger.Warn("Slow commit", map[string]any{
			"duration_ms": elapsed.Milliseconds(),
			"request_id":  logger.RequestID(ctx),
		})
	}
	if err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return pgerr.Wrap("commit transaction", err)
	}

	return nil
}

// Rollback rolls back the current transaction
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	err := tx.Rollback().Error

	// already finished transactions are not an error for deferred rollbacks
	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		u.logger.Debug("Transaction has already been committed or rolled back", nil)
		return nil
	}

	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	return nil
}

// GetTransactionRepository returns a transaction repository in the current transaction
func (u *UnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return repository.NewTransactionRepository(u.getDbFromContext(ctx), u.logger)
}

// GetWalletRepository returns a wallet repository in the current transaction
func (u *UnitOfWork) GetWalletRepository(ctx context.Context) persistence.WalletRepository {
	return repository.NewWalletRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetStatsRepository returns a stats repository in the current transaction
func (u *UnitOfWork) GetStatsRepository(ctx context.Context) persistence.StatsRepository {
	return repository.NewStatsRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetSectionRepository returns a section repository in the current transaction
func (u *UnitOfWork) GetSectionRepository(ctx context.Context) persistence.SectionRepository {
	return repository.NewSectionRepository(u.getDbFromContext(ctx), u.logger)
}

// GetWebhookEventRepository returns a webhook event repository in the current transaction
func (u *UnitOfWork) GetWebhookEventRepository(ctx context.Context) persistence.WebhookEventRepository {
	return repository.NewWebhookEventRepository(u.getDbFromContext(ctx), u.logger)
}

// getDbFromContext retrieves the database instance from context
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
