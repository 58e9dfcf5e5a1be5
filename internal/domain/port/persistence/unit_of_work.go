package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetTransactionRepository returns a transaction repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetWalletRepository returns a wallet repository bound to the current transaction
	GetWalletRepository(ctx context.Context) WalletRepository

	// GetStatsRepository returns a stats repository bound to the current transaction
	GetStatsRepository(ctx context.Context) StatsRepository

	// GetSectionRepository returns a section repository bound to the current transaction
	GetSectionRepository(ctx context.Context) SectionRepository

	// GetWebhookEventRepository returns a webhook event repository bound to the current transaction
	GetWebhookEventRepository(ctx context.Context) WebhookEventRepository
}
