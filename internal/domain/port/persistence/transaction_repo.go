package persistence

import (
	"context"
	"time"

	"github.com/guidy-app/joblight/internal/domain/entity"
)

// TransactionRepository stores payment transactions
type TransactionRepository interface {
	// Create saves a new transaction
	//
	// Possible errors:
	// - ErrDuplicateReference: If a transaction with the same reference already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// Update persists status, checkout and settlement fields
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the transaction doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, transaction *entity.Transaction) error

	// GetByReference retrieves a transaction by its merchant reference
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction has this reference
	// - ErrDatabaseConnection: If database connection fails
	GetByReference(ctx context.Context, reference string) (*entity.Transaction, error)

	// GetByReferenceForUpdate is GetByReference with a row lock held until the unit of work ends
	GetByReferenceForUpdate(ctx context.Context, reference string) (*entity.Transaction, error)

	// GetByProviderReference retrieves a transaction by the provider-side id
	GetByProviderReference(ctx context.Context, provider entity.ProviderName, providerReference string) (*entity.Transaction, error)

	// ListPending returns pending transactions created before olderThan, oldest first
	ListPending(ctx context.Context, olderThan time.Time, limit int) ([]*entity.Transaction, error)
}
