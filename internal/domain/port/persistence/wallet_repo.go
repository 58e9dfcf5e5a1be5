package persistence

import (
	"context"

	"github.com/guidy-app/joblight/internal/domain/entity"
)

// WalletRepository stores token wallets and their ledger
type WalletRepository interface {
	// GetByUserID returns the wallet of a user, or an empty wallet when none exists yet
	GetByUserID(ctx context.Context, userID uint64) (*entity.Wallet, error)

	// GetForUpdate locks the wallet row of a user, creating it when missing
	GetForUpdate(ctx context.Context, userID uint64) (*entity.Wallet, error)

	// Save persists the wallet balance
	Save(ctx context.Context, wallet *entity.Wallet) error

	// AddEntry appends a ledger line
	//
	// Possible errors:
	// - ErrDuplicateReference: If an entry with the same kind and reference exists
	// - ErrDatabaseConnection: If database connection fails
	AddEntry(ctx context.Context, entry *entity.WalletEntry) error

	// FindEntry returns the ledger line with this kind and reference
	//
	// Possible errors:
	// - ErrNotFound: If there is none
	FindEntry(ctx context.Context, kind entity.EntryKind, reference string) (*entity.WalletEntry, error)

	// ListEntries returns the newest ledger lines of a user
	ListEntries(ctx context.Context, userID uint64, limit int) ([]*entity.WalletEntry, error)
}
