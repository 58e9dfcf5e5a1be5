package repository

import (
	"context"
	"errors"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/model"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/pgerr"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WalletRepository implements WalletRepository interface using GORM
type WalletRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewWalletRepository creates a new WalletRepository instance
func NewWalletRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *WalletRepository {
	return &WalletRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// modelToEntity converts a wallet model to an entity
func (r *WalletRepository) modelToEntity(m *model.Wallet) *entity.Wallet {
	wallet := &entity.Wallet{UserID: m.UserID, CreatedAt: m.CreatedAt}
	wallet.SetTokens(m.Tokens, r.timeProvider)
	wallet.UpdatedAt = m.UpdatedAt
	return wallet
}

func (r *WalletRepository) entryToEntity(m *model.WalletEntry) *entity.WalletEntry {
	return &entity.WalletEntry{
		ID:           m.ID,
		UserID:       m.UserID,
		Kind:         entity.EntryKind(m.Kind),
		Tokens:       m.Tokens,
		BalanceAfter: m.BalanceAfter,
		Reason:       m.Reason,
		Reference:    m.Reference,
		CreatedAt:    m.CreatedAt,
	}
}

// GetByUserID returns the wallet of a user, or an empty wallet when none exists yet
func (r *WalletRepository) GetByUserID(ctx context.Context, userID uint64) (*entity.Wallet, error) {
	var walletModel model.Wallet
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&walletModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return entity.NewWallet(userID, r.timeProvider)
		}
		return nil, r.handleDatabaseError("getting wallet", result.Error, userID)
	}

	return r.modelToEntity(&walletModel), nil
}

// GetForUpdate locks the wallet row of a user, creating it when missing
func (r *WalletRepository) GetForUpdate(ctx context.Context, userID uint64) (*entity.Wallet, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	now := r.timeProvider.Now()
	seed := model.Wallet{UserID: userID, CreatedAt: now, UpdatedAt: now}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return nil, r.handleDatabaseError("creating wallet", err, userID)
	}

	var walletModel model.Wallet
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&walletModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("locking wallet", result.Error, userID)
	}

	return r.modelToEntity(&walletModel), nil
}

// Save persists the wallet balance
func (r *WalletRepository) Save(ctx context.Context, wallet *entity.Wallet) error {
	r.logger.Debug("Saving wallet", map[string]any{
		"user_id": wallet.UserID,
		"tokens":  wallet.Tokens(),
	})

	result := r.db.WithContext(ctx).Model(&model.Wallet{}).
		Where("user_id = ?", wallet.UserID).
		Updates(map[string]interface{}{
			"tokens":     wallet.Tokens(),
			"updated_at": wallet.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("saving wallet", result.Error, wallet.UserID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

// AddEntry appends a ledger line
func (r *WalletRepository) AddEntry(ctx context.Context, entry *entity.WalletEntry) error {
	entryModel := model.WalletEntry{
		ID:           entry.ID,
		UserID:       entry.UserID,
		Kind:         string(entry.Kind),
		Tokens:       entry.Tokens,
		BalanceAfter: entry.BalanceAfter,
		Reason:       entry.Reason,
		Reference:    entry.Reference,
		CreatedAt:    entry.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&entryModel).Error; err != nil {
		if pgerr.IsDuplicate(err) {
			r.logger.Warn("Duplicate wallet entry", map[string]any{
				"user_id":   entry.UserID,
				"kind":      entry.Kind,
				"reference": entry.Reference,
			})
			return errs.ErrDuplicateReference
		}
		return r.handleDatabaseError("adding wallet entry", err, entry.UserID)
	}
	return nil
}

// FindEntry returns the ledger line with this kind and reference
func (r *WalletRepository) FindEntry(ctx context.Context, kind entity.EntryKind, reference string) (*entity.WalletEntry, error) {
	var entryModel model.WalletEntry
	result := r.db.WithContext(ctx).
		Where("kind = ? AND reference = ?", string(kind), reference).
		First(&entryModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, r.handleDatabaseError("finding wallet entry", result.Error, 0)
	}
	return r.entryToEntity(&entryModel), nil
}

// ListEntries returns the newest ledger lines of a user
func (r *WalletRepository) ListEntries(ctx context.Context, userID uint64, limit int) ([]*entity.WalletEntry, error) {
	var models []model.WalletEntry
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing wallet entries", result.Error, userID)
	}

	entries := make([]*entity.WalletEntry, 0, len(models))
	for i := range models {
		entries = append(entries, r.entryToEntity(&models[i]))
	}
	return entries, nil
}

// handleDatabaseError standardizes database error handling
func (r *WalletRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	r.logger.Error("Database error when "+operation, map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})
	return pgerr.Wrap("wallet", err)
}
