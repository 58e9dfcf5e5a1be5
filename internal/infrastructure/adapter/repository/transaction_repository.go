package repository

import (
	"context"
	"errors"
	"time"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/model"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/pgerr"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:                transaction.ID,
		Reference:         transaction.Reference,
		UserID:            transaction.UserID,
		Provider:          string(transaction.Provider),
		Purpose:           string(transaction.Purpose),
		Amount:            transaction.Amount,
		Currency:          string(transaction.Currency),
		Status:            string(transaction.Status),
		Phone:             transaction.Phone,
		ProviderReference: transaction.ProviderReference,
		PaymentURL:        transaction.PaymentURL,
		Description:       transaction.Description,
		Metadata:          datatypes.JSONMap(transaction.Metadata),
		FailureReason:     transaction.FailureReason,
		Settled:           transaction.Settled,
		CreatedAt:         transaction.CreatedAt,
		UpdatedAt:         transaction.UpdatedAt,
		CompletedAt:       transaction.CompletedAt,
		ExpiresAt:         transaction.ExpiresAt,
	}
}

// modelToEntity converts a database model to a transaction entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	metadata := map[string]any(m.Metadata)
	if metadata == nil {
		metadata = map[string]any{}
	}
	return &entity.Transaction{
		ID:                m.ID,
		Reference:         m.Reference,
		UserID:            m.UserID,
		Provider:          entity.ProviderName(m.Provider),
		Purpose:           entity.Purpose(m.Purpose),
		Amount:            m.Amount,
		Currency:          entity.Currency(m.Currency),
		Status:            entity.TransactionStatus(m.Status),
		Phone:             m.Phone,
		ProviderReference: m.ProviderReference,
		PaymentURL:        m.PaymentURL,
		Description:       m.Description,
		Metadata:          metadata,
		FailureReason:     m.FailureReason,
		Settled:           m.Settled,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
		CompletedAt:       m.CompletedAt,
		ExpiresAt:         m.ExpiresAt,
	}
}

// Create saves a new transaction
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Creating transaction", map[string]any{
		"reference": transaction.Reference,
		"user_id":   transaction.UserID,
		"provider":  transaction.Provider,
	})

	transactionModel := r.entityToModel(transaction)
	result := r.db.WithContext(ctx).Create(&transactionModel)

	if result.Error != nil {
		if pgerr.IsDuplicate(result.Error) {
			r.logger.Warn("Duplicate transaction reference", map[string]any{
				"reference": transaction.Reference,
			})
			return errs.ErrDuplicateReference
		}

		r.logger.Error("Failed to create transaction", map[string]any{
			"reference": transaction.Reference,
			"user_id":   transaction.UserID,
			"error":     result.Error.Error(),
		})
		return pgerr.Wrap("transaction", result.Error)
	}

	transaction.ID = transactionModel.ID
	r.logger.Info("Transaction created successfully", map[string]any{
		"reference": transaction.Reference,
		"id":        transaction.ID,
	})
	return nil
}

// Update persists status, checkout and settlement fields
func (r *TransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Updating transaction", map[string]any{
		"reference": transaction.Reference,
		"status":    transaction.Status,
	})

	m := r.entityToModel(transaction)
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("reference = ?", transaction.Reference).
		Updates(map[string]interface{}{
			"status":             m.Status,
			"provider_reference": m.ProviderReference,
			"payment_url":        m.PaymentURL,
			"metadata":           m.Metadata,
			"failure_reason":     m.FailureReason,
			"settled":            m.Settled,
			"updated_at":         m.UpdatedAt,
			"completed_at":       m.CompletedAt,
			"expires_at":         m.ExpiresAt,
		})

	if result.Error != nil {
		r.logger.Error("Failed to update transaction", map[string]any{
			"reference": transaction.Reference,
			"error":     result.Error.Error(),
		})
		return pgerr.Wrap("transaction", result.Error)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Transaction not found during update", map[string]any{
			"reference": transaction.Reference,
		})
		return errs.ErrTransactionNotFound
	}

	return nil
}

// GetByReference retrieves a transaction by its merchant reference
func (r *TransactionRepository) GetByReference(ctx context.Context, reference string) (*entity.Transaction, error) {
	return r.first(ctx, r.db.WithContext(ctx).Where("reference = ?", reference), "reference", reference)
}

// GetByReferenceForUpdate retrieves a transaction and locks its row
func (r *TransactionRepository) GetByReferenceForUpdate(ctx context.Context, reference string) (*entity.Transaction, error) {
	query := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("reference = ?", reference)
	return r.first(ctx, query, "reference", reference)
}

// GetByProviderReference retrieves a transaction by the provider-side id
func (r *TransactionRepository) GetByProviderReference(ctx context.Context, provider entity.ProviderName, providerReference string) (*entity.Transaction, error) {
	query := r.db.WithContext(ctx).
		Where("provider = ? AND provider_reference = ?", string(provider), providerReference)
	return r.first(ctx, query, "provider_reference", providerReference)
}

func (r *TransactionRepository) first(ctx context.Context, query *gorm.DB, key, value string) (*entity.Transaction, error) {
	var transactionModel model.Transaction
	result := query.First(&transactionModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}

		r.logger.Error("Failed to get transaction", map[string]any{
			key:     value,
			"error": result.Error.Error(),
		})
		return nil, pgerr.Wrap("transaction", result.Error)
	}

	return r.modelToEntity(&transactionModel), nil
}

// ListPending returns pending transactions created before olderThan, oldest first
func (r *TransactionRepository) ListPending(ctx context.Context, olderThan time.Time, limit int) ([]*entity.Transaction, error) {
	var models []model.Transaction
	result := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", string(entity.StatusPending), olderThan).
		Order("created_at ASC").
		Limit(limit).
		Find(&models)

	if result.Error != nil {
		r.logger.Error("Failed to list pending transactions", map[string]any{
			"older_than": olderThan,
			"error":      result.Error.Error(),
		})
		return nil, pgerr.Wrap("transaction", result.Error)
	}

	transactions := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, r.modelToEntity(&models[i]))
	}
	return transactions, nil
}
