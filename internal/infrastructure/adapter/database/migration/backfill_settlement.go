package migration

import (
	"context"

	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"gorm.io/gorm"
)

// BackfillSettlement marks successful token purchases that already have a wallet credit as settled.
// Schemas before 1.1.0 had no settled column; AutoMigrate adds it with false for every row.
type BackfillSettlement struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewBackfillSettlement creates a new migration instance
func NewBackfillSettlement(db *gorm.DB, logger coreport.Logger) *BackfillSettlement {
	return &BackfillSettlement{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *BackfillSettlement) Run(ctx context.Context) error {
	m.logger.Info("Backfilling settled flag on transactions", nil)

	exists, err := m.columnExists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		if err := m.db.WithContext(ctx).Exec(`ALTER TABLE transactions ADD COLUMN settled BOOLEAN NOT NULL DEFAULT FALSE`).Error; err != nil {
			m.logger.Error("Failed to add settled column", map[string]any{"error": err.Error()})
			return err
		}
	}

	result := m.db.WithContext(ctx).Exec(`
		UPDATE transactions t SET settled = TRUE
		WHERE t.status = 'success'
		  AND t.settled = FALSE
		  AND EXISTS (
			SELECT 1 FROM wallet_entries e
			WHERE e.kind = 'credit' AND e.reference = t.reference
		  )
	`)
	if result.Error != nil {
		m.logger.Error("Failed to backfill settled flag", map[string]any{"error": result.Error.Error()})
		return result.Error
	}

	m.logger.Info("Backfilled settled flag", map[string]any{
		"rows": result.RowsAffected,
	})
	return nil
}

func (m *BackfillSettlement) columnExists(ctx context.Context) (bool, error) {
	var columns []struct {
		ColumnName string `gorm:"column:column_name"`
	}

	err := m.db.WithContext(ctx).Raw(`
		SELECT column_name
		FROM information_schema.columns
		WHERE table_name = 'transactions' AND column_name = 'settled'
	`).Scan(&columns).Error
	if err != nil {
		m.logger.Error("Failed to check column existence", map[string]any{"error": err.Error()})
		return false, err
	}

	return len(columns) > 0, nil
}
