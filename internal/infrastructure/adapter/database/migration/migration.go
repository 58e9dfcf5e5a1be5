package migration

import (
	"context"
	"errors"
	"fmt"

	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// step is one schema change. Applied steps are recorded in migration_versions
// and never run again.
type step struct {
	version string
	details string
	run     func(ctx context.Context) error
}

// MigrationManager brings the schema to the latest step
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

func (m *MigrationManager) steps() []step {
	return []step{
		// tables themselves come from AutoMigrate, which runs before any pending step
		{version: "1.0.0", details: "Base schema"},
		{version: "1.1.0", details: "Settled flag on transactions", run: NewBackfillSettlement(m.db, m.logger).Run},
		{version: "1.2.0", details: "Partial and BRIN indexes", run: m.createIndexes},
	}
}

// pendingSteps returns the steps after current. An unknown current version
// means the database was migrated by a newer build.
func pendingSteps(all []step, current string) ([]step, error) {
	if current == "" {
		return all, nil
	}
	for i, s := range all {
		if s.version == current {
			return all[i+1:], nil
		}
	}
	return nil, fmt.Errorf("database schema version %q is unknown to this build", current)
}

// MigrateAll applies every pending step
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	db := m.db.WithContext(ctx)
	if err := db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		return fmt.Errorf("create migration_versions: %w", err)
	}

	current, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	pending, err := pendingSteps(m.steps(), current)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		m.logger.Info("Database schema is up to date", map[string]any{"version": current})
		return nil
	}

	m.logger.Info("Migrating database schema", map[string]any{
		"from":    current,
		"to":      pending[len(pending)-1].version,
		"pending": len(pending),
	})

	if err := m.autoMigrateModels(db); err != nil {
		return fmt.Errorf("auto-migrate models: %w", err)
	}

	for _, s := range pending {
		if s.run != nil {
			if err := s.run(ctx); err != nil {
				m.logger.Error("Migration step failed", map[string]any{
					"version": s.version,
					"error":   err.Error(),
				})
				return fmt.Errorf("migration %s: %w", s.version, err)
			}
		}
		if err := m.setVersion(ctx, s.version, s.details); err != nil {
			return fmt.Errorf("record migration %s: %w", s.version, err)
		}
		m.logger.Info("Applied migration step", map[string]any{
			"version": s.version,
			"details": s.details,
		})
	}

	m.tuneStorage(ctx)
	return nil
}

// GetCurrentVersion returns the last applied step, "" on an empty database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	var version model.MigrationVersion
	err := m.db.WithContext(ctx).Order("applied_at desc, id desc").First(&version).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return version.Version, nil
}

func (m *MigrationManager) setVersion(ctx context.Context, version, details string) error {
	return m.db.WithContext(ctx).Create(&model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}).Error
}

// autoMigrateModels creates or widens every table.
// users and cv_documents belong to the account service; they are only created here for standalone deployments.
func (m *MigrationManager) autoMigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.CVDocument{},
		&model.Transaction{},
		&model.Wallet{},
		&model.WalletEntry{},
		&model.Portfolio{},
		&model.PortfolioStats{},
		&model.ShareEvent{},
		&model.Section{},
		&model.WebhookEvent{},
	)
}
