package database

import (
	"context"
	"fmt"

	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/domain/port/persistence"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/database/migration"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Manager manages database connections
type Manager struct {
	config       *Config
	db           *gorm.DB
	logger       coreport.Logger
	pool         *poolWatcher
	timeProvider coreport.TimeProvider
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Connect opens the pool. Unreachable servers are retried RetryAttempts times
// RetryDelay apart; rejected credentials fail at once.
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"host":   m.config.Host,
		"port":   m.config.Port,
		"name":   m.config.Database,
	})

	connectRetry := backoff{attempts: max(m.config.RetryAttempts, 1), base: m.config.RetryDelay, max: m.config.RetryDelay}

	var gormDB *gorm.DB
	err := retry(ctx, connectRetry, m.logger, "connect", func() error {
		var openErr error
		gormDB, openErr = gorm.Open(postgres.Open(m.config.DSN()), &gorm.Config{
			Logger:      NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel),
			NowFunc:     m.timeProvider.Now,
			PrepareStmt: true,
		})
		return openErr
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	m.logger.Info("Successfully connected to database", map[string]any{
		"host":            m.config.Host,
		"name":            m.config.Database,
		"max_open_conns":  m.config.MaxOpenConns,
		"max_idle_conns":  m.config.MaxIdleConns,
		"query_timeout_s": m.config.QueryTimeout.Seconds(),
	})

	m.db = gormDB
	m.pool = newPoolWatcher(sqlDB, m.logger, m.timeProvider)
	m.pool.start(poolSampleInterval)

	return m.db, nil
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close closes the database connection
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.pool != nil {
		m.pool.close()
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	return sqlDB.Close()
}

// Migrate brings the schema up to date
func (m *Manager) Migrate(ctx context.Context) error {
	return migration.NewMigrationManager(m.db, m.logger, m.timeProvider).MigrateAll(ctx)
}

// SeedDemoData inserts development fixtures
func (m *Manager) SeedDemoData(ctx context.Context) error {
	return migration.SeedDemoData(ctx, m.db, m.logger, m.timeProvider)
}

// Health reports database reachability
func (m *Manager) Health(ctx context.Context) HealthStatus {
	if m.pool == nil {
		return HealthStatus{Error: "not connected"}
	}
	return m.pool.health(ctx)
}

// CreateUnitOfWork creates a new UnitOfWork instance
func (m *Manager) CreateUnitOfWork() persistence.UnitOfWork {
	return NewUnitOfWork(m.db, m.logger, m.timeProvider)
}

// UserRepository returns a repository over the shared users table
func (m *Manager) UserRepository() persistence.UserRepository {
	return repository.NewUserRepository(m.db, m.logger)
}

// CVRepository returns a repository over the CV documents
func (m *Manager) CVRepository() persistence.CVRepository {
	return repository.NewCVRepository(m.db, m.logger)
}

// PortfolioRepository returns a repository over portfolio settings
func (m *Manager) PortfolioRepository() persistence.PortfolioRepository {
	return repository.NewPortfolioRepository(m.db, m.logger)
}
