package repository

import (
	"context"
	"errors"

	"github.com/guidy-app/joblight/internal/domain/entity"
	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/model"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/pgerr"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatsRepository implements StatsRepository interface using GORM
type StatsRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewStatsRepository creates a new StatsRepository instance
func NewStatsRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *StatsRepository {
	return &StatsRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func (r *StatsRepository) modelToEntity(m *model.PortfolioStats) *entity.PortfolioStats {
	stats := entity.NewPortfolioStats(m.UserID)
	stats.Views = m.Views
	stats.UniqueViews = m.UniqueViews
	stats.Shares = m.Shares
	stats.LastViewedAt = m.LastViewedAt
	for platform, count := range m.SharesByPlatform {
		stats.SharesByPlatform[entity.SharePlatform(platform)] = toInt64(count)
	}
	return stats
}

// toInt64 reads a JSON number that may have been decoded as float64
func toInt64(v any) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	}
	return 0
}

// Get returns the counters of a user, zeroed when none exist
func (r *StatsRepository) Get(ctx context.Context, userID uint64) (*entity.PortfolioStats, error) {
	var m model.PortfolioStats
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.NewPortfolioStats(userID), nil
		}
		return nil, r.handleDatabaseError("getting stats", err, userID)
	}
	return r.modelToEntity(&m), nil
}

// GetForUpdate locks the counters row of a user, creating it when missing
func (r *StatsRepository) GetForUpdate(ctx context.Context, userID uint64) (*entity.PortfolioStats, error) {
	seed := model.PortfolioStats{UserID: userID, UpdatedAt: r.timeProvider.Now()}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return nil, r.handleDatabaseError("creating stats", err, userID)
	}

	var m model.PortfolioStats
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&m).Error
	if err != nil {
		return nil, r.handleDatabaseError("locking stats", err, userID)
	}
	return r.modelToEntity(&m), nil
}

// Save persists the counters
func (r *StatsRepository) Save(ctx context.Context, stats *entity.PortfolioStats) error {
	byPlatform := datatypes.JSONMap{}
	for platform, count := range stats.SharesByPlatform {
		byPlatform[string(platform)] = count
	}

	m := model.PortfolioStats{
		UserID:           stats.UserID,
		Views:            stats.Views,
		UniqueViews:      stats.UniqueViews,
		Shares:           stats.Shares,
		SharesByPlatform: byPlatform,
		LastViewedAt:     stats.LastViewedAt,
		UpdatedAt:        r.timeProvider.Now(),
	}
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return r.handleDatabaseError("saving stats", err, stats.UserID)
	}
	return nil
}

// AddShareEvent appends a share event
func (r *StatsRepository) AddShareEvent(ctx context.Context, event *entity.ShareEvent) error {
	m := model.ShareEvent{
		ID:        event.ID,
		UserID:    event.UserID,
		Platform:  string(event.Platform),
		Metadata:  datatypes.JSONMap(event.Metadata),
		CreatedAt: event.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return r.handleDatabaseError("adding share event", err, event.UserID)
	}
	return nil
}

func (r *StatsRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	r.logger.Error("Database error when "+operation, map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})
	return pgerr.Wrap("portfolio stats", err)
}
