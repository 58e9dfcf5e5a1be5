package portfolio

import (
	"context"
	"errors"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
	"github.com/guidy-app/joblight/internal/domain/port/cache"
	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/domain/port/persistence"
	"github.com/guidy-app/joblight/internal/domain/port/usecase"
)

// StatsService records and reads portfolio audience counters
type StatsService struct {
	resolver
	uow          persistence.UnitOfWork
	tracker      cache.ViewTracker
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewStatsService creates a new StatsService
func NewStatsService(
	uow persistence.UnitOfWork,
	users persistence.UserRepository,
	portfolios persistence.PortfolioRepository,
	tracker cache.ViewTracker,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *StatsService {
	return &StatsService{
		resolver:     resolver{users: users, portfolios: portfolios, timeProvider: timeProvider},
		uow:          uow,
		tracker:      tracker,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// RecordShare counts one share intent on a platform.
// It is recorded when the user triggers the share, whether or not the share completes.
func (s *StatsService) RecordShare(ctx context.Context, userID uint64, platform string, metadata map[string]any) (*entity.PortfolioStats, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	p, err := entity.ParseSharePlatform(platform)
	if err != nil {
		return nil, err
	}

	stats, err := s.update(ctx, userID, func(ctx context.Context, repo persistence.StatsRepository, stats *entity.PortfolioStats) error {
		stats.RecordShare(p)
		return repo.AddShareEvent(ctx, &entity.ShareEvent{
			ID:        s.idGenerator.NewID(),
			UserID:    userID,
			Platform:  p,
			Metadata:  metadata,
			CreatedAt: s.timeProvider.Now(),
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Portfolio shared", map[string]any{
		"user_id":  userID,
		"platform": string(p),
		"shares":   stats.Shares,
	})
	return stats, nil
}

// RecordView counts a visit of a public portfolio. Owners looking at their own page are not counted.
func (s *StatsService) RecordView(ctx context.Context, identifier, visitorKey string, viewerID uint64) (*entity.PortfolioStats, error) {
	user, portfolio, err := s.resolvePublic(ctx, identifier)
	if err != nil {
		return nil, err
	}

	if viewerID != 0 && viewerID == user.ID {
		return s.withVisibility(ctx, user.ID, portfolio)
	}

	now := s.timeProvider.Now()
	unique := false
	if visitorKey != "" {
		unique, err = s.tracker.MarkViewed(ctx, user.ID, visitorKey, now)
		if err != nil {
			s.logger.Warn("Failed to track unique view", map[string]any{
				"user_id": user.ID,
				"error":   err.Error(),
			})
			unique = false
		}
	}

	stats, err := s.update(ctx, user.ID, func(_ context.Context, _ persistence.StatsRepository, stats *entity.PortfolioStats) error {
		stats.RecordView(unique, now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	stats.IsPublic = portfolio.IsPublic
	return stats, nil
}

// GetStats returns the counters of a user's portfolio
func (s *StatsService) GetStats(ctx context.Context, userID uint64) (*entity.PortfolioStats, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	portfolio, err := s.portfolios.GetByUserID(ctx, userID)
	switch {
	case errors.Is(err, errs.ErrPortfolioNotFound):
		portfolio = entity.NewPortfolio(userID, "", s.timeProvider.Now())
	case err != nil:
		return nil, err
	}
	return s.withVisibility(ctx, userID, portfolio)
}

func (s *StatsService) withVisibility(ctx context.Context, userID uint64, portfolio *entity.Portfolio) (*entity.PortfolioStats, error) {
	stats, err := s.uow.GetStatsRepository(ctx).Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.IsPublic = portfolio.IsPublic
	return stats, nil
}

// update applies fn to the locked counters of a user and saves them
func (s *StatsService) update(
	ctx context.Context,
	userID uint64,
	fn func(ctx context.Context, repo persistence.StatsRepository, stats *entity.PortfolioStats) error,
) (stats *entity.PortfolioStats, err error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
				s.logger.Error("Failed to rollback stats update", map[string]any{"error": rbErr.Error()})
			}
		}
	}()

	repo := s.uow.GetStatsRepository(txCtx)
	stats, err = repo.GetForUpdate(txCtx, userID)
	if err != nil {
		return nil, err
	}
	if err = fn(txCtx, repo, stats); err != nil {
		return nil, err
	}
	if err = repo.Save(txCtx, stats); err != nil {
		return nil, err
	}
	if err = s.uow.Commit(txCtx); err != nil {
		return nil, err
	}
	return stats, nil
}

var _ usecase.StatsUseCase = (*StatsService)(nil)
