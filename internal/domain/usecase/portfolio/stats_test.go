package portfolio

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
)

func TestStatsService_RecordShare(t *testing.T) {
	ctx := context.Background()

	t.Run("should increment total and platform shares by exactly one", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.expectUnitOfWork()
		svc := f.statsService()

		current := &entity.PortfolioStats{
			UserID:           7,
			Views:            147,
			Shares:           23,
			SharesByPlatform: map[entity.SharePlatform]int64{entity.PlatformLinkedIn: 5},
		}
		f.stats.EXPECT().GetForUpdate(mock.Anything, uint64(7)).Return(current, nil).Once()
		f.ids.EXPECT().NewID().Return("evt-1").Once()
		f.stats.EXPECT().AddShareEvent(mock.Anything, mock.MatchedBy(func(e *entity.ShareEvent) bool {
			return e.ID == "evt-1" && e.Platform == entity.PlatformLinkedIn && e.CreatedAt.Equal(fixedTime)
		})).Return(nil).Once()
		f.stats.EXPECT().Save(mock.Anything, current).Return(nil).Once()

		// Act
		stats, err := svc.RecordShare(ctx, 7, "LinkedIn", map[string]any{"source": "dashboard"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(24), stats.Shares)
		assert.Equal(t, int64(6), stats.SharesByPlatform[entity.PlatformLinkedIn])
		assert.Equal(t, int64(147), stats.Views)
	})

	t.Run("should reject an unknown platform before touching storage", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		svc := f.statsService()

		// Act
		stats, err := svc.RecordShare(ctx, 7, "myspace", nil)

		// Assert
		assert.Nil(t, stats)
		assert.ErrorIs(t, err, errs.ErrInvalidPlatform)
	})

	t.Run("should roll back when the event cannot be stored", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.uow.EXPECT().Begin(mock.Anything).RunAndReturn(func(ctx context.Context) (context.Context, error) {
			return ctx, nil
		}).Once()
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()
		svc := f.statsService()

		f.stats.EXPECT().GetForUpdate(mock.Anything, uint64(7)).Return(entity.NewPortfolioStats(7), nil).Once()
		f.ids.EXPECT().NewID().Return("evt-2").Once()
		f.stats.EXPECT().AddShareEvent(mock.Anything, mock.Anything).Return(errs.ErrDatabaseConnection).Once()

		// Act
		_, err := svc.RecordShare(ctx, 7, "whatsapp", nil)

		// Assert
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestStatsService_RecordView(t *testing.T) {
	ctx := context.Background()

	t.Run("should count a first visit as unique", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.expectUnitOfWork()
		svc := f.statsService()

		current := entity.NewPortfolioStats(7)
		f.portfolios.EXPECT().GetBySlug(mock.Anything, "amina-ngono").Return(publicPortfolio(), nil).Once()
		f.users.EXPECT().GetByID(mock.Anything, uint64(7)).Return(amina(), nil).Once()
		f.tracker.EXPECT().MarkViewed(mock.Anything, uint64(7), "visitor-a", fixedTime).Return(true, nil).Once()
		f.stats.EXPECT().GetForUpdate(mock.Anything, uint64(7)).Return(current, nil).Once()
		f.stats.EXPECT().Save(mock.Anything, current).Return(nil).Once()

		// Act
		stats, err := svc.RecordView(ctx, "amina-ngono", "visitor-a", 0)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.Views)
		assert.Equal(t, int64(1), stats.UniqueViews)
		require.NotNil(t, stats.LastViewedAt)
		assert.True(t, stats.LastViewedAt.Equal(fixedTime))
		assert.True(t, stats.IsPublic)
	})

	t.Run("should count a repeat visit as a plain view", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.expectUnitOfWork()
		svc := f.statsService()

		current := &entity.PortfolioStats{UserID: 7, Views: 10, UniqueViews: 4}
		f.portfolios.EXPECT().GetBySlug(mock.Anything, "amina-ngono").Return(publicPortfolio(), nil).Once()
		f.users.EXPECT().GetByID(mock.Anything, uint64(7)).Return(amina(), nil).Once()
		f.tracker.EXPECT().MarkViewed(mock.Anything, uint64(7), "visitor-a", fixedTime).Return(false, nil).Once()
		f.stats.EXPECT().GetForUpdate(mock.Anything, uint64(7)).Return(current, nil).Once()
		f.stats.EXPECT().Save(mock.Anything, current).Return(nil).Once()

		// Act
		stats, err := svc.RecordView(ctx, "amina-ngono", "visitor-a", 0)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(11), stats.Views)
		assert.Equal(t, int64(4), stats.UniqueViews)
	})

	t.Run("should still count the view when the tracker is down", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.expectUnitOfWork()
		svc := f.statsService()

		current := entity.NewPortfolioStats(7)
		f.portfolios.EXPECT().GetBySlug(mock.Anything, "amina-ngono").Return(publicPortfolio(), nil).Once()
		f.users.EXPECT().GetByID(mock.Anything, uint64(7)).Return(amina(), nil).Once()
		f.tracker.EXPECT().MarkViewed(mock.Anything, uint64(7), "visitor-a", fixedTime).
			Return(false, errors.New("redis: connection refused")).Once()
		f.stats.EXPECT().GetForUpdate(mock.Anything, uint64(7)).Return(current, nil).Once()
		f.stats.EXPECT().Save(mock.Anything, current).Return(nil).Once()

		// Act
		stats, err := svc.RecordView(ctx, "amina-ngono", "visitor-a", 0)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.Views)
		assert.Equal(t, int64(0), stats.UniqueViews)
	})

	t.Run("should not count the owner's own view", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		svc := f.statsService()

		f.portfolios.EXPECT().GetBySlug(mock.Anything, "amina-ngono").Return(publicPortfolio(), nil).Once()
		f.users.EXPECT().GetByID(mock.Anything, uint64(7)).Return(amina(), nil).Once()
		f.stats.EXPECT().Get(mock.Anything, uint64(7)).Return(&entity.PortfolioStats{UserID: 7, Views: 3}, nil).Once()

		// Act
		stats, err := svc.RecordView(ctx, "amina-ngono", "visitor-a", 7)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.Views)
	})

	t.Run("should hide a private portfolio", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		svc := f.statsService()

		private := publicPortfolio()
		private.IsPublic = false
		f.portfolios.EXPECT().GetBySlug(mock.Anything, "amina-ngono").Return(private, nil).Once()
		f.users.EXPECT().GetByID(mock.Anything, uint64(7)).Return(amina(), nil).Once()

		// Act
		_, err := svc.RecordView(ctx, "amina-ngono", "visitor-a", 0)

		// Assert
		assert.ErrorIs(t, err, errs.ErrPortfolioNotFound)
	})
}

func TestStatsService_GetStats(t *testing.T) {
	ctx := context.Background()

	t.Run("should report visibility from the portfolio", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		svc := f.statsService()

		private := publicPortfolio()
		private.IsPublic = false
		f.portfolios.EXPECT().GetByUserID(mock.Anything, uint64(7)).Return(private, nil).Once()
		f.stats.EXPECT().Get(mock.Anything, uint64(7)).Return(&entity.PortfolioStats{UserID: 7, Views: 147, Shares: 23}, nil).Once()

		// Act
		stats, err := svc.GetStats(ctx, 7)

		// Assert
		require.NoError(t, err)
		assert.False(t, stats.IsPublic)
		assert.Equal(t, int64(147), stats.Views)
		assert.Equal(t, int64(23), stats.Shares)
	})

	t.Run("should treat a user without portfolio as public", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		svc := f.statsService()

		f.portfolios.EXPECT().GetByUserID(mock.Anything, uint64(9)).Return(nil, errs.ErrPortfolioNotFound).Once()
		f.stats.EXPECT().Get(mock.Anything, uint64(9)).Return(entity.NewPortfolioStats(9), nil).Once()

		// Act
		stats, err := svc.GetStats(ctx, 9)

		// Assert
		require.NoError(t, err)
		assert.True(t, stats.IsPublic)
	})

	t.Run("should reject a zero user id", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.statsService().GetStats(ctx, 0)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}
