package portfolio

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/guidy-app/joblight/internal/domain/entity"
	mockcache "github.com/guidy-app/joblight/mocks/port/cache"
	mockcore "github.com/guidy-app/joblight/mocks/port/core"
	mockpersistence "github.com/guidy-app/joblight/mocks/port/persistence"
	mockrender "github.com/guidy-app/joblight/mocks/port/render"
)

var fixedTime = time.Date(2024, 6, 3, 14, 0, 0, 0, time.UTC)

// fixture bundles the mocked dependencies of the portfolio services
type fixture struct {
	uow        *mockpersistence.MockUnitOfWork
	users      *mockpersistence.MockUserRepository
	cvs        *mockpersistence.MockCVRepository
	portfolios *mockpersistence.MockPortfolioRepository
	stats      *mockpersistence.MockStatsRepository
	sections   *mockpersistence.MockSectionRepository
	tracker    *mockcache.MockViewTracker
	qr         *mockrender.MockQREncoder
	renderer   *mockrender.MockCVRenderer
	ids        *mockcore.MockIDGenerator
	clock      *mockcore.MockTimeProvider
	logger     *mockcore.MockLogger
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		uow:        mockpersistence.NewMockUnitOfWork(t),
		users:      mockpersistence.NewMockUserRepository(t),
		cvs:        mockpersistence.NewMockCVRepository(t),
		portfolios: mockpersistence.NewMockPortfolioRepository(t),
		stats:      mockpersistence.NewMockStatsRepository(t),
		sections:   mockpersistence.NewMockSectionRepository(t),
		tracker:    mockcache.NewMockViewTracker(t),
		qr:         mockrender.NewMockQREncoder(t),
		renderer:   mockrender.NewMockCVRenderer(t),
		ids:        mockcore.NewMockIDGenerator(t),
		clock:      mockcore.NewMockTimeProvider(t),
		logger:     newQuietLogger(t),
	}
	f.uow.EXPECT().GetStatsRepository(mock.Anything).Return(f.stats).Maybe()
	f.uow.EXPECT().GetSectionRepository(mock.Anything).Return(f.sections).Maybe()
	f.sections.EXPECT().LockList(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	f.clock.EXPECT().Now().Return(fixedTime).Maybe()
	return f
}

// expectUnitOfWork allows units of work to begin and either commit or roll back
func (f *fixture) expectUnitOfWork() {
	f.uow.EXPECT().Begin(mock.Anything).RunAndReturn(func(ctx context.Context) (context.Context, error) {
		return ctx, nil
	}).Maybe()
	f.uow.EXPECT().Commit(mock.Anything).Return(nil).Maybe()
	f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Maybe()
}

func (f *fixture) statsService() *StatsService {
	return NewStatsService(f.uow, f.users, f.portfolios, f.tracker, f.ids, f.clock, f.logger)
}

func (f *fixture) sectionService() *SectionService {
	return NewSectionService(f.uow, f.clock, f.logger)
}

func (f *fixture) portfolioService() *Service {
	return NewService(f.users, f.cvs, f.portfolios, f.uow, f.qr, f.clock, f.logger, Config{
		PublicBaseURL: "https://joblight.test/",
		SiteName:      "JobLight",
	})
}

func (f *fixture) cvService() *CVService {
	return NewCVService(f.users, f.cvs, f.renderer, f.logger)
}

func newQuietLogger(t *testing.T) *mockcore.MockLogger {
	logger := mockcore.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Return().Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Return().Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Return().Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Return().Maybe()
	return logger
}

func amina() *entity.User {
	return &entity.User{
		ID:       7,
		Name:     "Amina Ngono",
		Email:    "amina@example.cm",
		Phone:    "237670000001",
		Username: "amina",
		PhotoURL: "https://cdn.joblight.test/u/7.jpg",
	}
}

func publicPortfolio() *entity.Portfolio {
	p := entity.NewPortfolio(7, "amina-ngono", fixedTime.Add(-48*time.Hour))
	p.ID = 3
	return p
}

func sectionsOf(orders ...int) []*entity.Section {
	out := make([]*entity.Section, 0, len(orders))
	for i, order := range orders {
		out = append(out, &entity.Section{
			ID:         uint64(i + 1),
			UserID:     7,
			Kind:       entity.SectionCustom,
			Title:      "Section",
			OrderIndex: order,
			IsActive:   true,
		})
	}
	return out
}

func ids(sections []*entity.Section) []uint64 {
	out := make([]uint64, 0, len(sections))
	for _, s := range sections {
		out = append(out, s.ID)
	}
	return out
}
