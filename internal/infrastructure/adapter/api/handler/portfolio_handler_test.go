package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
	"github.com/guidy-app/joblight/internal/domain/port/usecase"
	mockusecase "github.com/guidy-app/joblight/mocks/port/usecase"
)

func TestPortfolioHandler_Show(t *testing.T) {
	t.Run("should count an anonymous view and return the fresh stats", func(t *testing.T) {
		// Arrange
		portfolios := mockusecase.NewMockPortfolioUseCase(t)
		stats := mockusecase.NewMockStatsUseCase(t)
		h := NewPortfolioHandler(portfolios, stats, noopLogger)
		router := newRouter(0)
		router.GET("/portfolio/:identifier", h.Show)

		portfolios.EXPECT().Build(mock.Anything, "paul").Return(&usecase.PortfolioPage{
			Design: entity.DesignModern,
			Stats:  &entity.PortfolioStats{Views: 147},
		}, nil).Once()
		stats.EXPECT().RecordView(mock.Anything, "paul", mock.MatchedBy(func(key string) bool {
			return len(key) == 32
		}), uint64(0)).Return(&entity.PortfolioStats{Views: 148, UniqueViews: 12}, nil).Once()

		// Act
		w := perform(router, http.MethodGet, "/portfolio/paul", "")

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		var page usecase.PortfolioPage
		decodeData(t, w, &page)
		assert.Equal(t, int64(148), page.Stats.Views)
	})

	t.Run("should still serve the page when counting fails", func(t *testing.T) {
		// Arrange
		portfolios := mockusecase.NewMockPortfolioUseCase(t)
		stats := mockusecase.NewMockStatsUseCase(t)
		h := NewPortfolioHandler(portfolios, stats, noopLogger)
		router := newRouter(3)
		router.GET("/portfolio/:identifier", h.Show)

		portfolios.EXPECT().Build(mock.Anything, "paul").Return(&usecase.PortfolioPage{
			Stats: &entity.PortfolioStats{Views: 147},
		}, nil).Once()
		stats.EXPECT().RecordView(mock.Anything, "paul", mock.Anything, uint64(3)).
			Return(nil, errors.New("database is down")).Once()

		// Act
		w := perform(router, http.MethodGet, "/portfolio/paul", "")

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		var page usecase.PortfolioPage
		decodeData(t, w, &page)
		assert.Equal(t, int64(147), page.Stats.Views)
	})

	t.Run("should answer 404 for a private portfolio", func(t *testing.T) {
		// Arrange
		portfolios := mockusecase.NewMockPortfolioUseCase(t)
		stats := mockusecase.NewMockStatsUseCase(t)
		h := NewPortfolioHandler(portfolios, stats, noopLogger)
		router := newRouter(0)
		router.GET("/portfolio/:identifier", h.Show)

		portfolios.EXPECT().Build(mock.Anything, "hidden").Return(nil, errs.ErrPortfolioNotFound).Once()

		// Act
		w := perform(router, http.MethodGet, "/portfolio/hidden", "")

		// Assert
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPortfolioHandler_QRCode(t *testing.T) {
	t.Run("should return a PNG of the requested size", func(t *testing.T) {
		// Arrange
		portfolios := mockusecase.NewMockPortfolioUseCase(t)
		h := NewPortfolioHandler(portfolios, mockusecase.NewMockStatsUseCase(t), noopLogger)
		router := newRouter(0)
		router.GET("/portfolio/:identifier/qr", h.QRCode)

		png := []byte{0x89, 'P', 'N', 'G'}
		portfolios.EXPECT().QRCode(mock.Anything, "paul", 512).Return(png, nil).Once()

		// Act
		w := perform(router, http.MethodGet, "/portfolio/paul/qr?size=512", "")

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Equal(t, png, w.Body.Bytes())
	})
}

func TestPortfolioHandler_Share(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "known platform", body: `{"platform":"linkedin","metadata":{"url":"https://joblight.app/paul"}}`, wantStatus: http.StatusOK},
		{name: "unknown platform", body: `{"platform":"myspace"}`, err: errs.ErrInvalidPlatform, wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			stats := mockusecase.NewMockStatsUseCase(t)
			h := NewPortfolioHandler(mockusecase.NewMockPortfolioUseCase(t), stats, noopLogger)
			router := newRouter(3)
			router.POST("/api/portfolio/share", h.Share)

			var result *entity.PortfolioStats
			if tt.err == nil {
				result = &entity.PortfolioStats{Shares: 24}
			}
			stats.EXPECT().RecordShare(mock.Anything, uint64(3), mock.Anything, mock.Anything).Return(result, tt.err).Once()

			// Act
			w := perform(router, http.MethodPost, "/api/portfolio/share", tt.body)

			// Assert
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}

	t.Run("should require a platform", func(t *testing.T) {
		// Arrange
		h := NewPortfolioHandler(mockusecase.NewMockPortfolioUseCase(t), mockusecase.NewMockStatsUseCase(t), noopLogger)
		router := newRouter(3)
		router.POST("/api/portfolio/share", h.Share)

		// Act
		w := perform(router, http.MethodPost, "/api/portfolio/share", `{}`)

		// Assert
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestPortfolioHandler_Update(t *testing.T) {
	t.Run("should leave absent fields unset", func(t *testing.T) {
		// Arrange
		portfolios := mockusecase.NewMockPortfolioUseCase(t)
		h := NewPortfolioHandler(portfolios, mockusecase.NewMockStatsUseCase(t), noopLogger)
		router := newRouter(3)
		router.PUT("/portfolio", h.Update)

		portfolios.EXPECT().Update(mock.Anything, uint64(3), mock.MatchedBy(func(in usecase.UpdatePortfolioInput) bool {
			return in.Design != nil && *in.Design == "creative" && in.Slug == nil && in.IsPublic == nil && in.Settings == nil
		})).Return(&entity.Portfolio{UserID: 3, Design: entity.DesignCreative}, nil).Once()

		// Act
		w := perform(router, http.MethodPut, "/portfolio", `{"design":"creative"}`)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
