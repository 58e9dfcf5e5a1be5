package portfolio

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
	"github.com/guidy-app/joblight/internal/domain/port/usecase"
)

func TestService_Build(t *testing.T) {
	ctx := context.Background()

	t.Run("should fill the CV from the account and enable sections with data", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		svc := f.portfolioService()

		hidden := false
		portfolio := publicPortfolio()
		portfolio.Design = "neon"
		portfolio.Settings.ShowHobbies = &hidden

		f.users.EXPECT().GetByUsername(mock.Anything, "amina").Return(amina(), nil).Once()
		f.portfolios.EXPECT().GetBySlug(mock.Anything, "amina").Return(nil, errs.ErrPortfolioNotFound).Once()
		f.portfolios.EXPECT().GetByUserID(mock.Anything, uint64(7)).Return(portfolio, nil).Once()
		f.cvs.EXPECT().GetByUserID(mock.Anything, uint64(7)).Return(&entity.CVData{
			Professions: []entity.Profession{{Name: "Data Analyst"}},
			Experiences: []entity.Experience{{Title: "Analyst", Company: "MTN"}},
			Summaries:   []entity.Summary{{Text: "Numbers   person."}},
			Hobbies:     []entity.Hobby{{Name: "Chess"}},
		}, nil).Once()
		active, inactive := sectionsOf(1, 0)[0], sectionsOf(1, 0)[1]
		inactive.ID = 5
		inactive.IsActive = false
		f.sections.EXPECT().ListByUser(mock.Anything, uint64(7), entity.SectionCustom).Return([]*entity.Section{active, inactive}, nil).Once()
		f.sections.EXPECT().ListByUser(mock.Anything, uint64(7), entity.SectionService).Return(nil, nil).Once()
		f.stats.EXPECT().Get(mock.Anything, uint64(7)).Return(entity.NewPortfolioStats(7), nil).Once()

		// Act
		page, err := svc.Build(ctx, "amina")

		// Assert
		require.NoError(t, err)
		info := page.CV.PersonalInformation
		assert.Equal(t, "Amina", info.FirstName)
		assert.Equal(t, "Ngono", info.LastName)
		assert.Equal(t, "amina@example.cm", info.Email)
		assert.Equal(t, "https://cdn.joblight.test/u/7.jpg", info.PhotoURL)

		assert.True(t, page.Settings.ShowSummary)
		assert.True(t, page.Settings.ShowExperiences)
		assert.True(t, page.Settings.ShowContact)
		assert.False(t, page.Settings.ShowHobbies)
		assert.False(t, page.Settings.ShowCertifications)
		assert.False(t, page.Settings.ShowServices)

		assert.Equal(t, entity.DesignProfessional, page.Design)
		assert.Equal(t, []uint64{1}, ids(page.Sections))
		assert.Equal(t, "https://joblight.test/portfolio/amina-ngono", page.PublicURL)

		assert.Equal(t, "Amina Ngono - Data Analyst | JobLight", page.SEO.Title)
		assert.Equal(t, "Numbers person.", page.SEO.Description)
		assert.Equal(t, page.PublicURL, page.SEO.CanonicalURL)
		assert.Equal(t, "Person", page.SEO.JSONLD["@type"])
		assert.Equal(t, "Data Analyst", page.SEO.JSONLD["jobTitle"])
		assert.Equal(t, "profile", page.SEO.OpenGraph["og:type"])
	})

	t.Run("should resolve a numeric id to a default public portfolio", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		svc := f.portfolioService()

		f.users.EXPECT().GetByID(mock.Anything, uint64(7)).Return(amina(), nil).Once()
		f.portfolios.EXPECT().GetByUserID(mock.Anything, uint64(7)).Return(nil, errs.ErrPortfolioNotFound).Once()
		f.cvs.EXPECT().GetByUserID(mock.Anything, uint64(7)).Return(&entity.CVData{}, nil).Once()
		f.sections.EXPECT().ListByUser(mock.Anything, uint64(7), mock.Anything).Return(nil, nil).Twice()
		f.stats.EXPECT().Get(mock.Anything, uint64(7)).Return(entity.NewPortfolioStats(7), nil).Once()

		// Act
		page, err := svc.Build(ctx, "7")

		// Assert
		require.NoError(t, err)
		assert.True(t, page.Portfolio.IsPublic)
		assert.Equal(t, "https://joblight.test/portfolio/amina", page.PublicURL)
	})

	t.Run("should hide a private portfolio", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		svc := f.portfolioService()

		private := publicPortfolio()
		private.IsPublic = false
		f.portfolios.EXPECT().GetBySlug(mock.Anything, "amina-ngono").Return(private, nil).Once()
		f.users.EXPECT().GetByID(mock.Anything, uint64(7)).Return(amina(), nil).Once()

		// Act
		page, err := svc.Build(ctx, "amina-ngono")

		// Assert
		assert.Nil(t, page)
		assert.ErrorIs(t, err, errs.ErrPortfolioNotFound)
	})

	t.Run("should report an unknown identifier as not found", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		svc := f.portfolioService()

		f.portfolios.EXPECT().GetBySlug(mock.Anything, "ghost").Return(nil, errs.ErrPortfolioNotFound).Once()
		f.users.EXPECT().GetByUsername(mock.Anything, "ghost").Return(nil, errs.ErrUserNotFound).Once()

		// Act
		_, err := svc.Build(ctx, "ghost")

		// Assert
		assert.ErrorIs(t, err, errs.ErrPortfolioNotFound)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	strPtr := func(s string) *string { return &s }

	t.Run("should save design and slug", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		svc := f.portfolioService()

		f.users.EXPECT().GetByID(mock.Anything, uint64(7)).Return(amina(), nil).Once()
		f.portfolios.EXPECT().GetByUserID(mock.Anything, uint64(7)).Return(publicPortfolio(), nil).Once()
		f.portfolios.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
		private := false

		// Act
		portfolio, err := svc.Update(ctx, 7, usecase.UpdatePortfolioInput{
			Design:   strPtr("Creative"),
			Slug:     strPtr("Amina-Data"),
			IsPublic: &private,
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, entity.DesignCreative, portfolio.Design)
		assert.Equal(t, "amina-data", portfolio.Slug)
		assert.False(t, portfolio.IsPublic)
		assert.Equal(t, fixedTime, portfolio.UpdatedAt)
	})

	tests := []struct {
		name  string
		in    usecase.UpdatePortfolioInput
		field string
	}{
		{name: "should reject an unknown design", in: usecase.UpdatePortfolioInput{Design: strPtr("neon")}, field: "design"},
		{name: "should reject a short slug", in: usecase.UpdatePortfolioInput{Slug: strPtr("ab")}, field: "slug"},
		{name: "should reject a slug with spaces", in: usecase.UpdatePortfolioInput{Slug: strPtr("amina n")}, field: "slug"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			f := newFixture(t)
			svc := f.portfolioService()
			f.users.EXPECT().GetByID(mock.Anything, uint64(7)).Return(amina(), nil).Once()
			f.portfolios.EXPECT().GetByUserID(mock.Anything, uint64(7)).Return(publicPortfolio(), nil).Once()

			// Act
			_, err := svc.Update(ctx, 7, tt.in)

			// Assert
			var verr *errs.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}

	t.Run("should report a taken slug as a validation error", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		svc := f.portfolioService()
		f.users.EXPECT().GetByID(mock.Anything, uint64(7)).Return(amina(), nil).Once()
		f.portfolios.EXPECT().GetByUserID(mock.Anything, uint64(7)).Return(publicPortfolio(), nil).Once()
		f.portfolios.EXPECT().Save(mock.Anything, mock.Anything).Return(errs.ErrDuplicateReference).Once()

		// Act
		_, err := svc.Update(ctx, 7, usecase.UpdatePortfolioInput{Slug: strPtr("taken-slug")})

		// Assert
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestService_QRCode(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		size     int
		wantSize int
	}{
		{name: "should use the default size", size: 0, wantSize: DefaultQRSize},
		{name: "should raise a tiny size", size: 10, wantSize: MinQRSize},
		{name: "should cap a huge size", size: 5000, wantSize: MaxQRSize},
		{name: "should keep a valid size", size: 300, wantSize: 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			f := newFixture(t)
			svc := f.portfolioService()
			f.portfolios.EXPECT().GetBySlug(mock.Anything, "amina-ngono").Return(publicPortfolio(), nil).Once()
			f.users.EXPECT().GetByID(mock.Anything, uint64(7)).Return(amina(), nil).Once()
			f.qr.EXPECT().PNG("https://joblight.test/portfolio/amina-ngono", tt.wantSize).Return([]byte{0x89, 'P', 'N', 'G'}, nil).Once()

			// Act
			png, err := svc.QRCode(ctx, "amina-ngono", tt.size)

			// Assert
			require.NoError(t, err)
			assert.NotEmpty(t, png)
		})
	}
}
