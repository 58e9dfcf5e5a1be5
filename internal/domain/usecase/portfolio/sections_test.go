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

func methodsCalled(calls []mock.Call) []string {
	out := make([]string, 0, len(calls))
	for _, c := range calls {
		out = append(out, c.Method)
	}
	return out
}

func orderOf(sections []*entity.Section) []int {
	out := make([]int, 0, len(sections))
	for _, s := range sections {
		out = append(out, s.OrderIndex)
	}
	return out
}

func TestSectionService_Move(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		id        uint64
		dir       entity.Direction
		wantOrder []uint64
	}{
		{name: "should swap with the previous item", id: 2, dir: entity.DirectionUp, wantOrder: []uint64{2, 1, 3}},
		{name: "should swap with the next item", id: 2, dir: entity.DirectionDown, wantOrder: []uint64{1, 3, 2}},
		{name: "should keep the first item in place when moved up", id: 1, dir: entity.DirectionUp, wantOrder: []uint64{1, 2, 3}},
		{name: "should keep the last item in place when moved down", id: 3, dir: entity.DirectionDown, wantOrder: []uint64{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			f := newFixture(t)
			f.expectUnitOfWork()
			svc := f.sectionService()

			// sparse indexes left behind by older writes
			all := sectionsOf(0, 4, 9)
			f.sections.EXPECT().GetByID(mock.Anything, tt.id).Return(all[tt.id-1], nil).Once()
			f.sections.EXPECT().ListByUser(mock.Anything, uint64(7), entity.SectionCustom).Return(all, nil).Once()
			f.sections.EXPECT().UpdateOrder(mock.Anything, mock.Anything).Return(nil).Once()

			// Act
			ordered, err := svc.Move(ctx, 7, tt.id, tt.dir)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.wantOrder, ids(ordered))
			assert.Equal(t, []int{0, 1, 2}, orderOf(ordered))
		})
	}

	t.Run("should hide sections of another user", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.expectUnitOfWork()
		svc := f.sectionService()

		foreign := sectionsOf(0)[0]
		foreign.UserID = 99
		f.sections.EXPECT().GetByID(mock.Anything, uint64(1)).Return(foreign, nil).Once()

		// Act
		_, err := svc.Move(ctx, 7, 1, entity.DirectionDown)

		// Assert
		assert.ErrorIs(t, err, errs.ErrSectionNotFound)
	})

	t.Run("should reject an unknown direction", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.expectUnitOfWork()
		svc := f.sectionService()

		all := sectionsOf(0, 1)
		f.sections.EXPECT().GetByID(mock.Anything, uint64(1)).Return(all[0], nil).Once()
		f.sections.EXPECT().ListByUser(mock.Anything, uint64(7), entity.SectionCustom).Return(all, nil).Once()

		// Act
		_, err := svc.Move(ctx, 7, 1, entity.Direction("sideways"))

		// Assert
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestSectionService_Reorder(t *testing.T) {
	ctx := context.Background()

	t.Run("should persist the client order densely", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.expectUnitOfWork()
		svc := f.sectionService()

		all := sectionsOf(0, 1, 2)
		f.sections.EXPECT().ListByUser(mock.Anything, uint64(7), entity.SectionCustom).Return(all, nil).Once()
		f.sections.EXPECT().UpdateOrder(mock.Anything, mock.MatchedBy(func(s []*entity.Section) bool {
			return len(s) == 3 && s[0].ID == 3 && s[0].OrderIndex == 0
		})).Return(nil).Once()

		// Act
		ordered, err := svc.Reorder(ctx, 7, entity.SectionCustom, []uint64{3, 1, 2})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []uint64{3, 1, 2}, ids(ordered))
		assert.Equal(t, []int{0, 1, 2}, orderOf(ordered))
	})

	tests := []struct {
		name string
		ids  []uint64
	}{
		{name: "should reject a missing id", ids: []uint64{1, 2}},
		{name: "should reject a repeated id", ids: []uint64{1, 1, 2}},
		{name: "should reject a foreign id", ids: []uint64{1, 2, 42}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			f := newFixture(t)
			f.expectUnitOfWork()
			svc := f.sectionService()

			f.sections.EXPECT().ListByUser(mock.Anything, uint64(7), entity.SectionCustom).Return(sectionsOf(0, 1, 2), nil).Once()

			// Act
			_, err := svc.Reorder(ctx, 7, entity.SectionCustom, tt.ids)

			// Assert
			assert.ErrorIs(t, err, errs.ErrValidation)
		})
	}
}

func TestSectionService_CreateAndDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("should append a new section at the end", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.expectUnitOfWork()
		svc := f.sectionService()

		f.sections.EXPECT().ListByUser(mock.Anything, uint64(7), entity.SectionService).Return(sectionsOf(0, 1), nil).Once()
		f.sections.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, s *entity.Section) error {
			s.ID = 10
			return nil
		}).Once()

		// Act
		section, err := svc.Create(ctx, 7, usecase.SectionInput{
			Kind:    entity.SectionService,
			Title:   "  CV review  ",
			Content: "One hour call",
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, uint64(10), section.ID)
		assert.Equal(t, 2, section.OrderIndex)
		assert.Equal(t, "CV review", section.Title)
		assert.True(t, section.IsActive)
	})

	t.Run("should lock the list and repair its order before appending", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.expectUnitOfWork()
		svc := f.sectionService()

		existing := sectionsOf(0, 2)
		f.sections.EXPECT().ListByUser(mock.Anything, uint64(7), entity.SectionCustom).Return(existing, nil).Once()
		f.sections.EXPECT().UpdateOrder(mock.Anything, []*entity.Section{existing[1]}).Return(nil).Once()
		f.sections.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		// Act
		section, err := svc.Create(ctx, 7, usecase.SectionInput{Kind: entity.SectionCustom, Title: "Awards"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 2, section.OrderIndex)
		assert.Equal(t, 1, existing[1].OrderIndex)
		assert.Equal(t, []string{"LockList", "ListByUser", "UpdateOrder", "Create"}, methodsCalled(f.sections.Calls))
		f.sections.AssertCalled(t, "LockList", mock.Anything, uint64(7), entity.SectionCustom)
	})

	t.Run("should reject a section without title", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		svc := f.sectionService()

		// Act
		_, err := svc.Create(ctx, 7, usecase.SectionInput{Kind: entity.SectionCustom})

		// Assert
		var verr *errs.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "title")
	})

	t.Run("should close the gap left by a deleted section", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.expectUnitOfWork()
		svc := f.sectionService()

		all := sectionsOf(0, 1, 2)
		rest := []*entity.Section{all[0], all[2]}
		f.sections.EXPECT().GetByID(mock.Anything, uint64(2)).Return(all[1], nil).Once()
		f.sections.EXPECT().Delete(mock.Anything, uint64(2)).Return(nil).Once()
		f.sections.EXPECT().ListByUser(mock.Anything, uint64(7), entity.SectionCustom).Return(rest, nil).Once()
		f.sections.EXPECT().UpdateOrder(mock.Anything, []*entity.Section{all[2]}).Return(nil).Once()

		// Act
		err := svc.Delete(ctx, 7, 2)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 1, all[2].OrderIndex)
	})
}

func TestSectionService_Toggle(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newFixture(t)
	f.expectUnitOfWork()
	svc := f.sectionService()

	section := sectionsOf(0)[0]
	f.sections.EXPECT().GetByID(mock.Anything, uint64(1)).Return(section, nil).Once()
	f.sections.EXPECT().Update(mock.Anything, section).Return(nil).Once()

	// Act
	toggled, err := svc.Toggle(ctx, 7, 1)

	// Assert
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)
	assert.Equal(t, fixedTime, toggled.UpdatedAt)
}
