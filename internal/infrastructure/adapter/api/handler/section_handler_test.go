package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/guidy-app/joblight/internal/domain/entity"
	"github.com/guidy-app/joblight/internal/domain/port/usecase"
	mockusecase "github.com/guidy-app/joblight/mocks/port/usecase"
)

func TestSectionHandler_Kind(t *testing.T) {
	tests := []struct {
		segment string
		want    entity.SectionKind
	}{
		{segment: "sections", want: entity.SectionCustom},
		{segment: "custom-sections", want: entity.SectionCustom},
		{segment: "services", want: entity.SectionService},
		{segment: "custom", want: entity.SectionCustom},
	}

	for _, tt := range tests {
		t.Run(tt.segment, func(t *testing.T) {
			// Arrange
			sections := mockusecase.NewMockSectionUseCase(t)
			h := NewSectionHandler(sections, noopLogger)
			router := newRouter(3)
			router.GET("/api/portfolio/:kind", h.List)

			sections.EXPECT().List(mock.Anything, uint64(3), tt.want).Return([]*entity.Section{}, nil).Once()

			// Act
			w := perform(router, http.MethodGet, "/api/portfolio/"+tt.segment, "")

			// Assert
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}

	t.Run("should reject an unknown kind", func(t *testing.T) {
		// Arrange
		h := NewSectionHandler(mockusecase.NewMockSectionUseCase(t), noopLogger)
		router := newRouter(3)
		router.GET("/api/portfolio/:kind", h.List)

		// Act
		w := perform(router, http.MethodGet, "/api/portfolio/widgets", "")

		// Assert
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestSectionHandler_Create(t *testing.T) {
	t.Run("should create a service and answer 201", func(t *testing.T) {
		// Arrange
		sections := mockusecase.NewMockSectionUseCase(t)
		h := NewSectionHandler(sections, noopLogger)
		router := newRouter(3)
		router.POST("/api/portfolio/:kind", h.Create)

		sections.EXPECT().Create(mock.Anything, uint64(3), mock.MatchedBy(func(in usecase.SectionInput) bool {
			return in.Kind == entity.SectionService && in.Title == "Web design" && in.BackgroundColor == "#ffffff"
		})).Return(&entity.Section{ID: 11, Kind: entity.SectionService, Title: "Web design", OrderIndex: 2}, nil).Once()

		// Act
		w := perform(router, http.MethodPost, "/api/portfolio/services", `{"title":"Web design","background_color":"#ffffff"}`)

		// Assert
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("should reject a colour that is not hex", func(t *testing.T) {
		// Arrange
		h := NewSectionHandler(mockusecase.NewMockSectionUseCase(t), noopLogger)
		router := newRouter(3)
		router.POST("/api/portfolio/:kind", h.Create)

		// Act
		w := perform(router, http.MethodPost, "/api/portfolio/sections", `{"title":"About","text_color":"blue"}`)

		// Assert
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, decode(t, w).Errors, "text_color")
	})
}

func TestSectionHandler_Move(t *testing.T) {
	t.Run("should move a section and return the new order", func(t *testing.T) {
		// Arrange
		sections := mockusecase.NewMockSectionUseCase(t)
		h := NewSectionHandler(sections, noopLogger)
		router := newRouter(3)
		router.POST("/api/portfolio/:kind/:id/move", h.Move)

		sections.EXPECT().Move(mock.Anything, uint64(3), uint64(8), entity.DirectionUp).Return([]*entity.Section{
			{ID: 8, OrderIndex: 0},
			{ID: 7, OrderIndex: 1},
		}, nil).Once()

		// Act
		w := perform(router, http.MethodPost, "/api/portfolio/sections/8/move", `{"direction":"up"}`)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		var ordered []entity.Section
		decodeData(t, w, &ordered)
		assert.Equal(t, uint64(8), ordered[0].ID)
	})

	t.Run("should reject a sideways move", func(t *testing.T) {
		// Arrange
		h := NewSectionHandler(mockusecase.NewMockSectionUseCase(t), noopLogger)
		router := newRouter(3)
		router.POST("/api/portfolio/:kind/:id/move", h.Move)

		// Act
		w := perform(router, http.MethodPost, "/api/portfolio/sections/8/move", `{"direction":"left"}`)

		// Assert
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("should reject a non numeric id", func(t *testing.T) {
		// Arrange
		h := NewSectionHandler(mockusecase.NewMockSectionUseCase(t), noopLogger)
		router := newRouter(3)
		router.POST("/api/portfolio/:kind/:id/move", h.Move)

		// Act
		w := perform(router, http.MethodPost, "/api/portfolio/sections/abc/move", `{"direction":"up"}`)

		// Assert
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestSectionHandler_Reorder(t *testing.T) {
	t.Run("should pass the ids in the requested order", func(t *testing.T) {
		// Arrange
		sections := mockusecase.NewMockSectionUseCase(t)
		h := NewSectionHandler(sections, noopLogger)
		router := newRouter(3)
		router.PUT("/api/portfolio/:kind/order", h.Reorder)

		sections.EXPECT().Reorder(mock.Anything, uint64(3), entity.SectionCustom, []uint64{3, 1, 2}).
			Return([]*entity.Section{{ID: 3}, {ID: 1, OrderIndex: 1}, {ID: 2, OrderIndex: 2}}, nil).Once()

		// Act
		w := perform(router, http.MethodPut, "/api/portfolio/sections/order", `{"ids":[3,1,2]}`)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
