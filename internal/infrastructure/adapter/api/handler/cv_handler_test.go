package handler

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	errs "github.com/guidy-app/joblight/internal/domain/error"
	"github.com/guidy-app/joblight/internal/domain/port/render"
	mockusecase "github.com/guidy-app/joblight/mocks/port/usecase"
)

func TestCVHandler_Preview(t *testing.T) {
	t.Run("should return the rendered HTML", func(t *testing.T) {
		// Arrange
		cvs := mockusecase.NewMockCVUseCase(t)
		h := NewCVHandler(cvs, noopLogger)
		router := newRouter(3)
		router.GET("/api/cv/preview/:template", h.Preview)

		cvs.EXPECT().Preview(mock.Anything, mock.Anything, uint64(3), "modern", "Letter").
			RunAndReturn(func(_ context.Context, w io.Writer, _ uint64, _, _ string) error {
				_, err := io.WriteString(w, "<html>cv</html>")
				return err
			}).Once()

		// Act
		w := perform(router, http.MethodGet, "/api/cv/preview/modern?page=Letter", "")

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Equal(t, "<html>cv</html>", w.Body.String())
	})

	t.Run("should answer 404 for an unknown template", func(t *testing.T) {
		// Arrange
		cvs := mockusecase.NewMockCVUseCase(t)
		h := NewCVHandler(cvs, noopLogger)
		router := newRouter(3)
		router.GET("/api/cv/preview/:template", h.Preview)

		cvs.EXPECT().Preview(mock.Anything, mock.Anything, uint64(3), "baroque", "").
			Return(errs.ErrTemplateNotFound).Once()

		// Act
		w := perform(router, http.MethodGet, "/api/cv/preview/baroque", "")

		// Assert
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	})
}

func TestCVHandler_Templates(t *testing.T) {
	// Arrange
	cvs := mockusecase.NewMockCVUseCase(t)
	h := NewCVHandler(cvs, noopLogger)
	router := newRouter(3)
	router.GET("/api/cv/templates", h.Templates)

	cvs.EXPECT().Templates().Return([]render.TemplateInfo{{Name: "classic"}, {Name: "modern"}, {Name: "minimal"}}).Once()

	// Act
	w := perform(router, http.MethodGet, "/api/cv/templates", "")

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	var templates []render.TemplateInfo
	decodeData(t, w, &templates)
	assert.Len(t, templates, 3)
}
