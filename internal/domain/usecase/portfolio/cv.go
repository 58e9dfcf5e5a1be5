package portfolio

import (
	"context"
	"io"

	errs "github.com/guidy-app/joblight/internal/domain/error"
	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/domain/port/persistence"
	"github.com/guidy-app/joblight/internal/domain/port/render"
	"github.com/guidy-app/joblight/internal/domain/port/usecase"
)

// CVService renders CV previews
type CVService struct {
	users    persistence.UserRepository
	cvs      persistence.CVRepository
	renderer render.CVRenderer
	logger   coreport.Logger
}

// NewCVService creates a new CVService
func NewCVService(users persistence.UserRepository, cvs persistence.CVRepository, renderer render.CVRenderer, logger coreport.Logger) *CVService {
	return &CVService{users: users, cvs: cvs, renderer: renderer, logger: logger}
}

// Templates returns the template catalogue
func (s *CVService) Templates() []render.TemplateInfo {
	return s.renderer.Templates()
}

// Preview writes the HTML rendering of a user's CV
func (s *CVService) Preview(ctx context.Context, w io.Writer, userID uint64, template, pageSize string) error {
	if userID == 0 {
		return errs.ErrInvalidUserID
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	cv, err := s.cvs.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.renderer.Render(w, template, pageSize, processCV(cv, user)); err != nil {
		s.logger.Warn("CV preview failed", map[string]any{
			"user_id":  userID,
			"template": template,
			"error":    err.Error(),
		})
		return err
	}
	return nil
}

var _ usecase.CVUseCase = (*CVService)(nil)
