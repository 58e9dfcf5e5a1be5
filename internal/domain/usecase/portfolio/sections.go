package portfolio

import (
	"context"
	"strings"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/domain/port/persistence"
	"github.com/guidy-app/joblight/internal/domain/port/usecase"
)

const (
	maxSectionTitle   = 120
	maxSectionContent = 20000
)

// SectionService edits custom sections and services and keeps their order dense
type SectionService struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewSectionService creates a new SectionService
func NewSectionService(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *SectionService {
	return &SectionService{uow: uow, timeProvider: timeProvider, logger: logger}
}

// List returns the sections of one kind in display order
func (s *SectionService) List(ctx context.Context, userID uint64, kind entity.SectionKind) ([]*entity.Section, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if !kind.IsValid() {
		return nil, errs.NewValidationError("kind", "must be custom or service")
	}

	sections, err := s.uow.GetSectionRepository(ctx).ListByUser(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	entity.SortSections(sections)
	return sections, nil
}

// Create appends a section at the end of its list
func (s *SectionService) Create(ctx context.Context, userID uint64, in usecase.SectionInput) (*entity.Section, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if err := validateSection(in); err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	section := &entity.Section{
		UserID:    userID,
		Kind:      in.Kind,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applySection(section, in)

	err := s.inTx(ctx, "create", func(ctx context.Context, repo persistence.SectionRepository) error {
		if err := repo.LockList(ctx, userID, in.Kind); err != nil {
			return err
		}
		existing, err := repo.ListByUser(ctx, userID, in.Kind)
		if err != nil {
			return err
		}
		entity.SortSections(existing)
		if changed := entity.Renumber(existing); len(changed) > 0 {
			if err := repo.UpdateOrder(ctx, changed); err != nil {
				return err
			}
		}
		section.OrderIndex = len(existing)
		return repo.Create(ctx, section)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Section created", map[string]any{
		"user_id":     userID,
		"section_id":  section.ID,
		"kind":        string(section.Kind),
		"order_index": section.OrderIndex,
	})
	return section, nil
}

// Update replaces the editable content of a section
func (s *SectionService) Update(ctx context.Context, userID, id uint64, in usecase.SectionInput) (*entity.Section, error) {
	var section *entity.Section
	err := s.inTx(ctx, "update", func(ctx context.Context, repo persistence.SectionRepository) error {
		var err error
		section, err = owned(ctx, repo, userID, id)
		if err != nil {
			return err
		}
		in.Kind = section.Kind
		if err := validateSection(in); err != nil {
			return err
		}
		applySection(section, in)
		section.UpdatedAt = s.timeProvider.Now()
		return repo.Update(ctx, section)
	})
	if err != nil {
		return nil, err
	}
	return section, nil
}

// Delete removes a section and closes the gap it leaves in the order
func (s *SectionService) Delete(ctx context.Context, userID, id uint64) error {
	return s.inTx(ctx, "delete", func(ctx context.Context, repo persistence.SectionRepository) error {
		section, err := owned(ctx, repo, userID, id)
		if err != nil {
			return err
		}
		if err := repo.LockList(ctx, userID, section.Kind); err != nil {
			return err
		}
		if err := repo.Delete(ctx, id); err != nil {
			return err
		}

		rest, err := repo.ListByUser(ctx, userID, section.Kind)
		if err != nil {
			return err
		}
		entity.SortSections(rest)
		if changed := entity.Renumber(rest); len(changed) > 0 {
			return repo.UpdateOrder(ctx, changed)
		}
		return nil
	})
}

// Toggle flips the visibility of a section
func (s *SectionService) Toggle(ctx context.Context, userID, id uint64) (*entity.Section, error) {
	var section *entity.Section
	err := s.inTx(ctx, "toggle", func(ctx context.Context, repo persistence.SectionRepository) error {
		var err error
		section, err = owned(ctx, repo, userID, id)
		if err != nil {
			return err
		}
		section.IsActive = !section.IsActive
		section.UpdatedAt = s.timeProvider.Now()
		return repo.Update(ctx, section)
	})
	if err != nil {
		return nil, err
	}
	return section, nil
}

// Move swaps a section with its neighbour. The first item cannot move up and the last cannot move down.
func (s *SectionService) Move(ctx context.Context, userID, id uint64, dir entity.Direction) ([]*entity.Section, error) {
	var ordered []*entity.Section
	err := s.inTx(ctx, "move", func(ctx context.Context, repo persistence.SectionRepository) error {
		section, err := owned(ctx, repo, userID, id)
		if err != nil {
			return err
		}
		if err := repo.LockList(ctx, userID, section.Kind); err != nil {
			return err
		}
		all, err := repo.ListByUser(ctx, userID, section.Kind)
		if err != nil {
			return err
		}
		ordered, err = entity.MoveSection(all, id, dir)
		if err != nil {
			return err
		}
		return repo.UpdateOrder(ctx, ordered)
	})
	if err != nil {
		return nil, err
	}
	return ordered, nil
}

// Reorder applies a full ordering sent by the client
func (s *SectionService) Reorder(ctx context.Context, userID uint64, kind entity.SectionKind, ids []uint64) ([]*entity.Section, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if !kind.IsValid() {
		return nil, errs.NewValidationError("kind", "must be custom or service")
	}

	var ordered []*entity.Section
	err := s.inTx(ctx, "reorder", func(ctx context.Context, repo persistence.SectionRepository) error {
		if err := repo.LockList(ctx, userID, kind); err != nil {
			return err
		}
		all, err := repo.ListByUser(ctx, userID, kind)
		if err != nil {
			return err
		}
		ordered, err = entity.ReorderSections(all, ids)
		if err != nil {
			return err
		}
		return repo.UpdateOrder(ctx, ordered)
	})
	if err != nil {
		return nil, err
	}
	return ordered, nil
}

// inTx runs fn with the section repository of a fresh transaction
func (s *SectionService) inTx(ctx context.Context, op string, fn func(ctx context.Context, repo persistence.SectionRepository) error) (err error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
				s.logger.Error("Failed to rollback section change", map[string]any{
					"operation": op,
					"error":     rbErr.Error(),
				})
			}
		}
	}()

	if err = fn(txCtx, s.uow.GetSectionRepository(txCtx)); err != nil {
		return err
	}
	return s.uow.Commit(txCtx)
}

// owned loads a section and hides sections of other users
func owned(ctx context.Context, repo persistence.SectionRepository, userID, id uint64) (*entity.Section, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	section, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if section.UserID != userID {
		return nil, errs.ErrSectionNotFound
	}
	return section, nil
}

func validateSection(in usecase.SectionInput) error {
	fields := map[string]string{}
	if !in.Kind.IsValid() {
		fields["kind"] = "must be custom or service"
	}
	title := strings.TrimSpace(in.Title)
	switch {
	case title == "":
		fields["title"] = "is required"
	case len(title) > maxSectionTitle:
		fields["title"] = "is too long"
	}
	if len(in.Content) > maxSectionContent {
		fields["content"] = "is too long"
	}
	if len(fields) > 0 {
		return &errs.ValidationError{Fields: fields}
	}
	return nil
}

func applySection(section *entity.Section, in usecase.SectionInput) {
	section.Title = strings.TrimSpace(in.Title)
	section.Type = strings.TrimSpace(in.Type)
	section.Content = in.Content
	section.BackgroundColor = in.BackgroundColor
	section.TextColor = in.TextColor
	if in.IsActive != nil {
		section.IsActive = *in.IsActive
	}
}

var _ usecase.SectionUseCase = (*SectionService)(nil)
