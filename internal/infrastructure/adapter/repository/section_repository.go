package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/model"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/pgerr"
	"gorm.io/gorm"
)

// SectionRepository implements SectionRepository interface using GORM
type SectionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewSectionRepository creates a new SectionRepository instance
func NewSectionRepository(db *gorm.DB, logger coreport.Logger) *SectionRepository {
	return &SectionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *SectionRepository) entityToModel(s *entity.Section) model.Section {
	return model.Section{
		ID:              s.ID,
		UserID:          s.UserID,
		Kind:            string(s.Kind),
		Title:           s.Title,
		Type:            s.Type,
		Content:         s.Content,
		OrderIndex:      s.OrderIndex,
		IsActive:        s.IsActive,
		BackgroundColor: s.BackgroundColor,
		TextColor:       s.TextColor,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func (r *SectionRepository) modelToEntity(m *model.Section) *entity.Section {
	return &entity.Section{
		ID:              m.ID,
		UserID:          m.UserID,
		Kind:            entity.SectionKind(m.Kind),
		Title:           m.Title,
		Type:            m.Type,
		Content:         m.Content,
		OrderIndex:      m.OrderIndex,
		IsActive:        m.IsActive,
		BackgroundColor: m.BackgroundColor,
		TextColor:       m.TextColor,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// LockList takes a transaction-scoped advisory lock on one user's list of a kind
func (r *SectionRepository) LockList(ctx context.Context, userID uint64, kind entity.SectionKind) error {
	key := fmt.Sprintf("sections:%d:%s", userID, kind)
	if err := r.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error; err != nil {
		return r.handleDatabaseError("locking sections", err, userID)
	}
	return nil
}

// ListByUser returns the sections of one kind, ordered by order_index
func (r *SectionRepository) ListByUser(ctx context.Context, userID uint64, kind entity.SectionKind) ([]*entity.Section, error) {
	var models []model.Section
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ?", userID, string(kind)).
		Order("order_index ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing sections", err, userID)
	}

	sections := make([]*entity.Section, 0, len(models))
	for i := range models {
		sections = append(sections, r.modelToEntity(&models[i]))
	}
	return sections, nil
}

// GetByID returns one section
func (r *SectionRepository) GetByID(ctx context.Context, id uint64) (*entity.Section, error) {
	var m model.Section
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrSectionNotFound
		}
		return nil, r.handleDatabaseError("getting section", err, 0)
	}
	return r.modelToEntity(&m), nil
}

// Create saves a new section and sets its ID
func (r *SectionRepository) Create(ctx context.Context, section *entity.Section) error {
	m := r.entityToModel(section)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return r.handleDatabaseError("creating section", err, section.UserID)
	}
	section.ID = m.ID
	return nil
}

// Update persists every field of a section
func (r *SectionRepository) Update(ctx context.Context, section *entity.Section) error {
	m := r.entityToModel(section)
	result := r.db.WithContext(ctx).Model(&model.Section{}).
		Where("id = ?", section.ID).
		Updates(map[string]interface{}{
			"title":            m.Title,
			"type":             m.Type,
			"content":          m.Content,
			"order_index":      m.OrderIndex,
			"is_active":        m.IsActive,
			"background_color": m.BackgroundColor,
			"text_color":       m.TextColor,
			"updated_at":       m.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating section", result.Error, section.UserID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrSectionNotFound
	}
	return nil
}

// Delete removes a section
func (r *SectionRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Section{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting section", result.Error, 0)
	}
	if result.RowsAffected == 0 {
		return errs.ErrSectionNotFound
	}
	return nil
}

// UpdateOrder writes the order_index of each given section
func (r *SectionRepository) UpdateOrder(ctx context.Context, sections []*entity.Section) error {
	for _, s := range sections {
		err := r.db.WithContext(ctx).Model(&model.Section{}).
			Where("id = ?", s.ID).
			Update("order_index", s.OrderIndex).Error
		if err != nil {
			return r.handleDatabaseError("reordering sections", err, s.UserID)
		}
	}
	return nil
}

func (r *SectionRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	r.logger.Error("Database error when "+operation, map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})
	return pgerr.Wrap("section", err)
}
