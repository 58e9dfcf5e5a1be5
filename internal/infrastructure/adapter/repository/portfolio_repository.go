package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/model"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/pgerr"
	"gorm.io/gorm"
)

// PortfolioRepository implements PortfolioRepository interface using GORM
type PortfolioRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewPortfolioRepository creates a new PortfolioRepository instance
func NewPortfolioRepository(db *gorm.DB, logger coreport.Logger) *PortfolioRepository {
	return &PortfolioRepository{
		db:     db,
		logger: logger,
	}
}

func (r *PortfolioRepository) entityToModel(p *entity.Portfolio) (model.Portfolio, error) {
	settings, err := json.Marshal(p.Settings)
	if err != nil {
		return model.Portfolio{}, err
	}
	return model.Portfolio{
		ID:        p.ID,
		UserID:    p.UserID,
		Slug:      strings.ToLower(p.Slug),
		Design:    string(p.Design),
		Settings:  settings,
		IsPublic:  p.IsPublic,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}, nil
}

func (r *PortfolioRepository) modelToEntity(m *model.Portfolio) *entity.Portfolio {
	p := &entity.Portfolio{
		ID:        m.ID,
		UserID:    m.UserID,
		Slug:      m.Slug,
		Design:    entity.ResolveDesign(m.Design),
		IsPublic:  m.IsPublic,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if len(m.Settings) > 0 {
		if err := json.Unmarshal(m.Settings, &p.Settings); err != nil {
			// unreadable settings fall back to data-driven defaults
			r.logger.Warn("Ignoring corrupt portfolio settings", map[string]any{
				"user_id": m.UserID,
				"error":   err,
			})
		}
	}
	return p
}

// GetByUserID returns the portfolio of a user
func (r *PortfolioRepository) GetByUserID(ctx context.Context, userID uint64) (*entity.Portfolio, error) {
	return r.first(r.db.WithContext(ctx).Where("user_id = ?", userID), "user_id", userID)
}

// GetBySlug returns the portfolio with this slug
func (r *PortfolioRepository) GetBySlug(ctx context.Context, slug string) (*entity.Portfolio, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, errs.ErrPortfolioNotFound
	}
	return r.first(r.db.WithContext(ctx).Where("slug = ?", slug), "slug", slug)
}

func (r *PortfolioRepository) first(query *gorm.DB, key string, value any) (*entity.Portfolio, error) {
	var m model.Portfolio
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrPortfolioNotFound
		}
		r.logger.Error("Failed to get portfolio", map[string]any{
			key:     value,
			"error": err.Error(),
		})
		return nil, pgerr.Wrap("portfolio", err)
	}
	return r.modelToEntity(&m), nil
}

// Save creates or updates a portfolio
func (r *PortfolioRepository) Save(ctx context.Context, portfolio *entity.Portfolio) error {
	m, err := r.entityToModel(portfolio)
	if err != nil {
		return errs.NewValidationError("settings", err.Error())
	}

	if m.ID == 0 {
		err = r.db.WithContext(ctx).Create(&m).Error
	} else {
		err = r.db.WithContext(ctx).Save(&m).Error
	}

	if err != nil {
		if pgerr.IsDuplicate(err) {
			r.logger.Warn("Portfolio slug already taken", map[string]any{
				"user_id": portfolio.UserID,
				"slug":    m.Slug,
			})
			return errs.ErrDuplicateReference
		}
		r.logger.Error("Failed to save portfolio", map[string]any{
			"user_id": portfolio.UserID,
			"error":   err.Error(),
		})
		return pgerr.Wrap("portfolio", err)
	}

	portfolio.ID = m.ID
	return nil
}
