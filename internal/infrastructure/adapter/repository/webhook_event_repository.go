package repository

import (
	"context"

	"github.com/guidy-app/joblight/internal/domain/entity"
	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/model"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/pgerr"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WebhookEventRepository implements WebhookEventRepository interface using GORM
type WebhookEventRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewWebhookEventRepository creates a new WebhookEventRepository instance
func NewWebhookEventRepository(db *gorm.DB, logger coreport.Logger) *WebhookEventRepository {
	return &WebhookEventRepository{
		db:     db,
		logger: logger,
	}
}

// Record stores the event and reports whether it was new
func (r *WebhookEventRepository) Record(ctx context.Context, event *entity.WebhookEvent) (bool, error) {
	m := model.WebhookEvent{
		Provider:   string(event.Provider),
		EventKey:   event.EventKey,
		Reference:  event.Reference,
		Status:     string(event.Status),
		Payload:    datatypes.JSONMap(event.Payload),
		ReceivedAt: event.ReceivedAt,
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "provider"}, {Name: "event_key"}},
			DoNothing: true,
		}).
		Create(&m)
	if result.Error != nil {
		r.logger.Error("Failed to record webhook event", map[string]any{
			"provider":  event.Provider,
			"event_key": event.EventKey,
			"error":     result.Error.Error(),
		})
		return false, pgerr.Wrap("webhook event", result.Error)
	}

	if result.RowsAffected == 0 {
		r.logger.Info("Dropping redelivered webhook event", map[string]any{
			"provider":  event.Provider,
			"event_key": event.EventKey,
		})
		return false, nil
	}

	event.ID = m.ID
	return true, nil
}
