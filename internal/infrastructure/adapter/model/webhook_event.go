package model

import (
	"time"

	"gorm.io/datatypes"
)

// WebhookEvent is a received provider notification, unique per provider event key
type WebhookEvent struct {
	ID         uint64            `gorm:"primaryKey;autoIncrement"`
	Provider   string            `gorm:"not null;size:20;uniqueIndex:idx_webhook_events_provider_key,priority:1"`
	EventKey   string            `gorm:"not null;size:191;uniqueIndex:idx_webhook_events_provider_key,priority:2"`
	Reference  string            `gorm:"size:128;index"`
	Status     string            `gorm:"size:20"`
	Payload    datatypes.JSONMap `gorm:"type:jsonb"`
	ReceivedAt time.Time         `gorm:"not null"`
}

// TableName specifies the table name for WebhookEvent
func (WebhookEvent) TableName() string {
	return "webhook_events"
}
