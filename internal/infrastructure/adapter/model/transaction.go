package model

import (
	"time"

	"gorm.io/datatypes"
)

// Transaction represents the database model for payment transactions
type Transaction struct {
	ID                uint64            `gorm:"primaryKey;autoIncrement"`
	Reference         string            `gorm:"uniqueIndex;not null;size:64"`
	UserID            uint64            `gorm:"not null;index"`
	Provider          string            `gorm:"not null;size:20;index:idx_transactions_provider_ref,priority:1"`
	Purpose           string            `gorm:"not null;size:20"`
	Amount            int64             `gorm:"not null;check:amount > 0"`
	Currency          string            `gorm:"not null;size:3"`
	Status            string            `gorm:"not null;size:20;index:idx_transactions_status_created,priority:1"`
	Phone             string            `gorm:"size:20"`
	ProviderReference string            `gorm:"size:128;index:idx_transactions_provider_ref,priority:2"`
	PaymentURL        string            `gorm:"type:text"`
	Description       string            `gorm:"size:255"`
	Metadata          datatypes.JSONMap `gorm:"type:jsonb"`
	FailureReason     string            `gorm:"type:text"`
	Settled           bool              `gorm:"not null;default:false"`
	CreatedAt         time.Time         `gorm:"not null;index:idx_transactions_status_created,priority:2"`
	UpdatedAt         time.Time         `gorm:"not null"`
	CompletedAt       *time.Time
	ExpiresAt         *time.Time
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
