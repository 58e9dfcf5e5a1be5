package model

import (
	"time"

	"gorm.io/datatypes"
)

// User is the account row shared with the account service. This service only reads it.
type User struct {
	ID              uint64    `gorm:"primaryKey"`
	Name            string    `gorm:"size:255"`
	Email           string    `gorm:"size:255;uniqueIndex"`
	Phone           string    `gorm:"size:32"`
	Username        string    `gorm:"size:64;uniqueIndex"`
	PhotoURL        string    `gorm:"column:photo_url;type:text"`
	EmailVerifiedAt *time.Time
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// CVDocument holds the whole CV of a user as one JSON document
type CVDocument struct {
	UserID    uint64         `gorm:"primaryKey"`
	Data      datatypes.JSON `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time      `gorm:"not null"`
}

// TableName specifies the table name for CVDocument
func (CVDocument) TableName() string {
	return "cv_documents"
}
