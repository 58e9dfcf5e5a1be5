package model

import (
	"time"

	"gorm.io/datatypes"
)

// Portfolio represents the database model for public page settings
type Portfolio struct {
	ID        uint64         `gorm:"primaryKey;autoIncrement"`
	UserID    uint64         `gorm:"not null;uniqueIndex"`
	Slug      string         `gorm:"size:50;uniqueIndex:idx_portfolios_slug,where:slug <> ''"`
	Design    string         `gorm:"not null;size:20"`
	Settings  datatypes.JSON `gorm:"type:jsonb"`
	IsPublic  bool           `gorm:"not null;default:true"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
}

// TableName specifies the table name for Portfolio
func (Portfolio) TableName() string {
	return "portfolios"
}

// PortfolioStats holds audience counters, one row per user
type PortfolioStats struct {
	UserID           uint64            `gorm:"primaryKey"`
	Views            int64             `gorm:"not null;default:0"`
	UniqueViews      int64             `gorm:"not null;default:0"`
	Shares           int64             `gorm:"not null;default:0"`
	SharesByPlatform datatypes.JSONMap `gorm:"type:jsonb"`
	LastViewedAt     *time.Time
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName specifies the table name for PortfolioStats
func (PortfolioStats) TableName() string {
	return "portfolio_stats"
}

// ShareEvent records one share intent
type ShareEvent struct {
	ID        string            `gorm:"primaryKey;size:36"`
	UserID    uint64            `gorm:"not null;index"`
	Platform  string            `gorm:"not null;size:20"`
	Metadata  datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt time.Time         `gorm:"not null"`
}

// TableName specifies the table name for ShareEvent
func (ShareEvent) TableName() string {
	return "share_events"
}

// Section is a custom section or an offered service on a portfolio page
type Section struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement"`
	UserID          uint64    `gorm:"not null;index:idx_sections_user_kind_order,priority:1"`
	Kind            string    `gorm:"not null;size:10;index:idx_sections_user_kind_order,priority:2"`
	Title           string    `gorm:"not null;size:120"`
	Type            string    `gorm:"size:50"`
	Content         string    `gorm:"type:text"`
	OrderIndex      int       `gorm:"not null;default:0;index:idx_sections_user_kind_order,priority:3"`
	IsActive        bool      `gorm:"not null;default:true"`
	BackgroundColor string    `gorm:"size:20"`
	TextColor       string    `gorm:"size:20"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for Section
func (Section) TableName() string {
	return "portfolio_sections"
}
