package dto

import "github.com/guidy-app/joblight/internal/domain/entity"

// UpdatePortfolioRequest edits the owner's page; absent fields are left unchanged
type UpdatePortfolioRequest struct {
	Design   *string                   `json:"design"`
	Slug     *string                   `json:"slug"`
	IsPublic *bool                     `json:"is_public"`
	Settings *entity.PortfolioSettings `json:"settings"`
}

// ShareRequest records a share intent
type ShareRequest struct {
	Platform string         `json:"platform" binding:"required"`
	Metadata map[string]any `json:"metadata"`
}

// SectionRequest is the editable content of a section or service
type SectionRequest struct {
	Title           string `json:"title" binding:"required,max=150"`
	Type            string `json:"type" binding:"max=50"`
	Content         string `json:"content"`
	IsActive        *bool  `json:"is_active"`
	BackgroundColor string `json:"background_color" binding:"omitempty,hexcolor"`
	TextColor       string `json:"text_color" binding:"omitempty,hexcolor"`
}

// MoveRequest moves a section one step
type MoveRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

// ReorderRequest sets the full order of a section kind
type ReorderRequest struct {
	IDs []uint64 `json:"ids" binding:"required"`
}
