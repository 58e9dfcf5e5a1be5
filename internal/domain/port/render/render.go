package render

import (
	"io"

	"github.com/guidy-app/joblight/internal/domain/entity"
)

// TemplateInfo describes an available CV template
type TemplateInfo struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	PageSizes   []string `json:"page_sizes"`
}

// CVRenderer renders a CV to HTML
type CVRenderer interface {
	Templates() []TemplateInfo
	// Render writes the CV; an unknown template yields errs.ErrTemplateNotFound
	Render(w io.Writer, template, pageSize string, cv *entity.CVData) error
}

// QREncoder renders text as a QR code image
type QREncoder interface {
	PNG(content string, size int) ([]byte, error)
}
