package persistence

import (
	"context"

	"github.com/guidy-app/joblight/internal/domain/entity"
)

// PortfolioRepository stores portfolio page configurations
type PortfolioRepository interface {
	// GetByUserID returns the portfolio of a user
	//
	// Possible errors:
	// - ErrPortfolioNotFound: If the user has no portfolio
	GetByUserID(ctx context.Context, userID uint64) (*entity.Portfolio, error)

	// GetBySlug returns the portfolio with this slug
	GetBySlug(ctx context.Context, slug string) (*entity.Portfolio, error)

	// Save creates or updates a portfolio
	//
	// Possible errors:
	// - ErrDuplicateReference: If the slug is taken by another user
	Save(ctx context.Context, portfolio *entity.Portfolio) error
}

// StatsRepository stores portfolio audience counters
type StatsRepository interface {
	// Get returns the counters of a user, zeroed when none exist
	Get(ctx context.Context, userID uint64) (*entity.PortfolioStats, error)

	// GetForUpdate locks the counters row of a user, creating it when missing
	GetForUpdate(ctx context.Context, userID uint64) (*entity.PortfolioStats, error)

	// Save persists the counters
	Save(ctx context.Context, stats *entity.PortfolioStats) error

	// AddShareEvent appends a share event
	AddShareEvent(ctx context.Context, event *entity.ShareEvent) error
}

// SectionRepository stores custom sections and services
type SectionRepository interface {
	// LockList serialises changes to the order of one user's sections of a kind
	// until the surrounding transaction ends
	LockList(ctx context.Context, userID uint64, kind entity.SectionKind) error

	// ListByUser returns the sections of one kind, ordered by order_index
	ListByUser(ctx context.Context, userID uint64, kind entity.SectionKind) ([]*entity.Section, error)

	// GetByID returns one section
	//
	// Possible errors:
	// - ErrSectionNotFound: If the section doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.Section, error)

	// Create saves a new section and sets its ID
	Create(ctx context.Context, section *entity.Section) error

	// Update persists every field of a section
	Update(ctx context.Context, section *entity.Section) error

	// Delete removes a section
	Delete(ctx context.Context, id uint64) error

	// UpdateOrder writes the order_index of each given section
	UpdateOrder(ctx context.Context, sections []*entity.Section) error
}

// WebhookEventRepository records received provider notifications
type WebhookEventRepository interface {
	// Record stores the event and reports whether it was new.
	// A second delivery of the same provider event key returns false without error.
	Record(ctx context.Context, event *entity.WebhookEvent) (bool, error)
}
