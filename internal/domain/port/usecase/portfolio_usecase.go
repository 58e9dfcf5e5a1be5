package usecase

import (
	"context"
	"io"

	"github.com/guidy-app/joblight/internal/domain/entity"
	"github.com/guidy-app/joblight/internal/domain/port/render"
)

// SEO carries the page metadata of a public portfolio
type SEO struct {
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	CanonicalURL string            `json:"canonical_url"`
	Image        string            `json:"image,omitempty"`
	OpenGraph    map[string]string `json:"og"`
	JSONLD       map[string]any    `json:"json_ld"`
}

// ResolvedSettings are portfolio settings with every show flag decided
type ResolvedSettings struct {
	ShowSummary        bool   `json:"show_summary"`
	ShowExperiences    bool   `json:"show_experiences"`
	ShowCompetences    bool   `json:"show_competences"`
	ShowLanguages      bool   `json:"show_languages"`
	ShowCertifications bool   `json:"show_certifications"`
	ShowHobbies        bool   `json:"show_hobbies"`
	ShowContact        bool   `json:"show_contact"`
	ShowServices       bool   `json:"show_services"`
	PrimaryColor       string `json:"primary_color"`
	SecondaryColor     string `json:"secondary_color"`
	Tagline            string `json:"tagline"`
}

// PortfolioPage is everything the public portfolio view renders
type PortfolioPage struct {
	User             *entity.User             `json:"user"`
	Portfolio        *entity.Portfolio        `json:"portfolio"`
	CV               *entity.CVData           `json:"processed_cv_data"`
	ExperienceGroups []entity.ExperienceGroup `json:"experience_groups"`
	Settings         ResolvedSettings         `json:"processed_settings"`
	Design           entity.Design            `json:"design"`
	Sections         []*entity.Section        `json:"sections"`
	Services         []*entity.Section        `json:"services"`
	Stats            *entity.PortfolioStats   `json:"stats"`
	SEO              SEO                      `json:"seo"`
	PublicURL        string                   `json:"public_url"`
}

// UpdatePortfolioInput changes the owner-editable fields; nil fields stay unchanged
type UpdatePortfolioInput struct {
	Design   *string
	Slug     *string
	IsPublic *bool
	Settings *entity.PortfolioSettings
}

// SectionInput is the editable content of a section
type SectionInput struct {
	Kind            entity.SectionKind
	Title           string
	Type            string
	Content         string
	IsActive        *bool
	BackgroundColor string
	TextColor       string
}

// PortfolioUseCase builds and edits public portfolio pages
type PortfolioUseCase interface {
	Build(ctx context.Context, identifier string) (*PortfolioPage, error)
	OwnerPage(ctx context.Context, userID uint64) (*PortfolioPage, error)
	Update(ctx context.Context, userID uint64, in UpdatePortfolioInput) (*entity.Portfolio, error)
	QRCode(ctx context.Context, identifier string, size int) ([]byte, error)
}

// StatsUseCase records and reads portfolio audience counters
type StatsUseCase interface {
	RecordShare(ctx context.Context, userID uint64, platform string, metadata map[string]any) (*entity.PortfolioStats, error)
	RecordView(ctx context.Context, identifier, visitorKey string, viewerID uint64) (*entity.PortfolioStats, error)
	GetStats(ctx context.Context, userID uint64) (*entity.PortfolioStats, error)
}

// SectionUseCase edits and orders custom sections and services
type SectionUseCase interface {
	List(ctx context.Context, userID uint64, kind entity.SectionKind) ([]*entity.Section, error)
	Create(ctx context.Context, userID uint64, in SectionInput) (*entity.Section, error)
	Update(ctx context.Context, userID, id uint64, in SectionInput) (*entity.Section, error)
	Delete(ctx context.Context, userID, id uint64) error
	Toggle(ctx context.Context, userID, id uint64) (*entity.Section, error)
	Move(ctx context.Context, userID, id uint64, dir entity.Direction) ([]*entity.Section, error)
	Reorder(ctx context.Context, userID uint64, kind entity.SectionKind, ids []uint64) ([]*entity.Section, error)
}

// CVUseCase renders the CV of a user
type CVUseCase interface {
	Templates() []render.TemplateInfo
	Preview(ctx context.Context, w io.Writer, userID uint64, template, pageSize string) error
}
