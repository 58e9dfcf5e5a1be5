package portfolio

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/domain/port/persistence"
	"github.com/guidy-app/joblight/internal/domain/port/render"
	"github.com/guidy-app/joblight/internal/domain/port/usecase"
)

// QR code size bounds in pixels
const (
	DefaultQRSize = 256
	MinQRSize     = 64
	MaxQRSize     = 1024
)

const (
	defaultSiteName       = "JobLight"
	maxSEODescriptionSize = 160
)

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{2,49}$`)

// Config holds the public page settings
type Config struct {
	PublicBaseURL string
	QRDefaultSize int
	SiteName      string
}

// Service builds public portfolio pages and lets owners edit them
type Service struct {
	resolver
	cvs    persistence.CVRepository
	uow    persistence.UnitOfWork
	qr     render.QREncoder
	logger coreport.Logger
	cfg    Config
}

// NewService creates a new portfolio Service
func NewService(
	users persistence.UserRepository,
	cvs persistence.CVRepository,
	portfolios persistence.PortfolioRepository,
	uow persistence.UnitOfWork,
	qr render.QREncoder,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
) *Service {
	if cfg.QRDefaultSize <= 0 {
		cfg.QRDefaultSize = DefaultQRSize
	}
	if cfg.SiteName == "" {
		cfg.SiteName = defaultSiteName
	}
	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")

	return &Service{
		resolver: resolver{users: users, portfolios: portfolios, timeProvider: timeProvider},
		cvs:      cvs,
		uow:      uow,
		qr:       qr,
		logger:   logger,
		cfg:      cfg,
	}
}

// Build returns the public page of a slug, username or numeric user id
func (s *Service) Build(ctx context.Context, identifier string) (*usecase.PortfolioPage, error) {
	user, portfolio, err := s.resolvePublic(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return s.page(ctx, user, portfolio, true)
}

// OwnerPage returns the page of the signed-in user whatever its visibility, inactive sections included
func (s *Service) OwnerPage(ctx context.Context, userID uint64) (*usecase.PortfolioPage, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	portfolio, err := s.ownPortfolio(ctx, user)
	if err != nil {
		return nil, err
	}
	return s.page(ctx, user, portfolio, false)
}

// Update changes the owner-editable fields of a portfolio
func (s *Service) Update(ctx context.Context, userID uint64, in usecase.UpdatePortfolioInput) (*entity.Portfolio, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	portfolio, err := s.ownPortfolio(ctx, user)
	if err != nil {
		return nil, err
	}

	fields := map[string]string{}
	if in.Design != nil {
		design := entity.Design(strings.ToLower(strings.TrimSpace(*in.Design)))
		if entity.ResolveDesign(string(design)) != design {
			fields["design"] = "unknown design"
		} else {
			portfolio.Design = design
		}
	}
	if in.Slug != nil {
		slug := strings.ToLower(strings.TrimSpace(*in.Slug))
		if !slugPattern.MatchString(slug) {
			fields["slug"] = "must be 3 to 50 lowercase letters, digits or dashes"
		} else {
			portfolio.Slug = slug
		}
	}
	if len(fields) > 0 {
		return nil, &errs.ValidationError{Fields: fields}
	}
	if in.IsPublic != nil {
		portfolio.IsPublic = *in.IsPublic
	}
	if in.Settings != nil {
		portfolio.Settings = *in.Settings
	}
	portfolio.UpdatedAt = s.timeProvider.Now()

	if err := s.portfolios.Save(ctx, portfolio); err != nil {
		if errors.Is(err, errs.ErrDuplicateReference) {
			return nil, errs.NewValidationError("slug", "already taken")
		}
		return nil, err
	}

	s.logger.Info("Portfolio updated", map[string]any{
		"user_id":   userID,
		"slug":      portfolio.Slug,
		"design":    string(portfolio.Design),
		"is_public": portfolio.IsPublic,
	})
	return portfolio, nil
}

// QRCode renders the public URL of a portfolio as a PNG
func (s *Service) QRCode(ctx context.Context, identifier string, size int) ([]byte, error) {
	user, portfolio, err := s.resolvePublic(ctx, identifier)
	if err != nil {
		return nil, err
	}

	switch {
	case size <= 0:
		size = s.cfg.QRDefaultSize
	case size < MinQRSize:
		size = MinQRSize
	case size > MaxQRSize:
		size = MaxQRSize
	}
	return s.qr.PNG(s.publicURL(user, portfolio), size)
}

func (s *Service) page(ctx context.Context, user *entity.User, portfolio *entity.Portfolio, publicOnly bool) (*usecase.PortfolioPage, error) {
	cv, err := s.cvs.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	cv = processCV(cv, user)

	sectionRepo := s.uow.GetSectionRepository(ctx)
	sections, err := sectionRepo.ListByUser(ctx, user.ID, entity.SectionCustom)
	if err != nil {
		return nil, err
	}
	services, err := sectionRepo.ListByUser(ctx, user.ID, entity.SectionService)
	if err != nil {
		return nil, err
	}
	if publicOnly {
		sections = activeOnly(sections)
		services = activeOnly(services)
	}
	entity.SortSections(sections)
	entity.SortSections(services)

	stats, err := s.uow.GetStatsRepository(ctx).Get(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	stats.IsPublic = portfolio.IsPublic

	url := s.publicURL(user, portfolio)
	return &usecase.PortfolioPage{
		User:             user,
		Portfolio:        portfolio,
		CV:               cv,
		ExperienceGroups: cv.ExperiencesByCategory(),
		Settings:         resolveSettings(portfolio.Settings, cv, len(services) > 0),
		Design:           entity.ResolveDesign(string(portfolio.Design)),
		Sections:         sections,
		Services:         services,
		Stats:            stats,
		SEO:              s.seo(cv, portfolio, url),
		PublicURL:        url,
	}, nil
}

func (s *Service) publicURL(user *entity.User, portfolio *entity.Portfolio) string {
	identifier := portfolio.Slug
	if identifier == "" {
		identifier = strings.ToLower(user.Username)
	}
	if identifier == "" {
		identifier = fmt.Sprint(user.ID)
	}
	return s.cfg.PublicBaseURL + "/portfolio/" + identifier
}

func (s *Service) seo(cv *entity.CVData, portfolio *entity.Portfolio, url string) usecase.SEO {
	name := cv.PersonalInformation.FullName()
	profession := cv.PrimaryProfession()

	title := name
	if profession != "" {
		title = name + " - " + profession
	}
	title += " | " + s.cfg.SiteName

	description := portfolio.Settings.Tagline
	if description == "" && len(cv.Summaries) > 0 {
		description = cv.Summaries[0].Text
	}
	if description == "" {
		description = fmt.Sprintf("Portfolio of %s on %s", name, s.cfg.SiteName)
	}
	description = truncate(strings.Join(strings.Fields(description), " "), maxSEODescriptionSize)

	image := cv.PersonalInformation.PhotoURL
	og := map[string]string{
		"og:type":        "profile",
		"og:title":       title,
		"og:description": description,
		"og:url":         url,
		"og:site_name":   s.cfg.SiteName,
	}
	if image != "" {
		og["og:image"] = image
	}

	person := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     name,
		"url":      url,
	}
	if profession != "" {
		person["jobTitle"] = profession
	}
	if image != "" {
		person["image"] = image
	}
	var sameAs []string
	for _, link := range []string{cv.PersonalInformation.LinkedIn, cv.PersonalInformation.GitHub, cv.PersonalInformation.Website} {
		if link != "" {
			sameAs = append(sameAs, link)
		}
	}
	if len(sameAs) > 0 {
		person["sameAs"] = sameAs
	}

	return usecase.SEO{
		Title:        title,
		Description:  description,
		CanonicalURL: url,
		Image:        image,
		OpenGraph:    og,
		JSONLD:       person,
	}
}

// processCV fills identity fields the CV left empty from the account
func processCV(cv *entity.CVData, user *entity.User) *entity.CVData {
	if cv == nil {
		cv = &entity.CVData{}
	}
	out := *cv
	out.UserID = user.ID
	info := &out.PersonalInformation

	if info.FirstName == "" && info.LastName == "" {
		first, last, _ := strings.Cut(strings.TrimSpace(user.Name), " ")
		info.FirstName = first
		info.LastName = strings.TrimSpace(last)
	}
	if info.Email == "" {
		info.Email = user.Email
	}
	if info.Phone == "" {
		info.Phone = user.Phone
	}
	if info.PhotoURL == "" {
		info.PhotoURL = user.PhotoURL
	}
	return &out
}

// resolveSettings enables every block that has data unless the owner turned it off
func resolveSettings(settings entity.PortfolioSettings, cv *entity.CVData, hasServices bool) usecase.ResolvedSettings {
	info := cv.PersonalInformation
	return usecase.ResolvedSettings{
		ShowSummary:        show(settings.ShowSummary, len(cv.Summaries) > 0),
		ShowExperiences:    show(settings.ShowExperiences, len(cv.Experiences) > 0),
		ShowCompetences:    show(settings.ShowCompetences, len(cv.Competences) > 0),
		ShowLanguages:      show(settings.ShowLanguages, len(cv.Languages) > 0),
		ShowCertifications: show(settings.ShowCertifications, len(cv.Certifications) > 0),
		ShowHobbies:        show(settings.ShowHobbies, len(cv.Hobbies) > 0),
		ShowContact:        show(settings.ShowContact, info.Email != "" || info.Phone != ""),
		ShowServices:       show(settings.ShowServices, hasServices),
		PrimaryColor:       settings.PrimaryColor,
		SecondaryColor:     settings.SecondaryColor,
		Tagline:            settings.Tagline,
	}
}

func show(explicit *bool, hasData bool) bool {
	return hasData && (explicit == nil || *explicit)
}

func activeOnly(sections []*entity.Section) []*entity.Section {
	out := make([]*entity.Section, 0, len(sections))
	for _, s := range sections {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return strings.TrimSpace(string(r[:limit-3])) + "..."
}

var _ usecase.PortfolioUseCase = (*Service)(nil)
