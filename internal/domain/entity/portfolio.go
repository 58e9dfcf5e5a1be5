package entity

import (
	"strings"
	"time"
)

// Design is a visual theme of the public portfolio page
type Design string

// Available designs
const (
	DesignProfessional Design = "professional"
	DesignCreative     Design = "creative"
	DesignMinimal      Design = "minimal"
	DesignModern       Design = "modern"
	DesignTechnical    Design = "technical"
)

// DefaultDesign is used when the stored design is unknown
const DefaultDesign = DesignProfessional

// Designs lists every available design
var Designs = []Design{DesignProfessional, DesignCreative, DesignMinimal, DesignModern, DesignTechnical}

// ResolveDesign returns d when it exists, the default design otherwise
func ResolveDesign(d string) Design {
	candidate := Design(strings.ToLower(strings.TrimSpace(d)))
	for _, known := range Designs {
		if candidate == known {
			return known
		}
	}
	return DefaultDesign
}

// PortfolioSettings are the owner's display preferences.
// A nil flag means "decide from the data".
type PortfolioSettings struct {
	ShowSummary        *bool  `json:"show_summary,omitempty"`
	ShowExperiences    *bool  `json:"show_experiences,omitempty"`
	ShowCompetences    *bool  `json:"show_competences,omitempty"`
	ShowLanguages      *bool  `json:"show_languages,omitempty"`
	ShowCertifications *bool  `json:"show_certifications,omitempty"`
	ShowHobbies        *bool  `json:"show_hobbies,omitempty"`
	ShowContact        *bool  `json:"show_contact,omitempty"`
	ShowServices       *bool  `json:"show_services,omitempty"`
	PrimaryColor       string `json:"primary_color,omitempty"`
	SecondaryColor     string `json:"secondary_color,omitempty"`
	Tagline            string `json:"tagline,omitempty"`
}

// Portfolio is the public page configuration of a user
type Portfolio struct {
	ID        uint64
	UserID    uint64
	Slug      string
	Design    Design
	Settings  PortfolioSettings
	IsPublic  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPortfolio creates the default portfolio of a user
func NewPortfolio(userID uint64, slug string, now time.Time) *Portfolio {
	return &Portfolio{
		UserID:    userID,
		Slug:      slug,
		Design:    DefaultDesign,
		IsPublic:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
