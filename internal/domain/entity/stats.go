package entity

import (
	"strings"
	"time"

	errs "github.com/guidy-app/joblight/internal/domain/error"
)

// SharePlatform is a channel a portfolio link is shared through
type SharePlatform string

// Share platforms offered by the front end
const (
	PlatformLinkedIn SharePlatform = "linkedin"
	PlatformTwitter  SharePlatform = "twitter"
	PlatformFacebook SharePlatform = "facebook"
	PlatformWhatsApp SharePlatform = "whatsapp"
	PlatformEmail    SharePlatform = "email"
	PlatformCopy     SharePlatform = "copy"
	PlatformQRCode   SharePlatform = "qr_code"
)

// SharePlatforms lists every accepted platform
var SharePlatforms = []SharePlatform{
	PlatformLinkedIn, PlatformTwitter, PlatformFacebook, PlatformWhatsApp,
	PlatformEmail, PlatformCopy, PlatformQRCode,
}

// ParseSharePlatform validates a platform name
func ParseSharePlatform(s string) (SharePlatform, error) {
	p := SharePlatform(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range SharePlatforms {
		if p == known {
			return p, nil
		}
	}
	return "", errs.ErrInvalidPlatform
}

// PortfolioStats aggregates a portfolio's audience numbers
type PortfolioStats struct {
	UserID           uint64                  `json:"user_id"`
	Views            int64                   `json:"views"`
	UniqueViews      int64                   `json:"unique_views"`
	Shares           int64                   `json:"shares"`
	SharesByPlatform map[SharePlatform]int64 `json:"shares_by_platform"`
	LastViewedAt     *time.Time              `json:"last_viewed"`
	IsPublic         bool                    `json:"is_public"`
}

// NewPortfolioStats returns zeroed stats
func NewPortfolioStats(userID uint64) *PortfolioStats {
	return &PortfolioStats{
		UserID:           userID,
		SharesByPlatform: map[SharePlatform]int64{},
	}
}

// RecordShare counts one share on platform
func (s *PortfolioStats) RecordShare(platform SharePlatform) {
	if s.SharesByPlatform == nil {
		s.SharesByPlatform = map[SharePlatform]int64{}
	}
	s.Shares++
	s.SharesByPlatform[platform]++
}

// RecordView counts one view, and one unique view when unique is set
func (s *PortfolioStats) RecordView(unique bool, at time.Time) {
	s.Views++
	if unique {
		s.UniqueViews++
	}
	s.LastViewedAt = &at
}

// ShareEvent is one recorded share intent
type ShareEvent struct {
	ID        string
	UserID    uint64
	Platform  SharePlatform
	Metadata  map[string]any
	CreatedAt time.Time
}
