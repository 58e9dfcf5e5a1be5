package entity

import (
	"testing"
	"time"

	errs "github.com/guidy-app/joblight/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSharePlatform(t *testing.T) {
	p, err := ParseSharePlatform("  WhatsApp ")
	require.NoError(t, err)
	assert.Equal(t, PlatformWhatsApp, p)

	_, err = ParseSharePlatform("telegram")
	assert.ErrorIs(t, err, errs.ErrInvalidPlatform)
}

func TestPortfolioStats_RecordShare(t *testing.T) {
	stats := &PortfolioStats{Views: 147, Shares: 23}

	stats.RecordShare(PlatformLinkedIn)

	assert.Equal(t, int64(24), stats.Shares)
	assert.Equal(t, int64(1), stats.SharesByPlatform[PlatformLinkedIn])
	assert.Equal(t, int64(147), stats.Views)
}

func TestPortfolioStats_RecordView(t *testing.T) {
	at := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	stats := NewPortfolioStats(1)

	stats.RecordView(true, at)
	stats.RecordView(false, at.Add(time.Minute))

	assert.Equal(t, int64(2), stats.Views)
	assert.Equal(t, int64(1), stats.UniqueViews)
	require.NotNil(t, stats.LastViewedAt)
	assert.Equal(t, at.Add(time.Minute), *stats.LastViewedAt)
}
