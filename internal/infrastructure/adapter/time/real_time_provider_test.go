package time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock(t *testing.T) {
	// Arrange
	loc := time.FixedZone("WAT", 3600)
	fixed := time.Date(2026, 3, 1, 0, 30, 0, 0, loc)
	clock := &Clock{now: func() time.Time { return fixed }}

	// Act
	now := clock.Now()
	elapsed := clock.Since(fixed.Add(-90 * time.Second))

	// Assert
	assert.Equal(t, time.UTC, now.Location())
	assert.Equal(t, 28, now.Day())
	assert.Equal(t, 23, now.Hour())
	assert.Equal(t, 90*time.Second, elapsed)
}

func TestNewRealTimeProvider(t *testing.T) {
	clock := NewRealTimeProvider()

	before := time.Now()
	now := clock.Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.False(t, now.Before(before.Add(-time.Second)))
	assert.GreaterOrEqual(t, clock.Since(before), time.Duration(0))
}
