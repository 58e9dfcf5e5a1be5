package time

import (
	"time"

	"github.com/guidy-app/joblight/internal/domain/port/core"
)

// Clock reads the wall clock. Times are returned in UTC so that daily buckets
// such as unique portfolio views do not depend on the server zone.
type Clock struct {
	now func() time.Time
}

// NewRealTimeProvider returns the UTC wall clock
func NewRealTimeProvider() core.TimeProvider {
	return &Clock{now: time.Now}
}

// Now returns the current time in UTC
func (c *Clock) Now() time.Time {
	return c.now().UTC()
}

// Since returns the time elapsed since t
func (c *Clock) Since(t time.Time) time.Duration {
	return c.now().Sub(t)
}
