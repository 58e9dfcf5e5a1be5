package core

import "time"

// TimeProvider is the clock used by the domain; tests replace it to pin dates
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}
