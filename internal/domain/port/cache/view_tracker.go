package cache

import (
	"context"
	"time"
)

// ViewTracker remembers which visitors already saw a portfolio
type ViewTracker interface {
	// MarkViewed records the visit and reports whether it is the visitor's first one
	// on this portfolio for the day of at
	MarkViewed(ctx context.Context, portfolioUserID uint64, visitorKey string, at time.Time) (bool, error)
}
