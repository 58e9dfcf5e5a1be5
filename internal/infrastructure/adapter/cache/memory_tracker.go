package cache

import (
	"context"
	"sync"
	"time"
)

// pruneEvery is how many inserts happen between sweeps of expired markers
const pruneEvery = 1024

// MemoryViewTracker keeps markers in process memory. Counts restart with the process.
type MemoryViewTracker struct {
	mu      sync.Mutex
	ttl     time.Duration
	seen    map[string]time.Time // key -> expiry
	inserts int
}

// NewMemoryViewTracker creates an empty tracker
func NewMemoryViewTracker(ttl time.Duration) *MemoryViewTracker {
	return &MemoryViewTracker{ttl: ttl, seen: make(map[string]time.Time)}
}

// MarkViewed records the visit and reports whether it is the first for the day
func (t *MemoryViewTracker) MarkViewed(_ context.Context, portfolioUserID uint64, visitorKey string, at time.Time) (bool, error) {
	key := viewKey(portfolioUserID, visitorKey, at)

	t.mu.Lock()
	defer t.mu.Unlock()

	if expiry, ok := t.seen[key]; ok && at.Before(expiry) {
		return false, nil
	}

	t.seen[key] = at.Add(t.ttl)
	t.inserts++
	if t.inserts%pruneEvery == 0 {
		t.prune(at)
	}
	return true, nil
}

func (t *MemoryViewTracker) prune(now time.Time) {
	for key, expiry := range t.seen {
		if !now.Before(expiry) {
			delete(t.seen, key)
		}
	}
}

// Len returns the number of live markers
func (t *MemoryViewTracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.seen)
}
