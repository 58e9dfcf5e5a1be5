package database

import (
	"context"
	"database/sql"
	"sync"
	"time"

	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
)

const (
	poolSampleInterval = 30 * time.Second
	pingTimeout        = 2 * time.Second
	// poolPressure is the share of MaxOpenConns in use above which a sample is logged
	poolPressure = 0.8
)

// HealthStatus is the outcome of one readiness check
type HealthStatus struct {
	Healthy   bool   `json:"healthy"`
	LatencyMS int64  `json:"latency_ms"`
	Open      int    `json:"open_connections"`
	InUse     int    `json:"in_use"`
	WaitCount int64  `json:"wait_count"`
	Error     string `json:"error,omitempty"`
}

// poolWatcher samples database/sql pool statistics in the background and
// answers readiness probes
type poolWatcher struct {
	db     *sql.DB
	logger coreport.Logger
	clock  coreport.TimeProvider

	mu   sync.Mutex
	last sql.DBStats

	stop     chan struct{}
	stopOnce sync.Once
}

func newPoolWatcher(db *sql.DB, logger coreport.Logger, clock coreport.TimeProvider) *poolWatcher {
	return &poolWatcher{
		db:     db,
		logger: logger,
		clock:  clock,
		stop:   make(chan struct{}),
	}
}

func (w *poolWatcher) start(interval time.Duration) {
	w.sample()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.sample()
			case <-w.stop:
				return
			}
		}
	}()
}

func (w *poolWatcher) close() {
	w.stopOnce.Do(func() { close(w.stop) })
}

// sample records the pool statistics and warns when callers started queueing
// for connections since the previous sample
func (w *poolWatcher) sample() {
	stats := w.db.Stats()

	w.mu.Lock()
	waited := stats.WaitCount - w.last.WaitCount
	w.last = stats
	w.mu.Unlock()

	busy := stats.MaxOpenConnections > 0 &&
		float64(stats.InUse) >= float64(stats.MaxOpenConnections)*poolPressure
	if busy || waited > 0 {
		w.logger.Warn("Database connection pool under pressure", map[string]any{
			"in_use":       stats.InUse,
			"idle":         stats.Idle,
			"max_open":     stats.MaxOpenConnections,
			"new_waits":    waited,
			"wait_time_ms": stats.WaitDuration.Milliseconds(),
		})
	}
}

func (w *poolWatcher) health(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := w.clock.Now()
	err := w.db.PingContext(ctx)
	stats := w.db.Stats()

	status := HealthStatus{
		Healthy:   err == nil,
		LatencyMS: w.clock.Since(start).Milliseconds(),
		Open:      stats.OpenConnections,
		InUse:     stats.InUse,
		WaitCount: stats.WaitCount,
	}
	if err != nil {
		status.Error = err.Error()
		w.logger.Error("Database ping failed", map[string]any{"error": err.Error()})
	}
	return status
}
