package database

import (
	"context"
	"math/rand"
	"time"

	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/pgerr"
)

// backoff describes how an operation hit by a transient failure is repeated
type backoff struct {
	attempts int
	base     time.Duration
	max      time.Duration
	jitter   float64 // share of the delay added at random, 0 to 1
}

var defaultBackoff = backoff{
	attempts: 3,
	base:     50 * time.Millisecond,
	max:      time.Second,
	jitter:   0.2,
}

// delay is base doubled per attempt, capped at max, plus jitter
func (b backoff) delay(attempt int) time.Duration {
	d := b.base << attempt
	if d <= 0 || d > b.max {
		d = b.max
	}
	if b.jitter > 0 {
		d += time.Duration(float64(d) * b.jitter * rand.Float64())
	}
	return d
}

// retry runs fn until it succeeds, fails with an error pgerr does not deem
// retryable, or the attempts are used up
func retry(ctx context.Context, b backoff, logger coreport.Logger, op string, fn func() error) error {
	var err error
	for attempt := 0; attempt < b.attempts; attempt++ {
		if err = fn(); err == nil || !pgerr.Retryable(err) {
			return err
		}

		wait := b.delay(attempt)
		logger.Warn("Transient database failure", map[string]any{
			"operation":   op,
			"attempt":     attempt + 1,
			"of":          b.attempts,
			"kind":        pgerr.Classify(err).String(),
			"error":       err.Error(),
			"retry_after": wait.String(),
		})

		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	logger.Error("Database operation kept failing", map[string]any{
		"operation": op,
		"attempts":  b.attempts,
		"error":     err.Error(),
	})
	return err
}
