package database

import (
	"context"
	"errors"
	"testing"
	"time"

	mockcore "github.com/guidy-app/joblight/mocks/port/core"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func fastBackoff() backoff {
	return backoff{attempts: 3, base: time.Millisecond, max: 2 * time.Millisecond}
}

func TestRetry(t *testing.T) {
	t.Run("repeats transient failures until success", func(t *testing.T) {
		// Arrange
		mockLogger := mockcore.NewMockLogger(t)
		mockLogger.EXPECT().Warn("Transient database failure", mock.Anything).Return().Twice()
		calls := 0

		// Act
		err := retry(context.Background(), fastBackoff(), mockLogger, "begin", func() error {
			calls++
			if calls < 3 {
				return &pgconn.PgError{Code: "40P01"}
			}
			return nil
		})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns permanent failures immediately", func(t *testing.T) {
		// Arrange
		mockLogger := mockcore.NewMockLogger(t)
		calls := 0

		// Act
		err := retry(context.Background(), fastBackoff(), mockLogger, "begin", func() error {
			calls++
			return &pgconn.PgError{Code: "42601"}
		})

		// Assert
		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up when attempts run out", func(t *testing.T) {
		// Arrange
		mockLogger := mockcore.NewMockLogger(t)
		mockLogger.EXPECT().Warn("Transient database failure", mock.Anything).Return().Times(3)
		mockLogger.EXPECT().Error("Database operation kept failing", mock.Anything).Return().Once()

		// Act
		err := retry(context.Background(), fastBackoff(), mockLogger, "begin", func() error {
			return errors.New("ERROR: deadlock detected")
		})

		// Assert
		assert.ErrorContains(t, err, "deadlock")
	})

	t.Run("stops when the context ends", func(t *testing.T) {
		// Arrange
		mockLogger := mockcore.NewMockLogger(t)
		mockLogger.EXPECT().Warn("Transient database failure", mock.Anything).Return().Once()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		slow := backoff{attempts: 3, base: time.Hour, max: time.Hour}

		// Act
		err := retry(ctx, slow, mockLogger, "begin", func() error {
			return &pgconn.PgError{Code: "08006"}
		})

		// Assert
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestBackoffDelay(t *testing.T) {
	b := backoff{base: 10 * time.Millisecond, max: 50 * time.Millisecond, jitter: 0.5}

	assert.GreaterOrEqual(t, b.delay(0), 10*time.Millisecond)
	assert.LessOrEqual(t, b.delay(0), 15*time.Millisecond)
	assert.GreaterOrEqual(t, b.delay(10), 50*time.Millisecond)
	assert.LessOrEqual(t, b.delay(10), 75*time.Millisecond)
	assert.LessOrEqual(t, b.delay(100), 75*time.Millisecond)
}
