package wallet

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errs "github.com/guidy-app/joblight/internal/domain/error"
	mockcore "github.com/guidy-app/joblight/mocks/port/core"
)

func newQuietLogger(t *testing.T) *mockcore.MockLogger {
	logger := mockcore.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Return().Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Return().Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Return().Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Return().Maybe()
	return logger
}

func TestExecutor_SerializesJobsOfOneUser(t *testing.T) {
	// Arrange
	executor := NewExecutor(newQuietLogger(t), 4, 10)
	defer executor.Shutdown()

	var active, maxActive, done int32
	var wg sync.WaitGroup

	// Act
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := executor.Do(context.Background(), 7, func(ctx context.Context) error {
				now := atomic.AddInt32(&active, 1)
				for {
					prev := atomic.LoadInt32(&maxActive)
					if now <= prev || atomic.CompareAndSwapInt32(&maxActive, prev, now) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&active, -1)
				atomic.AddInt32(&done, 1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Assert
	assert.Equal(t, int32(1), atomic.LoadInt32(&maxActive))
	assert.Equal(t, int32(50), atomic.LoadInt32(&done))
}

func TestExecutor_ReturnsJobError(t *testing.T) {
	executor := NewExecutor(newQuietLogger(t), 2, 1)
	defer executor.Shutdown()

	boom := errors.New("boom")
	err := executor.Do(context.Background(), 1, func(ctx context.Context) error { return boom })

	assert.ErrorIs(t, err, boom)
}

func TestExecutor_RunsDifferentUsersInParallel(t *testing.T) {
	// Arrange
	executor := NewExecutor(newQuietLogger(t), 2, 1)
	defer executor.Shutdown()

	release := make(chan struct{})
	started := make(chan struct{})

	go func() {
		_ = executor.Do(context.Background(), 1, func(ctx context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	// Act: user 2 lands on the other queue and must not wait for user 1
	ran := make(chan struct{})
	err := executor.Do(context.Background(), 2, func(ctx context.Context) error {
		close(ran)
		return nil
	})
	close(release)

	// Assert
	require.NoError(t, err)
	select {
	case <-ran:
	default:
		t.Fatal("job of user 2 did not run")
	}
}

func TestExecutor_Shutdown(t *testing.T) {
	// Arrange
	executor := NewExecutor(newQuietLogger(t), 2, 1)
	require.NoError(t, executor.Do(context.Background(), 1, func(ctx context.Context) error { return nil }))

	// Act
	executor.Shutdown()
	err := executor.Do(context.Background(), 1, func(ctx context.Context) error { return nil })

	// Assert
	assert.ErrorIs(t, err, errs.ErrShuttingDown)
	executor.Shutdown()
}

func TestExecutor_HonorsCanceledContext(t *testing.T) {
	executor := NewExecutor(newQuietLogger(t), 1, 1)
	defer executor.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := executor.Do(ctx, 1, func(ctx context.Context) error {
		t.Error("job must not run with a canceled context")
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
}
