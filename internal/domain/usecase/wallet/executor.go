package wallet

import (
	"context"
	"sync"

	errs "github.com/guidy-app/joblight/internal/domain/error"
	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
)

// DefaultQueueCount is the number of worker queues when none is configured
const DefaultQueueCount = 64

// JobFunc is a unit of work executed on a user's queue
type JobFunc func(ctx context.Context) error

// Executor runs jobs of the same user one after another.
// Users are spread over a fixed number of queues, each drained by one goroutine,
// so jobs of one user never overlap while different users proceed in parallel.
type Executor struct {
	logger     coreport.Logger
	queueCount int
	queueSize  int

	mu      sync.RWMutex
	queues  map[int]chan *job
	stopped bool
	wg      sync.WaitGroup
}

// job is a queued unit of work
type job struct {
	ctx    context.Context
	userID uint64
	fn     JobFunc
	done   chan error
}

// NewExecutor creates an executor with queueCount queues of queueSize pending jobs each
func NewExecutor(logger coreport.Logger, queueCount, queueSize int) *Executor {
	if queueCount <= 0 {
		queueCount = DefaultQueueCount
	}
	if queueSize <= 0 {
		queueSize = 100
	}

	return &Executor{
		logger:     logger,
		queueCount: queueCount,
		queueSize:  queueSize,
		queues:     make(map[int]chan *job, queueCount),
	}
}

// Do runs fn on the user's queue and waits for its result
func (e *Executor) Do(ctx context.Context, userID uint64, fn JobFunc) error {
	if fn == nil {
		return errs.ErrInternalServer
	}

	j := &job{
		ctx:    ctx,
		userID: userID,
		fn:     fn,
		done:   make(chan error, 1),
	}

	if err := e.enqueue(ctx, j); err != nil {
		return err
	}

	select {
	case err := <-j.done:
		return err
	case <-ctx.Done():
		e.logger.Warn("Context canceled while waiting for wallet job", map[string]any{
			"user_id": userID,
			"error":   ctx.Err().Error(),
		})
		return ctx.Err()
	}
}

// enqueue hands the job to its queue, starting the worker on first use
func (e *Executor) enqueue(ctx context.Context, j *job) error {
	e.mu.RLock()
	if e.stopped {
		e.mu.RUnlock()
		return errs.ErrShuttingDown
	}
	queue, ok := e.queues[e.slot(j.userID)]
	e.mu.RUnlock()

	if !ok {
		queue = e.startQueue(e.slot(j.userID))
		if queue == nil {
			return errs.ErrShuttingDown
		}
	}

	// The read lock keeps Shutdown from closing the queue while we send
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.stopped {
		return errs.ErrShuttingDown
	}

	select {
	case queue <- j:
		return nil
	case <-ctx.Done():
		e.logger.Warn("Context canceled while enqueueing wallet job", map[string]any{
			"user_id": j.userID,
			"error":   ctx.Err().Error(),
		})
		return ctx.Err()
	}
}

func (e *Executor) slot(userID uint64) int {
	return int(userID % uint64(e.queueCount))
}

// startQueue creates the queue of a slot unless another caller already did
func (e *Executor) startQueue(slot int) chan *job {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stopped {
		return nil
	}
	if queue, ok := e.queues[slot]; ok {
		return queue
	}

	queue := make(chan *job, e.queueSize)
	e.queues[slot] = queue
	e.wg.Add(1)
	go e.work(slot, queue)

	e.logger.Debug("Started wallet queue worker", map[string]any{"slot": slot})
	return queue
}

// work drains one queue until it is closed
func (e *Executor) work(slot int, queue chan *job) {
	defer e.wg.Done()

	for j := range queue {
		if err := j.ctx.Err(); err != nil {
			j.done <- err
			continue
		}
		j.done <- j.fn(j.ctx)
	}

	e.logger.Debug("Wallet queue worker stopped", map[string]any{"slot": slot})
}

// Shutdown stops accepting jobs, lets queued jobs finish and waits for every worker
func (e *Executor) Shutdown() {
	e.logger.Info("Shutting down wallet executor", nil)

	e.mu.Lock()
	if !e.stopped {
		e.stopped = true
		for _, queue := range e.queues {
			close(queue)
		}
	}
	e.mu.Unlock()

	e.wg.Wait()
	e.logger.Info("Wallet executor shut down", nil)
}
