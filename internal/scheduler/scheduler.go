package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/GardenBot_Go/internal/logger"
	"github.com/osse101/GardenBot_Go/internal/worker"
)

// LogMsgTickSkipped is logged when a tick finds the worker queue full
const LogMsgTickSkipped = "Worker queue full, skipping scheduled run"

// Enqueuer accepts jobs without blocking. *worker.Pool satisfies it.
type Enqueuer interface {
	TryEnqueue(job worker.Job) bool
}

// Scheduler feeds jobs into a worker pool at fixed intervals
type Scheduler struct {
	pool   Enqueuer
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	skipped map[string]int
}

func New(pool Enqueuer) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		pool:    pool,
		ctx:     ctx,
		cancel:  cancel,
		skipped: make(map[string]int),
	}
}

// Schedule enqueues job every interval, first one interval from now. A tick
// that finds the queue full is skipped, not deferred, so a slow job never
// builds a backlog of runs.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !s.pool.TryEnqueue(job) {
					s.recordSkip(name, interval)
				}
			case <-s.ctx.Done():
				return
			}
		}
	}()
}

func (s *Scheduler) recordSkip(name string, interval time.Duration) {
	s.mu.Lock()
	s.skipped[name]++
	n := s.skipped[name]
	s.mu.Unlock()
	logger.Warn(LogMsgTickSkipped, "job", name, "interval", interval, "skipped_total", n)
}

// Skipped reports how many runs of the named job were dropped
func (s *Scheduler) Skipped(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.skipped[name]
}

// Stop ends every schedule and waits for the tickers to exit. Safe to call
// more than once.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}
