package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/GardenBot_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// Named is implemented by jobs that want a readable name in logs
type Named interface {
	Name() string
}

// Pool runs queued jobs on a fixed number of goroutines
type Pool struct {
	workers    int
	jobQueue   chan Job
	jobTimeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

// NewPool creates a new worker pool. Each job runs with DefaultJobTimeout.
func NewPool(workers int, queueSize int) *Pool {
	return NewPoolWithTimeout(workers, queueSize, DefaultJobTimeout)
}

// NewPoolWithTimeout creates a pool with a per-job deadline
func NewPoolWithTimeout(workers, queueSize int, jobTimeout time.Duration) *Pool {
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers:    workers,
		jobQueue:   make(chan Job, queueSize),
		jobTimeout: jobTimeout,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.ctx.Done():
			return
		}
	}
}

func (p *Pool) run(job Job) {
	ctx, cancel := context.WithTimeout(p.ctx, p.jobTimeout)
	defer cancel()

	if err := job.Process(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "job", jobName(job), "error", err)
	}
}

// Enqueue adds a job to the queue, blocking while it is full.
// Jobs enqueued after Stop are dropped.
func (p *Pool) Enqueue(job Job) {
	select {
	case p.jobQueue <- job:
	case <-p.ctx.Done():
		logger.Warn(LogMsgJobDroppedStopped, "job", jobName(job))
	}
}

// TryEnqueue adds a job without blocking. It returns false if the queue is
// full or the pool has stopped.
func (p *Pool) TryEnqueue(job Job) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// Stop cancels running jobs and waits for the workers to exit
func (p *Pool) Stop() {
	p.once.Do(p.cancel)
	p.wg.Wait()
}

func jobName(job Job) string {
	if n, ok := job.(Named); ok {
		return n.Name()
	}
	return "anonymous"
}
