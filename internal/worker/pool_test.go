package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/GardenBot_Go/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
	err      error
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return j.err
}

type blockingJob struct {
	started chan struct{}
}

func (j *blockingJob) Process(ctx context.Context) error {
	close(j.started)
	<-ctx.Done()
	return ctx.Err()
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(2, 10)
	pool.Start()
	defer pool.Stop()

	job := &testJob{executed: &executed}
	pool.Enqueue(job)
	pool.Enqueue(job)

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestPool_JobErrorDoesNotStopWorker(t *testing.T) {
	var executed int32
	pool := NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	pool.Enqueue(&testJob{executed: &executed, err: errors.New("boom")})
	pool.Enqueue(&testJob{executed: &executed})

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestPool_TryEnqueueFull(t *testing.T) {
	var executed int32
	// not started, so nothing drains the queue
	pool := NewPool(1, 1)
	defer pool.Stop()

	assert.True(t, pool.TryEnqueue(&testJob{executed: &executed}))
	assert.False(t, pool.TryEnqueue(&testJob{executed: &executed}))
}

func TestPool_StopCancelsRunningJob(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	pool := NewPoolWithTimeout(1, 1, time.Minute)
	pool.Start()

	job := &blockingJob{started: make(chan struct{})}
	pool.Enqueue(job)
	<-job.started

	pool.Stop()
	assert.False(t, pool.TryEnqueue(job))

	checker.Check(0)
}

func TestPool_EnqueueAfterStopDoesNotBlock(t *testing.T) {
	var executed int32
	pool := NewPool(1, 0)
	pool.Start()
	pool.Stop()

	done := make(chan struct{})
	go func() {
		pool.Enqueue(&testJob{executed: &executed})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked on a stopped pool")
	}
	assert.Zero(t, atomic.LoadInt32(&executed))
}
