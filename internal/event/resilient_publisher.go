package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/GardenBot_Go/internal/logger"
)

type retryEntry struct {
	event   Event
	attempt int
	lastErr error
}

// ResilientPublisher wraps a Bus with a bounded retry queue and a dead-letter
// file. The first delivery attempt is synchronous; failures are retried by a
// single background worker with exponential backoff.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter

	shutdown  chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewResilientPublisher creates a publisher and starts its retry worker
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	p.wg.Add(1)
	go p.retryWorker()
	return p, nil
}

// Publish implements Bus. Delivery failures never reach the caller.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	p.PublishWithRetry(ctx, event)
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

// PublishWithRetry attempts delivery once and queues the event for retry on failure
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err)
	p.enqueue(retryEntry{event: event, attempt: 1, lastErr: err})
}

func (p *ResilientPublisher) enqueue(entry retryEntry) {
	select {
	case p.retryQueue <- entry:
	default:
		logger.Error(LogMsgRetryQueueFull, "event_type", entry.event.Type)
		p.writeDeadLetter(entry)
	}
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	for {
		select {
		case entry := <-p.retryQueue:
			p.process(entry)
		case <-p.shutdown:
			p.drain()
			return
		}
	}
}

func (p *ResilientPublisher) process(entry retryEntry) {
	timer := time.NewTimer(CalculateRetryDelay(p.retryDelay, entry.attempt))
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-p.shutdown:
		p.finalAttempt(entry)
		return
	}

	err := p.bus.Publish(context.Background(), entry.event)
	if err == nil {
		logger.Info(LogMsgEventRetrySucceeded,
			"event_type", entry.event.Type,
			"attempt", entry.attempt)
		return
	}

	entry.lastErr = err
	if entry.attempt >= p.maxRetries {
		logger.Error(LogMsgEventRetryExhausted,
			"event_type", entry.event.Type,
			"attempts", entry.attempt,
			"error", err)
		p.writeDeadLetter(entry)
		return
	}

	logger.Warn(LogMsgEventRetryFailed,
		"event_type", entry.event.Type,
		"attempt", entry.attempt,
		"error", err)
	entry.attempt++
	p.enqueue(entry)
}

// drain gives every queued event one last immediate attempt
func (p *ResilientPublisher) drain() {
	drained := 0
	for {
		select {
		case entry := <-p.retryQueue:
			p.finalAttempt(entry)
			drained++
		default:
			if drained > 0 {
				logger.Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return
		}
	}
}

func (p *ResilientPublisher) finalAttempt(entry retryEntry) {
	if err := p.bus.Publish(context.Background(), entry.event); err != nil {
		entry.lastErr = err
		p.writeDeadLetter(entry)
	}
}

func (p *ResilientPublisher) writeDeadLetter(entry retryEntry) {
	if p.deadLetter == nil {
		return
	}
	if err := p.deadLetter.Write(entry.event, entry.attempt, entry.lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "event_type", entry.event.Type, "error", err)
	}
}

// Shutdown stops the retry worker after draining the queue.
// Returns ctx.Err() if the drain does not finish in time.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.closeOnce.Do(func() { close(p.shutdown) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}

	if p.deadLetter != nil {
		return p.deadLetter.Close()
	}
	return nil
}
