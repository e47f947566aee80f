package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/tournament-rewards/internal/logger"
)

// Publisher is what services depend on to emit events without blocking on subscribers
type Publisher interface {
	PublishWithRetry(ctx context.Context, evt Event)
}

type retryEntry struct {
	event    Event
	attempts int
	lastErr  error
}

// ResilientPublisher publishes to a Bus and retries failures in the background with
// exponential backoff. Events that exhaust their retries are written to a dead-letter file.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter
	shutdown   chan struct{}
	closeOnce  sync.Once
	wg         sync.WaitGroup
}

// NewResilientPublisher creates the publisher and starts its retry worker
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

// PublishWithRetry makes one synchronous attempt and queues the event for retry on failure
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, evt Event) {
	err := p.bus.Publish(ctx, evt)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", evt.Type,
		"error", err)

	entry := retryEntry{event: evt, attempts: 0, lastErr: err}
	select {
	case <-p.shutdown:
		logger.FromContext(ctx).Warn(LogMsgEventDroppedShutdown, "event_type", evt.Type)
		p.writeDeadLetter(entry)
	case p.retryQueue <- entry:
	default:
		logger.FromContext(ctx).Error(LogMsgRetryQueueFull, "event_type", evt.Type)
		p.writeDeadLetter(entry)
	}
}

// Publish satisfies Bus so the publisher can stand in where a Bus is expected
func (p *ResilientPublisher) Publish(ctx context.Context, evt Event) error {
	p.PublishWithRetry(ctx, evt)
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	for {
		select {
		case entry := <-p.retryQueue:
			p.retry(entry)
		case <-p.shutdown:
			p.drain()
			return
		}
	}
}

func (p *ResilientPublisher) retry(entry retryEntry) {
	ctx := context.Background()

	for entry.attempts < p.maxRetries {
		entry.attempts++

		select {
		case <-time.After(CalculateRetryDelay(p.retryDelay, entry.attempts)):
		case <-p.shutdown:
			p.finalAttempt(ctx, entry)
			return
		}

		err := p.bus.Publish(ctx, entry.event)
		if err == nil {
			logger.Info(LogMsgEventRetrySucceeded,
				"event_type", entry.event.Type,
				"attempt", entry.attempts)
			return
		}
		entry.lastErr = err
		logger.Warn(LogMsgEventRetryFailed,
			"event_type", entry.event.Type,
			"attempt", entry.attempts,
			"error", err)
	}

	logger.Error(LogMsgEventRetryExhausted,
		"event_type", entry.event.Type,
		"attempts", entry.attempts)
	p.writeDeadLetter(entry)
}

// drain gives every queued event one last attempt
func (p *ResilientPublisher) drain() {
	ctx := context.Background()
	drained := 0
	for {
		select {
		case entry := <-p.retryQueue:
			p.finalAttempt(ctx, entry)
			drained++
		default:
			if drained > 0 {
				logger.Info(LogMsgQueueDrainedShutdown, "events", drained)
			}
			return
		}
	}
}

func (p *ResilientPublisher) finalAttempt(ctx context.Context, entry retryEntry) {
	entry.attempts++
	if err := p.bus.Publish(ctx, entry.event); err != nil {
		entry.lastErr = err
		p.writeDeadLetter(entry)
	}
}

func (p *ResilientPublisher) writeDeadLetter(entry retryEntry) {
	if p.deadLetter == nil {
		return
	}
	if err := p.deadLetter.Write(entry.event, entry.attempts, entry.lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "event_type", entry.event.Type, "error", err)
	}
}

// Shutdown stops the retry worker after draining the queue, then closes the dead-letter file
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
