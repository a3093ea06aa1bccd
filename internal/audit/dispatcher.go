package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const queueSize = 100

type Event struct {
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Dispatcher writes audit events on a background worker so the request path
// never waits on the audit store.
type Dispatcher struct {
	logger *Logger
	log    *slog.Logger
	queue  chan Event

	onDrop func()
	done   chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(logger *Logger, log *slog.Logger, onDrop func()) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, queueSize),
		onDrop: onDrop,
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.logger.Log(
			ctx,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Error("audit write failed", "action", ev.Action, "err", err)
		}
		cancel()
	}
}

// Dispatch drops the event when the queue is full; auditing never breaks
// the API.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warn("audit dispatcher closed, dropping event", "action", ev.Action)
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", "action", ev.Action)
		if d.onDrop != nil {
			d.onDrop()
		}
	}
}

// Close stops accepting events and waits for the worker to drain the queue
// or for ctx to end.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
