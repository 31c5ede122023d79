package audit

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/table-reservation/internal/events"
	"github.com/BruksfildServices01/table-reservation/internal/logger"
)

const (
	queueSize        = 100
	publishQueueSize = 500
	publishTimeout   = 5 * time.Second
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Dispatcher records audit events off the request path. Rows are written by
// one worker; publishing runs on a second worker with its own queue. When a
// queue is full events are dropped and the request still succeeds.
type Dispatcher struct {
	logger    *Logger
	publisher events.Publisher
	queue     chan Event
	outbox    chan events.Event

	mu     sync.RWMutex
	closed bool

	written   chan struct{}
	published chan struct{}
}

func NewDispatcher(logger *Logger, publisher events.Publisher) *Dispatcher {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}

	d := &Dispatcher{
		logger:    logger,
		publisher: publisher,
		queue:     make(chan Event, queueSize),
		outbox:    make(chan events.Event, publishQueueSize),
		written:   make(chan struct{}),
		published: make(chan struct{}),
	}

	go d.writer()
	go d.publish()
	return d
}

func (d *Dispatcher) writer() {
	defer close(d.written)
	defer close(d.outbox)

	for ev := range d.queue {
		if err := d.logger.Log(ev.UserID, ev.Action, ev.Entity, ev.EntityID, ev.Metadata); err != nil {
			logger.Log.WithError(err).WithField("action", ev.Action).Error("audit write failed")
		}

		select {
		case d.outbox <- events.Event{
			Type:       ev.Action,
			UserID:     ev.UserID,
			Entity:     ev.Entity,
			EntityID:   ev.EntityID,
			Payload:    ev.Metadata,
			OccurredAt: time.Now().UTC(),
		}:
		default:
			logger.Log.WithField("type", ev.Action).Warn("event queue full, dropping event")
		}
	}
}

func (d *Dispatcher) publish() {
	defer close(d.published)

	for ev := range d.outbox {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		err := d.publisher.Publish(ctx, ev)
		cancel()

		if err != nil {
			logger.Log.WithError(err).WithField("type", ev.Type).Warn("event publish failed")
		}
	}
}

// Dispatch queues ev. It is a no-op on a nil or closed Dispatcher.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		logger.Log.WithField("action", ev.Action).Warn("audit dispatcher closed, dropping event")
		return
	}

	select {
	case d.queue <- ev:
	default:
		logger.Log.WithField("action", ev.Action).Warn("audit queue full, dropping event")
	}
}

// Shutdown stops accepting events and waits until queued rows are written
// and queued events are published, or until ctx is done.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	for _, done := range []chan struct{}{d.written, d.published} {
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Close is Shutdown without a deadline.
func (d *Dispatcher) Close() {
	_ = d.Shutdown(context.Background())
}
