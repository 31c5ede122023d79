package events

import (
	"context"
	"time"
)

type Event struct {
	Type       string    `json:"type"`
	UserID     *uint     `json:"userId,omitempty"`
	Entity     string    `json:"entity"`
	EntityID   *uint     `json:"entityId,omitempty"`
	Payload    any       `json:"payload,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher ships events out of process. Failures are reported but must
// never fail the request that produced the event.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
	Close() error
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
func (NopPublisher) Close() error                         { return nil }
