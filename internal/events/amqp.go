package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/BruksfildServices01/table-reservation/internal/logger"
)

const (
	dialTimeout    = 3 * time.Second
	reconnectDelay = 15 * time.Second
)

// ErrBrokerUnavailable is returned without dialing while a failed connect is
// still inside its reconnect delay.
var ErrBrokerUnavailable = errors.New("rabbitmq: broker unavailable, retry pending")

// AMQPPublisher publishes JSON events to a durable queue on the default
// exchange. The connection is opened lazily and reopened after failures.
type AMQPPublisher struct {
	url   string
	queue string

	dialTimeout    time.Duration
	reconnectDelay time.Duration

	mu         sync.Mutex
	conn       *amqp.Connection
	ch         *amqp.Channel
	retryAfter time.Time
	now        func() time.Time
}

func NewAMQPPublisher(url, queue string) *AMQPPublisher {
	return &AMQPPublisher{
		url:            url,
		queue:          queue,
		dialTimeout:    dialTimeout,
		reconnectDelay: reconnectDelay,
		now:            time.Now,
	}
}

func (p *AMQPPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.closeLocked()

	if p.now().Before(p.retryAfter) {
		return nil, ErrBrokerUnavailable
	}

	ch, err := p.connect()
	if err != nil {
		p.retryAfter = p.now().Add(p.reconnectDelay)
		return nil, err
	}
	p.retryAfter = time.Time{}
	return ch, nil
}

func (p *AMQPPublisher) connect() (*amqp.Channel, error) {
	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(p.dialTimeout),
	})
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	if _, err := ch.QueueDeclare(
		p.queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	p.conn, p.ch = conn, ch
	return ch, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, ev Event) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if errors.Is(err, ErrBrokerUnavailable) {
		return err
	}
	if err != nil {
		logger.Log.WithError(err).Warn("rabbitmq: connect failed")
		return err
	}

	err = ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Type:         ev.Type,
			Body:         body,
		},
	)
	if err != nil {
		logger.Log.WithError(err).WithField("type", ev.Type).Warn("rabbitmq: publish failed")
		p.closeLocked()
	}
	return err
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeLocked()
	return nil
}

func (p *AMQPPublisher) closeLocked() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

var _ Publisher = (*AMQPPublisher)(nil)
