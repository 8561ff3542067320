package mq

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"petstay-backend/internal/pkg/config"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

// dialFunc opens a channel with the exchange declared, plus the connection that owns it.
type dialFunc func() (channel, io.Closer, error)

// Publisher sends outbox payloads to a durable topic exchange; the routing key is the job topic.
// A closed channel or connection is redialed on the next publish.
type Publisher struct {
	mu       sync.Mutex
	dial     dialFunc
	conn     io.Closer
	ch       channel
	exchange string
}

func NewPublisher(cfg config.MQConfig) (*Publisher, error) {
	p := newPublisher(cfg.Exchange, func() (channel, io.Closer, error) {
		return dialExchange(cfg.URL, cfg.Exchange)
	})
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

func newPublisher(exchange string, dial dialFunc) *Publisher {
	return &Publisher{dial: dial, exchange: exchange}
}

func dialExchange(url, exchange string) (channel, io.Closer, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, errors.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, errors.Wrap(err, "open channel")
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, errors.Wrap(err, "declare exchange")
	}
	return ch, conn, nil
}

// connect must be called with mu held, or before the publisher is shared.
func (p *Publisher) connect() error {
	if p.ch != nil && !p.ch.IsClosed() {
		return nil
	}
	p.release()
	ch, conn, err := p.dial()
	if err != nil {
		return err
	}
	p.ch, p.conn = ch, conn
	return nil
}

func (p *Publisher) release() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.ch, p.conn = nil, nil
}

// Publish is safe for concurrent use; amqp channels are not.
func (p *Publisher) Publish(ctx context.Context, messageID uuid.UUID, topic string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    messageID.String(),
		Body:         payload,
	}
	if err := p.connect(); err != nil {
		return errors.Wrapf(err, "publish %s", topic)
	}
	err := p.ch.PublishWithContext(ctx, p.exchange, topic, false, false, msg)
	if errors.Is(err, amqp.ErrClosed) {
		slog.WarnContext(ctx, "rabbitmq channel closed, redialing", slog.String("topic", topic))
		p.release()
		if err = p.connect(); err == nil {
			err = p.ch.PublishWithContext(ctx, p.exchange, topic, false, false, msg)
		}
	}
	if err != nil {
		return errors.Wrapf(err, "publish %s", topic)
	}
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
	}
	var err error
	if p.conn != nil {
		err = p.conn.Close()
	}
	p.ch, p.conn = nil, nil
	return err
}

// LoggingPublisher stands in for the broker when MQ is disabled.
type LoggingPublisher struct{}

func NewLoggingPublisher() *LoggingPublisher {
	return &LoggingPublisher{}
}

func (LoggingPublisher) Publish(ctx context.Context, messageID uuid.UUID, topic string, payload []byte) error {
	slog.InfoContext(ctx, "notification published",
		slog.String("message_id", messageID.String()),
		slog.String("topic", topic),
		slog.Int("bytes", len(payload)))
	return nil
}

func (LoggingPublisher) Close() error { return nil }
