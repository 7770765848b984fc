// Package queue publishes outbox notification jobs to RabbitMQ.
package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/errs"
)

var ErrBrokerUnavailable = errs.New("message broker unavailable")

// Publisher keeps one connection and channel open and redials lazily after a
// failure. Every topic is a durable queue on the default exchange.
type Publisher struct {
	url string

	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	declared map[string]bool
}

func NewPublisher(cfg config.RabbitMQConfig) *Publisher {
	return &Publisher{
		url:      cfg.URL,
		declared: map[string]bool{},
	}
}

// Ready dials the broker if needed.
func (p *Publisher) Ready() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ensureChannel()
}

func (p *Publisher) Publish(ctx context.Context, topic string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureChannel(); err != nil {
		return err
	}

	if !p.declared[topic] {
		if _, err := p.ch.QueueDeclare(topic, true, false, false, false, nil); err != nil {
			p.resetLocked()
			return errs.Mark(errs.Wrapf(err, "queue declare %s", topic), ErrBrokerUnavailable)
		}
		p.declared[topic] = true
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := p.ch.PublishWithContext(ctx, "", topic, false, false, msg); err != nil {
		p.resetLocked()
		return errs.Mark(errs.Wrapf(err, "publish to %s", topic), ErrBrokerUnavailable)
	}
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resetLocked()
	return nil
}

func (p *Publisher) ensureChannel() error {
	if p.ch != nil && !p.ch.IsClosed() {
		return nil
	}
	p.resetLocked()

	if p.url == "" {
		return ErrBrokerUnavailable
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "rabbitmq dial"), ErrBrokerUnavailable)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return errs.Mark(errs.Wrap(err, "rabbitmq channel"), ErrBrokerUnavailable)
	}

	p.conn = conn
	p.ch = ch
	slog.Info("rabbitmq connected")
	return nil
}

func (p *Publisher) resetLocked() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
	p.declared = map[string]bool{}
}
