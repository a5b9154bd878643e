package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/streadway/amqp"
)

// NopPublisher drops every entry
type NopPublisher struct{}

// Publish implements Publisher
func (NopPublisher) Publish(context.Context, Entry) error { return nil }

// Close implements Publisher
func (NopPublisher) Close() error { return nil }

// AMQPPublisher sends entries as JSON to a topic exchange, routed by activity.<type>
type AMQPPublisher struct {
	exchange string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewAMQPPublisher dials url and declares exchange
func NewAMQPPublisher(url, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("error connecting to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	return &AMQPPublisher{exchange: exchange, conn: conn, ch: ch}, nil
}

// RoutingKey is the routing key of e
func RoutingKey(e Entry) string {
	if e.Type == "" {
		return "activity.other"
	}
	return fmt.Sprintf("activity.%s", e.Type)
}

// Publish implements Publisher. amqp channels are not safe for concurrent publishing.
func (p *AMQPPublisher) Publish(_ context.Context, e Entry) error {
	body, err := json.Marshal(e)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.Publish(
		p.exchange,
		RoutingKey(e),
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Timestamp:   e.Timestamp,
			MessageId:   e.ID,
			Body:        body,
		},
	)
}

// Close implements Publisher
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}
