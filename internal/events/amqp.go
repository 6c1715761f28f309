package events

import (
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"

	"skillmatrix-backend/internal/shared/telemetry"
)

const updatesExchange = "match_updates"

// AMQPPublisher mirrors events to a RabbitMQ fanout exchange so
// out-of-process consumers see the same updates as SSE subscribers.
type AMQPPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewAMQPPublisher connects to the broker and declares the updates
// exchange.
func NewAMQPPublisher(url string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	if err := channel.ExchangeDeclare(updatesExchange, "fanout", true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &AMQPPublisher{conn: conn, channel: channel}, nil
}

// Publish sends the event to the fanout exchange. Delivery failures are
// logged and swallowed; the in-process stream stays authoritative.
func (p *AMQPPublisher) Publish(ev Event) {
	body, err := json.Marshal(map[string]any{
		"event": ev.Name,
		"data":  ev.Data,
	})
	if err != nil {
		telemetry.Error("amqp.marshal", map[string]any{"error": err.Error()})
		return
	}
	err = p.channel.Publish(updatesExchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		telemetry.Error("amqp.publish", map[string]any{"error": err.Error()})
	}
}

// Close releases the channel and connection.
func (p *AMQPPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}

var _ Publisher = (*AMQPPublisher)(nil)

// MultiPublisher forwards each event to every wrapped publisher.
type MultiPublisher []Publisher

func (m MultiPublisher) Publish(ev Event) {
	for _, p := range m {
		p.Publish(ev)
	}
}

var _ Publisher = (MultiPublisher)(nil)
