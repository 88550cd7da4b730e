// Package events publishes rotation changes to a message broker so other
// services (reminders, chat bots) can react to them.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Routing keys.
const (
	RKPaymentRecorded = "payment.recorded"
	RKCycleReset      = "cycle.reset"
	RKMemberAdded     = "member.added"
	RKMemberRemoved   = "member.removed"
)

// PaymentRecorded is published after a payment is stored.
type PaymentRecorded struct {
	PaymentID   string   `json:"payment_id"`
	MemberID    string   `json:"member_id"`
	MemberName  string   `json:"member_name"`
	Amount      string   `json:"amount"`
	Timestamp   int64    `json:"timestamp"` // unix ms
	IsOverride  bool     `json:"is_override"`
	Kind        string   `json:"kind"`
	Granted     bool     `json:"granted"`
	Consumed    []string `json:"consumed,omitempty"`
	NextPayerID string   `json:"next_payer_id,omitempty"`
}

// CycleReset is published after the history is cleared.
type CycleReset struct {
	Timestamp int64 `json:"timestamp"` // unix ms
}

// MemberChanged is published when a member joins or leaves the rotation.
type MemberChanged struct {
	MemberID string `json:"member_id"`
	Name     string `json:"name"`
}

// Publisher sends an event under a routing key.
type Publisher interface {
	Publish(ctx context.Context, key string, v any) error
	Close() error
}

// Nop discards every event.
type Nop struct{}

func (Nop) Publish(context.Context, string, any) error { return nil }
func (Nop) Close() error                                { return nil }

// AMQPPublisher publishes JSON events to a topic exchange.
type AMQPPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

// NewAMQPPublisher dials the broker and declares a durable topic exchange.
func NewAMQPPublisher(url, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &AMQPPublisher{conn: conn, ch: ch, exchange: exchange}, nil
}

// Publish marshals v as JSON and sends it as a persistent message.
// amqp channels are not safe for concurrent publishing, hence the lock.
func (p *AMQPPublisher) Publish(ctx context.Context, key string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode event %s: %w", key, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	}); err != nil {
		return fmt.Errorf("publish %s: %w", key, err)
	}
	return nil
}

// Close closes the channel and the connection.
func (p *AMQPPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
