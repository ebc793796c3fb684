package rabbitmq

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/muhammadheryan/inventory/model"
	"github.com/rabbitmq/amqp091-go"
)

// Publisher sends low-stock events to the alert queue. An amqp channel is not safe for
// concurrent publishing, so sends are serialised.
type Publisher struct {
	mu      sync.Mutex
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewPublisher(url string) (*Publisher, error) {
	conn, channel, err := dial(url)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel}, nil
}

func (p *Publisher) NotifyLowStock(ctx context.Context, event model.LowStockEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.channel.PublishWithContext(ctx,
		lowStockExchange,   // exchange
		lowStockRoutingKey, // routing key
		false,              // mandatory
		false,              // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    event.OccurredAt,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
