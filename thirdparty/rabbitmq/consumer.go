package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/muhammadheryan/inventory/model"
	"github.com/muhammadheryan/inventory/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const handleTimeout = 10 * time.Second

// Handler processes one decoded low-stock event.
type Handler func(ctx context.Context, event model.LowStockEvent) error

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	handler Handler
}

func NewConsumer(url string, handler Handler) (*Consumer, error) {
	conn, channel, err := dial(url)
	if err != nil {
		return nil, err
	}
	return &Consumer{conn: conn, channel: channel, handler: handler}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// one message at a time
	if err := c.channel.Qos(1, 0, false); err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		lowStockQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					logger.Warn("[Consumer] delivery channel closed")
					return
				}
				c.handle(ctx, msg)
			}
		}
	}()

	return nil
}

// handle acks malformed messages and rejects failed ones without requeue.
func (c *Consumer) handle(ctx context.Context, msg amqp091.Delivery) {
	var event model.LowStockEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		logger.Error("[Consumer] unmarshal low stock event", zap.String("error", err.Error()))
		_ = msg.Ack(false)
		return
	}

	hctx, cancel := context.WithTimeout(ctx, handleTimeout)
	defer cancel()

	if err := c.handler(hctx, event); err != nil {
		logger.Error("[Consumer] handle low stock event",
			zap.String("product_id", event.ProductID),
			zap.String("error", err.Error()))
		_ = msg.Nack(false, false)
		return
	}

	_ = msg.Ack(false)
	logger.Debug("[Consumer] low stock event handled", zap.String("product_id", event.ProductID))
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
