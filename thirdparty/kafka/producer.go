package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/muhammadheryan/inventory/model"
	"github.com/muhammadheryan/inventory/utils/logger"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const movementEventType = "stock.movement.recorded"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// MovementProducer streams committed stock movements keyed by product id, so every product's
// movements land on one partition in commit order.
type MovementProducer struct {
	writer messageWriter
}

// NewMovementProducer builds an async writer; delivery failures are logged from the completion
// callback and never reach the caller.
func NewMovementProducer(brokers []string, topic string) *MovementProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Error("[MovementProducer] deliver batch", zap.Int("messages", len(messages)), zap.String("error", err.Error()))
			}
		},
	}
	return &MovementProducer{writer: writer}
}

func (p *MovementProducer) PublishMovement(ctx context.Context, movement *model.StockMovement) error {
	value, err := json.Marshal(movement)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(movement.ProductID),
		Value: value,
		Time:  movement.CreatedAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(movementEventType)},
			{Key: "movement_type", Value: []byte(movement.MovementType)},
		},
	})
}

func (p *MovementProducer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
