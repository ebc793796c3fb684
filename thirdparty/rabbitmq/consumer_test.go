package rabbitmq

import (
	"context"
	"errors"
	"testing"

	"github.com/muhammadheryan/inventory/model"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
)

type fakeAcknowledger struct {
	acked   int
	nacked  int
	requeue bool
}

func (f *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	f.acked++
	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, multiple bool, requeue bool) error {
	f.nacked++
	f.requeue = requeue
	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return f.Nack(tag, false, requeue)
}

func TestConsumer_handle(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		handlerErr error
		wantCalled bool
		wantAcked  int
		wantNacked int
	}{
		{
			name:       "success: event handled and acked",
			body:       `{"merchant_id":"m1","product_id":"p1","current_stock":4,"threshold":10}`,
			wantCalled: true,
			wantAcked:  1,
		},
		{
			name:      "malformed body is acked without handling",
			body:      `{not json`,
			wantAcked: 1,
		},
		{
			name:       "handler failure is rejected without requeue",
			body:       `{"merchant_id":"m1","product_id":"p1","current_stock":4,"threshold":10}`,
			handlerErr: errors.New("db down"),
			wantCalled: true,
			wantNacked: 1,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var got *model.LowStockEvent
			c := &Consumer{handler: func(ctx context.Context, event model.LowStockEvent) error {
				got = &event
				return tt.handlerErr
			}}
			ack := &fakeAcknowledger{}

			c.handle(context.Background(), amqp091.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: []byte(tt.body)})

			assert.Equal(t, tt.wantCalled, got != nil)
			if tt.wantCalled {
				assert.Equal(t, "p1", got.ProductID)
				assert.Equal(t, int64(4), got.CurrentStock)
			}
			assert.Equal(t, tt.wantAcked, ack.acked)
			assert.Equal(t, tt.wantNacked, ack.nacked)
			assert.False(t, ack.requeue)
		})
	}
}
