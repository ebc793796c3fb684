package alert

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/muhammadheryan/inventory/model"
	"github.com/muhammadheryan/inventory/utils/logger"
	"go.uber.org/zap"
)

var (
	ErrDispatcherClosed = stderrors.New("alert dispatcher closed")
	ErrQueueFull        = stderrors.New("alert queue full")
)

const handleTimeout = 10 * time.Second

// Handler consumes one low-stock event.
type Handler func(ctx context.Context, event model.LowStockEvent) error

// Dispatcher queues low-stock events in memory and hands them to a single worker.
type Dispatcher struct {
	handler Handler
	events  chan model.LowStockEvent

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func NewDispatcher(handler Handler, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 1
	}
	return &Dispatcher{
		handler: handler,
		events:  make(chan model.LowStockEvent, queueSize),
	}
}

func (d *Dispatcher) Start() {
	d.wg.Add(1)
	go d.run()
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for event := range d.events {
		d.handle(event)
	}
}

func (d *Dispatcher) handle(event model.LowStockEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	if err := d.handler(ctx, event); err != nil {
		logger.Error("[Dispatcher] handle low stock event",
			zap.String("merchant_id", event.MerchantID),
			zap.String("product_id", event.ProductID),
			zap.Int64("stock", event.CurrentStock),
			zap.String("error", err.Error()))
	}
}

// NotifyLowStock enqueues without blocking. The request context is not carried over.
func (d *Dispatcher) NotifyLowStock(_ context.Context, event model.LowStockEvent) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return ErrDispatcherClosed
	}
	select {
	case d.events <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting events and waits until the queued ones are handled.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.events)
	d.mu.Unlock()

	d.wg.Wait()
}
