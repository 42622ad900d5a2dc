// util/event_bus.go

package util

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	logger "github.com/edusphere/integration/logging"
)

// Event represents an event in the system
type Event struct {
	Type    string
	Payload interface{}
}

// EventHandler is a function that handles an event
type EventHandler func(context.Context, Event) error

// EventBus hands published events to a single worker over a buffered channel;
// the worker invokes subscribers in order. Publishers never block on handler
// work, and background tasks are always owned by the worker rather than
// spawned ad hoc.
type EventBus struct {
	subscribers map[string][]EventHandler
	mu          sync.RWMutex
	queue       chan Event
	errorChan   chan error
}

// NewEventBus creates a new EventBus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string][]EventHandler),
		queue:       make(chan Event, 256),
		errorChan:   make(chan error, 100), // Buffer size can be adjusted
	}
}

// Subscribe adds a new subscriber for a specific event type
func (eb *EventBus) Subscribe(eventType string, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.subscribers[eventType] = append(eb.subscribers[eventType], handler)
}

// Publish enqueues an event for the worker. If the queue is full the event is
// dropped with a warning; audit and notification consumers are best-effort.
func (eb *EventBus) Publish(ctx context.Context, eventType string, payload interface{}) {
	event := Event{
		Type:    eventType,
		Payload: payload,
	}

	select {
	case eb.queue <- event:
	default:
		logger.Warn("Event queue full, dropping event", zap.String("eventType", eventType))
	}
}

// Start launches the worker and the error drainer
func (eb *EventBus) Start(ctx context.Context) {
	go eb.processEvents(ctx)
	go eb.processErrors(ctx)
}

// processEvents dispatches queued events to their subscribers
func (eb *EventBus) processEvents(ctx context.Context) {
	for {
		select {
		case event := <-eb.queue:
			eb.mu.RLock()
			handlers := eb.subscribers[event.Type]
			eb.mu.RUnlock()

			for _, handler := range handlers {
				if err := handler(ctx, event); err != nil {
					select {
					case eb.errorChan <- fmt.Errorf("event handler error: %w", err):
					default:
						// If error channel is full, log the error
						logger.Error("Error channel full, logging event handler error",
							zap.Error(err),
							zap.String("eventType", event.Type))
					}
				}
			}
		case <-ctx.Done():
			return
		}
	}
}

// processErrors handles errors from event handlers
func (eb *EventBus) processErrors(ctx context.Context) {
	for {
		select {
		case err := <-eb.errorChan:
			logger.Error("Event handler error", zap.Error(err))
		case <-ctx.Done():
			return
		}
	}
}
