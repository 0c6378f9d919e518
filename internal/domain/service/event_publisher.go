package service

import (
	"context"
	"time"
)

// OrderPlacedEvent is published after the external order service confirms
// creation. Consumed by the push worker to notify the customer.
type OrderPlacedEvent struct {
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	Total      string    `json:"total"` // Decimal string to avoid float drift in transit.
	Tags       []string  `json:"tags"`
	RequestID  string    `json:"request_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher publishes order domain events for downstream consumers.
type EventPublisher interface {
	// PublishOrderPlaced publishes an order-placed event.
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error

	// Close releases publisher resources.
	Close() error
}
