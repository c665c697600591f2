package service

import (
	"context"
)

// PurchaseEvent is published after a purchase commits so the mail worker can
// send the confirmation asynchronously. Delivery is best effort.
type PurchaseEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	PurchaseID string `json:"purchase_id"`
	ClientID   string `json:"client_id"`
	Email      string `json:"email"`
	Total      float64 `json:"total"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPurchaseEvent publishes a purchase-confirmed event for async processing
	PublishPurchaseEvent(ctx context.Context, event *PurchaseEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
