package ports

import (
	"context"
	"time"
)

// OrderChangedEvent notifies downstream consumers that an order's content or
// status changed. Published after a successful commit, never before.
type OrderChangedEvent struct {
	OrderID    string    `json:"order_id"`
	ClienteID  string    `json:"cliente_id"`
	Status     string    `json:"status"`
	Total      string    `json:"total"`
	OccurredAt time.Time `json:"occurred_at"`
}

// OrderEventPublisher publishes order lifecycle events. Publishing is
// best-effort: a failure must not roll back the committed mutation.
type OrderEventPublisher interface {
	PublishOrderChanged(ctx context.Context, event OrderChangedEvent) error
}
