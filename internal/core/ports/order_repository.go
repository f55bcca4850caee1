// Package ports defines the persistence and messaging contracts between the
// core and the infrastructure adapters, enabling dependency inversion and
// testability.
package ports

import (
	"context"
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
)

// ErrConcurrentModification is returned by OrderRepository.Update when the
// aggregate's version token no longer matches the stored row: another writer
// committed in between. Callers reload and reapply; this is the one error in
// the taxonomy meant to be retried automatically.
var ErrConcurrentModification = errors.New("order was modified concurrently")

// OrderRepository defines the persistence contract for order aggregates.
// Soft-deleted orders are invisible through this interface: Get reports them
// as not found.
type OrderRepository interface {
	// Add persists a new order aggregate with all its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, guarded by the
	// aggregate's version token. Fails with ErrConcurrentModification when the
	// stored version differs; the whole write (order row plus items) is atomic.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its line items by identifier.
	// Soft-deleted or absent orders yield an object-not-found error.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllWithDriftedTotal retrieves orders whose stored total no longer
	// equals the rounded sum of their line totals. Feeds the total repair job.
	GetAllWithDriftedTotal(ctx context.Context) ([]*order.Order, error)
}
