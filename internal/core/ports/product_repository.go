package ports

import (
	"context"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/product"
)

// ProductRepository defines the read contract the order core needs from the
// catalog: a point-in-time snapshot of price and availability.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// GetSnapshot retrieves the current price and availability of a product.
	// Absent products yield an object-not-found error.
	GetSnapshot(ctx context.Context, id kernel.UUID) (product.Snapshot, error)
}
