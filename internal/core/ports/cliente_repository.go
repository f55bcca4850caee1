package ports

import (
	"context"

	"pedidos/internal/core/domain/model/cliente"
	"pedidos/internal/core/domain/model/kernel"
)

// ClienteRepository defines the customer lookup contract used when creating
// orders: the core only needs to know whether the cliente exists.
type ClienteRepository interface {
	// Add persists a new cliente.
	Add(ctx context.Context, aggregate *cliente.Cliente) error

	// Exists reports whether a cliente with the given id is registered.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
