package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

var ErrRecomputeOrderTotalCommandIsNotConstructed = errors.New(
	"RecomputeOrderTotalCommand must be created via NewRecomputeOrderTotalCommand constructor",
)

// RecomputeOrderTotalCommand requests a re-derivation of one order's stored
// total from its line items. This is the first-class, auditable repair
// operation for total drift; it is idempotent.
type RecomputeOrderTotalCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRecomputeOrderTotalCommand creates a recompute command for one order.
func NewRecomputeOrderTotalCommand(orderID kernel.UUID) (RecomputeOrderTotalCommand, error) {
	cmd := RecomputeOrderTotalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return RecomputeOrderTotalCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecomputeOrderTotalCommand) Validate() error {
	return c.guard.Validate(ErrRecomputeOrderTotalCommandIsNotConstructed)
}

// OrderID returns the order whose total is re-derived.
func (c RecomputeOrderTotalCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *RecomputeOrderTotalCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
