package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

var ErrUpdateObservationsCommandIsNotConstructed = errors.New(
	"UpdateObservationsCommand must be created via NewUpdateObservationsCommand constructor",
)

// UpdateObservationsCommand represents a request to replace the free-text
// observations of an order. Observations follow the same edit policy as line
// items, so the order must still be editable.
type UpdateObservationsCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	observations string

	guard guard.ConstructorGuard
}

// NewUpdateObservationsCommand creates a command to replace order observations.
// An empty string clears them.
func NewUpdateObservationsCommand(orderID kernel.UUID, observations string) (UpdateObservationsCommand, error) {
	cmd := UpdateObservationsCommand{
		observations: observations,
		guard:        guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UpdateObservationsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateObservationsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateObservationsCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateObservationsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Observations returns the replacement text.
func (c UpdateObservationsCommand) Observations() string {
	return c.observations
}

func (c *UpdateObservationsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
