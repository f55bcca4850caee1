package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

var ErrUpdateItemCommandIsNotConstructed = errors.New(
	"UpdateItemCommand must be created via NewUpdateItemCommand constructor",
)

// UpdateItemCommand represents a request to change a line item's quantity.
type UpdateItemCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	itemID   kernel.UUID
	quantity kernel.Quantity

	guard guard.ConstructorGuard
}

// NewUpdateItemCommand creates a command to change a line item's quantity.
func NewUpdateItemCommand(orderID, itemID kernel.UUID, quantity kernel.Quantity) (UpdateItemCommand, error) {
	cmd := UpdateItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return UpdateItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the line item to update.
func (c UpdateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Quantity returns the replacement quantity.
func (c UpdateItemCommand) Quantity() kernel.Quantity {
	return c.quantity
}

func (c *UpdateItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *UpdateItemCommand) setQuantity(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}
	c.quantity = quantity
	return nil
}
