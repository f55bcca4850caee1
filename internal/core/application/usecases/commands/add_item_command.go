package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

var ErrAddItemCommandIsNotConstructed = errors.New(
	"AddItemCommand must be created via NewAddItemCommand constructor",
)

// AddItemCommand represents a request to add a product line item to an order.
// The unit price is captured from the product catalog at handling time.
type AddItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	itemID    kernel.UUID
	productID kernel.UUID
	quantity  kernel.Quantity

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to add a line item.
// Fails with ErrInvalidQuantity when the quantity is not strictly positive.
func NewAddItemCommand(orderID, itemID, productID kernel.UUID, quantity kernel.Quantity) (AddItemCommand, error) {
	cmd := AddItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AddItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier for the new line item.
func (c AddItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// ProductID returns the product to snapshot.
func (c AddItemCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the requested quantity.
func (c AddItemCommand) Quantity() kernel.Quantity {
	return c.quantity
}

func (c *AddItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AddItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *AddItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *AddItemCommand) setQuantity(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}
	c.quantity = quantity
	return nil
}
