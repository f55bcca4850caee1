package order

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
)

// Item is a line item owned exclusively by its Order: it cannot outlive it and
// is only mutated through the aggregate. The unit price is frozen at add-time
// from the product snapshot; later catalog price changes do not affect it.
type Item struct {
	id            kernel.UUID
	productID     kernel.UUID
	quantity      kernel.Quantity
	unitPrice     kernel.Money
	isConstructed bool
}

// NewItem creates a validated line item.
func NewItem(id, productID kernel.UUID, quantity kernel.Quantity, unitPrice kernel.Money) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	item.unitPrice = unitPrice
	return item, nil
}

// RestoreItem reconstructs a line item from persistence.
func RestoreItem(id, productID kernel.UUID, quantity kernel.Quantity, unitPrice kernel.Money) (*Item, error) {
	return NewItem(id, productID, quantity, unitPrice)
}

// Validate ensures the Item was created through its constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the line item identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the referenced product.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() kernel.Quantity {
	return i.quantity
}

// UnitPrice returns the price captured when the item was added.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// LineTotal returns quantity times unit price at full precision.
// The aggregate rounds once after summation; for display use Round2.
func (i *Item) LineTotal() kernel.Money {
	return i.unitPrice.Mul(i.quantity)
}

// changeQuantity replaces the quantity. Only the aggregate calls this, after
// consulting the edit-policy gate.
func (i *Item) changeQuantity(quantity kernel.Quantity) error {
	return i.setQuantity(quantity)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}
	i.quantity = quantity
	return nil
}
