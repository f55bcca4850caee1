// Package product provides the Product aggregate and the price snapshot taken
// when a product is added to an order. Price changes on the product never
// retroactively alter existing line items: the snapshot freezes the unit price
// at add-time.
package product

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

	// ErrSnapshotIsNotConstructed is returned when a Snapshot was not created
	// through NewSnapshot.
	ErrSnapshotIsNotConstructed = errors.New("Snapshot must be created via NewSnapshot constructor")
)

// Product represents a sellable item from the catalog. An inactive product
// may no longer be added to orders.
type Product struct {
	id            kernel.UUID
	name          string
	unitPrice     kernel.Money
	active        bool
	isConstructed bool
}

// NewProduct creates a validated Product.
func NewProduct(id kernel.UUID, name string, unitPrice kernel.Money, active bool) (*Product, error) {
	p := &Product{
		active:        active,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
	); err != nil {
		return nil, err
	}

	p.unitPrice = unitPrice
	return p, nil
}

// RestoreProduct reconstructs a Product from persistence.
func RestoreProduct(id kernel.UUID, name string, unitPrice kernel.Money, active bool) (*Product, error) {
	return NewProduct(id, name, unitPrice, active)
}

// Validate ensures the Product was created through its constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// UnitPrice returns the current catalog price.
func (p *Product) UnitPrice() kernel.Money {
	return p.unitPrice
}

// IsActive reports whether the product may still be sold.
func (p *Product) IsActive() bool {
	return p.active
}

// Snapshot captures the product's current price and availability.
func (p *Product) Snapshot() Snapshot {
	return Snapshot{
		productID:     p.id,
		unitPrice:     p.unitPrice,
		active:        p.active,
		isConstructed: true,
	}
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

// Snapshot is the read-only view of a product at a point in time. Orders keep
// the snapshot's unit price for the lifetime of the line item.
type Snapshot struct {
	productID     kernel.UUID
	unitPrice     kernel.Money
	active        bool
	isConstructed bool
}

// NewSnapshot creates a validated Snapshot.
func NewSnapshot(productID kernel.UUID, unitPrice kernel.Money, active bool) (Snapshot, error) {
	if err := productID.Validate(); err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		productID:     productID,
		unitPrice:     unitPrice,
		active:        active,
		isConstructed: true,
	}, nil
}

// Validate ensures the Snapshot was created through NewSnapshot.
func (s Snapshot) Validate() error {
	if !s.isConstructed {
		return ErrSnapshotIsNotConstructed
	}
	return nil
}

// ProductID returns the identifier of the snapshotted product.
func (s Snapshot) ProductID() kernel.UUID {
	return s.productID
}

// UnitPrice returns the price frozen at snapshot time.
func (s Snapshot) UnitPrice() kernel.Money {
	return s.unitPrice
}

// IsActive reports whether the product was sellable at snapshot time.
func (s Snapshot) IsActive() bool {
	return s.active
}
