// Package cliente provides the Cliente (customer) aggregate. Orders reference
// a cliente by id; a cliente owns none of its orders' state.
package cliente

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

// ErrClienteIsNotConstructed is returned when a Cliente instance was not
// created through NewCliente or RestoreCliente.
var ErrClienteIsNotConstructed = errors.New("Cliente must be created via NewCliente or RestoreCliente constructor")

// Cliente represents a customer able to place orders.
type Cliente struct {
	id            kernel.UUID
	name          string
	isConstructed bool
}

// NewCliente creates a validated Cliente.
func NewCliente(id kernel.UUID, name string) (*Cliente, error) {
	c := &Cliente{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCliente reconstructs a Cliente from persistence.
func RestoreCliente(id kernel.UUID, name string) (*Cliente, error) {
	return NewCliente(id, name)
}

// Validate ensures the Cliente was created through its constructor.
func (c *Cliente) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClienteIsNotConstructed
	}
	return nil
}

// ID returns the cliente identifier.
func (c *Cliente) ID() kernel.UUID {
	return c.id
}

// Name returns the cliente name.
func (c *Cliente) Name() string {
	return c.name
}

func (c *Cliente) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Cliente) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("cliente name")
	}
	c.name = name
	return nil
}
