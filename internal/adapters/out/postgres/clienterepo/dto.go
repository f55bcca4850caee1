// Package clienterepo provides data transfer objects and mapping functions
// for cliente persistence.
package clienterepo

import (
	"pedidos/internal/core/domain/model/cliente"

	"github.com/google/uuid"
)

// ClienteDTO represents the database structure for persisting clientes.
type ClienteDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

// TableName specifies the database table name for cliente entities.
func (ClienteDTO) TableName() string {
	return "clientes"
}

func fromDomain(aggregate *cliente.Cliente) ClienteDTO {
	return ClienteDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
	}
}
