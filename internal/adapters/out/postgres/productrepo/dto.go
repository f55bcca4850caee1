// Package productrepo provides data transfer objects and mapping functions
// for product catalog persistence.
package productrepo

import (
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"index"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(14,2)"`
	Active    bool
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		UnitPrice: aggregate.UnitPrice().Amount(),
		Active:    aggregate.IsActive(),
	}
}

func toSnapshot(dto ProductDTO) (product.Snapshot, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return product.Snapshot{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return product.Snapshot{}, err
	}

	return product.NewSnapshot(id, unitPrice, dto.Active)
}
