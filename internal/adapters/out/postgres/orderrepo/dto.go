// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The version column backs the optimistic concurrency check; deleted_at is a
// plain tombstone column, visibility rules live in the repository and the core.
type OrderDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ClienteID    uuid.UUID       `gorm:"type:uuid;index"`
	Status       int             `gorm:"index"`
	Total        decimal.Decimal `gorm:"type:numeric(14,2)"`
	Observations string
	CreatedAt    time.Time       `gorm:"index"`
	UpdatedAt    time.Time
	DeletedAt    *time.Time      `gorm:"index"`
	Version      int
	Items        []ItemDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one persisted line item. Position preserves the order in
// which items were added to the aggregate.
type ItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index"`
	ProductID uuid.UUID       `gorm:"type:uuid"`
	Quantity  decimal.Decimal `gorm:"type:numeric(12,3)"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(14,2)"`
	Position  int
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
// The version it writes is the next one; the repository guards the update
// with the aggregate's current version.
func fromDomain(aggregate *order.Order, version int) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for position, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity().Value(),
			UnitPrice: item.UnitPrice().Amount(),
			Position:  position,
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		ClienteID:    aggregate.ClienteID().Bytes(),
		Status:       int(aggregate.Status()),
		Total:        aggregate.Total().Amount(),
		Observations: aggregate.Observations(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
		DeletedAt:    aggregate.DeletedAt(),
		Version:      version,
		Items:        items,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder,
// keeping the stored total untouched so drift stays observable.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clienteID, err := kernel.UUIDFromBytes(dto.ClienteID[:])
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		clienteID,
		order.Status(dto.Status),
		items,
		total,
		dto.Observations,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.DeletedAt,
		dto.Version,
	)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, productID, quantity, unitPrice)
}
