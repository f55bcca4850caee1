package clienterepo

import (
	"context"

	"pedidos/internal/core/domain/model/cliente"
	"pedidos/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormClienteRepository implements ClienteRepository using GORM.
type GormClienteRepository struct {
	db *gorm.DB
}

// NewGormClienteRepository creates a new GORM cliente repository.
func NewGormClienteRepository(db *gorm.DB) *GormClienteRepository {
	return &GormClienteRepository{db: db}
}

// Add saves a new cliente to the database.
func (r *GormClienteRepository) Add(ctx context.Context, aggregate *cliente.Cliente) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Exists reports whether a cliente with the given ID is registered.
func (r *GormClienteRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&ClienteDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
