package queries

import (
	"context"
	"database/sql"
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order with its line items from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern; the aggregate is never rehydrated on the read path.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query for one order. Soft-deleted orders respond with
// an object-not-found error, indistinguishable from orders that never existed.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse
	var id, clienteID uuid.UUID
	var statusValue int
	var total string
	var observations sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			cliente_id,
			status,
			total,
			observations,
			created_at,
			updated_at,
			version
		FROM orders
		WHERE id = ? AND deleted_at IS NULL
	`, query.OrderID().String()).Row()

	err := row.Scan(
		&id,
		&clienteID,
		&statusValue,
		&total,
		&observations,
		&resp.CreatedAt,
		&resp.UpdatedAt,
		&resp.Version,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.ClienteID, err = kernel.UUIDFromBytes(clienteID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Total, err = kernel.MoneyFromString(total); err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Status = order.Status(statusValue).String()
	resp.Observations = observations.String

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Items = items

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderItemResponse, error) {
	items := make([]GetOrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOrderItemResponse
		var id, productID uuid.UUID
		var quantity, unitPrice string

		err = rows.Scan(
			&id,
			&productID,
			&quantity,
			&unitPrice,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		if item.Quantity, err = kernel.QuantityFromString(quantity); err != nil {
			return nil, err
		}
		if item.UnitPrice, err = kernel.MoneyFromString(unitPrice); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
