package queries

import (
	"context"

	"pedidos/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// StatusDashboardQueryHandler aggregates live orders per lifecycle status.
type StatusDashboardQueryHandler struct {
	db *gorm.DB
}

// NewStatusDashboardQueryHandler creates a handler for the dashboard query.
func NewStatusDashboardQueryHandler(db *gorm.DB) StatusDashboardQueryHandler {
	return StatusDashboardQueryHandler{db: db}
}

// Handle executes the dashboard query. Every lifecycle status appears in the
// result, in lifecycle order, with a zero count when no order holds it.
func (h StatusDashboardQueryHandler) Handle(
	ctx context.Context,
	query StatusDashboardQuery,
) ([]StatusDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts := make(map[order.Status]int64)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		WHERE deleted_at IS NULL
		GROUP BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var total int64
	for rows.Next() {
		var statusValue int
		var count int64

		if err = rows.Scan(&statusValue, &count); err != nil {
			return nil, err
		}

		counts[order.Status(statusValue)] = count
		total += count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	dashboard := make([]StatusDashboardQueryResponse, 0, len(order.AllStatuses()))
	for _, status := range order.AllStatuses() {
		row := StatusDashboardQueryResponse{
			Status: status.String(),
			Count:  counts[status],
		}
		if total > 0 {
			row.Percentage = float64(counts[status]) / float64(total) * 100
		}
		dashboard = append(dashboard, row)
	}

	return dashboard, nil
}
