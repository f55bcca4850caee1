package queries

import (
	"errors"

	"pedidos/internal/pkg/guard"
)

var ErrStatusDashboardQueryIsNotConstructed = errors.New(
	"StatusDashboardQuery must be created via NewStatusDashboardQuery constructor",
)

// StatusDashboardQuery retrieves how many orders sit in each lifecycle status,
// with the share each status represents. Soft-deleted orders are excluded.
type StatusDashboardQuery struct {
	guard guard.ConstructorGuard
}

// NewStatusDashboardQuery creates a query for the per-status dashboard.
// This is a parameterless query covering all live orders.
func NewStatusDashboardQuery() StatusDashboardQuery {
	return StatusDashboardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q StatusDashboardQuery) Validate() error {
	return q.guard.Validate(ErrStatusDashboardQueryIsNotConstructed)
}

// StatusDashboardQueryResponse is one dashboard row. Percentage is the share
// of live orders in this status, 0 when there are no orders at all.
type StatusDashboardQueryResponse struct {
	Status     string
	Count      int64
	Percentage float64
}
