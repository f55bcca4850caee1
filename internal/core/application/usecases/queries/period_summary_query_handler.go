package queries

import (
	"context"

	"pedidos/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// PeriodSummaryQueryHandler aggregates order counts and value over a period.
type PeriodSummaryQueryHandler struct {
	db *gorm.DB
}

// NewPeriodSummaryQueryHandler creates a handler for period summary queries.
func NewPeriodSummaryQueryHandler(db *gorm.DB) PeriodSummaryQueryHandler {
	return PeriodSummaryQueryHandler{db: db}
}

// Handle executes the summary over orders created in [from, to), excluding
// soft-deleted ones.
func (h PeriodSummaryQueryHandler) Handle(
	ctx context.Context,
	query PeriodSummaryQuery,
) (PeriodSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return PeriodSummaryQueryResponse{}, err
	}

	var count int64
	var totalValue string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COALESCE(SUM(total), 0)
		FROM orders
		WHERE deleted_at IS NULL
		  AND created_at >= ?
		  AND created_at < ?
	`, query.From(), query.To()).Row()

	if err := row.Scan(&count, &totalValue); err != nil {
		return PeriodSummaryQueryResponse{}, err
	}

	total, err := kernel.MoneyFromString(totalValue)
	if err != nil {
		return PeriodSummaryQueryResponse{}, err
	}

	return PeriodSummaryQueryResponse{
		Count:      count,
		TotalValue: total,
	}, nil
}
