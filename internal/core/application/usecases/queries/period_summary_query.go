package queries

import (
	"errors"
	"fmt"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var ErrPeriodSummaryQueryIsNotConstructed = errors.New(
	"PeriodSummaryQuery must be created via NewPeriodSummaryQuery constructor",
)

// PeriodSummaryQuery retrieves the count and total value of live orders
// created within the half-open interval [from, to).
type PeriodSummaryQuery struct { //nolint:recvcheck //using for validation
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewPeriodSummaryQuery creates a summary query for the period [from, to).
// The lower bound must precede the upper bound.
func NewPeriodSummaryQuery(from, to time.Time) (PeriodSummaryQuery, error) {
	query := PeriodSummaryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setPeriod(from, to); err != nil {
		return PeriodSummaryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q PeriodSummaryQuery) Validate() error {
	return q.guard.Validate(ErrPeriodSummaryQueryIsNotConstructed)
}

// From returns the inclusive lower bound of the period.
func (q PeriodSummaryQuery) From() time.Time {
	return q.from
}

// To returns the exclusive upper bound of the period.
func (q PeriodSummaryQuery) To() time.Time {
	return q.to
}

func (q *PeriodSummaryQuery) setPeriod(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return errs.NewValueIsRequiredError("period")
	}
	if !from.Before(to) {
		return errs.NewValueIsInvalidErrorWithCause(
			"period is invalid", fmt.Errorf("from %s must precede to %s", from, to))
	}

	q.from = from
	q.to = to
	return nil
}

// PeriodSummaryQueryResponse summarizes the orders created in a period.
type PeriodSummaryQueryResponse struct {
	Count      int64
	TotalValue kernel.Money
}
