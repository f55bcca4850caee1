package commands

import (
	"context"
	"time"
)

// RecomputeOrderTotalCommandHandler re-derives one order's stored total from
// its line items inside a transaction. Safe to run concurrently with ordinary
// mutation: it either observes a fully-committed item set or loses the
// optimistic version race and can be retried.
type RecomputeOrderTotalCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecomputeOrderTotalCommandHandler creates a handler for the repair operation.
func NewRecomputeOrderTotalCommandHandler(uowFactory OrderUoWFactory) RecomputeOrderTotalCommandHandler {
	return RecomputeOrderTotalCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the recompute command. Reports whether the stored total was
// actually corrected; an already-consistent order commits nothing.
func (h *RecomputeOrderTotalCommandHandler) Handle(ctx context.Context, cmd RecomputeOrderTotalCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}

	changed, err := aggregate.RecomputeTotal(time.Now().UTC())
	if err != nil {
		return false, err
	}
	if !changed {
		return false, nil
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return false, err
	}

	return true, uow.Commit(ctx)
}
