package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/ports"
)

// RepairOrderTotalsCommandHandler sweeps for orders with drifted totals and
// re-derives each one in its own transaction. An order that loses the
// optimistic version race is skipped: whoever beat us recomputed its total
// already, and the next sweep will catch any remaining drift.
type RepairOrderTotalsCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewRepairOrderTotalsCommandHandler creates a handler for the repair sweep.
func NewRepairOrderTotalsCommandHandler(
	uowFactory OrderUoWFactory, logger *slog.Logger,
) RepairOrderTotalsCommandHandler {
	return RepairOrderTotalsCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "repair_order_totals_handler"),
	}
}

// Handle processes the sweep. Returns the number of orders repaired.
func (h *RepairOrderTotalsCommandHandler) Handle(ctx context.Context, cmd RepairOrderTotalsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	drifted, err := uow.OrderRepository().GetAllWithDriftedTotal(ctx)
	rollbackErr := uow.Rollback(ctx)
	if err != nil {
		return 0, err
	}
	if rollbackErr != nil {
		return 0, rollbackErr
	}

	repaired := 0
	for _, aggregate := range drifted {
		if err := h.repairOne(ctx, aggregate.ID()); err != nil {
			if errors.Is(err, ports.ErrConcurrentModification) {
				continue
			}
			return repaired, err
		}
		repaired++
	}

	if repaired > 0 {
		h.logger.InfoContext(ctx, "Repaired drifted order totals", "count", repaired)
	}
	return repaired, nil
}

func (h *RepairOrderTotalsCommandHandler) repairOne(ctx context.Context, orderID kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return err
	}

	changed, err := aggregate.RecomputeTotal(time.Now().UTC())
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
