package commands

import (
	"context"
	"time"
)

// UpdateObservationsCommandHandler handles observation updates on an order.
type UpdateObservationsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateObservationsCommandHandler creates a handler for observation updates.
func NewUpdateObservationsCommandHandler(uowFactory OrderUoWFactory) UpdateObservationsCommandHandler {
	return UpdateObservationsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update-observations command.
func (h *UpdateObservationsCommandHandler) Handle(ctx context.Context, cmd UpdateObservationsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeObservations(cmd.Observations(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
