package commands

import (
	"context"
	"time"
)

// UpdateItemCommandHandler handles line item quantity changes, recomputing the
// order total in the same transaction.
type UpdateItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateItemCommandHandler creates a handler for line item updates.
func NewUpdateItemCommandHandler(uowFactory OrderUoWFactory) UpdateItemCommandHandler {
	return UpdateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update-item command.
func (h *UpdateItemCommandHandler) Handle(ctx context.Context, cmd UpdateItemCommand) error {
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

	if err = aggregate.UpdateItemQuantity(cmd.ItemID(), cmd.Quantity(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
