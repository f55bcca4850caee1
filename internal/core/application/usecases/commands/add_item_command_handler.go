package commands

import (
	"context"
	"time"
)

// AddItemCommandHandler handles adding a line item to an order. It snapshots
// the product's price at handling time, so later catalog changes never affect
// the item, and recomputes the order total in the same transaction.
type AddItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddItemCommandHandler creates a handler for line item addition.
func NewAddItemCommandHandler(uowFactory UoWFactory) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-item command. The order row and its items are
// committed atomically; a stale version token surfaces as
// ports.ErrConcurrentModification.
func (h *AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) error {
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

	snapshot, err := uow.ProductRepository().GetSnapshot(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = aggregate.AddItem(cmd.ItemID(), snapshot, cmd.Quantity(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
