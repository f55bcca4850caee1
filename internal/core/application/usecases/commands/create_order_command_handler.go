package commands

import (
	"context"
	"time"

	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for opening orders.
// Verifies the cliente exists before creating the draft.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command. Fails with an
// object-not-found error when the cliente is not registered.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	exists, err := uow.ClienteRepository().Exists(ctx, cmd.ClienteID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("cliente", cmd.ClienteID().String())
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.ClienteID(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
