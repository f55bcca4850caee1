package commands

import (
	"context"
	"log/slog"
	"time"

	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/ports"
)

// ChangeOrderStatusCommandHandler handles status transition requests. After a
// successful commit it publishes an order-changed event; publishing is
// best-effort and never undoes the committed transition.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "change_order_status_handler"),
	}
}

// Handle processes the transition command. Failure modes are distinct: an
// impossible edge yields order.ErrInvalidTransition, an edge the role may not
// take yields order.ErrTransitionForbidden, and a stale version token yields
// ports.ErrConcurrentModification.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	if err = aggregate.TransitionTo(cmd.Target(), cmd.Role(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publish(ctx, aggregate)
	return nil
}

func (h *ChangeOrderStatusCommandHandler) publish(ctx context.Context, aggregate *order.Order) {
	event := ports.OrderChangedEvent{
		OrderID:    aggregate.ID().String(),
		ClienteID:  aggregate.ClienteID().String(),
		Status:     aggregate.Status().String(),
		Total:      aggregate.Total().String(),
		OccurredAt: aggregate.UpdatedAt(),
	}

	if err := h.publisher.PublishOrderChanged(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "Failed to publish order changed event",
			"order_id", event.OrderID, "error", err)
	}
}
