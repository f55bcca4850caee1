package commands_test

import (
	"errors"
	"log/slog"
	"testing"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newDraftOrder(t)
	cmd, _ := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Pendente, order.RoleCustomer)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	publisher := new(MockEventPublisher)
	publisher.On("PublishOrderChanged", mock.Anything, mock.MatchedBy(func(event ports.OrderChangedEvent) bool {
		return event.OrderID == aggregate.ID().String() && event.Status == "PENDENTE"
	})).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, publisher, testLogger())
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Pendente, aggregate.Status())
	publisher.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_ForbiddenForRole(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)
	// Only internal staff may confirm a pending order.
	cmd, _ := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Confirmado, order.RoleCustomer)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	publisher := new(MockEventPublisher)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, publisher, testLogger())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrTransitionForbidden)
	assert.Equal(t, order.Pendente, aggregate.Status())
	publisher.AssertNotCalled(t, "PublishOrderChanged", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	aggregate := newDraftOrder(t)
	// A draft cannot jump straight to delivered, for anyone.
	cmd, _ := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Entregue, order.RoleInternal)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	publisher := new(MockEventPublisher)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, publisher, testLogger())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrInvalidTransition)
}

func TestChangeOrderStatusCommandHandler_Handle_PublishFailureDoesNotFailCommand(t *testing.T) {
	ctx := t.Context()
	aggregate := newDraftOrder(t)
	cmd, _ := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Pendente, order.RoleCustomer)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	publisher := new(MockEventPublisher)
	publisher.On("PublishOrderChanged", mock.Anything, mock.Anything).
		Return(errors.New("broker unreachable")).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, publisher, testLogger())
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Pendente, aggregate.Status())
}
