package commands_test

import (
	"context"
	"testing"
	"time"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/domain/model/cliente"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/domain/model/product"
	"pedidos/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllWithDriftedTotal(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) GetSnapshot(ctx context.Context, id kernel.UUID) (product.Snapshot, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(product.Snapshot), args.Error(1)
}

type MockClienteRepository struct{ mock.Mock }

func (m *MockClienteRepository) Add(ctx context.Context, c *cliente.Cliente) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClienteRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockUoW satisfies both commands.UoW and commands.OrderUoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) ClienteRepository() ports.ClienteRepository {
	args := m.Called()
	return args.Get(0).(ports.ClienteRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishOrderChanged(ctx context.Context, event ports.OrderChangedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func mustQuantity(t *testing.T, s string) kernel.Quantity {
	t.Helper()
	q, err := kernel.QuantityFromString(s)
	require.NoError(t, err)
	return q
}

func mustSnapshot(t *testing.T, price string) product.Snapshot {
	t.Helper()
	unitPrice, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	snapshot, err := product.NewSnapshot(kernel.NewUUID(), unitPrice, true)
	require.NoError(t, err)
	return snapshot
}

func newDraftOrder(t *testing.T) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now().UTC())
	require.NoError(t, err)
	return aggregate
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	aggregate := newDraftOrder(t)
	err := aggregate.TransitionTo(order.Pendente, order.RoleCustomer, time.Now().UTC())
	require.NoError(t, err)
	return aggregate
}
