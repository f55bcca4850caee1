package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "pedidos/internal/adapters/out/postgres"
	"pedidos/internal/adapters/out/postgres/clienterepo"
	"pedidos/internal/adapters/out/postgres/orderrepo"
	"pedidos/internal/adapters/out/postgres/productrepo"
	"pedidos/internal/core/domain/model/cliente"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/domain/model/product"
	"pedidos/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&productrepo.ProductDTO{},
		&clienterepo.ClienteDTO{},
	)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, order_items, products, clientes").Error)
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newDraftOrder() *order.Order {
	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now().UTC())
	suite.Require().NoError(err)
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) orderCount() int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow := suite.factory.Create()
	suite.Require().NotNil(uow)

	// Each Create yields an isolated instance.
	other := suite.factory.Create()
	suite.NotSame(uow, other)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	// Begin is idempotent while a transaction is active.
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	// Commit without an active transaction fails.
	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	registeredCliente, err := cliente.NewCliente(kernel.NewUUID(), "Maria")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ClienteRepository().Add(ctx, registeredCliente))

	unitPrice, err := kernel.MoneyFromString("7.25")
	suite.Require().NoError(err)
	catalogProduct, err := product.NewProduct(kernel.NewUUID(), "Caneca", unitPrice, true)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ProductRepository().Add(ctx, catalogProduct))

	aggregate := suite.newDraftOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))

	suite.Require().NoError(uow.Commit(ctx))

	exists, err := suite.factory.Create().ClienteRepository().Exists(ctx, registeredCliente.ID())
	suite.Require().NoError(err)
	suite.True(exists)

	snapshot, err := suite.factory.Create().ProductRepository().GetSnapshot(ctx, catalogProduct.ID())
	suite.Require().NoError(err)
	suite.Equal("7.25", snapshot.UnitPrice().String())

	suite.Equal(int64(1), suite.orderCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	aggregate := suite.newDraftOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))

	registeredCliente, err := cliente.NewCliente(kernel.NewUUID(), "Jorge")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ClienteRepository().Add(ctx, registeredCliente))

	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.orderCount())

	exists, err := suite.factory.Create().ClienteRepository().Exists(ctx, registeredCliente.ID())
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWithoutTransaction_ExecutesImmediately() {
	ctx := context.Background()
	uow := suite.factory.Create()

	aggregate := suite.newDraftOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))

	suite.Equal(int64(1), suite.orderCount())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
