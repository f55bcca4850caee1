package queries_test

import (
	"context"
	"testing"
	"time"

	"pedidos/internal/adapters/out/postgres/orderrepo"
	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/domain/model/product"
	"pedidos/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for seeding test data.
type mockAggregateTracker struct{}

func (mockAggregateTracker) TrackAggregate(kernel.UUID, any) {}

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))

	suite.handler = queries.NewGetOrderQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, mockAggregateTracker{})
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderQueryHandlerTestSuite) seedOrder() *order.Order {
	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now().UTC())
	suite.Require().NoError(err)

	unitPrice, err := kernel.MoneyFromString("12.30")
	suite.Require().NoError(err)
	snapshot, err := product.NewSnapshot(kernel.NewUUID(), unitPrice, true)
	suite.Require().NoError(err)
	quantity, err := kernel.QuantityFromString("2")
	suite.Require().NoError(err)
	suite.Require().NoError(
		aggregate.AddItem(kernel.NewUUID(), snapshot, quantity, time.Now().UTC()))

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ExistingOrder() {
	ctx := context.Background()
	aggregate := suite.seedOrder()

	query, err := queries.NewGetOrderQuery(aggregate.ID())
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.True(resp.ID.IsEqual(aggregate.ID()))
	suite.True(resp.ClienteID.IsEqual(aggregate.ClienteID()))
	suite.Equal("RASCUNHO", resp.Status)
	suite.Equal("24.60", resp.Total.String())
	suite.Equal(1, resp.Version)
	suite.Require().Len(resp.Items, 1)
	suite.Equal("12.30", resp.Items[0].UnitPrice.String())
	suite.True(resp.Items[0].Quantity.IsEqual(aggregate.Items()[0].Quantity()))
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_UnknownOrder() {
	ctx := context.Background()

	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_SoftDeletedOrderIsInvisible() {
	ctx := context.Background()
	aggregate := suite.seedOrder()

	suite.Require().NoError(aggregate.MarkDeleted(time.Now().UTC()))
	suite.Require().NoError(suite.orderRepo.Update(ctx, aggregate))

	query, err := queries.NewGetOrderQuery(aggregate.ID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
