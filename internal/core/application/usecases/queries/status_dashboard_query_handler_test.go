package queries_test

import (
	"context"
	"testing"
	"time"

	"pedidos/internal/adapters/out/postgres/orderrepo"
	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type StatusDashboardQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.StatusDashboardQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *StatusDashboardQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewStatusDashboardQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, mockAggregateTracker{})
}

func (suite *StatusDashboardQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)
}

func (suite *StatusDashboardQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StatusDashboardQueryHandlerTestSuite) seedDraft() *order.Order {
	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *StatusDashboardQueryHandlerTestSuite) TestHandle_EmptyDatabase() {
	rows, err := suite.handler.Handle(context.Background(), queries.NewStatusDashboardQuery())
	suite.Require().NoError(err)

	suite.Require().Len(rows, len(order.AllStatuses()))
	for _, row := range rows {
		suite.Zero(row.Count)
		suite.Zero(row.Percentage)
	}
}

func (suite *StatusDashboardQueryHandlerTestSuite) TestHandle_CountsAndPercentages() {
	ctx := context.Background()

	suite.seedDraft()
	suite.seedDraft()
	suite.seedDraft()

	submitted := suite.seedDraft()
	suite.Require().NoError(submitted.TransitionTo(order.Pendente, order.RoleCustomer, time.Now().UTC()))
	suite.Require().NoError(suite.orderRepo.Update(ctx, submitted))

	rows, err := suite.handler.Handle(ctx, queries.NewStatusDashboardQuery())
	suite.Require().NoError(err)
	suite.Require().Len(rows, len(order.AllStatuses()))

	byStatus := make(map[string]queries.StatusDashboardQueryResponse)
	for _, row := range rows {
		byStatus[row.Status] = row
	}

	suite.Equal(int64(3), byStatus["RASCUNHO"].Count)
	suite.InDelta(75.0, byStatus["RASCUNHO"].Percentage, 0.001)
	suite.Equal(int64(1), byStatus["PENDENTE"].Count)
	suite.InDelta(25.0, byStatus["PENDENTE"].Percentage, 0.001)
	suite.Zero(byStatus["ENTREGUE"].Count)
}

func (suite *StatusDashboardQueryHandlerTestSuite) TestHandle_ExcludesSoftDeleted() {
	ctx := context.Background()

	kept := suite.seedDraft()
	removed := suite.seedDraft()
	suite.Require().NoError(removed.MarkDeleted(time.Now().UTC()))
	suite.Require().NoError(suite.orderRepo.Update(ctx, removed))

	rows, err := suite.handler.Handle(ctx, queries.NewStatusDashboardQuery())
	suite.Require().NoError(err)

	for _, row := range rows {
		if row.Status == kept.Status().String() {
			suite.Equal(int64(1), row.Count)
			suite.InDelta(100.0, row.Percentage, 0.001)
		}
	}
}

func TestStatusDashboardQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(StatusDashboardQueryHandlerTestSuite))
}
