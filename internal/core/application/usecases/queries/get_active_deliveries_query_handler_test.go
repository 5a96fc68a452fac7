package queries_test

import (
	"context"
	"testing"
	"time"

	"fleetops/internal/adapters/out/postgres/deliveryrepo"
	"fleetops/internal/core/application/usecases/queries"
	"fleetops/internal/core/domain/model/delivery"
	"fleetops/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repositories' tracking hook; query tests do not
// care about tracked aggregates.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetActiveDeliveriesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetActiveDeliveriesQueryHandler
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&deliveryrepo.DeliveryDTO{}))
	suite.handler = queries.NewGetActiveDeliveriesQueryHandler(db)
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries").Error)
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) saveDelivery(d *delivery.Delivery) {
	repo := deliveryrepo.NewGormDeliveryRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), d))
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.handler.Handle(context.Background(), queries.NewGetActiveDeliveriesQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) TestHandle_ExcludesTerminalDeliveries() {
	active, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 4,
		delivery.OrderSnapshot{BuyerName: "Ann", ShopName: "Corner Deli", ShippingAddress: "12 Lilac Lane"},
	)
	suite.Require().NoError(err)
	suite.Require().NoError(active.RecordCollection())
	suite.saveDelivery(active)

	failed, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 2,
		delivery.OrderSnapshot{BuyerName: "Boris", ShopName: "Bakery"},
	)
	suite.Require().NoError(err)
	suite.Require().NoError(failed.Fail("address unreachable"))
	suite.saveDelivery(failed)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetActiveDeliveriesQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(active.ID()))
	suite.Equal("assigned", result[0].Status)
	suite.Equal(4, result[0].TotalProducts)
	suite.Equal(1, result[0].CollectedProducts)
	suite.Equal(25, result[0].Progress)
	suite.Equal("Ann", result[0].BuyerName)
	suite.Equal("12 Lilac Lane", result[0].ShippingAddress)
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.handler.Handle(context.Background(), queries.GetActiveDeliveriesQuery{})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetActiveDeliveriesQuery constructor")
}

func TestGetActiveDeliveriesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveDeliveriesQueryHandlerTestSuite))
}
