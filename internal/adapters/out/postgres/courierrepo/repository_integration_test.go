package courierrepo_test

import (
	"context"
	"testing"
	"time"

	"fleetops/internal/adapters/out/postgres/courierrepo"
	"fleetops/internal/adapters/out/postgres/deliveryrepo"
	"fleetops/internal/core/domain/model/courier"
	"fleetops/internal/core/domain/model/delivery"
	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// CourierRepositoryIntegrationTestSuite verifies courier persistence and
// the derived workload count against a real PostgreSQL container.
type CourierRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *courierrepo.GormCourierRepository
	deliveries *deliveryrepo.GormDeliveryRepository
	tracker    *MockAggregateTracker
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&courierrepo.CourierDTO{}, &deliveryrepo.DeliveryDTO{}))
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE couriers, deliveries").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.repository = courierrepo.NewGormCourierRepository(suite.db, suite.tracker)
	suite.deliveries = deliveryrepo.NewGormDeliveryRepository(suite.db, suite.tracker)
}

func (suite *CourierRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CourierRepositoryIntegrationTestSuite) addCourier(name string) *courier.Courier {
	c, err := courier.NewCourier(kernel.NewUUID(), name, "+7-900-000-00-01")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), c))
	return c
}

func (suite *CourierRepositoryIntegrationTestSuite) addDeliveryFor(courierID kernel.UUID) *delivery.Delivery {
	d, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(), courierID, 2,
		delivery.OrderSnapshot{BuyerName: "Ann", ShopName: "Corner Deli"},
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.deliveries.Add(context.Background(), d))
	return d
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGet_DerivesActiveCount() {
	ctx := context.Background()
	c := suite.addCourier("Pavel")

	loaded, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(0, loaded.ActiveDeliveries())

	suite.addDeliveryFor(c.ID())
	suite.addDeliveryFor(c.ID())

	failed := suite.addDeliveryFor(c.ID())
	suite.Require().NoError(failed.Fail("buyer cancelled"))
	suite.Require().NoError(suite.deliveries.Update(ctx, failed))

	loaded, err = suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(2, loaded.ActiveDeliveries())
	suite.Equal(courier.Busy, loaded.Availability())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestReassignment_MovesCountAtomically() {
	ctx := context.Background()
	first := suite.addCourier("Pavel")
	second := suite.addCourier("Vera")
	d := suite.addDeliveryFor(first.ID())

	suite.Require().NoError(d.Reassign(second.ID()))
	suite.Require().NoError(suite.deliveries.Update(ctx, d))

	loadedFirst, err := suite.repository.Get(ctx, first.ID())
	suite.Require().NoError(err)
	suite.Equal(0, loadedFirst.ActiveDeliveries())

	loadedSecond, err := suite.repository.Get(ctx, second.ID())
	suite.Require().NoError(err)
	suite.Equal(1, loadedSecond.ActiveDeliveries())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestList_OrderedByName() {
	suite.addCourier("Vera")
	suite.addCourier("Pavel")

	listed, err := suite.repository.List(context.Background())
	suite.Require().NoError(err)
	suite.Require().Len(listed, 2)
	suite.Equal("Pavel", listed[0].Name())
	suite.Equal("Vera", listed[1].Name())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGet_Unknown_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestCourierRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CourierRepositoryIntegrationTestSuite))
}
