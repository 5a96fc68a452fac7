package commands_test

import (
	"context"
	"errors"

	"fleetops/internal/core/application/usecases/commands"
	"fleetops/internal/core/domain/model/courier"
	"fleetops/internal/core/domain/model/delivery"
	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}
func (m *MockDeliveryRepository) List(_ context.Context, _ ports.DeliveryFilter) ([]*delivery.Delivery, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCourierRepository) Update(_ context.Context, _ *courier.Courier) error { return nil }
func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}
func (m *MockCourierRepository) List(_ context.Context) ([]*courier.Courier, error) {
	return nil, errors.New("not implemented in mock")
}

// MockUoW satisfies every unit-of-work shape the handlers declare.
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

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockCourierUoWFactory struct{ mock.Mock }

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierUoW)
}

type MockGateway struct{ mock.Mock }

func (m *MockGateway) FetchDeliveries(_ context.Context) ([]*delivery.Delivery, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockGateway) FetchPersonnel(_ context.Context) ([]*courier.Courier, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockGateway) FetchStats(_ context.Context) (ports.FleetSnapshot, error) {
	return ports.FleetSnapshot{}, errors.New("not implemented in mock")
}
func (m *MockGateway) PersistAssignment(ctx context.Context, deliveryID, courierID kernel.UUID) error {
	args := m.Called(ctx, deliveryID, courierID)
	return args.Error(0)
}
func (m *MockGateway) PersistCollection(ctx context.Context, deliveryID kernel.UUID, productID string) error {
	args := m.Called(ctx, deliveryID, productID)
	return args.Error(0)
}
func (m *MockGateway) PersistStatus(ctx context.Context, deliveryID kernel.UUID, status delivery.Status, extra string) error {
	args := m.Called(ctx, deliveryID, status, extra)
	return args.Error(0)
}
