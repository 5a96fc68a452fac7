package commands_test

import (
	"testing"

	"fleetops/internal/core/application/usecases/commands"
	"fleetops/internal/core/domain/model/delivery"
	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	c := fixtureCourier(t)
	cmd, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(), kernel.NewUUID(), c.ID(), 3,
		delivery.OrderSnapshot{BuyerName: "Ann", ShopName: "Corner Deli"},
	)
	require.NoError(t, err)

	deliveries := new(MockDeliveryRepository)
	couriers := new(MockCourierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(couriers).Once(),
		couriers.On("Get", mock.Anything, c.ID()).Return(c, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveries).Once(),
		deliveries.On("Add", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	deliveries.AssertExpectations(t)
	couriers.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateDeliveryCommandHandler_Handle_UnknownCourier(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(), kernel.NewUUID(), courierID, 3, delivery.OrderSnapshot{},
	)
	require.NoError(t, err)

	couriers := new(MockCourierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(couriers).Once(),
		couriers.On("Get", mock.Anything, courierID).
			Return(nil, errs.NewObjectNotFoundError("courierID", courierID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
