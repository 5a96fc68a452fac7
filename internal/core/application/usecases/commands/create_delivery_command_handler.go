package commands

import (
	"context"

	"fleetops/internal/core/domain/model/delivery"
)

// CreateDeliveryCommandHandler persists a newly created delivery. The
// initial courier must exist in the fleet; creation is the external
// fulfillment trigger, so no upstream persistence call is made.
type CreateDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation.
func NewCreateDeliveryCommandHandler(uowFactory UoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation command. An unknown courier id fails with
// an ObjectNotFoundError before anything is written.
func (h CreateDeliveryCommandHandler) Handle(ctx context.Context, command CreateDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CourierRepository().Get(ctx, command.CourierID()); err != nil {
		return err
	}

	aggregate, err := delivery.NewDelivery(
		command.DeliveryID(),
		command.OrderID(),
		command.CourierID(),
		command.TotalProducts(),
		command.Snapshot(),
	)
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
