package commands

import (
	"context"

	"fleetops/internal/core/domain/model/delivery"
	"fleetops/internal/core/ports"
)

// MarkPickedUpCommandHandler applies the assigned -> picked_up transition
// and reports it upstream within one transaction.
type MarkPickedUpCommandHandler struct {
	uowFactory DeliveryUoWFactory
	gateway    ports.MarketplaceGateway
}

// NewMarkPickedUpCommandHandler creates a handler for pickup transitions.
func NewMarkPickedUpCommandHandler(uowFactory DeliveryUoWFactory, gateway ports.MarketplaceGateway) MarkPickedUpCommandHandler {
	return MarkPickedUpCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the pickup command. An incomplete collection without the
// partial override, or a delivery outside assigned status, fails with
// ErrIllegalTransition and leaves state untouched.
func (h MarkPickedUpCommandHandler) Handle(ctx context.Context, command MarkPickedUpCommand) error {
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

	aggregate, err := uow.DeliveryRepository().Get(ctx, command.DeliveryID())
	if err != nil {
		return err
	}

	if err = aggregate.MarkPickedUp(command.AllowPartial()); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = h.gateway.PersistStatus(ctx, aggregate.ID(), delivery.PickedUp, ""); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
