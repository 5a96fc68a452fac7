package commands

import (
	"context"

	"fleetops/internal/core/domain/model/delivery"
	"fleetops/internal/core/ports"
)

// CompleteDeliveryCommandHandler applies the in_transit -> delivered
// transition, forwarding the validation code upstream, within one
// transaction.
type CompleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	gateway    ports.MarketplaceGateway
}

// NewCompleteDeliveryCommandHandler creates a handler for completion transitions.
func NewCompleteDeliveryCommandHandler(uowFactory DeliveryUoWFactory, gateway ports.MarketplaceGateway) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the completion command. A missing validation code fails
// with ErrIllegalTransition, a disordered timeline with ErrInvalidTimeline;
// either way nothing changes.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, command CompleteDeliveryCommand) error {
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

	if err = aggregate.Complete(command.ValidationCode()); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = h.gateway.PersistStatus(ctx, aggregate.ID(), delivery.Delivered, command.ValidationCode()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
