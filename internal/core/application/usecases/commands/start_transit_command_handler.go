package commands

import (
	"context"

	"fleetops/internal/core/domain/model/delivery"
	"fleetops/internal/core/ports"
)

// StartTransitCommandHandler applies the picked_up -> in_transit transition
// and reports it upstream within one transaction.
type StartTransitCommandHandler struct {
	uowFactory DeliveryUoWFactory
	gateway    ports.MarketplaceGateway
}

// NewStartTransitCommandHandler creates a handler for transit transitions.
func NewStartTransitCommandHandler(uowFactory DeliveryUoWFactory, gateway ports.MarketplaceGateway) StartTransitCommandHandler {
	return StartTransitCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the transit command.
func (h StartTransitCommandHandler) Handle(ctx context.Context, command StartTransitCommand) error {
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

	if err = aggregate.StartTransit(); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = h.gateway.PersistStatus(ctx, aggregate.ID(), delivery.InTransit, ""); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
