package commands

import (
	"context"

	"fleetops/internal/core/domain/model/delivery"
	"fleetops/internal/core/ports"
)

// FailDeliveryCommandHandler applies the transition into the failed
// terminal state, forwarding the audit reason upstream, within one
// transaction.
type FailDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	gateway    ports.MarketplaceGateway
}

// NewFailDeliveryCommandHandler creates a handler for failure transitions.
func NewFailDeliveryCommandHandler(uowFactory DeliveryUoWFactory, gateway ports.MarketplaceGateway) FailDeliveryCommandHandler {
	return FailDeliveryCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the failure command. Failing an already terminal
// delivery is an illegal transition.
func (h FailDeliveryCommandHandler) Handle(ctx context.Context, command FailDeliveryCommand) error {
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

	if err = aggregate.Fail(command.Reason()); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = h.gateway.PersistStatus(ctx, aggregate.ID(), delivery.Failed, command.Reason()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
