package commands

import (
	"context"

	"fleetops/internal/core/domain/services"
	"fleetops/internal/core/ports"
)

// AssignDeliveryCommandHandler orchestrates courier assignment. It loads
// both aggregates inside one unit of work, applies the operator's choice
// through the AssignmentEngine, persists the delivery write locally and
// reports it upstream, all atomically.
//
// Because courier workload counts are derived from the delivery collection,
// the single committed delivery write decrements the previous courier and
// increments the new one with no observable intermediate state.
type AssignDeliveryCommandHandler struct {
	uowFactory UoWFactory
	gateway    ports.MarketplaceGateway
}

// NewAssignDeliveryCommandHandler creates a handler for assignment operations.
func NewAssignDeliveryCommandHandler(uowFactory UoWFactory, gateway ports.MarketplaceGateway) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the assignment command.
//
// Failure modes stay distinguishable for the caller: an unknown
// delivery or courier id yields an ObjectNotFoundError, a terminal
// delivery yields ErrInvalidState, and an upstream persistence failure
// yields ErrTransientIO with the whole transaction rolled back, so a failed
// call leaves every entity exactly as it was.
func (h AssignDeliveryCommandHandler) Handle(ctx context.Context, command AssignDeliveryCommand) error {
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

	chosen, err := uow.CourierRepository().Get(ctx, command.CourierID())
	if err != nil {
		return err
	}

	if err = services.NewAssignmentEngine().Assign(aggregate, chosen); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = h.gateway.PersistAssignment(ctx, aggregate.ID(), chosen.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
