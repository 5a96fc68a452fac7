package commands

import (
	"context"

	"fleetops/internal/core/ports"
)

// RecordCollectionCommandHandler increments a delivery's collection counter
// and reports the collected product upstream. The delivery-local write and
// the upstream report succeed or fail together.
type RecordCollectionCommandHandler struct {
	uowFactory DeliveryUoWFactory
	gateway    ports.MarketplaceGateway
}

// NewRecordCollectionCommandHandler creates a handler for collection recording.
func NewRecordCollectionCommandHandler(uowFactory DeliveryUoWFactory, gateway ports.MarketplaceGateway) RecordCollectionCommandHandler {
	return RecordCollectionCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the collection command. An attempt to collect past the
// delivery total fails with ErrOverCollection and changes nothing, locally
// or upstream.
func (h RecordCollectionCommandHandler) Handle(ctx context.Context, command RecordCollectionCommand) error {
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

	if err = aggregate.RecordCollection(); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = h.gateway.PersistCollection(ctx, aggregate.ID(), command.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
