package commands

import (
	"errors"

	"fleetops/internal/core/domain/model/delivery"
	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/pkg/errs"
	"fleetops/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand registers a new delivery when an order is handed to
// fulfillment. The delivery starts in assigned status with the given initial
// courier responsible.
type CreateDeliveryCommand struct {
	deliveryID    kernel.UUID
	orderID       kernel.UUID
	courierID     kernel.UUID
	totalProducts int
	snapshot      delivery.OrderSnapshot
	guard         guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a validated delivery-creation command.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	orderID kernel.UUID,
	courierID kernel.UUID,
	totalProducts int,
	snapshot delivery.OrderSnapshot,
) (CreateDeliveryCommand, error) {
	if err := errors.Join(
		deliveryID.Validate(),
		orderID.Validate(),
		courierID.Validate(),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}
	if totalProducts < 0 {
		return CreateDeliveryCommand{}, errs.NewValueIsInvalidError("totalProducts")
	}

	return CreateDeliveryCommand{
		deliveryID:    deliveryID,
		orderID:       orderID,
		courierID:     courierID,
		totalProducts: totalProducts,
		snapshot:      snapshot,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// DeliveryID returns the identifier for the new delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// OrderID returns the order being fulfilled.
func (c CreateDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the initially responsible courier.
func (c CreateDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

// TotalProducts returns the number of products to collect.
func (c CreateDeliveryCommand) TotalProducts() int {
	return c.totalProducts
}

// Snapshot returns the denormalized order projection.
func (c CreateDeliveryCommand) Snapshot() delivery.OrderSnapshot {
	return c.snapshot
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}
