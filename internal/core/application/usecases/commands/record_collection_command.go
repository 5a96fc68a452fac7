package commands

import (
	"errors"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/pkg/errs"
	"fleetops/internal/pkg/guard"
)

var ErrRecordCollectionCommandIsNotConstructed = errors.New(
	"RecordCollectionCommand must be created via NewRecordCollectionCommand constructor",
)

// RecordCollectionCommand records that one distinct product of a delivery
// was physically collected at the shop. Recording never moves the status:
// deciding when "fully collected" becomes "picked up" stays an explicit
// operator action.
type RecordCollectionCommand struct {
	deliveryID kernel.UUID
	productID  string
	guard      guard.ConstructorGuard
}

// NewRecordCollectionCommand creates a validated collection command.
func NewRecordCollectionCommand(deliveryID kernel.UUID, productID string) (RecordCollectionCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return RecordCollectionCommand{}, err
	}
	if productID == "" {
		return RecordCollectionCommand{}, errs.NewValueIsRequiredError("productID")
	}

	return RecordCollectionCommand{
		deliveryID: deliveryID,
		productID:  productID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// DeliveryID returns the delivery being collected for.
func (c RecordCollectionCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// ProductID returns the collected product.
func (c RecordCollectionCommand) ProductID() string {
	return c.productID
}

// Validate ensures the command was created through the constructor.
func (c RecordCollectionCommand) Validate() error {
	return c.guard.Validate(ErrRecordCollectionCommandIsNotConstructed)
}
