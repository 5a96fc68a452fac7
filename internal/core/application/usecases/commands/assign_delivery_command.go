package commands

import (
	"errors"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/pkg/errs"
	"fleetops/internal/pkg/guard"
)

var ErrAssignDeliveryCommandIsNotConstructed = errors.New(
	"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
)

// AssignDeliveryCommand hands a delivery to an operator-chosen courier.
// Reassignment of an already-assigned delivery is the same operation: it
// overwrites the responsible courier without resetting the delivery's
// status, counters or timestamps.
//
// Example:
//
//	cmd, err := commands.NewAssignDeliveryCommand(deliveryID, courierID, "operator:lena")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type AssignDeliveryCommand struct {
	deliveryID kernel.UUID
	courierID  kernel.UUID
	actor      string
	guard      guard.ConstructorGuard
}

// NewAssignDeliveryCommand creates a validated assignment command.
// The actor is the authenticated operator identity, kept for audit.
func NewAssignDeliveryCommand(deliveryID, courierID kernel.UUID, actor string) (AssignDeliveryCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return AssignDeliveryCommand{}, err
	}
	if err := courierID.Validate(); err != nil {
		return AssignDeliveryCommand{}, err
	}
	if actor == "" {
		return AssignDeliveryCommand{}, errs.NewValueIsRequiredError("actor")
	}

	return AssignDeliveryCommand{
		deliveryID: deliveryID,
		courierID:  courierID,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// DeliveryID returns the delivery to assign.
func (c AssignDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// CourierID returns the operator-chosen courier.
func (c AssignDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Actor returns the authenticated operator identity.
func (c AssignDeliveryCommand) Actor() string {
	return c.actor
}

// Validate ensures the command was created through the constructor.
func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}
