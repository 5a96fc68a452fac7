package commands

import (
	"errors"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/pkg/errs"
	"fleetops/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand finishes an in-transit delivery. The validation
// code is the opaque token proving recipient handoff; the transition is
// rejected without it.
type CompleteDeliveryCommand struct {
	deliveryID     kernel.UUID
	validationCode string
	actor          string
	guard          guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a validated completion command.
func NewCompleteDeliveryCommand(deliveryID kernel.UUID, validationCode, actor string) (CompleteDeliveryCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return CompleteDeliveryCommand{}, err
	}
	if actor == "" {
		return CompleteDeliveryCommand{}, errs.NewValueIsRequiredError("actor")
	}

	// An empty code is not rejected here: the aggregate owns that rule and
	// reports it as an illegal transition, which callers present uniformly.
	return CompleteDeliveryCommand{
		deliveryID:     deliveryID,
		validationCode: validationCode,
		actor:          actor,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// DeliveryID returns the delivery being completed.
func (c CompleteDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// ValidationCode returns the handoff token.
func (c CompleteDeliveryCommand) ValidationCode() string {
	return c.validationCode
}

// Actor returns the authenticated operator identity.
func (c CompleteDeliveryCommand) Actor() string {
	return c.actor
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}
