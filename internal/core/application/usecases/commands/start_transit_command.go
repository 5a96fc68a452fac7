package commands

import (
	"errors"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/pkg/errs"
	"fleetops/internal/pkg/guard"
)

var ErrStartTransitCommandIsNotConstructed = errors.New(
	"StartTransitCommand must be created via NewStartTransitCommand constructor",
)

// StartTransitCommand moves a picked-up delivery into transit. Purely a
// status move; no extra data travels with it.
type StartTransitCommand struct {
	deliveryID kernel.UUID
	actor      string
	guard      guard.ConstructorGuard
}

// NewStartTransitCommand creates a validated transit command.
func NewStartTransitCommand(deliveryID kernel.UUID, actor string) (StartTransitCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return StartTransitCommand{}, err
	}
	if actor == "" {
		return StartTransitCommand{}, errs.NewValueIsRequiredError("actor")
	}

	return StartTransitCommand{
		deliveryID: deliveryID,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// DeliveryID returns the delivery entering transit.
func (c StartTransitCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Actor returns the authenticated operator identity.
func (c StartTransitCommand) Actor() string {
	return c.actor
}

// Validate ensures the command was created through the constructor.
func (c StartTransitCommand) Validate() error {
	return c.guard.Validate(ErrStartTransitCommandIsNotConstructed)
}
