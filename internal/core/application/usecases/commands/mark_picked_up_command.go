package commands

import (
	"errors"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/pkg/errs"
	"fleetops/internal/pkg/guard"
)

var ErrMarkPickedUpCommandIsNotConstructed = errors.New(
	"MarkPickedUpCommand must be created via NewMarkPickedUpCommand constructor",
)

// MarkPickedUpCommand moves a delivery from assigned to picked_up. The
// operator may allow a partial pickup explicitly; otherwise every product
// must have been collected first.
type MarkPickedUpCommand struct {
	deliveryID   kernel.UUID
	allowPartial bool
	actor        string
	guard        guard.ConstructorGuard
}

// NewMarkPickedUpCommand creates a validated pickup command.
func NewMarkPickedUpCommand(deliveryID kernel.UUID, allowPartial bool, actor string) (MarkPickedUpCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return MarkPickedUpCommand{}, err
	}
	if actor == "" {
		return MarkPickedUpCommand{}, errs.NewValueIsRequiredError("actor")
	}

	return MarkPickedUpCommand{
		deliveryID:   deliveryID,
		allowPartial: allowPartial,
		actor:        actor,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// DeliveryID returns the delivery being picked up.
func (c MarkPickedUpCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// AllowPartial reports whether the operator explicitly permitted a pickup
// with uncollected products.
func (c MarkPickedUpCommand) AllowPartial() bool {
	return c.allowPartial
}

// Actor returns the authenticated operator identity.
func (c MarkPickedUpCommand) Actor() string {
	return c.actor
}

// Validate ensures the command was created through the constructor.
func (c MarkPickedUpCommand) Validate() error {
	return c.guard.Validate(ErrMarkPickedUpCommandIsNotConstructed)
}
