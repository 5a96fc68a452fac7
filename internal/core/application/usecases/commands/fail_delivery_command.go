package commands

import (
	"errors"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/pkg/errs"
	"fleetops/internal/pkg/guard"
)

var ErrFailDeliveryCommandIsNotConstructed = errors.New(
	"FailDeliveryCommand must be created via NewFailDeliveryCommand constructor",
)

// FailDeliveryCommand abandons a delivery from any non-terminal state,
// recording an opaque reason code for audit.
type FailDeliveryCommand struct {
	deliveryID kernel.UUID
	reason     string
	actor      string
	guard      guard.ConstructorGuard
}

// NewFailDeliveryCommand creates a validated failure command.
func NewFailDeliveryCommand(deliveryID kernel.UUID, reason, actor string) (FailDeliveryCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return FailDeliveryCommand{}, err
	}
	if reason == "" {
		return FailDeliveryCommand{}, errs.NewValueIsRequiredError("reason")
	}
	if actor == "" {
		return FailDeliveryCommand{}, errs.NewValueIsRequiredError("actor")
	}

	return FailDeliveryCommand{
		deliveryID: deliveryID,
		reason:     reason,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// DeliveryID returns the delivery being failed.
func (c FailDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Reason returns the audit reason code.
func (c FailDeliveryCommand) Reason() string {
	return c.reason
}

// Actor returns the authenticated operator identity.
func (c FailDeliveryCommand) Actor() string {
	return c.actor
}

// Validate ensures the command was created through the constructor.
func (c FailDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrFailDeliveryCommandIsNotConstructed)
}
