package commands

import (
	"errors"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/pkg/guard"
)

var ErrRegisterCourierCommandIsNotConstructed = errors.New(
	"RegisterCourierCommand must be created via NewRegisterCourierCommand constructor",
)

// RegisterCourierCommand adds a new member to the delivery fleet.
type RegisterCourierCommand struct {
	courierID kernel.UUID
	name      string
	phone     string
	guard     guard.ConstructorGuard
}

// NewRegisterCourierCommand creates a validated registration command.
// Name and phone requirements are enforced by the Courier constructor in
// the handler.
func NewRegisterCourierCommand(courierID kernel.UUID, name, phone string) (RegisterCourierCommand, error) {
	if err := courierID.Validate(); err != nil {
		return RegisterCourierCommand{}, err
	}

	return RegisterCourierCommand{
		courierID: courierID,
		name:      name,
		phone:     phone,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// CourierID returns the identifier for the new fleet member.
func (c RegisterCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Name returns the courier's name.
func (c RegisterCourierCommand) Name() string {
	return c.name
}

// Phone returns the courier's contact number.
func (c RegisterCourierCommand) Phone() string {
	return c.phone
}

// Validate ensures the command was created through the constructor.
func (c RegisterCourierCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCourierCommandIsNotConstructed)
}
