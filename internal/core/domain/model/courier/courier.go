package courier

import (
	"errors"
	"fmt"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/pkg/errs"
	"fleetops/internal/pkg/guard"
)

// overloadedThreshold is the active-delivery count at which a courier's
// availability tier becomes Overloaded.
const overloadedThreshold = 5

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a courier without contact info.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier")
)

// Availability is the derived workload tier of a courier. It is never stored
// as independent truth: it is recomputed from the live count of the
// courier's non-terminal deliveries whenever that count changes.
type Availability int

const (
	// Available means the courier carries no active deliveries.
	Available Availability = iota
	// Busy means the courier carries at least one and fewer than five active deliveries.
	Busy
	// Overloaded means the courier carries five or more active deliveries.
	Overloaded
)

// AvailabilityFor derives the tier from an active-delivery count.
func AvailabilityFor(activeDeliveries int) Availability {
	switch {
	case activeDeliveries <= 0:
		return Available
	case activeDeliveries < overloadedThreshold:
		return Busy
	default:
		return Overloaded
	}
}

// String returns the lower-case tier name.
func (a Availability) String() string {
	switch a {
	case Available:
		return "available"
	case Busy:
		return "busy"
	case Overloaded:
		return "overloaded"
	default:
		return "unknown"
	}
}

// Courier represents one fleet member who can be assigned deliveries.
//
// The aggregate owns identity and contact info; the active-delivery count is
// a derived projection computed by the store from the delivery collection
// (deliveries in assigned, picked_up or in_transit status referencing this
// courier) and carried here read-only, so it can never drift from the truth.
//
// Business rules:
//   - Courier must have a valid UUID, a non-empty name and contact info
//   - The availability tier follows the active count: available at 0,
//     busy below five, overloaded at five or more
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the courier's human-readable name
	name string
	// phone is the courier's contact number
	phone string
	// activeDeliveries is the derived count of this courier's non-terminal deliveries
	activeDeliveries int
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier registers a new fleet member. A fresh courier starts with no
// active deliveries and is therefore in the Available tier.
//
// Returns a validation error if the id is invalid or name/phone are empty
// (aggregated when several inputs are bad).
func NewCourier(id kernel.UUID, name string, phone string) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a Courier from persistence or a reconciliation
// fetch, including the derived active-delivery count the store computed for
// it. The count must not be negative.
func RestoreCourier(id kernel.UUID, name string, phone string, activeDeliveries int) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
		c.setActiveDeliveries(activeDeliveries),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Courier was created through a constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's human-readable name.
func (c *Courier) Name() string {
	return c.name
}

// Phone returns the courier's contact number.
func (c *Courier) Phone() string {
	return c.phone
}

// ActiveDeliveries returns the derived count of this courier's deliveries in
// assigned, picked_up or in_transit status.
func (c *Courier) ActiveDeliveries() int {
	return c.activeDeliveries
}

// Availability returns the workload tier derived from the active count.
func (c *Courier) Availability() Availability {
	return AvailabilityFor(c.activeDeliveries)
}

// setID validates and sets the courier identifier. Construction only.
func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

// setName validates and sets the courier name. Construction only.
func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

// setPhone validates and sets the contact number. Construction only.
func (c *Courier) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}

// setActiveDeliveries validates and sets the derived count. Construction only.
func (c *Courier) setActiveDeliveries(count int) error {
	if count < 0 {
		return errs.NewValueIsInvalidErrorWithCause("activeDeliveries",
			fmt.Errorf("%d is negative", count))
	}
	c.activeDeliveries = count
	return nil
}
