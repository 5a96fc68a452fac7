package delivery

import (
	"errors"
	"fmt"

	"fleetops/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
// It implements a state machine with defined transitions so deliveries
// follow the fulfillment workflow and never regress.
//
// State transitions:
//
//	Assigned ──> PickedUp ──> InTransit ──> Delivered
//	    │            │            │
//	    └────────────┴────────────┴──> Failed
//
// Delivered and Failed are terminal: no transition leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Assigned is the initial status: the delivery has been handed to a
	// courier but the products are still being collected at the shop.
	Assigned

	// PickedUp indicates the courier has collected the products and left the shop.
	PickedUp

	// InTransit indicates the delivery is on its way to the buyer.
	InTransit

	// Delivered indicates the handoff to the recipient was confirmed. Terminal.
	Delivered

	// Failed indicates the delivery was abandoned with an audit reason. Terminal.
	Failed
)

// ErrIllegalTransition is the sentinel for status moves the state machine
// does not permit. Use errors.Is to classify.
var ErrIllegalTransition = errors.New("illegal status transition")

// IllegalTransitionError reports a rejected status move, carrying the
// states involved and an optional cause (e.g. an unmet precondition).
type IllegalTransitionError struct {
	From  Status
	To    Status
	Cause error
}

// NewIllegalTransitionError creates an IllegalTransitionError without a cause.
func NewIllegalTransitionError(from, to Status) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to}
}

// NewIllegalTransitionErrorWithCause creates an IllegalTransitionError
// carrying the precondition failure that blocked the move.
func NewIllegalTransitionErrorWithCause(from, to Status, cause error) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to, Cause: cause}
}

// Error implements the error interface.
func (e *IllegalTransitionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s -> %s (cause: %s)", ErrIllegalTransition, e.From, e.To, e.Cause)
	}
	return fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To)
}

// Unwrap returns the sentinel ErrIllegalTransition so errors.Is can classify this error.
func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// getStatusStrings returns the wire/persistence names of all statuses.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Assigned:  "assigned",
		PickedUp:  "picked_up",
		InTransit: "in_transit",
		Delivered: "delivered",
		Failed:    "failed",
	}
}

// getValidStatusStrings returns only the statuses a delivery may legally hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Assigned:  "assigned",
		PickedUp:  "picked_up",
		InTransit: "in_transit",
		Delivered: "delivered",
		Failed:    "failed",
	}
}

// StatusFromString parses a persistence/wire status name.
// Returns a validation error for unrecognized names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status value is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lower-snake name of the status ("picked_up", ...).
// Implements fmt.Stringer; safe on any value, invalid ones read "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed
}

// IsActive reports whether a delivery in this status counts toward a
// courier's workload (assigned, picked_up or in_transit).
func (s Status) IsActive() bool {
	return s == Assigned || s == PickedUp || s == InTransit
}

// Pickup transitions the status to PickedUp.
//
// Valid transitions:
//   - Assigned -> PickedUp
//
// Returns (0, *IllegalTransitionError) from any other state. Collection
// completeness is checked by the aggregate, not here.
func (s Status) Pickup() (Status, error) {
	if s != Assigned {
		return 0, NewIllegalTransitionError(s, PickedUp)
	}
	return PickedUp, nil
}

// Transit transitions the status to InTransit.
//
// Valid transitions:
//   - PickedUp -> InTransit
//
// The move is unconditional given the prior state; no extra data is required.
func (s Status) Transit() (Status, error) {
	if s != PickedUp {
		return 0, NewIllegalTransitionError(s, InTransit)
	}
	return InTransit, nil
}

// Deliver transitions the status to Delivered, the successful terminal state.
//
// Valid transitions:
//   - InTransit -> Delivered
//
// The validation-code and timeline preconditions are checked by the aggregate.
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return 0, NewIllegalTransitionError(s, Delivered)
	}
	return Delivered, nil
}

// Fail transitions the status to Failed, the unsuccessful terminal state.
//
// Valid transitions:
//   - Assigned, PickedUp, InTransit -> Failed
//
// Terminal states cannot fail again.
func (s Status) Fail() (Status, error) {
	if s.IsTerminal() || s == Unknown {
		return 0, NewIllegalTransitionError(s, Failed)
	}
	return Failed, nil
}
