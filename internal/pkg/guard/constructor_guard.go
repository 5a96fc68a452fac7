// Package guard implements the constructor-guard pattern used to ensure
// domain objects and commands are only created through their designated
// constructor functions, never as zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed as the validation error, so validation always fails with a
// meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was initialized through its
// constructor or created as a zero value. Embed it in aggregates, value
// objects and commands, set it with NewConstructorGuard inside the
// constructor, and check it in Validate before any operation.
//
// Example:
//
//	type FailDeliveryCommand struct {
//	    reason string
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewFailDeliveryCommand(reason string) (FailDeliveryCommand, error) {
//	    if reason == "" {
//	        return FailDeliveryCommand{}, errs.NewValueIsRequiredError("reason")
//	    }
//	    return FailDeliveryCommand{reason: reason, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c FailDeliveryCommand) Validate() error {
//	    return c.guard.Validate(ErrFailDeliveryCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard marking the owning object
// as properly constructed. Call it only from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the owning object was built through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
