package ports

import (
	"context"
	"errors"
	"fmt"

	"fleetops/internal/core/domain/model/courier"
	"fleetops/internal/core/domain/model/delivery"
	"fleetops/internal/core/domain/model/kernel"
)

// ErrTransientIO is the sentinel for remote fetch/persist failures caused by
// transient transport conditions. The core performs no hidden retries: the
// caller owns the retry policy so in-memory invariant checks stay
// synchronous and deterministic.
var ErrTransientIO = errors.New("transient marketplace I/O failure")

// TransientIOError wraps a failed gateway operation with the operation name
// for diagnostics.
type TransientIOError struct {
	Op    string
	Cause error
}

// NewTransientIOError creates a TransientIOError for the named operation.
func NewTransientIOError(op string, cause error) *TransientIOError {
	return &TransientIOError{Op: op, Cause: cause}
}

// Error implements the error interface.
func (e *TransientIOError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrTransientIO, e.Op, e.Cause)
}

// Unwrap returns the wrapped errors so errors.Is can classify this error
// both as ErrTransientIO and as its underlying cause.
func (e *TransientIOError) Unwrap() []error {
	return []error{ErrTransientIO, e.Cause}
}

// FleetSnapshot is the fleet-wide aggregate view: total and active delivery
// counts, fleet size and the per-status histogram. It is purely derived,
// recomputed on read, and never persisted independently.
type FleetSnapshot struct {
	TotalDeliveries   int
	ActiveDeliveries  int
	DeliveryPersonnel int
	StatusBreakdown   map[delivery.Status]int
}

// SuccessRate returns delivered / total, or 0 for an empty fleet.
func (s FleetSnapshot) SuccessRate() float64 {
	if s.TotalDeliveries == 0 {
		return 0
	}
	return float64(s.StatusBreakdown[delivery.Delivered]) / float64(s.TotalDeliveries)
}

// MarketplaceGateway is the data-access boundary to the remote marketplace
// API. Every operation is fallible and may fail with a TransientIOError;
// callers degrade to "no data" rather than crash, and retries stay with the
// caller.
type MarketplaceGateway interface {
	// FetchDeliveries retrieves the authoritative delivery collection.
	FetchDeliveries(ctx context.Context) ([]*delivery.Delivery, error)

	// FetchPersonnel retrieves the authoritative fleet roster with derived
	// workload counts.
	FetchPersonnel(ctx context.Context) ([]*courier.Courier, error)

	// FetchStats retrieves the fleet-wide aggregate snapshot.
	FetchStats(ctx context.Context) (FleetSnapshot, error)

	// PersistAssignment reports a courier (re)assignment upstream.
	PersistAssignment(ctx context.Context, deliveryID, courierID kernel.UUID) error

	// PersistCollection reports one collected product upstream.
	PersistCollection(ctx context.Context, deliveryID kernel.UUID, productID string) error

	// PersistStatus reports a status transition upstream. Extra carries the
	// transition payload: the validation code for delivered, the reason for
	// failed, empty otherwise.
	PersistStatus(ctx context.Context, deliveryID kernel.UUID, status delivery.Status, extra string) error
}
