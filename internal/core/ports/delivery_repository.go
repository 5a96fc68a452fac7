// Package ports defines the contracts between the core and its
// infrastructure: repository and unit-of-work interfaces over the delivery
// store, the remote marketplace data-access gateway, and the inbound
// push-notification types. These interfaces establish the dependency
// inversion boundary that keeps the domain testable.
package ports

import (
	"context"

	"fleetops/internal/core/domain/model/delivery"
	"fleetops/internal/core/domain/model/kernel"
)

// DeliveryFilter narrows List results. Zero value means no filtering.
type DeliveryFilter struct {
	// Statuses restricts to the given lifecycle states when non-empty.
	Statuses []delivery.Status
	// CourierID restricts to deliveries of one courier when non-nil.
	CourierID *kernel.UUID
}

// DeliveryRepository defines the persistence contract for delivery
// aggregates. All writes are atomic per delivery: a reader never observes a
// partially applied update.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate.
	// The delivery must be valid and not already exist.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	// Returns an ObjectNotFoundError when the delivery does not exist.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when nothing matches.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// List retrieves all deliveries matching the filter, unfiltered when the
	// filter is zero. Ordering is stable (by assignment time, oldest first).
	List(ctx context.Context, filter DeliveryFilter) ([]*delivery.Delivery, error)
}
