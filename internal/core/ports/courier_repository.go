package ports

import (
	"context"

	"fleetops/internal/core/domain/model/courier"
	"fleetops/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for fleet members.
//
// Implementations derive each courier's active-delivery count from the
// delivery collection at read time (a COUNT over non-terminal deliveries
// referencing the courier), never from a stored counter. Reading within the
// same transaction as a delivery write therefore always observes counts
// consistent with that write.
type CourierRepository interface {
	// Add persists a new courier.
	// The courier must be valid and not already exist.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update persists changes to an existing courier's identity fields.
	// The derived workload count is not writable.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier with their derived active-delivery count.
	// Returns an ObjectNotFoundError when nothing matches.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// List retrieves all couriers with derived counts, ordered by name.
	List(ctx context.Context) ([]*courier.Courier, error)
}
