package queries

import (
	"errors"

	"fleetops/internal/pkg/guard"
)

var ErrGetFleetSnapshotQueryIsNotConstructed = errors.New(
	"GetFleetSnapshotQuery must be created via NewGetFleetSnapshotQuery constructor",
)

// GetFleetSnapshotQuery computes the fleet-wide aggregate view: total and
// active delivery counts, fleet size, per-status histogram and success
// rate. The snapshot is derived on every read and never stored.
type GetFleetSnapshotQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFleetSnapshotQuery creates a query for the fleet snapshot.
func NewGetFleetSnapshotQuery() GetFleetSnapshotQuery {
	return GetFleetSnapshotQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetFleetSnapshotQuery) Validate() error {
	return q.guard.Validate(ErrGetFleetSnapshotQueryIsNotConstructed)
}

// GetFleetSnapshotQueryResponse is the aggregate fleet view. The histogram
// carries a bucket for every lifecycle status, zero-valued when empty, so
// consumers never need to probe for missing keys.
type GetFleetSnapshotQueryResponse struct {
	TotalDeliveries   int
	ActiveDeliveries  int
	DeliveryPersonnel int
	StatusBreakdown   map[string]int
	SuccessRate       float64
}
