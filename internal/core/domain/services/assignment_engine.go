package services

import (
	"sort"

	"fleetops/internal/core/domain/model/courier"
	"fleetops/internal/core/domain/model/delivery"
)

// AssignmentEngine is the domain service that validates and applies an
// operator-chosen courier for a delivery, and ranks candidates by workload.
//
// The engine never auto-selects: no routing or geolocation optimization is
// involved, only workload counting. Suggest produces a ranked list; making a
// choice is always a separate explicit Assign call.
//
// Business rules:
//   - Terminal deliveries cannot be (re)assigned
//   - Reassignment at any non-terminal status keeps the delivery's status,
//     counters and timestamps intact
//   - Candidate ranking is ascending by active-delivery count, then by
//     availability tier (available < busy < overloaded), then by id for a
//     tie-break-free total order
type AssignmentEngine struct{}

// NewAssignmentEngine creates a new AssignmentEngine instance.
func NewAssignmentEngine() AssignmentEngine {
	return AssignmentEngine{}
}

// Assign applies the operator-supplied courier to the delivery.
//
// Both aggregates are validated; the delivery then takes the courier through
// its Reassign operation, which enforces the terminal-status rule
// (ErrInvalidState for delivered or failed deliveries).
//
// The caller persists the mutated delivery through a unit of work; because
// courier workload counts are derived projections over the delivery
// collection, committing that single write atomically moves one unit of
// workload from the previous courier to the new one with no intermediate
// state observable.
func (e AssignmentEngine) Assign(d *delivery.Delivery, c *courier.Courier) error {
	if err := d.Validate(); err != nil {
		return err
	}

	if err := c.Validate(); err != nil {
		return err
	}

	return d.Reassign(c.ID())
}

// Suggest ranks candidate couriers for assignment, least loaded first.
//
// The ordering is ascending by active-delivery count, then by availability
// tier, then by courier id, so equal inputs always produce the same list.
// The returned slice is a new one; the input is not reordered.
func (e AssignmentEngine) Suggest(candidates []*courier.Courier) []*courier.Courier {
	ranked := make([]*courier.Courier, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].ActiveDeliveries() != ranked[j].ActiveDeliveries() {
			return ranked[i].ActiveDeliveries() < ranked[j].ActiveDeliveries()
		}
		if ranked[i].Availability() != ranked[j].Availability() {
			return ranked[i].Availability() < ranked[j].Availability()
		}
		return ranked[i].ID().String() < ranked[j].ID().String()
	})

	return ranked
}
