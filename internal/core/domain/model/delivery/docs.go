// Package delivery provides the Delivery aggregate root and its lifecycle
// state machine for the fleet operations core.
//
// The package includes:
//   - Delivery: the aggregate that owns identity, collection counters,
//     timestamps and the responsible courier for one shipment
//   - Status: a state machine enforcing the
//     assigned -> picked_up -> in_transit -> delivered workflow, with
//     failed reachable from any non-terminal state
//   - OrderSnapshot: the read-only denormalized order projection for display
//
// Key business rules:
//   - Collected products never exceed the order total; progress is derived
//   - Pickup requires full collection unless the operator allows a partial
//   - Completion requires a handoff validation code and an ordered timeline
//   - Terminal deliveries accept no further mutation, including reassignment
//
// The package follows the same aggregate/value-object conventions as the
// rest of the domain model: private fields, validated constructors and a
// constructor guard on everything restored from outside.
package delivery
