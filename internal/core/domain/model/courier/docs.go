// Package courier provides the Courier aggregate for fleet members and the
// derived Availability workload tier.
//
// A courier's active-delivery count is never stored as independent truth;
// the store computes it from the delivery collection and the aggregate
// carries it read-only, which rules out counter drift by construction.
package courier
