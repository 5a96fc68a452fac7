// Package queries contains read operations over the delivery store.
// Implements the query side of the CQRS split: handlers read with direct
// SQL and return flat read models, bypassing the aggregates.
package queries

import (
	"errors"
	"time"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/pkg/guard"
)

var ErrGetActiveDeliveriesQueryIsNotConstructed = errors.New(
	"GetActiveDeliveriesQuery must be created via NewGetActiveDeliveriesQuery constructor",
)

// GetActiveDeliveriesQuery retrieves every delivery still in progress:
// assigned, picked_up or in_transit. Terminal deliveries are excluded.
type GetActiveDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveDeliveriesQuery creates a query for the in-progress workload.
func NewGetActiveDeliveriesQuery() GetActiveDeliveriesQuery {
	return GetActiveDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDeliveriesQueryIsNotConstructed)
}

// GetActiveDeliveriesQueryResponse is the flat read model of one
// in-progress delivery for operator dashboards.
type GetActiveDeliveriesQueryResponse struct {
	ID                kernel.UUID
	OrderID           kernel.UUID
	CourierID         kernel.UUID
	Status            string
	TotalProducts     int
	CollectedProducts int
	Progress          int
	AssignedAt        time.Time
	BuyerName         string
	ShopName          string
	ShippingAddress   string
}
