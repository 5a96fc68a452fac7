package queries

import (
	"errors"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/pkg/guard"
)

var ErrSuggestCouriersQueryIsNotConstructed = errors.New(
	"SuggestCouriersQuery must be created via NewSuggestCouriersQuery constructor",
)

// SuggestCouriersQuery ranks the fleet by current workload so an operator
// can pick a courier for assignment. The ranking is advisory: the operator's
// explicit choice always wins.
type SuggestCouriersQuery struct {
	guard guard.ConstructorGuard
}

// NewSuggestCouriersQuery creates a query for the workload-ordered roster.
func NewSuggestCouriersQuery() SuggestCouriersQuery {
	return SuggestCouriersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q SuggestCouriersQuery) Validate() error {
	return q.guard.Validate(ErrSuggestCouriersQueryIsNotConstructed)
}

// SuggestCouriersQueryResponse is one fleet member with the derived
// workload used for ranking.
type SuggestCouriersQueryResponse struct {
	ID               kernel.UUID
	Name             string
	Phone            string
	ActiveDeliveries int
	Availability     string
}
