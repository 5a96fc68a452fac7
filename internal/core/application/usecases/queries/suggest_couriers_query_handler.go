package queries

import (
	"context"

	"fleetops/internal/core/domain/model/courier"
	"fleetops/internal/core/domain/model/delivery"
	"fleetops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SuggestCouriersQueryHandler ranks couriers by derived workload. The
// active-delivery count is computed with a COUNT over non-terminal
// deliveries, never read from a stored column, so the ranking is always
// consistent with the delivery table at query time.
type SuggestCouriersQueryHandler struct {
	db *gorm.DB
}

// NewSuggestCouriersQueryHandler creates a handler for assignment suggestions.
// Requires a GORM database connection for query execution.
func NewSuggestCouriersQueryHandler(db *gorm.DB) SuggestCouriersQueryHandler {
	return SuggestCouriersQueryHandler{db: db}
}

// Handle executes the suggestion query. Couriers come back least-loaded
// first, with name as the tie-breaker for a stable order.
func (h SuggestCouriersQueryHandler) Handle(
	ctx context.Context,
	query SuggestCouriersQuery,
) ([]SuggestCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	couriers := make([]SuggestCouriersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			c.phone,
			COUNT(d.id) AS active_deliveries
		FROM couriers c
		LEFT JOIN deliveries d
			ON d.courier_id = c.id AND d.status IN (?, ?, ?)
		GROUP BY c.id, c.name, c.phone
		ORDER BY active_deliveries, c.name
	`, delivery.Assigned.String(), delivery.PickedUp.String(), delivery.InTransit.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp SuggestCouriersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Phone,
			&resp.ActiveDeliveries,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		resp.Availability = courier.AvailabilityFor(resp.ActiveDeliveries).String()
		couriers = append(couriers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
