package queries

import (
	"context"

	"fleetops/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

// GetFleetSnapshotQueryHandler computes the fleet snapshot with two direct
// SQL reads: a status histogram over deliveries and a personnel count.
type GetFleetSnapshotQueryHandler struct {
	db *gorm.DB
}

// NewGetFleetSnapshotQueryHandler creates a handler for fleet snapshot queries.
// Requires a GORM database connection for query execution.
func NewGetFleetSnapshotQueryHandler(db *gorm.DB) GetFleetSnapshotQueryHandler {
	return GetFleetSnapshotQueryHandler{db: db}
}

// Handle executes the snapshot query. An empty store yields a zero
// snapshot with a success rate of 0, not an error.
func (h GetFleetSnapshotQueryHandler) Handle(
	ctx context.Context,
	query GetFleetSnapshotQuery,
) (GetFleetSnapshotQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFleetSnapshotQueryResponse{}, err
	}

	resp := GetFleetSnapshotQueryResponse{
		StatusBreakdown: map[string]int{
			delivery.Assigned.String():  0,
			delivery.PickedUp.String():  0,
			delivery.InTransit.String(): 0,
			delivery.Delivered.String(): 0,
			delivery.Failed.String():    0,
		},
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM deliveries
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetFleetSnapshotQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err = rows.Scan(&status, &count); err != nil {
			return GetFleetSnapshotQueryResponse{}, err
		}

		parsed, parseErr := delivery.StatusFromString(status)
		if parseErr != nil {
			return GetFleetSnapshotQueryResponse{}, parseErr
		}

		resp.StatusBreakdown[status] = count
		resp.TotalDeliveries += count
		if parsed.IsActive() {
			resp.ActiveDeliveries += count
		}
	}
	if err = rows.Err(); err != nil {
		return GetFleetSnapshotQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM couriers`).Row()
	if err = row.Scan(&resp.DeliveryPersonnel); err != nil {
		return GetFleetSnapshotQueryResponse{}, err
	}

	if resp.TotalDeliveries > 0 {
		resp.SuccessRate = float64(resp.StatusBreakdown[delivery.Delivered.String()]) /
			float64(resp.TotalDeliveries)
	}

	return resp, nil
}
