package queries

import (
	"context"
	"math"

	"fleetops/internal/core/domain/model/delivery"
	"fleetops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveDeliveriesQueryHandler retrieves in-progress deliveries from the
// database. Uses direct SQL for read performance, bypassing the aggregate.
type GetActiveDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDeliveriesQueryHandler creates a handler for active-delivery queries.
// Requires a GORM database connection for query execution.
func NewGetActiveDeliveriesQueryHandler(db *gorm.DB) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve all non-terminal deliveries.
// Results are ordered by assignment time, oldest first.
func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDeliveriesQuery,
) ([]GetActiveDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetActiveDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			courier_id,
			status,
			total_products,
			collected_products,
			assigned_at,
			snapshot_buyer_name,
			snapshot_shop_name,
			snapshot_shipping_address
		FROM deliveries
		WHERE status IN (?, ?, ?)
		ORDER BY assigned_at
	`, delivery.Assigned.String(), delivery.PickedUp.String(), delivery.InTransit.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveDeliveriesQueryResponse
		var id, orderID, courierID uuid.UUID

		err = rows.Scan(
			&id,
			&orderID,
			&courierID,
			&resp.Status,
			&resp.TotalProducts,
			&resp.CollectedProducts,
			&resp.AssignedAt,
			&resp.BuyerName,
			&resp.ShopName,
			&resp.ShippingAddress,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if resp.CourierID, err = kernel.UUIDFromBytes(courierID[:]); err != nil {
			return nil, err
		}

		if resp.TotalProducts > 0 {
			resp.Progress = int(math.Round(
				float64(resp.CollectedProducts) / float64(resp.TotalProducts) * 100,
			))
		}
		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
