// Package deliveryrepo implements delivery aggregate persistence over
// PostgreSQL, handling the conversion between the domain aggregate and its
// relational representation.
package deliveryrepo

import (
	"time"

	"fleetops/internal/core/domain/model/delivery"
	"fleetops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. Status is stored under its wire name so raw read queries can
// filter without decoding.
type DeliveryDTO struct {
	ID                uuid.UUID        `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex"`
	CourierID         uuid.UUID        `gorm:"type:uuid;not null;index"`
	Status            string           `gorm:"type:varchar(32);not null;index"`
	TotalProducts     int              `gorm:"type:int;not null"`
	CollectedProducts int              `gorm:"type:int;not null"`
	AssignedAt        time.Time        `gorm:"not null"`
	PickedUpAt        *time.Time       `gorm:""`
	DeliveredAt       *time.Time       `gorm:""`
	ValidationCode    string           `gorm:"type:varchar(255)"`
	FailureReason     string           `gorm:"type:varchar(255)"`
	Snapshot          OrderSnapshotDTO `gorm:"embedded;embeddedPrefix:snapshot_"`
}

// TableName overrides GORM's default naming to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// OrderSnapshotDTO is the embedded denormalized order projection carried by
// each delivery row.
type OrderSnapshotDTO struct {
	BuyerName       string `gorm:"type:varchar(255)"`
	BuyerPhone      string `gorm:"type:varchar(64)"`
	ShopName        string `gorm:"type:varchar(255)"`
	OrderTotalCents int64  `gorm:"type:bigint"`
	ShippingAddress string `gorm:"type:varchar(512)"`
}

// fromDomain converts a delivery aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	snapshot := aggregate.Snapshot()
	return DeliveryDTO{
		ID:                aggregate.ID().Bytes(),
		OrderID:           aggregate.OrderID().Bytes(),
		CourierID:         aggregate.Courier().Bytes(),
		Status:            aggregate.Status().String(),
		TotalProducts:     aggregate.TotalProducts(),
		CollectedProducts: aggregate.CollectedProducts(),
		AssignedAt:        aggregate.AssignedAt(),
		PickedUpAt:        aggregate.PickedUpAt(),
		DeliveredAt:       aggregate.DeliveredAt(),
		ValidationCode:    aggregate.ValidationCode(),
		FailureReason:     aggregate.FailureReason(),
		Snapshot: OrderSnapshotDTO{
			BuyerName:       snapshot.BuyerName,
			BuyerPhone:      snapshot.BuyerPhone,
			ShopName:        snapshot.ShopName,
			OrderTotalCents: snapshot.OrderTotalCents,
			ShippingAddress: snapshot.ShippingAddress,
		},
	}
}

// toDomain converts a database DTO back to a delivery aggregate using
// RestoreDelivery, so all domain invariants are re-validated on load.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id,
		orderID,
		courierID,
		status,
		dto.TotalProducts,
		dto.CollectedProducts,
		dto.AssignedAt,
		dto.PickedUpAt,
		dto.DeliveredAt,
		dto.ValidationCode,
		dto.FailureReason,
		delivery.OrderSnapshot{
			BuyerName:       dto.Snapshot.BuyerName,
			BuyerPhone:      dto.Snapshot.BuyerPhone,
			ShopName:        dto.Snapshot.ShopName,
			OrderTotalCents: dto.Snapshot.OrderTotalCents,
			ShippingAddress: dto.Snapshot.ShippingAddress,
		},
	)
}
