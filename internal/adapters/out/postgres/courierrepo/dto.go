// Package courierrepo implements fleet member persistence over PostgreSQL.
// Only identity fields are stored: each courier's active-delivery count is
// derived from the deliveries table at read time.
package courierrepo

import (
	"fleetops/internal/core/domain/model/courier"
	"fleetops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting couriers.
// There is deliberately no workload column; see the package comment.
type CourierDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255);not null"`
	Phone string    `gorm:"type:varchar(64);not null"`
}

// TableName overrides GORM's default naming to use "couriers".
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:    aggregate.ID().Bytes(),
		Name:  aggregate.Name(),
		Phone: aggregate.Phone(),
	}
}

// toDomain converts a database DTO plus the derived workload count back to
// a courier aggregate.
func toDomain(dto CourierDTO, activeDeliveries int) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(id, dto.Name, dto.Phone, activeDeliveries)
}
