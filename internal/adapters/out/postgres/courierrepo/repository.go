package courierrepo

import (
	"context"
	"errors"

	"fleetops/internal/core/domain/model/courier"
	"fleetops/internal/core/domain/model/delivery"
	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCourierRepository implements CourierRepository using GORM.
//
// Active-delivery counts come from a COUNT over non-terminal deliveries at
// read time. Within a transaction that also wrote a delivery row, the count
// already reflects that write, which is what makes reassignment atomic: the
// single delivery update moves the workload from one courier to the other.
type GormCourierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCourierRepository creates a new GORM courier repository.
func NewGormCourierRepository(db *gorm.DB, tracker aggregateTracker) *GormCourierRepository {
	return &GormCourierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new courier to the database.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing courier's identity fields to the database.
func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courier", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a courier by ID with their derived active-delivery count.
func (r *GormCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", id.String())
		}
		return nil, err
	}

	active, err := r.countActive(ctx, id)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, active)
}

// List retrieves all couriers with derived counts, ordered by name.
func (r *GormCourierRepository) List(ctx context.Context) ([]*courier.Courier, error) {
	var dtos []CourierDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}

		active, err := r.countActive(ctx, id)
		if err != nil {
			return nil, err
		}

		c, err := toDomain(dto, active)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}

	return couriers, nil
}

func (r *GormCourierRepository) countActive(ctx context.Context, id kernel.UUID) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("deliveries").
		Where("courier_id = ? AND status IN ?", id.Bytes(), []string{
			delivery.Assigned.String(),
			delivery.PickedUp.String(),
			delivery.InTransit.String(),
		}).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}
