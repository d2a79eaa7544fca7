package orderrepo

import (
	"context"
	"errors"

	"littlelemon/internal/adapters/out/postgres/pgerr"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).
		Omit("Customer", "DeliveryCrew").
		Create(&dto).Error; err != nil {
		if pgerr.IsForeignKeyViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("order", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves status and delivery crew of an existing order. Items and
// totals never change after checkout.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("status", "delivery_crew_id").
		Updates(map[string]any{
			"status":           dto.Status,
			"delivery_crew_id": dto.DeliveryCrewID,
		})
	if result.Error != nil {
		if pgerr.IsForeignKeyViolation(result.Error) {
			return errs.NewObjectNotFoundError("delivery crew", aggregate.DeliveryCrew().String())
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, id, "id = ?", id.Bytes())
}

// GetOwnedBy retrieves an order by ID if customerID placed it.
func (r *GormOrderRepository) GetOwnedBy(ctx context.Context, id, customerID kernel.UUID) (*order.Order, error) {
	if err := errors.Join(id.Validate(), customerID.Validate()); err != nil {
		return nil, err
	}
	return r.first(ctx, id, "id = ? AND user_id = ?", id.Bytes(), customerID.Bytes())
}

// GetAssignedTo retrieves an order by ID if crewID is delivering it.
func (r *GormOrderRepository) GetAssignedTo(ctx context.Context, id, crewID kernel.UUID) (*order.Order, error) {
	if err := errors.Join(id.Validate(), crewID.Validate()); err != nil {
		return nil, err
	}
	return r.first(ctx, id, "id = ? AND delivery_crew_id = ?", id.Bytes(), crewID.Bytes())
}

func (r *GormOrderRepository) first(ctx context.Context, id kernel.UUID, query string, args ...any) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Where(query, args...).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
