package cartrepo

import (
	"context"
	"errors"

	"littlelemon/internal/adapters/out/postgres/pgerr"
	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements ports.CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// ListByUser returns the lines of userID ordered by creation.
func (r *GormCartRepository) ListByUser(ctx context.Context, userID kernel.UUID) ([]*cart.Item, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CartItemDTO
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*cart.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// FindByMenuItem returns the line of userID holding menuItemID.
func (r *GormCartRepository) FindByMenuItem(ctx context.Context, userID, menuItemID kernel.UUID) (*cart.Item, error) {
	if err := errors.Join(userID.Validate(), menuItemID.Validate()); err != nil {
		return nil, err
	}

	var dto CartItemDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "user_id = ? AND menu_item_id = ?", userID.Bytes(), menuItemID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart item", menuItemID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Add saves a new line.
func (r *GormCartRepository) Add(ctx context.Context, item *cart.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		switch {
		case pgerr.IsUniqueViolation(err):
			return errs.NewAlreadyExistsError("menuitem", item.MenuItemID().String())
		case pgerr.IsForeignKeyViolation(err):
			return errs.NewObjectNotFoundError("menu item", item.MenuItemID().String())
		}
		return err
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Update saves the quantity and the derived price of an existing line.
func (r *GormCartRepository) Update(ctx context.Context, item *cart.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).
		Model(&CartItemDTO{}).
		Where("id = ? AND user_id = ?", dto.ID, dto.UserID).
		Updates(map[string]any{
			"quantity": dto.Quantity,
			"price":    dto.Price,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cart item", item.ID().String())
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Clear deletes every line of userID. Clearing an empty cart is not an error.
func (r *GormCartRepository) Clear(ctx context.Context, userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Where("user_id = ?", userID.Bytes()).Delete(&CartItemDTO{}).Error
}
