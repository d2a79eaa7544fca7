package menurepo

import (
	"context"
	"errors"

	"littlelemon/internal/adapters/out/postgres/pgerr"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/menu"
	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	errCategoryNotFound = errs.NewValueIsInvalidErrorWithCause("category_id", errors.New("category not found"))
	errItemIsReferenced = errs.NewValueIsInvalidErrorWithCause(
		"menuitem",
		errors.New("menu item is referenced by existing orders"),
	)
	errFeaturedConcurrently = errs.NewValueIsInvalidErrorWithCause(
		"featured",
		errors.New("another menu item was featured at the same time, retry"),
	)
)

// GormMenuItemRepository implements ports.MenuItemRepository using GORM.
type GormMenuItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormMenuItemRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuItemRepository {
	return &GormMenuItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new menu item. A category id without a row is rejected as invalid input.
func (r *GormMenuItemRepository) Add(ctx context.Context, aggregate *menu.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		if pgerr.IsForeignKeyViolation(err) {
			return errCategoryNotFound
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves title, price and category of an existing menu item.
func (r *GormMenuItemRepository) Update(ctx context.Context, aggregate *menu.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&MenuItemDTO{}).
		Where("id = ?", dto.ID).
		Select("title", "price", "category_id").
		Updates(map[string]any{
			"title":       dto.Title,
			"price":       dto.Price,
			"category_id": dto.CategoryID,
		})
	if result.Error != nil {
		if pgerr.IsForeignKeyViolation(result.Error) {
			return errCategoryNotFound
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a menu item. Cart lines holding it go with it; items already
// ordered cannot be deleted.
func (r *GormMenuItemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&MenuItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		if pgerr.IsForeignKeyViolation(result.Error) {
			return errItemIsReferenced
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", id.String())
	}
	return nil
}

// Get retrieves a menu item by ID.
func (r *GormMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Feature makes id the only featured menu item. Callers are serialized by a
// table lock held until the surrounding transaction ends, so two concurrent
// calls cannot both leave their item featured. An unknown id leaves the table
// untouched.
func (r *GormMenuItemRepository) Feature(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("LOCK TABLE menu_items IN SHARE ROW EXCLUSIVE MODE").Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&MenuItemDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("menu item", id.String())
		}

		if err := tx.Model(&MenuItemDTO{}).
			Where("featured AND id <> ?", id.Bytes()).
			Update("featured", false).Error; err != nil {
			return err
		}
		return tx.Model(&MenuItemDTO{}).
			Where("id = ?", id.Bytes()).
			Update("featured", true).Error
	})
	if pgerr.IsUniqueViolation(err) {
		return errFeaturedConcurrently
	}
	return err
}
