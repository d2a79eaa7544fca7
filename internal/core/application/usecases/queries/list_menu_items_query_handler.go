package queries

import (
	"context"
	"fmt"

	"littlelemon/internal/core/domain/services"

	"gorm.io/gorm"
)

type ListMenuItemsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListMenuItemsQueryHandler(db *gorm.DB) ListMenuItemsQueryHandler {
	return ListMenuItemsQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle runs the listing selected by the query. Creation order is broken by
// id so that pages never overlap.
func (h ListMenuItemsQueryHandler) Handle(ctx context.Context, query ListMenuItemsQuery) ([]MenuItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	op := services.BrowseMenu
	if query.Listing() == ListAll {
		op = services.ListMenuItems
	}
	if err := h.policy.Require(query.Actor(), op); err != nil {
		return nil, err
	}

	if err := query.ValidatePage(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	var rows []menuItemRow

	switch query.Listing() {
	case ListAll:
		db = db.Raw(menuItemColumns + `ORDER BY m.created_at, m.id`)
	case ListByCategory:
		db = db.Raw(menuItemColumns+`WHERE m.category_id = ? ORDER BY m.created_at, m.id`, query.CategoryID().Bytes())
	case ListPage:
		db = db.Raw(
			menuItemColumns+`ORDER BY m.created_at, m.id LIMIT ? OFFSET ?`,
			query.Limit(),
			query.Offset(),
		)
	case ListByPrice:
		db = db.Raw(menuItemColumns + `ORDER BY m.price, m.id`)
	default:
		return nil, fmt.Errorf("unknown menu listing %d", query.Listing())
	}

	if err := db.Scan(&rows).Error; err != nil {
		return nil, err
	}

	return menuItemViews(rows)
}
