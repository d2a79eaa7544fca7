package queries

import (
	"context"

	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetMenuItemQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetMenuItemQueryHandler(db *gorm.DB) GetMenuItemQueryHandler {
	return GetMenuItemQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h GetMenuItemQueryHandler) Handle(ctx context.Context, query GetMenuItemQuery) (MenuItemView, error) {
	if err := query.Validate(); err != nil {
		return MenuItemView{}, err
	}

	if err := h.policy.Require(query.Actor(), services.ViewMenuItem); err != nil {
		return MenuItemView{}, err
	}

	var rows []menuItemRow
	err := h.db.WithContext(ctx).
		Raw(menuItemColumns+`WHERE m.id = ?`, query.MenuItemID().Bytes()).
		Scan(&rows).Error
	if err != nil {
		return MenuItemView{}, err
	}
	if len(rows) == 0 {
		return MenuItemView{}, errs.NewObjectNotFoundError("menu item", query.MenuItemID())
	}

	return rows[0].toView()
}
