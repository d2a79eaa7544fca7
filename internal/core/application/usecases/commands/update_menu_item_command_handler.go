package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/menu"
	"littlelemon/internal/core/domain/services"
)

// UpdateMenuItemCommandHandler edits menu items. Managers only.
type UpdateMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
	policy     services.AccessPolicy
}

func NewUpdateMenuItemCommandHandler(uowFactory CatalogUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle loads the item, applies the revision atomically and stores it.
// A missing item is reported before any field validation.
func (h UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) (*menu.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Require(cmd.Actor(), services.UpdateMenuItem); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.MenuItemRepository()
	item, err := repo.Get(ctx, cmd.MenuItemID())
	if err != nil {
		return nil, err
	}

	price, err := parsePrice(cmd.Price())
	if err != nil {
		return nil, err
	}

	if err = item.Revise(cmd.Title(), price, cmd.CategoryID()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
