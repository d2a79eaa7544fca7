package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/menu"
	"littlelemon/internal/core/domain/services"
)

// SetItemOfTheDayCommandHandler features a menu item. Managers only.
//
// Example:
//
//	handler := NewSetItemOfTheDayCommandHandler(uowFactory)
//	item, err := handler.Handle(ctx, NewSetItemOfTheDayCommand(manager, lemonDessertID))
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no such menu item, nothing changed
//	}
type SetItemOfTheDayCommandHandler struct {
	uowFactory CatalogUoWFactory
	policy     services.AccessPolicy
}

func NewSetItemOfTheDayCommandHandler(uowFactory CatalogUoWFactory) SetItemOfTheDayCommandHandler {
	return SetItemOfTheDayCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle moves the featured flag onto the item and returns the item
// as it is now stored.
func (h SetItemOfTheDayCommandHandler) Handle(ctx context.Context, cmd SetItemOfTheDayCommand) (*menu.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Require(cmd.Actor(), services.SetItemOfTheDay); err != nil {
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

	if err = repo.Feature(ctx, item.ID()); err != nil {
		return nil, err
	}
	item.Feature()

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
