package commands

import (
	"context"
	"errors"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"
)

// AddCartItemCommandHandler adds menu items to the caller's cart. The unit
// price is copied from the menu; adding an item already in the cart raises
// the quantity of the existing line.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
	policy     services.AccessPolicy
}

func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) (*cart.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Require(cmd.Actor(), services.AddToCart); err != nil {
		return nil, err
	}

	if cmd.Quantity() < cart.MinQuantity || cmd.Quantity() > cart.MaxQuantity {
		return nil, errs.NewValueIsOutOfRangeError("quantity", cmd.Quantity(), cart.MinQuantity, cart.MaxQuantity)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuItem, err := uow.MenuItemRepository().Get(ctx, cmd.MenuItemID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewValueIsInvalidErrorWithCause("menuitem", err)
	}
	if err != nil {
		return nil, err
	}

	customerID := cmd.Actor().ID()
	cartRepo := uow.CartRepository()

	line, err := cartRepo.FindByMenuItem(ctx, customerID, menuItem.ID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		line, err = cart.NewItem(kernel.NewUUID(), customerID, menuItem.ID(), cmd.Quantity(), menuItem.Price())
		if err != nil {
			return nil, err
		}
		if err = cartRepo.Add(ctx, line); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if err = line.Increase(cmd.Quantity()); err != nil {
			return nil, err
		}
		if err = cartRepo.Update(ctx, line); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return line, nil
}
