package commands

import (
	"context"
	"errors"
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"
)

var ErrCartIsEmpty = errs.NewValueIsInvalidErrorWithCause("cart", errors.New("cart is empty"))

// PlaceOrderCommandHandler turns the caller's cart into a pending order.
// Order creation and emptying the cart happen in one transaction, so a failed
// checkout leaves the cart as it was.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	o, err := handler.Handle(ctx, NewPlaceOrderCommand(customer))
//	if errors.Is(err, ErrCartIsEmpty) {
//	    // nothing to order
//	}
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
	now        func() time.Time
}

func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
		now:        time.Now,
	}
}

func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Require(cmd.Actor(), services.PlaceOrder); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerID := cmd.Actor().ID()
	cartRepo := uow.CartRepository()

	lines, err := cartRepo.ListByUser(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrCartIsEmpty
	}

	items := make([]*order.Item, 0, len(lines))
	for _, line := range lines {
		item, itemErr := order.NewItem(kernel.NewUUID(), line.MenuItemID(), line.Quantity(), line.UnitPrice())
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	o, err := order.NewOrder(kernel.NewUUID(), customerID, h.now(), items)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = cartRepo.Clear(ctx, customerID); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
