package queries

import (
	"context"

	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	op := services.ViewOrder
	if query.Scope() == DeliveryCrewScope {
		op = services.ViewDelivery
	}
	if err := h.policy.Require(query.Actor(), op); err != nil {
		return OrderView{}, err
	}

	orderID := query.OrderID()
	orders, err := findOrders(ctx, h.db, query.Scope(), query.Actor().ID(), &orderID)
	if err != nil {
		return OrderView{}, err
	}
	if len(orders) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", orderID)
	}

	return orders[0], nil
}
