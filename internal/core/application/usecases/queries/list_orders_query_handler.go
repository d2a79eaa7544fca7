package queries

import (
	"context"

	"littlelemon/internal/core/domain/services"

	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	op := services.ListOrders
	if query.Scope() == DeliveryCrewScope {
		op = services.ListDeliveries
	}
	if err := h.policy.Require(query.Actor(), op); err != nil {
		return nil, err
	}

	return findOrders(ctx, h.db, query.Scope(), query.Actor().ID(), nil)
}
