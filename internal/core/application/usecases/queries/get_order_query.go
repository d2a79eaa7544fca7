package queries

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery or NewGetDeliveryQuery constructor",
)

// GetOrderQuery reads a single order within the caller's scope. An order
// outside the scope is reported as not found.
type GetOrderQuery struct {
	actor   *identity.User
	orderID kernel.UUID
	scope   Scope

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(actor *identity.User, orderID kernel.UUID) GetOrderQuery {
	return GetOrderQuery{
		actor:   actor,
		orderID: orderID,
		scope:   CustomerScope,
		guard:   guard.NewConstructorGuard(),
	}
}

func NewGetDeliveryQuery(actor *identity.User, orderID kernel.UUID) GetOrderQuery {
	return GetOrderQuery{
		actor:   actor,
		orderID: orderID,
		scope:   DeliveryCrewScope,
		guard:   guard.NewConstructorGuard(),
	}
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Actor() *identity.User {
	return q.actor
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderQuery) Scope() Scope {
	return q.scope
}
