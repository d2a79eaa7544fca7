package queries

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery or NewListDeliveriesQuery constructor",
)

// ListOrdersQuery lists the caller's orders: the ones they placed, or for
// NewListDeliveriesQuery the ones assigned to them for delivery.
type ListOrdersQuery struct {
	actor *identity.User
	scope Scope

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(actor *identity.User) ListOrdersQuery {
	return ListOrdersQuery{actor: actor, scope: CustomerScope, guard: guard.NewConstructorGuard()}
}

func NewListDeliveriesQuery(actor *identity.User) ListOrdersQuery {
	return ListOrdersQuery{actor: actor, scope: DeliveryCrewScope, guard: guard.NewConstructorGuard()}
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Actor() *identity.User {
	return q.actor
}

func (q ListOrdersQuery) Scope() Scope {
	return q.scope
}
