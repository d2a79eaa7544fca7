package queries

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/guard"
)

var ErrListCartItemsQueryIsNotConstructed = errors.New(
	"ListCartItemsQuery must be created via NewListCartItemsQuery constructor",
)

// ListCartItemsQuery reads the caller's own cart.
type ListCartItemsQuery struct {
	actor *identity.User

	guard guard.ConstructorGuard
}

func NewListCartItemsQuery(actor *identity.User) ListCartItemsQuery {
	return ListCartItemsQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q ListCartItemsQuery) Validate() error {
	return q.guard.Validate(ErrListCartItemsQueryIsNotConstructed)
}

func (q ListCartItemsQuery) Actor() *identity.User {
	return q.actor
}
