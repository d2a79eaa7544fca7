package queries

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/guard"
)

var ErrListCategoriesQueryIsNotConstructed = errors.New(
	"ListCategoriesQuery must be created via NewListCategoriesQuery constructor",
)

type ListCategoriesQuery struct {
	actor *identity.User

	guard guard.ConstructorGuard
}

func NewListCategoriesQuery(actor *identity.User) ListCategoriesQuery {
	return ListCategoriesQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q ListCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrListCategoriesQueryIsNotConstructed)
}

func (q ListCategoriesQuery) Actor() *identity.User {
	return q.actor
}
