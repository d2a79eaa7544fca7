package queries

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/guard"
)

var ErrGetCurrentUserQueryIsNotConstructed = errors.New(
	"GetCurrentUserQuery must be created via NewGetCurrentUserQuery constructor",
)

type GetCurrentUserQuery struct {
	actor *identity.User

	guard guard.ConstructorGuard
}

func NewGetCurrentUserQuery(actor *identity.User) GetCurrentUserQuery {
	return GetCurrentUserQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q GetCurrentUserQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentUserQueryIsNotConstructed)
}

func (q GetCurrentUserQuery) Actor() *identity.User {
	return q.actor
}
