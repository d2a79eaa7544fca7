package queries

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"
)

var ErrGetMenuItemQueryIsNotConstructed = errors.New(
	"GetMenuItemQuery must be created via NewGetMenuItemQuery constructor",
)

type GetMenuItemQuery struct {
	actor      *identity.User
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetMenuItemQuery(actor *identity.User, menuItemID kernel.UUID) GetMenuItemQuery {
	return GetMenuItemQuery{actor: actor, menuItemID: menuItemID, guard: guard.NewConstructorGuard()}
}

func (q GetMenuItemQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemQueryIsNotConstructed)
}

func (q GetMenuItemQuery) Actor() *identity.User {
	return q.actor
}

func (q GetMenuItemQuery) MenuItemID() kernel.UUID {
	return q.menuItemID
}
