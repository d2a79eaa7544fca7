package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand replaces title, price and category of a menu item.
// The featured flag is not writable here.
type UpdateMenuItemCommand struct {
	actor      *identity.User
	menuItemID kernel.UUID
	title      string
	price      string
	categoryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewUpdateMenuItemCommand(
	actor *identity.User,
	menuItemID kernel.UUID,
	title, price string,
	categoryID kernel.UUID,
) UpdateMenuItemCommand {
	return UpdateMenuItemCommand{
		actor:      actor,
		menuItemID: menuItemID,
		title:      title,
		price:      price,
		categoryID: categoryID,
		guard:      guard.NewConstructorGuard(),
	}
}

func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

func (c UpdateMenuItemCommand) Actor() *identity.User {
	return c.actor
}

func (c UpdateMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

func (c UpdateMenuItemCommand) Title() string {
	return c.title
}

func (c UpdateMenuItemCommand) Price() string {
	return c.price
}

func (c UpdateMenuItemCommand) CategoryID() kernel.UUID {
	return c.categoryID
}
