package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"
)

var ErrSetItemOfTheDayCommandIsNotConstructed = errors.New(
	"SetItemOfTheDayCommand must be created via NewSetItemOfTheDayCommand constructor",
)

// SetItemOfTheDayCommand makes one menu item the only featured item.
type SetItemOfTheDayCommand struct {
	actor      *identity.User
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewSetItemOfTheDayCommand(actor *identity.User, menuItemID kernel.UUID) SetItemOfTheDayCommand {
	return SetItemOfTheDayCommand{
		actor:      actor,
		menuItemID: menuItemID,
		guard:      guard.NewConstructorGuard(),
	}
}

func (c SetItemOfTheDayCommand) Validate() error {
	return c.guard.Validate(ErrSetItemOfTheDayCommandIsNotConstructed)
}

func (c SetItemOfTheDayCommand) Actor() *identity.User {
	return c.actor
}

func (c SetItemOfTheDayCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}
