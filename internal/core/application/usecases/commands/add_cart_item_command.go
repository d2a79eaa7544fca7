package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// AddCartItemCommand puts quantity units of a menu item into the caller's cart.
type AddCartItemCommand struct {
	actor      *identity.User
	menuItemID kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

func NewAddCartItemCommand(actor *identity.User, menuItemID kernel.UUID, quantity int) AddCartItemCommand {
	return AddCartItemCommand{
		actor:      actor,
		menuItemID: menuItemID,
		quantity:   quantity,
		guard:      guard.NewConstructorGuard(),
	}
}

func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

func (c AddCartItemCommand) Actor() *identity.User {
	return c.actor
}

func (c AddCartItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}
