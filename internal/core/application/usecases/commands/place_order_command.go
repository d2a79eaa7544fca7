package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand checks out the caller's cart.
type PlaceOrderCommand struct {
	actor *identity.User

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(actor *identity.User) PlaceOrderCommand {
	return PlaceOrderCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) Actor() *identity.User {
	return c.actor
}
