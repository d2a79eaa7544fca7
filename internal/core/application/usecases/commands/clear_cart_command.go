package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand empties the caller's cart.
type ClearCartCommand struct {
	actor *identity.User

	guard guard.ConstructorGuard
}

func NewClearCartCommand(actor *identity.User) ClearCartCommand {
	return ClearCartCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}
}

func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

func (c ClearCartCommand) Actor() *identity.User {
	return c.actor
}
