package commands

import (
	"errors"

	"littlelemon/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New(
	"LoginCommand must be created via NewLoginCommand constructor",
)

// LoginCommand exchanges credentials for an API token.
type LoginCommand struct {
	username string
	password string

	guard guard.ConstructorGuard
}

func NewLoginCommand(username, password string) LoginCommand {
	return LoginCommand{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}
}

func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

func (c LoginCommand) Username() string {
	return c.username
}

func (c LoginCommand) Password() string {
	return c.password
}
