package commands

import (
	"errors"

	"littlelemon/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand signs up a customer account.
type RegisterUserCommand struct {
	username string
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(username, email, password string) RegisterUserCommand {
	return RegisterUserCommand{
		username: username,
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Username() string {
	return c.username
}

func (c RegisterUserCommand) Email() string {
	return c.email
}

func (c RegisterUserCommand) Password() string {
	return c.password
}
