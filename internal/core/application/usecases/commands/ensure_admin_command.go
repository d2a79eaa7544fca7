package commands

import (
	"errors"

	"littlelemon/internal/pkg/guard"
)

var ErrEnsureAdminCommandIsNotConstructed = errors.New(
	"EnsureAdminCommand must be created via NewEnsureAdminCommand constructor",
)

// EnsureAdminCommand makes sure a staff account exists. It is issued by the
// process itself at startup, never by an API caller.
type EnsureAdminCommand struct {
	username string
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewEnsureAdminCommand(username, email, password string) EnsureAdminCommand {
	return EnsureAdminCommand{
		username: username,
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}
}

func (c EnsureAdminCommand) Validate() error {
	return c.guard.Validate(ErrEnsureAdminCommandIsNotConstructed)
}

func (c EnsureAdminCommand) Username() string {
	return c.username
}

func (c EnsureAdminCommand) Email() string {
	return c.email
}

func (c EnsureAdminCommand) Password() string {
	return c.password
}
