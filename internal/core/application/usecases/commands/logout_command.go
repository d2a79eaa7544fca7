package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/guard"
)

var ErrLogoutCommandIsNotConstructed = errors.New(
	"LogoutCommand must be created via NewLogoutCommand constructor",
)

// LogoutCommand revokes the token the caller authenticated with.
type LogoutCommand struct {
	actor    *identity.User
	tokenKey string

	guard guard.ConstructorGuard
}

func NewLogoutCommand(actor *identity.User, tokenKey string) LogoutCommand {
	return LogoutCommand{
		actor:    actor,
		tokenKey: tokenKey,
		guard:    guard.NewConstructorGuard(),
	}
}

func (c LogoutCommand) Validate() error {
	return c.guard.Validate(ErrLogoutCommandIsNotConstructed)
}

func (c LogoutCommand) Actor() *identity.User {
	return c.actor
}

func (c LogoutCommand) TokenKey() string {
	return c.tokenKey
}
