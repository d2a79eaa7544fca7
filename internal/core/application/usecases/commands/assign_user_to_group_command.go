package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"
)

var ErrAssignUserToGroupCommandIsNotConstructed = errors.New(
	"AssignUserToGroupCommand must be created via NewAssignUserToGroupCommand constructor",
)

// AssignUserToGroupCommand adds a user to "Managers" or "Delivery Crew".
type AssignUserToGroupCommand struct {
	actor  *identity.User
	userID kernel.UUID
	group  string

	guard guard.ConstructorGuard
}

func NewAssignUserToGroupCommand(actor *identity.User, userID kernel.UUID, group string) AssignUserToGroupCommand {
	return AssignUserToGroupCommand{
		actor:  actor,
		userID: userID,
		group:  group,
		guard:  guard.NewConstructorGuard(),
	}
}

func (c AssignUserToGroupCommand) Validate() error {
	return c.guard.Validate(ErrAssignUserToGroupCommandIsNotConstructed)
}

func (c AssignUserToGroupCommand) Actor() *identity.User {
	return c.actor
}

func (c AssignUserToGroupCommand) UserID() kernel.UUID {
	return c.userID
}

func (c AssignUserToGroupCommand) Group() string {
	return c.group
}
