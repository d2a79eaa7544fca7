package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/services"
)

// AssignUserToGroupCommandHandler manages group membership. Admin (staff) only.
// Joining a group twice is a no-op.
type AssignUserToGroupCommandHandler struct {
	uowFactory IdentityUoWFactory
	policy     services.AccessPolicy
}

func NewAssignUserToGroupCommandHandler(uowFactory IdentityUoWFactory) AssignUserToGroupCommandHandler {
	return AssignUserToGroupCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle reports a missing user (404), a blank group (400) and an unknown
// group (404), in that order.
func (h AssignUserToGroupCommandHandler) Handle(
	ctx context.Context,
	cmd AssignUserToGroupCommand,
) (*identity.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Require(cmd.Actor(), services.AssignGroup); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	user, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	group, err := identity.ParseGroup(cmd.Group())
	if err != nil {
		return nil, err
	}

	if err = user.JoinGroup(group); err != nil {
		return nil, err
	}

	if err = userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return user, nil
}
