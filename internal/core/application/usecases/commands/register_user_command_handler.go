package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/services"
)

// RegisterUserCommandHandler creates customer accounts. New users belong to
// no group and are not staff.
type RegisterUserCommandHandler struct {
	uowFactory IdentityUoWFactory
	policy     services.AccessPolicy
}

func NewRegisterUserCommandHandler(uowFactory IdentityUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*identity.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Require(nil, services.Register); err != nil {
		return nil, err
	}

	hash, err := identity.HashPassword(cmd.Password())
	if err != nil {
		return nil, err
	}

	user, err := identity.NewUser(kernel.NewUUID(), cmd.Username(), cmd.Email(), hash)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, user); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return user, nil
}
