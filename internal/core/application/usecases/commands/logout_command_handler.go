package commands

import (
	"context"

	"littlelemon/internal/core/domain/services"
)

type LogoutCommandHandler struct {
	uowFactory IdentityUoWFactory
	policy     services.AccessPolicy
}

func NewLogoutCommandHandler(uowFactory IdentityUoWFactory) LogoutCommandHandler {
	return LogoutCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle deletes the presented token. Other sessions of the user stay valid.
func (h LogoutCommandHandler) Handle(ctx context.Context, cmd LogoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.Require(cmd.Actor(), services.Logout); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.TokenRepository().Delete(ctx, cmd.TokenKey()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
