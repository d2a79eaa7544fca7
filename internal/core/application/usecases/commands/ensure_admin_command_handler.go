package commands

import (
	"context"
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

// EnsureAdminCommandHandler bootstraps the first staff user. Running it again
// is safe: an existing account is promoted to staff if needed, and its
// password is left alone.
type EnsureAdminCommandHandler struct {
	uowFactory IdentityUoWFactory
}

func NewEnsureAdminCommandHandler(uowFactory IdentityUoWFactory) EnsureAdminCommandHandler {
	return EnsureAdminCommandHandler{uowFactory: uowFactory}
}

// Handle returns the admin user and whether it was created by this call.
func (h EnsureAdminCommandHandler) Handle(ctx context.Context, cmd EnsureAdminCommand) (*identity.User, bool, error) {
	if err := cmd.Validate(); err != nil {
		return nil, false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	user, err := userRepo.GetByUsername(ctx, cmd.Username())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return h.create(ctx, uow, cmd)
	case err != nil:
		return nil, false, err
	}

	if user.IsStaff() {
		return user, false, nil
	}

	user.GrantStaff()
	if err = userRepo.Update(ctx, user); err != nil {
		return nil, false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, false, err
	}

	return user, false, nil
}

func (h EnsureAdminCommandHandler) create(
	ctx context.Context,
	uow IdentityUoW,
	cmd EnsureAdminCommand,
) (*identity.User, bool, error) {
	hash, err := identity.HashPassword(cmd.Password())
	if err != nil {
		return nil, false, err
	}

	user, err := identity.NewUser(kernel.NewUUID(), cmd.Username(), cmd.Email(), hash)
	if err != nil {
		return nil, false, err
	}
	user.GrantStaff()

	if err = uow.UserRepository().Add(ctx, user); err != nil {
		return nil, false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, false, err
	}

	return user, true, nil
}
