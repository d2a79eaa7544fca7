package commands

import (
	"context"
	"errors"
	"time"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"
)

// ErrInvalidCredentials is returned for an unknown username and for a wrong
// password alike.
var ErrInvalidCredentials = errs.NewUnauthenticatedError("invalid username or password")

// LoginCommandHandler issues API tokens valid for a fixed TTL.
//
// Example:
//
//	handler := NewLoginCommandHandler(uowFactory, 24*time.Hour)
//	token, err := handler.Handle(ctx, NewLoginCommand("mario", "s3cret-pass"))
//	if errors.Is(err, errs.ErrUnauthenticated) {
//	    // wrong credentials
//	}
//	header := "Token " + token.Key()
type LoginCommandHandler struct {
	uowFactory IdentityUoWFactory
	policy     services.AccessPolicy
	ttl        time.Duration
	now        func() time.Time
}

func NewLoginCommandHandler(uowFactory IdentityUoWFactory, ttl time.Duration) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
		ttl:        ttl,
		now:        time.Now,
	}
}

func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (*identity.Token, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Require(nil, services.Login); err != nil {
		return nil, err
	}

	if cmd.Username() == "" || cmd.Password() == "" {
		return nil, ErrInvalidCredentials
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	user, err := uow.UserRepository().GetByUsername(ctx, cmd.Username())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err = user.CheckPassword(cmd.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := identity.IssueToken(user.ID(), h.now().UTC(), h.ttl)
	if err != nil {
		return nil, err
	}

	if err = uow.TokenRepository().Add(ctx, token); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return token, nil
}
