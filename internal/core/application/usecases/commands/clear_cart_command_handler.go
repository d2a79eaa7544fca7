package commands

import (
	"context"

	"littlelemon/internal/core/domain/services"
)

type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
	policy     services.AccessPolicy
}

func NewClearCartCommandHandler(uowFactory CartUoWFactory) ClearCartCommandHandler {
	return ClearCartCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle deletes every cart line of the caller. An empty cart is not an error.
func (h ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.Require(cmd.Actor(), services.ClearCart); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CartRepository().Clear(ctx, cmd.Actor().ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
