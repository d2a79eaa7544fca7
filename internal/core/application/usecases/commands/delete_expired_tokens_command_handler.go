package commands

import (
	"context"
)

// DeleteExpiredTokensCommandHandler is run by the token cleanup job.
type DeleteExpiredTokensCommandHandler struct {
	uowFactory IdentityUoWFactory
}

func NewDeleteExpiredTokensCommandHandler(uowFactory IdentityUoWFactory) DeleteExpiredTokensCommandHandler {
	return DeleteExpiredTokensCommandHandler{uowFactory: uowFactory}
}

// Handle returns the number of tokens removed.
func (h DeleteExpiredTokensCommandHandler) Handle(ctx context.Context, cmd DeleteExpiredTokensCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.TokenRepository().DeleteExpired(ctx, cmd.Now())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
