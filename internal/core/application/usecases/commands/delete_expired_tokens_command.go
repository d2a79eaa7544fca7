package commands

import (
	"errors"
	"time"

	"littlelemon/internal/pkg/guard"
)

var ErrDeleteExpiredTokensCommandIsNotConstructed = errors.New(
	"DeleteExpiredTokensCommand must be created via NewDeleteExpiredTokensCommand constructor",
)

// DeleteExpiredTokensCommand purges tokens that expired at or before now.
type DeleteExpiredTokensCommand struct {
	now time.Time

	guard guard.ConstructorGuard
}

func NewDeleteExpiredTokensCommand(now time.Time) DeleteExpiredTokensCommand {
	return DeleteExpiredTokensCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}
}

func (c DeleteExpiredTokensCommand) Validate() error {
	return c.guard.Validate(ErrDeleteExpiredTokensCommandIsNotConstructed)
}

func (c DeleteExpiredTokensCommand) Now() time.Time {
	return c.now
}
