package ports

import (
	"context"
	"time"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for users and their groups.
type UserRepository interface {
	// Add persists a new user. A taken username yields errs.ErrAlreadyExists.
	Add(ctx context.Context, user *identity.User) error

	// Update persists the staff flag and group memberships.
	Update(ctx context.Context, user *identity.User) error

	Get(ctx context.Context, id kernel.UUID) (*identity.User, error)

	GetByUsername(ctx context.Context, username string) (*identity.User, error)
}

// TokenRepository defines the persistence contract for API tokens.
type TokenRepository interface {
	Add(ctx context.Context, token *identity.Token) error

	Delete(ctx context.Context, key string) error

	// DeleteExpired removes tokens that expired at or before now and reports how many.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
