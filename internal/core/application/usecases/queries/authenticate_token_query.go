package queries

import (
	"errors"
	"time"

	"littlelemon/internal/pkg/guard"
)

var ErrAuthenticateTokenQueryIsNotConstructed = errors.New(
	"AuthenticateTokenQuery must be created via NewAuthenticateTokenQuery constructor",
)

// AuthenticateTokenQuery resolves an API token key to its user as of now.
type AuthenticateTokenQuery struct {
	key string
	now time.Time

	guard guard.ConstructorGuard
}

func NewAuthenticateTokenQuery(key string, now time.Time) AuthenticateTokenQuery {
	return AuthenticateTokenQuery{key: key, now: now, guard: guard.NewConstructorGuard()}
}

func (q AuthenticateTokenQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateTokenQueryIsNotConstructed)
}

func (q AuthenticateTokenQuery) Key() string {
	return q.key
}

func (q AuthenticateTokenQuery) Now() time.Time {
	return q.now
}
