package http

import (
	"context"
	"strings"
	"time"

	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	actorContextKey = "littlelemon.actor"
	tokenContextKey = "littlelemon.token"
)

// Authenticator resolves an API token to its user.
type Authenticator interface {
	Handle(ctx context.Context, query queries.AuthenticateTokenQuery) (*identity.User, error)
}

// TokenAuth reads "Authorization: Token <key>" (or "Bearer <key>") and stores
// the caller on the context. A request without the header continues
// anonymously; a header with an unknown or expired key is rejected.
func TokenAuth(auth Authenticator, now func() time.Time) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}

			key, ok := parseAuthorization(header)
			if !ok {
				return errs.NewUnauthenticatedError("invalid token header")
			}

			user, err := auth.Handle(c.Request().Context(), queries.NewAuthenticateTokenQuery(key, now().UTC()))
			if err != nil {
				return err
			}

			c.Set(actorContextKey, user)
			c.Set(tokenContextKey, key)
			return next(c)
		}
	}
}

// RequireCaller rejects anonymous requests before their body is read.
func RequireCaller(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if Actor(c) == nil {
			return errs.NewUnauthenticatedError("authentication credentials were not provided")
		}
		return next(c)
	}
}

// Actor returns the authenticated caller, or nil for anonymous requests.
func Actor(c echo.Context) *identity.User {
	user, _ := c.Get(actorContextKey).(*identity.User)
	return user
}

func presentedToken(c echo.Context) string {
	key, _ := c.Get(tokenContextKey).(string)
	return key
}

func parseAuthorization(header string) (string, bool) {
	scheme, key, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found {
		return "", false
	}
	if !strings.EqualFold(scheme, "Token") && !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	key = strings.TrimSpace(key)
	if key == "" || strings.ContainsAny(key, " \t") {
		return "", false
	}
	return key, true
}
