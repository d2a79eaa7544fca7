package http

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAuthenticator struct {
	mock.Mock
}

func (m *mockAuthenticator) Handle(ctx context.Context, query queries.AuthenticateTokenQuery) (*identity.User, error) {
	args := m.Called(ctx, query)
	if user := args.Get(0); user != nil {
		return user.(*identity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestParseAuthorization(t *testing.T) {
	tests := []struct {
		header string
		key    string
		ok     bool
	}{
		{"Token 9944b09199c62bcf9418ad846dd0e4bbdfc6ee4b", "9944b09199c62bcf9418ad846dd0e4bbdfc6ee4b", true},
		{"token abc", "abc", true},
		{"Bearer abc", "abc", true},
		{"  Token   abc  ", "abc", true},
		{"Basic dXNlcjpwYXNz", "", false},
		{"Token", "", false},
		{"Token ", "", false},
		{"Token a b", "", false},
		{"abc", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			key, ok := parseAuthorization(tt.header)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.key, key)
		})
	}
}

func TestTokenAuth(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	hash, err := identity.HashPassword("password123")
	require.NoError(t, err)
	alice, err := identity.NewUser(kernel.NewUUID(), "alice", "", hash)
	require.NoError(t, err)

	serve := func(auth Authenticator, header string, routeMiddleware ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
		e := echo.New()
		e.HTTPErrorHandler = NewHTTPErrorHandler(slog.New(slog.DiscardHandler))
		g := e.Group("", TokenAuth(auth, func() time.Time { return now }))
		g.GET("/whoami", func(c echo.Context) error {
			if actor := Actor(c); actor != nil {
				return c.String(http.StatusOK, actor.Username()+" "+presentedToken(c))
			}
			return c.String(http.StatusOK, "anonymous")
		}, routeMiddleware...)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		if header != "" {
			req.Header.Set(echo.HeaderAuthorization, header)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("no header continues anonymously", func(t *testing.T) {
		auth := &mockAuthenticator{}

		rec := serve(auth, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "anonymous", rec.Body.String())
		auth.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("valid token sets the actor", func(t *testing.T) {
		auth := &mockAuthenticator{}
		auth.On("Handle", mock.Anything, queries.NewAuthenticateTokenQuery("abc", now)).Return(alice, nil)

		rec := serve(auth, "Token abc")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "alice abc", rec.Body.String())
		auth.AssertExpectations(t)
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		auth := &mockAuthenticator{}
		auth.On("Handle", mock.Anything, mock.Anything).Return(nil, queries.ErrInvalidToken)

		rec := serve(auth, "Token nope")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		auth := &mockAuthenticator{}

		rec := serve(auth, "Basic dXNlcjpwYXNz")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"authentication required: invalid token header"}`, rec.Body.String())
	})

	t.Run("require caller rejects anonymous requests", func(t *testing.T) {
		rec := serve(&mockAuthenticator{}, "", RequireCaller)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
