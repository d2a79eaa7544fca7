package commands_test

import (
	"testing"
	"time"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type identityUoWMocks struct {
	factory *MockIdentityUoWFactory
	uow     *MockUoW
	users   *MockUserRepository
	tokens  *MockTokenRepository
}

func newIdentityUoW(t *testing.T, commit bool) identityUoWMocks {
	t.Helper()
	ctx := t.Context()

	m := identityUoWMocks{
		factory: new(MockIdentityUoWFactory),
		uow:     new(MockUoW),
		users:   new(MockUserRepository),
		tokens:  new(MockTokenRepository),
	}
	m.uow.On("Begin", ctx).Return(nil).Once()
	m.uow.On("UserRepository").Return(m.users).Maybe()
	m.uow.On("TokenRepository").Return(m.tokens).Maybe()
	if commit {
		m.uow.On("Commit", ctx).Return(nil).Once()
	}
	m.uow.On("Rollback", ctx).Return(nil).Once()
	m.factory.On("Create").Return(m.uow).Once()
	return m
}

func newUserWithPassword(t *testing.T, username, password string) *identity.User {
	t.Helper()
	hash, err := identity.HashPassword(password)
	require.NoError(t, err)
	u, err := identity.NewUser(kernel.NewUUID(), username, username+"@littlelemon.test", hash)
	require.NoError(t, err)
	return u
}

func TestRegisterUserCommandHandler_Handle(t *testing.T) {
	t.Run("creates a customer", func(t *testing.T) {
		m := newIdentityUoW(t, true)
		m.users.On("Add", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil).Once()

		h := commands.NewRegisterUserCommandHandler(m.factory)
		u, err := h.Handle(t.Context(), commands.NewRegisterUserCommand("alice", "alice@example.com", "lemon-tree-42"))

		require.NoError(t, err)
		assert.Equal(t, "alice", u.Username())
		assert.False(t, u.IsStaff())
		assert.Empty(t, u.Groups())
		assert.NotEqual(t, "lemon-tree-42", u.PasswordHash())
		require.NoError(t, u.CheckPassword("lemon-tree-42"))
	})

	t.Run("duplicate username", func(t *testing.T) {
		m := newIdentityUoW(t, false)
		m.users.On("Add", mock.Anything, mock.Anything).
			Return(errs.NewAlreadyExistsError("username", "alice")).Once()

		h := commands.NewRegisterUserCommandHandler(m.factory)
		_, err := h.Handle(t.Context(), commands.NewRegisterUserCommand("alice", "", "lemon-tree-42"))

		require.ErrorIs(t, err, errs.ErrAlreadyExists)
	})

	t.Run("short password", func(t *testing.T) {
		factory := new(MockIdentityUoWFactory)
		h := commands.NewRegisterUserCommandHandler(factory)

		_, err := h.Handle(t.Context(), commands.NewRegisterUserCommand("alice", "", "short"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("invalid username", func(t *testing.T) {
		h := commands.NewRegisterUserCommandHandler(new(MockIdentityUoWFactory))

		_, err := h.Handle(t.Context(), commands.NewRegisterUserCommand("al ice", "", "lemon-tree-42"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestLoginCommandHandler_Handle(t *testing.T) {
	alice := newUserWithPassword(t, "alice", "lemon-tree-42")

	t.Run("issues a token", func(t *testing.T) {
		m := newIdentityUoW(t, true)
		m.users.On("GetByUsername", mock.Anything, "alice").Return(alice, nil).Once()
		m.tokens.On("Add", mock.Anything, mock.AnythingOfType("*identity.Token")).Return(nil).Once()

		h := commands.NewLoginCommandHandler(m.factory, time.Hour)
		before := time.Now().UTC()
		token, err := h.Handle(t.Context(), commands.NewLoginCommand("alice", "lemon-tree-42"))

		require.NoError(t, err)
		assert.Len(t, token.Key(), 40)
		assert.True(t, token.UserID().IsEqual(alice.ID()))
		assert.WithinDuration(t, before.Add(time.Hour), token.ExpiresAt(), 5*time.Second)
		m.tokens.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		m := newIdentityUoW(t, false)
		m.users.On("GetByUsername", mock.Anything, "alice").Return(alice, nil).Once()

		h := commands.NewLoginCommandHandler(m.factory, time.Hour)
		_, err := h.Handle(t.Context(), commands.NewLoginCommand("alice", "not-the-password"))

		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
		require.ErrorIs(t, err, errs.ErrUnauthenticated)
		m.tokens.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("unknown user", func(t *testing.T) {
		m := newIdentityUoW(t, false)
		m.users.On("GetByUsername", mock.Anything, "bob").
			Return(nil, errs.NewObjectNotFoundError("user", "bob")).Once()

		h := commands.NewLoginCommandHandler(m.factory, time.Hour)
		_, err := h.Handle(t.Context(), commands.NewLoginCommand("bob", "lemon-tree-42"))

		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("blank credentials", func(t *testing.T) {
		factory := new(MockIdentityUoWFactory)
		h := commands.NewLoginCommandHandler(factory, time.Hour)

		_, err := h.Handle(t.Context(), commands.NewLoginCommand("", ""))

		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
		factory.AssertNotCalled(t, "Create")
	})
}

func TestLogoutCommandHandler_Handle(t *testing.T) {
	alice := newUser(t, "alice")

	t.Run("deletes the token", func(t *testing.T) {
		m := newIdentityUoW(t, true)
		m.tokens.On("Delete", mock.Anything, "abc123").Return(nil).Once()

		h := commands.NewLogoutCommandHandler(m.factory)
		require.NoError(t, h.Handle(t.Context(), commands.NewLogoutCommand(alice, "abc123")))

		m.tokens.AssertExpectations(t)
	})

	t.Run("anonymous caller", func(t *testing.T) {
		h := commands.NewLogoutCommandHandler(new(MockIdentityUoWFactory))

		err := h.Handle(t.Context(), commands.NewLogoutCommand(nil, "abc123"))

		require.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}

func TestAssignUserToGroupCommandHandler_Handle(t *testing.T) {
	admin := newAdmin(t)

	t.Run("joins managers", func(t *testing.T) {
		target := newUser(t, "mia")
		m := newIdentityUoW(t, true)
		m.users.On("Get", mock.Anything, target.ID()).Return(target, nil).Once()
		m.users.On("Update", mock.Anything, target).Return(nil).Once()

		h := commands.NewAssignUserToGroupCommandHandler(m.factory)
		u, err := h.Handle(t.Context(), commands.NewAssignUserToGroupCommand(admin, target.ID(), "Managers"))

		require.NoError(t, err)
		assert.True(t, u.IsManager())
		assert.False(t, u.IsDeliveryCrew())
	})

	t.Run("unknown group", func(t *testing.T) {
		target := newUser(t, "mia")
		m := newIdentityUoW(t, false)
		m.users.On("Get", mock.Anything, target.ID()).Return(target, nil).Once()

		h := commands.NewAssignUserToGroupCommandHandler(m.factory)
		_, err := h.Handle(t.Context(), commands.NewAssignUserToGroupCommand(admin, target.ID(), "Chefs"))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		m.users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("blank group", func(t *testing.T) {
		target := newUser(t, "mia")
		m := newIdentityUoW(t, false)
		m.users.On("Get", mock.Anything, target.ID()).Return(target, nil).Once()

		h := commands.NewAssignUserToGroupCommandHandler(m.factory)
		_, err := h.Handle(t.Context(), commands.NewAssignUserToGroupCommand(admin, target.ID(), "  "))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("manager is not admin", func(t *testing.T) {
		manager := newUser(t, "mia", identity.Managers)
		h := commands.NewAssignUserToGroupCommandHandler(new(MockIdentityUoWFactory))

		_, err := h.Handle(t.Context(), commands.NewAssignUserToGroupCommand(manager, kernel.NewUUID(), "Managers"))

		require.ErrorIs(t, err, errs.ErrAccessDenied)
		assert.Contains(t, err.Error(), "only admin can assign users to groups")
	})
}

func TestEnsureAdminCommandHandler_Handle(t *testing.T) {
	t.Run("creates the admin", func(t *testing.T) {
		m := newIdentityUoW(t, true)
		m.users.On("GetByUsername", mock.Anything, "admin").
			Return(nil, errs.NewObjectNotFoundError("user", "admin")).Once()
		m.users.On("Add", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil).Once()

		h := commands.NewEnsureAdminCommandHandler(m.factory)
		u, created, err := h.Handle(t.Context(), commands.NewEnsureAdminCommand("admin", "admin@littlelemon.test", "lemon-admin-1"))

		require.NoError(t, err)
		assert.True(t, created)
		assert.True(t, u.IsStaff())
	})

	t.Run("promotes an existing user", func(t *testing.T) {
		existing := newUserWithPassword(t, "admin", "original-pass")
		m := newIdentityUoW(t, true)
		m.users.On("GetByUsername", mock.Anything, "admin").Return(existing, nil).Once()
		m.users.On("Update", mock.Anything, existing).Return(nil).Once()

		h := commands.NewEnsureAdminCommandHandler(m.factory)
		u, created, err := h.Handle(t.Context(), commands.NewEnsureAdminCommand("admin", "", "lemon-admin-1"))

		require.NoError(t, err)
		assert.False(t, created)
		assert.True(t, u.IsStaff())
		require.NoError(t, u.CheckPassword("original-pass"))
	})

	t.Run("existing admin is left alone", func(t *testing.T) {
		existing := newAdmin(t)
		m := newIdentityUoW(t, false)
		m.users.On("GetByUsername", mock.Anything, existing.Username()).Return(existing, nil).Once()

		h := commands.NewEnsureAdminCommandHandler(m.factory)
		_, created, err := h.Handle(t.Context(), commands.NewEnsureAdminCommand(existing.Username(), "", "lemon-admin-1"))

		require.NoError(t, err)
		assert.False(t, created)
		m.users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestDeleteExpiredTokensCommandHandler_Handle(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m := newIdentityUoW(t, true)
	m.tokens.On("DeleteExpired", mock.Anything, now).Return(int64(3), nil).Once()

	h := commands.NewDeleteExpiredTokensCommandHandler(m.factory)
	removed, err := h.Handle(t.Context(), commands.NewDeleteExpiredTokensCommand(now))

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}
