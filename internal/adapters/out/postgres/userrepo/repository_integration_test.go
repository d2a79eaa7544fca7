package userrepo_test

import (
	"context"
	"testing"
	"time"

	"littlelemon/internal/adapters/out/postgres/pgtest"
	"littlelemon/internal/adapters/out/postgres/userrepo"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	users    *userrepo.GormUserRepository
	tokens   *userrepo.GormTokenRepository
	tracker  *MockAggregateTracker
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Reset())
	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.users = userrepo.NewGormUserRepository(suite.database.DB, suite.tracker)
	suite.tokens = userrepo.NewGormTokenRepository(suite.database.DB)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *UserRepositoryIntegrationTestSuite) newUser(username string) *identity.User {
	hash, err := identity.HashPassword("s3cret-pass")
	suite.Require().NoError(err)
	u, err := identity.NewUser(kernel.NewUUID(), username, username+"@example.com", hash)
	suite.Require().NoError(err)
	return u
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_And_GetByUsername() {
	ctx := context.Background()
	u := suite.newUser("alice")
	suite.Require().NoError(suite.users.Add(ctx, u))

	stored, err := suite.users.GetByUsername(ctx, "alice")
	suite.Require().NoError(err)
	suite.True(stored.IsEqual(u))
	suite.Equal("alice@example.com", stored.Email())
	suite.NoError(stored.CheckPassword("s3cret-pass"))
	suite.False(stored.IsStaff())
	suite.Empty(stored.Groups())
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_DuplicateUsername_ReturnsAlreadyExists() {
	ctx := context.Background()
	suite.Require().NoError(suite.users.Add(ctx, suite.newUser("alice")))

	err := suite.users.Add(ctx, suite.newUser("alice"))

	suite.Require().ErrorIs(err, errs.ErrAlreadyExists)
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpdate_GroupsAndStaff() {
	ctx := context.Background()
	u := suite.newUser("mia")
	suite.Require().NoError(suite.users.Add(ctx, u))

	suite.Require().NoError(u.JoinGroup(identity.Managers))
	suite.Require().NoError(u.JoinGroup(identity.DeliveryCrew))
	u.GrantStaff()
	suite.Require().NoError(suite.users.Update(ctx, u))

	stored, err := suite.users.Get(ctx, u.ID())
	suite.Require().NoError(err)
	suite.True(stored.IsStaff())
	suite.True(stored.IsManager())
	suite.True(stored.IsDeliveryCrew())

	suite.Require().NoError(suite.users.Update(ctx, stored), "repeated update keeps memberships")
	again, err := suite.users.Get(ctx, u.ID())
	suite.Require().NoError(err)
	suite.Len(again.Groups(), 2)
}

func (suite *UserRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.users.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.users.GetByUsername(context.Background(), "nobody")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestTokens_AddDeleteAndExpire() {
	ctx := context.Background()
	u := suite.newUser("alice")
	suite.Require().NoError(suite.users.Add(ctx, u))

	now := time.Now().UTC()
	live, err := identity.IssueToken(u.ID(), now, time.Hour)
	suite.Require().NoError(err)
	stale, err := identity.IssueToken(u.ID(), now.Add(-2*time.Hour), time.Hour)
	suite.Require().NoError(err)
	revoked, err := identity.IssueToken(u.ID(), now, time.Hour)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.tokens.Add(ctx, live))
	suite.Require().NoError(suite.tokens.Add(ctx, stale))
	suite.Require().NoError(suite.tokens.Add(ctx, revoked))

	suite.Require().NoError(suite.tokens.Delete(ctx, revoked.Key()))
	suite.Require().ErrorIs(suite.tokens.Delete(ctx, revoked.Key()), errs.ErrObjectNotFound)

	removed, err := suite.tokens.DeleteExpired(ctx, now)
	suite.Require().NoError(err)
	suite.Equal(int64(1), removed)

	var keys []string
	suite.Require().NoError(suite.database.DB.Model(&userrepo.TokenDTO{}).Pluck("key", &keys).Error)
	suite.Equal([]string{live.Key()}, keys)
}

func (suite *UserRepositoryIntegrationTestSuite) TestTokens_UnknownUser_ReturnsNotFound() {
	token, err := identity.IssueToken(kernel.NewUUID(), time.Now(), time.Hour)
	suite.Require().NoError(err)

	suite.Require().ErrorIs(suite.tokens.Add(context.Background(), token), errs.ErrObjectNotFound)
}

func TestUserRepositoryIntegration(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
