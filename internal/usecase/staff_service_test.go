package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/street-hockey-league/internal/domain/account"
	accountmock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/account"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type staffFixture struct {
	service  *StaffService
	users    *accountmock.UserRepository
	groups   *accountmock.GroupRepository
	sessions *accountmock.SessionRepository
	now      time.Time
}

func newStaffFixture(t *testing.T) staffFixture {
	t.Helper()

	f := staffFixture{
		users:    accountmock.NewUserRepository(t),
		groups:   accountmock.NewGroupRepository(t),
		sessions: accountmock.NewSessionRepository(t),
		now:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	f.service = NewStaffService(f.users, f.groups, f.sessions, plainHasher{}, time.Hour, nil)
	f.service.tokens = fixedCodes{code: "session-token"}
	f.service.now = func() time.Time { return f.now }
	return f
}

func TestStaffService_Login(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newStaffFixture(t)
	user := account.User{ID: 7, Username: "gm", PasswordHash: "hashed:secret-pass", IsStaff: true}
	f.users.On("GetByUsername", ctx, "gm").Return(user, true, nil).Once()
	f.users.On("Permissions", ctx, int64(7)).Return([]account.Permission{account.PermViewMatchup}, nil).Once()
	f.sessions.On("Create", ctx, mock.MatchedBy(func(s account.Session) bool {
		return s.UserID == 7 &&
			s.TokenHash == account.HashToken("session-token") &&
			s.ExpiresAt.Equal(f.now.Add(time.Hour))
	})).Return(nil).Once()

	got, err := f.service.Login(ctx, "  GM ", "secret-pass")
	require.NoError(t, err)
	require.Equal(t, "session-token", got.Token)
	require.True(t, got.Principal.Can(account.PermViewMatchup))
	require.False(t, got.Principal.Can(account.PermQuickCancel))
}

func TestStaffService_Login_RejectsBadPasswordAndNonStaff(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newStaffFixture(t)
	f.users.On("GetByUsername", ctx, "gm").Return(account.User{ID: 7, Username: "gm", PasswordHash: "hashed:secret-pass", IsStaff: true}, true, nil).Once()
	f.users.On("GetByUsername", ctx, "fan").Return(account.User{ID: 8, Username: "fan", PasswordHash: "hashed:secret-pass"}, true, nil).Once()

	_, err := f.service.Login(ctx, "gm", "wrong")
	require.ErrorIs(t, err, ErrUnauthorized)
	_, err = f.service.Login(ctx, "fan", "secret-pass")
	require.ErrorIs(t, err, ErrUnauthorized)
	_, err = f.service.Login(ctx, "", "secret-pass")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestStaffService_VerifyAccessToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newStaffFixture(t)
	hash := account.HashToken("tok")
	f.sessions.On("GetByTokenHash", ctx, hash).Return(account.Session{TokenHash: hash, UserID: 1, ExpiresAt: f.now.Add(time.Minute)}, true, nil).Once()
	f.users.On("GetByID", ctx, int64(1)).Return(account.User{ID: 1, Username: "root", IsStaff: true, IsSuperuser: true}, true, nil).Once()

	got, err := f.service.VerifyAccessToken(ctx, " tok ")
	require.NoError(t, err)
	require.True(t, got.IsSuperuser)
	f.users.AssertNotCalled(t, "Permissions", mock.Anything, mock.Anything)
}

func TestStaffService_VerifyAccessToken_Expired(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newStaffFixture(t)
	hash := account.HashToken("old")
	f.sessions.On("GetByTokenHash", ctx, hash).Return(account.Session{TokenHash: hash, UserID: 1, ExpiresAt: f.now}, true, nil).Once()

	_, err := f.service.VerifyAccessToken(ctx, "old")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestStaffService_EnsureGroupUser_CreatesUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newStaffFixture(t)
	perms := account.BuiltinGroups()[account.GroupQuickCancelOperators]
	f.groups.On("Upsert", ctx, account.Group{Name: account.GroupQuickCancelOperators, Permissions: perms}).
		Return(account.Group{ID: 3, Name: account.GroupQuickCancelOperators, Permissions: perms}, nil).Once()
	f.users.On("GetByUsername", ctx, "ops").Return(account.User{}, false, nil).Once()
	f.users.On("Create", ctx, account.User{Username: "ops", Email: "ops@example.com", PasswordHash: "hashed:long-enough", IsStaff: true}).
		Return(account.User{ID: 12, Username: "ops", Email: "ops@example.com", PasswordHash: "hashed:long-enough", IsStaff: true}, nil).Once()
	f.users.On("SetGroups", ctx, int64(12), []string{account.GroupQuickCancelOperators}).Return(nil).Once()

	got, err := f.service.EnsureGroupUser(ctx, EnsureGroupUserInput{
		Group:    account.GroupQuickCancelOperators,
		Username: "Ops",
		Email:    "ops@example.com",
		Password: "long-enough",
	})
	require.NoError(t, err)
	require.True(t, got.UserCreated)
	require.Equal(t, []string{account.GroupQuickCancelOperators}, got.User.Groups)
}

func TestStaffService_EnsureGroupUser_DemotesExistingSuperuser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newStaffFixture(t)
	perms := account.BuiltinGroups()[account.GroupGoalieManagers]
	f.groups.On("Upsert", ctx, mock.Anything).Return(account.Group{ID: 2, Name: account.GroupGoalieManagers, Permissions: perms}, nil).Once()
	f.users.On("GetByUsername", ctx, "gm").Return(account.User{ID: 4, Username: "gm", Email: "old@example.com", IsSuperuser: true}, true, nil).Once()
	f.users.On("Update", ctx, account.User{ID: 4, Username: "gm", Email: "old@example.com", PasswordHash: "hashed:long-enough", IsStaff: true}).Return(nil).Once()
	f.users.On("SetGroups", ctx, int64(4), []string{account.GroupGoalieManagers}).Return(nil).Once()

	got, err := f.service.EnsureGroupUser(ctx, EnsureGroupUserInput{Group: account.GroupGoalieManagers, Username: "gm", Password: "long-enough"})
	require.NoError(t, err)
	require.False(t, got.UserCreated)
}

func TestStaffService_EnsureGroupUser_Validation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newStaffFixture(t)

	_, err := f.service.EnsureGroupUser(ctx, EnsureGroupUserInput{Group: "Nope"})
	require.ErrorIs(t, err, ErrInvalidInput)

	f.groups.On("Upsert", ctx, mock.Anything).Return(account.Group{ID: 2, Name: account.GroupGoalieManagers}, nil).Twice()
	got, err := f.service.EnsureGroupUser(ctx, EnsureGroupUserInput{Group: account.GroupGoalieManagers, NoUser: true})
	require.NoError(t, err)
	require.Nil(t, got.User)

	_, err = f.service.EnsureGroupUser(ctx, EnsureGroupUserInput{Group: account.GroupGoalieManagers, Username: "gm", Password: "short"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestStaffService_CreateSuperuser_Conflict(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newStaffFixture(t)
	f.users.On("GetByUsername", ctx, "root").Return(account.User{ID: 1, Username: "root"}, true, nil).Once()

	_, err := f.service.CreateSuperuser(ctx, "root", "", "long-enough")
	require.ErrorIs(t, err, ErrConflict)
}
