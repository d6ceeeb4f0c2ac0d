package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/street-hockey-league/internal/domain/account"
	"github.com/riskibarqy/street-hockey-league/internal/platform/accesscode"
	"github.com/riskibarqy/street-hockey-league/internal/platform/logging"
)

const (
	DefaultStaffSessionTTL = 12 * time.Hour
	minPasswordLength      = 8
)

// PasswordHasher hashes and checks staff passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns an error when password does not match hash.
	Compare(hash, password string) error
}

type StaffSession struct {
	Token     string
	ExpiresAt time.Time
	Principal account.Principal
}

type EnsureGroupUserInput struct {
	Group    string
	Username string
	Email    string
	Password string
	NoUser   bool
}

type EnsureGroupUserResult struct {
	Group       account.Group
	User        *account.User
	UserCreated bool
}

type StaffService struct {
	userRepo    account.UserRepository
	groupRepo   account.GroupRepository
	sessionRepo account.SessionRepository
	hasher      PasswordHasher
	tokens      accesscode.Generator
	sessionTTL  time.Duration
	now         func() time.Time
	logger      *logging.Logger
}

func NewStaffService(
	userRepo account.UserRepository,
	groupRepo account.GroupRepository,
	sessionRepo account.SessionRepository,
	hasher PasswordHasher,
	sessionTTL time.Duration,
	logger *logging.Logger,
) *StaffService {
	if sessionTTL <= 0 {
		sessionTTL = DefaultStaffSessionTTL
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &StaffService{
		userRepo:    userRepo,
		groupRepo:   groupRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		tokens:      accesscode.NewUUIDGenerator(),
		sessionTTL:  sessionTTL,
		now:         time.Now,
		logger:      logger,
	}
}

// Login checks a staff password and issues a session token.
func (s *StaffService) Login(ctx context.Context, username, password string) (StaffSession, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StaffService.Login")
	defer span.End()

	username = account.NormalizeUsername(username)
	if username == "" || password == "" {
		return StaffSession{}, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	user, exists, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return StaffSession{}, fmt.Errorf("get user: %w", err)
	}
	if !exists || !user.IsStaff {
		return StaffSession{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.logger.WarnContext(ctx, "staff login rejected", "username", username)
		return StaffSession{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	principal, err := s.principalFor(ctx, user)
	if err != nil {
		return StaffSession{}, err
	}
	token, err := s.tokens.NewCode()
	if err != nil {
		return StaffSession{}, fmt.Errorf("generate session token: %w", err)
	}
	now := s.now().UTC()
	session := account.Session{
		TokenHash: account.HashToken(token),
		UserID:    user.ID,
		ExpiresAt: now.Add(s.sessionTTL),
		CreatedAt: now,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return StaffSession{}, fmt.Errorf("create session: %w", err)
	}

	s.logger.InfoContext(ctx, "staff login", "user_id", user.ID, "username", username)
	return StaffSession{Token: token, ExpiresAt: session.ExpiresAt, Principal: principal}, nil
}

func (s *StaffService) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("%w: token is required", ErrUnauthorized)
	}
	if err := s.sessionRepo.Delete(ctx, account.HashToken(token)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// VerifyAccessToken resolves a session token to its principal.
func (s *StaffService) VerifyAccessToken(ctx context.Context, token string) (account.Principal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StaffService.VerifyAccessToken")
	defer span.End()

	token = strings.TrimSpace(token)
	if token == "" {
		return account.Principal{}, fmt.Errorf("%w: token is required", ErrUnauthorized)
	}
	session, exists, err := s.sessionRepo.GetByTokenHash(ctx, account.HashToken(token))
	if err != nil {
		return account.Principal{}, fmt.Errorf("get session: %w", err)
	}
	if !exists || !session.ExpiresAt.After(s.now()) {
		return account.Principal{}, fmt.Errorf("%w: session expired or unknown", ErrUnauthorized)
	}

	user, exists, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		return account.Principal{}, fmt.Errorf("get user: %w", err)
	}
	if !exists || !user.IsStaff {
		return account.Principal{}, fmt.Errorf("%w: staff account is disabled", ErrUnauthorized)
	}
	return s.principalFor(ctx, user)
}

// PurgeExpiredSessions drops sessions past their expiry.
func (s *StaffService) PurgeExpiredSessions(ctx context.Context) (int, error) {
	count, err := s.sessionRepo.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return count, nil
}

// EnsureGroupUser provisions one of the built-in groups and, unless NoUser
// is set, a staff user belonging to exactly that group. Safe to rerun.
func (s *StaffService) EnsureGroupUser(ctx context.Context, input EnsureGroupUserInput) (EnsureGroupUserResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StaffService.EnsureGroupUser")
	defer span.End()

	perms, ok := account.BuiltinGroups()[input.Group]
	if !ok {
		return EnsureGroupUserResult{}, fmt.Errorf("%w: unknown group %q", ErrInvalidInput, input.Group)
	}
	group, err := s.groupRepo.Upsert(ctx, account.Group{Name: input.Group, Permissions: perms})
	if err != nil {
		return EnsureGroupUserResult{}, fmt.Errorf("upsert group %q: %w", input.Group, err)
	}
	result := EnsureGroupUserResult{Group: group}
	if input.NoUser {
		return result, nil
	}

	username := account.NormalizeUsername(input.Username)
	if username == "" {
		return EnsureGroupUserResult{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if len(input.Password) < minPasswordLength {
		return EnsureGroupUserResult{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return EnsureGroupUserResult{}, fmt.Errorf("hash password: %w", err)
	}

	user, exists, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return EnsureGroupUserResult{}, fmt.Errorf("get user: %w", err)
	}
	user.PasswordHash = hash
	user.IsStaff = true
	user.IsSuperuser = false
	if email := strings.TrimSpace(input.Email); email != "" {
		user.Email = email
	}
	if exists {
		if err := s.userRepo.Update(ctx, user); err != nil {
			return EnsureGroupUserResult{}, fmt.Errorf("update user %q: %w", username, err)
		}
	} else {
		user.Username = username
		user, err = s.userRepo.Create(ctx, user)
		if err != nil {
			return EnsureGroupUserResult{}, fmt.Errorf("create user %q: %w", username, err)
		}
		result.UserCreated = true
	}
	if err := s.userRepo.SetGroups(ctx, user.ID, []string{group.Name}); err != nil {
		return EnsureGroupUserResult{}, fmt.Errorf("set groups user=%d: %w", user.ID, err)
	}
	user.Groups = []string{group.Name}
	result.User = &user

	s.logger.InfoContext(ctx, "group user ensured",
		"group", group.Name,
		"username", username,
		"created", result.UserCreated,
	)
	return result, nil
}

func (s *StaffService) CreateSuperuser(ctx context.Context, username, email, password string) (account.User, error) {
	username = account.NormalizeUsername(username)
	if username == "" {
		return account.User{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return account.User{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	if _, exists, err := s.userRepo.GetByUsername(ctx, username); err != nil {
		return account.User{}, fmt.Errorf("get user: %w", err)
	} else if exists {
		return account.User{}, fmt.Errorf("%w: user %q already exists", ErrConflict, username)
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return account.User{}, fmt.Errorf("hash password: %w", err)
	}
	user, err := s.userRepo.Create(ctx, account.User{
		Username:     username,
		Email:        strings.TrimSpace(email),
		PasswordHash: hash,
		IsStaff:      true,
		IsSuperuser:  true,
	})
	if err != nil {
		return account.User{}, fmt.Errorf("create superuser: %w", err)
	}
	return user, nil
}

func (s *StaffService) principalFor(ctx context.Context, user account.User) (account.Principal, error) {
	principal := account.Principal{
		UserID:      user.ID,
		Username:    user.Username,
		IsSuperuser: user.IsSuperuser,
	}
	if user.IsSuperuser {
		return principal, nil
	}
	perms, err := s.userRepo.Permissions(ctx, user.ID)
	if err != nil {
		return account.Principal{}, fmt.Errorf("list permissions user=%d: %w", user.ID, err)
	}
	principal.Permissions = perms
	return principal, nil
}
