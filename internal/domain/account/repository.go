package account

import "context"

type UserRepository interface {
	GetByID(ctx context.Context, userID int64) (User, bool, error)
	GetByUsername(ctx context.Context, username string) (User, bool, error)
	Create(ctx context.Context, u User) (User, error)
	Update(ctx context.Context, u User) error
	// SetGroups replaces the user's group memberships.
	SetGroups(ctx context.Context, userID int64, groupNames []string) error
	// Permissions returns the union of the user's group permissions.
	Permissions(ctx context.Context, userID int64) ([]Permission, error)
}

type GroupRepository interface {
	// Upsert creates the group or replaces its permission set.
	Upsert(ctx context.Context, g Group) (Group, error)
}

type SessionRepository interface {
	Create(ctx context.Context, s Session) error
	GetByTokenHash(ctx context.Context, tokenHash string) (Session, bool, error)
	Delete(ctx context.Context, tokenHash string) error
	DeleteExpired(ctx context.Context) (int, error)
}
