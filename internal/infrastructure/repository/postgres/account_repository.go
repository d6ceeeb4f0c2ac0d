package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/street-hockey-league/internal/domain/account"
	qb "github.com/riskibarqy/street-hockey-league/internal/platform/querybuilder"
)

var staffUserSelectColumns = []string{
	"u.id",
	"u.username",
	"u.email",
	"u.password_hash",
	"u.is_staff",
	"u.is_superuser",
	"u.created_at",
	`ARRAY(
        SELECT g.name FROM staff_user_groups ug
        JOIN staff_groups g ON g.id = ug.group_id
        WHERE ug.user_id = u.id
        ORDER BY g.name
    ) AS groups`,
}

type StaffUserRepository struct {
	db *sqlx.DB
}

func NewStaffUserRepository(db *sqlx.DB) *StaffUserRepository {
	return &StaffUserRepository{db: db}
}

func (r *StaffUserRepository) GetByID(ctx context.Context, userID int64) (account.User, bool, error) {
	return r.getOne(ctx, qb.Eq("u.id", userID))
}

func (r *StaffUserRepository) GetByUsername(ctx context.Context, username string) (account.User, bool, error) {
	return r.getOne(ctx, qb.Eq("u.username", username))
}

func (r *StaffUserRepository) Create(ctx context.Context, u account.User) (account.User, error) {
	query, args, err := qb.InsertModel("staff_users", staffUserTableModel{
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		IsStaff:      u.IsStaff,
		IsSuperuser:  u.IsSuperuser,
	}, "RETURNING id, created_at")
	if err != nil {
		return account.User{}, fmt.Errorf("build insert staff user query: %w", err)
	}

	var inserted struct {
		ID        int64     `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}
	if err := r.db.GetContext(ctx, &inserted, query, args...); err != nil {
		return account.User{}, fmt.Errorf("insert staff user %q: %w", u.Username, err)
	}
	u.ID = inserted.ID
	u.CreatedAt = inserted.CreatedAt
	return u, nil
}

func (r *StaffUserRepository) Update(ctx context.Context, u account.User) error {
	query, args, err := qb.UpdateModel("staff_users", staffUserUpdateModel{
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		IsStaff:      u.IsStaff,
		IsSuperuser:  u.IsSuperuser,
		UpdatedAt:    time.Now().UTC(),
	}, qb.Eq("id", u.ID))
	if err != nil {
		return fmt.Errorf("build update staff user query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update staff user=%d: %w", u.ID, err)
	}
	return nil
}

// SetGroups replaces memberships in one transaction. Unknown group names fail
// the whole call.
func (r *StaffUserRepository) SetGroups(ctx context.Context, userID int64, groupNames []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx set staff groups: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteQuery, deleteArgs, err := qb.DeleteFrom("staff_user_groups").
		Where(qb.Eq("user_id", userID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete staff groups query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("delete staff groups user=%d: %w", userID, err)
	}

	if len(groupNames) > 0 {
		res, err := tx.ExecContext(ctx, `INSERT INTO staff_user_groups (user_id, group_id)
SELECT $1, g.id FROM staff_groups g WHERE g.name = ANY($2)`, userID, pq.Array(groupNames))
		if err != nil {
			return fmt.Errorf("insert staff groups user=%d: %w", userID, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected staff groups user=%d: %w", userID, err)
		}
		if int(affected) != len(groupNames) {
			return fmt.Errorf("set staff groups user=%d: %d of %d groups exist", userID, affected, len(groupNames))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit set staff groups: %w", err)
	}
	return nil
}

func (r *StaffUserRepository) Permissions(ctx context.Context, userID int64) ([]account.Permission, error) {
	query, args, err := qb.Select("DISTINCT unnest(g.permissions) AS permission").From("staff_groups g").
		Join("staff_user_groups ug", "ug.group_id = g.id").
		Where(qb.Eq("ug.user_id", userID)).
		OrderBy("permission").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select staff permissions query: %w", err)
	}

	var rows []string
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select staff permissions user=%d: %w", userID, err)
	}
	out := make([]account.Permission, 0, len(rows))
	for _, p := range rows {
		out = append(out, account.Permission(p))
	}
	return out, nil
}

func (r *StaffUserRepository) getOne(ctx context.Context, conditions ...qb.Condition) (account.User, bool, error) {
	query, args, err := qb.Select(staffUserSelectColumns...).From("staff_users u").
		Where(conditions...).
		Limit(1).
		ToSQL()
	if err != nil {
		return account.User{}, false, fmt.Errorf("build select staff user query: %w", err)
	}

	var row staffUserTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return account.User{}, false, nil
		}
		return account.User{}, false, fmt.Errorf("get staff user: %w", err)
	}
	return account.User{
		ID:           row.ID,
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		IsStaff:      row.IsStaff,
		IsSuperuser:  row.IsSuperuser,
		Groups:       []string(row.Groups),
		CreatedAt:    row.CreatedAt,
	}, true, nil
}

type StaffGroupRepository struct {
	db *sqlx.DB
}

func NewStaffGroupRepository(db *sqlx.DB) *StaffGroupRepository {
	return &StaffGroupRepository{db: db}
}

func (r *StaffGroupRepository) Upsert(ctx context.Context, g account.Group) (account.Group, error) {
	perms := make([]string, 0, len(g.Permissions))
	for _, p := range g.Permissions {
		perms = append(perms, string(p))
	}

	query, args, err := qb.InsertInto("staff_groups").
		Columns("name", "permissions").
		Values(g.Name, pq.Array(perms)).
		Suffix("ON CONFLICT (name) DO UPDATE SET permissions = EXCLUDED.permissions RETURNING id").
		ToSQL()
	if err != nil {
		return account.Group{}, fmt.Errorf("build upsert staff group query: %w", err)
	}
	if err := r.db.GetContext(ctx, &g.ID, query, args...); err != nil {
		return account.Group{}, fmt.Errorf("upsert staff group %q: %w", g.Name, err)
	}
	return g, nil
}

type StaffSessionRepository struct {
	db *sqlx.DB
}

func NewStaffSessionRepository(db *sqlx.DB) *StaffSessionRepository {
	return &StaffSessionRepository{db: db}
}

func (r *StaffSessionRepository) Create(ctx context.Context, s account.Session) error {
	query, args, err := qb.InsertModel("staff_sessions", staffSessionTableModel{
		TokenHash: s.TokenHash,
		UserID:    s.UserID,
		ExpiresAt: s.ExpiresAt,
		CreatedAt: s.CreatedAt,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert staff session query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert staff session user=%d: %w", s.UserID, err)
	}
	return nil
}

func (r *StaffSessionRepository) GetByTokenHash(ctx context.Context, tokenHash string) (account.Session, bool, error) {
	query, args, err := qb.Select("token_hash", "user_id", "expires_at", "created_at").From("staff_sessions").
		Where(qb.Eq("token_hash", tokenHash)).
		Limit(1).
		ToSQL()
	if err != nil {
		return account.Session{}, false, fmt.Errorf("build select staff session query: %w", err)
	}

	var row staffSessionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return account.Session{}, false, nil
		}
		return account.Session{}, false, fmt.Errorf("get staff session: %w", err)
	}
	return account.Session{
		TokenHash: row.TokenHash,
		UserID:    row.UserID,
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
	}, true, nil
}

func (r *StaffSessionRepository) Delete(ctx context.Context, tokenHash string) error {
	query, args, err := qb.DeleteFrom("staff_sessions").Where(qb.Eq("token_hash", tokenHash)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete staff session query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete staff session: %w", err)
	}
	return nil
}

func (r *StaffSessionRepository) DeleteExpired(ctx context.Context) (int, error) {
	query, args, err := qb.DeleteFrom("staff_sessions").Where(qb.Expr("expires_at <= NOW()")).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build delete expired staff sessions query: %w", err)
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete expired staff sessions: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected expired staff sessions: %w", err)
	}
	return int(affected), nil
}
