package postgres

import (
	"time"

	"github.com/lib/pq"
)

type staffUserTableModel struct {
	ID           int64          `db:"id,readonly"`
	Username     string         `db:"username"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	IsStaff      bool           `db:"is_staff"`
	IsSuperuser  bool           `db:"is_superuser"`
	CreatedAt    time.Time      `db:"created_at,readonly"`
	Groups       pq.StringArray `db:"groups,readonly"`
}

type staffUserUpdateModel struct {
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	IsStaff      bool      `db:"is_staff"`
	IsSuperuser  bool      `db:"is_superuser"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type staffSessionTableModel struct {
	TokenHash string    `db:"token_hash"`
	UserID    int64     `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}
