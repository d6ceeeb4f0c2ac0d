package postgres

import (
	"database/sql"
	"time"
)

type playerTableModel struct {
	ID                          int64     `db:"id,readonly"`
	FirstName                   string    `db:"first_name"`
	LastName                    string    `db:"last_name"`
	Email                       string    `db:"email"`
	Gender                      string    `db:"gender"`
	IsActive                    bool      `db:"is_active"`
	ExcludeFromAutoDeactivation bool      `db:"exclude_from_auto_deactivation"`
	PhotoURL                    string    `db:"photo_url"`
	CreatedAt                   time.Time `db:"created_at,readonly"`
}

type playerUpdateModel struct {
	FirstName                   string    `db:"first_name"`
	LastName                    string    `db:"last_name"`
	Email                       string    `db:"email"`
	Gender                      string    `db:"gender"`
	IsActive                    bool      `db:"is_active"`
	ExcludeFromAutoDeactivation bool      `db:"exclude_from_auto_deactivation"`
	PhotoURL                    string    `db:"photo_url"`
	UpdatedAt                   time.Time `db:"updated_at"`
}

type deactivationCandidateRow struct {
	playerTableModel
	LastRosteredYear sql.NullInt32 `db:"last_rostered_year"`
	IsGoalie         bool          `db:"is_goalie"`
}
