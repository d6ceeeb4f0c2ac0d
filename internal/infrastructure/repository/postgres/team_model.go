package postgres

import (
	"database/sql"
	"time"
)

type teamTableModel struct {
	ID         int64         `db:"id,readonly"`
	Name       string        `db:"team_name"`
	Color      string        `db:"team_color"`
	IsActive   bool          `db:"is_active"`
	IsChampion bool          `db:"is_champ"`
	DivisionID sql.NullInt64 `db:"division_id"`
	SeasonID   sql.NullInt64 `db:"season_id"`
	AccessCode string        `db:"captain_access_code"`
	PhotoURL   string        `db:"team_photo_url"`
}

type teamUpdateModel struct {
	Name       string        `db:"team_name"`
	Color      string        `db:"team_color"`
	IsActive   bool          `db:"is_active"`
	IsChampion bool          `db:"is_champ"`
	DivisionID sql.NullInt64 `db:"division_id"`
	SeasonID   sql.NullInt64 `db:"season_id"`
	AccessCode string        `db:"captain_access_code"`
	PhotoURL   string        `db:"team_photo_url"`
	UpdatedAt  time.Time     `db:"updated_at"`
}

type refTableModel struct {
	ID        int64         `db:"id"`
	FirstName string        `db:"first_name"`
	LastName  string        `db:"last_name"`
	PlayerID  sql.NullInt64 `db:"player_id"`
}
