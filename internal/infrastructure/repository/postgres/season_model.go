package postgres

import "database/sql"

type seasonTableModel struct {
	ID         int64        `db:"id,readonly"`
	Year       int          `db:"year"`
	SeasonType int          `db:"season_type"`
	IsCurrent  sql.NullBool `db:"is_current_season"`
}

type divisionTableModel struct {
	ID     int64 `db:"id"`
	Number int   `db:"division"`
}
