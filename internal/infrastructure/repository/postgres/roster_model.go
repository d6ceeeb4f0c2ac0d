package postgres

import "database/sql"

type rosterTableModel struct {
	ID              int64         `db:"id,readonly"`
	PlayerID        int64         `db:"player_id"`
	TeamID          int64         `db:"team_id"`
	Position1       int           `db:"position1"`
	Position2       sql.NullInt32 `db:"position2"`
	PlayerNumber    sql.NullInt32 `db:"player_number"`
	IsCaptain       bool          `db:"is_captain"`
	IsSubstitute    bool          `db:"is_substitute"`
	IsPrimaryGoalie bool          `db:"is_primary_goalie"`
}

type playerSeasonRow struct {
	EntryID    int64  `db:"entry_id"`
	TeamID     int64  `db:"team_id"`
	TeamName   string `db:"team_name"`
	SeasonID   int64  `db:"season_id"`
	SeasonYear int    `db:"season_year"`
	SeasonType int    `db:"season_type"`
	IsCaptain  bool   `db:"is_captain"`
}

type playerCountRow struct {
	PlayerID int64 `db:"player_id"`
	Count    int   `db:"entries"`
}
