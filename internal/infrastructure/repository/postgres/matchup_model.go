package postgres

import (
	"database/sql"
	"time"
)

type matchupTableModel struct {
	ID               int64         `db:"id"`
	WeekID           int64         `db:"week_id"`
	Time             time.Time     `db:"time"`
	AwayTeamID       int64         `db:"awayteam_id"`
	HomeTeamID       int64         `db:"hometeam_id"`
	Ref1ID           sql.NullInt64 `db:"ref1_id"`
	Ref2ID           sql.NullInt64 `db:"ref2_id"`
	IsPostseason     bool          `db:"is_postseason"`
	WentToOvertime   bool          `db:"went_to_overtime"`
	Notes            string        `db:"notes"`
	AwayGoalieID     sql.NullInt64 `db:"away_goalie_id"`
	HomeGoalieID     sql.NullInt64 `db:"home_goalie_id"`
	AwayGoalieStatus int           `db:"away_goalie_status"`
	HomeGoalieStatus int           `db:"home_goalie_status"`
}

// matchupWriteModel binds time as a clock string for the TIME column.
type matchupWriteModel struct {
	WeekID           int64         `db:"week_id"`
	Time             string        `db:"time"`
	AwayTeamID       int64         `db:"awayteam_id"`
	HomeTeamID       int64         `db:"hometeam_id"`
	Ref1ID           sql.NullInt64 `db:"ref1_id"`
	Ref2ID           sql.NullInt64 `db:"ref2_id"`
	IsPostseason     bool          `db:"is_postseason"`
	WentToOvertime   bool          `db:"went_to_overtime"`
	Notes            string        `db:"notes"`
	AwayGoalieID     sql.NullInt64 `db:"away_goalie_id"`
	HomeGoalieID     sql.NullInt64 `db:"home_goalie_id"`
	AwayGoalieStatus int           `db:"away_goalie_status"`
	HomeGoalieStatus int           `db:"home_goalie_status"`
}

type matchupResultRow struct {
	MatchUpID      int64     `db:"matchup_id"`
	WeekID         int64     `db:"week_id"`
	Date           time.Time `db:"date"`
	DivisionID     int64     `db:"division_id"`
	AwayTeamID     int64     `db:"awayteam_id"`
	HomeTeamID     int64     `db:"hometeam_id"`
	AwayGoals      int       `db:"away_goals"`
	HomeGoals      int       `db:"home_goals"`
	HasStats       bool      `db:"has_stats"`
	IsPostseason   bool      `db:"is_postseason"`
	WentToOvertime bool      `db:"went_to_overtime"`
}

type statTableModel struct {
	ID           int64 `db:"id,readonly"`
	PlayerID     int64 `db:"player_id"`
	TeamID       int64 `db:"team_id"`
	MatchUpID    int64 `db:"matchup_id"`
	Goals        int   `db:"goals"`
	Assists      int   `db:"assists"`
	GoalsAgainst int   `db:"goals_against"`
	EmptyNet     int   `db:"empty_net"`
}
