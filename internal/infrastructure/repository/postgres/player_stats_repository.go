package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/street-hockey-league/internal/domain/playerstats"
	"github.com/riskibarqy/street-hockey-league/internal/domain/roster"
	qb "github.com/riskibarqy/street-hockey-league/internal/platform/querybuilder"
)

var statTotalsColumns = []string{
	"COALESCE(SUM(st.goals), 0) AS goals",
	"COALESCE(SUM(st.assists), 0) AS assists",
	"COALESCE(SUM(st.goals_against), 0) AS goals_against",
	"COUNT(DISTINCT st.matchup_id) AS games_played",
}

type playerLineRow struct {
	PlayerID     int64         `db:"player_id"`
	FirstName    string        `db:"first_name"`
	LastName     string        `db:"last_name"`
	TeamID       int64         `db:"team_id"`
	TeamName     string        `db:"team_name"`
	DivisionID   sql.NullInt64 `db:"division_id"`
	SeasonID     int64         `db:"season_id"`
	Position1    int           `db:"position1"`
	Position2    sql.NullInt32 `db:"position2"`
	IsCaptain    bool          `db:"is_captain"`
	Goals        int           `db:"goals"`
	Assists      int           `db:"assists"`
	GoalsAgainst int           `db:"goals_against"`
	GamesPlayed  int           `db:"games_played"`
}

type playerSeasonLineRow struct {
	SeasonID     int64  `db:"season_id"`
	Year         int    `db:"year"`
	SeasonType   int    `db:"season_type"`
	TeamID       int64  `db:"team_id"`
	TeamName     string `db:"team_name"`
	Goals        int    `db:"goals"`
	Assists      int    `db:"assists"`
	GoalsAgainst int    `db:"goals_against"`
	GamesPlayed  int    `db:"games_played"`
}

type careerLineRow struct {
	PlayerID      int64  `db:"player_id"`
	FirstName     string `db:"first_name"`
	LastName      string `db:"last_name"`
	Goals         int    `db:"goals"`
	Assists       int    `db:"assists"`
	GamesPlayed   int    `db:"games_played"`
	SeasonsPlayed int    `db:"seasons_played"`
}

type PlayerStatsRepository struct {
	db *sqlx.DB
}

func NewPlayerStatsRepository(db *sqlx.DB) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db}
}

// scopedStatsJoin joins a roster line to its stat rows in games of the scope.
func scopedStatsJoin(scope playerstats.Scope) (string, []any) {
	on := "st.player_id = r.player_id AND st.team_id = r.team_id"
	if postseason := scope.Postseason(); postseason != nil {
		return on + " AND sm.is_postseason = ?", []any{*postseason}
	}
	return on, nil
}

func (r *PlayerStatsRepository) ListSeasonLines(ctx context.Context, seasonID int64, scope playerstats.Scope) ([]playerstats.Line, error) {
	on, onArgs := scopedStatsJoin(scope)
	columns := append([]string{
		"p.id AS player_id",
		"p.first_name",
		"p.last_name",
		"t.id AS team_id",
		"t.team_name",
		"t.division_id",
		"t.season_id",
		"r.position1",
		"r.position2",
		"r.is_captain",
	}, statTotalsColumns...)

	query, args, err := qb.Select(columns...).From("rosters r").
		Join("players p", "p.id = r.player_id").
		Join("teams t", "t.id = r.team_id").
		LeftJoin("(stats st JOIN matchups sm ON sm.id = st.matchup_id)", on, onArgs...).
		Where(qb.Eq("t.season_id", seasonID)).
		GroupBy("r.id", "p.id", "t.id").
		OrderBy("p.last_name", "p.first_name", "t.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select season lines query: %w", err)
	}

	var rows []playerLineRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select season lines season=%d: %w", seasonID, err)
	}
	out := make([]playerstats.Line, 0, len(rows))
	for _, row := range rows {
		line := playerstats.Line{
			PlayerID:     row.PlayerID,
			FirstName:    row.FirstName,
			LastName:     row.LastName,
			TeamID:       row.TeamID,
			TeamName:     row.TeamName,
			DivisionID:   nullInt64Ptr(row.DivisionID),
			SeasonID:     row.SeasonID,
			Position1:    roster.Position(row.Position1),
			IsCaptain:    row.IsCaptain,
			Goals:        row.Goals,
			Assists:      row.Assists,
			GoalsAgainst: row.GoalsAgainst,
			GamesPlayed:  row.GamesPlayed,
		}
		if p := nullIntPtr(row.Position2); p != nil {
			pos := roster.Position(*p)
			line.Position2 = &pos
		}
		out = append(out, line)
	}
	return out, nil
}

func (r *PlayerStatsRepository) ListPlayerSeasons(ctx context.Context, playerID int64, scope playerstats.Scope) ([]playerstats.SeasonLine, error) {
	on, onArgs := scopedStatsJoin(scope)
	columns := append([]string{
		"s.id AS season_id",
		"s.year",
		"s.season_type",
		"t.id AS team_id",
		"t.team_name",
	}, statTotalsColumns...)

	query, args, err := qb.Select(columns...).From("rosters r").
		Join("teams t", "t.id = r.team_id").
		Join("seasons s", "s.id = t.season_id").
		LeftJoin("(stats st JOIN matchups sm ON sm.id = st.matchup_id)", on, onArgs...).
		Where(qb.Eq("r.player_id", playerID)).
		GroupBy("s.id", "t.id").
		OrderBy("s.year", "s.season_type", "t.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player seasons query: %w", err)
	}

	var rows []playerSeasonLineRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player seasons player=%d: %w", playerID, err)
	}
	out := make([]playerstats.SeasonLine, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerstats.SeasonLine{
			SeasonID:     row.SeasonID,
			Year:         row.Year,
			SeasonType:   row.SeasonType,
			TeamID:       row.TeamID,
			TeamName:     row.TeamName,
			Goals:        row.Goals,
			Assists:      row.Assists,
			GoalsAgainst: row.GoalsAgainst,
			GamesPlayed:  row.GamesPlayed,
		})
	}
	return out, nil
}

func (r *PlayerStatsRepository) CountSeasonsRostered(ctx context.Context, playerID int64) (int, error) {
	query, args, err := qb.Select("COUNT(DISTINCT t.season_id)").From("rosters r").
		Join("teams t", "t.id = r.team_id").
		Where(qb.Eq("r.player_id", playerID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count player seasons query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count player seasons player=%d: %w", playerID, err)
	}
	return count, nil
}

func (r *PlayerStatsRepository) CareerLeaders(ctx context.Context, scope playerstats.Scope, metric playerstats.Metric, limit int) ([]playerstats.CareerLine, error) {
	var orderBy string
	switch metric {
	case playerstats.MetricAssists:
		orderBy = "assists DESC"
	case playerstats.MetricPoints:
		orderBy = "(COALESCE(SUM(st.goals), 0) + COALESCE(SUM(st.assists), 0)) DESC"
	default:
		orderBy = "goals DESC"
	}

	conditions := make([]qb.Condition, 0, 1)
	if postseason := scope.Postseason(); postseason != nil {
		conditions = append(conditions, qb.Eq("sm.is_postseason", *postseason))
	}

	columns := append([]string{
		"p.id AS player_id",
		"p.first_name",
		"p.last_name",
		"COUNT(DISTINCT t.season_id) AS seasons_played",
	}, statTotalsColumns...)

	query, args, err := qb.Select(columns...).From("stats st").
		Join("matchups sm", "sm.id = st.matchup_id").
		Join("players p", "p.id = st.player_id").
		Join("teams t", "t.id = st.team_id").
		Where(conditions...).
		GroupBy("p.id").
		OrderBy(orderBy, "p.last_name", "p.first_name", "p.id").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select career leaders query: %w", err)
	}

	var rows []careerLineRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select career leaders metric=%s: %w", metric, err)
	}
	out := make([]playerstats.CareerLine, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerstats.CareerLine{
			PlayerID:      row.PlayerID,
			FirstName:     row.FirstName,
			LastName:      row.LastName,
			Goals:         row.Goals,
			Assists:       row.Assists,
			GamesPlayed:   row.GamesPlayed,
			SeasonsPlayed: row.SeasonsPlayed,
		})
	}
	return out, nil
}
