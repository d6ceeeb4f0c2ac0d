package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/street-hockey-league/internal/domain/teamstat"
	qb "github.com/riskibarqy/street-hockey-league/internal/platform/querybuilder"
)

const teamStatUpsertSuffix = `ON CONFLICT (team_id, division_id, season_id)
DO UPDATE SET
    win = EXCLUDED.win,
    otw = EXCLUDED.otw,
    otl = EXCLUDED.otl,
    loss = EXCLUDED.loss,
    tie = EXCLUDED.tie,
    goals_for = EXCLUDED.goals_for,
    goals_against = EXCLUDED.goals_against
RETURNING id`

type teamStatTableModel struct {
	ID           int64 `db:"id,readonly"`
	TeamID       int64 `db:"team_id"`
	DivisionID   int64 `db:"division_id"`
	SeasonID     int64 `db:"season_id"`
	Win          int   `db:"win"`
	OTW          int   `db:"otw"`
	OTL          int   `db:"otl"`
	Loss         int   `db:"loss"`
	Tie          int   `db:"tie"`
	GoalsFor     int   `db:"goals_for"`
	GoalsAgainst int   `db:"goals_against"`
}

type teamRecordRow struct {
	teamStatTableModel
	TeamName string `db:"team_name"`
}

type TeamStatsRepository struct {
	db *sqlx.DB
}

func NewTeamStatsRepository(db *sqlx.DB) *TeamStatsRepository {
	return &TeamStatsRepository{db: db}
}

func (r *TeamStatsRepository) ListRecords(ctx context.Context, seasonID int64, divisionID *int64) ([]teamstat.Record, error) {
	conditions := []qb.Condition{qb.Eq("ts.season_id", seasonID)}
	if divisionID != nil {
		conditions = append(conditions, qb.Eq("ts.division_id", *divisionID))
	}

	query, args, err := qb.Select(
		"MIN(ts.id) AS id",
		"ts.team_id",
		"ts.division_id",
		"ts.season_id",
		"SUM(ts.win) AS win",
		"SUM(ts.otw) AS otw",
		"SUM(ts.otl) AS otl",
		"SUM(ts.loss) AS loss",
		"SUM(ts.tie) AS tie",
		"SUM(ts.goals_for) AS goals_for",
		"SUM(ts.goals_against) AS goals_against",
		"t.team_name",
	).From("team_stats ts").
		Join("teams t", "t.id = ts.team_id").
		Where(conditions...).
		GroupBy("ts.team_id", "ts.division_id", "ts.season_id", "t.team_name").
		OrderBy("ts.division_id", "t.team_name", "ts.team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team records query: %w", err)
	}

	var rows []teamRecordRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team records season=%d: %w", seasonID, err)
	}
	out := make([]teamstat.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamstat.Record{TeamStat: teamStatFromRow(row.teamStatTableModel), TeamName: row.TeamName})
	}
	return out, nil
}

func (r *TeamStatsRepository) Upsert(ctx context.Context, s teamstat.TeamStat) (teamstat.TeamStat, error) {
	query, args, err := qb.InsertModel("team_stats", teamStatModelFrom(s), teamStatUpsertSuffix)
	if err != nil {
		return teamstat.TeamStat{}, fmt.Errorf("build upsert team stat query: %w", err)
	}
	if err := r.db.GetContext(ctx, &s.ID, query, args...); err != nil {
		return teamstat.TeamStat{}, fmt.Errorf("upsert team stat team=%d season=%d: %w", s.TeamID, s.SeasonID, err)
	}
	return s, nil
}

// ReplaceForDivision upserts one row per team, then drops rows of teams that
// no longer belong to the division, all in one transaction.
func (r *TeamStatsRepository) ReplaceForDivision(ctx context.Context, seasonID, divisionID int64, rows []teamstat.TeamStat) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace team stats: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	keep := make([]int64, 0, len(rows))
	for _, item := range rows {
		item.SeasonID, item.DivisionID = seasonID, divisionID
		query, args, err := qb.InsertModel("team_stats", teamStatModelFrom(item), teamStatUpsertSuffix)
		if err != nil {
			return fmt.Errorf("build upsert team stat query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert team stat team=%d: %w", item.TeamID, err)
		}
		keep = append(keep, item.TeamID)
	}

	pruneQuery, pruneArgs, err := staleTeamStatsQuery(seasonID, divisionID, keep)
	if err != nil {
		return fmt.Errorf("build prune team stats query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, pruneQuery, pruneArgs...); err != nil {
		return fmt.Errorf("prune team stats season=%d division=%d: %w", seasonID, divisionID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace team stats tx: %w", err)
	}
	return nil
}

// staleTeamStatsQuery deletes the division's rows for teams outside keep.
func staleTeamStatsQuery(seasonID, divisionID int64, keep []int64) (string, []any, error) {
	del := qb.DeleteFrom("team_stats").Where(qb.Eq("season_id", seasonID), qb.Eq("division_id", divisionID))
	if len(keep) > 0 {
		del = del.Where(qb.Expr("NOT (team_id = ANY(?))", pq.Array(keep)))
	}
	return del.ToSQL()
}

func teamStatModelFrom(s teamstat.TeamStat) teamStatTableModel {
	return teamStatTableModel{
		TeamID:       s.TeamID,
		DivisionID:   s.DivisionID,
		SeasonID:     s.SeasonID,
		Win:          s.Win,
		OTW:          s.OTW,
		OTL:          s.OTL,
		Loss:         s.Loss,
		Tie:          s.Tie,
		GoalsFor:     s.GoalsFor,
		GoalsAgainst: s.GoalsAgainst,
	}
}

func teamStatFromRow(row teamStatTableModel) teamstat.TeamStat {
	return teamstat.TeamStat{
		ID:           row.ID,
		TeamID:       row.TeamID,
		DivisionID:   row.DivisionID,
		SeasonID:     row.SeasonID,
		Win:          row.Win,
		OTW:          row.OTW,
		OTL:          row.OTL,
		Loss:         row.Loss,
		Tie:          row.Tie,
		GoalsFor:     row.GoalsFor,
		GoalsAgainst: row.GoalsAgainst,
	}
}
