package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/street-hockey-league/internal/domain/matchup"
	"github.com/riskibarqy/street-hockey-league/internal/domain/stat"
	qb "github.com/riskibarqy/street-hockey-league/internal/platform/querybuilder"
)

var matchupSelectColumns = []string{
	"m.id",
	"m.week_id",
	"m.time",
	"m.awayteam_id",
	"m.hometeam_id",
	"m.ref1_id",
	"m.ref2_id",
	"m.is_postseason",
	"m.went_to_overtime",
	"m.notes",
	"m.away_goalie_id",
	"m.home_goalie_id",
	"m.away_goalie_status",
	"m.home_goalie_status",
}

type MatchupRepository struct {
	db *sqlx.DB
}

func NewMatchupRepository(db *sqlx.DB) *MatchupRepository {
	return &MatchupRepository{db: db}
}

func (r *MatchupRepository) GetByID(ctx context.Context, matchupID int64) (matchup.MatchUp, bool, error) {
	query, args, err := qb.Select(matchupSelectColumns...).From("matchups m").
		Where(qb.Eq("m.id", matchupID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return matchup.MatchUp{}, false, fmt.Errorf("build select matchup query: %w", err)
	}

	var row matchupTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return matchup.MatchUp{}, false, nil
		}
		return matchup.MatchUp{}, false, fmt.Errorf("get matchup=%d: %w", matchupID, err)
	}
	return matchupFromRow(row), true, nil
}

func (r *MatchupRepository) List(ctx context.Context, filter matchup.ListFilter) ([]matchup.MatchUp, error) {
	conditions := make([]qb.Condition, 0, 5)
	if filter.SeasonID != nil {
		conditions = append(conditions, qb.Eq("w.season_id", *filter.SeasonID))
	}
	if filter.DivisionID != nil {
		conditions = append(conditions, qb.Eq("w.division_id", *filter.DivisionID))
	}
	if filter.WeekIDs != nil {
		conditions = append(conditions, qb.InInt64("m.week_id", filter.WeekIDs))
	}
	if filter.TeamID != nil {
		conditions = append(conditions, qb.Or(qb.Eq("m.awayteam_id", *filter.TeamID), qb.Eq("m.hometeam_id", *filter.TeamID)))
	}
	if !filter.FromDate.IsZero() {
		conditions = append(conditions, qb.Gte("w.date", dateArg(filter.FromDate)))
	}

	query, args, err := qb.Select(matchupSelectColumns...).From("matchups m").
		Join("weeks w", "w.id = m.week_id").
		Where(conditions...).
		OrderBy("w.date", "m.time", "m.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matchups query: %w", err)
	}

	var rows []matchupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matchups: %w", err)
	}
	out := make([]matchup.MatchUp, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchupFromRow(row))
	}
	return out, nil
}

// ListResults derives each game's score from its stat rows.
func (r *MatchupRepository) ListResults(ctx context.Context, filter matchup.ResultFilter) ([]matchup.Result, error) {
	conditions := []qb.Condition{qb.Eq("w.season_id", filter.SeasonID)}
	if filter.DivisionID != nil {
		conditions = append(conditions, qb.Eq("w.division_id", *filter.DivisionID))
	}
	if filter.Postseason != nil {
		conditions = append(conditions, qb.Eq("m.is_postseason", *filter.Postseason))
	}

	b := qb.Select(
		"m.id AS matchup_id",
		"m.week_id",
		"w.date",
		"w.division_id",
		"m.awayteam_id",
		"m.hometeam_id",
		"COALESCE(SUM(st.goals) FILTER (WHERE st.team_id = m.awayteam_id), 0) AS away_goals",
		"COALESCE(SUM(st.goals) FILTER (WHERE st.team_id = m.hometeam_id), 0) AS home_goals",
		"COUNT(st.id) > 0 AS has_stats",
		"m.is_postseason",
		"m.went_to_overtime",
	).From("matchups m").
		Join("weeks w", "w.id = m.week_id").
		LeftJoin("stats st", "st.matchup_id = m.id").
		Where(conditions...).
		GroupBy("m.id", "w.date", "w.division_id").
		OrderBy("w.date", "m.time", "m.id")
	if filter.PlayedOnly {
		b = b.Having(qb.Expr("COUNT(st.id) > 0"))
	}
	query, args, err := b.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matchup results query: %w", err)
	}

	var rows []matchupResultRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matchup results season=%d: %w", filter.SeasonID, err)
	}
	out := make([]matchup.Result, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchup.Result{
			MatchUpID:      row.MatchUpID,
			WeekID:         row.WeekID,
			Date:           row.Date,
			DivisionID:     row.DivisionID,
			AwayTeamID:     row.AwayTeamID,
			HomeTeamID:     row.HomeTeamID,
			AwayGoals:      row.AwayGoals,
			HomeGoals:      row.HomeGoals,
			HasStats:       row.HasStats,
			IsPostseason:   row.IsPostseason,
			WentToOvertime: row.WentToOvertime,
		})
	}
	return out, nil
}

func (r *MatchupRepository) Create(ctx context.Context, m matchup.MatchUp) (matchup.MatchUp, error) {
	query, args, err := qb.InsertModel("matchups", matchupWriteModelFrom(m), "RETURNING id")
	if err != nil {
		return matchup.MatchUp{}, fmt.Errorf("build insert matchup query: %w", err)
	}
	if err := r.db.GetContext(ctx, &m.ID, query, args...); err != nil {
		return matchup.MatchUp{}, fmt.Errorf("insert matchup week=%d: %w", m.WeekID, err)
	}
	return m, nil
}

func (r *MatchupRepository) Update(ctx context.Context, m matchup.MatchUp) error {
	query, args, err := qb.UpdateModel("matchups", matchupWriteModelFrom(m), qb.Eq("id", m.ID))
	if err != nil {
		return fmt.Errorf("build update matchup query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update matchup=%d: %w", m.ID, err)
	}
	return nil
}

func (r *MatchupRepository) UpdateGoalie(ctx context.Context, matchupID int64, side matchup.Side, goalieID *int64, status matchup.GoalieStatus) error {
	idColumn, statusColumn := "away_goalie_id", "away_goalie_status"
	if side == matchup.SideHome {
		idColumn, statusColumn = "home_goalie_id", "home_goalie_status"
	}
	query, args, err := qb.Update("matchups").
		Set(idColumn, int64PtrToNull(goalieID)).
		Set(statusColumn, int(status)).
		Where(qb.Eq("id", matchupID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update matchup goalie query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update matchup=%d %s goalie: %w", matchupID, side, err)
	}
	return nil
}

func matchupWriteModelFrom(m matchup.MatchUp) matchupWriteModel {
	return matchupWriteModel{
		WeekID:           m.WeekID,
		Time:             matchup.ClockString(m.Time),
		AwayTeamID:       m.AwayTeamID,
		HomeTeamID:       m.HomeTeamID,
		Ref1ID:           int64PtrToNull(m.Ref1ID),
		Ref2ID:           int64PtrToNull(m.Ref2ID),
		IsPostseason:     m.IsPostseason,
		WentToOvertime:   m.WentToOvertime,
		Notes:            m.Notes,
		AwayGoalieID:     int64PtrToNull(m.AwayGoalieID),
		HomeGoalieID:     int64PtrToNull(m.HomeGoalieID),
		AwayGoalieStatus: int(m.AwayGoalieStatus),
		HomeGoalieStatus: int(m.HomeGoalieStatus),
	}
}

func matchupFromRow(row matchupTableModel) matchup.MatchUp {
	return matchup.MatchUp{
		ID:               row.ID,
		WeekID:           row.WeekID,
		Time:             row.Time,
		AwayTeamID:       row.AwayTeamID,
		HomeTeamID:       row.HomeTeamID,
		Ref1ID:           nullInt64Ptr(row.Ref1ID),
		Ref2ID:           nullInt64Ptr(row.Ref2ID),
		IsPostseason:     row.IsPostseason,
		WentToOvertime:   row.WentToOvertime,
		Notes:            row.Notes,
		AwayGoalieID:     nullInt64Ptr(row.AwayGoalieID),
		HomeGoalieID:     nullInt64Ptr(row.HomeGoalieID),
		AwayGoalieStatus: matchup.GoalieStatus(row.AwayGoalieStatus),
		HomeGoalieStatus: matchup.GoalieStatus(row.HomeGoalieStatus),
	}
}

type StatRepository struct {
	db *sqlx.DB
}

func NewStatRepository(db *sqlx.DB) *StatRepository {
	return &StatRepository{db: db}
}

func (r *StatRepository) ListByMatchup(ctx context.Context, matchupID int64) ([]stat.Stat, error) {
	query, args, err := qb.Select("id", "player_id", "team_id", "matchup_id", "goals", "assists", "goals_against", "empty_net").
		From("stats").
		Where(qb.Eq("matchup_id", matchupID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select stats query: %w", err)
	}

	var rows []statTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select stats matchup=%d: %w", matchupID, err)
	}
	out := make([]stat.Stat, 0, len(rows))
	for _, row := range rows {
		out = append(out, stat.Stat{
			ID:           row.ID,
			PlayerID:     row.PlayerID,
			TeamID:       row.TeamID,
			MatchUpID:    row.MatchUpID,
			Goals:        row.Goals,
			Assists:      row.Assists,
			GoalsAgainst: row.GoalsAgainst,
			EmptyNet:     row.EmptyNet,
		})
	}
	return out, nil
}

func (r *StatRepository) ReplaceForMatchup(ctx context.Context, matchupID int64, stats []stat.Stat) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace matchup stats: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.DeleteFrom("stats").Where(qb.Eq("matchup_id", matchupID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build clear matchup stats query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear matchup=%d stats: %w", matchupID, err)
	}

	for _, s := range stats {
		query, args, err := qb.InsertModel("stats", statTableModel{
			PlayerID:     s.PlayerID,
			TeamID:       s.TeamID,
			MatchUpID:    matchupID,
			Goals:        s.Goals,
			Assists:      s.Assists,
			GoalsAgainst: s.GoalsAgainst,
			EmptyNet:     s.EmptyNet,
		}, "")
		if err != nil {
			return fmt.Errorf("build insert stat query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert stat matchup=%d player=%d: %w", matchupID, s.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace matchup stats tx: %w", err)
	}
	return nil
}
