package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/street-hockey-league/internal/domain/roster"
	qb "github.com/riskibarqy/street-hockey-league/internal/platform/querybuilder"
)

var rosterSelectColumns = []string{
	"r.id",
	"r.player_id",
	"r.team_id",
	"r.position1",
	"r.position2",
	"r.player_number",
	"r.is_captain",
	"r.is_substitute",
	"r.is_primary_goalie",
}

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) GetByID(ctx context.Context, entryID int64) (roster.Entry, bool, error) {
	query, args, err := qb.Select(rosterSelectColumns...).From("rosters r").
		Where(qb.Eq("r.id", entryID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return roster.Entry{}, false, fmt.Errorf("build select roster entry query: %w", err)
	}

	var row rosterTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return roster.Entry{}, false, nil
		}
		return roster.Entry{}, false, fmt.Errorf("get roster entry=%d: %w", entryID, err)
	}
	return rosterFromRow(row), true, nil
}

func (r *RosterRepository) ListByTeams(ctx context.Context, teamIDs []int64) ([]roster.Entry, error) {
	if len(teamIDs) == 0 {
		return []roster.Entry{}, nil
	}
	query, args, err := qb.Select(rosterSelectColumns...).From("rosters r").
		Where(qb.InInt64("r.team_id", teamIDs)).
		OrderBy("r.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select roster by teams query: %w", err)
	}

	var rows []rosterTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select roster by teams: %w", err)
	}
	out := make([]roster.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, rosterFromRow(row))
	}
	return out, nil
}

func (r *RosterRepository) ListSeasonsByPlayer(ctx context.Context, playerID int64, limit int) ([]roster.PlayerSeason, error) {
	query, args, err := qb.Select(
		"r.id AS entry_id",
		"t.id AS team_id",
		"t.team_name",
		"s.id AS season_id",
		"s.year AS season_year",
		"s.season_type",
		"r.is_captain",
	).From("rosters r").
		Join("teams t", "t.id = r.team_id").
		Join("seasons s", "s.id = t.season_id").
		Where(qb.Eq("r.player_id", playerID)).
		OrderBy("s.year DESC", "s.season_type DESC", "r.id DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player seasons query: %w", err)
	}

	var rows []playerSeasonRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player seasons player=%d: %w", playerID, err)
	}
	out := make([]roster.PlayerSeason, 0, len(rows))
	for _, row := range rows {
		out = append(out, roster.PlayerSeason{
			EntryID:    row.EntryID,
			TeamID:     row.TeamID,
			TeamName:   row.TeamName,
			SeasonID:   row.SeasonID,
			SeasonYear: row.SeasonYear,
			SeasonType: row.SeasonType,
			IsCaptain:  row.IsCaptain,
		})
	}
	return out, nil
}

func (r *RosterRepository) CountByPlayers(ctx context.Context, playerIDs []int64) (map[int64]int, error) {
	out := make(map[int64]int, len(playerIDs))
	if len(playerIDs) == 0 {
		return out, nil
	}
	query, args, err := qb.Select("player_id", "COUNT(*) AS entries").From("rosters").
		Where(qb.InInt64("player_id", playerIDs)).
		GroupBy("player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build count roster entries query: %w", err)
	}

	var rows []playerCountRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("count roster entries: %w", err)
	}
	for _, row := range rows {
		out[row.PlayerID] = row.Count
	}
	return out, nil
}

func (r *RosterRepository) CurrentSeasonPlayerIDs(ctx context.Context) ([]int64, error) {
	query, args, err := qb.Select("r.player_id").Distinct().From("rosters r").
		Join("teams t", "t.id = r.team_id").
		Join("seasons s", "s.id = t.season_id").
		Where(qb.Eq("s.is_current_season", true)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select current season players query: %w", err)
	}

	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("select current season players: %w", err)
	}
	return ids, nil
}

func (r *RosterRepository) Create(ctx context.Context, e roster.Entry) (roster.Entry, error) {
	return insertRosterEntry(ctx, r.db, e)
}

func (r *RosterRepository) Update(ctx context.Context, e roster.Entry) error {
	query, args, err := qb.UpdateModel("rosters", rosterModelFrom(e), qb.Eq("id", e.ID))
	if err != nil {
		return fmt.Errorf("build update roster entry query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update roster entry=%d: %w", e.ID, err)
	}
	return nil
}

func (r *RosterRepository) Delete(ctx context.Context, entryID int64) error {
	query, args, err := qb.DeleteFrom("rosters").Where(qb.Eq("id", entryID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete roster entry query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete roster entry=%d: %w", entryID, err)
	}
	return nil
}

func insertRosterEntry(ctx context.Context, db sqlx.ExtContext, e roster.Entry) (roster.Entry, error) {
	query, args, err := qb.InsertModel("rosters", rosterModelFrom(e), "RETURNING id")
	if err != nil {
		return roster.Entry{}, fmt.Errorf("build insert roster entry query: %w", err)
	}
	if err := sqlx.GetContext(ctx, db, &e.ID, query, args...); err != nil {
		return roster.Entry{}, fmt.Errorf("insert roster entry player=%d team=%d: %w", e.PlayerID, e.TeamID, err)
	}
	return e, nil
}

func rosterModelFrom(e roster.Entry) rosterTableModel {
	model := rosterTableModel{
		PlayerID:        e.PlayerID,
		TeamID:          e.TeamID,
		Position1:       int(e.Position1),
		PlayerNumber:    intPtrToNull(e.PlayerNumber),
		IsCaptain:       e.IsCaptain,
		IsSubstitute:    e.IsSubstitute,
		IsPrimaryGoalie: e.IsPrimaryGoalie,
	}
	if e.Position2 != nil {
		p := int(*e.Position2)
		model.Position2 = intPtrToNull(&p)
	}
	return model
}

func rosterFromRow(row rosterTableModel) roster.Entry {
	e := roster.Entry{
		ID:              row.ID,
		PlayerID:        row.PlayerID,
		TeamID:          row.TeamID,
		Position1:       roster.Position(row.Position1),
		PlayerNumber:    nullIntPtr(row.PlayerNumber),
		IsCaptain:       row.IsCaptain,
		IsSubstitute:    row.IsSubstitute,
		IsPrimaryGoalie: row.IsPrimaryGoalie,
	}
	if p := nullIntPtr(row.Position2); p != nil {
		pos := roster.Position(*p)
		e.Position2 = &pos
	}
	return e
}
