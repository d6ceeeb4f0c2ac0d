package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/street-hockey-league/internal/domain/referee"
	"github.com/riskibarqy/street-hockey-league/internal/domain/team"
	qb "github.com/riskibarqy/street-hockey-league/internal/platform/querybuilder"
)

var teamSelectColumns = []string{
	"t.id",
	"t.team_name",
	"t.team_color",
	"t.is_active",
	"t.is_champ",
	"t.division_id",
	"t.season_id",
	"t.captain_access_code",
	"t.team_photo_url",
}

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	return r.getOne(ctx, qb.Eq("t.id", teamID))
}

func (r *TeamRepository) GetActiveByAccessCode(ctx context.Context, code string) (team.Team, bool, error) {
	if code == "" {
		return team.Team{}, false, nil
	}
	return r.getOne(ctx, qb.Eq("t.captain_access_code", code), qb.Eq("t.is_active", true))
}

func (r *TeamRepository) ListByIDs(ctx context.Context, teamIDs []int64) ([]team.Team, error) {
	if len(teamIDs) == 0 {
		return []team.Team{}, nil
	}
	return r.list(ctx, team.ListFilter{}, qb.InInt64("t.id", teamIDs))
}

func (r *TeamRepository) List(ctx context.Context, filter team.ListFilter) ([]team.Team, error) {
	return r.list(ctx, filter)
}

func (r *TeamRepository) list(ctx context.Context, filter team.ListFilter, extra ...qb.Condition) ([]team.Team, error) {
	conditions := append([]qb.Condition{}, extra...)
	if filter.SeasonID != nil {
		conditions = append(conditions, qb.Eq("t.season_id", *filter.SeasonID))
	}
	if filter.DivisionID != nil {
		conditions = append(conditions, qb.Eq("t.division_id", *filter.DivisionID))
	}
	if filter.ActiveOnly {
		conditions = append(conditions, qb.Eq("t.is_active", true))
	}
	if filter.ChampionsOnly {
		conditions = append(conditions, qb.Eq("t.is_champ", true))
	}
	if filter.CurrentSeasonOnly {
		conditions = append(conditions, qb.Expr("EXISTS (SELECT 1 FROM seasons s WHERE s.id = t.season_id AND s.is_current_season = TRUE)"))
	}

	query, args, err := qb.Select(teamSelectColumns...).From("teams t").
		LeftJoin("divisions d", "d.id = t.division_id").
		Where(conditions...).
		OrderBy("d.division NULLS LAST", "t.team_name", "t.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}
	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}
	return out, nil
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) (team.Team, error) {
	return insertTeam(ctx, r.db, t)
}

func (r *TeamRepository) Update(ctx context.Context, t team.Team) error {
	query, args, err := qb.UpdateModel("teams", teamUpdateModel{
		Name:       t.Name,
		Color:      t.Color,
		IsActive:   t.IsActive,
		IsChampion: t.IsChampion,
		DivisionID: int64PtrToNull(t.DivisionID),
		SeasonID:   int64PtrToNull(t.SeasonID),
		AccessCode: t.AccessCode,
		PhotoURL:   t.PhotoURL,
		UpdatedAt:  time.Now().UTC(),
	}, qb.Eq("id", t.ID))
	if err != nil {
		return fmt.Errorf("build update team query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update team=%d: %w", t.ID, err)
	}
	return nil
}

func (r *TeamRepository) getOne(ctx context.Context, conditions ...qb.Condition) (team.Team, bool, error) {
	query, args, err := qb.Select(teamSelectColumns...).From("teams t").
		Where(conditions...).
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team: %w", err)
	}
	return teamFromRow(row), true, nil
}

func insertTeam(ctx context.Context, db sqlx.ExtContext, t team.Team) (team.Team, error) {
	query, args, err := qb.InsertModel("teams", teamTableModel{
		Name:       t.Name,
		Color:      t.Color,
		IsActive:   t.IsActive,
		IsChampion: t.IsChampion,
		DivisionID: int64PtrToNull(t.DivisionID),
		SeasonID:   int64PtrToNull(t.SeasonID),
		AccessCode: t.AccessCode,
		PhotoURL:   t.PhotoURL,
	}, "RETURNING id")
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team query: %w", err)
	}
	if err := sqlx.GetContext(ctx, db, &t.ID, query, args...); err != nil {
		return team.Team{}, fmt.Errorf("insert team %q: %w", t.Name, err)
	}
	return t, nil
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:         row.ID,
		Name:       row.Name,
		Color:      row.Color,
		IsActive:   row.IsActive,
		IsChampion: row.IsChampion,
		DivisionID: nullInt64Ptr(row.DivisionID),
		SeasonID:   nullInt64Ptr(row.SeasonID),
		AccessCode: row.AccessCode,
		PhotoURL:   row.PhotoURL,
	}
}

type RefRepository struct {
	db *sqlx.DB
}

func NewRefRepository(db *sqlx.DB) *RefRepository {
	return &RefRepository{db: db}
}

func (r *RefRepository) ListByIDs(ctx context.Context, refIDs []int64) ([]referee.Ref, error) {
	if len(refIDs) == 0 {
		return []referee.Ref{}, nil
	}
	query, args, err := qb.Select("id", "first_name", "last_name", "player_id").From("refs").
		Where(qb.InInt64("id", refIDs)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select refs query: %w", err)
	}

	var rows []refTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select refs: %w", err)
	}
	out := make([]referee.Ref, 0, len(rows))
	for _, row := range rows {
		out = append(out, referee.Ref{
			ID:        row.ID,
			FirstName: row.FirstName,
			LastName:  row.LastName,
			PlayerID:  nullInt64Ptr(row.PlayerID),
		})
	}
	return out, nil
}
