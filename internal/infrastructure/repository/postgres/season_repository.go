package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/street-hockey-league/internal/domain/division"
	"github.com/riskibarqy/street-hockey-league/internal/domain/season"
	qb "github.com/riskibarqy/street-hockey-league/internal/platform/querybuilder"
)

var seasonSelectColumns = []string{"s.id", "s.year", "s.season_type", "s.is_current_season"}

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	query, args, err := qb.Select(seasonSelectColumns...).From("seasons s").
		OrderBy("s.year DESC", "s.season_type DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select seasons query: %w", err)
	}
	return r.selectSeasons(ctx, query, args)
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID int64) (season.Season, bool, error) {
	query, args, err := qb.Select(seasonSelectColumns...).From("seasons s").
		Where(qb.Eq("s.id", seasonID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build select season query: %w", err)
	}
	return r.getSeason(ctx, query, args)
}

func (r *SeasonRepository) ListByIDs(ctx context.Context, seasonIDs []int64) ([]season.Season, error) {
	if len(seasonIDs) == 0 {
		return []season.Season{}, nil
	}
	query, args, err := qb.Select(seasonSelectColumns...).From("seasons s").
		Where(qb.InInt64("s.id", seasonIDs)).
		OrderBy("s.year DESC", "s.season_type DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select seasons by ids query: %w", err)
	}
	return r.selectSeasons(ctx, query, args)
}

func (r *SeasonRepository) Current(ctx context.Context) (season.Season, bool, error) {
	query, args, err := qb.Select(seasonSelectColumns...).From("seasons s").
		Where(qb.Eq("s.is_current_season", true)).
		OrderBy("s.id").
		Limit(1).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build select current season query: %w", err)
	}
	return r.getSeason(ctx, query, args)
}

func (r *SeasonRepository) CurrentForDivision(ctx context.Context, divisionID int64) (season.Season, bool, error) {
	query, args, err := qb.Select(seasonSelectColumns...).From("seasons s").
		Where(qb.Expr("EXISTS (SELECT 1 FROM teams t WHERE t.season_id = s.id AND t.division_id = ?)", divisionID)).
		OrderBy("s.year DESC", "s.season_type DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build select division season query: %w", err)
	}
	return r.getSeason(ctx, query, args)
}

func (r *SeasonRepository) FindByYearType(ctx context.Context, year int, seasonType season.Type) (season.Season, bool, error) {
	query, args, err := qb.Select(seasonSelectColumns...).From("seasons s").
		Where(qb.Eq("s.year", year), qb.Eq("s.season_type", int(seasonType))).
		Limit(1).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build select season by year query: %w", err)
	}
	return r.getSeason(ctx, query, args)
}

func (r *SeasonRepository) Create(ctx context.Context, s season.Season) (season.Season, error) {
	return insertSeason(ctx, r.db, s)
}

func (r *SeasonRepository) SetCurrent(ctx context.Context, seasonID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx set current season: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := setCurrentSeason(ctx, tx, seasonID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit set current season tx: %w", err)
	}
	return nil
}

func (r *SeasonRepository) selectSeasons(ctx context.Context, query string, args []any) ([]season.Season, error) {
	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select seasons: %w", err)
	}
	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, seasonFromRow(row))
	}
	return out, nil
}

func (r *SeasonRepository) getSeason(ctx context.Context, query string, args []any) (season.Season, bool, error) {
	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("get season: %w", err)
	}
	return seasonFromRow(row), true, nil
}

func insertSeason(ctx context.Context, db sqlx.ExtContext, s season.Season) (season.Season, error) {
	model := seasonTableModel{Year: s.Year, SeasonType: int(s.Type)}
	if s.IsCurrent != nil {
		model.IsCurrent = sql.NullBool{Bool: *s.IsCurrent, Valid: true}
	}
	query, args, err := qb.InsertModel("seasons", model, "RETURNING id")
	if err != nil {
		return season.Season{}, fmt.Errorf("build insert season query: %w", err)
	}
	if err := sqlx.GetContext(ctx, db, &s.ID, query, args...); err != nil {
		return season.Season{}, fmt.Errorf("insert season year=%d type=%d: %w", s.Year, s.Type, err)
	}
	return s, nil
}

// setCurrentSeason flags one season current and clears every other flag.
func setCurrentSeason(ctx context.Context, tx *sqlx.Tx, seasonID int64) error {
	clearQuery, clearArgs, err := qb.Update("seasons").
		Set("is_current_season", false).
		Where(qb.NotEq("id", seasonID), qb.Eq("is_current_season", true)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear current season query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear current seasons: %w", err)
	}

	setQuery, setArgs, err := qb.Update("seasons").
		Set("is_current_season", true).
		Where(qb.Eq("id", seasonID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build set current season query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, setQuery, setArgs...); err != nil {
		return fmt.Errorf("set current season=%d: %w", seasonID, err)
	}
	return nil
}

func seasonFromRow(row seasonTableModel) season.Season {
	out := season.Season{ID: row.ID, Year: row.Year, Type: season.Type(row.SeasonType)}
	if row.IsCurrent.Valid {
		current := row.IsCurrent.Bool
		out.IsCurrent = &current
	}
	return out
}

type DivisionRepository struct {
	db *sqlx.DB
}

func NewDivisionRepository(db *sqlx.DB) *DivisionRepository {
	return &DivisionRepository{db: db}
}

func (r *DivisionRepository) List(ctx context.Context) ([]division.Division, error) {
	query, args, err := qb.Select("id", "division").From("divisions").OrderBy("division", "id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select divisions query: %w", err)
	}
	var rows []divisionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select divisions: %w", err)
	}
	out := make([]division.Division, 0, len(rows))
	for _, row := range rows {
		out = append(out, division.Division{ID: row.ID, Number: row.Number})
	}
	return out, nil
}

func (r *DivisionRepository) GetByID(ctx context.Context, divisionID int64) (division.Division, bool, error) {
	query, args, err := qb.Select("id", "division").From("divisions").Where(qb.Eq("id", divisionID)).Limit(1).ToSQL()
	if err != nil {
		return division.Division{}, false, fmt.Errorf("build select division query: %w", err)
	}
	var row divisionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return division.Division{}, false, nil
		}
		return division.Division{}, false, fmt.Errorf("get division=%d: %w", divisionID, err)
	}
	return division.Division{ID: row.ID, Number: row.Number}, true, nil
}
