package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/street-hockey-league/internal/domain/week"
	qb "github.com/riskibarqy/street-hockey-league/internal/platform/querybuilder"
)

const weekReturningColumns = "RETURNING id, division_id, season_id, date, is_cancelled"

var weekSelectColumns = []string{"w.id", "w.division_id", "w.season_id", "w.date", "w.is_cancelled"}

type WeekRepository struct {
	db *sqlx.DB
}

func NewWeekRepository(db *sqlx.DB) *WeekRepository {
	return &WeekRepository{db: db}
}

func (r *WeekRepository) GetByID(ctx context.Context, weekID int64) (week.Week, bool, error) {
	query, args, err := qb.Select(weekSelectColumns...).From("weeks w").
		Where(qb.Eq("w.id", weekID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return week.Week{}, false, fmt.Errorf("build select week query: %w", err)
	}

	var row weekTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return week.Week{}, false, nil
		}
		return week.Week{}, false, fmt.Errorf("get week=%d: %w", weekID, err)
	}
	return weekFromRow(row), true, nil
}

func (r *WeekRepository) ListByIDs(ctx context.Context, weekIDs []int64) ([]week.Week, error) {
	if len(weekIDs) == 0 {
		return []week.Week{}, nil
	}
	return r.list(ctx, week.ListFilter{}, qb.InInt64("w.id", weekIDs))
}

func (r *WeekRepository) List(ctx context.Context, filter week.ListFilter) ([]week.Week, error) {
	return r.list(ctx, filter)
}

func (r *WeekRepository) list(ctx context.Context, filter week.ListFilter, extra ...qb.Condition) ([]week.Week, error) {
	conditions := append([]qb.Condition{}, extra...)
	if filter.SeasonID != nil {
		conditions = append(conditions, qb.Eq("w.season_id", *filter.SeasonID))
	}
	if filter.DivisionID != nil {
		conditions = append(conditions, qb.Eq("w.division_id", *filter.DivisionID))
	}
	if !filter.From.IsZero() {
		conditions = append(conditions, qb.Gte("w.date", dateArg(filter.From)))
	}
	if !filter.To.IsZero() {
		conditions = append(conditions, qb.Lte("w.date", dateArg(filter.To)))
	}
	if len(filter.Dates) > 0 {
		dates := make([]any, 0, len(filter.Dates))
		for _, d := range filter.Dates {
			dates = append(dates, dateArg(d))
		}
		conditions = append(conditions, qb.In("w.date", dates))
	}
	if filter.CancelledOnly {
		conditions = append(conditions, qb.Eq("w.is_cancelled", true))
	}

	query, args, err := qb.Select(weekSelectColumns...).From("weeks w").
		Join("divisions d", "d.id = w.division_id").
		Where(conditions...).
		OrderBy("w.date", "d.division", "w.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select weeks query: %w", err)
	}

	var rows []weekTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select weeks: %w", err)
	}
	out := make([]week.Week, 0, len(rows))
	for _, row := range rows {
		out = append(out, weekFromRow(row))
	}
	return out, nil
}

func (r *WeekRepository) NextDates(ctx context.Context, from time.Time, strict bool, limit int) ([]time.Time, error) {
	cond := qb.Gte("date", dateArg(from))
	if strict {
		cond = qb.Gt("date", dateArg(from))
	}
	query, args, err := qb.Select("date").Distinct().From("weeks").
		Where(cond).
		OrderBy("date").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select next week dates query: %w", err)
	}

	var rows []time.Time
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select next week dates: %w", err)
	}
	out := make([]time.Time, 0, len(rows))
	for _, d := range rows {
		out = append(out, week.Day(d))
	}
	return out, nil
}

func (r *WeekRepository) Create(ctx context.Context, w week.Week) (week.Week, error) {
	query, args, err := qb.InsertModel("weeks", weekInsertModel{
		DivisionID:  w.DivisionID,
		SeasonID:    w.SeasonID,
		Date:        dateArg(w.Date),
		IsCancelled: w.IsCancelled,
	}, weekReturningColumns)
	if err != nil {
		return week.Week{}, fmt.Errorf("build insert week query: %w", err)
	}

	var row weekTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return week.Week{}, fmt.Errorf("insert week division=%d date=%s: %w", w.DivisionID, dateArg(w.Date), err)
	}
	return weekFromRow(row), nil
}

func (r *WeekRepository) Toggle(ctx context.Context, weekID int64) (week.Week, error) {
	query, args, err := qb.Update("weeks").
		SetExpr("is_cancelled", "NOT is_cancelled").
		Where(qb.Eq("id", weekID)).
		Suffix(weekReturningColumns).
		ToSQL()
	if err != nil {
		return week.Week{}, fmt.Errorf("build toggle week query: %w", err)
	}

	var row weekTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return week.Week{}, fmt.Errorf("toggle week=%d: %w", weekID, err)
	}
	return weekFromRow(row), nil
}

func (r *WeekRepository) SetCancelled(ctx context.Context, weekIDs []int64, cancelled bool) (int, error) {
	if len(weekIDs) == 0 {
		return 0, nil
	}
	query, args, err := qb.Update("weeks").
		Set("is_cancelled", cancelled).
		Where(qb.InInt64("id", weekIDs)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build set weeks cancelled query: %w", err)
	}
	return r.exec(ctx, query, args)
}

func (r *WeekRepository) SetCancelledOnDate(ctx context.Context, date time.Time, cancelled bool) (int, error) {
	query, args, err := qb.Update("weeks").
		Set("is_cancelled", cancelled).
		Where(qb.Eq("date", dateArg(date))).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build set date cancelled query: %w", err)
	}
	return r.exec(ctx, query, args)
}

func (r *WeekRepository) exec(ctx context.Context, query string, args []any) (int, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("update weeks: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("weeks rows affected: %w", err)
	}
	return int(affected), nil
}

func weekFromRow(row weekTableModel) week.Week {
	return week.Week{
		ID:          row.ID,
		DivisionID:  row.DivisionID,
		SeasonID:    row.SeasonID,
		Date:        week.Day(row.Date),
		IsCancelled: row.IsCancelled,
	}
}
