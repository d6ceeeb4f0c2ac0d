package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/street-hockey-league/internal/domain/player"
	"github.com/riskibarqy/street-hockey-league/internal/domain/roster"
	qb "github.com/riskibarqy/street-hockey-league/internal/platform/querybuilder"
)

var playerSelectColumns = []string{
	"p.id",
	"p.first_name",
	"p.last_name",
	"p.email",
	"p.gender",
	"p.is_active",
	"p.exclude_from_auto_deactivation",
	"p.photo_url",
	"p.created_at",
}

var everGoalieCondition = qb.Expr(
	"EXISTS (SELECT 1 FROM rosters gr WHERE gr.player_id = p.id AND (gr.position1 = ? OR gr.position2 = ?))",
	int(roster.PositionGoalie), int(roster.PositionGoalie),
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	return r.getOne(ctx, qb.Eq("p.id", playerID))
}

func (r *PlayerRepository) ListByIDs(ctx context.Context, playerIDs []int64) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return []player.Player{}, nil
	}
	return r.list(ctx, 0, qb.InInt64("p.id", playerIDs))
}

func (r *PlayerRepository) Search(ctx context.Context, name string, limit int) ([]player.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return r.list(ctx, limit)
	}
	return r.list(ctx, limit, nameContains(name))
}

func (r *PlayerRepository) ListGoalies(ctx context.Context, q player.GoalieQuery) ([]player.Player, error) {
	conditions := []qb.Condition{everGoalieCondition}
	if name := strings.TrimSpace(q.Name); name != "" {
		conditions = append(conditions, nameContains(name))
	}
	switch {
	case q.ActiveOnly && q.RosteredSinceYear > 0:
		conditions = append(conditions, qb.Or(
			qb.Eq("p.is_active", true),
			qb.Expr(`EXISTS (SELECT 1 FROM rosters yr
JOIN teams yt ON yt.id = yr.team_id
JOIN seasons ys ON ys.id = yt.season_id
WHERE yr.player_id = p.id AND ys.year >= ?)`, q.RosteredSinceYear),
		))
	case q.ActiveOnly:
		conditions = append(conditions, qb.Eq("p.is_active", true))
	}
	return r.list(ctx, 0, conditions...)
}

func (r *PlayerRepository) ListStatCandidates(ctx context.Context, teamIDs []int64, seasonID int64) ([]player.Player, error) {
	onTeams := qb.Expr("1=0")
	if len(teamIDs) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(teamIDs)), ", ")
		args := make([]any, 0, len(teamIDs)+1)
		for _, id := range teamIDs {
			args = append(args, id)
		}
		args = append(args, seasonID)
		onTeams = qb.Expr(`EXISTS (SELECT 1 FROM rosters sr
JOIN teams st ON st.id = sr.team_id
WHERE sr.player_id = p.id AND st.id IN (`+placeholders+`) AND st.season_id = ?)`, args...)
	}
	return r.list(ctx, 0, qb.Or(onTeams, everGoalieCondition))
}

func (r *PlayerRepository) FindByName(ctx context.Context, firstName, lastName string) (player.Player, bool, error) {
	return r.getOne(ctx, qb.Eq("p.first_name", firstName), qb.Eq("p.last_name", lastName))
}

func (r *PlayerRepository) ListByLastName(ctx context.Context, lastName string) ([]player.Player, error) {
	lastName = strings.TrimSpace(lastName)
	if lastName == "" {
		return r.list(ctx, 0)
	}
	return r.list(ctx, 0, qb.Expr("LOWER(p.last_name) = LOWER(?)", lastName))
}

func (r *PlayerRepository) ListDeactivationCandidates(ctx context.Context) ([]player.DeactivationCandidate, error) {
	columns := append(append([]string{}, playerSelectColumns...),
		"(SELECT MAX(ds.year) FROM rosters dr JOIN teams dt ON dt.id = dr.team_id JOIN seasons ds ON ds.id = dt.season_id WHERE dr.player_id = p.id) AS last_rostered_year",
		fmt.Sprintf("EXISTS (SELECT 1 FROM rosters gr WHERE gr.player_id = p.id AND (gr.position1 = %[1]d OR gr.position2 = %[1]d)) AS is_goalie", roster.PositionGoalie),
	)
	query, args, err := qb.Select(columns...).From("players p").
		Where(qb.Eq("p.is_active", true)).
		OrderBy("p.last_name", "p.first_name", "p.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select deactivation candidates query: %w", err)
	}

	var rows []deactivationCandidateRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select deactivation candidates: %w", err)
	}
	out := make([]player.DeactivationCandidate, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.DeactivationCandidate{
			Player:           playerFromRow(row.playerTableModel),
			LastRosteredYear: nullIntPtr(row.LastRosteredYear),
			IsGoalie:         row.IsGoalie,
		})
	}
	return out, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (player.Player, error) {
	query, args, err := qb.InsertModel("players", playerTableModel{
		FirstName:                   p.FirstName,
		LastName:                    p.LastName,
		Email:                       p.Email,
		Gender:                      string(p.Gender),
		IsActive:                    p.IsActive,
		ExcludeFromAutoDeactivation: p.ExcludeFromAutoDeactivation,
		PhotoURL:                    p.PhotoURL,
	}, "RETURNING id, created_at")
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}

	var created struct {
		ID        int64     `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		return player.Player{}, fmt.Errorf("insert player %q: %w", p.FullName(), err)
	}
	p.ID, p.CreatedAt = created.ID, created.CreatedAt
	return p, nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) error {
	query, args, err := qb.UpdateModel("players", playerUpdateModel{
		FirstName:                   p.FirstName,
		LastName:                    p.LastName,
		Email:                       p.Email,
		Gender:                      string(p.Gender),
		IsActive:                    p.IsActive,
		ExcludeFromAutoDeactivation: p.ExcludeFromAutoDeactivation,
		PhotoURL:                    p.PhotoURL,
		UpdatedAt:                   time.Now().UTC(),
	}, qb.Eq("id", p.ID))
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update player=%d: %w", p.ID, err)
	}
	return nil
}

func (r *PlayerRepository) Deactivate(ctx context.Context, playerIDs []int64) (int, error) {
	if len(playerIDs) == 0 {
		return 0, nil
	}
	query, args, err := qb.Update("players").
		Set("is_active", false).
		SetExpr("updated_at", "NOW()").
		Where(qb.InInt64("id", playerIDs), qb.Eq("is_active", true)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build deactivate players query: %w", err)
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("deactivate players: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("deactivate players rows affected: %w", err)
	}
	return int(affected), nil
}

func (r *PlayerRepository) getOne(ctx context.Context, conditions ...qb.Condition) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players p").
		Where(conditions...).
		OrderBy("p.id").
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}
	return playerFromRow(row), true, nil
}

// list orders by last then first name. limit 0 means no limit.
func (r *PlayerRepository) list(ctx context.Context, limit int, conditions ...qb.Condition) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players p").
		Where(conditions...).
		OrderBy("p.last_name", "p.first_name", "p.id").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}
	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func nameContains(name string) qb.Condition {
	return qb.Or(qb.ILike("p.first_name", name), qb.ILike("p.last_name", name))
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:                          row.ID,
		FirstName:                   row.FirstName,
		LastName:                    row.LastName,
		Email:                       row.Email,
		Gender:                      player.Gender(row.Gender),
		IsActive:                    row.IsActive,
		ExcludeFromAutoDeactivation: row.ExcludeFromAutoDeactivation,
		PhotoURL:                    row.PhotoURL,
		CreatedAt:                   row.CreatedAt,
	}
}
