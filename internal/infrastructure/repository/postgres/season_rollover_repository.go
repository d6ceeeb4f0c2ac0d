package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/street-hockey-league/internal/domain/season"
	"github.com/riskibarqy/street-hockey-league/internal/domain/team"
	qb "github.com/riskibarqy/street-hockey-league/internal/platform/querybuilder"
	"github.com/riskibarqy/street-hockey-league/internal/usecase"
)

type SeasonRolloverRepository struct {
	db *sqlx.DB
}

func NewSeasonRolloverRepository(db *sqlx.DB) *SeasonRolloverRepository {
	return &SeasonRolloverRepository{db: db}
}

func (r *SeasonRolloverRepository) Rollover(ctx context.Context, input usecase.SeasonRolloverInput, newCode func() (string, error)) (usecase.SeasonRolloverResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return usecase.SeasonRolloverResult{}, fmt.Errorf("begin tx season rollover: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var result usecase.SeasonRolloverResult
	target, reused, err := findSeasonTx(ctx, tx, input.Year, input.Type)
	if err != nil {
		return usecase.SeasonRolloverResult{}, err
	}
	if !reused {
		target, err = insertSeason(ctx, tx, season.Season{Year: input.Year, Type: input.Type})
		if err != nil {
			return usecase.SeasonRolloverResult{}, err
		}
	}
	result.Season = target
	result.SeasonReused = reused

	teamsQuery, teamsArgs, err := qb.Select(teamSelectColumns...).From("teams t").
		Where(qb.Eq("t.season_id", input.FromSeasonID), qb.Eq("t.is_active", true)).
		OrderBy("t.id").
		ToSQL()
	if err != nil {
		return usecase.SeasonRolloverResult{}, fmt.Errorf("build select rollover teams query: %w", err)
	}
	var teamRows []teamTableModel
	if err := tx.SelectContext(ctx, &teamRows, teamsQuery, teamsArgs...); err != nil {
		return usecase.SeasonRolloverResult{}, fmt.Errorf("select teams season=%d: %w", input.FromSeasonID, err)
	}

	newTeamIDs := make(map[int64]int64, len(teamRows))
	sourceIDs := make([]int64, 0, len(teamRows))
	for _, row := range teamRows {
		code, err := newCode()
		if err != nil {
			return usecase.SeasonRolloverResult{}, fmt.Errorf("generate access code: %w", err)
		}
		source := teamFromRow(row)
		seasonID := target.ID
		created, err := insertTeam(ctx, tx, team.Team{
			Name:       source.Name,
			Color:      source.Color,
			IsActive:   true,
			DivisionID: source.DivisionID,
			SeasonID:   &seasonID,
			AccessCode: code,
		})
		if err != nil {
			return usecase.SeasonRolloverResult{}, err
		}
		newTeamIDs[source.ID] = created.ID
		sourceIDs = append(sourceIDs, source.ID)
	}
	result.TeamsCopied = len(newTeamIDs)

	if len(sourceIDs) > 0 {
		rosterQuery, rosterArgs, err := qb.Select(rosterSelectColumns...).From("rosters r").
			Where(qb.InInt64("r.team_id", sourceIDs), qb.Eq("r.is_substitute", false)).
			OrderBy("r.id").
			ToSQL()
		if err != nil {
			return usecase.SeasonRolloverResult{}, fmt.Errorf("build select rollover roster query: %w", err)
		}
		var rosterRows []rosterTableModel
		if err := tx.SelectContext(ctx, &rosterRows, rosterQuery, rosterArgs...); err != nil {
			return usecase.SeasonRolloverResult{}, fmt.Errorf("select rollover roster: %w", err)
		}
		for _, row := range rosterRows {
			entry := rosterFromRow(row)
			entry.ID = 0
			entry.TeamID = newTeamIDs[row.TeamID]
			if _, err := insertRosterEntry(ctx, tx, entry); err != nil {
				return usecase.SeasonRolloverResult{}, err
			}
			result.RosterCopied++
		}
	}

	if input.MakeCurrent {
		if err := setCurrentSeason(ctx, tx, target.ID); err != nil {
			return usecase.SeasonRolloverResult{}, err
		}
		current := true
		result.Season.IsCurrent = &current
		result.MadeCurrent = true
	}

	if err := tx.Commit(); err != nil {
		return usecase.SeasonRolloverResult{}, fmt.Errorf("commit season rollover: %w", err)
	}
	return result, nil
}

func findSeasonTx(ctx context.Context, tx *sqlx.Tx, year int, seasonType season.Type) (season.Season, bool, error) {
	query, args, err := qb.Select(seasonSelectColumns...).From("seasons s").
		Where(qb.Eq("s.year", year), qb.Eq("s.season_type", int(seasonType))).
		Limit(1).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build select season by year query: %w", err)
	}
	var row seasonTableModel
	if err := tx.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("get season year=%d type=%d: %w", year, seasonType, err)
	}
	return seasonFromRow(row), true, nil
}
