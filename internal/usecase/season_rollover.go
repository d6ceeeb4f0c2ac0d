package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/street-hockey-league/internal/domain/matchup"
	"github.com/riskibarqy/street-hockey-league/internal/domain/player"
	"github.com/riskibarqy/street-hockey-league/internal/domain/roster"
	"github.com/riskibarqy/street-hockey-league/internal/domain/season"
)

type SeasonRolloverInput struct {
	FromSeasonID int64
	Year         int
	Type         season.Type
	MakeCurrent  bool
}

type SeasonRolloverResult struct {
	Season       season.Season `json:"-"`
	SeasonReused bool          `json:"season_reused"`
	TeamsCopied  int           `json:"teams_copied"`
	RosterCopied int           `json:"roster_entries_copied"`
	MadeCurrent  bool          `json:"made_current"`
}

// SeasonRolloverStore copies a season's active teams and regular roster
// into a target season inside one transaction.
type SeasonRolloverStore interface {
	Rollover(ctx context.Context, input SeasonRolloverInput, newCode func() (string, error)) (SeasonRolloverResult, error)
}

type QuickAddGoalieInput struct {
	FirstName string
	LastName  string
	Email     string
	TeamID    int64
	MatchUpID *int64
}

type QuickAddGoalieResult struct {
	Player        player.Player
	PlayerCreated bool
	RosterEntry   roster.Entry
	MatchUpID     *int64
	Side          matchup.Side
}

// SeasonRollover starts a new season from an existing one.
func (s *AdminService) SeasonRollover(ctx context.Context, input SeasonRolloverInput) (SeasonRolloverResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.SeasonRollover")
	defer span.End()

	if input.FromSeasonID <= 0 {
		return SeasonRolloverResult{}, fmt.Errorf("%w: source season is required", ErrInvalidInput)
	}
	target := season.Season{Year: input.Year, Type: input.Type}
	if err := target.Validate(); err != nil {
		return SeasonRolloverResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if _, err := s.league.GetSeason(ctx, input.FromSeasonID); err != nil {
		return SeasonRolloverResult{}, err
	}
	if s.rollover == nil {
		return SeasonRolloverResult{}, fmt.Errorf("%w: season rollover store is not configured", ErrDependencyUnavailable)
	}

	result, err := s.rollover.Rollover(ctx, input, s.codes.NewCode)
	if err != nil {
		return SeasonRolloverResult{}, fmt.Errorf("rollover season=%d: %w", input.FromSeasonID, err)
	}
	s.logger.InfoContext(ctx, "season rolled over",
		"from_season_id", input.FromSeasonID,
		"season_id", result.Season.ID,
		"season_reused", result.SeasonReused,
		"teams_copied", result.TeamsCopied,
		"roster_copied", result.RosterCopied,
		"made_current", result.MadeCurrent,
	)
	return result, nil
}

// QuickAddGoalieSub puts a substitute goalie on a team and, when a matchup
// is given, confirms them in net for the team's side.
func (s *AdminService) QuickAddGoalieSub(ctx context.Context, input QuickAddGoalieInput) (QuickAddGoalieResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.QuickAddGoalieSub")
	defer span.End()

	first := strings.TrimSpace(input.FirstName)
	last := strings.TrimSpace(input.LastName)
	if input.TeamID <= 0 {
		return QuickAddGoalieResult{}, fmt.Errorf("%w: team is required", ErrInvalidInput)
	}
	if _, exists, err := s.teamRepo.GetByID(ctx, input.TeamID); err != nil {
		return QuickAddGoalieResult{}, fmt.Errorf("get team: %w", err)
	} else if !exists {
		return QuickAddGoalieResult{}, fmt.Errorf("%w: team=%d", ErrNotFound, input.TeamID)
	}

	var (
		target matchup.MatchUp
		side   matchup.Side
	)
	if input.MatchUpID != nil {
		m, exists, err := s.matchupRepo.GetByID(ctx, *input.MatchUpID)
		if err != nil {
			return QuickAddGoalieResult{}, fmt.Errorf("get matchup: %w", err)
		}
		if !exists {
			return QuickAddGoalieResult{}, fmt.Errorf("%w: matchup=%d", ErrNotFound, *input.MatchUpID)
		}
		var ok bool
		side, ok = m.SideOf(input.TeamID)
		if !ok {
			return QuickAddGoalieResult{}, fmt.Errorf("%w: team=%d is not playing in matchup=%d", ErrInvalidInput, input.TeamID, m.ID)
		}
		target = m
	}

	candidate := player.Player{
		FirstName: first,
		LastName:  last,
		Email:     strings.TrimSpace(input.Email),
		Gender:    player.GenderNotGiven,
		IsActive:  true,
	}
	if err := candidate.Validate(); err != nil {
		return QuickAddGoalieResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	result := QuickAddGoalieResult{MatchUpID: input.MatchUpID, Side: side}
	existing, found, err := s.playerRepo.FindByName(ctx, first, last)
	if err != nil {
		return QuickAddGoalieResult{}, fmt.Errorf("find player: %w", err)
	}
	if found {
		result.Player = existing
	} else {
		created, err := s.playerRepo.Create(ctx, candidate)
		if err != nil {
			return QuickAddGoalieResult{}, fmt.Errorf("create player: %w", err)
		}
		result.Player = created
		result.PlayerCreated = true
	}

	entry, err := s.rosterRepo.Create(ctx, roster.Entry{
		PlayerID:     result.Player.ID,
		TeamID:       input.TeamID,
		Position1:    roster.PositionGoalie,
		IsSubstitute: true,
	})
	if err != nil {
		return QuickAddGoalieResult{}, fmt.Errorf("create roster entry: %w", err)
	}
	result.RosterEntry = entry

	if input.MatchUpID != nil {
		goalieID := result.Player.ID
		if err := s.matchupRepo.UpdateGoalie(ctx, target.ID, side, &goalieID, matchup.GoalieConfirmed); err != nil {
			return QuickAddGoalieResult{}, fmt.Errorf("update matchup=%d goalie: %w", target.ID, err)
		}
	}

	s.logger.InfoContext(ctx, "goalie sub added",
		"player_id", result.Player.ID,
		"player_created", result.PlayerCreated,
		"team_id", input.TeamID,
	)
	return result, nil
}
