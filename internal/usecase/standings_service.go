package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/street-hockey-league/internal/domain/division"
	"github.com/riskibarqy/street-hockey-league/internal/domain/matchup"
	"github.com/riskibarqy/street-hockey-league/internal/domain/season"
	"github.com/riskibarqy/street-hockey-league/internal/domain/standing"
	"github.com/riskibarqy/street-hockey-league/internal/domain/teamstat"
)

// DivisionStandings is one division's ranked table.
type DivisionStandings struct {
	Division division.Division
	Rows     []standing.Row
}

type StandingsService struct {
	seasonRepo   season.Repository
	divisionRepo division.Repository
	teamStatRepo teamstat.Repository
	matchupRepo  matchup.Repository
}

func NewStandingsService(
	seasonRepo season.Repository,
	divisionRepo division.Repository,
	teamStatRepo teamstat.Repository,
	matchupRepo matchup.Repository,
) *StandingsService {
	return &StandingsService{
		seasonRepo:   seasonRepo,
		divisionRepo: divisionRepo,
		teamStatRepo: teamStatRepo,
		matchupRepo:  matchupRepo,
	}
}

func (s *StandingsService) ListByDivision(ctx context.Context, seasonID, divisionID int64) ([]standing.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.ListByDivision")
	defer span.End()

	if seasonID <= 0 || divisionID <= 0 {
		return nil, fmt.Errorf("%w: season id and division id are required", ErrInvalidInput)
	}
	if err := s.ensureSeason(ctx, seasonID); err != nil {
		return nil, err
	}

	records, err := s.teamStatRepo.ListRecords(ctx, seasonID, &divisionID)
	if err != nil {
		return nil, fmt.Errorf("list team records season=%d division=%d: %w", seasonID, divisionID, err)
	}
	h2h, err := s.headToHead(ctx, seasonID, &divisionID)
	if err != nil {
		return nil, err
	}

	return standing.Rank(rowsFromRecords(records), h2h), nil
}

// ListBySeason ranks every division of the season, in division order.
// Divisions without records are left out.
func (s *StandingsService) ListBySeason(ctx context.Context, seasonID int64) ([]DivisionStandings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.ListBySeason")
	defer span.End()

	if seasonID <= 0 {
		return nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}
	if err := s.ensureSeason(ctx, seasonID); err != nil {
		return nil, err
	}

	divisions, err := s.divisionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list divisions: %w", err)
	}
	records, err := s.teamStatRepo.ListRecords(ctx, seasonID, nil)
	if err != nil {
		return nil, fmt.Errorf("list team records season=%d: %w", seasonID, err)
	}
	h2h, err := s.headToHead(ctx, seasonID, nil)
	if err != nil {
		return nil, err
	}

	byDivision := make(map[int64][]standing.Row, len(divisions))
	for _, row := range rowsFromRecords(records) {
		byDivision[row.DivisionID] = append(byDivision[row.DivisionID], row)
	}

	out := make([]DivisionStandings, 0, len(divisions))
	for _, d := range divisions {
		rows, ok := byDivision[d.ID]
		if !ok {
			continue
		}
		out = append(out, DivisionStandings{Division: d, Rows: standing.Rank(rows, h2h)})
	}
	return out, nil
}

func (s *StandingsService) ensureSeason(ctx context.Context, seasonID int64) error {
	_, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: season=%d", ErrNotFound, seasonID)
	}
	return nil
}

func (s *StandingsService) headToHead(ctx context.Context, seasonID int64, divisionID *int64) (standing.HeadToHead, error) {
	regular := false
	results, err := s.matchupRepo.ListResults(ctx, matchup.ResultFilter{
		SeasonID:   seasonID,
		DivisionID: divisionID,
		Postseason: &regular,
		PlayedOnly: true,
	})
	if err != nil {
		return standing.HeadToHead{}, fmt.Errorf("list regular season results season=%d: %w", seasonID, err)
	}

	games := make([]standing.Game, 0, len(results))
	for _, r := range results {
		games = append(games, standing.Game{
			HomeTeamID: r.HomeTeamID,
			AwayTeamID: r.AwayTeamID,
			HomeGoals:  r.HomeGoals,
			AwayGoals:  r.AwayGoals,
		})
	}
	return standing.NewHeadToHead(games), nil
}

func rowsFromRecords(records []teamstat.Record) []standing.Row {
	rows := make([]standing.Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, standing.Row{
			TeamID:     r.TeamID,
			TeamName:   r.TeamName,
			DivisionID: r.DivisionID,
			Record:     r.TeamStat,
		})
	}
	return rows
}
