package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/street-hockey-league/internal/domain/division"
	"github.com/riskibarqy/street-hockey-league/internal/domain/season"
)

const recentSeasonsLimit = 5

type LeagueService struct {
	seasonRepo   season.Repository
	divisionRepo division.Repository
}

func NewLeagueService(seasonRepo season.Repository, divisionRepo division.Repository) *LeagueService {
	return &LeagueService{
		seasonRepo:   seasonRepo,
		divisionRepo: divisionRepo,
	}
}

func (s *LeagueService) ListSeasons(ctx context.Context) ([]season.Season, error) {
	seasons, err := s.seasonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	return seasons, nil
}

// RecentSeasons returns the five newest seasons by year then season type.
func (s *LeagueService) RecentSeasons(ctx context.Context) ([]season.Season, error) {
	seasons, err := s.ListSeasons(ctx)
	if err != nil {
		return nil, err
	}
	if len(seasons) > recentSeasonsLimit {
		seasons = seasons[:recentSeasonsLimit]
	}
	return seasons, nil
}

func (s *LeagueService) GetSeason(ctx context.Context, seasonID int64) (season.Season, error) {
	if seasonID <= 0 {
		return season.Season{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}
	item, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return season.Season{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: season=%d", ErrNotFound, seasonID)
	}

	return item, nil
}

// CurrentSeason returns the first season flagged current.
func (s *LeagueService) CurrentSeason(ctx context.Context) (season.Season, error) {
	item, exists, err := s.seasonRepo.Current(ctx)
	if err != nil {
		return season.Season{}, fmt.Errorf("get current season: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: no current season", ErrNotFound)
	}

	return item, nil
}

// CurrentSeasonForDivision returns the newest season with a team in the division.
func (s *LeagueService) CurrentSeasonForDivision(ctx context.Context, divisionID int64) (season.Season, error) {
	if divisionID <= 0 {
		return season.Season{}, fmt.Errorf("%w: division id is required", ErrInvalidInput)
	}
	item, exists, err := s.seasonRepo.CurrentForDivision(ctx, divisionID)
	if err != nil {
		return season.Season{}, fmt.Errorf("get current season for division: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: no season for division=%d", ErrNotFound, divisionID)
	}

	return item, nil
}

func (s *LeagueService) ListDivisions(ctx context.Context) ([]division.Division, error) {
	divisions, err := s.divisionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list divisions: %w", err)
	}

	return divisions, nil
}
