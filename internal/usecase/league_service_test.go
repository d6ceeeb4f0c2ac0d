package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/street-hockey-league/internal/domain/season"
	divisionmock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/division"
	seasonmock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/season"
)

func TestLeagueService_RecentSeasonsCapsAtFive(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seasons := seasonmock.NewRepository(t)
	all := make([]season.Season, 0, 7)
	for i := 0; i < 7; i++ {
		all = append(all, season.Season{ID: int64(7 - i), Year: 2025 - i})
	}
	seasons.On("List", ctx).Return(all, nil).Once()

	got, err := NewLeagueService(seasons, divisionmock.NewRepository(t)).RecentSeasons(ctx)
	if err != nil {
		t.Fatalf("RecentSeasons error: %v", err)
	}
	if len(got) != 5 || got[0].Year != 2025 || got[4].Year != 2021 {
		t.Fatalf("unexpected recent seasons: %+v", got)
	}
}

func TestLeagueService_CurrentSeasonMissing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seasons := seasonmock.NewRepository(t)
	seasons.On("Current", ctx).Return(season.Season{}, false, nil).Once()
	seasons.On("CurrentForDivision", ctx, int64(12)).Return(season.Season{}, false, nil).Once()

	service := NewLeagueService(seasons, divisionmock.NewRepository(t))
	if _, err := service.CurrentSeason(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.CurrentSeasonForDivision(ctx, 12); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.GetSeason(ctx, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
