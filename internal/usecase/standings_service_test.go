package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/street-hockey-league/internal/domain/matchup"
	"github.com/riskibarqy/street-hockey-league/internal/domain/season"
	"github.com/riskibarqy/street-hockey-league/internal/domain/teamstat"
	divisionmock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/division"
	matchupmock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/matchup"
	seasonmock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/season"
	teamstatmock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/teamstat"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStandingsService_ListBySeason_HeadToHeadBreaksTie(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seasons := seasonmock.NewRepository(t)
	divisions := divisionmock.NewRepository(t)
	stats := teamstatmock.NewRepository(t)
	matchups := matchupmock.NewRepository(t)

	seasons.On("GetByID", ctx, int64(9)).Return(season.Season{ID: 9, Year: 2025}, true, nil).Once()
	divisions.On("List", ctx).Return(testDivisions, nil).Once()
	stats.On("ListRecords", ctx, int64(9), (*int64)(nil)).Return([]teamstat.Record{
		{TeamStat: teamstat.TeamStat{TeamID: 1, DivisionID: 11, Win: 2, Loss: 1, GoalsFor: 15, GoalsAgainst: 5}, TeamName: "Bears"},
		{TeamStat: teamstat.TeamStat{TeamID: 2, DivisionID: 11, Win: 2, Loss: 1, GoalsFor: 9, GoalsAgainst: 8}, TeamName: "Wolves"},
		{TeamStat: teamstat.TeamStat{TeamID: 3, DivisionID: 14, Win: 1}, TeamName: "Owls"},
	}, nil).Once()
	matchups.On("ListResults", ctx, mock.MatchedBy(func(f matchup.ResultFilter) bool {
		return f.SeasonID == 9 && f.DivisionID == nil && f.Postseason != nil && !*f.Postseason && f.PlayedOnly
	})).Return([]matchup.Result{
		{MatchUpID: 1, HomeTeamID: 1, AwayTeamID: 2, HomeGoals: 2, AwayGoals: 4},
	}, nil).Once()

	service := NewStandingsService(seasons, divisions, stats, matchups)
	got, err := service.ListBySeason(ctx, 9)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, int64(11), got[0].Division.ID)
	require.Equal(t, int64(2), got[0].Rows[0].TeamID)
	require.Equal(t, 1, got[0].Rows[0].Rank)
	require.Equal(t, int64(1), got[0].Rows[1].TeamID)
	require.Equal(t, int64(14), got[1].Division.ID)
}

func TestStandingsService_ListByDivision_Validation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seasons := seasonmock.NewRepository(t)
	service := NewStandingsService(seasons, divisionmock.NewRepository(t), teamstatmock.NewRepository(t), matchupmock.NewRepository(t))

	_, err := service.ListByDivision(ctx, 0, 11)
	require.ErrorIs(t, err, ErrInvalidInput)

	seasons.On("GetByID", ctx, int64(404)).Return(season.Season{}, false, nil).Once()
	_, err = service.ListByDivision(ctx, 404, 11)
	require.ErrorIs(t, err, ErrNotFound)
}
