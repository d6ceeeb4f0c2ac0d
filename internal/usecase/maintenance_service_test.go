package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/street-hockey-league/internal/domain/division"
	"github.com/riskibarqy/street-hockey-league/internal/domain/player"
	"github.com/riskibarqy/street-hockey-league/internal/domain/roster"
	"github.com/riskibarqy/street-hockey-league/internal/domain/team"
	divisionmock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/division"
	playermock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/player"
	rostermock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/roster"
	teammock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/team"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func newMaintenanceService(t *testing.T) (*MaintenanceService, *playermock.Repository, *rostermock.Repository, *teammock.Repository, *divisionmock.Repository) {
	t.Helper()

	players := playermock.NewRepository(t)
	rosters := rostermock.NewRepository(t)
	teams := teammock.NewRepository(t)
	divisions := divisionmock.NewRepository(t)
	clock := NewFixedClock(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), time.UTC)
	return NewMaintenanceService(players, rosters, teams, divisions, clock, nil), players, rosters, teams, divisions
}

func deactivationCandidates() []player.DeactivationCandidate {
	return []player.DeactivationCandidate{
		{Player: player.Player{ID: 1, FirstName: "Never", LastName: "Played", IsActive: true}, IsGoalie: true},
		{Player: player.Player{ID: 2, FirstName: "Old", LastName: "Timer", IsActive: true}, IsGoalie: true, LastRosteredYear: intPtr(2020)},
		{Player: player.Player{ID: 3, FirstName: "Still", LastName: "Here", IsActive: true}, IsGoalie: true, LastRosteredYear: intPtr(2019)},
		{Player: player.Player{ID: 4, FirstName: "Recent", LastName: "Goalie", IsActive: true}, IsGoalie: true, LastRosteredYear: intPtr(2023)},
		{Player: player.Player{ID: 5, FirstName: "Old", LastName: "Skater", IsActive: true}, LastRosteredYear: intPtr(2015)},
		{Player: player.Player{ID: 6, FirstName: "Kept", LastName: "Forever", IsActive: true, ExcludeFromAutoDeactivation: true}, IsGoalie: true},
	}
}

func TestMaintenanceService_DeactivateInactivePlayers_DryRun(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, players, rosters, _, _ := newMaintenanceService(t)
	rosters.On("CurrentSeasonPlayerIDs", ctx).Return([]int64{3}, nil).Once()
	players.On("ListDeactivationCandidates", ctx).Return(deactivationCandidates(), nil).Once()

	got, err := service.DeactivateInactivePlayers(ctx, DeactivationInput{Years: 3, DryRun: true})
	require.NoError(t, err)
	require.Equal(t, 2022, got.CutoffYear)
	require.Len(t, got.Actions, 2)
	require.Equal(t, "never rostered", got.Actions[0].Reason)
	require.Equal(t, "last active 2020", got.Actions[1].Reason)
	require.Equal(t, 2, got.Skipped)
	require.Equal(t, 1, got.ExcludedTotal)
	require.Equal(t, int64(6), got.Excluded[0].ID)
}

func TestMaintenanceService_DeactivateInactivePlayers_IncludesNonGoalies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, players, rosters, _, _ := newMaintenanceService(t)
	rosters.On("CurrentSeasonPlayerIDs", ctx).Return([]int64{}, nil).Once()
	players.On("ListDeactivationCandidates", ctx).Return(deactivationCandidates(), nil).Once()
	players.On("Deactivate", ctx, []int64{1, 2, 3, 5}).Return(4, nil).Once()

	got, err := service.DeactivateInactivePlayers(ctx, DeactivationInput{Years: 3, IncludeNonGoalies: true})
	require.NoError(t, err)
	require.Len(t, got.Actions, 4)
}

func TestMaintenanceService_DeactivateInactivePlayers_ZeroYearsCutsAtCurrentYear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, players, rosters, _, _ := newMaintenanceService(t)
	rosters.On("CurrentSeasonPlayerIDs", ctx).Return([]int64{3}, nil).Once()
	players.On("ListDeactivationCandidates", ctx).Return(deactivationCandidates(), nil).Once()

	got, err := service.DeactivateInactivePlayers(ctx, DeactivationInput{Years: 0, DryRun: true})
	require.NoError(t, err)
	require.Equal(t, 0, got.Years)
	require.Equal(t, 2025, got.CutoffYear)
	ids := []int64{}
	for _, a := range got.Actions {
		ids = append(ids, a.Player.ID)
	}
	require.Equal(t, []int64{1, 2, 4}, ids)
	require.Equal(t, 1, got.Skipped)
}

func TestMaintenanceService_DeactivateInactivePlayers_NegativeYears(t *testing.T) {
	t.Parallel()

	service, _, _, _, _ := newMaintenanceService(t)
	_, err := service.DeactivateInactivePlayers(context.Background(), DeactivationInput{Years: -1})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestMaintenanceService_CaptainURLs_GroupsByDivision(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, _, _, teams, divisions := newMaintenanceService(t)
	teams.On("List", ctx, team.ListFilter{ActiveOnly: true, CurrentSeasonOnly: true}).Return([]team.Team{
		{ID: 1, Name: "Bears", DivisionID: int64Ptr(11), AccessCode: "aaa"},
		{ID: 2, Name: "Wolves", DivisionID: int64Ptr(11), AccessCode: "bbb"},
		{ID: 3, Name: "Owls", DivisionID: int64Ptr(14), AccessCode: "ccc"},
	}, nil).Once()
	divisions.On("List", ctx).Return([]division.Division{{ID: 11, Number: 1}, {ID: 14, Number: 4}}, nil).Once()

	got, err := service.CaptainURLs(ctx, "https://dcstreethockey.com/", false)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Sunday D1", got[0].Division)
	require.Len(t, got[0].Teams, 2)
	require.Equal(t, "https://dcstreethockey.com/goalie-status/captain/ccc/", got[1].Teams[0].URL)
}

func TestGroupDuplicates(t *testing.T) {
	t.Parallel()

	got := groupDuplicates([]player.Player{
		{ID: 1, FirstName: "Bill", LastName: "Smith"},
		{ID: 2, FirstName: "Robert", LastName: "smith "},
		{ID: 3, FirstName: "William", LastName: "Smith"},
		{ID: 4, FirstName: "bill", LastName: "Smith"},
		{ID: 5, FirstName: "Kevin", LastName: "Jones"},
	})

	require.Len(t, got, 2)
	require.Equal(t, MatchExact, got[0].MatchType)
	require.Equal(t, "smith", got[0].LastName)
	require.Len(t, got[0].Players, 2)
	require.Equal(t, MatchNickname, got[1].MatchType)
	ids := []int64{}
	for _, p := range got[1].Players {
		ids = append(ids, p.Player.ID)
	}
	require.Equal(t, []int64{1, 3}, ids)
}

func TestMaintenanceService_FindDuplicatePlayers_ShowsRosters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, players, rosters, _, _ := newMaintenanceService(t)
	players.On("ListByLastName", ctx, "Smith").Return([]player.Player{
		{ID: 1, FirstName: "Mike", LastName: "Smith"},
		{ID: 2, FirstName: "Michael", LastName: "Smith"},
	}, nil).Once()
	rosters.On("CountByPlayers", ctx, []int64{1, 2}).Return(map[int64]int{1: 7}, nil).Once()
	rosters.On("ListSeasonsByPlayer", ctx, int64(1), 5).Return([]roster.PlayerSeason{{SeasonYear: 2024}}, nil).Once()

	got, err := service.FindDuplicatePlayers(ctx, " Smith ", true)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 7, got[0].Players[0].RosterCount)
	require.Equal(t, 2, got[0].Players[0].MoreSeasons)
	require.Empty(t, got[0].Players[1].Seasons)
}
