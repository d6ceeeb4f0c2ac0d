package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/street-hockey-league/internal/domain/matchup"
	"github.com/riskibarqy/street-hockey-league/internal/domain/player"
	"github.com/riskibarqy/street-hockey-league/internal/domain/roster"
	"github.com/riskibarqy/street-hockey-league/internal/domain/season"
	"github.com/riskibarqy/street-hockey-league/internal/domain/stat"
	"github.com/riskibarqy/street-hockey-league/internal/domain/team"
	"github.com/riskibarqy/street-hockey-league/internal/domain/validation"
	"github.com/riskibarqy/street-hockey-league/internal/domain/week"
	divisionmock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/division"
	matchupmock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/matchup"
	playermock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/player"
	rostermock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/roster"
	seasonmock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/season"
	statmock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/stat"
	teammock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/team"
	teamstatmock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/teamstat"
	weekmock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/week"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixedCodes struct {
	code string
}

func (g fixedCodes) NewCode() (string, error) {
	return g.code, nil
}

type stubRolloverStore struct {
	input  SeasonRolloverInput
	result SeasonRolloverResult
}

func (s *stubRolloverStore) Rollover(_ context.Context, input SeasonRolloverInput, newCode func() (string, error)) (SeasonRolloverResult, error) {
	s.input = input
	if _, err := newCode(); err != nil {
		return SeasonRolloverResult{}, err
	}
	return s.result, nil
}

type adminFixture struct {
	seasons  *seasonmock.Repository
	weeks    *weekmock.Repository
	matchups *matchupmock.Repository
	teams    *teammock.Repository
	rosters  *rostermock.Repository
	players  *playermock.Repository
	stats    *statmock.Repository
	rollover *stubRolloverStore
	service  *AdminService
}

func newAdminFixture(t *testing.T) adminFixture {
	t.Helper()

	f := adminFixture{
		seasons:  seasonmock.NewRepository(t),
		weeks:    weekmock.NewRepository(t),
		matchups: matchupmock.NewRepository(t),
		teams:    teammock.NewRepository(t),
		rosters:  rostermock.NewRepository(t),
		players:  playermock.NewRepository(t),
		stats:    statmock.NewRepository(t),
		rollover: &stubRolloverStore{},
	}
	league := NewLeagueService(f.seasons, divisionmock.NewRepository(t))
	clock := NewFixedClock(time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC), time.UTC)
	f.service = NewAdminService(league, f.weeks, f.matchups, f.teams, f.rosters, f.players, f.stats,
		teamstatmock.NewRepository(t), f.rollover, fixedCodes{code: "abc123"}, clock, nil)
	return f
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestAdminService_ListMatchups_DivisionUsesItsCurrentSeason(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newAdminFixture(t)
	f.seasons.On("CurrentForDivision", ctx, int64(2)).Return(season.Season{ID: 30, Year: 2025, Type: season.TypeSpring}, true, nil).Once()
	f.matchups.On("List", ctx, matchup.ListFilter{SeasonID: int64Ptr(30), DivisionID: int64Ptr(2)}).
		Return([]matchup.MatchUp{{ID: 1}}, nil).Once()

	got, err := f.service.ListMatchups(ctx, AdminMatchupFilter{DivisionID: int64Ptr(2), SeasonID: int64Ptr(9)})
	require.NoError(t, err)
	require.NotNil(t, got.Season)
	require.Equal(t, int64(30), got.Season.ID)
	require.Len(t, got.Matchups, 1)
}

func TestAdminService_ListMatchups_NoCurrentSeasonListsAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newAdminFixture(t)
	f.seasons.On("Current", ctx).Return(season.Season{}, false, nil).Once()
	f.matchups.On("List", ctx, matchup.ListFilter{}).Return([]matchup.MatchUp{{ID: 1}, {ID: 2}}, nil).Once()

	got, err := f.service.ListMatchups(ctx, AdminMatchupFilter{})
	require.NoError(t, err)
	require.Nil(t, got.Season)
	require.Len(t, got.Matchups, 2)
}

func TestAdminService_MatchupStatChoices_FiltersTeamsToSeason(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newAdminFixture(t)
	f.matchups.On("GetByID", ctx, int64(5)).Return(matchup.MatchUp{ID: 5, WeekID: 8, AwayTeamID: 1, HomeTeamID: 2}, true, nil).Once()
	f.weeks.On("GetByID", ctx, int64(8)).Return(week.Week{ID: 8, SeasonID: 30}, true, nil).Once()
	f.teams.On("ListByIDs", ctx, []int64{2, 1}).Return([]team.Team{
		{ID: 1, SeasonID: int64Ptr(30)},
		{ID: 2, SeasonID: int64Ptr(29)},
	}, nil).Once()
	f.players.On("ListStatCandidates", ctx, []int64{2, 1}, int64(30)).Return([]player.Player{{ID: 100}}, nil).Once()

	got, err := f.service.MatchupStatChoices(ctx, 5)
	require.NoError(t, err)
	require.Len(t, got.Teams, 1)
	require.Equal(t, int64(1), got.Teams[0].ID)
	require.Len(t, got.Players, 1)
}

func TestAdminService_ReplaceMatchupStats_RejectsForeignTeam(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newAdminFixture(t)
	f.matchups.On("GetByID", ctx, int64(5)).Return(matchup.MatchUp{ID: 5, WeekID: 8, AwayTeamID: 1, HomeTeamID: 2}, true, nil).Once()
	f.weeks.On("GetByID", ctx, int64(8)).Return(week.Week{ID: 8, SeasonID: 30}, true, nil).Once()

	_, err := f.service.ReplaceMatchupStats(ctx, 5, []stat.Stat{{PlayerID: 100, TeamID: 3, Goals: 1}})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestAdminService_SaveTeam_GeneratesAccessCode(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newAdminFixture(t)
	f.teams.On("Create", ctx, mock.MatchedBy(func(tm team.Team) bool {
		return tm.AccessCode == "abc123" && tm.Name == "Wolves"
	})).Return(team.Team{ID: 9, Name: "Wolves", AccessCode: "abc123"}, nil).Once()

	got, err := f.service.SaveTeam(ctx, team.Team{Name: "  Wolves "})
	require.NoError(t, err)
	require.Equal(t, int64(9), got.ID)

	_, err = f.service.SaveTeam(ctx, team.Team{Name: " "})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Len(t, validation.Fields(err), 1)
}

func TestAdminService_SaveRosterEntry_SinglePrimaryGoalie(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newAdminFixture(t)
	f.rosters.On("ListByTeams", ctx, []int64{4}).Return([]roster.Entry{
		{ID: 1, TeamID: 4, PlayerID: 10, Position1: roster.PositionGoalie, IsPrimaryGoalie: true},
	}, nil).Twice()

	_, err := f.service.SaveRosterEntry(ctx, roster.Entry{TeamID: 4, PlayerID: 11, Position1: roster.PositionGoalie, IsPrimaryGoalie: true})
	require.ErrorIs(t, err, ErrInvalidInput)
	fields := validation.Fields(err)
	require.Len(t, fields, 1)
	require.Equal(t, "is_primary_goalie", fields[0].Field)

	f.rosters.On("Update", ctx, mock.AnythingOfType("roster.Entry")).Return(nil).Once()
	_, err = f.service.SaveRosterEntry(ctx, roster.Entry{ID: 1, TeamID: 4, PlayerID: 10, Position1: roster.PositionGoalie, IsPrimaryGoalie: true})
	require.NoError(t, err)
}

func TestAdminService_SaveMatchup_SubNeededWithGoalie(t *testing.T) {
	t.Parallel()

	f := newAdminFixture(t)
	_, err := f.service.SaveMatchup(context.Background(), matchup.MatchUp{
		WeekID:           1,
		AwayTeamID:       1,
		HomeTeamID:       2,
		HomeGoalieID:     int64Ptr(7),
		HomeGoalieStatus: matchup.GoalieSubNeeded,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestAdminService_ParseMatchupTime(t *testing.T) {
	t.Parallel()

	f := newAdminFixture(t)
	for _, raw := range []string{"03:04 PM", "15:04:05"} {
		got, err := f.service.ParseMatchupTime(raw)
		require.NoError(t, err)
		require.Equal(t, 15, got.Hour())
		require.Equal(t, 4, got.Minute())
	}
	_, err := f.service.ParseMatchupTime("noon")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestAdminService_QuickAddGoalieSub_ReusesPlayerAndConfirms(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newAdminFixture(t)
	f.teams.On("GetByID", ctx, int64(4)).Return(team.Team{ID: 4}, true, nil).Once()
	f.matchups.On("GetByID", ctx, int64(50)).Return(matchup.MatchUp{ID: 50, AwayTeamID: 4, HomeTeamID: 6}, true, nil).Once()
	f.players.On("FindByName", ctx, "Sam", "Sub").Return(player.Player{ID: 42, FirstName: "Sam", LastName: "Sub"}, true, nil).Once()
	f.rosters.On("Create", ctx, roster.Entry{PlayerID: 42, TeamID: 4, Position1: roster.PositionGoalie, IsSubstitute: true}).
		Return(roster.Entry{ID: 77, PlayerID: 42, TeamID: 4, Position1: roster.PositionGoalie, IsSubstitute: true}, nil).Once()
	f.matchups.On("UpdateGoalie", ctx, int64(50), matchup.SideAway, int64Ptr(42), matchup.GoalieConfirmed).Return(nil).Once()

	got, err := f.service.QuickAddGoalieSub(ctx, QuickAddGoalieInput{FirstName: " Sam", LastName: "Sub ", TeamID: 4, MatchUpID: int64Ptr(50)})
	require.NoError(t, err)
	require.False(t, got.PlayerCreated)
	require.Equal(t, int64(77), got.RosterEntry.ID)
	require.Equal(t, matchup.SideAway, got.Side)
}

func TestAdminService_SeasonRollover(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newAdminFixture(t)
	f.rollover.result = SeasonRolloverResult{Season: season.Season{ID: 31}, TeamsCopied: 8, RosterCopied: 96}

	_, err := f.service.SeasonRollover(ctx, SeasonRolloverInput{FromSeasonID: 30, Year: 2025, Type: 9})
	require.ErrorIs(t, err, ErrInvalidInput)

	f.seasons.On("GetByID", ctx, int64(30)).Return(season.Season{ID: 30}, true, nil).Once()
	got, err := f.service.SeasonRollover(ctx, SeasonRolloverInput{FromSeasonID: 30, Year: 2025, Type: season.TypeSummer, MakeCurrent: true})
	require.NoError(t, err)
	require.Equal(t, 8, got.TeamsCopied)
	require.True(t, f.rollover.input.MakeCurrent)
}

func TestAdminService_AutocompleteGoalies_UsesRecentYears(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newAdminFixture(t)
	f.players.On("ListGoalies", ctx, player.GoalieQuery{Name: "sam", ActiveOnly: true, RosteredSinceYear: 2023}).
		Return([]player.Player{{ID: 1}}, nil).Once()

	got, err := f.service.AutocompleteGoalies(ctx, " sam ")
	require.NoError(t, err)
	require.Len(t, got, 1)
}
