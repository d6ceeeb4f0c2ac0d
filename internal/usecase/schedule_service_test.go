package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/street-hockey-league/internal/domain/division"
	"github.com/riskibarqy/street-hockey-league/internal/domain/matchup"
	"github.com/riskibarqy/street-hockey-league/internal/domain/player"
	"github.com/riskibarqy/street-hockey-league/internal/domain/referee"
	"github.com/riskibarqy/street-hockey-league/internal/domain/roster"
	"github.com/riskibarqy/street-hockey-league/internal/domain/season"
	"github.com/riskibarqy/street-hockey-league/internal/domain/stat"
	"github.com/riskibarqy/street-hockey-league/internal/domain/team"
	"github.com/riskibarqy/street-hockey-league/internal/domain/week"
	divisionmock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/division"
	matchupmock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/matchup"
	playermock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/player"
	refereemock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/referee"
	rostermock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/roster"
	seasonmock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/season"
	statmock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/stat"
	teammock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/team"
	weekmock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/week"
	"github.com/stretchr/testify/require"
)

type scheduleFixture struct {
	seasons   *seasonmock.Repository
	divisions *divisionmock.Repository
	weeks     *weekmock.Repository
	matchups  *matchupmock.Repository
	teams     *teammock.Repository
	refs      *refereemock.Repository
	stats     *statmock.Repository
	players   *playermock.Repository
	rosters   *rostermock.Repository
	service   *ScheduleService
}

func newScheduleFixture(t *testing.T) scheduleFixture {
	t.Helper()

	f := scheduleFixture{
		seasons:   seasonmock.NewRepository(t),
		divisions: divisionmock.NewRepository(t),
		weeks:     weekmock.NewRepository(t),
		matchups:  matchupmock.NewRepository(t),
		teams:     teammock.NewRepository(t),
		refs:      refereemock.NewRepository(t),
		stats:     statmock.NewRepository(t),
		players:   playermock.NewRepository(t),
		rosters:   rostermock.NewRepository(t),
	}
	f.service = NewScheduleService(
		f.seasons,
		f.divisions,
		f.weeks,
		f.matchups,
		f.teams,
		f.refs,
		f.stats,
		f.players,
		f.rosters,
		nil,
	)
	return f
}

func TestScheduleService_MatchupDetail_SplitsBoxScoreBySide(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newScheduleFixture(t)
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	f.matchups.On("GetByID", ctx, int64(100)).Return(matchup.MatchUp{
		ID: 100, WeekID: 7, AwayTeamID: 1, HomeTeamID: 2, Ref1ID: int64Ptr(50),
	}, true, nil).Once()
	f.weeks.On("GetByID", ctx, int64(7)).Return(week.Week{ID: 7, Date: day}, true, nil).Once()
	f.stats.On("ListByMatchup", ctx, int64(100)).Return([]stat.Stat{
		{PlayerID: 10, TeamID: 1, Goals: 2},
		{PlayerID: 11, TeamID: 2, Goals: 1, Assists: 1},
		{PlayerID: 12, TeamID: 1, Goals: 1},
	}, nil).Once()
	f.players.On("ListByIDs", ctx, []int64{10, 11, 12}).Return([]player.Player{
		{ID: 10, FirstName: "Pat"}, {ID: 11, FirstName: "Lee"}, {ID: 12, FirstName: "Sam"},
	}, nil).Once()
	f.teams.On("ListByIDs", ctx, []int64{1, 2}).Return([]team.Team{{ID: 1, Name: "Bandits"}, {ID: 2, Name: "Rink Rats"}}, nil).Once()
	f.refs.On("ListByIDs", ctx, []int64{50}).Return([]referee.Ref{{ID: 50, FirstName: "Jo", LastName: "Whistle"}}, nil).Once()

	got, err := f.service.MatchupDetail(ctx, 100)
	require.NoError(t, err)
	require.Len(t, got.Away, 2)
	require.Len(t, got.Home, 1)
	require.Equal(t, "Lee", got.Home[0].Player.FirstName)
	require.True(t, got.Game.Played)
	require.Equal(t, 3, got.Game.AwayGoals)
	require.Equal(t, 1, got.Game.HomeGoals)
	require.Equal(t, "Bandits", got.Game.AwayTeam)
	require.Equal(t, []string{"Jo Whistle"}, got.Game.Refs)
	require.Equal(t, day, got.Game.Week.Date)
}

func TestScheduleService_MatchupDetail_NoStatsIsUnplayed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newScheduleFixture(t)
	f.matchups.On("GetByID", ctx, int64(100)).Return(matchup.MatchUp{ID: 100, WeekID: 7, AwayTeamID: 1, HomeTeamID: 2}, true, nil).Once()
	f.weeks.On("GetByID", ctx, int64(7)).Return(week.Week{ID: 7}, true, nil).Once()
	f.stats.On("ListByMatchup", ctx, int64(100)).Return(nil, nil).Once()
	f.players.On("ListByIDs", ctx, []int64{}).Return(nil, nil).Once()
	f.teams.On("ListByIDs", ctx, []int64{1, 2}).Return(nil, nil).Once()

	got, err := f.service.MatchupDetail(ctx, 100)
	require.NoError(t, err)
	require.False(t, got.Game.Played)
	require.Empty(t, got.Game.Refs)
}

func TestScheduleService_Scores_NewestFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newScheduleFixture(t)
	early := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)

	f.seasons.On("GetByID", ctx, int64(30)).Return(season.Season{ID: 30}, true, nil).Once()
	f.matchups.On("ListResults", ctx, matchup.ResultFilter{SeasonID: 30, PlayedOnly: true}).Return([]matchup.Result{
		{MatchUpID: 100, WeekID: 7, HasStats: true, AwayGoals: 2, HomeGoals: 4},
		{MatchUpID: 101, WeekID: 8, HasStats: true, AwayGoals: 1, HomeGoals: 0},
	}, nil).Once()
	f.matchups.On("List", ctx, matchup.ListFilter{WeekIDs: []int64{7, 8}}).Return([]matchup.MatchUp{
		{ID: 100, WeekID: 7, AwayTeamID: 1, HomeTeamID: 2},
		{ID: 101, WeekID: 8, AwayTeamID: 2, HomeTeamID: 1},
		{ID: 102, WeekID: 8, AwayTeamID: 3, HomeTeamID: 4},
	}, nil).Once()
	f.weeks.On("ListByIDs", ctx, []int64{7, 8}).Return([]week.Week{{ID: 7, Date: early}, {ID: 8, Date: late}}, nil).Once()
	f.teams.On("ListByIDs", ctx, []int64{1, 2, 3, 4}).Return(nil, nil).Once()

	got, err := f.service.Scores(ctx, 30, nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, int64(101), got[0].MatchUp.ID)
	require.Equal(t, int64(100), got[1].MatchUp.ID)
	require.Equal(t, 4, got[1].HomeGoals)
}

func TestScheduleService_NextGameDay_NoUpcomingWeeks(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newScheduleFixture(t)
	from := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	f.weeks.On("NextDates", ctx, from, false, 1).Return(nil, nil).Once()

	day, games, err := f.service.NextGameDay(ctx, from)
	require.NoError(t, err)
	require.True(t, day.IsZero())
	require.Empty(t, games)
}

func TestScheduleService_Schedule_OrdersWeeksAndGames(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newScheduleFixture(t)
	seasonID := int64(30)
	first := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	second := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)

	f.seasons.On("GetByID", ctx, seasonID).Return(season.Season{ID: seasonID}, true, nil).Once()
	// Division id 10 is D2 and id 11 is D1, so id order and number order disagree.
	f.weeks.On("List", ctx, week.ListFilter{SeasonID: &seasonID}).Return([]week.Week{
		{ID: 1, DivisionID: 10, Date: first},
		{ID: 2, DivisionID: 11, Date: first},
		{ID: 3, DivisionID: 11, Date: second},
	}, nil).Once()
	f.matchups.On("List", ctx, matchup.ListFilter{SeasonID: &seasonID}).Return([]matchup.MatchUp{
		{ID: 100, WeekID: 2, AwayTeamID: 1, HomeTeamID: 2, Time: time.Date(0, 1, 1, 11, 15, 0, 0, time.UTC)},
		{ID: 101, WeekID: 2, AwayTeamID: 3, HomeTeamID: 4, Time: time.Date(0, 1, 1, 10, 0, 0, 0, time.UTC)},
		{ID: 102, WeekID: 1, AwayTeamID: 5, HomeTeamID: 6, Time: time.Date(0, 1, 1, 12, 30, 0, 0, time.UTC)},
	}, nil).Once()
	f.matchups.On("ListResults", ctx, matchup.ResultFilter{SeasonID: seasonID}).Return([]matchup.Result{
		{MatchUpID: 101, HasStats: true, AwayGoals: 3, HomeGoals: 2},
	}, nil).Once()
	f.teams.On("ListByIDs", ctx, []int64{1, 2, 3, 4, 5, 6}).Return([]team.Team{{ID: 3, Name: "Bandits"}}, nil).Once()
	f.divisions.On("List", ctx).Return([]division.Division{
		{ID: 10, Number: division.SundayD2},
		{ID: 11, Number: division.SundayD1},
	}, nil).Once()

	got, err := f.service.Schedule(ctx, seasonID, nil)
	require.NoError(t, err)
	require.Len(t, got, 3)

	require.Equal(t, int64(2), got[0].Week.ID)
	require.Equal(t, "Sunday D1", got[0].DivisionName)
	require.Len(t, got[0].Games, 2)
	require.Equal(t, int64(101), got[0].Games[0].MatchUp.ID)
	require.Equal(t, int64(100), got[0].Games[1].MatchUp.ID)
	require.True(t, got[0].Games[0].Played)
	require.Equal(t, "Bandits", got[0].Games[0].AwayTeam)
	require.False(t, got[0].Games[1].Played)

	require.Equal(t, int64(1), got[1].Week.ID)
	require.Equal(t, "Sunday D2", got[1].DivisionName)
	require.Equal(t, int64(3), got[2].Week.ID)
	require.Empty(t, got[2].Games)
}

func TestScheduleService_TeamDetail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newScheduleFixture(t)
	teamID, seasonID, divisionID := int64(5), int64(30), int64(11)
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	f.teams.On("GetByID", ctx, teamID).Return(team.Team{ID: teamID, Name: "Bandits", DivisionID: &divisionID, SeasonID: &seasonID}, true, nil).Once()
	f.divisions.On("GetByID", ctx, divisionID).Return(division.Division{ID: divisionID, Number: division.SundayD1}, true, nil).Once()
	f.rosters.On("ListByTeams", ctx, []int64{teamID}).Return([]roster.Entry{
		{ID: 1, TeamID: teamID, PlayerID: 20, Position1: roster.PositionWing},
		{ID: 2, TeamID: teamID, PlayerID: 21, Position1: roster.PositionGoalie},
	}, nil).Once()
	f.players.On("ListByIDs", ctx, []int64{20, 21}).Return([]player.Player{
		{ID: 20, FirstName: "Pat", LastName: "Stone"},
		{ID: 21, FirstName: "Lee", LastName: "Park"},
	}, nil).Once()
	f.seasons.On("GetByID", ctx, seasonID).Return(season.Season{ID: seasonID, Year: 2025, Type: season.TypeSpring}, true, nil).Once()
	f.matchups.On("List", ctx, matchup.ListFilter{SeasonID: &seasonID, TeamID: &teamID}).Return([]matchup.MatchUp{
		{ID: 100, WeekID: 7, AwayTeamID: teamID, HomeTeamID: 6},
	}, nil).Once()
	f.weeks.On("List", ctx, week.ListFilter{SeasonID: &seasonID, DivisionID: &divisionID}).Return([]week.Week{{ID: 7, Date: day}}, nil).Once()
	f.matchups.On("ListResults", ctx, matchup.ResultFilter{SeasonID: seasonID, DivisionID: &divisionID}).Return(nil, nil).Once()
	f.teams.On("ListByIDs", ctx, []int64{teamID, 6}).Return([]team.Team{{ID: teamID, Name: "Bandits"}, {ID: 6, Name: "Rink Rats"}}, nil).Once()

	got, err := f.service.TeamDetail(ctx, teamID)
	require.NoError(t, err)
	require.Equal(t, "Sunday D1", got.DivisionName)
	require.NotNil(t, got.Season)
	require.Equal(t, "2025 Spring", got.Season.Label())
	require.Len(t, got.Roster, 2)
	require.Equal(t, "Park", got.Roster[0].Player.LastName)
	require.Equal(t, "Stone", got.Roster[1].Player.LastName)
	require.Len(t, got.Games, 1)
	require.Equal(t, "Rink Rats", got.Games[0].HomeTeam)
	require.Equal(t, day, got.Games[0].Week.Date)
	require.Nil(t, got.Standing)
}

func TestScheduleService_TeamDetail_UnknownTeam(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newScheduleFixture(t)
	f.teams.On("GetByID", ctx, int64(9)).Return(team.Team{}, false, nil).Once()

	_, err := f.service.TeamDetail(ctx, 9)
	require.ErrorIs(t, err, ErrNotFound)
}
