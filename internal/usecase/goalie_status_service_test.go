package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/street-hockey-league/internal/domain/division"
	"github.com/riskibarqy/street-hockey-league/internal/domain/matchup"
	"github.com/riskibarqy/street-hockey-league/internal/domain/player"
	"github.com/riskibarqy/street-hockey-league/internal/domain/roster"
	"github.com/riskibarqy/street-hockey-league/internal/domain/season"
	"github.com/riskibarqy/street-hockey-league/internal/domain/team"
	"github.com/riskibarqy/street-hockey-league/internal/domain/week"
	divisionmock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/division"
	matchupmock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/matchup"
	playermock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/player"
	rostermock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/roster"
	seasonmock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/season"
	teammock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/team"
	weekmock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/week"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu      sync.Mutex
	notices []SubNeeded
	err     error
}

func (n *recordingNotifier) NotifySubNeeded(_ context.Context, notice SubNeeded) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice)
	return n.err
}

type goalieFixture struct {
	weeks     *weekmock.Repository
	seasons   *seasonmock.Repository
	divisions *divisionmock.Repository
	matchups  *matchupmock.Repository
	teams     *teammock.Repository
	rosters   *rostermock.Repository
	players   *playermock.Repository
	notifier  *recordingNotifier
	service   *GoalieStatusService
}

func newGoalieFixture(t *testing.T) goalieFixture {
	t.Helper()

	f := goalieFixture{
		weeks:     weekmock.NewRepository(t),
		seasons:   seasonmock.NewRepository(t),
		divisions: divisionmock.NewRepository(t),
		matchups:  matchupmock.NewRepository(t),
		teams:     teammock.NewRepository(t),
		rosters:   rostermock.NewRepository(t),
		players:   playermock.NewRepository(t),
		notifier:  &recordingNotifier{},
	}
	clock := NewFixedClock(time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC), time.UTC)
	f.service = NewGoalieStatusService(f.weeks, f.seasons, f.divisions,
		f.matchups, f.teams, f.rosters, f.players, f.notifier, clock, nil)
	return f
}

func TestDisplayInfo(t *testing.T) {
	t.Parallel()

	regular := &player.Player{ID: 7, FirstName: "Pat", LastName: "Regular"}
	sub := &player.Player{ID: 42, FirstName: "Sam", LastName: "Sub"}

	m := matchup.MatchUp{AwayGoalieStatus: matchup.GoalieConfirmed, HomeGoalieStatus: matchup.GoalieSubNeeded}

	info := DisplayInfo(m, matchup.SideAway, sub, regular)
	if !info.IsSub || info.IsRosterGoalie || info.GoalieName != "Sam Sub" {
		t.Fatalf("unexpected explicit sub info: %+v", info)
	}

	info = DisplayInfo(m, matchup.SideAway, nil, regular)
	if info.IsSub || !info.IsRosterGoalie || info.GoalieName != "Pat Regular" {
		t.Fatalf("unexpected roster goalie info: %+v", info)
	}

	info = DisplayInfo(m, matchup.SideAway, nil, nil)
	if info.GoalieName != noGoalieOnRosterName || info.Goalie != nil {
		t.Fatalf("unexpected empty roster info: %+v", info)
	}

	info = DisplayInfo(m, matchup.SideHome, sub, regular)
	if info.Goalie != nil || info.GoalieName != "" || info.StatusDisplay != "Sub Needed" {
		t.Fatalf("sub needed side must hide the goalie: %+v", info)
	}
}

func TestGoalieStatusService_UpdateGoalieStatus_RejectsOtherTeamsMatchup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newGoalieFixture(t)
	f.teams.On("GetActiveByAccessCode", ctx, "code-5").Return(team.Team{ID: 5, Name: "Wolves"}, true, nil).Once()
	f.matchups.On("GetByID", ctx, int64(10)).Return(matchup.MatchUp{ID: 10, AwayTeamID: 1, HomeTeamID: 2}, true, nil).Once()

	_, err := f.service.UpdateGoalieStatus(ctx, GoalieUpdateInput{AccessCode: "code-5", MatchUpID: 10, Status: "1"})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestGoalieStatusService_UpdateGoalieStatus_InvalidStatus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newGoalieFixture(t)
	f.teams.On("GetActiveByAccessCode", ctx, "code-5").Return(team.Team{ID: 5}, true, nil).Once()
	f.matchups.On("GetByID", ctx, int64(10)).Return(matchup.MatchUp{ID: 10, AwayTeamID: 1, HomeTeamID: 5}, true, nil).Once()

	_, err := f.service.UpdateGoalieStatus(ctx, GoalieUpdateInput{AccessCode: "code-5", MatchUpID: 10, Status: "9"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGoalieStatusService_UpdateGoalieStatus_UnknownAccessCode(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newGoalieFixture(t)
	f.teams.On("GetActiveByAccessCode", ctx, "nope").Return(team.Team{}, false, nil).Once()

	_, err := f.service.UpdateGoalieStatus(ctx, GoalieUpdateInput{AccessCode: "nope", MatchUpID: 10, Status: "1"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGoalieStatusService_UpdateGoalieStatus_ConfirmsSubstitute(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newGoalieFixture(t)
	f.teams.On("GetActiveByAccessCode", ctx, "code-5").Return(team.Team{ID: 5}, true, nil).Once()
	f.matchups.On("GetByID", ctx, int64(10)).Return(matchup.MatchUp{ID: 10, AwayTeamID: 1, HomeTeamID: 5}, true, nil).Once()
	f.players.On("GetByID", ctx, int64(42)).Return(player.Player{ID: 42, FirstName: "Sam", LastName: "Sub"}, true, nil).Once()
	f.matchups.On("UpdateGoalie", ctx, int64(10), matchup.SideHome, mock.MatchedBy(func(id *int64) bool {
		return id != nil && *id == 42
	}), matchup.GoalieConfirmed).Return(nil).Once()
	f.teams.On("ListByIDs", ctx, []int64{5}).Return([]team.Team{{ID: 5}}, nil).Once()
	f.rosters.On("ListByTeams", ctx, []int64{5}).Return([]roster.Entry{
		{ID: 1, TeamID: 5, PlayerID: 7, Position1: roster.PositionGoalie},
	}, nil).Once()
	f.players.On("ListByIDs", ctx, []int64{7}).Return([]player.Player{{ID: 7, FirstName: "Pat", LastName: "Regular"}}, nil).Once()

	got, err := f.service.UpdateGoalieStatus(ctx, GoalieUpdateInput{AccessCode: "code-5", MatchUpID: 10, GoalieID: "42", Status: "1"})
	if err != nil {
		t.Fatalf("UpdateGoalieStatus error: %v", err)
	}
	if !got.Success || got.GoalieName != "Sam Sub" || !got.IsSub || got.StatusDisplay != "Confirmed" {
		t.Fatalf("unexpected result: %+v", got)
	}
	if len(f.notifier.notices) != 0 {
		t.Fatalf("confirmed status must not notify, got %d notices", len(f.notifier.notices))
	}
}

func TestGoalieStatusService_UpdateGoalieStatus_SubNeededClearsGoalieAndNotifies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newGoalieFixture(t)
	f.notifier.err = errors.New("queue down")
	gameDay := time.Date(2025, 5, 4, 0, 0, 0, 0, time.UTC)

	f.teams.On("GetActiveByAccessCode", ctx, "code-5").Return(team.Team{ID: 5, Name: "Wolves"}, true, nil).Once()
	f.matchups.On("GetByID", ctx, int64(10)).Return(matchup.MatchUp{ID: 10, WeekID: 3, AwayTeamID: 5, HomeTeamID: 2}, true, nil).Once()
	f.players.On("GetByID", ctx, int64(42)).Return(player.Player{ID: 42}, true, nil).Once()
	f.matchups.On("UpdateGoalie", ctx, int64(10), matchup.SideAway, (*int64)(nil), matchup.GoalieSubNeeded).Return(nil).Once()
	f.teams.On("ListByIDs", ctx, []int64{5}).Return([]team.Team{{ID: 5}}, nil).Once()
	f.rosters.On("ListByTeams", ctx, []int64{5}).Return([]roster.Entry{}, nil).Once()
	f.teams.On("GetByID", ctx, int64(2)).Return(team.Team{ID: 2, Name: "Bears"}, true, nil).Once()
	f.weeks.On("GetByID", ctx, int64(3)).Return(week.Week{ID: 3, Date: gameDay}, true, nil).Once()

	got, err := f.service.UpdateGoalieStatus(ctx, GoalieUpdateInput{AccessCode: "code-5", MatchUpID: 10, GoalieID: "42", Status: "2"})
	if err != nil {
		t.Fatalf("a failed notification must not fail the update: %v", err)
	}
	if got.GoalieName != "" || got.IsSub || got.Status != matchup.GoalieSubNeeded {
		t.Fatalf("unexpected result: %+v", got)
	}
	if len(f.notifier.notices) != 1 {
		t.Fatalf("expected one notice, got %d", len(f.notifier.notices))
	}
	notice := f.notifier.notices[0]
	if notice.Side != matchup.SideAway || notice.OpponentName != "Bears" || !notice.Date.Equal(gameDay) {
		t.Fatalf("unexpected notice: %+v", notice)
	}
}

func clockTime(hour, minute int) time.Time {
	return time.Date(0, 1, 1, hour, minute, 0, 0, time.UTC)
}

func TestGoalieStatusService_Board(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newGoalieFixture(t)
	today := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	first := time.Date(2025, 5, 4, 0, 0, 0, 0, time.UTC)
	second := time.Date(2025, 5, 11, 0, 0, 0, 0, time.UTC)
	dates := []time.Time{first, second}
	subID := int64(42)

	f.weeks.On("NextDates", ctx, today, false, 4).Return(dates, nil).Once()
	f.weeks.On("List", ctx, week.ListFilter{Dates: dates}).Return([]week.Week{
		{ID: 1, Date: second, DivisionID: 11, SeasonID: 30},
		{ID: 2, Date: first, DivisionID: 10, SeasonID: 30},
		{ID: 3, Date: first, DivisionID: 11, SeasonID: 31},
		{ID: 4, Date: first, DivisionID: 11, SeasonID: 30},
		{ID: 5, Date: first, DivisionID: 11, SeasonID: 32},
	}, nil).Once()
	f.seasons.On("ListByIDs", ctx, []int64{30, 31, 32}).Return([]season.Season{
		{ID: 30, Year: 2025, Type: season.TypeSpring},
		{ID: 31, Year: 2024, Type: season.TypeFall},
		{ID: 32, Year: 2025, Type: season.TypeFall},
	}, nil).Once()
	f.divisions.On("List", ctx).Return([]division.Division{
		{ID: 10, Number: division.SundayD2},
		{ID: 11, Number: division.SundayD1},
	}, nil).Once()
	f.matchups.On("List", ctx, matchup.ListFilter{WeekIDs: []int64{1, 2, 3, 4, 5}}).Return([]matchup.MatchUp{
		{ID: 100, WeekID: 4, Time: clockTime(11, 0), AwayTeamID: 1, HomeTeamID: 2,
			AwayGoalieStatus: matchup.GoalieSubNeeded, HomeGoalieStatus: matchup.GoalieSubNeeded},
		{ID: 101, WeekID: 4, Time: clockTime(10, 0), AwayTeamID: 3, HomeTeamID: 4,
			AwayGoalieID: &subID, AwayGoalieStatus: matchup.GoalieConfirmed, HomeGoalieStatus: matchup.GoalieSubNeeded},
		{ID: 102, WeekID: 1, Time: clockTime(9, 0), AwayTeamID: 1, HomeTeamID: 3,
			AwayGoalieStatus: matchup.GoalieUnconfirmed, HomeGoalieStatus: matchup.GoalieConfirmed},
	}, nil).Once()
	f.teams.On("ListByIDs", ctx, []int64{1, 2, 3, 4}).Return([]team.Team{
		{ID: 1, Name: "Bandits"}, {ID: 2, Name: "Rink Rats"}, {ID: 3, Name: "Wolves"}, {ID: 4, Name: "Bears"},
	}, nil).Once()
	f.rosters.On("ListByTeams", ctx, []int64{1, 2, 3, 4}).Return([]roster.Entry{
		{ID: 9, TeamID: 3, PlayerID: 7, Position1: roster.PositionGoalie},
	}, nil).Once()
	f.players.On("ListByIDs", ctx, []int64{42, 7}).Return([]player.Player{
		{ID: 42, FirstName: "Sam", LastName: "Sub"},
		{ID: 7, FirstName: "Pat", LastName: "Regular"},
	}, nil).Once()

	got, err := f.service.Board(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, got.SubNeededCount)
	require.NotEmpty(t, got.StatusChoices)

	weekIDs := make([]int64, 0, len(got.Weeks))
	for _, w := range got.Weeks {
		weekIDs = append(weekIDs, w.Week.ID)
	}
	require.Equal(t, []int64{4, 5, 3, 2, 1}, weekIDs)
	require.Equal(t, "Sunday D1", got.Weeks[0].DivisionName)
	require.Equal(t, "Sunday D2", got.Weeks[3].DivisionName)

	games := got.Weeks[0].Games
	require.Len(t, games, 2)
	require.Equal(t, int64(101), games[0].MatchUp.ID)
	require.Equal(t, int64(100), games[1].MatchUp.ID)
	require.Equal(t, "Sam Sub", games[0].Away.GoalieName)
	require.True(t, games[0].Away.IsSub)
	require.Equal(t, "Sub Needed", games[0].Home.StatusDisplay)
	require.Nil(t, games[0].Home.Goalie)
	require.Equal(t, "Wolves", games[0].AwayTeam.Name)

	late := got.Weeks[4].Games
	require.Len(t, late, 1)
	require.Equal(t, "Pat Regular", late[0].Home.GoalieName)
	require.True(t, late[0].Home.IsRosterGoalie)
	require.Equal(t, noGoalieOnRosterName, late[0].Away.GoalieName)
}

func TestGoalieStatusService_Board_NoUpcomingDates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newGoalieFixture(t)
	f.weeks.On("NextDates", ctx, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), false, 4).Return(nil, nil).Once()

	got, err := f.service.Board(ctx)
	require.NoError(t, err)
	require.Empty(t, got.Weeks)
	require.Zero(t, got.SubNeededCount)
}

func TestGoalieStatusService_CaptainPage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newGoalieFixture(t)
	teamID := int64(5)
	subID := int64(42)
	today := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	f.teams.On("GetActiveByAccessCode", ctx, "code-5").Return(team.Team{ID: teamID, Name: "Wolves"}, true, nil).Once()
	f.matchups.On("List", ctx, matchup.ListFilter{TeamID: &teamID, FromDate: today}).Return([]matchup.MatchUp{
		{ID: 200, WeekID: 8, Time: clockTime(10, 0), AwayTeamID: 6, HomeTeamID: teamID, HomeGoalieStatus: matchup.GoalieUnconfirmed},
		{ID: 201, WeekID: 7, Time: clockTime(12, 0), AwayTeamID: teamID, HomeTeamID: 6,
			AwayGoalieID: &subID, AwayGoalieStatus: matchup.GoalieConfirmed},
		{ID: 202, WeekID: 7, Time: clockTime(9, 0), AwayTeamID: 2, HomeTeamID: teamID, HomeGoalieStatus: matchup.GoalieConfirmed},
	}, nil).Once()
	f.teams.On("ListByIDs", ctx, []int64{5, 6, 2}).Return([]team.Team{
		{ID: 5, Name: "Wolves"}, {ID: 6, Name: "Bears"}, {ID: 2, Name: "Rink Rats"},
	}, nil).Once()
	f.rosters.On("ListByTeams", ctx, []int64{5, 6, 2}).Return([]roster.Entry{
		{ID: 1, TeamID: teamID, PlayerID: 3, Position1: roster.PositionWing},
		{ID: 2, TeamID: teamID, PlayerID: 7, Position1: roster.PositionGoalie, IsPrimaryGoalie: true},
	}, nil).Once()
	f.players.On("ListByIDs", ctx, []int64{42, 7}).Return([]player.Player{
		{ID: 42, FirstName: "Sam", LastName: "Sub"},
		{ID: 7, FirstName: "Pat", LastName: "Regular"},
	}, nil).Once()
	f.weeks.On("ListByIDs", ctx, []int64{8, 7}).Return([]week.Week{
		{ID: 7, Date: time.Date(2025, 5, 4, 0, 0, 0, 0, time.UTC)},
		{ID: 8, Date: time.Date(2025, 5, 11, 0, 0, 0, 0, time.UTC)},
	}, nil).Once()
	f.players.On("ListGoalies", ctx, player.GoalieQuery{ActiveOnly: true}).Return([]player.Player{
		{ID: 7, FirstName: "Pat", LastName: "Regular", IsActive: true},
	}, nil).Once()

	got, err := f.service.CaptainPage(ctx, "code-5")
	require.NoError(t, err)
	require.Len(t, got.Goalies, 1)
	require.NotNil(t, got.RosterGoalie)
	require.Equal(t, int64(7), got.RosterGoalie.ID)

	ids := make([]int64, 0, len(got.Matchups))
	for _, m := range got.Matchups {
		ids = append(ids, m.MatchUp.ID)
	}
	require.Equal(t, []int64{202, 201, 200}, ids)

	first := got.Matchups[0]
	require.True(t, first.IsHome)
	require.Equal(t, "Rink Rats", first.Opponent.Name)
	require.Equal(t, int64(7), first.CurrentGoalie.ID)
	require.Equal(t, matchup.GoalieConfirmed, first.CurrentStatus)

	second := got.Matchups[1]
	require.False(t, second.IsHome)
	require.Equal(t, int64(42), second.CurrentGoalie.ID)
	require.Equal(t, int64(7), second.RosterGoalie.ID)
}

func TestGoalieStatusService_CaptainPage_UnknownCode(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newGoalieFixture(t)

	_, err := f.service.CaptainPage(ctx, "   ")
	require.ErrorIs(t, err, ErrNotFound)
}
