package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/street-hockey-league/internal/domain/matchup"
	"github.com/riskibarqy/street-hockey-league/internal/domain/season"
	"github.com/riskibarqy/street-hockey-league/internal/domain/team"
	"github.com/riskibarqy/street-hockey-league/internal/domain/validation"
	"github.com/riskibarqy/street-hockey-league/internal/domain/week"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func importFixtureTeams() []team.Team {
	return []team.Team{
		{ID: 1, Name: "Bandits", SeasonID: int64Ptr(30), DivisionID: int64Ptr(2)},
		{ID: 2, Name: "Rink Rats", SeasonID: int64Ptr(30), DivisionID: int64Ptr(2)},
	}
}

func TestAdminService_ImportSchedule_ReusesExistingWeek(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newAdminFixture(t)
	existing := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	fresh := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	gameTime := time.Date(0, 1, 1, 10, 0, 0, 0, time.UTC)

	f.seasons.On("GetByID", ctx, int64(30)).Return(season.Season{ID: 30}, true, nil).Once()
	f.teams.On("ListByIDs", ctx, []int64{1, 2}).Return(importFixtureTeams(), nil).Once()
	f.weeks.On("List", ctx, week.ListFilter{SeasonID: int64Ptr(30), DivisionID: int64Ptr(2)}).
		Return([]week.Week{{ID: 7, SeasonID: 30, DivisionID: 2, Date: existing}}, nil).Once()
	f.weeks.On("Create", ctx, week.Week{DivisionID: 2, SeasonID: 30, Date: fresh}).
		Return(week.Week{ID: 8, DivisionID: 2, SeasonID: 30, Date: fresh}, nil).Once()
	f.matchups.On("Create", ctx, mock.MatchedBy(func(m matchup.MatchUp) bool {
		return m.WeekID == 7 && m.AwayTeamID == 1 && m.HomeTeamID == 2 && m.AwayGoalieStatus == matchup.GoalieUnconfirmed
	})).Return(matchup.MatchUp{ID: 100}, nil).Once()
	f.matchups.On("Create", ctx, mock.MatchedBy(func(m matchup.MatchUp) bool {
		return m.WeekID == 8 && m.AwayTeamID == 2 && m.HomeTeamID == 1
	})).Return(matchup.MatchUp{ID: 101}, nil).Once()

	got, err := f.service.ImportSchedule(ctx, ScheduleImport{
		SeasonID:   30,
		DivisionID: 2,
		Weeks: []ScheduleImportWeek{
			{Date: existing, Matchups: []ScheduleImportMatchup{{Time: gameTime, AwayTeamID: 1, HomeTeamID: 2}}},
			{Date: fresh, Matchups: []ScheduleImportMatchup{{Time: gameTime, AwayTeamID: 2, HomeTeamID: 1}}},
		},
	})
	require.NoError(t, err)
	require.Equal(t, ScheduleImportResult{WeeksCreated: 1, WeeksReused: 1, MatchupsCreated: 2}, got)
}

func TestAdminService_ImportSchedule_DryRunWritesNothing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newAdminFixture(t)
	f.seasons.On("GetByID", ctx, int64(30)).Return(season.Season{ID: 30}, true, nil).Once()
	f.teams.On("ListByIDs", ctx, []int64{1, 2}).Return(importFixtureTeams(), nil).Once()
	f.weeks.On("List", ctx, mock.Anything).Return(nil, nil).Once()

	got, err := f.service.ImportSchedule(ctx, ScheduleImport{
		SeasonID:   30,
		DivisionID: 2,
		DryRun:     true,
		Weeks: []ScheduleImportWeek{{
			Date:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			Matchups: []ScheduleImportMatchup{{AwayTeamID: 1, HomeTeamID: 2}},
		}},
	})
	require.NoError(t, err)
	require.Equal(t, ScheduleImportResult{WeeksCreated: 1, MatchupsCreated: 1, DryRun: true}, got)
	f.weeks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.matchups.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdminService_ImportSchedule_RejectsTeamFromOtherDivision(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newAdminFixture(t)
	teams := importFixtureTeams()
	teams[1].DivisionID = int64Ptr(3)
	f.seasons.On("GetByID", ctx, int64(30)).Return(season.Season{ID: 30}, true, nil).Once()
	f.teams.On("ListByIDs", ctx, []int64{1, 2, 9}).Return(teams, nil).Once()

	_, err := f.service.ImportSchedule(ctx, ScheduleImport{
		SeasonID:   30,
		DivisionID: 2,
		Weeks: []ScheduleImportWeek{{
			Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			Matchups: []ScheduleImportMatchup{
				{AwayTeamID: 1, HomeTeamID: 2},
				{AwayTeamID: 9, HomeTeamID: 1},
			},
		}},
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	fields := validation.Fields(err)
	require.Len(t, fields, 2)
	require.Contains(t, fields[0].Message, `"Rink Rats" is not in division 2`)
	require.Contains(t, fields[1].Message, "team 9 does not exist")
}

func TestAdminService_ImportSchedule_UnknownSeason(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newAdminFixture(t)
	f.seasons.On("GetByID", ctx, int64(99)).Return(season.Season{}, false, nil).Once()

	_, err := f.service.ImportSchedule(ctx, ScheduleImport{SeasonID: 99, DivisionID: 2})
	require.ErrorIs(t, err, ErrNotFound)
}
