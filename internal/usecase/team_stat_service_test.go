package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/riskibarqy/street-hockey-league/internal/domain/division"
	"github.com/riskibarqy/street-hockey-league/internal/domain/matchup"
	"github.com/riskibarqy/street-hockey-league/internal/domain/season"
	"github.com/riskibarqy/street-hockey-league/internal/domain/team"
	"github.com/riskibarqy/street-hockey-league/internal/domain/teamstat"
	divisionmock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/division"
	matchupmock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/matchup"
	seasonmock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/season"
	teammock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/team"
	teamstatmock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/teamstat"
	"github.com/stretchr/testify/mock"
	"go.uber.org/goleak"
)

func TestBuildTeamStats(t *testing.T) {
	t.Parallel()

	teams := []team.Team{{ID: 10}, {ID: 20}, {ID: 30}}
	results := []matchup.Result{
		{MatchUpID: 1, HomeTeamID: 10, AwayTeamID: 20, HomeGoals: 5, AwayGoals: 2, HasStats: true},
		{MatchUpID: 2, HomeTeamID: 20, AwayTeamID: 10, HomeGoals: 4, AwayGoals: 3, HasStats: true, WentToOvertime: true},
		{MatchUpID: 3, HomeTeamID: 10, AwayTeamID: 20, HomeGoals: 1, AwayGoals: 1, HasStats: true},
		{MatchUpID: 4, HomeTeamID: 10, AwayTeamID: 20, HomeGoals: 9, AwayGoals: 0, HasStats: true, IsPostseason: true},
		{MatchUpID: 5, HomeTeamID: 10, AwayTeamID: 20},
	}

	got := BuildTeamStats(7, 3, teams, results)
	want := []teamstat.TeamStat{
		{TeamID: 10, DivisionID: 3, SeasonID: 7, Win: 1, OTL: 1, Tie: 1, GoalsFor: 9, GoalsAgainst: 7},
		{TeamID: 20, DivisionID: 3, SeasonID: 7, OTW: 1, Loss: 1, Tie: 1, GoalsFor: 7, GoalsAgainst: 9},
		{TeamID: 30, DivisionID: 3, SeasonID: 7},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected team stats (-want +got):\n%s", diff)
	}
	if got[0].Points() != 5 {
		t.Fatalf("expected 5 points for team 10, got %d", got[0].Points())
	}
}

func TestTeamStatService_RecalculateSeason_ContinuesPastFailedDivision(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctx := context.Background()
	seasonRepo := seasonmock.NewRepository(t)
	divisionRepo := divisionmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	matchupRepo := matchupmock.NewRepository(t)
	teamStatRepo := teamstatmock.NewRepository(t)

	seasonRepo.On("GetByID", ctx, int64(7)).Return(season.Season{ID: 7, Year: 2025, Type: season.TypeFall}, true, nil).Once()
	divisionRepo.On("List", ctx).Return([]division.Division{{ID: 1, Number: 1}, {ID: 2, Number: 2}}, nil).Once()

	forDivision := func(id int64) interface{} {
		return mock.MatchedBy(func(f team.ListFilter) bool { return f.DivisionID != nil && *f.DivisionID == id })
	}
	resultsFor := func(id int64) interface{} {
		return mock.MatchedBy(func(f matchup.ResultFilter) bool {
			return f.DivisionID != nil && *f.DivisionID == id && f.PlayedOnly && f.Postseason != nil && !*f.Postseason
		})
	}

	teamRepo.On("List", mock.Anything, forDivision(1)).Return([]team.Team{{ID: 10}, {ID: 20}}, nil).Once()
	teamRepo.On("List", mock.Anything, forDivision(2)).Return([]team.Team{{ID: 30}}, nil).Once()
	matchupRepo.On("ListResults", mock.Anything, resultsFor(1)).Return([]matchup.Result{
		{HomeTeamID: 10, AwayTeamID: 20, HomeGoals: 2, AwayGoals: 1, HasStats: true},
	}, nil).Once()
	matchupRepo.On("ListResults", mock.Anything, resultsFor(2)).Return(nil, errors.New("db down")).Once()
	teamStatRepo.On("ReplaceForDivision", mock.Anything, int64(7), int64(1), mock.MatchedBy(func(rows []teamstat.TeamStat) bool {
		return len(rows) == 2 && rows[0].Win == 1 && rows[1].Loss == 1
	})).Return(nil).Once()

	service := NewTeamStatService(seasonRepo, divisionRepo, teamRepo, matchupRepo, teamStatRepo, 2, nil)
	got, err := service.RecalculateSeason(ctx, 7)
	if err != nil {
		t.Fatalf("RecalculateSeason error: %v", err)
	}
	if got.SuccessCount != 1 || got.FailedCount != 1 {
		t.Fatalf("unexpected counts: success=%d failed=%d", got.SuccessCount, got.FailedCount)
	}
	if len(got.Divisions) != 2 || got.Divisions[0].DivisionID != 1 || got.Divisions[1].Status != "failed" {
		t.Fatalf("unexpected division results: %+v", got.Divisions)
	}
	if got.Divisions[0].Teams != 2 || got.Divisions[0].Games != 1 {
		t.Fatalf("unexpected division 1 result: %+v", got.Divisions[0])
	}
}

func TestTeamStatService_RecalculateSeason_UnknownSeason(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seasonRepo := seasonmock.NewRepository(t)
	seasonRepo.On("GetByID", ctx, int64(99)).Return(season.Season{}, false, nil).Once()

	service := NewTeamStatService(seasonRepo, divisionmock.NewRepository(t), teammock.NewRepository(t),
		matchupmock.NewRepository(t), teamstatmock.NewRepository(t), 0, nil)
	if _, err := service.RecalculateSeason(ctx, 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
