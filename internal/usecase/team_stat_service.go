package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/street-hockey-league/internal/domain/division"
	"github.com/riskibarqy/street-hockey-league/internal/domain/matchup"
	"github.com/riskibarqy/street-hockey-league/internal/domain/season"
	"github.com/riskibarqy/street-hockey-league/internal/domain/team"
	"github.com/riskibarqy/street-hockey-league/internal/domain/teamstat"
	"github.com/riskibarqy/street-hockey-league/internal/platform/logging"
)

const defaultRecalcWorkers = 4

type DivisionRecalcResult struct {
	DivisionID int64  `json:"division_id"`
	Teams      int    `json:"teams"`
	Games      int    `json:"games"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

type TeamStatRecalcResult struct {
	SeasonID     int64                  `json:"season_id"`
	SuccessCount int                    `json:"success_count"`
	FailedCount  int                    `json:"failed_count"`
	Divisions    []DivisionRecalcResult `json:"divisions"`
}

type TeamStatService struct {
	seasonRepo   season.Repository
	divisionRepo division.Repository
	teamRepo     team.Repository
	matchupRepo  matchup.Repository
	teamStatRepo teamstat.Repository
	workers      int
	logger       *logging.Logger
}

func NewTeamStatService(
	seasonRepo season.Repository,
	divisionRepo division.Repository,
	teamRepo team.Repository,
	matchupRepo matchup.Repository,
	teamStatRepo teamstat.Repository,
	workers int,
	logger *logging.Logger,
) *TeamStatService {
	if workers <= 0 {
		workers = defaultRecalcWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamStatService{
		seasonRepo:   seasonRepo,
		divisionRepo: divisionRepo,
		teamRepo:     teamRepo,
		matchupRepo:  matchupRepo,
		teamStatRepo: teamStatRepo,
		workers:      workers,
		logger:       logger,
	}
}

// RecalculateSeason rebuilds every division's team records from played
// regular-season matchups. Divisions run in parallel; one failing division
// does not stop the others.
func (s *TeamStatService) RecalculateSeason(ctx context.Context, seasonID int64) (TeamStatRecalcResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamStatService.RecalculateSeason")
	defer span.End()

	if seasonID <= 0 {
		return TeamStatRecalcResult{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}
	_, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return TeamStatRecalcResult{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return TeamStatRecalcResult{}, fmt.Errorf("%w: season=%d", ErrNotFound, seasonID)
	}

	divisions, err := s.divisionRepo.List(ctx)
	if err != nil {
		return TeamStatRecalcResult{}, fmt.Errorf("list divisions: %w", err)
	}

	result := TeamStatRecalcResult{SeasonID: seasonID}
	if len(divisions) == 0 {
		return result, nil
	}

	results := make(chan DivisionRecalcResult, len(divisions))
	var failedCount atomic.Int32

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return TeamStatRecalcResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, d := range divisions {
		d := d
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := DivisionRecalcResult{DivisionID: d.ID, Status: "success"}
			teams, games, err := s.recalculateDivision(ctx, seasonID, d.ID)
			row.Teams, row.Games = teams, games
			if err != nil {
				failedCount.Add(1)
				row.Status = "failed"
				row.Message = err.Error()
				s.logger.WarnContext(ctx, "recalculate division team stats failed",
					"season_id", seasonID,
					"division_id", d.ID,
					"error", err,
				)
			}
			row.DurationMs = time.Since(start).Milliseconds()
			results <- row
		}); err != nil {
			workers.Done()
			return TeamStatRecalcResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Divisions = append(result.Divisions, row)
	}
	sort.SliceStable(result.Divisions, func(i, j int) bool {
		return result.Divisions[i].DivisionID < result.Divisions[j].DivisionID
	})
	result.FailedCount = int(failedCount.Load())
	result.SuccessCount = len(result.Divisions) - result.FailedCount

	s.logger.InfoContext(ctx, "team stats recalculated",
		"season_id", seasonID,
		"divisions", len(result.Divisions),
		"failed", result.FailedCount,
	)
	return result, nil
}

// RecalculateCurrent recalculates the season flagged current.
func (s *TeamStatService) RecalculateCurrent(ctx context.Context) (TeamStatRecalcResult, error) {
	current, exists, err := s.seasonRepo.Current(ctx)
	if err != nil {
		return TeamStatRecalcResult{}, fmt.Errorf("get current season: %w", err)
	}
	if !exists {
		return TeamStatRecalcResult{}, fmt.Errorf("%w: no current season", ErrNotFound)
	}
	return s.RecalculateSeason(ctx, current.ID)
}

func (s *TeamStatService) recalculateDivision(ctx context.Context, seasonID, divisionID int64) (int, int, error) {
	teams, err := s.teamRepo.List(ctx, team.ListFilter{SeasonID: &seasonID, DivisionID: &divisionID})
	if err != nil {
		return 0, 0, fmt.Errorf("list teams: %w", err)
	}
	regular := false
	results, err := s.matchupRepo.ListResults(ctx, matchup.ResultFilter{
		SeasonID:   seasonID,
		DivisionID: &divisionID,
		Postseason: &regular,
		PlayedOnly: true,
	})
	if err != nil {
		return 0, 0, fmt.Errorf("list results: %w", err)
	}

	rows := BuildTeamStats(seasonID, divisionID, teams, results)
	if len(rows) == 0 {
		return 0, len(results), nil
	}
	if err := s.teamStatRepo.ReplaceForDivision(ctx, seasonID, divisionID, rows); err != nil {
		return 0, 0, fmt.Errorf("replace team stats: %w", err)
	}
	return len(rows), len(results), nil
}

// BuildTeamStats folds played games into one record per team. Teams without
// games get an empty record so they still show in the table.
func BuildTeamStats(seasonID, divisionID int64, teams []team.Team, results []matchup.Result) []teamstat.TeamStat {
	byTeam := make(map[int64]*teamstat.TeamStat, len(teams))
	order := make([]int64, 0, len(teams))
	get := func(teamID int64) *teamstat.TeamStat {
		row, ok := byTeam[teamID]
		if !ok {
			row = &teamstat.TeamStat{TeamID: teamID, DivisionID: divisionID, SeasonID: seasonID}
			byTeam[teamID] = row
			order = append(order, teamID)
		}
		return row
	}

	for _, t := range teams {
		get(t.ID)
	}
	for _, r := range results {
		if !r.HasStats || r.IsPostseason {
			continue
		}
		get(r.HomeTeamID).AddResult(r.HomeGoals, r.AwayGoals, r.WentToOvertime)
		get(r.AwayTeamID).AddResult(r.AwayGoals, r.HomeGoals, r.WentToOvertime)
	}

	out := make([]teamstat.TeamStat, 0, len(order))
	for _, id := range order {
		out = append(out, *byTeam[id])
	}
	return out
}
