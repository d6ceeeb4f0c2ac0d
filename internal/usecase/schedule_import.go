package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/street-hockey-league/internal/domain/matchup"
	"github.com/riskibarqy/street-hockey-league/internal/domain/team"
	"github.com/riskibarqy/street-hockey-league/internal/domain/validation"
	"github.com/riskibarqy/street-hockey-league/internal/domain/week"
)

type ScheduleImportMatchup struct {
	Time         time.Time
	AwayTeamID   int64
	HomeTeamID   int64
	IsPostseason bool
	Notes        string
}

type ScheduleImportWeek struct {
	Date     time.Time
	Matchups []ScheduleImportMatchup
}

// ScheduleImport is a block of game days for one division in one season.
type ScheduleImport struct {
	SeasonID   int64
	DivisionID int64
	Weeks      []ScheduleImportWeek
	DryRun     bool
}

type ScheduleImportResult struct {
	WeeksCreated    int
	WeeksReused     int
	MatchupsCreated int
	DryRun          bool
}

// ImportSchedule creates the weeks and matchups in input. A week already on
// the calendar for the division and date is reused. Every team must belong
// to the season and division; nothing is written when one does not.
func (s *AdminService) ImportSchedule(ctx context.Context, input ScheduleImport) (ScheduleImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.ImportSchedule")
	defer span.End()

	if _, err := s.league.GetSeason(ctx, input.SeasonID); err != nil {
		return ScheduleImportResult{}, err
	}
	if input.DivisionID <= 0 {
		return ScheduleImportResult{}, fmt.Errorf("%w: division id is required", ErrInvalidInput)
	}
	if len(input.Weeks) == 0 {
		return ScheduleImportResult{}, fmt.Errorf("%w: schedule has no weeks", ErrInvalidInput)
	}
	if err := s.checkImportTeams(ctx, input); err != nil {
		return ScheduleImportResult{}, err
	}

	existing, err := s.weekRepo.List(ctx, week.ListFilter{SeasonID: &input.SeasonID, DivisionID: &input.DivisionID})
	if err != nil {
		return ScheduleImportResult{}, fmt.Errorf("list weeks: %w", err)
	}
	byDate := make(map[string]week.Week, len(existing))
	for _, w := range existing {
		byDate[w.DateKey()] = w
	}

	result := ScheduleImportResult{DryRun: input.DryRun}
	for _, in := range input.Weeks {
		day := week.Day(in.Date)
		w, ok := byDate[day.Format(week.DateLayout)]
		switch {
		case ok:
			result.WeeksReused++
		case input.DryRun:
			result.WeeksCreated++
		default:
			w, err = s.CreateWeek(ctx, week.Week{DivisionID: input.DivisionID, SeasonID: input.SeasonID, Date: day})
			if err != nil {
				return result, fmt.Errorf("week %s: %w", day.Format(week.DateLayout), err)
			}
			byDate[w.DateKey()] = w
			result.WeeksCreated++
		}

		for _, m := range in.Matchups {
			if input.DryRun {
				result.MatchupsCreated++
				continue
			}
			if _, err := s.SaveMatchup(ctx, matchup.MatchUp{
				WeekID:       w.ID,
				Time:         m.Time,
				AwayTeamID:   m.AwayTeamID,
				HomeTeamID:   m.HomeTeamID,
				IsPostseason: m.IsPostseason,
				Notes:        m.Notes,
			}); err != nil {
				return result, fmt.Errorf("week %s matchup %d vs %d: %w", w.DateKey(), m.AwayTeamID, m.HomeTeamID, err)
			}
			result.MatchupsCreated++
		}
	}

	s.logger.InfoContext(ctx, "schedule imported",
		"season_id", input.SeasonID,
		"division_id", input.DivisionID,
		"weeks_created", result.WeeksCreated,
		"weeks_reused", result.WeeksReused,
		"matchups", result.MatchupsCreated,
		"dry_run", input.DryRun,
	)
	return result, nil
}

func (s *AdminService) checkImportTeams(ctx context.Context, input ScheduleImport) error {
	var ids []int64
	seen := make(map[int64]struct{})
	for _, w := range input.Weeks {
		for _, m := range w.Matchups {
			for _, id := range []int64{m.AwayTeamID, m.HomeTeamID} {
				if _, ok := seen[id]; ok {
					continue
				}
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	if len(ids) == 0 {
		return nil
	}

	teams, err := s.teamRepo.ListByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("list teams: %w", err)
	}
	byID := make(map[int64]team.Team, len(teams))
	for _, t := range teams {
		byID[t.ID] = t
	}

	var errs validation.Errors
	for _, id := range ids {
		t, ok := byID[id]
		switch {
		case !ok:
			errs.Add("team", fmt.Sprintf("team %d does not exist", id))
		case t.SeasonID == nil || *t.SeasonID != input.SeasonID:
			errs.Add("team", fmt.Sprintf("team %q is not in season %d", t.Name, input.SeasonID))
		case t.DivisionID == nil || *t.DivisionID != input.DivisionID:
			errs.Add("team", fmt.Sprintf("team %q is not in division %d", t.Name, input.DivisionID))
		}
	}
	if err := errs.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}
