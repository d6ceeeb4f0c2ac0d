package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/riskibarqy/street-hockey-league/internal/domain/division"
	"github.com/riskibarqy/street-hockey-league/internal/domain/week"
	"github.com/riskibarqy/street-hockey-league/internal/platform/logging"
)

const (
	quickCancelLookaheadDays = 90
	quickCancelFallbackDates = 3
	bannerDateLayout         = "January 2"
)

// CancelledDate is one banner entry: a date and the divisions not playing.
type CancelledDate struct {
	Date      time.Time
	Label     string
	Divisions []string
}

type QuickCancelWeek struct {
	Week         week.Week
	DivisionName string
}

type QuickCancelDate struct {
	Date         time.Time
	Weeks        []QuickCancelWeek
	AllCancelled bool
	AnyCancelled bool
}

type QuickCancelWidget struct {
	Today time.Time
	Dates []QuickCancelDate
}

type CancellationService struct {
	weekRepo     week.Repository
	divisionRepo division.Repository
	clock        *Clock
	logger       *logging.Logger
}

func NewCancellationService(weekRepo week.Repository, divisionRepo division.Repository, clock *Clock, logger *logging.Logger) *CancellationService {
	if logger == nil {
		logger = logging.Default()
	}
	return &CancellationService{
		weekRepo:     weekRepo,
		divisionRepo: divisionRepo,
		clock:        clock,
		logger:       logger,
	}
}

// CancelledGames lists upcoming cancelled dates with their division names.
func (s *CancellationService) CancelledGames(ctx context.Context) ([]CancelledDate, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CancellationService.CancelledGames")
	defer span.End()

	weeks, err := s.weekRepo.List(ctx, week.ListFilter{From: s.clock.Today(), CancelledOnly: true})
	if err != nil {
		return nil, fmt.Errorf("list cancelled weeks: %w", err)
	}
	numbers, err := s.divisionNumbers(ctx)
	if err != nil {
		return nil, err
	}

	type seenKey struct {
		date       string
		divisionID int64
	}
	seen := make(map[seenKey]struct{}, len(weeks))
	byDate := make(map[string]*CancelledDate)
	order := make([]string, 0)
	perDate := make(map[string][]int64)

	for _, w := range weeks {
		if !w.IsCancelled {
			continue
		}
		key := seenKey{date: w.DateKey(), divisionID: w.DivisionID}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		if _, ok := byDate[key.date]; !ok {
			byDate[key.date] = &CancelledDate{Date: w.Date, Label: w.Date.Format(bannerDateLayout)}
			order = append(order, key.date)
		}
		perDate[key.date] = append(perDate[key.date], w.DivisionID)
	}

	sort.Strings(order)
	out := make([]CancelledDate, 0, len(order))
	for _, key := range order {
		item := byDate[key]
		ids := perDate[key]
		sort.SliceStable(ids, func(i, j int) bool { return numbers[ids[i]] < numbers[ids[j]] })
		for _, id := range ids {
			item.Divisions = append(item.Divisions, division.DisplayName(numbers[id]))
		}
		out = append(out, *item)
	}
	return out, nil
}

// QuickCancelWidget groups the weeks an operator may cancel, by date.
func (s *CancellationService) QuickCancelWidget(ctx context.Context) (QuickCancelWidget, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CancellationService.QuickCancelWidget")
	defer span.End()

	today := s.clock.Today()
	weeks, err := s.weekRepo.List(ctx, week.ListFilter{
		From: today,
		To:   today.AddDate(0, 0, quickCancelLookaheadDays),
	})
	if err != nil {
		return QuickCancelWidget{}, fmt.Errorf("list upcoming weeks: %w", err)
	}
	if len(weeks) == 0 {
		dates, err := s.weekRepo.NextDates(ctx, today, true, quickCancelFallbackDates)
		if err != nil {
			return QuickCancelWidget{}, fmt.Errorf("list next week dates: %w", err)
		}
		if len(dates) > 0 {
			weeks, err = s.weekRepo.List(ctx, week.ListFilter{Dates: dates})
			if err != nil {
				return QuickCancelWidget{}, fmt.Errorf("list fallback weeks: %w", err)
			}
		}
	}

	numbers, err := s.divisionNumbers(ctx)
	if err != nil {
		return QuickCancelWidget{}, err
	}
	return QuickCancelWidget{Today: today, Dates: bucketQuickCancel(weeks, numbers)}, nil
}

// bucketQuickCancel keeps the highest week id per (date, division) so
// overlapping seasons show a single row.
func bucketQuickCancel(weeks []week.Week, numbers map[int64]int) []QuickCancelDate {
	buckets := make(map[string]map[int64]week.Week)
	dates := make(map[string]time.Time)
	for _, w := range weeks {
		key := w.DateKey()
		if _, ok := buckets[key]; !ok {
			buckets[key] = make(map[int64]week.Week)
			dates[key] = w.Date
		}
		if current, ok := buckets[key][w.DivisionID]; !ok || w.ID > current.ID {
			buckets[key][w.DivisionID] = w
		}
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]QuickCancelDate, 0, len(keys))
	for _, key := range keys {
		item := QuickCancelDate{Date: dates[key], AllCancelled: true}
		for _, w := range buckets[key] {
			item.Weeks = append(item.Weeks, QuickCancelWeek{Week: w, DivisionName: division.DisplayName(numbers[w.DivisionID])})
			item.AllCancelled = item.AllCancelled && w.IsCancelled
			item.AnyCancelled = item.AnyCancelled || w.IsCancelled
		}
		sort.SliceStable(item.Weeks, func(i, j int) bool {
			a, b := numbers[item.Weeks[i].Week.DivisionID], numbers[item.Weeks[j].Week.DivisionID]
			if a != b {
				return a < b
			}
			return item.Weeks[i].Week.ID < item.Weeks[j].Week.ID
		})
		out = append(out, item)
	}
	return out
}

// ToggleWeek flips a single week's cancelled flag.
func (s *CancellationService) ToggleWeek(ctx context.Context, weekID int64) (week.Week, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CancellationService.ToggleWeek")
	defer span.End()

	if weekID <= 0 {
		return week.Week{}, fmt.Errorf("%w: week id is required", ErrInvalidInput)
	}
	_, exists, err := s.weekRepo.GetByID(ctx, weekID)
	if err != nil {
		return week.Week{}, fmt.Errorf("get week: %w", err)
	}
	if !exists {
		return week.Week{}, fmt.Errorf("%w: week=%d", ErrNotFound, weekID)
	}
	updated, err := s.weekRepo.Toggle(ctx, weekID)
	if err != nil {
		return week.Week{}, fmt.Errorf("toggle week=%d: %w", weekID, err)
	}
	s.logger.InfoContext(ctx, "week cancellation toggled", "week_id", weekID, "is_cancelled", updated.IsCancelled)
	return updated, nil
}

// SetDateCancelled applies cancelled to every week on date.
func (s *CancellationService) SetDateCancelled(ctx context.Context, date time.Time, cancelled bool) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CancellationService.SetDateCancelled")
	defer span.End()

	if date.IsZero() {
		return 0, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	count, err := s.weekRepo.SetCancelledOnDate(ctx, week.Day(date), cancelled)
	if err != nil {
		return 0, fmt.Errorf("set cancelled on date=%s: %w", date.Format(week.DateLayout), err)
	}
	s.logger.InfoContext(ctx, "date cancellation updated",
		"date", date.Format(week.DateLayout),
		"is_cancelled", cancelled,
		"weeks", count,
	)
	return count, nil
}

func (s *CancellationService) SetWeeksCancelled(ctx context.Context, weekIDs []int64, cancelled bool) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CancellationService.SetWeeksCancelled")
	defer span.End()

	ids := uniqueIDs(weekIDs)
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: at least one week id is required", ErrInvalidInput)
	}
	count, err := s.weekRepo.SetCancelled(ctx, ids, cancelled)
	if err != nil {
		return 0, fmt.Errorf("set weeks cancelled: %w", err)
	}
	return count, nil
}

func (s *CancellationService) divisionNumbers(ctx context.Context) (map[int64]int, error) {
	divisions, err := s.divisionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list divisions: %w", err)
	}
	out := make(map[int64]int, len(divisions))
	for _, d := range divisions {
		out[d.ID] = d.Number
	}
	return out, nil
}
