package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/street-hockey-league/internal/domain/division"
	"github.com/riskibarqy/street-hockey-league/internal/domain/player"
	"github.com/riskibarqy/street-hockey-league/internal/domain/playerstats"
	"github.com/riskibarqy/street-hockey-league/internal/domain/season"
	"github.com/riskibarqy/street-hockey-league/internal/domain/team"
	"github.com/sourcegraph/conc/iter"
)

const (
	defaultHallOfFameLimit = 10
	maxHallOfFameLimit     = 100
	noDivisionName         = "No Division"
)

// DivisionPlayerStats holds every stat line of one division. DivisionID is
// nil for teams without a division.
type DivisionPlayerStats struct {
	DivisionID   *int64
	DivisionName string
	Lines        []playerstats.Line
}

type DivisionLeaders struct {
	DivisionID   *int64
	DivisionName string
	Offense      []playerstats.Line
	Goalies      []playerstats.Line
}

type TrendPoint struct {
	SeasonID    int64   `json:"season_id"`
	Label       string  `json:"label"`
	Goals       int     `json:"goals"`
	Assists     int     `json:"assists"`
	Points      int     `json:"points"`
	GamesPlayed int     `json:"games_played"`
	GAA         float64 `json:"gaa"`
}

type ChampionTeam struct {
	Team   team.Team
	Season season.Season
}

type HallOfFame struct {
	Scope     playerstats.Scope
	Goals     []playerstats.CareerLine
	Assists   []playerstats.CareerLine
	Points    []playerstats.CareerLine
	Champions []ChampionTeam
}

type PlayerProfile struct {
	Player   player.Player
	Scope    playerstats.Scope
	Seasons  []playerstats.SeasonLine
	Trend    []TrendPoint
	Career   playerstats.Totals
	Averages playerstats.Averages
}

type PlayerStatsService struct {
	statsRepo    playerstats.Repository
	playerRepo   player.Repository
	seasonRepo   season.Repository
	divisionRepo division.Repository
	teamRepo     team.Repository
}

func NewPlayerStatsService(
	statsRepo playerstats.Repository,
	playerRepo player.Repository,
	seasonRepo season.Repository,
	divisionRepo division.Repository,
	teamRepo team.Repository,
) *PlayerStatsService {
	return &PlayerStatsService{
		statsRepo:    statsRepo,
		playerRepo:   playerRepo,
		seasonRepo:   seasonRepo,
		divisionRepo: divisionRepo,
		teamRepo:     teamRepo,
	}
}

func (s *PlayerStatsService) SeasonStats(ctx context.Context, seasonID int64, scope playerstats.Scope) ([]DivisionPlayerStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.SeasonStats")
	defer span.End()

	lines, names, err := s.seasonLines(ctx, seasonID, scope)
	if err != nil {
		return nil, err
	}

	buckets := groupLinesByDivision(lines, names)
	out := make([]DivisionPlayerStats, 0, len(buckets))
	for _, b := range buckets {
		sort.SliceStable(b.lines, func(i, j int) bool {
			if b.lines[i].Points() != b.lines[j].Points() {
				return b.lines[i].Points() > b.lines[j].Points()
			}
			return b.lines[i].Goals > b.lines[j].Goals
		})
		out = append(out, DivisionPlayerStats{DivisionID: b.divisionID, DivisionName: b.name, Lines: b.lines})
	}
	return out, nil
}

// LeagueLeaders builds offensive and goalie boards for each division.
func (s *PlayerStatsService) LeagueLeaders(ctx context.Context, seasonID int64, scope playerstats.Scope) ([]DivisionLeaders, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.LeagueLeaders")
	defer span.End()

	lines, names, err := s.seasonLines(ctx, seasonID, scope)
	if err != nil {
		return nil, err
	}

	buckets := groupLinesByDivision(lines, names)
	return iter.Map(buckets, func(item **divisionBucket) DivisionLeaders {
		b := *item
		offense, goalies := playerstats.Leaders(b.lines)
		return DivisionLeaders{
			DivisionID:   b.divisionID,
			DivisionName: b.name,
			Offense:      offense,
			Goalies:      goalies,
		}
	}), nil
}

// AverageStats divides scoped career totals by every season the player was
// rostered, whatever the scope.
func (s *PlayerStatsService) AverageStats(ctx context.Context, playerID int64, scope playerstats.Scope) (playerstats.Averages, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.AverageStats")
	defer span.End()

	if err := s.ensurePlayer(ctx, playerID); err != nil {
		return playerstats.Averages{}, err
	}
	seasons, err := s.statsRepo.ListPlayerSeasons(ctx, playerID, scope)
	if err != nil {
		return playerstats.Averages{}, fmt.Errorf("list player seasons player=%d: %w", playerID, err)
	}
	rostered, err := s.statsRepo.CountSeasonsRostered(ctx, playerID)
	if err != nil {
		return playerstats.Averages{}, fmt.Errorf("count rostered seasons player=%d: %w", playerID, err)
	}
	return playerstats.AveragesFor(playerstats.Sum(seasons), rostered), nil
}

func (s *PlayerStatsService) PlayerTrend(ctx context.Context, playerID int64, scope playerstats.Scope) ([]TrendPoint, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.PlayerTrend")
	defer span.End()

	if err := s.ensurePlayer(ctx, playerID); err != nil {
		return nil, err
	}
	seasons, err := s.statsRepo.ListPlayerSeasons(ctx, playerID, scope)
	if err != nil {
		return nil, fmt.Errorf("list player seasons player=%d: %w", playerID, err)
	}
	return trendPoints(seasons), nil
}

func (s *PlayerStatsService) PlayerProfile(ctx context.Context, playerID int64, scope playerstats.Scope) (PlayerProfile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.PlayerProfile")
	defer span.End()

	if playerID <= 0 {
		return PlayerProfile{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return PlayerProfile{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return PlayerProfile{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	seasons, err := s.statsRepo.ListPlayerSeasons(ctx, playerID, scope)
	if err != nil {
		return PlayerProfile{}, fmt.Errorf("list player seasons player=%d: %w", playerID, err)
	}
	rostered, err := s.statsRepo.CountSeasonsRostered(ctx, playerID)
	if err != nil {
		return PlayerProfile{}, fmt.Errorf("count rostered seasons player=%d: %w", playerID, err)
	}

	totals := playerstats.Sum(seasons)
	return PlayerProfile{
		Player:   p,
		Scope:    scope,
		Seasons:  seasons,
		Trend:    trendPoints(seasons),
		Career:   totals,
		Averages: playerstats.AveragesFor(totals, rostered),
	}, nil
}

// HallOfFame lists career leaders and every championship team.
func (s *PlayerStatsService) HallOfFame(ctx context.Context, scope playerstats.Scope, limit int) (HallOfFame, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.HallOfFame")
	defer span.End()

	if limit <= 0 {
		limit = defaultHallOfFameLimit
	}
	if limit > maxHallOfFameLimit {
		limit = maxHallOfFameLimit
	}

	out := HallOfFame{Scope: scope}
	boards := []struct {
		metric playerstats.Metric
		dst    *[]playerstats.CareerLine
	}{
		{playerstats.MetricGoals, &out.Goals},
		{playerstats.MetricAssists, &out.Assists},
		{playerstats.MetricPoints, &out.Points},
	}
	for _, board := range boards {
		lines, err := s.statsRepo.CareerLeaders(ctx, scope, board.metric, limit)
		if err != nil {
			return HallOfFame{}, fmt.Errorf("list career leaders metric=%s: %w", board.metric, err)
		}
		sortCareerLines(lines, board.metric)
		*board.dst = lines
	}

	champions, err := s.champions(ctx)
	if err != nil {
		return HallOfFame{}, err
	}
	out.Champions = champions
	return out, nil
}

func (s *PlayerStatsService) champions(ctx context.Context) ([]ChampionTeam, error) {
	teams, err := s.teamRepo.List(ctx, team.ListFilter{ChampionsOnly: true})
	if err != nil {
		return nil, fmt.Errorf("list champion teams: %w", err)
	}

	seasonIDs := make([]int64, 0, len(teams))
	for _, t := range teams {
		if t.SeasonID != nil {
			seasonIDs = append(seasonIDs, *t.SeasonID)
		}
	}
	seasons, err := s.seasonRepo.ListByIDs(ctx, uniqueIDs(seasonIDs))
	if err != nil {
		return nil, fmt.Errorf("list champion seasons: %w", err)
	}
	byID := make(map[int64]season.Season, len(seasons))
	for _, item := range seasons {
		byID[item.ID] = item
	}

	out := make([]ChampionTeam, 0, len(teams))
	for _, t := range teams {
		var item season.Season
		if t.SeasonID != nil {
			item = byID[*t.SeasonID]
		}
		out = append(out, ChampionTeam{Team: t, Season: item})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return season.Newer(out[i].Season, out[j].Season)
	})
	return out, nil
}

func (s *PlayerStatsService) seasonLines(ctx context.Context, seasonID int64, scope playerstats.Scope) ([]playerstats.Line, map[int64]division.Division, error) {
	if seasonID <= 0 {
		return nil, nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}
	_, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return nil, nil, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return nil, nil, fmt.Errorf("%w: season=%d", ErrNotFound, seasonID)
	}

	lines, err := s.statsRepo.ListSeasonLines(ctx, seasonID, scope)
	if err != nil {
		return nil, nil, fmt.Errorf("list season stat lines season=%d: %w", seasonID, err)
	}
	divisions, err := s.divisionRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list divisions: %w", err)
	}
	byID := make(map[int64]division.Division, len(divisions))
	for _, d := range divisions {
		byID[d.ID] = d
	}
	return lines, byID, nil
}

func (s *PlayerStatsService) ensurePlayer(ctx context.Context, playerID int64) error {
	if playerID <= 0 {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	_, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}
	return nil
}

type divisionBucket struct {
	divisionID *int64
	number     int
	name       string
	lines      []playerstats.Line
}

// groupLinesByDivision buckets lines by division number; lines without a
// division collapse into one trailing bucket.
func groupLinesByDivision(lines []playerstats.Line, divisions map[int64]division.Division) []*divisionBucket {
	byKey := make(map[int64]*divisionBucket)
	var none *divisionBucket
	for _, l := range lines {
		if l.DivisionID == nil {
			if none == nil {
				none = &divisionBucket{name: noDivisionName}
			}
			none.lines = append(none.lines, l)
			continue
		}
		b, ok := byKey[*l.DivisionID]
		if !ok {
			id := *l.DivisionID
			d, known := divisions[id]
			number := int(id)
			if known {
				number = d.Number
			}
			b = &divisionBucket{divisionID: &id, number: number, name: division.DisplayName(number)}
			byKey[id] = b
		}
		b.lines = append(b.lines, l)
	}

	out := make([]*divisionBucket, 0, len(byKey)+1)
	for _, b := range byKey {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].number < out[j].number
	})
	if none != nil {
		out = append(out, none)
	}
	return out
}

// trendPoints folds per-team lines into one point per season, keeping the
// order the seasons first appear in.
func trendPoints(seasons []playerstats.SeasonLine) []TrendPoint {
	type seasonTotals struct {
		line   playerstats.SeasonLine
		totals playerstats.Totals
	}
	index := make(map[int64]int, len(seasons))
	folded := make([]seasonTotals, 0, len(seasons))
	for _, l := range seasons {
		i, ok := index[l.SeasonID]
		if !ok {
			i = len(folded)
			index[l.SeasonID] = i
			folded = append(folded, seasonTotals{line: l})
		}
		t := &folded[i].totals
		t.Goals += l.Goals
		t.Assists += l.Assists
		t.GoalsAgainst += l.GoalsAgainst
		t.GamesPlayed += l.GamesPlayed
	}

	out := make([]TrendPoint, 0, len(folded))
	for _, f := range folded {
		label := season.Season{Year: f.line.Year, Type: season.Type(f.line.SeasonType)}.Label()
		out = append(out, TrendPoint{
			SeasonID:    f.line.SeasonID,
			Label:       label,
			Goals:       f.totals.Goals,
			Assists:     f.totals.Assists,
			Points:      f.totals.Goals + f.totals.Assists,
			GamesPlayed: f.totals.GamesPlayed,
			GAA:         playerstats.GoalsAgainstAverage(f.totals.GoalsAgainst, f.totals.GamesPlayed),
		})
	}
	return out
}

func sortCareerLines(lines []playerstats.CareerLine, metric playerstats.Metric) {
	value := func(c playerstats.CareerLine) int {
		switch metric {
		case playerstats.MetricAssists:
			return c.Assists
		case playerstats.MetricPoints:
			return c.Points()
		default:
			return c.Goals
		}
	}
	sort.SliceStable(lines, func(i, j int) bool {
		a, b := lines[i], lines[j]
		if value(a) != value(b) {
			return value(a) > value(b)
		}
		if !strings.EqualFold(a.LastName, b.LastName) {
			return strings.ToLower(a.LastName) < strings.ToLower(b.LastName)
		}
		return strings.ToLower(a.FirstName) < strings.ToLower(b.FirstName)
	})
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
