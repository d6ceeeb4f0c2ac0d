package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/riskibarqy/street-hockey-league/internal/domain/division"
	"github.com/riskibarqy/street-hockey-league/internal/domain/matchup"
	"github.com/riskibarqy/street-hockey-league/internal/domain/player"
	"github.com/riskibarqy/street-hockey-league/internal/domain/referee"
	"github.com/riskibarqy/street-hockey-league/internal/domain/roster"
	"github.com/riskibarqy/street-hockey-league/internal/domain/season"
	"github.com/riskibarqy/street-hockey-league/internal/domain/standing"
	"github.com/riskibarqy/street-hockey-league/internal/domain/stat"
	"github.com/riskibarqy/street-hockey-league/internal/domain/team"
	"github.com/riskibarqy/street-hockey-league/internal/domain/week"
)

// Game is a matchup with the names and score needed to display it.
type Game struct {
	MatchUp   matchup.MatchUp
	Week      week.Week
	AwayTeam  string
	HomeTeam  string
	Refs      []string
	Played    bool
	AwayGoals int
	HomeGoals int
}

type ScheduleWeek struct {
	Week         week.Week
	DivisionName string
	Games        []Game
}

type BoxScoreLine struct {
	Stat   stat.Stat
	Player player.Player
}

type BoxScore struct {
	Game Game
	Away []BoxScoreLine
	Home []BoxScoreLine
}

type RosterLine struct {
	Entry  roster.Entry
	Player player.Player
}

type TeamDetail struct {
	Team         team.Team
	DivisionName string
	Season       *season.Season
	Roster       []RosterLine
	Games        []Game
	Standing     *standing.Row
}

type ScheduleService struct {
	seasonRepo   season.Repository
	divisionRepo division.Repository
	weekRepo     week.Repository
	matchupRepo  matchup.Repository
	teamRepo     team.Repository
	refRepo      referee.Repository
	statRepo     stat.Repository
	playerRepo   player.Repository
	rosterRepo   roster.Repository
	standings    *StandingsService
}

func NewScheduleService(
	seasonRepo season.Repository,
	divisionRepo division.Repository,
	weekRepo week.Repository,
	matchupRepo matchup.Repository,
	teamRepo team.Repository,
	refRepo referee.Repository,
	statRepo stat.Repository,
	playerRepo player.Repository,
	rosterRepo roster.Repository,
	standings *StandingsService,
) *ScheduleService {
	return &ScheduleService{
		seasonRepo:   seasonRepo,
		divisionRepo: divisionRepo,
		weekRepo:     weekRepo,
		matchupRepo:  matchupRepo,
		teamRepo:     teamRepo,
		refRepo:      refRepo,
		statRepo:     statRepo,
		playerRepo:   playerRepo,
		rosterRepo:   rosterRepo,
		standings:    standings,
	}
}

// Schedule lists the season's weeks by date then division, each with its games by time.
func (s *ScheduleService) Schedule(ctx context.Context, seasonID int64, divisionID *int64) ([]ScheduleWeek, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.Schedule")
	defer span.End()

	if err := s.ensureSeason(ctx, seasonID); err != nil {
		return nil, err
	}
	weeks, err := s.weekRepo.List(ctx, week.ListFilter{SeasonID: &seasonID, DivisionID: divisionID})
	if err != nil {
		return nil, fmt.Errorf("list weeks season=%d: %w", seasonID, err)
	}
	matchups, err := s.matchupRepo.List(ctx, matchup.ListFilter{SeasonID: &seasonID, DivisionID: divisionID})
	if err != nil {
		return nil, fmt.Errorf("list matchups season=%d: %w", seasonID, err)
	}
	results, err := s.matchupRepo.ListResults(ctx, matchup.ResultFilter{SeasonID: seasonID, DivisionID: divisionID})
	if err != nil {
		return nil, fmt.Errorf("list results season=%d: %w", seasonID, err)
	}

	games, err := s.assembleGames(ctx, matchups, weeks, results)
	if err != nil {
		return nil, err
	}
	numbers, err := s.divisionNumbers(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(weeks, func(i, j int) bool {
		a, b := weeks[i], weeks[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return numbers[a.DivisionID] < numbers[b.DivisionID]
	})
	byWeek := make(map[int64][]Game, len(weeks))
	for _, g := range games {
		byWeek[g.MatchUp.WeekID] = append(byWeek[g.MatchUp.WeekID], g)
	}
	for _, wg := range byWeek {
		sort.SliceStable(wg, func(i, j int) bool {
			return matchup.ClockString(wg[i].MatchUp.Time) < matchup.ClockString(wg[j].MatchUp.Time)
		})
	}
	out := make([]ScheduleWeek, 0, len(weeks))
	for _, w := range weeks {
		out = append(out, ScheduleWeek{
			Week:         w,
			DivisionName: division.DisplayName(numbers[w.DivisionID]),
			Games:        byWeek[w.ID],
		})
	}
	return out, nil
}

// Scores lists played games, newest date first.
func (s *ScheduleService) Scores(ctx context.Context, seasonID int64, divisionID *int64) ([]Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.Scores")
	defer span.End()

	if err := s.ensureSeason(ctx, seasonID); err != nil {
		return nil, err
	}
	results, err := s.matchupRepo.ListResults(ctx, matchup.ResultFilter{
		SeasonID:   seasonID,
		DivisionID: divisionID,
		PlayedOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("list results season=%d: %w", seasonID, err)
	}
	if len(results) == 0 {
		return []Game{}, nil
	}

	weekIDs := make([]int64, 0, len(results))
	for _, r := range results {
		weekIDs = append(weekIDs, r.WeekID)
	}
	weekIDs = uniqueIDs(weekIDs)
	matchups, err := s.matchupRepo.List(ctx, matchup.ListFilter{WeekIDs: weekIDs})
	if err != nil {
		return nil, fmt.Errorf("list matchups for scores: %w", err)
	}
	weeks, err := s.weekRepo.ListByIDs(ctx, weekIDs)
	if err != nil {
		return nil, fmt.Errorf("list weeks for scores: %w", err)
	}

	games, err := s.assembleGames(ctx, matchups, weeks, results)
	if err != nil {
		return nil, err
	}
	played := games[:0]
	for _, g := range games {
		if g.Played {
			played = append(played, g)
		}
	}
	sort.SliceStable(played, func(i, j int) bool {
		return played[i].Week.Date.After(played[j].Week.Date)
	})
	return played, nil
}

func (s *ScheduleService) MatchupDetail(ctx context.Context, matchupID int64) (BoxScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.MatchupDetail")
	defer span.End()

	if matchupID <= 0 {
		return BoxScore{}, fmt.Errorf("%w: matchup id is required", ErrInvalidInput)
	}
	m, exists, err := s.matchupRepo.GetByID(ctx, matchupID)
	if err != nil {
		return BoxScore{}, fmt.Errorf("get matchup: %w", err)
	}
	if !exists {
		return BoxScore{}, fmt.Errorf("%w: matchup=%d", ErrNotFound, matchupID)
	}
	w, exists, err := s.weekRepo.GetByID(ctx, m.WeekID)
	if err != nil {
		return BoxScore{}, fmt.Errorf("get week: %w", err)
	}
	if !exists {
		return BoxScore{}, fmt.Errorf("%w: week=%d", ErrNotFound, m.WeekID)
	}

	stats, err := s.statRepo.ListByMatchup(ctx, matchupID)
	if err != nil {
		return BoxScore{}, fmt.Errorf("list stats matchup=%d: %w", matchupID, err)
	}
	playerIDs := make([]int64, 0, len(stats))
	for _, st := range stats {
		playerIDs = append(playerIDs, st.PlayerID)
	}
	players, err := s.playerRepo.ListByIDs(ctx, uniqueIDs(playerIDs))
	if err != nil {
		return BoxScore{}, fmt.Errorf("list box score players: %w", err)
	}
	playersByID := make(map[int64]player.Player, len(players))
	for _, p := range players {
		playersByID[p.ID] = p
	}

	result := matchup.Result{MatchUpID: m.ID, HasStats: len(stats) > 0}
	out := BoxScore{}
	for _, st := range stats {
		line := BoxScoreLine{Stat: st, Player: playersByID[st.PlayerID]}
		switch st.TeamID {
		case m.HomeTeamID:
			out.Home = append(out.Home, line)
			result.HomeGoals += st.Goals
		case m.AwayTeamID:
			out.Away = append(out.Away, line)
			result.AwayGoals += st.Goals
		}
	}

	games, err := s.assembleGames(ctx, []matchup.MatchUp{m}, []week.Week{w}, []matchup.Result{result})
	if err != nil {
		return BoxScore{}, err
	}
	out.Game = games[0]
	return out, nil
}

// TeamDetail returns a team with its roster, games and standings row.
func (s *ScheduleService) TeamDetail(ctx context.Context, teamID int64) (TeamDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.TeamDetail")
	defer span.End()

	if teamID <= 0 {
		return TeamDetail{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	t, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return TeamDetail{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return TeamDetail{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}
	out := TeamDetail{Team: t}

	if t.DivisionID != nil {
		d, found, err := s.divisionRepo.GetByID(ctx, *t.DivisionID)
		if err != nil {
			return TeamDetail{}, fmt.Errorf("get division: %w", err)
		}
		if found {
			out.DivisionName = d.DisplayName()
		}
	}

	entries, err := s.rosterRepo.ListByTeams(ctx, []int64{teamID})
	if err != nil {
		return TeamDetail{}, fmt.Errorf("list roster team=%d: %w", teamID, err)
	}
	playerIDs := make([]int64, 0, len(entries))
	for _, e := range entries {
		playerIDs = append(playerIDs, e.PlayerID)
	}
	players, err := s.playerRepo.ListByIDs(ctx, uniqueIDs(playerIDs))
	if err != nil {
		return TeamDetail{}, fmt.Errorf("list roster players: %w", err)
	}
	playersByID := make(map[int64]player.Player, len(players))
	for _, p := range players {
		playersByID[p.ID] = p
	}
	for _, e := range entries {
		out.Roster = append(out.Roster, RosterLine{Entry: e, Player: playersByID[e.PlayerID]})
	}
	sort.SliceStable(out.Roster, func(i, j int) bool {
		return out.Roster[i].Player.SortName() < out.Roster[j].Player.SortName()
	})

	if t.SeasonID == nil {
		return out, nil
	}
	seasonID := *t.SeasonID
	if item, found, err := s.seasonRepo.GetByID(ctx, seasonID); err != nil {
		return TeamDetail{}, fmt.Errorf("get season: %w", err)
	} else if found {
		out.Season = &item
	}

	matchups, err := s.matchupRepo.List(ctx, matchup.ListFilter{SeasonID: &seasonID, TeamID: &teamID})
	if err != nil {
		return TeamDetail{}, fmt.Errorf("list team matchups: %w", err)
	}
	weeks, err := s.weekRepo.List(ctx, week.ListFilter{SeasonID: &seasonID, DivisionID: t.DivisionID})
	if err != nil {
		return TeamDetail{}, fmt.Errorf("list team weeks: %w", err)
	}
	results, err := s.matchupRepo.ListResults(ctx, matchup.ResultFilter{SeasonID: seasonID, DivisionID: t.DivisionID})
	if err != nil {
		return TeamDetail{}, fmt.Errorf("list team results: %w", err)
	}
	out.Games, err = s.assembleGames(ctx, matchups, weeks, results)
	if err != nil {
		return TeamDetail{}, err
	}

	if t.DivisionID != nil && s.standings != nil {
		rows, err := s.standings.ListByDivision(ctx, seasonID, *t.DivisionID)
		if err != nil {
			return TeamDetail{}, err
		}
		for i := range rows {
			if rows[i].TeamID == teamID {
				row := rows[i]
				out.Standing = &row
				break
			}
		}
	}
	return out, nil
}

// NextGameDay returns the games on the earliest week date on or after from,
// across every season, ordered by game time.
func (s *ScheduleService) NextGameDay(ctx context.Context, from time.Time) (time.Time, []Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.NextGameDay")
	defer span.End()

	dates, err := s.weekRepo.NextDates(ctx, from, false, 1)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("next week date: %w", err)
	}
	if len(dates) == 0 {
		return time.Time{}, []Game{}, nil
	}
	day := dates[0]
	weeks, err := s.weekRepo.List(ctx, week.ListFilter{Dates: []time.Time{day}})
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("list weeks on %s: %w", day.Format(week.DateLayout), err)
	}
	weekIDs := make([]int64, 0, len(weeks))
	for _, w := range weeks {
		weekIDs = append(weekIDs, w.ID)
	}
	if len(weekIDs) == 0 {
		return day, []Game{}, nil
	}
	matchups, err := s.matchupRepo.List(ctx, matchup.ListFilter{WeekIDs: weekIDs})
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("list matchups on %s: %w", day.Format(week.DateLayout), err)
	}
	sort.SliceStable(matchups, func(i, j int) bool {
		return matchup.ClockString(matchups[i].Time) < matchup.ClockString(matchups[j].Time)
	})
	games, err := s.assembleGames(ctx, matchups, weeks, nil)
	if err != nil {
		return time.Time{}, nil, err
	}
	return day, games, nil
}

func (s *ScheduleService) ensureSeason(ctx context.Context, seasonID int64) error {
	if seasonID <= 0 {
		return fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}
	_, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: season=%d", ErrNotFound, seasonID)
	}
	return nil
}

func (s *ScheduleService) divisionNumbers(ctx context.Context) (map[int64]int, error) {
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

// assembleGames resolves team and referee names for matchups, keeping their order.
func (s *ScheduleService) assembleGames(ctx context.Context, matchups []matchup.MatchUp, weeks []week.Week, results []matchup.Result) ([]Game, error) {
	if len(matchups) == 0 {
		return []Game{}, nil
	}

	teamIDs := make([]int64, 0, len(matchups)*2)
	refIDs := make([]int64, 0, len(matchups)*2)
	for _, m := range matchups {
		teamIDs = append(teamIDs, m.AwayTeamID, m.HomeTeamID)
		if m.Ref1ID != nil {
			refIDs = append(refIDs, *m.Ref1ID)
		}
		if m.Ref2ID != nil {
			refIDs = append(refIDs, *m.Ref2ID)
		}
	}

	teams, err := s.teamRepo.ListByIDs(ctx, uniqueIDs(teamIDs))
	if err != nil {
		return nil, fmt.Errorf("list matchup teams: %w", err)
	}
	teamNames := make(map[int64]string, len(teams))
	for _, t := range teams {
		teamNames[t.ID] = t.Name
	}

	refNames := map[int64]string{}
	if ids := uniqueIDs(refIDs); len(ids) > 0 {
		refs, err := s.refRepo.ListByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("list matchup refs: %w", err)
		}
		for _, r := range refs {
			refNames[r.ID] = r.FullName()
		}
	}

	weeksByID := make(map[int64]week.Week, len(weeks))
	for _, w := range weeks {
		weeksByID[w.ID] = w
	}
	resultsByID := make(map[int64]matchup.Result, len(results))
	for _, r := range results {
		resultsByID[r.MatchUpID] = r
	}

	out := make([]Game, 0, len(matchups))
	for _, m := range matchups {
		g := Game{
			MatchUp:  m,
			Week:     weeksByID[m.WeekID],
			AwayTeam: teamNames[m.AwayTeamID],
			HomeTeam: teamNames[m.HomeTeamID],
		}
		for _, refID := range []*int64{m.Ref1ID, m.Ref2ID} {
			if refID == nil {
				continue
			}
			if name, ok := refNames[*refID]; ok {
				g.Refs = append(g.Refs, name)
			}
		}
		if r, ok := resultsByID[m.ID]; ok && r.HasStats {
			g.Played = true
			g.AwayGoals = r.AwayGoals
			g.HomeGoals = r.HomeGoals
		}
		out = append(out, g)
	}
	return out, nil
}
