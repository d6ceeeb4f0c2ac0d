package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/street-hockey-league/internal/domain/matchup"
	"github.com/riskibarqy/street-hockey-league/internal/domain/player"
	"github.com/riskibarqy/street-hockey-league/internal/domain/roster"
	"github.com/riskibarqy/street-hockey-league/internal/domain/season"
	"github.com/riskibarqy/street-hockey-league/internal/domain/stat"
	"github.com/riskibarqy/street-hockey-league/internal/domain/team"
	"github.com/riskibarqy/street-hockey-league/internal/domain/teamstat"
	"github.com/riskibarqy/street-hockey-league/internal/domain/week"
	"github.com/riskibarqy/street-hockey-league/internal/platform/accesscode"
	"github.com/riskibarqy/street-hockey-league/internal/platform/logging"
)

const (
	autocompleteLimit       = 20
	recentGoalieSeasonYears = 2
)

// AdminMatchupFilter mirrors the matchup list filters. A division filter
// wins over a season filter; neither means the current season.
type AdminMatchupFilter struct {
	DivisionID *int64
	SeasonID   *int64
}

type AdminMatchupList struct {
	Season   *season.Season
	Matchups []matchup.MatchUp
}

type MatchupStatChoices struct {
	Players []player.Player
	Teams   []team.Team
}

type AdminService struct {
	league       *LeagueService
	weekRepo     week.Repository
	matchupRepo  matchup.Repository
	teamRepo     team.Repository
	rosterRepo   roster.Repository
	playerRepo   player.Repository
	statRepo     stat.Repository
	teamStatRepo teamstat.Repository
	rollover     SeasonRolloverStore
	codes        accesscode.Generator
	clock        *Clock
	logger       *logging.Logger
}

func NewAdminService(
	league *LeagueService,
	weekRepo week.Repository,
	matchupRepo matchup.Repository,
	teamRepo team.Repository,
	rosterRepo roster.Repository,
	playerRepo player.Repository,
	statRepo stat.Repository,
	teamStatRepo teamstat.Repository,
	rollover SeasonRolloverStore,
	codes accesscode.Generator,
	clock *Clock,
	logger *logging.Logger,
) *AdminService {
	if codes == nil {
		codes = accesscode.NewUUIDGenerator()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &AdminService{
		league:       league,
		weekRepo:     weekRepo,
		matchupRepo:  matchupRepo,
		teamRepo:     teamRepo,
		rosterRepo:   rosterRepo,
		playerRepo:   playerRepo,
		statRepo:     statRepo,
		teamStatRepo: teamStatRepo,
		rollover:     rollover,
		codes:        codes,
		clock:        clock,
		logger:       logger,
	}
}

func (s *AdminService) ListMatchups(ctx context.Context, filter AdminMatchupFilter) (AdminMatchupList, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.ListMatchups")
	defer span.End()

	var scoped *season.Season
	switch {
	case filter.DivisionID != nil:
		item, err := s.league.CurrentSeasonForDivision(ctx, *filter.DivisionID)
		if err != nil && !isNotFound(err) {
			return AdminMatchupList{}, err
		}
		if err == nil {
			scoped = &item
		}
	case filter.SeasonID != nil:
		item, err := s.league.GetSeason(ctx, *filter.SeasonID)
		if err != nil {
			return AdminMatchupList{}, err
		}
		scoped = &item
	default:
		item, err := s.league.CurrentSeason(ctx)
		if err != nil && !isNotFound(err) {
			return AdminMatchupList{}, err
		}
		if err == nil {
			scoped = &item
		}
	}

	listFilter := matchup.ListFilter{DivisionID: filter.DivisionID}
	if scoped != nil {
		listFilter.SeasonID = &scoped.ID
	}
	items, err := s.matchupRepo.List(ctx, listFilter)
	if err != nil {
		return AdminMatchupList{}, fmt.Errorf("list matchups: %w", err)
	}
	return AdminMatchupList{Season: scoped, Matchups: items}, nil
}

// ListWeeks defaults to the current season when seasonID is nil.
func (s *AdminService) ListWeeks(ctx context.Context, seasonID *int64) ([]week.Week, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.ListWeeks")
	defer span.End()

	filter := week.ListFilter{SeasonID: seasonID}
	if seasonID == nil {
		current, err := s.league.CurrentSeason(ctx)
		if err != nil && !isNotFound(err) {
			return nil, err
		}
		if err == nil {
			filter.SeasonID = &current.ID
		}
	}
	weeks, err := s.weekRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list weeks: %w", err)
	}
	return weeks, nil
}

// MatchupStatChoices limits stat line dropdowns to the matchup's rosters
// plus every goalie, and its two teams.
func (s *AdminService) MatchupStatChoices(ctx context.Context, matchupID int64) (MatchupStatChoices, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.MatchupStatChoices")
	defer span.End()

	m, w, err := s.matchupWithWeek(ctx, matchupID)
	if err != nil {
		return MatchupStatChoices{}, err
	}
	teams, err := s.teamRepo.ListByIDs(ctx, []int64{m.HomeTeamID, m.AwayTeamID})
	if err != nil {
		return MatchupStatChoices{}, fmt.Errorf("list matchup teams: %w", err)
	}
	inSeason := make([]team.Team, 0, len(teams))
	for _, t := range teams {
		if t.InSeason(w.SeasonID) {
			inSeason = append(inSeason, t)
		}
	}
	players, err := s.playerRepo.ListStatCandidates(ctx, []int64{m.HomeTeamID, m.AwayTeamID}, w.SeasonID)
	if err != nil {
		return MatchupStatChoices{}, fmt.Errorf("list stat candidates: %w", err)
	}
	return MatchupStatChoices{Players: players, Teams: inSeason}, nil
}

// MatchupTeamChoices lists active teams for the home and away dropdowns.
func (s *AdminService) MatchupTeamChoices(ctx context.Context) ([]team.Team, error) {
	teams, err := s.teamRepo.List(ctx, team.ListFilter{ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("list active teams: %w", err)
	}
	return teams, nil
}

// MatchupWeekChoices lists weeks in the home team's division and the matchup's season.
func (s *AdminService) MatchupWeekChoices(ctx context.Context, matchupID int64) ([]week.Week, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.MatchupWeekChoices")
	defer span.End()

	m, w, err := s.matchupWithWeek(ctx, matchupID)
	if err != nil {
		return nil, err
	}
	home, exists, err := s.teamRepo.GetByID(ctx, m.HomeTeamID)
	if err != nil {
		return nil, fmt.Errorf("get home team: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: team=%d", ErrNotFound, m.HomeTeamID)
	}
	weeks, err := s.weekRepo.List(ctx, week.ListFilter{SeasonID: &w.SeasonID, DivisionID: home.DivisionID})
	if err != nil {
		return nil, fmt.Errorf("list week choices: %w", err)
	}
	return weeks, nil
}

// ParseMatchupTime accepts "03:04 PM" and "15:04:05".
func (s *AdminService) ParseMatchupTime(raw string) (time.Time, error) {
	t, err := matchup.ParseTime(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return t, nil
}

func (s *AdminService) SaveMatchup(ctx context.Context, m matchup.MatchUp) (matchup.MatchUp, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.SaveMatchup")
	defer span.End()

	if m.AwayGoalieStatus == 0 {
		m.AwayGoalieStatus = matchup.GoalieUnconfirmed
	}
	if m.HomeGoalieStatus == 0 {
		m.HomeGoalieStatus = matchup.GoalieUnconfirmed
	}
	m.Notes = strings.TrimSpace(m.Notes)
	if err := m.Validate(); err != nil {
		return matchup.MatchUp{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if m.ID == 0 {
		created, err := s.matchupRepo.Create(ctx, m)
		if err != nil {
			return matchup.MatchUp{}, fmt.Errorf("create matchup: %w", err)
		}
		return created, nil
	}
	if _, exists, err := s.matchupRepo.GetByID(ctx, m.ID); err != nil {
		return matchup.MatchUp{}, fmt.Errorf("get matchup: %w", err)
	} else if !exists {
		return matchup.MatchUp{}, fmt.Errorf("%w: matchup=%d", ErrNotFound, m.ID)
	}
	if err := s.matchupRepo.Update(ctx, m); err != nil {
		return matchup.MatchUp{}, fmt.Errorf("update matchup=%d: %w", m.ID, err)
	}
	return m, nil
}

// ReplaceMatchupStats swaps the matchup's box score. Every line must belong
// to one of the two teams.
func (s *AdminService) ReplaceMatchupStats(ctx context.Context, matchupID int64, lines []stat.Stat) ([]stat.Stat, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.ReplaceMatchupStats")
	defer span.End()

	m, _, err := s.matchupWithWeek(ctx, matchupID)
	if err != nil {
		return nil, err
	}
	out := make([]stat.Stat, 0, len(lines))
	for i, line := range lines {
		line.MatchUpID = matchupID
		if err := line.Validate(); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidInput, i, err)
		}
		if _, ok := m.SideOf(line.TeamID); !ok {
			return nil, fmt.Errorf("%w: line %d: team=%d is not playing in matchup=%d", ErrInvalidInput, i, line.TeamID, matchupID)
		}
		out = append(out, line)
	}
	if err := s.statRepo.ReplaceForMatchup(ctx, matchupID, out); err != nil {
		return nil, fmt.Errorf("replace stats matchup=%d: %w", matchupID, err)
	}
	s.logger.InfoContext(ctx, "matchup stats replaced", "matchup_id", matchupID, "lines", len(out))
	return out, nil
}

func (s *AdminService) SavePlayer(ctx context.Context, p player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.SavePlayer")
	defer span.End()

	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Email = strings.TrimSpace(p.Email)
	if err := p.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if p.ID == 0 {
		created, err := s.playerRepo.Create(ctx, p)
		if err != nil {
			return player.Player{}, fmt.Errorf("create player: %w", err)
		}
		return created, nil
	}
	if err := s.playerRepo.Update(ctx, p); err != nil {
		return player.Player{}, fmt.Errorf("update player=%d: %w", p.ID, err)
	}
	return p, nil
}

// SaveTeam fills in a captain access code when the team has none.
func (s *AdminService) SaveTeam(ctx context.Context, t team.Team) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.SaveTeam")
	defer span.End()

	t.Name = strings.TrimSpace(t.Name)
	if err := t.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if strings.TrimSpace(t.AccessCode) == "" {
		code, err := s.codes.NewCode()
		if err != nil {
			return team.Team{}, fmt.Errorf("generate access code: %w", err)
		}
		t.AccessCode = code
	}
	if t.ID == 0 {
		created, err := s.teamRepo.Create(ctx, t)
		if err != nil {
			return team.Team{}, fmt.Errorf("create team: %w", err)
		}
		return created, nil
	}
	if err := s.teamRepo.Update(ctx, t); err != nil {
		return team.Team{}, fmt.Errorf("update team=%d: %w", t.ID, err)
	}
	return t, nil
}

// SaveRosterEntry rejects a second primary goalie on the same team.
func (s *AdminService) SaveRosterEntry(ctx context.Context, e roster.Entry) (roster.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.SaveRosterEntry")
	defer span.End()

	if err := e.Validate(); err != nil {
		return roster.Entry{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	existing, err := s.rosterRepo.ListByTeams(ctx, []int64{e.TeamID})
	if err != nil {
		return roster.Entry{}, fmt.Errorf("list roster team=%d: %w", e.TeamID, err)
	}
	if err := roster.ValidatePrimaryGoalie(e, existing); err != nil {
		return roster.Entry{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if e.ID == 0 {
		created, err := s.rosterRepo.Create(ctx, e)
		if err != nil {
			return roster.Entry{}, fmt.Errorf("create roster entry: %w", err)
		}
		return created, nil
	}
	if err := s.rosterRepo.Update(ctx, e); err != nil {
		return roster.Entry{}, fmt.Errorf("update roster entry=%d: %w", e.ID, err)
	}
	return e, nil
}

func (s *AdminService) DeleteRosterEntry(ctx context.Context, entryID int64) error {
	if entryID <= 0 {
		return fmt.Errorf("%w: roster entry id is required", ErrInvalidInput)
	}
	_, exists, err := s.rosterRepo.GetByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("get roster entry: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: roster entry=%d", ErrNotFound, entryID)
	}
	if err := s.rosterRepo.Delete(ctx, entryID); err != nil {
		return fmt.Errorf("delete roster entry=%d: %w", entryID, err)
	}
	return nil
}

func (s *AdminService) UpsertTeamStat(ctx context.Context, row teamstat.TeamStat) (teamstat.TeamStat, error) {
	if err := row.Validate(); err != nil {
		return teamstat.TeamStat{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	saved, err := s.teamStatRepo.Upsert(ctx, row)
	if err != nil {
		return teamstat.TeamStat{}, fmt.Errorf("upsert team stat team=%d: %w", row.TeamID, err)
	}
	return saved, nil
}

func (s *AdminService) CreateWeek(ctx context.Context, w week.Week) (week.Week, error) {
	w.Date = week.Day(w.Date)
	if err := w.Validate(); err != nil {
		return week.Week{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	created, err := s.weekRepo.Create(ctx, w)
	if err != nil {
		return week.Week{}, fmt.Errorf("create week: %w", err)
	}
	return created, nil
}

func (s *AdminService) AutocompletePlayers(ctx context.Context, q string) ([]player.Player, error) {
	players, err := s.playerRepo.Search(ctx, strings.TrimSpace(q), autocompleteLimit)
	if err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}
	return players, nil
}

// AutocompleteGoalies offers anyone ever rostered at goalie who is active
// or played in one of the last few seasons.
func (s *AdminService) AutocompleteGoalies(ctx context.Context, q string) ([]player.Player, error) {
	players, err := s.playerRepo.ListGoalies(ctx, player.GoalieQuery{
		Name:              strings.TrimSpace(q),
		ActiveOnly:        true,
		RosteredSinceYear: s.clock.Now().Year() - recentGoalieSeasonYears,
	})
	if err != nil {
		return nil, fmt.Errorf("list goalies: %w", err)
	}
	return players, nil
}

func (s *AdminService) matchupWithWeek(ctx context.Context, matchupID int64) (matchup.MatchUp, week.Week, error) {
	if matchupID <= 0 {
		return matchup.MatchUp{}, week.Week{}, fmt.Errorf("%w: matchup id is required", ErrInvalidInput)
	}
	m, exists, err := s.matchupRepo.GetByID(ctx, matchupID)
	if err != nil {
		return matchup.MatchUp{}, week.Week{}, fmt.Errorf("get matchup: %w", err)
	}
	if !exists {
		return matchup.MatchUp{}, week.Week{}, fmt.Errorf("%w: matchup=%d", ErrNotFound, matchupID)
	}
	w, exists, err := s.weekRepo.GetByID(ctx, m.WeekID)
	if err != nil {
		return matchup.MatchUp{}, week.Week{}, fmt.Errorf("get week: %w", err)
	}
	if !exists {
		return matchup.MatchUp{}, week.Week{}, fmt.Errorf("%w: week=%d", ErrNotFound, m.WeekID)
	}
	return m, w, nil
}
