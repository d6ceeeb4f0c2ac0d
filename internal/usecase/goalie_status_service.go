package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/street-hockey-league/internal/domain/division"
	"github.com/riskibarqy/street-hockey-league/internal/domain/matchup"
	"github.com/riskibarqy/street-hockey-league/internal/domain/player"
	"github.com/riskibarqy/street-hockey-league/internal/domain/roster"
	"github.com/riskibarqy/street-hockey-league/internal/domain/season"
	"github.com/riskibarqy/street-hockey-league/internal/domain/team"
	"github.com/riskibarqy/street-hockey-league/internal/domain/week"
	"github.com/riskibarqy/street-hockey-league/internal/platform/logging"
)

const (
	goalieBoardDates     = 4
	noGoalieOnRosterName = "No goalie on roster"
	noGoalieName         = "No goalie"
	rosterGoalieChoice   = "roster"
)

// GoalieInfo is what the board shows for one side of a matchup.
type GoalieInfo struct {
	Goalie         *player.Player
	GoalieName     string
	Status         matchup.GoalieStatus
	StatusDisplay  string
	IsSub          bool
	IsRosterGoalie bool
}

type BoardGame struct {
	MatchUp  matchup.MatchUp
	AwayTeam team.Team
	HomeTeam team.Team
	Away     GoalieInfo
	Home     GoalieInfo
}

type BoardWeek struct {
	Week         week.Week
	Season       season.Season
	DivisionName string
	Games        []BoardGame
}

type GoalieBoard struct {
	Weeks          []BoardWeek
	SubNeededCount int
	StatusChoices  []matchup.StatusChoice
}

type CaptainMatchup struct {
	MatchUp       matchup.MatchUp
	Date          time.Time
	IsHome        bool
	Opponent      team.Team
	CurrentGoalie *player.Player
	CurrentStatus matchup.GoalieStatus
	RosterGoalie  *player.Player
}

type CaptainPage struct {
	Team          team.Team
	Matchups      []CaptainMatchup
	Goalies       []player.Player
	RosterGoalie  *player.Player
	StatusChoices []matchup.StatusChoice
}

type GoalieUpdateInput struct {
	AccessCode string
	MatchUpID  int64
	// GoalieID is empty or "roster" for no explicit goalie, else a player id.
	GoalieID string
	Status   string
}

type GoalieUpdateResult struct {
	Success       bool                 `json:"success"`
	GoalieName    string               `json:"goalie_name"`
	Status        matchup.GoalieStatus `json:"status"`
	StatusDisplay string               `json:"status_display"`
	IsSub         bool                 `json:"is_sub"`
}

type GoalieStatusService struct {
	weekRepo     week.Repository
	seasonRepo   season.Repository
	divisionRepo division.Repository
	matchupRepo  matchup.Repository
	teamRepo     team.Repository
	rosterRepo   roster.Repository
	playerRepo   player.Repository
	notifier     SubNeededNotifier
	clock        *Clock
	logger       *logging.Logger
}

func NewGoalieStatusService(
	weekRepo week.Repository,
	seasonRepo season.Repository,
	divisionRepo division.Repository,
	matchupRepo matchup.Repository,
	teamRepo team.Repository,
	rosterRepo roster.Repository,
	playerRepo player.Repository,
	notifier SubNeededNotifier,
	clock *Clock,
	logger *logging.Logger,
) *GoalieStatusService {
	if logger == nil {
		logger = logging.Default()
	}
	return &GoalieStatusService{
		weekRepo:     weekRepo,
		seasonRepo:   seasonRepo,
		divisionRepo: divisionRepo,
		matchupRepo:  matchupRepo,
		teamRepo:     teamRepo,
		rosterRepo:   rosterRepo,
		playerRepo:   playerRepo,
		notifier:     notifier,
		clock:        clock,
		logger:       logger,
	}
}

// DisplayInfo resolves one side's goalie against the team's roster goalie.
func DisplayInfo(m matchup.MatchUp, side matchup.Side, explicit, rosterGoalie *player.Player) GoalieInfo {
	_, status := m.Goalie(side)
	info := GoalieInfo{Status: status, StatusDisplay: status.String()}

	switch {
	case status == matchup.GoalieSubNeeded:
		return info
	case explicit != nil:
		info.Goalie = explicit
		info.GoalieName = explicit.FullName()
		info.IsSub = rosterGoalie != nil && rosterGoalie.ID != explicit.ID
		info.IsRosterGoalie = !info.IsSub
	default:
		info.Goalie = rosterGoalie
		info.GoalieName = noGoalieOnRosterName
		if rosterGoalie != nil {
			info.GoalieName = rosterGoalie.FullName()
		}
		info.IsRosterGoalie = true
	}
	return info
}

// Board shows every week on the next few game dates, across seasons.
func (s *GoalieStatusService) Board(ctx context.Context) (GoalieBoard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GoalieStatusService.Board")
	defer span.End()

	out := GoalieBoard{StatusChoices: matchup.StatusChoices()}
	dates, err := s.weekRepo.NextDates(ctx, s.clock.Today(), false, goalieBoardDates)
	if err != nil {
		return GoalieBoard{}, fmt.Errorf("list upcoming dates: %w", err)
	}
	if len(dates) == 0 {
		return out, nil
	}

	weeks, err := s.weekRepo.List(ctx, week.ListFilter{Dates: dates})
	if err != nil {
		return GoalieBoard{}, fmt.Errorf("list upcoming weeks: %w", err)
	}
	weekIDs := make([]int64, 0, len(weeks))
	seasonIDs := make([]int64, 0, len(weeks))
	for _, w := range weeks {
		weekIDs = append(weekIDs, w.ID)
		seasonIDs = append(seasonIDs, w.SeasonID)
	}

	seasons, err := s.seasonRepo.ListByIDs(ctx, uniqueIDs(seasonIDs))
	if err != nil {
		return GoalieBoard{}, fmt.Errorf("list board seasons: %w", err)
	}
	seasonsByID := make(map[int64]season.Season, len(seasons))
	for _, item := range seasons {
		seasonsByID[item.ID] = item
	}
	divisions, err := s.divisionRepo.List(ctx)
	if err != nil {
		return GoalieBoard{}, fmt.Errorf("list divisions: %w", err)
	}
	numbers := make(map[int64]int, len(divisions))
	for _, d := range divisions {
		numbers[d.ID] = d.Number
	}

	sort.SliceStable(weeks, func(i, j int) bool {
		a, b := weeks[i], weeks[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if numbers[a.DivisionID] != numbers[b.DivisionID] {
			return numbers[a.DivisionID] < numbers[b.DivisionID]
		}
		sa, sb := seasonsByID[a.SeasonID], seasonsByID[b.SeasonID]
		if sa.Year != sb.Year {
			return sa.Year > sb.Year
		}
		return sa.Type < sb.Type
	})

	matchups, err := s.matchupRepo.List(ctx, matchup.ListFilter{WeekIDs: weekIDs})
	if err != nil {
		return GoalieBoard{}, fmt.Errorf("list board matchups: %w", err)
	}
	lookup, err := s.loadGoalieLookup(ctx, matchups)
	if err != nil {
		return GoalieBoard{}, err
	}

	byWeek := make(map[int64][]BoardGame, len(weeks))
	for _, m := range matchups {
		if m.NeedsSub() {
			out.SubNeededCount++
		}
		byWeek[m.WeekID] = append(byWeek[m.WeekID], BoardGame{
			MatchUp:  m,
			AwayTeam: lookup.teams[m.AwayTeamID],
			HomeTeam: lookup.teams[m.HomeTeamID],
			Away:     DisplayInfo(m, matchup.SideAway, lookup.explicit(m.AwayGoalieID), lookup.rosterGoalie(m.AwayTeamID)),
			Home:     DisplayInfo(m, matchup.SideHome, lookup.explicit(m.HomeGoalieID), lookup.rosterGoalie(m.HomeTeamID)),
		})
	}
	for _, games := range byWeek {
		sort.SliceStable(games, func(i, j int) bool {
			return games[i].MatchUp.Time.Before(games[j].MatchUp.Time)
		})
	}

	for _, w := range weeks {
		out.Weeks = append(out.Weeks, BoardWeek{
			Week:         w,
			Season:       seasonsByID[w.SeasonID],
			DivisionName: division.DisplayName(numbers[w.DivisionID]),
			Games:        byWeek[w.ID],
		})
	}
	return out, nil
}

// CaptainPage lists a team's upcoming games for its captain.
func (s *GoalieStatusService) CaptainPage(ctx context.Context, accessCode string) (CaptainPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GoalieStatusService.CaptainPage")
	defer span.End()

	t, err := s.teamByAccessCode(ctx, accessCode)
	if err != nil {
		return CaptainPage{}, err
	}

	matchups, err := s.matchupRepo.List(ctx, matchup.ListFilter{TeamID: &t.ID, FromDate: s.clock.Today()})
	if err != nil {
		return CaptainPage{}, fmt.Errorf("list captain matchups team=%d: %w", t.ID, err)
	}
	lookup, err := s.loadGoalieLookup(ctx, matchups, t.ID)
	if err != nil {
		return CaptainPage{}, err
	}
	weekIDs := make([]int64, 0, len(matchups))
	for _, m := range matchups {
		weekIDs = append(weekIDs, m.WeekID)
	}
	weeks, err := s.weekRepo.ListByIDs(ctx, uniqueIDs(weekIDs))
	if err != nil {
		return CaptainPage{}, fmt.Errorf("list captain weeks: %w", err)
	}
	dates := make(map[int64]time.Time, len(weeks))
	for _, w := range weeks {
		dates[w.ID] = w.Date
	}

	goalies, err := s.playerRepo.ListGoalies(ctx, player.GoalieQuery{ActiveOnly: true})
	if err != nil {
		return CaptainPage{}, fmt.Errorf("list goalies: %w", err)
	}

	rosterGoalie := lookup.rosterGoalie(t.ID)
	out := CaptainPage{
		Team:          t,
		Goalies:       goalies,
		RosterGoalie:  rosterGoalie,
		StatusChoices: matchup.StatusChoices(),
	}
	for _, m := range matchups {
		side, ok := m.SideOf(t.ID)
		if !ok {
			continue
		}
		goalieID, status := m.Goalie(side)
		current := lookup.explicit(goalieID)
		if current == nil {
			current = rosterGoalie
		}
		out.Matchups = append(out.Matchups, CaptainMatchup{
			MatchUp:       m,
			Date:          dates[m.WeekID],
			IsHome:        side == matchup.SideHome,
			Opponent:      lookup.teams[m.OpponentID(side)],
			CurrentGoalie: current,
			CurrentStatus: status,
			RosterGoalie:  rosterGoalie,
		})
	}
	sort.SliceStable(out.Matchups, func(i, j int) bool {
		a, b := out.Matchups[i], out.Matchups[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.MatchUp.Time.Before(b.MatchUp.Time)
	})
	return out, nil
}

// UpdateGoalieStatus applies a captain's change to their own side only.
func (s *GoalieStatusService) UpdateGoalieStatus(ctx context.Context, input GoalieUpdateInput) (GoalieUpdateResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GoalieStatusService.UpdateGoalieStatus")
	defer span.End()

	t, err := s.teamByAccessCode(ctx, input.AccessCode)
	if err != nil {
		return GoalieUpdateResult{}, err
	}
	m, exists, err := s.matchupRepo.GetByID(ctx, input.MatchUpID)
	if err != nil {
		return GoalieUpdateResult{}, fmt.Errorf("get matchup: %w", err)
	}
	if !exists {
		return GoalieUpdateResult{}, fmt.Errorf("%w: matchup=%d", ErrNotFound, input.MatchUpID)
	}
	side, ok := m.SideOf(t.ID)
	if !ok {
		return GoalieUpdateResult{}, fmt.Errorf("%w: not authorized for this matchup", ErrForbidden)
	}

	rawStatus, err := strconv.Atoi(strings.TrimSpace(input.Status))
	status := matchup.GoalieStatus(rawStatus)
	if err != nil || !status.Valid() {
		return GoalieUpdateResult{}, fmt.Errorf("%w: invalid status value", ErrInvalidInput)
	}

	var goalie *player.Player
	goalieRaw := strings.TrimSpace(input.GoalieID)
	if goalieRaw != "" && goalieRaw != rosterGoalieChoice {
		goalieID, err := strconv.ParseInt(goalieRaw, 10, 64)
		if err != nil {
			return GoalieUpdateResult{}, fmt.Errorf("%w: invalid goalie", ErrInvalidInput)
		}
		p, found, err := s.playerRepo.GetByID(ctx, goalieID)
		if err != nil {
			return GoalieUpdateResult{}, fmt.Errorf("get goalie: %w", err)
		}
		if !found {
			return GoalieUpdateResult{}, fmt.Errorf("%w: invalid goalie", ErrInvalidInput)
		}
		goalie = &p
	}
	if status == matchup.GoalieSubNeeded {
		goalie = nil
	}

	var goalieID *int64
	if goalie != nil {
		goalieID = &goalie.ID
	}
	m.SetGoalie(side, goalieID, status)
	if err := s.matchupRepo.UpdateGoalie(ctx, m.ID, side, goalieID, status); err != nil {
		return GoalieUpdateResult{}, fmt.Errorf("update goalie matchup=%d side=%s: %w", m.ID, side, err)
	}
	s.logger.InfoContext(ctx, "goalie status updated",
		"matchup_id", m.ID,
		"team_id", t.ID,
		"side", side,
		"status", int(status),
	)

	rosterGoalie, err := s.rosterGoalieForTeam(ctx, t.ID)
	if err != nil {
		return GoalieUpdateResult{}, err
	}

	result := GoalieUpdateResult{
		Success:       true,
		Status:        status,
		StatusDisplay: status.String(),
	}
	if status != matchup.GoalieSubNeeded {
		display := goalie
		if display == nil {
			display = rosterGoalie
		}
		result.GoalieName = noGoalieName
		if display != nil {
			result.GoalieName = display.FullName()
		}
		result.IsSub = goalie != nil && rosterGoalie != nil && goalie.ID != rosterGoalie.ID
	}

	if status == matchup.GoalieSubNeeded {
		s.notifySubNeeded(ctx, m, side, t)
	}
	return result, nil
}

func (s *GoalieStatusService) notifySubNeeded(ctx context.Context, m matchup.MatchUp, side matchup.Side, t team.Team) {
	if s.notifier == nil {
		return
	}
	notice := SubNeeded{
		MatchUpID: m.ID,
		Side:      side,
		TeamID:    t.ID,
		TeamName:  t.Name,
		Time:      m.Time,
	}
	if opponent, found, err := s.teamRepo.GetByID(ctx, m.OpponentID(side)); err == nil && found {
		notice.OpponentName = opponent.Name
	}
	if w, found, err := s.weekRepo.GetByID(ctx, m.WeekID); err == nil && found {
		notice.Date = w.Date
	}
	if err := s.notifier.NotifySubNeeded(ctx, notice); err != nil {
		s.logger.WarnContext(ctx, "publish sub needed notification failed",
			"matchup_id", m.ID,
			"side", side,
			"error", err,
		)
	}
}

func (s *GoalieStatusService) teamByAccessCode(ctx context.Context, accessCode string) (team.Team, error) {
	accessCode = strings.TrimSpace(accessCode)
	if accessCode == "" {
		return team.Team{}, fmt.Errorf("%w: access code is required", ErrNotFound)
	}
	t, exists, err := s.teamRepo.GetActiveByAccessCode(ctx, accessCode)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by access code: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team for access code", ErrNotFound)
	}
	return t, nil
}

func (s *GoalieStatusService) rosterGoalieForTeam(ctx context.Context, teamID int64) (*player.Player, error) {
	lookup, err := s.loadGoalieLookup(ctx, nil, teamID)
	if err != nil {
		return nil, err
	}
	return lookup.rosterGoalie(teamID), nil
}

type goalieLookup struct {
	teams         map[int64]team.Team
	players       map[int64]player.Player
	rosterGoalies map[int64]int64
}

func (l goalieLookup) explicit(id *int64) *player.Player {
	if id == nil {
		return nil
	}
	p, ok := l.players[*id]
	if !ok {
		return nil
	}
	return &p
}

func (l goalieLookup) rosterGoalie(teamID int64) *player.Player {
	playerID, ok := l.rosterGoalies[teamID]
	if !ok {
		return nil
	}
	p, ok := l.players[playerID]
	if !ok {
		return nil
	}
	return &p
}

// loadGoalieLookup batches the teams, roster goalies and explicit goalies
// referenced by matchups plus any extra team ids.
func (s *GoalieStatusService) loadGoalieLookup(ctx context.Context, matchups []matchup.MatchUp, extraTeamIDs ...int64) (goalieLookup, error) {
	teamIDs := append([]int64(nil), extraTeamIDs...)
	playerIDs := make([]int64, 0, len(matchups)*2)
	for _, m := range matchups {
		teamIDs = append(teamIDs, m.AwayTeamID, m.HomeTeamID)
		if m.AwayGoalieID != nil {
			playerIDs = append(playerIDs, *m.AwayGoalieID)
		}
		if m.HomeGoalieID != nil {
			playerIDs = append(playerIDs, *m.HomeGoalieID)
		}
	}
	teamIDs = uniqueIDs(teamIDs)

	lookup := goalieLookup{
		teams:         make(map[int64]team.Team, len(teamIDs)),
		players:       make(map[int64]player.Player),
		rosterGoalies: make(map[int64]int64, len(teamIDs)),
	}
	if len(teamIDs) == 0 {
		return lookup, nil
	}

	teams, err := s.teamRepo.ListByIDs(ctx, teamIDs)
	if err != nil {
		return goalieLookup{}, fmt.Errorf("list teams: %w", err)
	}
	for _, t := range teams {
		lookup.teams[t.ID] = t
	}

	entries, err := s.rosterRepo.ListByTeams(ctx, teamIDs)
	if err != nil {
		return goalieLookup{}, fmt.Errorf("list rosters: %w", err)
	}
	byTeam := make(map[int64][]roster.Entry, len(teamIDs))
	for _, e := range entries {
		byTeam[e.TeamID] = append(byTeam[e.TeamID], e)
	}
	for teamID, teamEntries := range byTeam {
		if e, ok := roster.RosterGoalie(teamEntries); ok {
			lookup.rosterGoalies[teamID] = e.PlayerID
			playerIDs = append(playerIDs, e.PlayerID)
		}
	}

	if ids := uniqueIDs(playerIDs); len(ids) > 0 {
		players, err := s.playerRepo.ListByIDs(ctx, ids)
		if err != nil {
			return goalieLookup{}, fmt.Errorf("list goalies: %w", err)
		}
		for _, p := range players {
			lookup.players[p.ID] = p
		}
	}
	return lookup, nil
}
