package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/street-hockey-league/internal/domain/division"
	"github.com/riskibarqy/street-hockey-league/internal/domain/player"
	"github.com/riskibarqy/street-hockey-league/internal/domain/roster"
	"github.com/riskibarqy/street-hockey-league/internal/domain/team"
	"github.com/riskibarqy/street-hockey-league/internal/platform/logging"
)

const (
	DefaultDeactivationYears = 3
	excludedPreviewLimit     = 10
	duplicateSeasonLimit     = 5
	noDivisionLabel          = "No Division"
)

type DeactivationInput struct {
	Years             int  `json:"years"`
	DryRun            bool `json:"dry_run"`
	IncludeNonGoalies bool `json:"include_non_goalies"`
}

type DeactivationAction struct {
	Player player.Player
	Reason string
}

type DeactivationReport struct {
	Years         int
	CutoffYear    int
	DryRun        bool
	Protected     int
	Actions       []DeactivationAction
	Skipped       int
	Excluded      []player.Player
	ExcludedTotal int
}

type CaptainURL struct {
	TeamID   int64
	TeamName string
	URL      string
}

type CaptainURLGroup struct {
	Division string
	Teams    []CaptainURL
}

const (
	MatchExact    = "EXACT MATCH"
	MatchNickname = "NICKNAME MATCH"
)

type DuplicatePlayer struct {
	Player      player.Player
	RosterCount int
	Seasons     []roster.PlayerSeason
	MoreSeasons int
}

type DuplicateGroup struct {
	MatchType string
	LastName  string
	Players   []DuplicatePlayer
}

type MaintenanceService struct {
	playerRepo   player.Repository
	rosterRepo   roster.Repository
	teamRepo     team.Repository
	divisionRepo division.Repository
	clock        *Clock
	logger       *logging.Logger
}

func NewMaintenanceService(
	playerRepo player.Repository,
	rosterRepo roster.Repository,
	teamRepo team.Repository,
	divisionRepo division.Repository,
	clock *Clock,
	logger *logging.Logger,
) *MaintenanceService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MaintenanceService{
		playerRepo:   playerRepo,
		rosterRepo:   rosterRepo,
		teamRepo:     teamRepo,
		divisionRepo: divisionRepo,
		clock:        clock,
		logger:       logger,
	}
}

// DeactivateInactivePlayers switches off players not rostered since the
// cutoff year. Anyone on a current-season roster is left alone.
func (s *MaintenanceService) DeactivateInactivePlayers(ctx context.Context, input DeactivationInput) (DeactivationReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MaintenanceService.DeactivateInactivePlayers")
	defer span.End()

	if input.Years < 0 {
		return DeactivationReport{}, fmt.Errorf("%w: years cannot be negative", ErrInvalidInput)
	}
	report := DeactivationReport{
		Years:      input.Years,
		CutoffYear: s.clock.Now().Year() - input.Years,
		DryRun:     input.DryRun,
	}

	currentIDs, err := s.rosterRepo.CurrentSeasonPlayerIDs(ctx)
	if err != nil {
		return DeactivationReport{}, fmt.Errorf("list current season players: %w", err)
	}
	protected := make(map[int64]struct{}, len(currentIDs))
	for _, id := range currentIDs {
		protected[id] = struct{}{}
	}
	report.Protected = len(protected)

	candidates, err := s.playerRepo.ListDeactivationCandidates(ctx)
	if err != nil {
		return DeactivationReport{}, fmt.Errorf("list deactivation candidates: %w", err)
	}

	ids := make([]int64, 0)
	for _, c := range candidates {
		if !c.IsActive {
			continue
		}
		if c.ExcludeFromAutoDeactivation {
			report.ExcludedTotal++
			if len(report.Excluded) < excludedPreviewLimit {
				report.Excluded = append(report.Excluded, c.Player)
			}
			continue
		}
		if !input.IncludeNonGoalies && !c.IsGoalie {
			continue
		}
		if _, ok := protected[c.ID]; ok {
			report.Skipped++
			continue
		}
		switch {
		case c.LastRosteredYear == nil:
			report.Actions = append(report.Actions, DeactivationAction{Player: c.Player, Reason: "never rostered"})
		case *c.LastRosteredYear < report.CutoffYear:
			report.Actions = append(report.Actions, DeactivationAction{Player: c.Player, Reason: fmt.Sprintf("last active %d", *c.LastRosteredYear)})
		default:
			report.Skipped++
			continue
		}
		ids = append(ids, c.ID)
	}

	if !input.DryRun && len(ids) > 0 {
		if _, err := s.playerRepo.Deactivate(ctx, ids); err != nil {
			return DeactivationReport{}, fmt.Errorf("deactivate players: %w", err)
		}
	}
	s.logger.InfoContext(ctx, "inactive player sweep finished",
		"cutoff_year", report.CutoffYear,
		"dry_run", input.DryRun,
		"deactivated", len(report.Actions),
		"skipped", report.Skipped,
	)
	return report, nil
}

// CaptainURLs lists each active team's self-service link grouped by division.
func (s *MaintenanceService) CaptainURLs(ctx context.Context, baseURL string, all bool) ([]CaptainURLGroup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MaintenanceService.CaptainURLs")
	defer span.End()

	teams, err := s.teamRepo.List(ctx, team.ListFilter{ActiveOnly: true, CurrentSeasonOnly: !all})
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	divisions, err := s.divisionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list divisions: %w", err)
	}
	names := make(map[int64]string, len(divisions))
	for _, d := range divisions {
		names[d.ID] = d.DisplayName()
	}

	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	out := make([]CaptainURLGroup, 0)
	for _, t := range teams {
		label := noDivisionLabel
		if t.DivisionID != nil {
			label = names[*t.DivisionID]
		}
		if len(out) == 0 || out[len(out)-1].Division != label {
			out = append(out, CaptainURLGroup{Division: label})
		}
		group := &out[len(out)-1]
		group.Teams = append(group.Teams, CaptainURL{
			TeamID:   t.ID,
			TeamName: t.Name,
			URL:      CaptainURLFor(base, t.AccessCode),
		})
	}
	return out, nil
}

func CaptainURLFor(baseURL, accessCode string) string {
	return fmt.Sprintf("%s/goalie-status/captain/%s/", strings.TrimRight(baseURL, "/"), accessCode)
}

// FindDuplicatePlayers groups players sharing a last name whose first names
// match exactly or through a known nickname.
func (s *MaintenanceService) FindDuplicatePlayers(ctx context.Context, lastName string, showRosters bool) ([]DuplicateGroup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MaintenanceService.FindDuplicatePlayers")
	defer span.End()

	players, err := s.playerRepo.ListByLastName(ctx, strings.TrimSpace(lastName))
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	groups := groupDuplicates(players)
	if len(groups) == 0 {
		return groups, nil
	}

	ids := make([]int64, 0)
	for _, g := range groups {
		for _, p := range g.Players {
			ids = append(ids, p.Player.ID)
		}
	}
	counts, err := s.rosterRepo.CountByPlayers(ctx, uniqueIDs(ids))
	if err != nil {
		return nil, fmt.Errorf("count roster entries: %w", err)
	}

	for gi := range groups {
		for pi := range groups[gi].Players {
			item := &groups[gi].Players[pi]
			item.RosterCount = counts[item.Player.ID]
			if !showRosters || item.RosterCount == 0 {
				continue
			}
			seasons, err := s.rosterRepo.ListSeasonsByPlayer(ctx, item.Player.ID, duplicateSeasonLimit)
			if err != nil {
				return nil, fmt.Errorf("list roster seasons player=%d: %w", item.Player.ID, err)
			}
			item.Seasons = seasons
			if item.RosterCount > duplicateSeasonLimit {
				item.MoreSeasons = item.RosterCount - duplicateSeasonLimit
			}
		}
	}
	return groups, nil
}

func groupDuplicates(players []player.Player) []DuplicateGroup {
	byLast := make(map[string][]player.Player)
	order := make([]string, 0)
	for _, p := range players {
		key := player.NormalizeName(p.LastName)
		if _, ok := byLast[key]; !ok {
			order = append(order, key)
		}
		byLast[key] = append(byLast[key], p)
	}

	out := make([]DuplicateGroup, 0)
	for _, last := range order {
		group := byLast[last]
		if len(group) < 2 {
			continue
		}

		byFirst := make(map[string][]player.Player)
		firstOrder := make([]string, 0)
		for _, p := range group {
			key := player.NormalizeName(p.FirstName)
			if _, ok := byFirst[key]; !ok {
				firstOrder = append(firstOrder, key)
			}
			byFirst[key] = append(byFirst[key], p)
		}
		for _, first := range firstOrder {
			if len(byFirst[first]) > 1 {
				out = append(out, DuplicateGroup{MatchType: MatchExact, LastName: last, Players: wrapDuplicates(byFirst[first])})
			}
		}

		processed := make(map[int64]struct{})
		for i, left := range group {
			if _, done := processed[left.ID]; done {
				continue
			}
			matches := []player.Player{left}
			for _, right := range group[i+1:] {
				if _, done := processed[right.ID]; done {
					continue
				}
				if player.NormalizeName(left.FirstName) == player.NormalizeName(right.FirstName) {
					continue
				}
				if player.SameFirstName(left.FirstName, right.FirstName) {
					matches = append(matches, right)
					processed[right.ID] = struct{}{}
				}
			}
			if len(matches) > 1 {
				processed[left.ID] = struct{}{}
				out = append(out, DuplicateGroup{MatchType: MatchNickname, LastName: last, Players: wrapDuplicates(matches)})
			}
		}
	}
	return out
}

func wrapDuplicates(players []player.Player) []DuplicatePlayer {
	out := make([]DuplicatePlayer, 0, len(players))
	for _, p := range players {
		out = append(out, DuplicatePlayer{Player: p})
	}
	return out
}
