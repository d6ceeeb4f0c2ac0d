package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/street-hockey-league/internal/domain/account"
	"github.com/riskibarqy/street-hockey-league/internal/domain/matchup"
	"github.com/riskibarqy/street-hockey-league/internal/domain/player"
	"github.com/riskibarqy/street-hockey-league/internal/domain/roster"
	"github.com/riskibarqy/street-hockey-league/internal/domain/season"
	"github.com/riskibarqy/street-hockey-league/internal/domain/standing"
	"github.com/riskibarqy/street-hockey-league/internal/domain/stat"
	"github.com/riskibarqy/street-hockey-league/internal/domain/team"
	"github.com/riskibarqy/street-hockey-league/internal/domain/teamstat"
	"github.com/riskibarqy/street-hockey-league/internal/domain/week"
	"github.com/riskibarqy/street-hockey-league/internal/usecase"
)

type loginRequest struct {
	Username string `json:"username" validate:"required,max=150"`
	Password string `json:"password" validate:"required"`
}

type sessionDTO struct {
	Token       string               `json:"token"`
	ExpiresAt   time.Time            `json:"expires_at"`
	Username    string               `json:"username"`
	IsSuperuser bool                 `json:"is_superuser"`
	Permissions []account.Permission `json:"permissions"`
}

type matchupRequest struct {
	WeekID           int64  `json:"week_id" validate:"required,gt=0"`
	Time             string `json:"time" validate:"required"`
	AwayTeamID       int64  `json:"awayteam_id" validate:"required,gt=0"`
	HomeTeamID       int64  `json:"hometeam_id" validate:"required,gt=0,nefield=AwayTeamID"`
	Ref1ID           *int64 `json:"ref1_id" validate:"omitempty,gt=0"`
	Ref2ID           *int64 `json:"ref2_id" validate:"omitempty,gt=0"`
	IsPostseason     bool   `json:"is_postseason"`
	WentToOvertime   bool   `json:"went_to_overtime"`
	Notes            string `json:"notes" validate:"max=2000"`
	AwayGoalieID     *int64 `json:"away_goalie_id" validate:"omitempty,gt=0"`
	HomeGoalieID     *int64 `json:"home_goalie_id" validate:"omitempty,gt=0"`
	AwayGoalieStatus int    `json:"away_goalie_status" validate:"omitempty,min=1,max=3"`
	HomeGoalieStatus int    `json:"home_goalie_status" validate:"omitempty,min=1,max=3"`
}

type statLineRequest struct {
	PlayerID     int64 `json:"player_id" validate:"required,gt=0"`
	TeamID       int64 `json:"team_id" validate:"required,gt=0"`
	Goals        int   `json:"goals" validate:"min=0"`
	Assists      int   `json:"assists" validate:"min=0"`
	GoalsAgainst int   `json:"goals_against" validate:"min=0"`
	EmptyNet     int   `json:"empty_net" validate:"min=0"`
}

type matchupStatsRequest struct {
	Lines []statLineRequest `json:"lines" validate:"dive"`
}

type weekRequest struct {
	DivisionID  int64  `json:"division_id" validate:"required,gt=0"`
	SeasonID    int64  `json:"season_id" validate:"required,gt=0"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	IsCancelled bool   `json:"is_cancelled"`
}

type playerRequest struct {
	FirstName                   string `json:"first_name" validate:"required,max=30"`
	LastName                    string `json:"last_name" validate:"required,max=30"`
	Email                       string `json:"email" validate:"omitempty,email"`
	Gender                      string `json:"gender" validate:"omitempty,oneof=F M NB NA"`
	IsActive                    *bool  `json:"is_active"`
	ExcludeFromAutoDeactivation bool   `json:"exclude_from_auto_deactivation"`
	PhotoURL                    string `json:"photo_url" validate:"omitempty,url"`
}

type teamRequest struct {
	Name       string `json:"team_name" validate:"required,max=55"`
	Color      string `json:"team_color" validate:"max=30"`
	IsActive   *bool  `json:"is_active"`
	IsChampion bool   `json:"is_champ"`
	DivisionID *int64 `json:"division_id" validate:"omitempty,gt=0"`
	SeasonID   *int64 `json:"season_id" validate:"omitempty,gt=0"`
	AccessCode string `json:"captain_access_code" validate:"max=64"`
	PhotoURL   string `json:"team_photo_url" validate:"omitempty,url"`
}

type rosterRequest struct {
	PlayerID        int64 `json:"player_id" validate:"required,gt=0"`
	TeamID          int64 `json:"team_id" validate:"required,gt=0"`
	Position1       int   `json:"position1" validate:"required,min=1,max=4"`
	Position2       *int  `json:"position2" validate:"omitempty,min=1,max=4"`
	PlayerNumber    *int  `json:"player_number" validate:"omitempty,min=0,max=999"`
	IsCaptain       bool  `json:"is_captain"`
	IsSubstitute    bool  `json:"is_substitute"`
	IsPrimaryGoalie bool  `json:"is_primary_goalie"`
}

type teamStatRequest struct {
	TeamID       int64 `json:"team_id" validate:"required,gt=0"`
	DivisionID   int64 `json:"division_id" validate:"required,gt=0"`
	SeasonID     int64 `json:"season_id" validate:"required,gt=0"`
	Win          int   `json:"win" validate:"min=0"`
	OTW          int   `json:"otw" validate:"min=0"`
	OTL          int   `json:"otl" validate:"min=0"`
	Loss         int   `json:"loss" validate:"min=0"`
	Tie          int   `json:"tie" validate:"min=0"`
	GoalsFor     int   `json:"goals_for" validate:"min=0"`
	GoalsAgainst int   `json:"goals_against" validate:"min=0"`
}

type seasonRolloverRequest struct {
	FromSeasonID int64 `json:"from_season_id" validate:"required,gt=0"`
	Year         int   `json:"year" validate:"required,min=1900,max=9999"`
	SeasonType   int   `json:"season_type" validate:"required,min=1,max=4"`
	MakeCurrent  bool  `json:"make_current"`
}

type quickAddGoalieRequest struct {
	FirstName string `json:"first_name" validate:"required,max=30"`
	LastName  string `json:"last_name" validate:"required,max=30"`
	Email     string `json:"email" validate:"omitempty,email"`
	TeamID    int64  `json:"team_id" validate:"required,gt=0"`
	MatchupID *int64 `json:"matchup_id" validate:"omitempty,gt=0"`
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSession")
	defer span.End()

	var req loginRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	session, err := h.staffService.Login(ctx, req.Username, req.Password)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	permissions := session.Principal.Permissions
	if permissions == nil {
		permissions = []account.Permission{}
	}
	writeSuccess(ctx, w, http.StatusCreated, sessionDTO{
		Token:       session.Token,
		ExpiresAt:   session.ExpiresAt,
		Username:    session.Principal.Username,
		IsSuperuser: session.Principal.IsSuperuser,
		Permissions: permissions,
	})
}

func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteSession")
	defer span.End()

	token, err := bearerToken(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.staffService.Logout(ctx, token); err != nil {
		h.logger.WarnContext(ctx, "staff logout failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	if h.forgetToken != nil {
		h.forgetToken(token)
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AutocompletePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AutocompletePlayers")
	defer span.End()

	players, err := h.adminService.AutocompletePlayers(ctx, r.URL.Query().Get("q"))
	if err != nil {
		h.logger.WarnContext(ctx, "autocomplete players failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

func (h *Handler) AutocompleteGoalies(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AutocompleteGoalies")
	defer span.End()

	players, err := h.adminService.AutocompleteGoalies(ctx, r.URL.Query().Get("q"))
	if err != nil {
		h.logger.WarnContext(ctx, "autocomplete goalies failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

func (h *Handler) ListRecentSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRecentSeasons")
	defer span.End()

	seasons, err := h.leagueService.RecentSeasons(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list recent seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, seasonsToDTO(seasons))
}

func (h *Handler) AdminListMatchups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminListMatchups")
	defer span.End()

	divisionID, err := queryID(r, "division")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	seasonID, err := queryID(r, "season")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	list, err := h.adminService.ListMatchups(ctx, usecase.AdminMatchupFilter{DivisionID: divisionID, SeasonID: seasonID})
	if err != nil {
		h.logger.WarnContext(ctx, "admin list matchups failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	var scoped *seasonDTO
	if list.Season != nil {
		s := seasonToDTO(*list.Season)
		scoped = &s
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"season":   scoped,
		"matchups": matchupsToDTO(list.Matchups),
	})
}

func (h *Handler) AdminMatchupChoices(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminMatchupChoices")
	defer span.End()

	matchupID, err := pathID(r, "matchupID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	statChoices, err := h.adminService.MatchupStatChoices(ctx, matchupID)
	if err != nil {
		h.logger.WarnContext(ctx, "matchup stat choices failed", "matchup_id", matchupID, "error", err)
		writeError(ctx, w, err)
		return
	}
	weeks, err := h.adminService.MatchupWeekChoices(ctx, matchupID)
	if err != nil {
		h.logger.WarnContext(ctx, "matchup week choices failed", "matchup_id", matchupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"players": playersToDTO(statChoices.Players),
		"teams":   teamsToAdminDTO(statChoices.Teams),
		"weeks":   weeksToDTO(weeks),
	})
}

func (h *Handler) AdminTeamChoices(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminTeamChoices")
	defer span.End()

	teams, err := h.adminService.MatchupTeamChoices(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "matchup team choices failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamsToAdminDTO(teams))
}

func (h *Handler) CreateMatchup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatchup")
	defer span.End()

	h.saveMatchup(w, r.WithContext(ctx), 0, http.StatusCreated)
}

func (h *Handler) UpdateMatchup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatchup")
	defer span.End()

	matchupID, err := pathID(r, "matchupID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	h.saveMatchup(w, r.WithContext(ctx), matchupID, http.StatusOK)
}

func (h *Handler) saveMatchup(w http.ResponseWriter, r *http.Request, matchupID int64, status int) {
	ctx := r.Context()

	var req matchupRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	gameTime, err := h.adminService.ParseMatchupTime(req.Time)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.adminService.SaveMatchup(ctx, matchup.MatchUp{
		ID:               matchupID,
		WeekID:           req.WeekID,
		Time:             gameTime,
		AwayTeamID:       req.AwayTeamID,
		HomeTeamID:       req.HomeTeamID,
		Ref1ID:           req.Ref1ID,
		Ref2ID:           req.Ref2ID,
		IsPostseason:     req.IsPostseason,
		WentToOvertime:   req.WentToOvertime,
		Notes:            req.Notes,
		AwayGoalieID:     req.AwayGoalieID,
		HomeGoalieID:     req.HomeGoalieID,
		AwayGoalieStatus: matchup.GoalieStatus(req.AwayGoalieStatus),
		HomeGoalieStatus: matchup.GoalieStatus(req.HomeGoalieStatus),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "save matchup failed", "matchup_id", matchupID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, status, matchupToDTO(saved))
}

func (h *Handler) ReplaceMatchupStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReplaceMatchupStats")
	defer span.End()

	matchupID, err := pathID(r, "matchupID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req matchupStatsRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	lines := make([]stat.Stat, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, stat.Stat{
			PlayerID:     l.PlayerID,
			TeamID:       l.TeamID,
			Goals:        l.Goals,
			Assists:      l.Assists,
			GoalsAgainst: l.GoalsAgainst,
			EmptyNet:     l.EmptyNet,
		})
	}
	saved, err := h.adminService.ReplaceMatchupStats(ctx, matchupID, lines)
	if err != nil {
		h.logger.WarnContext(ctx, "replace matchup stats failed", "matchup_id", matchupID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, statsToDTO(saved))
}

func (h *Handler) AdminListWeeks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminListWeeks")
	defer span.End()

	seasonID, err := queryID(r, "season")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	weeks, err := h.adminService.ListWeeks(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "admin list weeks failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, weeksToDTO(weeks))
}

func (h *Handler) CreateWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateWeek")
	defer span.End()

	var req weekRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	date, err := week.ParseDate(req.Date)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: date must be YYYY-MM-DD", usecase.ErrInvalidInput))
		return
	}

	created, err := h.adminService.CreateWeek(ctx, week.Week{
		DivisionID:  req.DivisionID,
		SeasonID:    req.SeasonID,
		Date:        date,
		IsCancelled: req.IsCancelled,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create week failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, weekToDTO(created))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	h.savePlayer(w, r.WithContext(ctx), 0, http.StatusCreated)
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	h.savePlayer(w, r.WithContext(ctx), playerID, http.StatusOK)
}

func (h *Handler) savePlayer(w http.ResponseWriter, r *http.Request, playerID int64, status int) {
	ctx := r.Context()

	var req playerRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	gender := player.Gender(req.Gender)
	if gender == "" {
		gender = player.GenderNotGiven
	}

	saved, err := h.adminService.SavePlayer(ctx, player.Player{
		ID:                          playerID,
		FirstName:                   req.FirstName,
		LastName:                    req.LastName,
		Email:                       req.Email,
		Gender:                      gender,
		IsActive:                    req.IsActive == nil || *req.IsActive,
		ExcludeFromAutoDeactivation: req.ExcludeFromAutoDeactivation,
		PhotoURL:                    req.PhotoURL,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "save player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, status, playerToAdminDTO(saved))
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	h.saveTeam(w, r.WithContext(ctx), 0, http.StatusCreated)
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	h.saveTeam(w, r.WithContext(ctx), teamID, http.StatusOK)
}

func (h *Handler) saveTeam(w http.ResponseWriter, r *http.Request, teamID int64, status int) {
	ctx := r.Context()

	var req teamRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.adminService.SaveTeam(ctx, team.Team{
		ID:         teamID,
		Name:       req.Name,
		Color:      req.Color,
		IsActive:   req.IsActive == nil || *req.IsActive,
		IsChampion: req.IsChampion,
		DivisionID: req.DivisionID,
		SeasonID:   req.SeasonID,
		AccessCode: req.AccessCode,
		PhotoURL:   req.PhotoURL,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "save team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, status, adminTeamDTO{teamDTO: teamToDTO(saved), AccessCode: saved.AccessCode})
}

func (h *Handler) CreateRosterEntry(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateRosterEntry")
	defer span.End()

	h.saveRosterEntry(w, r.WithContext(ctx), 0, http.StatusCreated)
}

func (h *Handler) UpdateRosterEntry(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateRosterEntry")
	defer span.End()

	entryID, err := pathID(r, "entryID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	h.saveRosterEntry(w, r.WithContext(ctx), entryID, http.StatusOK)
}

func (h *Handler) saveRosterEntry(w http.ResponseWriter, r *http.Request, entryID int64, status int) {
	ctx := r.Context()

	var req rosterRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	entry := roster.Entry{
		ID:              entryID,
		PlayerID:        req.PlayerID,
		TeamID:          req.TeamID,
		Position1:       roster.Position(req.Position1),
		PlayerNumber:    req.PlayerNumber,
		IsCaptain:       req.IsCaptain,
		IsSubstitute:    req.IsSubstitute,
		IsPrimaryGoalie: req.IsPrimaryGoalie,
	}
	if req.Position2 != nil {
		p2 := roster.Position(*req.Position2)
		entry.Position2 = &p2
	}

	saved, err := h.adminService.SaveRosterEntry(ctx, entry)
	if err != nil {
		h.logger.WarnContext(ctx, "save roster entry failed", "entry_id", entryID, "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, status, rosterEntryToDTO(saved))
}

func (h *Handler) DeleteRosterEntry(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteRosterEntry")
	defer span.End()

	entryID, err := pathID(r, "entryID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.adminService.DeleteRosterEntry(ctx, entryID); err != nil {
		h.logger.WarnContext(ctx, "delete roster entry failed", "entry_id", entryID, "error", err)
		writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) UpsertTeamStat(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertTeamStat")
	defer span.End()

	var req teamStatRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.adminService.UpsertTeamStat(ctx, teamstat.TeamStat{
		TeamID:       req.TeamID,
		DivisionID:   req.DivisionID,
		SeasonID:     req.SeasonID,
		Win:          req.Win,
		OTW:          req.OTW,
		OTL:          req.OTL,
		Loss:         req.Loss,
		Tie:          req.Tie,
		GoalsFor:     req.GoalsFor,
		GoalsAgainst: req.GoalsAgainst,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "upsert team stat failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, standingRowToDTO(standing.Row{
		TeamID:     saved.TeamID,
		DivisionID: saved.DivisionID,
		Record:     saved,
	}))
}

func (h *Handler) RolloverSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RolloverSeason")
	defer span.End()

	var req seasonRolloverRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.adminService.SeasonRollover(ctx, usecase.SeasonRolloverInput{
		FromSeasonID: req.FromSeasonID,
		Year:         req.Year,
		Type:         season.Type(req.SeasonType),
		MakeCurrent:  req.MakeCurrent,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "season rollover failed", "from_season_id", req.FromSeasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, map[string]any{
		"season":                seasonToDTO(result.Season),
		"season_reused":         result.SeasonReused,
		"teams_copied":          result.TeamsCopied,
		"roster_entries_copied": result.RosterCopied,
		"made_current":          result.MadeCurrent,
	})
}

func (h *Handler) QuickAddGoalieSub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.QuickAddGoalieSub")
	defer span.End()

	var req quickAddGoalieRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.adminService.QuickAddGoalieSub(ctx, usecase.QuickAddGoalieInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		TeamID:    req.TeamID,
		MatchUpID: req.MatchupID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "quick add goalie failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, map[string]any{
		"player":         playerToAdminDTO(result.Player),
		"player_created": result.PlayerCreated,
		"roster_entry":   rosterEntryToDTO(result.RosterEntry),
		"matchup_id":     result.MatchUpID,
		"side":           result.Side,
	})
}
