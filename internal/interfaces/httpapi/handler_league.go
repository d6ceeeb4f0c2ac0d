package httpapi

import (
	"net/http"

	"github.com/riskibarqy/street-hockey-league/internal/usecase"
)

func (h *Handler) GetHome(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHome")
	defer span.End()

	page, err := h.homeService.Home(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "load home page failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, homeToDTO(page))
}

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	seasons, err := h.leagueService.ListSeasons(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonsToDTO(seasons))
}

func (h *Handler) GetCurrentSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCurrentSeason")
	defer span.End()

	current, err := h.leagueService.CurrentSeason(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get current season failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(current))
}

func (h *Handler) ListDivisions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDivisions")
	defer span.End()

	divisions, err := h.leagueService.ListDivisions(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list divisions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]divisionDTO, 0, len(divisions))
	for _, d := range divisions {
		items = append(items, divisionToDTO(d))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSchedule")
	defer span.End()

	seasonID, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	span.SetAttributes(idAttr("season_id", seasonID))
	divisionID, err := queryID(r, "division")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	weeks, err := h.scheduleService.Schedule(ctx, seasonID, divisionID)
	if err != nil {
		h.logger.WarnContext(ctx, "get schedule failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]scheduleWeekDTO, 0, len(weeks))
	for _, sw := range weeks {
		items = append(items, scheduleWeekDTO{
			Week:         weekToDTO(sw.Week),
			DivisionName: sw.DivisionName,
			Games:        gamesToDTO(sw.Games),
		})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetScores")
	defer span.End()

	seasonID, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	span.SetAttributes(idAttr("season_id", seasonID))
	divisionID, err := queryID(r, "division")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	games, err := h.scheduleService.Scores(ctx, seasonID, divisionID)
	if err != nil {
		h.logger.WarnContext(ctx, "get scores failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gamesToDTO(games))
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	seasonID, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	span.SetAttributes(idAttr("season_id", seasonID))
	divisionID, err := queryID(r, "division")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if divisionID != nil {
		rows, err := h.standingsService.ListByDivision(ctx, seasonID, *divisionID)
		if err != nil {
			h.logger.WarnContext(ctx, "get division standings failed", "season_id", seasonID, "division_id", *divisionID, "error", err)
			writeError(ctx, w, err)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, standingRowsToDTO(rows))
		return
	}

	tables, err := h.standingsService.ListBySeason(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "get standings failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]divisionStandingsDTO, 0, len(tables))
	for _, t := range tables {
		items = append(items, divisionStandingsDTO{
			Division: divisionToDTO(t.Division),
			Rows:     standingRowsToDTO(t.Rows),
		})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatchup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchup")
	defer span.End()

	matchupID, err := pathID(r, "matchupID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	span.SetAttributes(idAttr("matchup_id", matchupID))

	box, err := h.scheduleService.MatchupDetail(ctx, matchupID)
	if err != nil {
		h.logger.WarnContext(ctx, "get matchup failed", "matchup_id", matchupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, boxScoreDTO{
		Game: gameToDTO(box.Game),
		Away: boxScoreLinesToDTO(box.Away),
		Home: boxScoreLinesToDTO(box.Home),
	})
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.scheduleService.TeamDetail(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamDetailToDTO(detail))
}

func teamDetailToDTO(d usecase.TeamDetail) teamDetailDTO {
	out := teamDetailDTO{
		Team:         teamToDTO(d.Team),
		DivisionName: d.DivisionName,
		Roster:       make([]rosterLineDTO, 0, len(d.Roster)),
		Games:        gamesToDTO(d.Games),
	}
	if d.Season != nil {
		s := seasonToDTO(*d.Season)
		out.Season = &s
	}
	for _, line := range d.Roster {
		out.Roster = append(out.Roster, rosterLineDTO{
			rosterEntryDTO: rosterEntryToDTO(line.Entry),
			Player:         playerToDTO(line.Player),
		})
	}
	if d.Standing != nil {
		row := standingRowToDTO(*d.Standing)
		out.Standing = &row
	}
	return out
}
