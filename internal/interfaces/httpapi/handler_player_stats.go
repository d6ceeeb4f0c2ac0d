package httpapi

import (
	"net/http"
)

const defaultHallOfFameLimit = 10

func (h *Handler) GetSeasonPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonPlayerStats")
	defer span.End()

	seasonID, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	scope := queryScope(r)

	groups, err := h.playerStatsService.SeasonStats(ctx, seasonID, scope)
	if err != nil {
		h.logger.WarnContext(ctx, "get season player stats failed", "season_id", seasonID, "scope", scope, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]divisionPlayerStatsDTO, 0, len(groups))
	for _, g := range groups {
		items = append(items, divisionPlayerStatsDTO{
			DivisionID:   g.DivisionID,
			DivisionName: g.DivisionName,
			Lines:        statLinesToDTO(g.Lines),
		})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeagueLeaders(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueLeaders")
	defer span.End()

	seasonID, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	scope := queryScope(r)

	groups, err := h.playerStatsService.LeagueLeaders(ctx, seasonID, scope)
	if err != nil {
		h.logger.WarnContext(ctx, "get league leaders failed", "season_id", seasonID, "scope", scope, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]divisionLeadersDTO, 0, len(groups))
	for _, g := range groups {
		items = append(items, divisionLeadersDTO{
			DivisionID:   g.DivisionID,
			DivisionName: g.DivisionName,
			Offense:      statLinesToDTO(g.Offense),
			Goalies:      statLinesToDTO(g.Goalies),
		})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	scope := queryScope(r)

	profile, err := h.playerStatsService.PlayerProfile(ctx, playerID, scope)
	if err != nil {
		h.logger.WarnContext(ctx, "get player profile failed", "player_id", playerID, "scope", scope, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerProfileToDTO(profile))
}

func (h *Handler) GetPlayerTrend(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerTrend")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	scope := queryScope(r)

	trend, err := h.playerStatsService.PlayerTrend(ctx, playerID, scope)
	if err != nil {
		h.logger.WarnContext(ctx, "get player trend failed", "player_id", playerID, "scope", scope, "error", err)
		writeError(ctx, w, err)
		return
	}
	averages, err := h.playerStatsService.AverageStats(ctx, playerID, scope)
	if err != nil {
		h.logger.WarnContext(ctx, "get player averages failed", "player_id", playerID, "scope", scope, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"scope":  scope,
		"series": trend,
		"averages": averagesDTO{
			SeasonsPlayed:    averages.SeasonsPlayed,
			GoalsPerSeason:   averages.GoalsPerSeason,
			AssistsPerSeason: averages.AssistsPerSeason,
		},
	})
}

func (h *Handler) GetHallOfFame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHallOfFame")
	defer span.End()

	limit, err := queryLimit(r, defaultHallOfFameLimit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	scope := queryScope(r)

	hof, err := h.playerStatsService.HallOfFame(ctx, scope, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "get hall of fame failed", "scope", scope, "limit", limit, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, hallOfFameToDTO(hof))
}
