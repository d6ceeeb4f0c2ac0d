package httpapi

import (
	"net/http"

	"github.com/riskibarqy/street-hockey-league/internal/domain/account"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/home", handler.GetHome)
	mux.HandleFunc("GET /v1/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /v1/seasons/current", handler.GetCurrentSeason)
	mux.HandleFunc("GET /v1/divisions", handler.ListDivisions)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/schedule", handler.GetSchedule)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/scores", handler.GetScores)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/player-stats", handler.GetSeasonPlayerStats)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/leaders", handler.GetLeagueLeaders)
	mux.HandleFunc("GET /v1/matchups/{matchupID}", handler.GetMatchup)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/players/{playerID}/trend", handler.GetPlayerTrend)
	mux.HandleFunc("GET /v1/hall-of-fame", handler.GetHallOfFame)
}

// Captains authenticate with the access code in the path.
func registerGoalieStatusRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/goalie-status", handler.GetGoalieBoard)
	mux.HandleFunc("GET /v1/goalie-status/captain/{accessCode}", handler.GetCaptainPage)
	mux.HandleFunc("POST /v1/goalie-status/captain/{accessCode}/matchups/{matchupID}", handler.UpdateGoalieStatus)
}

func registerStaffRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	requirePerm := func(perm account.Permission, fn http.HandlerFunc) http.Handler {
		return RequirePermission(verifier, perm, fn)
	}

	mux.HandleFunc("POST /v1/admin/sessions", handler.CreateSession)
	mux.Handle("DELETE /v1/admin/sessions", RequireAuth(verifier, http.HandlerFunc(handler.DeleteSession)))

	mux.Handle("GET /v1/admin/autocomplete/players", RequireAuth(verifier, http.HandlerFunc(handler.AutocompletePlayers)))
	mux.Handle("GET /v1/admin/autocomplete/goalies", RequireAuth(verifier, http.HandlerFunc(handler.AutocompleteGoalies)))
	mux.Handle("GET /v1/admin/seasons/recent", RequireAuth(verifier, http.HandlerFunc(handler.ListRecentSeasons)))

	mux.Handle("GET /v1/admin/matchups", requirePerm(account.PermViewMatchup, handler.AdminListMatchups))
	mux.Handle("GET /v1/admin/matchups/team-choices", requirePerm(account.PermViewMatchup, handler.AdminTeamChoices))
	mux.Handle("GET /v1/admin/matchups/{matchupID}/choices", requirePerm(account.PermViewMatchup, handler.AdminMatchupChoices))
	mux.Handle("POST /v1/admin/matchups", requirePerm(account.PermChangeMatchup, handler.CreateMatchup))
	mux.Handle("PUT /v1/admin/matchups/{matchupID}", requirePerm(account.PermChangeMatchup, handler.UpdateMatchup))
	mux.Handle("PUT /v1/admin/matchups/{matchupID}/stats", requirePerm(account.PermChangeStat, handler.ReplaceMatchupStats))

	mux.Handle("GET /v1/admin/weeks", requirePerm(account.PermChangeWeek, handler.AdminListWeeks))
	mux.Handle("POST /v1/admin/weeks", requirePerm(account.PermChangeWeek, handler.CreateWeek))
	mux.Handle("POST /v1/admin/weeks/bulk-cancel", requirePerm(account.PermChangeWeek, handler.BulkCancelWeeks))

	mux.Handle("POST /v1/admin/players", requirePerm(account.PermChangePlayer, handler.CreatePlayer))
	mux.Handle("PUT /v1/admin/players/{playerID}", requirePerm(account.PermChangePlayer, handler.UpdatePlayer))
	mux.Handle("POST /v1/admin/players/deactivate-inactive", requirePerm(account.PermChangePlayer, handler.TriggerDeactivation))
	mux.Handle("POST /v1/admin/teams", requirePerm(account.PermChangeTeam, handler.CreateTeam))
	mux.Handle("PUT /v1/admin/teams/{teamID}", requirePerm(account.PermChangeTeam, handler.UpdateTeam))
	mux.Handle("POST /v1/admin/roster", requirePerm(account.PermChangeTeam, handler.CreateRosterEntry))
	mux.Handle("PUT /v1/admin/roster/{entryID}", requirePerm(account.PermChangeTeam, handler.UpdateRosterEntry))
	mux.Handle("DELETE /v1/admin/roster/{entryID}", requirePerm(account.PermChangeTeam, handler.DeleteRosterEntry))

	mux.Handle("PUT /v1/admin/team-stats", requirePerm(account.PermChangeTeam, handler.UpsertTeamStat))
	mux.Handle("POST /v1/admin/team-stats/recalculate", requirePerm(account.PermChangeTeam, handler.TriggerTeamStatRecalc))
	mux.Handle("POST /v1/admin/seasons/rollover", requirePerm(account.PermChangeSeason, handler.RolloverSeason))
	mux.Handle("POST /v1/admin/goalie-subs", requirePerm(account.PermChangeMatchup, handler.QuickAddGoalieSub))
}

// Toggle and date routes only mutate on POST; a GET bounces back to the widget.
func registerQuickCancelRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	quickCancel := func(fn http.HandlerFunc) http.Handler {
		return RequirePermission(verifier, account.PermQuickCancel, fn)
	}

	mux.Handle("GET "+quickCancelWidgetPath, quickCancel(handler.GetQuickCancelWidget))
	mux.Handle("POST /v1/admin/quick-cancel/weeks/{weekID}/toggle", quickCancel(handler.ToggleWeekCancelled))
	mux.Handle("GET /v1/admin/quick-cancel/weeks/{weekID}/toggle", quickCancel(handler.RedirectToQuickCancel))
	mux.Handle("POST /v1/admin/quick-cancel/dates/{date}", quickCancel(handler.SetDateCancelled))
	mux.Handle("GET /v1/admin/quick-cancel/dates/{date}", quickCancel(handler.RedirectToQuickCancel))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/recalculate-team-stats", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunRecalculateTeamStatsJob)))
	mux.Handle("POST /v1/internal/jobs/deactivate-inactive-players", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunDeactivateInactivePlayersJob)))
}
