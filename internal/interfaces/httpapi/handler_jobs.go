package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/riskibarqy/street-hockey-league/internal/usecase"
)

type internalTeamStatJobRequest struct {
	DispatchID string `json:"dispatch_id"`
	SeasonID   int64  `json:"season_id" validate:"omitempty,gt=0"`
}

type internalDeactivationJobRequest struct {
	DispatchID        string `json:"dispatch_id"`
	Years             *int   `json:"years" validate:"omitempty,min=0,max=50"`
	DryRun            bool   `json:"dry_run"`
	IncludeNonGoalies bool   `json:"include_non_goalies"`
}

type recalculateTeamStatsRequest struct {
	SeasonID int64 `json:"season_id" validate:"omitempty,gt=0"`
}

type deactivationRequest struct {
	Years             *int `json:"years" validate:"omitempty,min=0,max=50"`
	DryRun            bool `json:"dry_run"`
	IncludeNonGoalies bool `json:"include_non_goalies"`
}

// deactivationYears applies the default only when the field is absent; an
// explicit 0 means the current year is the cutoff.
func deactivationYears(raw *int) int {
	if raw == nil {
		return usecase.DefaultDeactivationYears
	}
	return *raw
}

type deactivationActionDTO struct {
	PlayerID   int64  `json:"player_id"`
	PlayerName string `json:"player_name"`
	Reason     string `json:"reason"`
}

type deactivationReportDTO struct {
	Years         int                     `json:"years"`
	CutoffYear    int                     `json:"cutoff_year"`
	DryRun        bool                    `json:"dry_run"`
	Protected     int                     `json:"protected"`
	Deactivated   []deactivationActionDTO `json:"deactivated"`
	Skipped       int                     `json:"skipped"`
	Excluded      []playerDTO             `json:"excluded"`
	ExcludedTotal int                     `json:"excluded_total"`
}

func (h *Handler) RunRecalculateTeamStatsJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRecalculateTeamStatsJob")
	defer span.End()

	var req internalTeamStatJobRequest
	if err := h.decodeOptional(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.recalculateTeamStats(ctx, req.SeasonID)
	scope := "season:current"
	if req.SeasonID > 0 {
		scope = "season:" + strconv.FormatInt(req.SeasonID, 10)
	}
	if h.jobDispatcher != nil {
		h.jobDispatcher.RecordCompletion(ctx, req.DispatchID, usecase.JobRecalculateTeamStats, scope, err)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "run team stat recalculation job failed", "season_id", req.SeasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) RunDeactivateInactivePlayersJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunDeactivateInactivePlayersJob")
	defer span.End()

	var req internalDeactivationJobRequest
	if err := h.decodeOptional(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	years := deactivationYears(req.Years)
	report, err := h.maintenanceService.DeactivateInactivePlayers(ctx, usecase.DeactivationInput{
		Years:             years,
		DryRun:            req.DryRun,
		IncludeNonGoalies: req.IncludeNonGoalies,
	})
	if h.jobDispatcher != nil {
		h.jobDispatcher.RecordCompletion(ctx, req.DispatchID, usecase.JobDeactivateInactive, "players", err)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "run deactivation job failed", "years", years, "dry_run", req.DryRun, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "inactive players processed",
		"deactivated", len(report.Actions),
		"dry_run", report.DryRun,
		"cutoff_year", report.CutoffYear,
	)
	writeSuccess(ctx, w, http.StatusOK, deactivationReportToDTO(report))
}

// TriggerTeamStatRecalc queues a rebuild when a job queue is configured and
// runs it in-request otherwise.
func (h *Handler) TriggerTeamStatRecalc(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TriggerTeamStatRecalc")
	defer span.End()

	var req recalculateTeamStatsRequest
	if err := h.decodeOptional(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if h.jobDispatcher == nil {
		result, err := h.recalculateTeamStats(ctx, req.SeasonID)
		if err != nil {
			h.logger.WarnContext(ctx, "team stat recalculation failed", "season_id", req.SeasonID, "error", err)
			writeError(ctx, w, err)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, result)
		return
	}

	seasonID := req.SeasonID
	if seasonID == 0 {
		current, err := h.leagueService.CurrentSeason(ctx)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		seasonID = current.ID
	}
	queued, err := h.jobDispatcher.EnqueueTeamStatRecalc(ctx, seasonID, 0)
	if err != nil {
		h.logger.WarnContext(ctx, "enqueue team stat recalculation failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusAccepted, queued)
}

func (h *Handler) TriggerDeactivation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TriggerDeactivation")
	defer span.End()

	var req deactivationRequest
	if err := h.decodeOptional(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	input := usecase.DeactivationInput{
		Years:             deactivationYears(req.Years),
		DryRun:            req.DryRun,
		IncludeNonGoalies: req.IncludeNonGoalies,
	}

	// Dry runs always answer inline so staff can read the report.
	if h.jobDispatcher == nil || input.DryRun {
		report, err := h.maintenanceService.DeactivateInactivePlayers(ctx, input)
		if err != nil {
			h.logger.WarnContext(ctx, "deactivate inactive players failed", "error", err)
			writeError(ctx, w, err)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, deactivationReportToDTO(report))
		return
	}

	queued, err := h.jobDispatcher.EnqueueDeactivation(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "enqueue deactivation failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusAccepted, queued)
}

func (h *Handler) recalculateTeamStats(ctx context.Context, seasonID int64) (usecase.TeamStatRecalcResult, error) {
	if h.teamStatService == nil {
		return usecase.TeamStatRecalcResult{}, fmt.Errorf("%w: team stat service is not configured", usecase.ErrDependencyUnavailable)
	}
	if seasonID > 0 {
		return h.teamStatService.RecalculateSeason(ctx, seasonID)
	}
	return h.teamStatService.RecalculateCurrent(ctx)
}

func deactivationReportToDTO(report usecase.DeactivationReport) deactivationReportDTO {
	out := deactivationReportDTO{
		Years:         report.Years,
		CutoffYear:    report.CutoffYear,
		DryRun:        report.DryRun,
		Protected:     report.Protected,
		Deactivated:   make([]deactivationActionDTO, 0, len(report.Actions)),
		Skipped:       report.Skipped,
		Excluded:      playersToDTO(report.Excluded),
		ExcludedTotal: report.ExcludedTotal,
	}
	for _, a := range report.Actions {
		out.Deactivated = append(out.Deactivated, deactivationActionDTO{
			PlayerID:   a.Player.ID,
			PlayerName: a.Player.SortName(),
			Reason:     a.Reason,
		})
	}
	return out
}
