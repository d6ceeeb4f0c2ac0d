package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/street-hockey-league/internal/usecase"
)

type goalieStatusUpdateRequest struct {
	// Goalie is "", "roster", or a player id.
	Goalie formValue `json:"goalie"`
	Status formValue `json:"status" validate:"required"`
}

func (h *Handler) GetGoalieBoard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGoalieBoard")
	defer span.End()

	board, err := h.goalieStatusService.Board(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get goalie board failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, goalieBoardToDTO(board))
}

func (h *Handler) GetCaptainPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCaptainPage")
	defer span.End()

	accessCode := strings.TrimSpace(r.PathValue("accessCode"))
	page, err := h.goalieStatusService.CaptainPage(ctx, accessCode)
	if err != nil {
		h.logger.WarnContext(ctx, "get captain page failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, captainPageToDTO(page))
}

func (h *Handler) UpdateGoalieStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateGoalieStatus")
	defer span.End()

	matchupID, err := pathID(r, "matchupID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	span.SetAttributes(idAttr("matchup_id", matchupID))

	var req goalieStatusUpdateRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.goalieStatusService.UpdateGoalieStatus(ctx, usecase.GoalieUpdateInput{
		AccessCode: strings.TrimSpace(r.PathValue("accessCode")),
		MatchUpID:  matchupID,
		GoalieID:   string(req.Goalie),
		Status:     string(req.Status),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update goalie status failed", "matchup_id", matchupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
