package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/street-hockey-league/internal/domain/week"
	"github.com/riskibarqy/street-hockey-league/internal/usecase"
)

const quickCancelWidgetPath = "/v1/admin/quick-cancel"

type setDateCancelledRequest struct {
	Cancelled *bool `json:"cancelled" validate:"required"`
}

type bulkCancelRequest struct {
	WeekIDs   []int64 `json:"week_ids" validate:"required,min=1,dive,gt=0"`
	Cancelled *bool   `json:"cancelled" validate:"required"`
}

type cancelCountDTO struct {
	Updated   int  `json:"updated"`
	Cancelled bool `json:"cancelled"`
}

func (h *Handler) GetQuickCancelWidget(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetQuickCancelWidget")
	defer span.End()

	widget, err := h.cancellationService.QuickCancelWidget(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "load quick cancel widget failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, quickCancelWidgetToDTO(widget))
}

// RedirectToQuickCancel answers GETs on mutating quick-cancel routes.
func (h *Handler) RedirectToQuickCancel(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, quickCancelWidgetPath, http.StatusSeeOther)
}

func (h *Handler) ToggleWeekCancelled(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ToggleWeekCancelled")
	defer span.End()

	weekID, err := pathID(r, "weekID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	span.SetAttributes(idAttr("week_id", weekID))

	updated, err := h.cancellationService.ToggleWeek(ctx, weekID)
	if err != nil {
		h.logger.WarnContext(ctx, "toggle week cancelled failed", "week_id", weekID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "quick cancel week toggled",
		"week_id", weekID,
		"cancelled", updated.IsCancelled,
		"by", principalName(r),
	)
	writeSuccess(ctx, w, http.StatusOK, weekToDTO(updated))
}

func (h *Handler) SetDateCancelled(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetDateCancelled")
	defer span.End()

	rawDate := strings.TrimSpace(r.PathValue("date"))
	date, err := week.ParseDate(rawDate)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: date must be YYYY-MM-DD", usecase.ErrInvalidInput))
		return
	}

	var req setDateCancelledRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	count, err := h.cancellationService.SetDateCancelled(ctx, date, *req.Cancelled)
	if err != nil {
		h.logger.WarnContext(ctx, "set date cancelled failed", "date", rawDate, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "quick cancel date applied",
		"date", rawDate,
		"cancelled", *req.Cancelled,
		"weeks", count,
		"by", principalName(r),
	)
	writeSuccess(ctx, w, http.StatusOK, cancelCountDTO{Updated: count, Cancelled: *req.Cancelled})
}

func (h *Handler) BulkCancelWeeks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BulkCancelWeeks")
	defer span.End()

	var req bulkCancelRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	count, err := h.cancellationService.SetWeeksCancelled(ctx, req.WeekIDs, *req.Cancelled)
	if err != nil {
		h.logger.WarnContext(ctx, "bulk cancel weeks failed", "weeks", len(req.WeekIDs), "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, cancelCountDTO{Updated: count, Cancelled: *req.Cancelled})
}

func principalName(r *http.Request) string {
	principal, ok := principalFromContext(r.Context())
	if !ok {
		return ""
	}
	return principal.Username
}
