package httpapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/street-hockey-league/internal/domain/playerstats"
	"github.com/riskibarqy/street-hockey-league/internal/platform/logging"
	"github.com/riskibarqy/street-hockey-league/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

type Handler struct {
	leagueService       *usecase.LeagueService
	scheduleService     *usecase.ScheduleService
	standingsService    *usecase.StandingsService
	playerStatsService  *usecase.PlayerStatsService
	cancellationService *usecase.CancellationService
	goalieStatusService *usecase.GoalieStatusService
	homeService         *usecase.HomeService
	adminService        *usecase.AdminService
	staffService        *usecase.StaffService
	maintenanceService  *usecase.MaintenanceService
	teamStatService     *usecase.TeamStatService
	// jobDispatcher queues background work. Nil runs staff-triggered jobs inline.
	jobDispatcher *usecase.JobDispatcher
	forgetToken   func(token string)
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	scheduleService *usecase.ScheduleService,
	standingsService *usecase.StandingsService,
	playerStatsService *usecase.PlayerStatsService,
	cancellationService *usecase.CancellationService,
	goalieStatusService *usecase.GoalieStatusService,
	homeService *usecase.HomeService,
	adminService *usecase.AdminService,
	staffService *usecase.StaffService,
	maintenanceService *usecase.MaintenanceService,
	teamStatService *usecase.TeamStatService,
	jobDispatcher *usecase.JobDispatcher,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:       leagueService,
		scheduleService:     scheduleService,
		standingsService:    standingsService,
		playerStatsService:  playerStatsService,
		cancellationService: cancellationService,
		goalieStatusService: goalieStatusService,
		homeService:         homeService,
		adminService:        adminService,
		staffService:        staffService,
		maintenanceService:  maintenanceService,
		teamStatService:     teamStatService,
		jobDispatcher:       jobDispatcher,
		logger:              logger,
		validator:           validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) && len(invalid) > 0 {
			first := invalid[0]
			return fmt.Errorf("%w: field %s failed %q validation", usecase.ErrInvalidInput, first.Field(), first.Tag())
		}
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// decodeAndValidate reads a JSON body into dst and runs its validate tags.
// Unknown fields are rejected.
func (h *Handler) decodeAndValidate(r *http.Request, dst any) error {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read request body: %v", usecase.ErrInvalidInput, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
	}

	decoder := sonic.ConfigDefault.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(r.Context(), dst)
}

// decodeOptional is decodeAndValidate for endpoints whose body may be empty.
func (h *Handler) decodeOptional(r *http.Request, dst any) error {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read request body: %v", usecase.ErrInvalidInput, err)
	}
	if len(bytes.TrimSpace(raw)) > 0 {
		decoder := sonic.ConfigDefault.NewDecoder(bytes.NewReader(raw))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(dst); err != nil {
			return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
		}
	}
	return h.validateRequest(r.Context(), dst)
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

func queryID(r *http.Request, name string) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return &id, nil
}

func queryScope(r *http.Request) playerstats.Scope {
	return playerstats.NormalizeScope(r.URL.Query().Get("scope"))
}

func queryLimit(r *http.Request, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: limit must be positive integer", usecase.ErrInvalidInput)
	}
	return v, nil
}

// formValue accepts a JSON string or number, so captain forms can post
// either `"2"` or `2`.
type formValue string

func (v *formValue) UnmarshalJSON(raw []byte) error {
	text := strings.TrimSpace(string(raw))
	if text == "null" {
		*v = ""
		return nil
	}
	if strings.HasPrefix(text, `"`) {
		var s string
		if err := sonic.Unmarshal(raw, &s); err != nil {
			return err
		}
		*v = formValue(s)
		return nil
	}
	if _, err := strconv.ParseFloat(text, 64); err != nil {
		return fmt.Errorf("expected string or number, got %s", text)
	}
	*v = formValue(text)
	return nil
}
