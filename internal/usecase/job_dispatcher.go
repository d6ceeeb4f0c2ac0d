package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/street-hockey-league/internal/domain/jobdispatch"
	"github.com/riskibarqy/street-hockey-league/internal/domain/matchup"
	"github.com/riskibarqy/street-hockey-league/internal/platform/logging"
	"go.opentelemetry.io/otel/trace"
)

const (
	JobRecalculateTeamStats    = "recalculate-team-stats"
	JobDeactivateInactive      = "deactivate-inactive-players"
	JobGoalieSubNeeded         = "goalie.sub_needed"
	jobPathRecalculateTeamStat = "/v1/internal/jobs/recalculate-team-stats"
	jobPathDeactivateInactive  = "/v1/internal/jobs/deactivate-inactive-players"
)

// JobQueue publishes a job. path is either a route on this service or an
// absolute http(s) URL.
type JobQueue interface {
	Enqueue(ctx context.Context, path string, payload any, delay time.Duration, deduplicationID string) error
}

type noopJobQueue struct{}

func (noopJobQueue) Enqueue(_ context.Context, _ string, _ any, _ time.Duration, _ string) error {
	return nil
}

func NewNoopJobQueue() JobQueue {
	return noopJobQueue{}
}

// SubNeeded describes a side of a matchup that is looking for a goalie.
type SubNeeded struct {
	MatchUpID    int64
	Side         matchup.Side
	TeamID       int64
	TeamName     string
	OpponentName string
	Date         time.Time
	Time         time.Time
}

// SubNeededNotifier is told when a captain flags Sub Needed.
type SubNeededNotifier interface {
	NotifySubNeeded(ctx context.Context, notice SubNeeded) error
}

type JobDispatcherConfig struct {
	// SubNeededWebhookURL receives goalie.sub_needed notifications. Empty disables them.
	SubNeededWebhookURL string
	// DedupWindow buckets deduplication ids so repeated triggers inside it collapse.
	DedupWindow time.Duration
}

// JobDispatchResult is returned to callers that trigger a job.
type JobDispatchResult struct {
	DispatchID string `json:"dispatch_id"`
	JobName    string `json:"job_name"`
	Queued     bool   `json:"queued"`
}

type JobDispatcher struct {
	queue        JobQueue
	dispatchRepo jobdispatch.Repository
	cfg          JobDispatcherConfig
	logger       *logging.Logger
	now          func() time.Time
}

var dedupUnsafeCharRegex = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

func NewJobDispatcher(queue JobQueue, dispatchRepo jobdispatch.Repository, cfg JobDispatcherConfig, logger *logging.Logger) *JobDispatcher {
	if queue == nil {
		queue = NewNoopJobQueue()
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.DedupWindow <= 0 {
		cfg.DedupWindow = time.Minute
	}
	cfg.SubNeededWebhookURL = strings.TrimSpace(cfg.SubNeededWebhookURL)

	return &JobDispatcher{
		queue:        queue,
		dispatchRepo: dispatchRepo,
		cfg:          cfg,
		logger:       logger,
		now:          time.Now,
	}
}

// EnqueueTeamStatRecalc queues a rebuild of the season's team records.
func (d *JobDispatcher) EnqueueTeamStatRecalc(ctx context.Context, seasonID int64, delay time.Duration) (JobDispatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.JobDispatcher.EnqueueTeamStatRecalc")
	defer span.End()

	if seasonID <= 0 {
		return JobDispatchResult{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}
	scope := "season:" + strconv.FormatInt(seasonID, 10)
	payload := map[string]any{"season_id": seasonID}
	return d.dispatch(ctx, JobRecalculateTeamStats, jobPathRecalculateTeamStat, scope, payload, delay)
}

// EnqueueDeactivation queues the inactive-player sweep.
func (d *JobDispatcher) EnqueueDeactivation(ctx context.Context, input DeactivationInput) (JobDispatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.JobDispatcher.EnqueueDeactivation")
	defer span.End()

	payload := map[string]any{
		"years":               input.Years,
		"dry_run":             input.DryRun,
		"include_non_goalies": input.IncludeNonGoalies,
	}
	return d.dispatch(ctx, JobDeactivateInactive, jobPathDeactivateInactive, "players", payload, 0)
}

// NotifySubNeeded publishes a goalie.sub_needed event to the configured webhook.
func (d *JobDispatcher) NotifySubNeeded(ctx context.Context, notice SubNeeded) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.JobDispatcher.NotifySubNeeded")
	defer span.End()

	if d.cfg.SubNeededWebhookURL == "" {
		return nil
	}
	scope := fmt.Sprintf("matchup:%d:%s", notice.MatchUpID, notice.Side)
	payload := map[string]any{
		"event":         JobGoalieSubNeeded,
		"matchup_id":    notice.MatchUpID,
		"side":          string(notice.Side),
		"team_id":       notice.TeamID,
		"team_name":     notice.TeamName,
		"opponent_name": notice.OpponentName,
		"date":          notice.Date.Format("2006-01-02"),
		"time":          matchup.FormatTime(notice.Time),
	}
	_, err := d.dispatch(ctx, JobGoalieSubNeeded, d.cfg.SubNeededWebhookURL, scope, payload, 0)
	return err
}

// RecordCompletion stores the outcome of a job run delivered back to us.
func (d *JobDispatcher) RecordCompletion(ctx context.Context, dispatchID, jobName, scope string, runErr error) {
	dispatchID = strings.TrimSpace(dispatchID)
	if dispatchID == "" {
		return
	}
	event := jobdispatch.Event{
		DispatchID: dispatchID,
		JobName:    jobName,
		Scope:      scope,
		Status:     jobdispatch.StatusCompleted,
		OccurredAt: d.now().UTC(),
	}
	if runErr != nil {
		event.Status = jobdispatch.StatusFailed
		event.ErrorMessage = runErr.Error()
	}
	d.recordDispatchEvent(ctx, event)
}

func (d *JobDispatcher) dispatch(ctx context.Context, jobName, path, scope string, payload map[string]any, delay time.Duration) (JobDispatchResult, error) {
	now := d.now().UTC()
	dedupID := dedupKey(jobName, scope, now.Add(delay), d.cfg.DedupWindow)
	payload["dispatch_id"] = dedupID

	event := jobdispatch.Event{
		DispatchID: dedupID,
		JobName:    jobName,
		JobPath:    path,
		Scope:      scope,
		Status:     jobdispatch.StatusSent,
		Payload:    payload,
		OccurredAt: now,
	}
	if err := d.queue.Enqueue(ctx, path, payload, delay, dedupID); err != nil {
		event.Status = jobdispatch.StatusFailed
		event.ErrorMessage = err.Error()
		d.recordDispatchEvent(ctx, event)
		return JobDispatchResult{}, fmt.Errorf("%w: enqueue %s scope=%s: %v", ErrDependencyUnavailable, jobName, scope, err)
	}
	d.recordDispatchEvent(ctx, event)

	return JobDispatchResult{DispatchID: dedupID, JobName: jobName, Queued: true}, nil
}

func dedupKey(prefix, scope string, at time.Time, bucket time.Duration) string {
	if bucket <= 0 {
		bucket = time.Minute
	}
	slot := at.UTC().Truncate(bucket).Format("20060102T150405Z")
	return sanitizeDedupSegment(prefix) + "-" + sanitizeDedupSegment(scope) + "-" + slot
}

func sanitizeDedupSegment(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "unknown"
	}
	return dedupUnsafeCharRegex.ReplaceAllString(value, "-")
}

func (d *JobDispatcher) recordDispatchEvent(ctx context.Context, event jobdispatch.Event) {
	if d.dispatchRepo == nil || strings.TrimSpace(event.DispatchID) == "" {
		return
	}
	event.TraceID, event.SpanID = traceMetaFromContext(ctx)
	if event.OccurredAt.IsZero() {
		event.OccurredAt = d.now().UTC()
	}
	if err := d.dispatchRepo.UpsertEvent(ctx, event); err != nil {
		d.logger.WarnContext(ctx, "record job dispatch event failed",
			"dispatch_id", event.DispatchID,
			"status", event.Status,
			"error", err,
		)
	}
}

func traceMetaFromContext(ctx context.Context) (string, string) {
	spanContext := trace.SpanFromContext(ctx).SpanContext()
	if !spanContext.IsValid() {
		return "", ""
	}
	return spanContext.TraceID().String(), spanContext.SpanID().String()
}
