package scheduler

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"

	"github.com/riskibarqy/street-hockey-league/internal/platform/logging"
)

var (
	ErrEmptyJobName  = errors.New("job name is required")
	ErrEmptyCronExpr = errors.New("cron expression is required")
	ErrNilTask       = errors.New("job task is required")
)

// Task is a unit of scheduled work. The context is cancelled on shutdown or timeout.
type Task func(ctx context.Context) error

// Service wraps a gocron scheduler. Jobs never overlap with themselves.
type Service struct {
	scheduler gocron.Scheduler
	logger    *logging.Logger
	timeout   time.Duration

	baseCtx  context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once
	stopErr  error
}

func New(logger *logging.Logger, jobTimeout time.Duration) (*Service, error) {
	if logger == nil {
		logger = logging.Default()
	}
	sched, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
		gocron.WithGlobalJobOptions(
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					logger.Error("scheduler job panicked",
						"job_id", jobID.String(),
						"job_name", jobName,
						"panic", recoverData,
					)
				}),
			),
		),
	)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		scheduler: sched,
		logger:    logger,
		timeout:   jobTimeout,
		baseCtx:   ctx,
		cancel:    cancel,
	}, nil
}

func (s *Service) Start() {
	s.logger.Info("scheduler starting", "jobs", len(s.scheduler.Jobs()))
	s.scheduler.Start()
}

// Stop cancels running tasks and shuts the scheduler down.
func (s *Service) Stop() error {
	s.stopOnce.Do(func() {
		s.logger.Info("scheduler stopping")
		s.cancel()
		s.stopErr = s.scheduler.Shutdown()
	})
	return s.stopErr
}

// AddJob registers task to run on a five-field cron expression.
func (s *Service) AddJob(name, cronExpr string, task Task) (gocron.Job, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyJobName
	}
	if strings.TrimSpace(cronExpr) == "" {
		return nil, ErrEmptyCronExpr
	}
	if task == nil {
		return nil, ErrNilTask
	}
	jobLogger := s.logger.With("job_name", name, "cron", cronExpr)

	job, err := s.scheduler.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(func() { s.run(jobLogger, task) }),
		gocron.WithName(name),
	)
	if err != nil {
		jobLogger.Error("register scheduler job failed", "error", err)
		return nil, err
	}
	jobLogger.Info("scheduler job registered")
	return job, nil
}

func (s *Service) run(jobLogger *logging.Logger, task Task) {
	ctx := s.baseCtx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	startedAt := time.Now()
	jobLogger.Debug("scheduler job started")
	if err := task(ctx); err != nil {
		jobLogger.Warn("scheduler job failed", "error", err, "duration", time.Since(startedAt))
		return
	}
	jobLogger.Debug("scheduler job completed", "duration", time.Since(startedAt))
}
