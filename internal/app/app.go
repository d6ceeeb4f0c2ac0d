package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/street-hockey-league/internal/config"
	"github.com/riskibarqy/street-hockey-league/internal/domain/division"
	"github.com/riskibarqy/street-hockey-league/internal/domain/season"
	"github.com/riskibarqy/street-hockey-league/internal/domain/team"
	"github.com/riskibarqy/street-hockey-league/internal/infrastructure/account/staff"
	"github.com/riskibarqy/street-hockey-league/internal/infrastructure/jobqueue"
	"github.com/riskibarqy/street-hockey-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/street-hockey-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/street-hockey-league/internal/infrastructure/weather"
	"github.com/riskibarqy/street-hockey-league/internal/interfaces/httpapi"
	"github.com/riskibarqy/street-hockey-league/internal/platform/accesscode"
	basecache "github.com/riskibarqy/street-hockey-league/internal/platform/cache"
	"github.com/riskibarqy/street-hockey-league/internal/platform/logging"
	"github.com/riskibarqy/street-hockey-league/internal/platform/scheduler"
	"github.com/riskibarqy/street-hockey-league/internal/usecase"
)

// Services is the usecase graph shared by the API server and leaguectl.
type Services struct {
	Clock        *usecase.Clock
	League       *usecase.LeagueService
	Schedule     *usecase.ScheduleService
	Standings    *usecase.StandingsService
	PlayerStats  *usecase.PlayerStatsService
	Cancellation *usecase.CancellationService
	GoalieStatus *usecase.GoalieStatusService
	Home         *usecase.HomeService
	Admin        *usecase.AdminService
	Staff        *usecase.StaffService
	Maintenance  *usecase.MaintenanceService
	TeamStats    *usecase.TeamStatService
	// Dispatcher is nil when QStash is disabled.
	Dispatcher *usecase.JobDispatcher
	// Forecast is nil when no OpenWeatherMap key is configured.
	Forecast *weather.CachedForecast
}

// NewServices wires repositories and usecases over db.
func NewServices(cfg config.Config, db *sqlx.DB, logger *logging.Logger) (*Services, error) {
	if logger == nil {
		logger = logging.Default()
	}

	clock, err := usecase.NewClock(cfg.LeagueTimezone)
	if err != nil {
		return nil, fmt.Errorf("build league clock: %w", err)
	}

	var (
		seasonRepo   season.Repository   = postgres.NewSeasonRepository(db)
		divisionRepo division.Repository = postgres.NewDivisionRepository(db)
		teamRepo     team.Repository     = postgres.NewTeamRepository(db)
	)
	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		seasonRepo = cache.NewSeasonRepository(seasonRepo, store)
		divisionRepo = cache.NewDivisionRepository(divisionRepo, store)
		teamRepo = cache.NewTeamRepository(teamRepo, store)
	}

	weekRepo := postgres.NewWeekRepository(db)
	matchupRepo := postgres.NewMatchupRepository(db)
	statRepo := postgres.NewStatRepository(db)
	refRepo := postgres.NewRefRepository(db)
	playerRepo := postgres.NewPlayerRepository(db)
	rosterRepo := postgres.NewRosterRepository(db)
	teamStatRepo := postgres.NewTeamStatsRepository(db)
	playerStatsRepo := postgres.NewPlayerStatsRepository(db)

	svc := &Services{Clock: clock}

	if cfg.QStashEnabled {
		publisher := jobqueue.NewQStashPublisher(jobqueue.QStashPublisherConfig{
			BaseURL:          cfg.QStashBaseURL,
			Token:            cfg.QStashToken,
			TargetBaseURL:    cfg.QStashTargetBaseURL,
			Retries:          cfg.QStashRetries,
			InternalJobToken: cfg.InternalJobToken,
			Timeout:          cfg.QStashTimeout,
			CircuitBreaker:   cfg.QStashCircuit,
		}, logger.Named("qstash"))
		svc.Dispatcher = usecase.NewJobDispatcher(
			publisher,
			postgres.NewJobDispatchRepository(db),
			usecase.JobDispatcherConfig{
				SubNeededWebhookURL: cfg.QStashSubNeededWebhookURL,
				DedupWindow:         cfg.QStashDedupWindow,
			},
			logger.Named("jobs"),
		)
	}

	var weatherProvider usecase.WeatherProvider
	if cfg.WeatherAPIKey != "" {
		client := weather.NewClient(weather.ClientConfig{
			BaseURL:        cfg.WeatherBaseURL,
			APIKey:         cfg.WeatherAPIKey,
			Latitude:       cfg.WeatherLatitude,
			Longitude:      cfg.WeatherLongitude,
			Timeout:        cfg.WeatherTimeout,
			MaxRetries:     cfg.WeatherMaxRetries,
			Logger:         logger.Named("weather"),
			CircuitBreaker: cfg.WeatherCircuit,
		})
		svc.Forecast = weather.NewCachedForecast(client, basecache.NewStore(cfg.WeatherCacheTTL))
		weatherProvider = svc.Forecast
	} else {
		logger.Info("weather forecast disabled", "reason", "OPENWEATHERMAP_API_KEY empty")
	}

	svc.League = usecase.NewLeagueService(seasonRepo, divisionRepo)
	svc.Standings = usecase.NewStandingsService(seasonRepo, divisionRepo, teamStatRepo, matchupRepo)
	svc.Schedule = usecase.NewScheduleService(
		seasonRepo,
		divisionRepo,
		weekRepo,
		matchupRepo,
		teamRepo,
		refRepo,
		statRepo,
		playerRepo,
		rosterRepo,
		svc.Standings,
	)
	svc.PlayerStats = usecase.NewPlayerStatsService(playerStatsRepo, playerRepo, seasonRepo, divisionRepo, teamRepo)
	svc.Cancellation = usecase.NewCancellationService(weekRepo, divisionRepo, clock, logger)

	var notifier usecase.SubNeededNotifier
	if svc.Dispatcher != nil {
		notifier = svc.Dispatcher
	}
	svc.GoalieStatus = usecase.NewGoalieStatusService(
		weekRepo,
		seasonRepo,
		divisionRepo,
		matchupRepo,
		teamRepo,
		rosterRepo,
		playerRepo,
		notifier,
		clock,
		logger,
	)
	svc.Home = usecase.NewHomeService(svc.Cancellation, svc.Schedule, weatherProvider, clock, cfg.HomepageLogoURL, logger)
	svc.Admin = usecase.NewAdminService(
		svc.League,
		weekRepo,
		matchupRepo,
		teamRepo,
		rosterRepo,
		playerRepo,
		statRepo,
		teamStatRepo,
		postgres.NewSeasonRolloverRepository(db),
		accesscode.NewUUIDGenerator(),
		clock,
		logger,
	)
	svc.Staff = usecase.NewStaffService(
		postgres.NewStaffUserRepository(db),
		postgres.NewStaffGroupRepository(db),
		postgres.NewStaffSessionRepository(db),
		staff.NewBcryptHasher(cfg.StaffBcryptCost),
		cfg.StaffSessionTTL,
		logger,
	)
	svc.Maintenance = usecase.NewMaintenanceService(playerRepo, rosterRepo, teamRepo, divisionRepo, clock, logger)
	svc.TeamStats = usecase.NewTeamStatService(
		seasonRepo,
		divisionRepo,
		teamRepo,
		matchupRepo,
		teamStatRepo,
		cfg.TeamStatWorkers,
		logger,
	)

	return svc, nil
}

// App owns the API server and its background jobs.
type App struct {
	Server    *http.Server
	Services  *Services
	scheduler *scheduler.Service
	logger    *logging.Logger
}

func NewApp(cfg config.Config, db *sqlx.DB, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	svc, err := NewServices(cfg, db, logger)
	if err != nil {
		return nil, err
	}

	handler := httpapi.NewHandler(
		svc.League,
		svc.Schedule,
		svc.Standings,
		svc.PlayerStats,
		svc.Cancellation,
		svc.GoalieStatus,
		svc.Home,
		svc.Admin,
		svc.Staff,
		svc.Maintenance,
		svc.TeamStats,
		svc.Dispatcher,
		logger.Named("httpapi"),
	)
	verifier := staff.NewCachedVerifier(svc.Staff, cfg.StaffPrincipalCacheTTL, logger)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	a := &App{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		Services: svc,
		logger:   logger,
	}

	if cfg.SchedulerEnabled {
		sched, err := newScheduler(cfg, svc, logger.Named("scheduler"))
		if err != nil {
			return nil, err
		}
		a.scheduler = sched
	}
	return a, nil
}

func newScheduler(cfg config.Config, svc *Services, logger *logging.Logger) (*scheduler.Service, error) {
	sched, err := scheduler.New(logger, cfg.SchedulerJobTimeout)
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	if svc.Forecast != nil {
		if _, err := sched.AddJob("refresh-weather", cfg.SchedulerWeatherCron, func(ctx context.Context) error {
			periods, err := svc.Forecast.Refresh(ctx)
			if err != nil {
				return err
			}
			logger.DebugContext(ctx, "weather forecast refreshed", "periods", periods)
			return nil
		}); err != nil {
			return nil, fmt.Errorf("schedule refresh-weather: %w", err)
		}
	}

	if _, err := sched.AddJob(usecase.JobRecalculateTeamStats, cfg.SchedulerTeamStatsCron, func(ctx context.Context) error {
		result, err := svc.TeamStats.RecalculateCurrent(ctx)
		if errors.Is(err, usecase.ErrNotFound) {
			logger.InfoContext(ctx, "team stat recalculation skipped", "reason", "no current season")
			return nil
		}
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "team stats recalculated", "season_id", result.SeasonID, "divisions", len(result.Divisions))
		return nil
	}); err != nil {
		return nil, fmt.Errorf("schedule %s: %w", usecase.JobRecalculateTeamStats, err)
	}

	if _, err := sched.AddJob("purge-staff-sessions", cfg.SchedulerSessionsCron, func(ctx context.Context) error {
		purged, err := svc.Staff.PurgeExpiredSessions(ctx)
		if err != nil {
			return err
		}
		if purged > 0 {
			logger.InfoContext(ctx, "expired staff sessions purged", "count", purged)
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("schedule purge-staff-sessions: %w", err)
	}

	return sched, nil
}

// Start begins background jobs. The caller runs Server.
func (a *App) Start() {
	if a.scheduler != nil {
		a.scheduler.Start()
	}
}

// Shutdown stops accepting requests, then stops background jobs.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error
	if err := a.Server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
	}
	if a.scheduler != nil {
		if err := a.scheduler.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop scheduler: %w", err))
		}
	}
	return errors.Join(errs...)
}
