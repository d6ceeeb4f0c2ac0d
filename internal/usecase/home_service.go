package usecase

import (
	"context"
	"time"

	"github.com/riskibarqy/street-hockey-league/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

// ForecastPeriod is one three-hour slot of the weather forecast.
type ForecastPeriod struct {
	Time         time.Time `json:"time"`
	TempF        float64   `json:"temp_f"`
	Condition    string    `json:"condition"`
	Description  string    `json:"description"`
	Icon         string    `json:"icon"`
	PrecipChance float64   `json:"precip_chance"`
}

type WeatherProvider interface {
	Forecast(ctx context.Context) ([]ForecastPeriod, error)
}

type HomePage struct {
	LogoURL        string
	CancelledGames []CancelledDate
	NextGameDate   time.Time
	NextGames      []Game
	Forecast       []ForecastPeriod
}

type HomeService struct {
	cancellations *CancellationService
	schedule      *ScheduleService
	weather       WeatherProvider
	clock         *Clock
	logoURL       string
	logger        *logging.Logger
}

func NewHomeService(
	cancellations *CancellationService,
	schedule *ScheduleService,
	weather WeatherProvider,
	clock *Clock,
	logoURL string,
	logger *logging.Logger,
) *HomeService {
	if logger == nil {
		logger = logging.Default()
	}
	return &HomeService{
		cancellations: cancellations,
		schedule:      schedule,
		weather:       weather,
		clock:         clock,
		logoURL:       logoURL,
		logger:        logger,
	}
}

// Home loads the banner, next game day and forecast in parallel. A weather
// failure leaves the forecast empty.
func (s *HomeService) Home(ctx context.Context) (HomePage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HomeService.Home")
	defer span.End()

	page := HomePage{LogoURL: s.logoURL, Forecast: []ForecastPeriod{}}
	p := pool.New().WithContext(ctx)

	p.Go(func(ctx context.Context) error {
		cancelled, err := s.cancellations.CancelledGames(ctx)
		if err != nil {
			return err
		}
		page.CancelledGames = cancelled
		return nil
	})
	p.Go(func(ctx context.Context) error {
		day, games, err := s.schedule.NextGameDay(ctx, s.clock.Today())
		if err != nil {
			return err
		}
		page.NextGameDate, page.NextGames = day, games
		return nil
	})
	if s.weather != nil {
		p.Go(func(ctx context.Context) error {
			forecast, err := s.weather.Forecast(ctx)
			if err != nil {
				s.logger.WarnContext(ctx, "weather forecast unavailable", "error", err)
				return nil
			}
			page.Forecast = forecast
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return HomePage{}, err
	}
	return page, nil
}
