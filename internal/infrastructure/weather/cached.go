package weather

import (
	"context"
	"slices"

	basecache "github.com/riskibarqy/street-hockey-league/internal/platform/cache"
	"github.com/riskibarqy/street-hockey-league/internal/usecase"
)

const forecastCacheKey = "weather:forecast"

// CachedForecast serves the last good forecast until it expires or Refresh
// replaces it.
type CachedForecast struct {
	next  usecase.WeatherProvider
	store *basecache.Store
}

func NewCachedForecast(next usecase.WeatherProvider, store *basecache.Store) *CachedForecast {
	return &CachedForecast{next: next, store: store}
}

func (c *CachedForecast) Forecast(ctx context.Context) ([]usecase.ForecastPeriod, error) {
	periods, err := basecache.Load(ctx, c.store, forecastCacheKey, c.next.Forecast)
	if err != nil {
		return nil, err
	}
	return slices.Clone(periods), nil
}

// Refresh fetches a new forecast and keeps the previous one on failure.
func (c *CachedForecast) Refresh(ctx context.Context) (int, error) {
	periods, err := c.next.Forecast(ctx)
	if err != nil {
		return 0, err
	}
	c.store.Set(ctx, forecastCacheKey, periods)
	return len(periods), nil
}
