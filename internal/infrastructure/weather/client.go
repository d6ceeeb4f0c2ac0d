package weather

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/street-hockey-league/internal/platform/logging"
	"github.com/riskibarqy/street-hockey-league/internal/platform/resilience"
	"github.com/riskibarqy/street-hockey-league/internal/usecase"
	"github.com/valyala/fasthttp"
	"golang.org/x/sync/singleflight"
)

const (
	defaultBaseURL   = "https://api.openweathermap.org/data/2.5"
	defaultLatitude  = 38.8951
	defaultLongitude = -77.0364
	maxResponseBytes = 2 << 20
)

var (
	errWeatherTransient = crerr.New("openweathermap transient failure")
	appIDParamRegex     = regexp.MustCompile(`appid=[^&\s"']+`)
)

type ClientConfig struct {
	BaseURL        string
	APIKey         string
	Latitude       float64
	Longitude      float64
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	// Doer overrides the fasthttp client, mainly for tests.
	Doer Doer
}

// Doer is the subset of *fasthttp.Client the forecast client needs.
type Doer interface {
	DoTimeout(req *fasthttp.Request, resp *fasthttp.Response, timeout time.Duration) error
}

type Client struct {
	doer         Doer
	baseURL      string
	apiKey       string
	latitude     float64
	longitude    float64
	timeout      time.Duration
	maxRetries   int
	retryBackoff time.Duration
	logger       *logging.Logger
	breaker      *resilience.CircuitBreaker
	flight       singleflight.Group
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = 500 * time.Millisecond
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	lat, lon := cfg.Latitude, cfg.Longitude
	if lat == 0 && lon == 0 {
		lat, lon = defaultLatitude, defaultLongitude
	}
	doer := cfg.Doer
	if doer == nil {
		doer = &fasthttp.Client{
			Name:                "dcstreethockey-weather",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: time.Minute,
		}
	}

	return &Client{
		doer:         doer,
		baseURL:      baseURL,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		latitude:     lat,
		longitude:    lon,
		timeout:      timeout,
		maxRetries:   max(cfg.MaxRetries, 0),
		retryBackoff: backoff,
		logger:       logger,
		breaker: resilience.NewCircuitBreaker("openweathermap", cfg.CircuitBreaker, func(name string, from, to resilience.CircuitState) {
			logger.Warn("circuit breaker state changed", "breaker", name, "from", from, "to", to)
		}),
	}
}

// Forecast returns the 5-day, 3-hour forecast. Without an API key it returns
// an empty forecast and makes no request.
func (c *Client) Forecast(ctx context.Context) ([]usecase.ForecastPeriod, error) {
	if c.apiKey == "" {
		return []usecase.ForecastPeriod{}, nil
	}
	out, err, _ := c.flight.Do("forecast", func() (any, error) {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "weather circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: weather provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
		raw, reqErr := c.fetch(ctx)
		switch {
		case reqErr == nil:
			c.breaker.RecordSuccess()
		case stderrors.Is(reqErr, errWeatherTransient):
			c.breaker.RecordFailure()
		default:
			c.breaker.RecordSuccess()
		}
		return raw, reqErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected forecast payload type %T", out)
	}
	var decoded forecastEnvelope
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decode forecast payload: %w", err)
	}
	return decoded.periods(), nil
}

func (c *Client) forecastURL() string {
	values := url.Values{}
	values.Set("lat", strconv.FormatFloat(c.latitude, 'f', 4, 64))
	values.Set("lon", strconv.FormatFloat(c.longitude, 'f', 4, 64))
	values.Set("appid", c.apiKey)
	values.Set("units", "imperial")
	return c.baseURL + "/forecast?" + values.Encode()
}

func (c *Client) fetch(ctx context.Context) ([]byte, error) {
	fullURL := c.forecastURL()

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		raw, status, err := c.do(fullURL)
		switch {
		case err != nil:
			lastErr = fmt.Errorf("%w: send request: %s", errWeatherTransient, c.redact(err.Error()))
		case status >= 200 && status < 300:
			return raw, nil
		case isRetryableStatus(status):
			lastErr = fmt.Errorf("%w: provider status=%d body=%s", errWeatherTransient, status, abbreviateBody(raw))
		default:
			return nil, fmt.Errorf("provider status=%d body=%s", status, c.redact(abbreviateBody(raw)))
		}

		if attempt == c.maxRetries {
			break
		}
		timer := time.NewTimer(time.Duration(attempt+1) * c.retryBackoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	c.logger.WarnContext(ctx, "weather request failed", "url", c.redact(fullURL), "error", lastErr)
	return nil, lastErr
}

func (c *Client) do(fullURL string) ([]byte, int, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	if err := c.doer.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, 0, err
	}
	body := resp.Body()
	if len(body) > maxResponseBytes {
		body = body[:maxResponseBytes]
	}
	return bytes.Clone(body), resp.StatusCode(), nil
}

func (c *Client) redact(value string) string {
	if c.apiKey != "" {
		value = strings.ReplaceAll(value, c.apiKey, "REDACTED")
	}
	return appIDParamRegex.ReplaceAllString(value, "appid=REDACTED")
}

func isRetryableStatus(status int) bool {
	return status == fasthttp.StatusRequestTimeout ||
		status == fasthttp.StatusTooManyRequests ||
		status >= fasthttp.StatusInternalServerError
}

func abbreviateBody(raw []byte) string {
	text := strings.TrimSpace(string(raw))
	if len(text) > 256 {
		return text[:256] + "...(truncated)"
	}
	return text
}

type forecastEnvelope struct {
	List []forecastItem `json:"list"`
}

type forecastItem struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Pop float64 `json:"pop"`
}

func (e forecastEnvelope) periods() []usecase.ForecastPeriod {
	out := make([]usecase.ForecastPeriod, 0, len(e.List))
	for _, item := range e.List {
		if item.Dt <= 0 {
			continue
		}
		period := usecase.ForecastPeriod{
			Time:         time.Unix(item.Dt, 0).UTC(),
			TempF:        item.Main.Temp,
			PrecipChance: item.Pop,
		}
		if len(item.Weather) > 0 {
			period.Condition = item.Weather[0].Main
			period.Description = item.Weather[0].Description
			period.Icon = item.Weather[0].Icon
		}
		out = append(out, period)
	}
	return out
}
