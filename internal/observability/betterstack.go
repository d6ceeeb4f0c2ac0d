package observability

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/riskibarqy/street-hockey-league/internal/config"
	"github.com/riskibarqy/street-hockey-league/internal/platform/logging"
	"github.com/valyala/bytebufferpool"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	shipperQueueSize  = 1024
	shipperBatchSize  = 50
	shipperFlushEvery = time.Second
	shipperDrainLimit = 5 * time.Second
)

// InitBetterStackLogger tees baseLogger into Better Stack for entries at or
// above BETTERSTACK_MIN_LEVEL. The returned func drains pending batches.
func InitBetterStackLogger(cfg config.Config, baseLogger *logging.Logger) (*logging.Logger, func(context.Context) error, error) {
	if baseLogger == nil {
		baseLogger = logging.NewJSON(cfg.LogLevel)
	}

	if !cfg.BetterStackEnabled {
		baseLogger.Info("betterstack disabled", "reason", "BETTERSTACK_ENABLED=false")
		return baseLogger, func(context.Context) error { return nil }, nil
	}

	endpoint := normalizeBetterStackEndpoint(cfg.BetterStackEndpoint)
	if endpoint == "" {
		return nil, nil, fmt.Errorf("betterstack endpoint cannot be empty")
	}

	shipper := newLogShipper(endpoint, strings.TrimSpace(cfg.BetterStackToken), cfg.BetterStackTimeout)
	logger := baseLogger.Tee(betterStackCore(cfg, shipper))
	logger.Info("betterstack enabled",
		"endpoint", endpoint,
		"min_level", cfg.BetterStackMinLevel.String(),
		"service_name", cfg.ServiceName,
		"environment", cfg.AppEnv,
	)

	return logger, func(ctx context.Context) error {
		if ctx == nil {
			ctx = context.Background()
		}
		if _, ok := ctx.Deadline(); !ok {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, shipperDrainLimit)
			defer cancel()
		}
		if err := shipper.Close(ctx); err != nil {
			return fmt.Errorf("drain betterstack queue: %w", err)
		}
		if err := logger.Sync(); err != nil && !isIgnorableLoggerSyncError(err) {
			return err
		}
		return nil
	}, nil
}

// betterStackCore encodes entries as Better Stack JSON with the league's
// deployment fields on every line.
func betterStackCore(cfg config.Config, w zapcore.WriteSyncer) zapcore.Core {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "dt"
	encoderCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder

	fields := []zapcore.Field{
		zap.String("service", cfg.ServiceName),
		zap.String("environment", cfg.AppEnv),
	}
	if cfg.ServiceVersion != "" {
		fields = append(fields, zap.String("service_version", cfg.ServiceVersion))
	}
	if cfg.LeagueTimezone != "" {
		fields = append(fields, zap.String("league_timezone", cfg.LeagueTimezone))
	}
	return zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), w, cfg.BetterStackMinLevel).With(fields)
}

func normalizeBetterStackEndpoint(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return value
	}
	return "https://" + value
}

// logShipper queues encoded entries and posts them in JSON array batches.
// Entries are dropped, never blocked on, when the queue is full.
type logShipper struct {
	endpoint  string
	token     string
	client    *http.Client
	queue     chan []byte
	queueMu   sync.RWMutex
	closeOnce sync.Once
	closed    atomic.Bool
	done      chan struct{}
	dropped   atomic.Uint64
}

func newLogShipper(endpoint, token string, timeout time.Duration) *logShipper {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	s := &logShipper{
		endpoint: endpoint,
		token:    token,
		client:   &http.Client{Timeout: timeout},
		queue:    make(chan []byte, shipperQueueSize),
		done:     make(chan struct{}),
	}
	go s.run(shipperFlushEvery)
	return s
}

func (s *logShipper) Write(p []byte) (int, error) {
	payload := bytes.TrimSpace(p)
	if len(payload) == 0 {
		return len(p), nil
	}

	s.queueMu.RLock()
	defer s.queueMu.RUnlock()
	if s.closed.Load() {
		return len(p), nil
	}

	// zap reuses its buffer after Write returns.
	entry := append([]byte(nil), payload...)
	select {
	case s.queue <- entry:
	default:
		if n := s.dropped.Add(1); n == 1 || n%100 == 0 {
			fmt.Fprintf(os.Stderr, "betterstack queue full; dropped logs=%d\n", n)
		}
	}
	return len(p), nil
}

func (s *logShipper) Sync() error {
	return nil
}

func (s *logShipper) run(flushEvery time.Duration) {
	defer close(s.done)

	ticker := time.NewTicker(flushEvery)
	defer ticker.Stop()

	batch := make([][]byte, 0, shipperBatchSize)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		s.post(batch)
		batch = batch[:0]
	}
	for {
		select {
		case entry, ok := <-s.queue:
			if !ok {
				flush()
				return
			}
			batch = append(batch, entry)
			if len(batch) >= shipperBatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}

func (s *logShipper) post(batch [][]byte) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	writeBatch(buf, batch)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, s.endpoint, bytes.NewReader(buf.B))
	if err != nil {
		fmt.Fprintf(os.Stderr, "betterstack create request failed: %v\n", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "betterstack send %d logs failed: %v\n", len(batch), err)
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusMultipleChoices {
		fmt.Fprintf(os.Stderr, "betterstack send %d logs got status=%d\n", len(batch), resp.StatusCode)
	}
}

// writeBatch joins already encoded JSON objects into one JSON array.
func writeBatch(buf *bytebufferpool.ByteBuffer, batch [][]byte) {
	_ = buf.WriteByte('[')
	for i, entry := range batch {
		if i > 0 {
			_ = buf.WriteByte(',')
		}
		_, _ = buf.Write(entry)
	}
	_ = buf.WriteByte(']')
}

// Close stops accepting entries and waits for queued batches to post.
func (s *logShipper) Close(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	s.closeOnce.Do(func() {
		s.queueMu.Lock()
		s.closed.Store(true)
		close(s.queue)
		s.queueMu.Unlock()
	})

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func isIgnorableLoggerSyncError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "bad file descriptor") || strings.Contains(msg, "invalid argument")
}
