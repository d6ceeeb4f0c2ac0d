package observability

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/street-hockey-league/internal/config"
	"github.com/riskibarqy/street-hockey-league/internal/platform/logging"
)

type betterStackSink struct {
	mu       sync.Mutex
	requests int
	auth     string
	entries  []map[string]any
}

func newBetterStackSink(t *testing.T) (*betterStackSink, *httptest.Server) {
	t.Helper()

	sink := &betterStackSink{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var batch []map[string]any
		if err := sonic.Unmarshal(body, &batch); err != nil {
			t.Errorf("batch is not a JSON array: %v: %s", err, body)
		}
		sink.mu.Lock()
		sink.requests++
		sink.auth = r.Header.Get("Authorization")
		sink.entries = append(sink.entries, batch...)
		sink.mu.Unlock()
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(server.Close)
	return sink, server
}

func leagueLogConfig(endpoint string) config.Config {
	return config.Config{
		BetterStackEnabled:  true,
		BetterStackEndpoint: endpoint,
		BetterStackTimeout:  2 * time.Second,
		BetterStackMinLevel: logging.LevelWarn,
		ServiceName:         "street-hockey-league-api",
		ServiceVersion:      "1.4.0",
		AppEnv:              config.EnvStage,
		LeagueTimezone:      "America/New_York",
	}
}

func drain(t *testing.T, shutdown func(context.Context) error) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("shutdown logger: %v", err)
	}
}

func TestInitBetterStackLogger_ShipsLeagueFields(t *testing.T) {
	t.Parallel()

	sink, server := newBetterStackSink(t)
	cfg := leagueLogConfig(server.URL)
	cfg.BetterStackToken = "secret-token"

	logger, shutdown, err := InitBetterStackLogger(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init betterstack logger: %v", err)
	}

	ctx := context.Background()
	logger.WarnContext(ctx, "publish sub needed notification failed", "matchup_id", 100, "side", "home")
	logger.ErrorContext(ctx, "team stats recalculation failed", "season_id", 30, "division_id", 2)
	logger.InfoContext(ctx, "goalie status updated", "matchup_id", 100)
	drain(t, shutdown)

	sink.mu.Lock()
	defer sink.mu.Unlock()
	if sink.auth != "Bearer secret-token" {
		t.Fatalf("unexpected authorization header: %q", sink.auth)
	}
	if len(sink.entries) != 2 {
		t.Fatalf("expected warn and error entries only, got %d: %v", len(sink.entries), sink.entries)
	}
	for _, entry := range sink.entries {
		if entry["service"] != "street-hockey-league-api" || entry["environment"] != config.EnvStage {
			t.Fatalf("missing deployment fields: %v", entry)
		}
		if entry["service_version"] != "1.4.0" || entry["league_timezone"] != "America/New_York" {
			t.Fatalf("missing league fields: %v", entry)
		}
		if _, ok := entry["dt"]; !ok {
			t.Fatalf("missing dt timestamp: %v", entry)
		}
	}
	if sink.entries[0]["msg"] != "publish sub needed notification failed" || sink.entries[0]["side"] != "home" {
		t.Fatalf("unexpected first entry: %v", sink.entries[0])
	}
	if sink.entries[1]["season_id"] != float64(30) {
		t.Fatalf("unexpected second entry: %v", sink.entries[1])
	}
}

func TestInitBetterStackLogger_BelowMinLevelSendsNothing(t *testing.T) {
	t.Parallel()

	sink, server := newBetterStackSink(t)
	logger, shutdown, err := InitBetterStackLogger(leagueLogConfig(server.URL), logging.NewNop())
	if err != nil {
		t.Fatalf("init betterstack logger: %v", err)
	}

	logger.InfoContext(context.Background(), "schedule imported", "season_id", 30)
	drain(t, shutdown)

	sink.mu.Lock()
	defer sink.mu.Unlock()
	if sink.requests != 0 {
		t.Fatalf("expected no request for info log, got %d", sink.requests)
	}
}

func TestInitBetterStackLogger_Disabled(t *testing.T) {
	t.Parallel()

	base := logging.NewNop()
	logger, shutdown, err := InitBetterStackLogger(config.Config{}, base)
	if err != nil {
		t.Fatalf("init betterstack logger: %v", err)
	}
	if logger != base {
		t.Fatalf("disabled shipping must return the base logger")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestWriteBatch(t *testing.T) {
	t.Parallel()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writeBatch(buf, [][]byte{[]byte(`{"msg":"a"}`), []byte(`{"msg":"b"}`)})
	if got := buf.String(); got != `[{"msg":"a"},{"msg":"b"}]` {
		t.Fatalf("unexpected batch body: %s", got)
	}
}

func TestNormalizeBetterStackEndpoint(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":                            "",
		"  in.logs.betterstack.com  ": "https://in.logs.betterstack.com",
		"http://localhost:9000":       "http://localhost:9000",
	}
	for raw, want := range cases {
		if got := normalizeBetterStackEndpoint(raw); got != want {
			t.Fatalf("normalize(%q) = %q, want %q", raw, got, want)
		}
	}
}
