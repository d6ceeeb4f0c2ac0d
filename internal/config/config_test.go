package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/street-hockey-league/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("LEAGUE_TIMEZONE", "")
	t.Setenv("SITE_BASE_URL", "")
	t.Setenv("QSTASH_ENABLED", "")
	t.Setenv("STAFF_SESSION_TTL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LeagueTimezone != "America/New_York" {
		t.Fatalf("unexpected LeagueTimezone: %q", cfg.LeagueTimezone)
	}
	if cfg.SiteBaseURL != "https://dcstreethockey.com" {
		t.Fatalf("unexpected SiteBaseURL: %q", cfg.SiteBaseURL)
	}
	if cfg.QStashEnabled {
		t.Fatalf("expected QStash disabled by default")
	}
	if cfg.StaffSessionTTL != 12*time.Hour {
		t.Fatalf("unexpected StaffSessionTTL: %s", cfg.StaffSessionTTL)
	}
	if !cfg.WeatherCircuit.Enabled || cfg.WeatherCircuit.FailureThreshold != 5 {
		t.Fatalf("unexpected weather circuit defaults: %+v", cfg.WeatherCircuit)
	}
}

func TestLoad_SiteBaseURLTrimsTrailingSlash(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SITE_BASE_URL", "https://example.org/league/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SiteBaseURL != "https://example.org/league" {
		t.Fatalf("unexpected SiteBaseURL: %q", cfg.SiteBaseURL)
	}
}

func TestLoad_RejectsUnknownTimezone(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("LEAGUE_TIMEZONE", "Mars/Olympus_Mons")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "LEAGUE_TIMEZONE") {
		t.Fatalf("expected LEAGUE_TIMEZONE error, got %v", err)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantMsg string
	}{
		{key: "APP_LOG_LEVEL", value: "chatty", wantMsg: "parse APP_LOG_LEVEL"},
		{key: "CACHE_TTL", value: "0s", wantMsg: "CACHE_TTL must be > 0"},
		{key: "CACHE_ENABLED", value: "maybe", wantMsg: "parse CACHE_ENABLED"},
		{key: "DB_MAX_OPEN_CONNS", value: "0", wantMsg: "DB_MAX_OPEN_CONNS must be >= 1"},
		{key: "OPENWEATHERMAP_LAT", value: "north", wantMsg: "parse OPENWEATHERMAP_LAT"},
		{key: "OPENWEATHERMAP_LON", value: "200", wantMsg: "OPENWEATHERMAP_LON must be between"},
		{key: "OPENWEATHERMAP_CIRCUIT_FAILURE_COUNT", value: "0", wantMsg: "OPENWEATHERMAP_CIRCUIT_FAILURE_COUNT must be >= 1"},
		{key: "QSTASH_RETRIES", value: "-1", wantMsg: "QSTASH_RETRIES must be >= 0"},
		{key: "STAFF_SESSION_TTL", value: "forever", wantMsg: "parse STAFF_SESSION_TTL"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("expected error containing %q, got %v", tt.wantMsg, err)
			}
		})
	}
}

func TestLoad_QStashRequiresCredentialsWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("QSTASH_ENABLED", "true")
	t.Setenv("QSTASH_TOKEN", "qstash-token")
	t.Setenv("QSTASH_TARGET_BASE_URL", "https://api.dcstreethockey.com")
	t.Setenv("INTERNAL_JOB_TOKEN", "")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "INTERNAL_JOB_TOKEN") {
		t.Fatalf("expected INTERNAL_JOB_TOKEN error, got %v", err)
	}

	t.Setenv("INTERNAL_JOB_TOKEN", "job-secret")
	t.Setenv("QSTASH_SUB_NEEDED_WEBHOOK_URL", " https://hooks.example.org/goalies ")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.QStashSubNeededWebhookURL != "https://hooks.example.org/goalies" {
		t.Fatalf("unexpected webhook url: %q", cfg.QStashSubNeededWebhookURL)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_BetterStackConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("BETTERSTACK_ENABLED", "true")
	t.Setenv("BETTERSTACK_ENDPOINT", "in.logs.betterstack.com")
	t.Setenv("BETTERSTACK_TOKEN", "token-123")
	t.Setenv("BETTERSTACK_TIMEOUT", "4s")
	t.Setenv("BETTERSTACK_MIN_LEVEL", "error")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BetterStackTimeout != 4*time.Second {
		t.Fatalf("unexpected BetterStackTimeout: %s", cfg.BetterStackTimeout)
	}
	if cfg.BetterStackMinLevel != logging.LevelError {
		t.Fatalf("unexpected BetterStackMinLevel: %s", cfg.BetterStackMinLevel)
	}

	t.Setenv("BETTERSTACK_ENDPOINT", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when BETTERSTACK_ENABLED=true without BETTERSTACK_ENDPOINT")
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoadDotEnv(t *testing.T) {
	const key = "STREET_HOCKEY_DOTENV_CHECK"
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(key+"=from-file\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing file should be ignored: %v", err)
	}
	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("load env file: %v", err)
	}
	if got := os.Getenv(key); got != "from-file" {
		t.Fatalf("expected value from file, got %q", got)
	}
}
