package observability

import (
	"context"
	"testing"

	"github.com/riskibarqy/street-hockey-league/internal/config"
	"github.com/riskibarqy/street-hockey-league/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "street-hockey-league-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	base := logging.NewNop()
	logger, shutdown, err := InitUptrace(cfg, base)
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if logger != base {
		t.Fatalf("expected base logger to be returned unchanged")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitUptrace_EmptyDSN(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: true,
		UptraceDSN:     "  ",
		ServiceName:    "street-hockey-league-api",
	}

	logger, shutdown, err := InitUptrace(cfg, nil)
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if logger == nil {
		t.Fatalf("expected a logger")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}
