package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/street-hockey-league/internal/platform/logging"
)

func TestService_AddJobValidatesInput(t *testing.T) {
	t.Parallel()

	svc, err := New(logging.NewNop(), time.Second)
	if err != nil {
		t.Fatalf("new scheduler: %v", err)
	}
	svc.Start()
	t.Cleanup(func() { _ = svc.Stop() })

	noop := func(context.Context) error { return nil }
	if _, err := svc.AddJob("", "* * * * *", noop); !errors.Is(err, ErrEmptyJobName) {
		t.Fatalf("expected ErrEmptyJobName, got %v", err)
	}
	if _, err := svc.AddJob("weather-refresh", " ", noop); !errors.Is(err, ErrEmptyCronExpr) {
		t.Fatalf("expected ErrEmptyCronExpr, got %v", err)
	}
	if _, err := svc.AddJob("weather-refresh", "* * * * *", nil); !errors.Is(err, ErrNilTask) {
		t.Fatalf("expected ErrNilTask, got %v", err)
	}
	if _, err := svc.AddJob("weather-refresh", "not a cron", noop); err == nil {
		t.Fatalf("expected invalid cron error")
	}
	if _, err := svc.AddJob("weather-refresh", "*/30 * * * *", noop); err != nil {
		t.Fatalf("add job: %v", err)
	}
}

func TestService_RunAppliesTimeoutAndCancelOnStop(t *testing.T) {
	t.Parallel()

	svc, err := New(logging.NewNop(), 10*time.Millisecond)
	if err != nil {
		t.Fatalf("new scheduler: %v", err)
	}

	var deadlineSet bool
	svc.run(logging.NewNop(), func(ctx context.Context) error {
		_, deadlineSet = ctx.Deadline()
		return nil
	})
	if !deadlineSet {
		t.Fatalf("expected job context to carry a deadline")
	}

	svc.Start()
	if err := svc.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if svc.baseCtx.Err() == nil {
		t.Fatalf("expected base context cancelled after stop")
	}
	if err := svc.Stop(); err != nil {
		t.Fatalf("second stop should be a no-op, got %v", err)
	}
}
