package observability

import (
	"context"
	"errors"
	"sync"
	"testing"

	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/embedded"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type recordingOTelLogger struct {
	embedded.Logger

	mu      sync.Mutex
	records []otellog.Record
}

func (l *recordingOTelLogger) Emit(_ context.Context, record otellog.Record) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, record)
}

func (l *recordingOTelLogger) Enabled(context.Context, otellog.EnabledParameters) bool {
	return true
}

func recordAttrs(record otellog.Record) map[string]otellog.Value {
	out := make(map[string]otellog.Value, record.AttributesLen())
	record.WalkAttributes(func(kv otellog.KeyValue) bool {
		out[kv.Key] = kv.Value
		return true
	})
	return out
}

func TestOTelLogCore_EmitsRecordWithFields(t *testing.T) {
	sink := &recordingOTelLogger{}
	logger := zap.New(newOTelLogCore(sink, zapcore.InfoLevel)).
		Named("weather").
		With(zap.String("component", "forecast"))

	logger.Debug("dropped below level")
	logger.Warn("forecast refresh failed",
		zap.Int("attempt", 2),
		zap.Error(errors.New("upstream 503")),
	)

	if len(sink.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(sink.records))
	}
	record := sink.records[0]
	if record.Severity() != otellog.SeverityWarn {
		t.Fatalf("unexpected severity %v", record.Severity())
	}
	if record.Body().AsString() != "forecast refresh failed" {
		t.Fatalf("unexpected body %q", record.Body().AsString())
	}

	attrs := recordAttrs(record)
	if attrs["component"].AsString() != "forecast" {
		t.Fatalf("expected component attribute, got %v", attrs["component"])
	}
	if attrs["attempt"].AsInt64() != 2 {
		t.Fatalf("expected attempt attribute, got %v", attrs["attempt"])
	}
	if attrs["error"].AsString() != "upstream 503" {
		t.Fatalf("expected error attribute, got %v", attrs["error"])
	}
	if attrs["logger"].AsString() != "weather" {
		t.Fatalf("expected logger attribute, got %v", attrs["logger"])
	}
}

func TestBuildOTelLogAttributes_SortedKeys(t *testing.T) {
	attrs := buildOTelLogAttributes(map[string]any{
		"week_id":  int64(42),
		"division": "Sunday D1",
		"payload":  nil,
	})
	if len(attrs) != 3 {
		t.Fatalf("expected 3 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "division" || attrs[0].Value.AsString() != "Sunday D1" {
		t.Fatalf("unexpected first attribute %v", attrs[0])
	}
	if attrs[1].Key != "payload" || attrs[1].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("unexpected payload attribute %v", attrs[1])
	}
	if attrs[2].Key != "week_id" || attrs[2].Value.AsInt64() != 42 {
		t.Fatalf("unexpected week_id attribute %v", attrs[2])
	}
}

func TestToOTelLogValue_Map(t *testing.T) {
	v := toOTelLogValue(map[string]any{
		"goals":   3,
		"assists": 1,
	}, 0)
	if v.Kind() != otellog.KindMap {
		t.Fatalf("expected map value, got %s", v.Kind())
	}
	if items := v.AsMap(); len(items) != 2 {
		t.Fatalf("expected 2 map items, got %d", len(items))
	}
}
