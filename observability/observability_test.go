package observability

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("pkgbridge-host")

	if cfg.ServiceName != "pkgbridge-host" {
		t.Errorf("expected ServiceName 'pkgbridge-host', got %s", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected Endpoint 'localhost:4318', got %s", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
	if !cfg.Insecure {
		t.Error("expected Insecure to be true")
	}
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("pkgbridge-host")

	if cfg.ServiceName != "pkgbridge-host" {
		t.Errorf("expected ServiceName 'pkgbridge-host', got %s", cfg.ServiceName)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected Interval 15s, got %v", cfg.Interval)
	}
}

func TestNewMetrics(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	metrics, err := NewMetrics(meter)
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}
	if metrics == nil {
		t.Fatal("expected non-nil metrics")
	}

	ctx := context.Background()
	metrics.RecordInvocationStart(ctx)
	metrics.RecordInvocation(ctx, "nuget", "FindPackage", "ok", 100*time.Millisecond)
	metrics.RecordItems(ctx, "nuget", "FindPackage", 3)
	metrics.RecordItems(ctx, "nuget", "FindPackage", 0)
	metrics.RecordError(ctx, "InstallPackage", "nuget")
}

func TestStartSpanRecordsAttributes(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	defer tp.Shutdown(context.Background())

	ctx, span := StartSpan(context.Background(), "adapter.FindPackage")
	SetSpanAttribute(ctx, AttrProviderName, "nuget")
	SetSpanAttribute(ctx, AttrItemCount, 7)
	SetSpanAttribute(ctx, AttrStatus, "ok")
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Name != "adapter.FindPackage" {
		t.Errorf("expected span name 'adapter.FindPackage', got %q", spans[0].Name)
	}
}

func TestSetSpanErrorOnRecordingSpan(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	defer tp.Shutdown(context.Background())

	ctx, span := StartSpan(context.Background(), "adapter.InstallPackage")
	SetSpanError(ctx, context.DeadlineExceeded)
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if len(spans[0].Events) == 0 {
		t.Error("expected an error event on the span")
	}
}
