package adapter

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/pkgbridge/provider"
	"github.com/kbukum/pkgbridge/request"
	"github.com/kbukum/pkgbridge/stream"
)

// spanCapturingProvider records the span active in the context it is
// called with.
type spanCapturingProvider struct {
	provider.Unimplemented
	seen trace.SpanContext
}

func (p *spanCapturingProvider) Name() string { return "fake" }

func (p *spanCapturingProvider) FindPackage(ctx context.Context, req request.Context, name string, version provider.VersionRange, session provider.SessionID, sink provider.PackageSink) error {
	p.seen = trace.SpanFromContext(ctx).SpanContext()
	return nil
}

func TestProviderCallRunsUnderInvocationSpan(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	defer tp.Shutdown(context.Background())

	p := &spanCapturingProvider{}
	f := NewFacade(p)

	s, err := f.FindPackage(context.Background(), nil, "zlib", provider.VersionRange{}, provider.NoSession)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := stream.Collect(context.Background(), s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !p.seen.IsValid() {
		t.Fatal("expected the provider to observe a live span")
	}

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Name != "provider.find_package" {
		t.Errorf("expected span name 'provider.find_package', got %q", spans[0].Name)
	}
	if spans[0].SpanContext.SpanID() != p.seen.SpanID() {
		t.Error("expected the provider context to carry the invocation span")
	}
}
