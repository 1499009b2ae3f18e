package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/pkgbridge/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the host process.
	ServiceName string
	// ServiceVersion is the host version.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the export interval for periodic readers.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on host exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the instruments recorded per provider invocation.
type Metrics struct {
	invocationTotal    metric.Int64Counter
	invocationDuration metric.Float64Histogram
	invocationActive   metric.Int64UpDownCounter
	itemTotal          metric.Int64Counter
	errorTotal         metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	invocationTotal, err := meter.Int64Counter("invocation.total",
		metric.WithDescription("Total number of provider invocations"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating invocation.total counter: %w", err)
	}

	invocationDuration, err := meter.Float64Histogram("invocation.duration",
		metric.WithDescription("Duration of provider invocations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating invocation.duration histogram: %w", err)
	}

	invocationActive, err := meter.Int64UpDownCounter("invocation.active",
		metric.WithDescription("Number of currently running provider invocations"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating invocation.active gauge: %w", err)
	}

	itemTotal, err := meter.Int64Counter("item.total",
		metric.WithDescription("Total result items emitted by providers"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating item.total counter: %w", err)
	}

	errorTotal, err := meter.Int64Counter("error.total",
		metric.WithDescription("Total errors by operation and provider"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating error.total counter: %w", err)
	}

	return &Metrics{
		invocationTotal:    invocationTotal,
		invocationDuration: invocationDuration,
		invocationActive:   invocationActive,
		itemTotal:          itemTotal,
		errorTotal:         errorTotal,
	}, nil
}

// RecordInvocationStart increments the active invocation count.
func (m *Metrics) RecordInvocationStart(ctx context.Context) {
	m.invocationActive.Add(ctx, 1)
}

// RecordInvocation records a completed provider invocation.
func (m *Metrics) RecordInvocation(ctx context.Context, provider, operation, status string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
	m.invocationActive.Add(ctx, -1)
	m.invocationTotal.Add(ctx, 1, attrs)
	m.invocationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("operation", operation),
	))
}

// RecordItems records result items emitted during an invocation.
func (m *Metrics) RecordItems(ctx context.Context, provider, operation string, count int64) {
	if count == 0 {
		return
	}
	m.itemTotal.Add(ctx, count, metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("operation", operation),
	))
}

// RecordError records an error by operation and provider.
func (m *Metrics) RecordError(ctx context.Context, operation, provider string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("provider", provider),
	))
}
