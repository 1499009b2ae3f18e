// Package observability provides OpenTelemetry tracing and metrics for the
// pkgbridge host.
//
// It wires OTLP HTTP exporters for traces and metrics and exposes the
// instruments the adapter records per provider invocation: invocation
// counts, durations, emitted item counts, and errors.
package observability
