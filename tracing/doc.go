// Package tracing wraps OpenTelemetry so that project loading can be traced
// without callers importing the SDK. Spans are no-ops until Init or
// InitWithExporter installs a provider; Shutdown flushes and removes it so a
// later Init can install another.
package tracing
