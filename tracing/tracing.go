package tracing

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "github.com/viant/paraid"

// ErrInitialized is returned when a provider is already installed.
var ErrInitialized = errors.New("tracing already initialised")

var (
	mux      sync.Mutex
	provider *sdktrace.TracerProvider
	output   *os.File
)

// Init installs the stdout exporter writing to outputFile, or to os.Stdout
// when outputFile is empty. The file is created only when no provider is
// installed yet.
func Init(serviceName, serviceVersion, outputFile string) error {
	mux.Lock()
	defer mux.Unlock()
	if provider != nil {
		return ErrInitialized
	}
	var f *os.File
	options := []stdouttrace.Option{stdouttrace.WithWriter(os.Stdout)}
	if outputFile != "" {
		var err error
		if f, err = os.Create(outputFile); err != nil {
			return fmt.Errorf("failed to create trace file %s: %w", outputFile, err)
		}
		options = []stdouttrace.Option{stdouttrace.WithWriter(f)}
	}
	exporter, err := stdouttrace.New(options...)
	if err == nil {
		err = install(serviceName, serviceVersion, exporter)
	}
	if err != nil {
		if f != nil {
			_ = f.Close()
		}
		return err
	}
	output = f
	return nil
}

// InitWithExporter installs the supplied exporter (OTLP, in-memory, ...).
func InitWithExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) error {
	if exporter == nil {
		return fmt.Errorf("tracing exporter was nil")
	}
	mux.Lock()
	defer mux.Unlock()
	if provider != nil {
		return ErrInitialized
	}
	return install(serviceName, serviceVersion, exporter)
}

func install(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) error {
	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
		),
	)
	if err != nil {
		return err
	}
	provider = sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)
	return nil
}

// Shutdown flushes pending spans, closes the trace file and uninstalls the
// provider. It is a no-op when tracing was never initialised.
func Shutdown(ctx context.Context) error {
	mux.Lock()
	defer mux.Unlock()
	if provider == nil {
		return nil
	}
	err := provider.Shutdown(ctx)
	if output != nil {
		if cErr := output.Close(); err == nil {
			err = cErr
		}
		output = nil
	}
	provider = nil
	otel.SetTracerProvider(noop.NewTracerProvider())
	return err
}

// Span is an internal span covering one paraid operation.
type Span struct {
	span trace.Span
}

// StartSpan starts an internal child span of any span found in ctx, tagged
// with attrs.
func StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, *Span) {
	kv := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		kv = append(kv, attribute.String(k, v))
	}
	ctx, span := otel.Tracer(tracerName).Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(kv...),
	)
	return ctx, &Span{span: span}
}

// End records err (or an OK status) and ends the span.
func (s *Span) End(err error) {
	if s == nil {
		return
	}
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	} else {
		s.span.SetStatus(codes.Ok, "")
	}
	s.span.End()
}
