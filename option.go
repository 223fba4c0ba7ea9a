package paraid

import (
	"github.com/google/uuid"
	"github.com/viant/afs"
	"github.com/viant/paraid/project"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option represents a service option
type Option func(s *Service)

// WithConfig replaces the service configuration
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			s.config = config
		}
	}
}

// WithProjectURL sets the project file location
func WithProjectURL(URL string) Option {
	return func(s *Service) {
		s.config.ProjectURL = URL
	}
}

// WithFS sets the file system used to read the project file
func WithFS(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithProject supplies an already loaded project; the project file is not read.
func WithProject(p *project.Project) Option {
	return func(s *Service) {
		s.project = p
	}
}

// WithNamespace supplies the namespace directly; the project file is not read.
func WithNamespace(namespace uuid.UUID) Option {
	return func(s *Service) {
		s.project = &project.Project{ID: namespace}
	}
}

// WithTracing configures OpenTelemetry tracing with the stdout exporter. If
// outputFile is empty traces go to stdout.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		s.config.Tracing = TracingConfig{
			Enabled:        true,
			ServiceName:    serviceName,
			ServiceVersion: serviceVersion,
			OutputFile:     outputFile,
		}
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom
// SpanExporter. The exporter is installed by New once the configuration
// has been validated.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		s.config.Tracing.Enabled = true
		s.config.Tracing.ServiceName = serviceName
		s.config.Tracing.ServiceVersion = serviceVersion
		s.exporter = exporter
	}
}
