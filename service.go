package paraid

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/paraid/identifier"
	"github.com/viant/paraid/project"
	"github.com/viant/paraid/tracing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Service derives identifiers within the namespace of a single project.
type Service struct {
	config   *Config
	fs       afs.Service
	project  *project.Project
	deriver  *identifier.Deriver
	exporter sdktrace.SpanExporter
	tracing  bool
}

func (s *Service) init(ctx context.Context, options []Option) error {
	for _, option := range options {
		option(s)
	}
	if err := s.config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := s.initTracing(); err != nil {
		return err
	}
	if s.project == nil {
		if s.fs == nil {
			s.fs = afs.New()
		}
		p, err := project.New(s.fs).Load(ctx, s.config.ProjectURL)
		if err != nil {
			s.shutdownTracing(ctx)
			return err
		}
		s.project = p
	}
	if err := s.project.Validate(); err != nil {
		s.shutdownTracing(ctx)
		return err
	}
	s.deriver = s.project.Deriver()
	return nil
}

func (s *Service) initTracing() error {
	t := s.config.Tracing
	if !t.Enabled {
		return nil
	}
	var err error
	if s.exporter != nil {
		err = tracing.InitWithExporter(t.ServiceName, t.ServiceVersion, s.exporter)
	} else {
		err = tracing.Init(t.ServiceName, t.ServiceVersion, t.OutputFile)
	}
	if err != nil {
		return fmt.Errorf("failed to init tracing: %w", err)
	}
	s.tracing = true
	return nil
}

func (s *Service) shutdownTracing(ctx context.Context) {
	if s.tracing {
		_ = tracing.Shutdown(ctx)
		s.tracing = false
	}
}

// Shutdown flushes and uninstalls tracing set up by this service.
func (s *Service) Shutdown(ctx context.Context) error {
	if !s.tracing {
		return nil
	}
	s.tracing = false
	return tracing.Shutdown(ctx)
}

// Project returns the project the service is scoped to
func (s *Service) Project() *project.Project {
	return s.project
}

// Deriver returns the underlying identifier deriver
func (s *Service) Deriver() *identifier.Deriver {
	return s.deriver
}

// WorkflowID returns the identifier of the workflow named label
func (s *Service) WorkflowID(label string) string {
	return s.deriver.WorkflowID(label)
}

// ResourceID returns the identifier of the resource named label
func (s *Service) ResourceID(label string) string {
	return s.deriver.ResourceID(label)
}

// TriggerID returns the identifier of the trigger named label
func (s *Service) TriggerID(label string) string {
	return s.deriver.TriggerID(label)
}

// Derive returns the identifier of label for category
func (s *Service) Derive(category identifier.Category, label string) (string, error) {
	return s.deriver.Derive(category, label)
}

// New creates a service, loading the project namespace unless one was
// supplied with WithProject or WithNamespace. Any problem with the namespace
// is reported here rather than on first use.
func New(ctx context.Context, options ...Option) (*Service, error) {
	ret := &Service{config: DefaultConfig()}
	if err := ret.init(ctx, options); err != nil {
		return nil, err
	}
	return ret, nil
}
