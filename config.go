package paraid

import (
	"fmt"

	"github.com/viant/paraid/project"
)

// Config is a serialisable representation of the service configuration. It
// can be populated from JSON, YAML or environment variables.
type Config struct {
	ProjectURL string        `json:"project" yaml:"project"`
	Tracing    TracingConfig `json:"tracing" yaml:"tracing"`
}

// TracingConfig enables the stdout OpenTelemetry exporter.
type TracingConfig struct {
	Enabled        bool   `json:"enabled" yaml:"enabled"`
	ServiceName    string `json:"serviceName" yaml:"serviceName"`
	ServiceVersion string `json:"serviceVersion" yaml:"serviceVersion"`
	OutputFile     string `json:"outputFile" yaml:"outputFile"`
}

// DefaultConfig returns the default configuration; the project file is
// resolved relative to the working directory.
func DefaultConfig() *Config {
	return &Config{
		ProjectURL: project.DefaultLocation,
		Tracing: TracingConfig{
			ServiceName: "paraid",
		},
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.ProjectURL == "" {
		return fmt.Errorf("project URL was empty")
	}
	if c.Tracing.Enabled && c.Tracing.ServiceName == "" {
		return fmt.Errorf("tracing.serviceName must be set when tracing is enabled")
	}
	return nil
}
