package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// TracingSettings configures the OpenTelemetry trace exporter.
// Tracing stays off while Endpoint is empty.
type TracingSettings struct {
	Enabled     bool   `yaml:"enabled" env:"OTEL_ENABLED"`
	Endpoint    string `yaml:"endpoint" env:"OTEL_ENDPOINT" validate:"omitempty,url"`
	ServiceName string `yaml:"service_name" env:"OTEL_SERVICE_NAME"`
}

// Validate checks that all fields in TracingSettings are valid
func (s *TracingSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for TracingSettings: %w", err)
	}

	return nil
}
