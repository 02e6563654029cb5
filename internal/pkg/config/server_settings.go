package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ServerSettings holds the HTTP listener and CORS configuration.
type ServerSettings struct {
	Port         string   `yaml:"port" env:"PORT" validate:"required,numeric"`
	AllowOrigins []string `yaml:"allow_origins" env:"ALLOW_ORIGINS" envSeparator:","`
	OpenAPIPath  string   `yaml:"openapi_path" env:"OPENAPI_PATH"`
}

// Validate checks that all fields in ServerSettings are valid
func (s *ServerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for ServerSettings: %w", err)
	}

	return nil
}
