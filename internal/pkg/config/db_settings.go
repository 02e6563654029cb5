package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Database type constants
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// DatabaseSettings holds the default connection of the application.
// DSN is the "DefaultConnection"; tenant databases override it at runtime.
type DatabaseSettings struct {
	Type   string `yaml:"type" env:"DB_TYPE" validate:"required,oneof=postgres sqlite"`
	DSN    string `yaml:"dsn" env:"DB_DSN" validate:"required"`
	DBName string `yaml:"db_name" env:"DB_NAME"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	if s.Type == PostgresDbType && s.DBName == "" {
		return fmt.Errorf("db name is required for postgres")
	}

	return nil
}
