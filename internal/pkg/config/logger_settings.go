package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Log level constants
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// LoggerSettings configures the application logger. The rotation fields are
// read by the file logger only.
type LoggerSettings struct {
	LogLevel   string `yaml:"log_level" env:"LOG_LEVEL" validate:"required,oneof=info debug error warning critical"`
	LogType    string `yaml:"log_type" env:"LOG_TYPE" validate:"required,oneof=console file"`
	FilePath   string `yaml:"file_path" env:"LOG_FILE_PATH"`
	MaxSize    int    `yaml:"max_size" env:"LOG_MAX_SIZE"`
	MaxBackups int    `yaml:"max_backups" env:"LOG_MAX_BACKUPS"`
	MaxAge     int    `yaml:"max_age" env:"LOG_MAX_AGE"`
}

// Validate checks the settings. Rotation bounds only apply to the file logger.
func (s *LoggerSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}
	if s.LogType != LogTypeFile {
		return nil
	}
	if s.FilePath == "" {
		return fmt.Errorf("file path is required for file logger")
	}

	bounds := []struct {
		name     string
		value    int
		min, max int
		unit     string
	}{
		{"max size", s.MaxSize, 1, 100, " MB"},
		{"max backups", s.MaxBackups, 1, 10, ""},
		{"max age", s.MaxAge, 1, 365, " days"},
	}
	for _, b := range bounds {
		if b.value < b.min || b.value > b.max {
			return fmt.Errorf("%s must be between %d and %d%s", b.name, b.min, b.max, b.unit)
		}
	}
	return nil
}
