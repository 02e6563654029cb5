//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerSettings_Validate(t *testing.T) {
	rotated := func(mutate func(*LoggerSettings)) LoggerSettings {
		s := LoggerSettings{
			LogLevel:   LogLevelWarning,
			LogType:    LogTypeFile,
			FilePath:   "/var/log/dnt/api.log",
			MaxSize:    50,
			MaxBackups: 5,
			MaxAge:     30,
		}
		if mutate != nil {
			mutate(&s)
		}
		return s
	}

	tests := []struct {
		name    string
		s       LoggerSettings
		wantErr string
	}{
		{name: "console", s: LoggerSettings{LogLevel: LogLevelDebug, LogType: LogTypeConsole}},
		{name: "rotated file", s: rotated(nil)},
		{name: "level required", s: LoggerSettings{LogType: LogTypeConsole}, wantErr: "LogLevel"},
		{name: "unknown level", s: LoggerSettings{LogLevel: "trace", LogType: LogTypeConsole}, wantErr: "LogLevel"},
		{name: "unknown type", s: LoggerSettings{LogLevel: LogLevelInfo, LogType: "syslog"}, wantErr: "LogType"},
		{name: "file needs path", s: rotated(func(s *LoggerSettings) { s.FilePath = "" }), wantErr: "file path"},
		{name: "size upper bound", s: rotated(func(s *LoggerSettings) { s.MaxSize = 101 }), wantErr: "max size"},
		{name: "backups lower bound", s: rotated(func(s *LoggerSettings) { s.MaxBackups = 0 }), wantErr: "max backups"},
		{name: "age upper bound", s: rotated(func(s *LoggerSettings) { s.MaxAge = 366 }), wantErr: "max age"},
		{name: "console ignores rotation", s: LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeConsole, MaxSize: 1000}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoggerSettings_EnvironmentOverride(t *testing.T) {
	t.Setenv("DNT_LOG_LEVEL", LogLevelError)
	t.Setenv("DNT_LOG_TYPE", LogTypeConsole)

	cfg, err := LoadConfig(writeConfig(t, "logger:\n  log_level: debug\n"))
	require.NoError(t, err)

	assert.Equal(t, LogLevelError, cfg.Logger.LogLevel)
	assert.NoError(t, cfg.Logger.Validate())
}
