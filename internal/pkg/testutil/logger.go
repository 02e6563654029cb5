package testutil

import (
	"testing"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/config"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/logger"
)

// SetupTestLogger returns a console logger that only reports warnings and
// errors. It bypasses the process-wide singleton so tests stay independent.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	return logger.NewConsoleLogger(config.LogLevelWarning)
}
