//go:build unit
// +build unit

package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readRecords(t *testing.T, path string) []map[string]any {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var records []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var record map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &record))
		records = append(records, record)
	}
	require.NoError(t, scanner.Err())
	return records
}

func TestFileLogger_WritesJSONRecords(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "dnt.log")
	log := NewFileLogger(config.LogLevelWarning, logPath, 10, 3, 28)

	log.Info("skipped below level")
	log.Warn("tenant ", 7, " is inactive")
	log.With("event", "tasks.TaskCreated", "kind", "domain").Error("handler failed")

	records := readRecords(t, logPath)
	require.Len(t, records, 2)

	assert.Equal(t, "WARN", records[0]["level"])
	assert.Equal(t, "tenant 7 is inactive", records[0]["msg"])

	assert.Equal(t, "ERROR", records[1]["level"])
	assert.Equal(t, "handler failed", records[1]["msg"])
	assert.Equal(t, "tasks.TaskCreated", records[1]["event"])
	assert.Equal(t, "domain", records[1]["kind"])
}
