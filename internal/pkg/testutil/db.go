package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SetupTestDB opens a private shared-cache in-memory SQLite database, migrates
// the given models and closes the database when the test ends.
func SetupTestDB(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(TestDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if len(models) > 0 {
		require.NoError(t, db.AutoMigrate(models...), "Failed to migrate schema")
	}

	return db
}

// TestDSN returns a DSN for a uniquely named in-memory SQLite database.
// Every connection of the pool sees the same database.
func TestDSN() string {
	name := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
}
