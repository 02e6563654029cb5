package config

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Isolation level constants
const (
	IsolationDefault         = "default"
	IsolationReadUncommitted = "read_uncommitted"
	IsolationReadCommitted   = "read_committed"
	IsolationRepeatableRead  = "repeatable_read"
	IsolationSerializable    = "serializable"
)

// TransactionSettings configures transactions opened by the unit of work.
type TransactionSettings struct {
	Timeout        time.Duration `yaml:"timeout" env:"TX_TIMEOUT" validate:"min=0"`
	IsolationLevel string        `yaml:"isolation_level" env:"TX_ISOLATION_LEVEL" validate:"omitempty,oneof=default read_uncommitted read_committed repeatable_read serializable"`
}

// Validate checks that all fields in TransactionSettings are valid
func (s *TransactionSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for TransactionSettings: %w", err)
	}

	return nil
}

// TxOptions converts the settings into options for database/sql.
func (s *TransactionSettings) TxOptions() *sql.TxOptions {
	var level sql.IsolationLevel

	switch s.IsolationLevel {
	case IsolationReadUncommitted:
		level = sql.LevelReadUncommitted
	case IsolationReadCommitted:
		level = sql.LevelReadCommitted
	case IsolationRepeatableRead:
		level = sql.LevelRepeatableRead
	case IsolationSerializable:
		level = sql.LevelSerializable
	default:
		level = sql.LevelDefault
	}

	return &sql.TxOptions{Isolation: level}
}
