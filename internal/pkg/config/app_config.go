package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable override.
const EnvPrefix = "DNT_"

// AppConfig is the root configuration of the API and CLI applications.
type AppConfig struct {
	Server       ServerSettings       `yaml:"server"`
	Logger       LoggerSettings       `yaml:"logger"`
	Database     DatabaseSettings     `yaml:"database"`
	MultiTenancy MultiTenancySettings `yaml:"multi_tenancy"`
	Jwt          JwtSettings          `yaml:"jwt"`
	Transaction  TransactionSettings  `yaml:"transaction"`
	Tracing      TracingSettings      `yaml:"tracing"`
}

// Validate checks every section of the configuration.
func (c *AppConfig) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.MultiTenancy.Validate(); err != nil {
		return err
	}
	if err := c.Jwt.Validate(); err != nil {
		return err
	}
	if err := c.Transaction.Validate(); err != nil {
		return err
	}
	if err := c.Tracing.Validate(); err != nil {
		return err
	}
	return nil
}

// InitializeConfig reads the YAML file at path, applies DNT_ environment
// overrides and validates the result.
func InitializeConfig(path string) (*AppConfig, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// LoadConfig reads and overrides the configuration without validating it.
func LoadConfig(path string) (*AppConfig, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("failed to parse environment overrides: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns the values used for anything the file leaves out.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerSettings{
			Port:         "8080",
			AllowOrigins: []string{"*"},
			OpenAPIPath:  "./api/openapi/v1/dnt.yaml",
		},
		Logger: LoggerSettings{
			LogLevel: LogLevelInfo,
			LogType:  LogTypeConsole,
		},
		Database: DatabaseSettings{
			Type: SqliteDbType,
			DSN:  ":memory:",
		},
		MultiTenancy: MultiTenancySettings{
			TenantHeader: "X-Tenant",
		},
		Jwt: JwtSettings{
			SigningMethod:  "HS256",
			Issuer:         "dnt",
			AccessTokenTTL: 30 * time.Minute,
		},
		Transaction: TransactionSettings{
			IsolationLevel: IsolationDefault,
		},
		Tracing: TracingSettings{
			ServiceName: "dnt-api",
		},
	}
}
