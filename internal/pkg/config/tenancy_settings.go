package config

import (
	"fmt"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// MultiTenancySettings switches multi-tenancy on and selects how tenant data is stored.
type MultiTenancySettings struct {
	Enabled          bool   `yaml:"enabled" env:"TENANCY_ENABLED"`
	DatabaseStrategy string `yaml:"database_strategy" env:"TENANCY_DATABASE_STRATEGY" validate:"tenancystrategy"`
	TenantHeader     string `yaml:"tenant_header" env:"TENANCY_HEADER"`
}

// Validate checks that all fields in MultiTenancySettings are valid
func (s *MultiTenancySettings) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("tenancystrategy", validators.TenancyStrategyValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for MultiTenancySettings: %w", err)
	}

	return nil
}
