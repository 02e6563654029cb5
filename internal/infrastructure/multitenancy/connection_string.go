package multitenancy

import (
	"context"
	"errors"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/tenancy"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/config"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/validators"
)

// ErrMissingDefaultConnection is returned when no connection string could be resolved.
var ErrMissingDefaultConnection = errors.New("please set the default connection in the configuration file")

// ReadTenantConnectionString returns the tenant's connection string when
// multi-tenancy is enabled with a per-tenant database strategy and ctx
// carries a tenant; otherwise defaultConnection.
func ReadTenantConnectionString(ctx context.Context, settings config.MultiTenancySettings, defaultConnection string) (string, error) {
	connectionString := defaultConnection

	if settings.Enabled && settings.DatabaseStrategy != validators.StrategySingleDatabase {
		if tenant := tenancy.FromContext(ctx); tenant != nil {
			connectionString = tenant.ConnectionString
		}
	}

	if connectionString == "" {
		return "", ErrMissingDefaultConnection
	}
	return connectionString, nil
}
