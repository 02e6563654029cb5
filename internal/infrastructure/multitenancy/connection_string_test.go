//go:build unit
// +build unit

package multitenancy

import (
	"context"
	"testing"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/tenancy"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/config"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTenantConnectionString(t *testing.T) {
	withTenant := tenancy.WithTenant(context.Background(), &tenancy.Tenant{Name: "acme", ConnectionString: "tenant-dsn"})
	withBlankTenant := tenancy.WithTenant(context.Background(), &tenancy.Tenant{Name: "blank"})

	tests := []struct {
		name     string
		ctx      context.Context
		settings config.MultiTenancySettings
		fallback string
		want     string
		wantErr  bool
	}{
		{
			name:     "tenancy disabled",
			ctx:      withTenant,
			settings: config.MultiTenancySettings{Enabled: false, DatabaseStrategy: validators.StrategySeparateDatabase},
			fallback: "default-dsn",
			want:     "default-dsn",
		},
		{
			name:     "single database",
			ctx:      withTenant,
			settings: config.MultiTenancySettings{Enabled: true, DatabaseStrategy: validators.StrategySingleDatabase},
			fallback: "default-dsn",
			want:     "default-dsn",
		},
		{
			name:     "separate database with tenant",
			ctx:      withTenant,
			settings: config.MultiTenancySettings{Enabled: true, DatabaseStrategy: validators.StrategySeparateDatabase},
			fallback: "default-dsn",
			want:     "tenant-dsn",
		},
		{
			name:     "hybrid with tenant",
			ctx:      withTenant,
			settings: config.MultiTenancySettings{Enabled: true, DatabaseStrategy: validators.StrategyHybrid},
			fallback: "default-dsn",
			want:     "tenant-dsn",
		},
		{
			name:     "separate database without tenant",
			ctx:      context.Background(),
			settings: config.MultiTenancySettings{Enabled: true, DatabaseStrategy: validators.StrategySeparateDatabase},
			fallback: "default-dsn",
			want:     "default-dsn",
		},
		{
			name:     "tenant without connection string",
			ctx:      withBlankTenant,
			settings: config.MultiTenancySettings{Enabled: true, DatabaseStrategy: validators.StrategyHybrid},
			fallback: "default-dsn",
			wantErr:  true,
		},
		{
			name:     "no default connection",
			ctx:      context.Background(),
			settings: config.MultiTenancySettings{},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadTenantConnectionString(tt.ctx, tt.settings, tt.fallback)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMissingDefaultConnection)
				assert.Equal(t, "please set the default connection in the configuration file", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
