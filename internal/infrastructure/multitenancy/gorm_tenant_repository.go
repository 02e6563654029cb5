package multitenancy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/protection"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/tenancy"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/logger"

	"gorm.io/gorm"
)

// ConnectionStringPurpose is the protection purpose of tenant connection strings.
const ConnectionStringPurpose = "tenancy.connection_string"

type gormTenantRepository struct {
	db        *gorm.DB
	protector protection.Protector
	logger    logger.Logger
}

// NewGormTenantRepository creates a new GORM-based TenantRepository implementation
func NewGormTenantRepository(db *gorm.DB, protector protection.Protector, logger logger.Logger) (tenancy.TenantRepository, error) {
	if protector == nil {
		return nil, fmt.Errorf("protector is required")
	}
	return &gormTenantRepository{
		db:        db,
		protector: protector,
		logger:    logger,
	}, nil
}

func (r *gormTenantRepository) Create(ctx context.Context, tenant *tenancy.Tenant) error {
	if err := tenant.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	stored := *tenant
	if stored.CreatedDateTime.IsZero() {
		stored.CreatedDateTime = time.Now().UTC()
	}
	if tenant.ConnectionString != "" {
		protected, err := r.protector.ProtectString(ctx, ConnectionStringPurpose, tenant.ConnectionString)
		if err != nil {
			return fmt.Errorf("failed to protect connection string: %w", err)
		}
		stored.ConnectionString = protected
	}

	if err := r.db.WithContext(ctx).Create(&stored).Error; err != nil {
		return fmt.Errorf("failed to create tenant: %w", err)
	}
	tenant.ID = stored.ID
	tenant.CreatedDateTime = stored.CreatedDateTime

	r.logger.Info("Created tenant ", tenant.Name)
	return nil
}

func (r *gormTenantRepository) GetByID(ctx context.Context, id int64) (*tenancy.Tenant, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *gormTenantRepository) GetByName(ctx context.Context, name string) (*tenancy.Tenant, error) {
	return r.first(ctx, "name = ?", name)
}

func (r *gormTenantRepository) first(ctx context.Context, query string, arg any) (*tenancy.Tenant, error) {
	var tenant tenancy.Tenant
	if err := r.db.WithContext(ctx).Where(query, arg).First(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("tenant %v: %w", arg, tenancy.ErrTenantNotFound)
		}
		return nil, fmt.Errorf("failed to fetch tenant: %w", err)
	}

	if err := r.reveal(ctx, &tenant); err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *gormTenantRepository) List(ctx context.Context) ([]*tenancy.Tenant, error) {
	var tenants []*tenancy.Tenant
	if err := r.db.WithContext(ctx).Order("name").Find(&tenants).Error; err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	for _, tenant := range tenants {
		if err := r.reveal(ctx, tenant); err != nil {
			return nil, err
		}
	}
	return tenants, nil
}

func (r *gormTenantRepository) reveal(ctx context.Context, tenant *tenancy.Tenant) error {
	if tenant.ConnectionString == "" {
		return nil
	}
	plain, err := r.protector.UnprotectString(ctx, ConnectionStringPurpose, tenant.ConnectionString)
	if err != nil {
		return fmt.Errorf("failed to unprotect connection string of tenant %s: %w", tenant.Name, err)
	}
	tenant.ConnectionString = plain
	return nil
}
