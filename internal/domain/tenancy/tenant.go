// Package tenancy holds the tenant model and the request scoped tenant.
package tenancy

import (
	"context"
	"errors"
	"fmt"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/entities"
	"github.com/go-playground/validator/v10"
)

// ErrTenantNotFound is returned when no tenant matches a lookup.
var ErrTenantNotFound = errors.New("tenant not found")

// Tenant is a customer isolated from the others.
// ConnectionString is empty for tenants living in the default database.
type Tenant struct {
	entities.Entity
	entities.CreationFields
	Name             string `gorm:"type:varchar(64);uniqueIndex;not null" json:"name" validate:"required,max=64"`
	ConnectionString string `gorm:"type:text" json:"-"`
	IsActive         bool   `gorm:"not null;default:true" json:"isActive"`
}

// Validate for validating Tenant struct
func (t *Tenant) Validate() error {
	if err := validator.New().Struct(t); err != nil {
		return fmt.Errorf("validation failed for Tenant: %w", err)
	}
	return nil
}

// TenantRepository stores tenants. Connection strings are returned in clear text.
type TenantRepository interface {
	Create(ctx context.Context, tenant *Tenant) error
	GetByID(ctx context.Context, id int64) (*Tenant, error)
	GetByName(ctx context.Context, name string) (*Tenant, error)
	List(ctx context.Context) ([]*Tenant, error)
}

type tenantContextKey struct{}

// WithTenant attaches the tenant of the current request to ctx.
func WithTenant(ctx context.Context, tenant *Tenant) context.Context {
	return context.WithValue(ctx, tenantContextKey{}, tenant)
}

// FromContext returns the tenant attached to ctx, or nil.
func FromContext(ctx context.Context) *Tenant {
	if ctx == nil {
		return nil
	}
	tenant, _ := ctx.Value(tenantContextKey{}).(*Tenant)
	return tenant
}
