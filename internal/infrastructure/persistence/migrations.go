package persistence

import (
	"fmt"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/accounts"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/protection"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/tasks"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/tenancy"

	"gorm.io/gorm"
)

// HostModels live only in the default database.
func HostModels() []any {
	return []any{&tenancy.Tenant{}, &protection.ProtectionKey{}}
}

// TenantModels live in every database that holds tenant data.
func TenantModels() []any {
	return []any{&accounts.User{}, &accounts.UserToken{}, &tasks.Task{}}
}

// MigrateHost migrates the default database.
func MigrateHost(db *gorm.DB) error {
	if err := db.AutoMigrate(append(HostModels(), TenantModels()...)...); err != nil {
		return fmt.Errorf("failed to migrate host schema: %w", err)
	}
	return nil
}

// MigrateTenant migrates a separate tenant database.
func MigrateTenant(db *gorm.DB) error {
	if err := db.AutoMigrate(TenantModels()...); err != nil {
		return fmt.Errorf("failed to migrate tenant schema: %w", err)
	}
	return nil
}
