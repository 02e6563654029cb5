package persistence

import (
	"context"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/session"
	"gorm.io/gorm"
)

// NotDeleted hides soft deleted rows.
func NotDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}

// ForTenant restricts rows to a tenant.
func ForTenant(tenantID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tenant_id = ?", tenantID)
	}
}

// ForBranch restricts rows to a branch.
func ForBranch(branchID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("branch_id = ?", branchID)
	}
}

// ForUser restricts rows to their owning user.
func ForUser(userID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// ForSession applies the tenant and user filters of the session in ctx.
// Callers pick which filters apply to their entity.
func ForSession(ctx context.Context, tenant, user bool) func(*gorm.DB) *gorm.DB {
	s := session.FromContext(ctx)
	return func(db *gorm.DB) *gorm.DB {
		if tenant {
			if id := s.TenantID(); id != nil {
				db = db.Scopes(ForTenant(*id))
			}
		}
		if user {
			id := s.UserID()
			if id == nil {
				// No user, no rows.
				return db.Where("1 = 0")
			}
			db = db.Scopes(ForUser(*id))
		}
		return db
	}
}
