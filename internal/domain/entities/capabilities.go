package entities

import "time"

// Identifiable is implemented by entities with a numeric primary key.
type Identifiable interface {
	GetID() int64
}

// CreationTracking is implemented by entities that record who created them.
type CreationTracking interface {
	SetCreationTracking(at time.Time, userID *int64, ip, browserName string)
}

// ModificationTracking is implemented by entities that record who changed them last.
type ModificationTracking interface {
	SetModificationTracking(at time.Time, userID *int64, ip, browserName string)
}

// SoftDeletable is implemented by entities that are flagged instead of removed.
type SoftDeletable interface {
	MarkDeleted()
	Deleted() bool
}

// RowVersioned is implemented by entities that use optimistic concurrency.
type RowVersioned interface {
	RowVersion() int64
	SetRowVersion(version int64)
}

// RowLevelSecured is implemented by entities visible only to their owning user.
type RowLevelSecured interface {
	SetOwnerUserID(userID int64)
	OwnerUserID() int64
}

// TenantOwned is implemented by entities that belong to a tenant.
type TenantOwned interface {
	SetTenantID(tenantID int64)
	GetTenantID() int64
}

// BranchOwned is implemented by entities that belong to a branch of a tenant.
type BranchOwned interface {
	SetBranchID(branchID int64)
	GetBranchID() int64
}
