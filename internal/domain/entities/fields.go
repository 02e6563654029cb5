package entities

import "time"

// Entity is the base of every persisted entity.
type Entity struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`
}

// GetID returns the primary key.
func (e *Entity) GetID() int64 {
	return e.ID
}

// CreationFields implements CreationTracking.
type CreationFields struct {
	CreatedDateTime    time.Time `gorm:"not null" json:"createdDateTime"`
	CreatorUserID      *int64    `json:"creatorUserId,omitempty"`
	CreatorIP          string    `gorm:"type:varchar(256)" json:"-"`
	CreatorBrowserName string    `gorm:"type:varchar(1024)" json:"-"`
}

// SetCreationTracking stamps the creation audit fields.
func (f *CreationFields) SetCreationTracking(at time.Time, userID *int64, ip, browserName string) {
	f.CreatedDateTime = at
	f.CreatorUserID = userID
	f.CreatorIP = ip
	f.CreatorBrowserName = browserName
}

// ModificationFields implements ModificationTracking.
type ModificationFields struct {
	ModifiedDateTime    *time.Time `json:"modifiedDateTime,omitempty"`
	ModifierUserID      *int64     `json:"modifierUserId,omitempty"`
	ModifierIP          string     `gorm:"type:varchar(256)" json:"-"`
	ModifierBrowserName string     `gorm:"type:varchar(1024)" json:"-"`
}

// SetModificationTracking stamps the modification audit fields.
func (f *ModificationFields) SetModificationTracking(at time.Time, userID *int64, ip, browserName string) {
	f.ModifiedDateTime = &at
	f.ModifierUserID = userID
	f.ModifierIP = ip
	f.ModifierBrowserName = browserName
}

// SoftDeleteFields implements SoftDeletable.
type SoftDeleteFields struct {
	IsDeleted bool `gorm:"not null;default:false;index" json:"-"`
}

// MarkDeleted flags the entity as deleted.
func (f *SoftDeleteFields) MarkDeleted() {
	f.IsDeleted = true
}

// Deleted reports whether the entity is flagged as deleted.
func (f *SoftDeleteFields) Deleted() bool {
	return f.IsDeleted
}

// RowVersionFields implements RowVersioned.
type RowVersionFields struct {
	Version int64 `gorm:"not null" json:"version"`
}

// RowVersion returns the concurrency token.
func (f *RowVersionFields) RowVersion() int64 {
	return f.Version
}

// SetRowVersion replaces the concurrency token.
func (f *RowVersionFields) SetRowVersion(version int64) {
	f.Version = version
}

// RowLevelSecurityFields implements RowLevelSecured.
type RowLevelSecurityFields struct {
	UserID int64 `gorm:"not null;index" json:"userId"`
}

// SetOwnerUserID sets the owning user.
func (f *RowLevelSecurityFields) SetOwnerUserID(userID int64) {
	f.UserID = userID
}

// OwnerUserID returns the owning user.
func (f *RowLevelSecurityFields) OwnerUserID() int64 {
	return f.UserID
}

// TenantFields implements TenantOwned.
type TenantFields struct {
	TenantID int64 `gorm:"not null;index" json:"tenantId"`
}

// SetTenantID sets the owning tenant.
func (f *TenantFields) SetTenantID(tenantID int64) {
	f.TenantID = tenantID
}

// GetTenantID returns the owning tenant.
func (f *TenantFields) GetTenantID() int64 {
	return f.TenantID
}

// BranchFields implements BranchOwned.
type BranchFields struct {
	BranchID int64 `gorm:"not null;index" json:"branchId"`
}

// SetBranchID sets the owning branch.
func (f *BranchFields) SetBranchID(branchID int64) {
	f.BranchID = branchID
}

// GetBranchID returns the owning branch.
func (f *BranchFields) GetBranchID() int64 {
	return f.BranchID
}

// TrackableEntity is an entity with creation and modification audit fields.
type TrackableEntity struct {
	Entity
	CreationFields
	ModificationFields
}
