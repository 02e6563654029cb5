// Package protection declares the data protection contracts: a key ring
// persisted through a repository and a protector sealing data for a purpose.
package protection

import (
	"context"
	"errors"
	"time"
)

// ErrUnknownKey is returned when protected data references a key that is not
// in the key ring.
var ErrUnknownKey = errors.New("protection key not found")

// ProtectionKey is a master key of the key ring.
type ProtectionKey struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	FriendlyName string    `gorm:"type:varchar(128);uniqueIndex;not null"`
	Data         []byte    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName pins the table name.
func (ProtectionKey) TableName() string {
	return "protection_keys"
}

// Repository persists the key ring.
type Repository interface {
	GetAllElements(ctx context.Context) ([]ProtectionKey, error)
	StoreElement(ctx context.Context, key *ProtectionKey) error
}

// Protector seals and opens data for a purpose. Data protected for one
// purpose cannot be opened with another.
type Protector interface {
	Protect(ctx context.Context, purpose string, plaintext []byte) ([]byte, error)
	Unprotect(ctx context.Context, purpose string, protected []byte) ([]byte, error)
	ProtectString(ctx context.Context, purpose, plaintext string) (string, error)
	UnprotectString(ctx context.Context, purpose, protected string) (string, error)
}
