//go:build unit
// +build unit

package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fullEntity struct {
	TrackableEntity
	SoftDeleteFields
	RowVersionFields
	RowLevelSecurityFields
	TenantFields
	BranchFields
	Title string
}

func TestFullEntity_ImplementsCapabilities(t *testing.T) {
	var e interface{} = &fullEntity{}

	_, ok := e.(Identifiable)
	assert.True(t, ok)
	_, ok = e.(CreationTracking)
	assert.True(t, ok)
	_, ok = e.(ModificationTracking)
	assert.True(t, ok)
	_, ok = e.(SoftDeletable)
	assert.True(t, ok)
	_, ok = e.(RowVersioned)
	assert.True(t, ok)
	_, ok = e.(RowLevelSecured)
	assert.True(t, ok)
	_, ok = e.(TenantOwned)
	assert.True(t, ok)
	_, ok = e.(BranchOwned)
	assert.True(t, ok)
}

func TestValueEntity_DoesNotImplementSetters(t *testing.T) {
	var e interface{} = fullEntity{}

	_, ok := e.(SoftDeletable)
	assert.False(t, ok, "setters live on pointer receivers")
}

func TestTrackingSetters(t *testing.T) {
	e := &fullEntity{}
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	userID := int64(12)

	e.SetCreationTracking(now, &userID, "127.0.0.1", "firefox")
	e.SetModificationTracking(now.Add(time.Hour), nil, "10.0.0.1", "chrome")

	assert.Equal(t, now, e.CreatedDateTime)
	assert.Equal(t, &userID, e.CreatorUserID)
	assert.Equal(t, "firefox", e.CreatorBrowserName)
	require.NotNil(t, e.ModifiedDateTime)
	assert.Equal(t, now.Add(time.Hour), *e.ModifiedDateTime)
	assert.Nil(t, e.ModifierUserID)
	assert.Equal(t, "10.0.0.1", e.ModifierIP)
}

func TestOwnershipSetters(t *testing.T) {
	e := &fullEntity{}

	e.MarkDeleted()
	e.SetRowVersion(3)
	e.SetOwnerUserID(4)
	e.SetTenantID(5)
	e.SetBranchID(6)

	assert.True(t, e.Deleted())
	assert.Equal(t, int64(3), e.RowVersion())
	assert.Equal(t, int64(4), e.OwnerUserID())
	assert.Equal(t, int64(5), e.GetTenantID())
	assert.Equal(t, int64(6), e.GetBranchID())
}
