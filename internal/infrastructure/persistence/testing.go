//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/entities"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/persistence/hooks"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/config"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/identity"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/session"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testArticle exercises every capability the default hooks know about.
type testArticle struct {
	entities.TrackableEntity
	entities.SoftDeleteFields
	entities.RowVersionFields
	entities.TenantFields
	Title string
}

// testComment is hard deleted.
type testComment struct {
	entities.Entity
	Body string
}

var testNow = time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC)

// TestContext holds the database and unit of work of a test
type TestContext struct {
	DB     *gorm.DB
	Engine *hooks.Engine
	UoW    *UnitOfWork
}

// SetupTestUnitOfWork migrates the test entities into a private database and
// wires a unit of work with the default hooks.
func SetupTestUnitOfWork(t *testing.T, txSettings config.TransactionSettings) *TestContext {
	t.Helper()

	db := testutil.SetupTestDB(t, &testArticle{}, &testComment{})
	log := testutil.SetupTestLogger(t)

	engine := hooks.NewEngine(log)
	hooks.RegisterDefaultHooks(engine, func() time.Time { return testNow })

	uow, err := NewUnitOfWork(db, engine, txSettings, log)
	require.NoError(t, err)

	return &TestContext{DB: db, Engine: engine, UoW: uow}
}

// TenantContext returns a context with an authenticated user of tenant.
func TenantContext(userID, tenantID string) context.Context {
	id := identity.New("Bearer",
		identity.Claim{Type: identity.ClaimUserID, Value: userID},
		identity.Claim{Type: identity.ClaimTenantID, Value: tenantID},
	)
	return session.WithSession(context.Background(), session.New(id, session.RequestInfo{IP: "127.0.0.1"}))
}
