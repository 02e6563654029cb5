//go:build integration
// +build integration

package app

import (
	"testing"
	"time"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/accounts"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/tasks"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/auth"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/eventing"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/persistence"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/persistence/hooks"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/config"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestServices bundles the services wired against a private test database
type TestServices struct {
	DB             *gorm.DB
	UoWs           *persistence.UnitOfWorkFactory
	Tokens         *auth.TokenManager
	TaskService    tasks.TaskService
	AccountService accounts.AccountService
}

// SetupTestServices wires the application services the way the API does,
// using an in-memory SQLite database and HS256 tokens.
func SetupTestServices(t *testing.T) *TestServices {
	t.Helper()

	db := testutil.SetupTestDB(t, &tasks.Task{}, &accounts.User{}, &accounts.UserToken{})
	log := testutil.SetupTestLogger(t)

	engine := hooks.NewEngine(log)
	hooks.RegisterDefaultHooks(engine, nil)
	uows := persistence.NewUnitOfWorkFactory(persistence.StaticResolver{Database: db}, engine, config.TransactionSettings{}, log)

	registry := eventing.NewRegistry()
	RegisterTaskHandlers(registry, uows, log)
	bus := eventing.NewBus(registry, log)

	tokens, err := auth.NewTokenManager(config.JwtSettings{
		SigningMethod:  "HS256",
		Secret:         "0123456789abcdef0123456789abcdef",
		Issuer:         "dnt-test",
		AccessTokenTTL: 30 * time.Minute,
	}, nil)
	require.NoError(t, err)

	taskService, err := NewTaskService(uows, bus, log)
	require.NoError(t, err)
	accountService, err := NewAccountService(uows, tokens, log)
	require.NoError(t, err)

	return &TestServices{
		DB:             db,
		UoWs:           uows,
		Tokens:         tokens,
		TaskService:    taskService,
		AccountService: accountService,
	}
}
