// Package commands implements the dnt-cli sub-commands.
package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/tenancy"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/cryptography"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/multitenancy"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/persistence"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/persistence/hooks"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/protection"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/config"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/identity"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/logger"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/session"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// InitCommands registers every command group with the root command.
func InitCommands(rootCmd *cobra.Command) error {
	inits := []func(*cobra.Command) error{
		InitMigrateCommands,
		InitTenantCommands,
		InitUserCommands,
		InitKeyCommands,
		InitProtectionCommands,
	}
	for _, register := range inits {
		if err := register(rootCmd); err != nil {
			return err
		}
	}
	return nil
}

// environment is the wiring shared by the commands that touch the database.
type environment struct {
	cfg         *config.AppConfig
	logger      logger.Logger
	db          *gorm.DB
	protector   *protection.Protector
	tenants     tenancy.TenantRepository
	connections *multitenancy.ConnectionRegistry
	uows        *persistence.UnitOfWorkFactory
}

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// newEnvironment loads the configuration named by --config, opens and
// migrates the default database and wires the host services.
func newEnvironment(cmd *cobra.Command) (*environment, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg, err := config.InitializeConfig(path)
	if err != nil {
		return nil, err
	}

	log, err := setupLogger()
	if err != nil {
		return nil, err
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	if err := persistence.MigrateHost(db); err != nil {
		return nil, err
	}

	aesProcessor, err := cryptography.NewAESProcessor(log)
	if err != nil {
		return nil, err
	}
	keyRepo, err := protection.NewGormRepository(db, log)
	if err != nil {
		return nil, err
	}
	protector, err := protection.NewProtector(keyRepo, aesProcessor, log)
	if err != nil {
		return nil, err
	}
	tenants, err := multitenancy.NewGormTenantRepository(db, protector, log)
	if err != nil {
		return nil, err
	}

	connections := multitenancy.NewConnectionRegistry(cfg.Database, cfg.MultiTenancy, db, log)
	engine := hooks.NewEngine(log)
	hooks.RegisterDefaultHooks(engine, nil)

	return &environment{
		cfg:         cfg,
		logger:      log,
		db:          db,
		protector:   protector,
		tenants:     tenants,
		connections: connections,
		uows:        persistence.NewUnitOfWorkFactory(connections, engine, cfg.Transaction, log),
	}, nil
}

// Close releases every database connection.
func (e *environment) Close() {
	if err := e.connections.Close(); err != nil {
		e.logger.Warn("Failed to close database connections: ", err)
	}
}

// tenantContext returns a context acting on behalf of tenant. A nil tenant
// yields a plain background context.
func tenantContext(tenant *tenancy.Tenant) context.Context {
	ctx := context.Background()
	if tenant == nil {
		return ctx
	}
	id := identity.New("Cli", identity.Claim{Type: identity.ClaimTenantID, Value: strconv.FormatInt(tenant.ID, 10)})
	ctx = session.WithSession(ctx, session.New(id, session.RequestInfo{BrowserName: "dnt-cli"}))
	return tenancy.WithTenant(ctx, tenant)
}
