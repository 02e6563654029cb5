// cmd/dnt-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/alirizaadiyahsi/DNTFrameworkCore/internal/api/rest/v1"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/app"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/accounts"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/tasks"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/tenancy"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/auth"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/cryptography"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/eventing"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/multitenancy"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/persistence"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/persistence/hooks"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/protection"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/config"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/logger"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/tracing"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/app.yaml"
	}

	cfg, err := config.InitializeConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	shutdownTracing, err := tracing.Setup(context.Background(), cfg.Tracing)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			log.Warn("Failed to flush traces: ", err)
		}
	}()

	deps, err := initializeDependencies(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := deps.connections.Close(); err != nil {
			log.Warn("Failed to close database connections: ", err)
		}
	}()

	return startServerWithGracefulShutdown(cfg, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	connections    *multitenancy.ConnectionRegistry
	tokens         *auth.TokenManager
	tenants        tenancy.TenantRepository
	taskService    tasks.TaskService
	accountService accounts.AccountService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.AppConfig, log logger.Logger) (*appDependencies, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.MigrateHost(db); err != nil {
		return nil, err
	}
	log.Info("Database migrations completed successfully")

	aesProcessor, err := cryptography.NewAESProcessor(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES processor: %w", err)
	}
	rsaProcessor, err := cryptography.NewRSAProcessor(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	keyRepo, err := protection.NewGormRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create protection key repository: %w", err)
	}
	protector, err := protection.NewProtector(keyRepo, aesProcessor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create protector: %w", err)
	}

	tenants, err := multitenancy.NewGormTenantRepository(db, protector, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create tenant repository: %w", err)
	}

	connections := multitenancy.NewConnectionRegistry(cfg.Database, cfg.MultiTenancy, db, log)

	engine := hooks.NewEngine(log)
	hooks.RegisterDefaultHooks(engine, nil)
	uows := persistence.NewUnitOfWorkFactory(connections, engine, cfg.Transaction, log)

	registry := eventing.NewRegistry()
	app.RegisterTaskHandlers(registry, uows, log)
	bus := eventing.NewBus(registry, log)

	tokens, err := auth.NewTokenManager(cfg.Jwt, rsaProcessor)
	if err != nil {
		return nil, fmt.Errorf("failed to create token manager: %w", err)
	}

	taskService, err := app.NewTaskService(uows, bus, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}
	accountService, err := app.NewAccountService(uows, tokens, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appDependencies{
		connections:    connections,
		tokens:         tokens,
		tenants:        tenants,
		taskService:    taskService,
		accountService: accountService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.AppConfig, deps *appDependencies, log logger.Logger) error {
	r := gin.New()

	v1.SetupRoutes(r, v1.RouteDependencies{
		Server:         cfg.Server,
		MultiTenancy:   cfg.MultiTenancy,
		Tokens:         deps.tokens,
		AccountService: deps.accountService,
		TaskService:    deps.taskService,
		Tenants:        deps.tenants,
		Logger:         log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Starting server on port ", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
