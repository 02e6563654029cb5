package multitenancy

import (
	"context"
	"fmt"
	"sync"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/persistence"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/config"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/logger"

	"gorm.io/gorm"
)

// Opener opens a database connection for a connection string.
type Opener func(dsn string) (*gorm.DB, error)

// ConnectionRegistry hands out one *gorm.DB per resolved connection string.
type ConnectionRegistry struct {
	database config.DatabaseSettings
	tenancy  config.MultiTenancySettings
	open     Opener
	logger   logger.Logger

	mu    sync.Mutex
	conns map[string]*gorm.DB
}

// NewConnectionRegistry creates a registry. The default connection is
// registered as defaultDB so it is never opened twice.
func NewConnectionRegistry(database config.DatabaseSettings, tenancy config.MultiTenancySettings, defaultDB *gorm.DB, logger logger.Logger) *ConnectionRegistry {
	r := &ConnectionRegistry{
		database: database,
		tenancy:  tenancy,
		logger:   logger,
		conns:    make(map[string]*gorm.DB),
		open: func(dsn string) (*gorm.DB, error) {
			return persistence.OpenDSN(database.Type, dsn)
		},
	}
	if defaultDB != nil {
		r.conns[database.DSN] = defaultDB
	}
	return r
}

// WithOpener replaces how new connections are opened.
func (r *ConnectionRegistry) WithOpener(open Opener) *ConnectionRegistry {
	r.open = open
	return r
}

// DB returns the database of the tenant in ctx.
func (r *ConnectionRegistry) DB(ctx context.Context) (*gorm.DB, error) {
	dsn, err := ReadTenantConnectionString(ctx, r.tenancy, r.database.DSN)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if db, ok := r.conns[dsn]; ok {
		return db.WithContext(ctx), nil
	}

	db, err := r.open(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open tenant database: %w", err)
	}
	r.conns[dsn] = db
	r.logger.Info("Opened tenant database connection #", len(r.conns))

	return db.WithContext(ctx), nil
}

// Close closes every connection the registry opened or was given.
func (r *ConnectionRegistry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var firstErr error
	for dsn, db := range r.conns {
		if err := persistence.CloseDB(db); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(r.conns, dsn)
	}
	return firstErr
}
