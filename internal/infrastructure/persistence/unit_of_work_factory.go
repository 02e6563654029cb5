package persistence

import (
	"context"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/persistence/hooks"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/config"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/logger"

	"gorm.io/gorm"
)

// DBResolver returns the database serving the caller in ctx.
type DBResolver interface {
	DB(ctx context.Context) (*gorm.DB, error)
}

// StaticResolver always resolves to the same database.
type StaticResolver struct {
	Database *gorm.DB
}

// DB implements DBResolver.
func (s StaticResolver) DB(ctx context.Context) (*gorm.DB, error) {
	return s.Database.WithContext(ctx), nil
}

// UnitOfWorkFactory creates one unit of work per operation on the database
// of the current tenant.
type UnitOfWorkFactory struct {
	resolver   DBResolver
	engine     *hooks.Engine
	txSettings config.TransactionSettings
	logger     logger.Logger
}

// NewUnitOfWorkFactory creates a factory.
func NewUnitOfWorkFactory(resolver DBResolver, engine *hooks.Engine, txSettings config.TransactionSettings, logger logger.Logger) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{
		resolver:   resolver,
		engine:     engine,
		txSettings: txSettings,
		logger:     logger,
	}
}

// New returns a unit of work bound to the database of the tenant in ctx.
func (f *UnitOfWorkFactory) New(ctx context.Context) (*UnitOfWork, error) {
	db, err := f.resolver.DB(ctx)
	if err != nil {
		return nil, err
	}
	return NewUnitOfWork(db, f.engine, f.txSettings, f.logger)
}
