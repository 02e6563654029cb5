package persistence

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/persistence/hooks"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/config"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/logger"

	"gorm.io/gorm"
)

// UnitOfWork collects entity changes and writes them in one go.
// It is not meant to be shared between requests.
type UnitOfWork struct {
	db         *gorm.DB
	engine     *hooks.Engine
	logger     logger.Logger
	txSettings config.TransactionSettings

	mu      sync.Mutex
	entries []*hooks.Entry

	// Set while running inside Transaction; post-action hooks wait for the commit.
	inTx     bool
	deferred []*hooks.Entry
}

// NewUnitOfWork creates a unit of work writing to db.
func NewUnitOfWork(db *gorm.DB, engine *hooks.Engine, txSettings config.TransactionSettings, logger logger.Logger) (*UnitOfWork, error) {
	if db == nil {
		return nil, fmt.Errorf("db is required")
	}
	if engine == nil {
		return nil, fmt.Errorf("hook engine is required")
	}
	if err := txSettings.Validate(); err != nil {
		return nil, err
	}

	return &UnitOfWork{
		db:         db,
		engine:     engine,
		logger:     logger,
		txSettings: txSettings,
	}, nil
}

// DB returns the connection bound to ctx. Inside Transaction it is the
// transaction itself.
func (u *UnitOfWork) DB(ctx context.Context) *gorm.DB {
	return u.db.WithContext(ctx)
}

// Add stages entity for insertion.
func (u *UnitOfWork) Add(entity any) {
	u.stage(entity, hooks.Added)
}

// Update stages entity for an update of all its columns.
func (u *UnitOfWork) Update(entity any) {
	u.stage(entity, hooks.Modified)
}

// Remove stages entity for deletion. Soft deletable entities are flagged instead.
func (u *UnitOfWork) Remove(entity any) {
	u.stage(entity, hooks.Deleted)
}

func (u *UnitOfWork) stage(entity any, state hooks.EntityState) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.entries = append(u.entries, hooks.NewEntry(entity, state))
}

// HasChanges reports whether entries are staged.
func (u *UnitOfWork) HasChanges() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.entries) > 0
}

// RejectChanges drops every staged entry.
func (u *UnitOfWork) RejectChanges() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.entries = nil
}

// SaveChanges runs the pre-action hooks, writes the staged entries and runs
// the post-action hooks. It returns the number of affected rows. Staged
// entries are kept when saving fails and may be saved again; the row version
// they are conditioned on does not move between attempts.
func (u *UnitOfWork) SaveChanges(ctx context.Context) (int64, error) {
	u.mu.Lock()
	entries := u.entries
	u.mu.Unlock()

	if len(entries) == 0 {
		return 0, nil
	}

	if err := u.engine.RunPreActionHooks(ctx, entries); err != nil {
		return 0, fmt.Errorf("failed to run pre-action hooks: %w", err)
	}

	var affected int64
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, entry := range entries {
			n, err := persist(tx, entry)
			if err != nil {
				return err
			}
			affected += n
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	u.mu.Lock()
	u.entries = u.entries[len(entries):]
	if u.inTx {
		u.deferred = append(u.deferred, entries...)
	}
	inTx := u.inTx
	u.mu.Unlock()

	u.logger.Debug(fmt.Sprintf("Saved %d entries, %d rows affected", len(entries), affected))

	if inTx {
		return affected, nil
	}
	if err := u.engine.RunPostActionHooks(ctx, entries); err != nil {
		return affected, fmt.Errorf("failed to run post-action hooks: %w", err)
	}
	return affected, nil
}

func persist(tx *gorm.DB, entry *hooks.Entry) (int64, error) {
	switch entry.State {
	case hooks.Added:
		res := tx.Create(entry.Entity)
		if res.Error != nil {
			return 0, fmt.Errorf("failed to insert %T: %w", entry.Entity, res.Error)
		}
		return res.RowsAffected, nil

	case hooks.Modified:
		q := tx.Model(entry.Entity)
		if entry.OriginalVersion != nil {
			q = q.Where("version = ?", *entry.OriginalVersion)
		}
		columns := []string{"*"}
		if len(entry.Columns) > 0 {
			columns = entry.Columns
		}
		res := q.Select(columns).Updates(entry.Entity)
		if res.Error != nil {
			return 0, fmt.Errorf("failed to update %T: %w", entry.Entity, res.Error)
		}
		if entry.OriginalVersion != nil && res.RowsAffected == 0 {
			return 0, fmt.Errorf("failed to update %T: %w", entry.Entity, ErrConcurrencyConflict)
		}
		return res.RowsAffected, nil

	case hooks.Deleted:
		res := tx.Delete(entry.Entity)
		if res.Error != nil {
			return 0, fmt.Errorf("failed to delete %T: %w", entry.Entity, res.Error)
		}
		return res.RowsAffected, nil

	default:
		return 0, fmt.Errorf("unsupported entity state %s for %T", entry.State, entry.Entity)
	}
}

// Transaction runs fn inside a database transaction opened with the
// configured timeout and isolation level. fn receives a unit of work bound to
// the transaction; changes it leaves staged are saved before the commit.
// Post-action hooks run once the transaction committed.
func (u *UnitOfWork) Transaction(ctx context.Context, fn func(ctx context.Context, uow *UnitOfWork) error) error {
	if u.txSettings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.txSettings.Timeout)
		defer cancel()
	}

	var scoped *UnitOfWork
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		scoped = &UnitOfWork{
			db:         tx,
			engine:     u.engine,
			logger:     u.logger,
			txSettings: u.txSettings,
			inTx:       true,
		}

		if err := fn(ctx, scoped); err != nil {
			return err
		}
		if scoped.HasChanges() {
			if _, err := scoped.SaveChanges(ctx); err != nil {
				return err
			}
		}
		return nil
	}, u.txSettings.TxOptions())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			u.logger.Warn("Transaction timed out after ", u.txSettings.Timeout)
		}
		return err
	}

	if err := u.engine.RunPostActionHooks(ctx, scoped.deferred); err != nil {
		return fmt.Errorf("failed to run post-action hooks: %w", err)
	}
	return nil
}
