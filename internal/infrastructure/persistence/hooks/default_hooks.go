package hooks

import (
	"context"
	"time"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/entities"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/session"
)

// Clock returns the current time.
type Clock func() time.Time

// UTCClock is the clock used by the built-in tracking hooks.
func UTCClock() time.Time {
	return time.Now().UTC()
}

// Names of the built-in hooks.
const (
	TrackingPreInsertHookName         = "tracking_pre_insert"
	TrackingPreUpdateHookName         = "tracking_pre_update"
	RowVersionPreUpdateHookName       = "row_version_pre_update"
	SoftDeletePreDeleteHookName       = "soft_delete_pre_delete"
	RowLevelSecurityPreInsertHookName = "row_level_security_pre_insert"
	TenantIDPreInsertHookName         = "tenant_id_pre_insert"
	BranchIDPreInsertHookName         = "branch_id_pre_insert"
	YeKePreInsertHookName             = "yeke_pre_insert"
	YeKePreUpdateHookName             = "yeke_pre_update"
)

// RegisterDefaultHooks registers the built-in pre-action hooks in their
// canonical order.
func RegisterDefaultHooks(engine *Engine, clock Clock) {
	if clock == nil {
		clock = UTCClock
	}
	engine.AddPreActionHooks(
		TrackingPreInsertHook(clock),
		TrackingPreUpdateHook(clock),
		RowVersionPreUpdateHook(),
		SoftDeletePreDeleteHook(),
		RowLevelSecurityPreInsertHook(),
		TenantIDPreInsertHook(),
		BranchIDPreInsertHook(),
		YeKePreInsertHook(),
		YeKePreUpdateHook(),
	)
}

// TrackingPreInsertHook stamps creation audit fields.
func TrackingPreInsertHook(clock Clock) Hook {
	return NewInsertHook(TrackingPreInsertHookName,
		func(ctx context.Context, entity entities.CreationTracking, _ *Entry) error {
			s := session.FromContext(ctx)
			entity.SetCreationTracking(clock(), s.UserID(), s.UserIP(), s.UserBrowserName())
			return nil
		})
}

// TrackingPreUpdateHook stamps modification audit fields.
func TrackingPreUpdateHook(clock Clock) Hook {
	return NewUpdateHook(TrackingPreUpdateHookName,
		func(ctx context.Context, entity entities.ModificationTracking, _ *Entry) error {
			s := session.FromContext(ctx)
			entity.SetModificationTracking(clock(), s.UserID(), s.UserIP(), s.UserBrowserName())
			return nil
		})
}

// RowVersionPreUpdateHook remembers the loaded version and bumps it.
func RowVersionPreUpdateHook() Hook {
	return NewUpdateHook(RowVersionPreUpdateHookName,
		func(_ context.Context, entity entities.RowVersioned, entry *Entry) error {
			entry.BumpVersion(entity)
			return nil
		})
}

// SoftDeletePreDeleteHook turns a delete into an update of the deleted flag.
// Only the flag is written; row versioned entities also get their version
// bumped and the update is conditioned on the loaded version.
func SoftDeletePreDeleteHook() Hook {
	return NewDeleteHook(SoftDeletePreDeleteHookName,
		func(_ context.Context, entity entities.SoftDeletable, entry *Entry) error {
			entity.MarkDeleted()
			entry.State = Modified
			entry.Columns = []string{"IsDeleted"}
			if versioned, ok := entry.Entity.(entities.RowVersioned); ok {
				entry.BumpVersion(versioned)
				entry.Columns = append(entry.Columns, "Version")
			}
			return nil
		})
}

// RowLevelSecurityPreInsertHook assigns the entity to the current user.
func RowLevelSecurityPreInsertHook() Hook {
	return NewInsertHook(RowLevelSecurityPreInsertHookName,
		func(ctx context.Context, entity entities.RowLevelSecured, _ *Entry) error {
			if userID := session.FromContext(ctx).UserID(); userID != nil {
				entity.SetOwnerUserID(*userID)
			}
			return nil
		})
}

// TenantIDPreInsertHook assigns the entity to the current tenant.
func TenantIDPreInsertHook() Hook {
	return NewInsertHook(TenantIDPreInsertHookName,
		func(ctx context.Context, entity entities.TenantOwned, _ *Entry) error {
			if tenantID := session.FromContext(ctx).TenantID(); tenantID != nil {
				entity.SetTenantID(*tenantID)
			}
			return nil
		})
}

// BranchIDPreInsertHook assigns the entity to the current branch.
func BranchIDPreInsertHook() Hook {
	return NewInsertHook(BranchIDPreInsertHookName,
		func(ctx context.Context, entity entities.BranchOwned, _ *Entry) error {
			if branchID := session.FromContext(ctx).BranchID(); branchID != nil {
				entity.SetBranchID(*branchID)
			}
			return nil
		})
}

// YeKePreInsertHook normalizes Persian Ye and Ke in added entities.
func YeKePreInsertHook() Hook {
	return NewInsertHook(YeKePreInsertHookName, applyYeKeHook)
}

// YeKePreUpdateHook normalizes Persian Ye and Ke in modified entities.
func YeKePreUpdateHook() Hook {
	return NewUpdateHook(YeKePreUpdateHookName, applyYeKeHook)
}

func applyYeKeHook(_ context.Context, entity any, _ *Entry) error {
	ApplyCorrectYeKeToFields(entity)
	return nil
}
