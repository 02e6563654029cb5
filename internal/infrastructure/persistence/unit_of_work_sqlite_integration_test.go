//go:build integration
// +build integration

package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/persistence/hooks"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWork_AddStampsAndInserts(t *testing.T) {
	tc := SetupTestUnitOfWork(t, config.TransactionSettings{})
	ctx := TenantContext("5", "2")

	article := &testArticle{Title: "first"}
	tc.UoW.Add(article)

	affected, err := tc.UoW.SaveChanges(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.False(t, tc.UoW.HasChanges())
	require.NotZero(t, article.ID)

	var stored testArticle
	require.NoError(t, tc.DB.First(&stored, article.ID).Error)
	assert.Equal(t, "first", stored.Title)
	assert.Equal(t, int64(2), stored.TenantID)
	require.NotNil(t, stored.CreatorUserID)
	assert.Equal(t, int64(5), *stored.CreatorUserID)
	assert.True(t, stored.CreatedDateTime.Equal(testNow))
}

func TestUnitOfWork_UpdateBumpsVersion(t *testing.T) {
	tc := SetupTestUnitOfWork(t, config.TransactionSettings{})
	ctx := TenantContext("5", "2")

	article := &testArticle{Title: "draft"}
	tc.UoW.Add(article)
	_, err := tc.UoW.SaveChanges(ctx)
	require.NoError(t, err)

	article.Title = "final"
	tc.UoW.Update(article)
	_, err = tc.UoW.SaveChanges(ctx)
	require.NoError(t, err)

	var stored testArticle
	require.NoError(t, tc.DB.First(&stored, article.ID).Error)
	assert.Equal(t, "final", stored.Title)
	assert.Equal(t, int64(1), stored.Version)
	require.NotNil(t, stored.ModifiedDateTime)
	assert.True(t, stored.CreatedDateTime.Equal(testNow))
}

func TestUnitOfWork_ConcurrencyConflict(t *testing.T) {
	tc := SetupTestUnitOfWork(t, config.TransactionSettings{})
	ctx := TenantContext("5", "2")

	tc.UoW.Add(&testArticle{Title: "shared"})
	_, err := tc.UoW.SaveChanges(ctx)
	require.NoError(t, err)

	var first, second testArticle
	require.NoError(t, tc.DB.First(&first).Error)
	require.NoError(t, tc.DB.First(&second).Error)

	first.Title = "mine"
	tc.UoW.Update(&first)
	_, err = tc.UoW.SaveChanges(ctx)
	require.NoError(t, err)

	second.Title = "theirs"
	tc.UoW.Update(&second)
	_, err = tc.UoW.SaveChanges(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConcurrencyConflict))
	assert.True(t, tc.UoW.HasChanges(), "failed entries stay staged")

	var stored testArticle
	require.NoError(t, tc.DB.First(&stored, first.ID).Error)
	assert.Equal(t, "mine", stored.Title)
}

func TestUnitOfWork_RemoveSoftDeletes(t *testing.T) {
	tc := SetupTestUnitOfWork(t, config.TransactionSettings{})
	ctx := TenantContext("5", "2")

	article := &testArticle{Title: "gone"}
	tc.UoW.Add(article)
	_, err := tc.UoW.SaveChanges(ctx)
	require.NoError(t, err)

	tc.UoW.Remove(article)
	_, err = tc.UoW.SaveChanges(ctx)
	require.NoError(t, err)

	var stored testArticle
	require.NoError(t, tc.DB.First(&stored, article.ID).Error)
	assert.True(t, stored.IsDeleted)

	var visible int64
	require.NoError(t, tc.DB.Model(&testArticle{}).Scopes(NotDeleted).Count(&visible).Error)
	assert.Zero(t, visible)
}

func TestUnitOfWork_RemoveStaleCopyConflicts(t *testing.T) {
	tc := SetupTestUnitOfWork(t, config.TransactionSettings{})
	ctx := TenantContext("5", "2")

	tc.UoW.Add(&testArticle{Title: "draft"})
	_, err := tc.UoW.SaveChanges(ctx)
	require.NoError(t, err)

	var current, stale testArticle
	require.NoError(t, tc.DB.First(&current).Error)
	require.NoError(t, tc.DB.First(&stale).Error)

	current.Title = "edited by someone else"
	tc.UoW.Update(&current)
	_, err = tc.UoW.SaveChanges(ctx)
	require.NoError(t, err)

	tc.UoW.Remove(&stale)
	_, err = tc.UoW.SaveChanges(ctx)
	require.ErrorIs(t, err, ErrConcurrencyConflict)

	var stored testArticle
	require.NoError(t, tc.DB.First(&stored, current.ID).Error)
	assert.Equal(t, "edited by someone else", stored.Title)
	assert.Equal(t, int64(1), stored.Version)
	assert.False(t, stored.IsDeleted)
}

func TestUnitOfWork_RemoveWritesOnlyDeletedFlag(t *testing.T) {
	tc := SetupTestUnitOfWork(t, config.TransactionSettings{})
	ctx := TenantContext("5", "2")

	article := &testArticle{Title: "original"}
	tc.UoW.Add(article)
	_, err := tc.UoW.SaveChanges(ctx)
	require.NoError(t, err)

	article.Title = "unsaved edit"
	tc.UoW.Remove(article)
	_, err = tc.UoW.SaveChanges(ctx)
	require.NoError(t, err)

	var stored testArticle
	require.NoError(t, tc.DB.First(&stored, article.ID).Error)
	assert.True(t, stored.IsDeleted)
	assert.Equal(t, "original", stored.Title)
	assert.Equal(t, int64(1), stored.Version)
}

func TestUnitOfWork_RetryAfterFailedSave(t *testing.T) {
	tc := SetupTestUnitOfWork(t, config.TransactionSettings{})
	ctx := TenantContext("5", "2")

	article := &testArticle{Title: "draft"}
	existing := &testComment{Body: "first"}
	tc.UoW.Add(article)
	tc.UoW.Add(existing)
	_, err := tc.UoW.SaveChanges(ctx)
	require.NoError(t, err)

	article.Title = "final"
	duplicate := &testComment{Body: "second"}
	duplicate.ID = existing.ID
	tc.UoW.Update(article)
	tc.UoW.Add(duplicate)
	_, err = tc.UoW.SaveChanges(ctx)
	require.Error(t, err)
	assert.Equal(t, int64(1), article.Version)

	duplicate.ID = 0
	_, err = tc.UoW.SaveChanges(ctx)
	require.NoError(t, err)
	assert.False(t, tc.UoW.HasChanges())

	var stored testArticle
	require.NoError(t, tc.DB.First(&stored, article.ID).Error)
	assert.Equal(t, "final", stored.Title)
	assert.Equal(t, int64(1), stored.Version)

	var comments int64
	require.NoError(t, tc.DB.Model(&testComment{}).Count(&comments).Error)
	assert.Equal(t, int64(2), comments)
}

func TestUnitOfWork_RemoveHardDeletes(t *testing.T) {
	tc := SetupTestUnitOfWork(t, config.TransactionSettings{})
	ctx := context.Background()

	comment := &testComment{Body: "bye"}
	tc.UoW.Add(comment)
	_, err := tc.UoW.SaveChanges(ctx)
	require.NoError(t, err)

	tc.UoW.Remove(comment)
	_, err = tc.UoW.SaveChanges(ctx)
	require.NoError(t, err)

	var count int64
	require.NoError(t, tc.DB.Model(&testComment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUnitOfWork_PreHookErrorAbortsSave(t *testing.T) {
	tc := SetupTestUnitOfWork(t, config.TransactionSettings{})
	boom := errors.New("rejected")
	tc.Engine.AddPreActionHooks(hooks.NewInsertHook("reject", func(context.Context, *testComment, *hooks.Entry) error {
		return boom
	}))

	tc.UoW.Add(&testArticle{Title: "kept out"})
	tc.UoW.Add(&testComment{Body: "x"})
	_, err := tc.UoW.SaveChanges(context.Background())
	require.ErrorIs(t, err, boom)

	var count int64
	require.NoError(t, tc.DB.Model(&testArticle{}).Count(&count).Error)
	assert.Zero(t, count)

	tc.UoW.RejectChanges()
	assert.False(t, tc.UoW.HasChanges())
}

func TestUnitOfWork_PostHooksRunAfterSave(t *testing.T) {
	tc := SetupTestUnitOfWork(t, config.TransactionSettings{})
	var seen []int64
	tc.Engine.AddPostActionHooks(hooks.NewInsertHook("collect", func(_ context.Context, c *testComment, _ *hooks.Entry) error {
		seen = append(seen, c.ID)
		return nil
	}))

	comment := &testComment{Body: "x"}
	tc.UoW.Add(comment)
	_, err := tc.UoW.SaveChanges(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int64{comment.ID}, seen)
}

func TestUnitOfWork_TransactionCommits(t *testing.T) {
	tc := SetupTestUnitOfWork(t, config.TransactionSettings{IsolationLevel: config.IsolationDefault})
	var postRuns int
	tc.Engine.AddPostActionHooks(hooks.NewInsertHook("count", func(context.Context, *testComment, *hooks.Entry) error {
		postRuns++
		return nil
	}))

	err := tc.UoW.Transaction(context.Background(), func(ctx context.Context, uow *UnitOfWork) error {
		uow.Add(&testComment{Body: "one"})
		if _, err := uow.SaveChanges(ctx); err != nil {
			return err
		}
		assert.Zero(t, postRuns, "post hooks wait for the commit")

		var inside int64
		require.NoError(t, uow.DB(ctx).Model(&testComment{}).Count(&inside).Error)
		assert.Equal(t, int64(1), inside)

		uow.Add(&testComment{Body: "two"})
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, postRuns)

	var count int64
	require.NoError(t, tc.DB.Model(&testComment{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestUnitOfWork_TransactionRollsBack(t *testing.T) {
	tc := SetupTestUnitOfWork(t, config.TransactionSettings{})
	boom := errors.New("abort")

	err := tc.UoW.Transaction(context.Background(), func(ctx context.Context, uow *UnitOfWork) error {
		uow.Add(&testComment{Body: "one"})
		if _, err := uow.SaveChanges(ctx); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var count int64
	require.NoError(t, tc.DB.Model(&testComment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestScopes_FilterByTenantAndUser(t *testing.T) {
	tc := SetupTestUnitOfWork(t, config.TransactionSettings{})

	tc.UoW.Add(&testArticle{Title: "a"})
	_, err := tc.UoW.SaveChanges(TenantContext("1", "10"))
	require.NoError(t, err)
	tc.UoW.Add(&testArticle{Title: "b"})
	_, err = tc.UoW.SaveChanges(TenantContext("1", "20"))
	require.NoError(t, err)

	var articles []testArticle
	require.NoError(t, tc.DB.Scopes(ForTenant(20)).Find(&articles).Error)
	require.Len(t, articles, 1)
	assert.Equal(t, "b", articles[0].Title)

	articles = nil
	require.NoError(t, tc.DB.Scopes(ForSession(TenantContext("1", "10"), true, false)).Find(&articles).Error)
	require.Len(t, articles, 1)
	assert.Equal(t, "a", articles[0].Title)
}

func TestNewUnitOfWork_Validation(t *testing.T) {
	tc := SetupTestUnitOfWork(t, config.TransactionSettings{})

	_, err := NewUnitOfWork(nil, tc.Engine, config.TransactionSettings{}, nil)
	assert.Error(t, err)

	_, err = NewUnitOfWork(tc.DB, nil, config.TransactionSettings{}, nil)
	assert.Error(t, err)

	_, err = NewUnitOfWork(tc.DB, tc.Engine, config.TransactionSettings{IsolationLevel: "chaos"}, nil)
	assert.Error(t, err)
}
