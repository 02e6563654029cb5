//go:build unit
// +build unit

package hooks

import (
	"context"
	"errors"
	"testing"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type named interface {
	GetName() string
}

type note struct {
	Name string
}

func (n *note) GetName() string { return n.Name }

type plain struct{}

func recordingHook(name string, state EntityState, calls *[]string) Hook {
	return NewHook(name, state, func(_ context.Context, _ named, _ *Entry) error {
		*calls = append(*calls, name)
		return nil
	})
}

func TestEngine_RunsMatchingHooksInRegistrationOrder(t *testing.T) {
	engine := NewEngine(testutil.SetupTestLogger(t))
	var calls []string

	engine.AddPreActionHooks(
		recordingHook("first", Added, &calls),
		recordingHook("update", Modified, &calls),
		recordingHook("second", Added, &calls),
	)

	err := engine.RunPreActionHooks(context.Background(), []*Entry{NewEntry(&note{}, Added)})

	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestEngine_SkipsEntitiesWithoutCapability(t *testing.T) {
	engine := NewEngine(testutil.SetupTestLogger(t))
	var calls []string
	engine.AddPreActionHooks(recordingHook("named", Added, &calls))

	err := engine.RunPreActionHooks(context.Background(), []*Entry{NewEntry(&plain{}, Added)})

	require.NoError(t, err)
	assert.Empty(t, calls)
}

func TestEngine_MatchesOnPreSaveState(t *testing.T) {
	engine := NewEngine(testutil.SetupTestLogger(t))
	var calls []string

	rewrite := NewDeleteHook("rewrite", func(_ context.Context, _ named, entry *Entry) error {
		entry.State = Modified
		return nil
	})
	engine.AddPreActionHooks(rewrite, recordingHook("update", Modified, &calls))

	entry := NewEntry(&note{}, Deleted)
	err := engine.RunPreActionHooks(context.Background(), []*Entry{entry})

	require.NoError(t, err)
	assert.Empty(t, calls)
	assert.Equal(t, Modified, entry.State)
	assert.Equal(t, Deleted, entry.PreSaveState())
}

func TestEngine_HookErrorAborts(t *testing.T) {
	engine := NewEngine(testutil.SetupTestLogger(t))
	var calls []string
	boom := errors.New("boom")

	engine.AddPreActionHooks(
		NewInsertHook("failing", func(context.Context, named, *Entry) error { return boom }),
		recordingHook("after", Added, &calls),
	)

	err := engine.RunPreActionHooks(context.Background(), []*Entry{NewEntry(&note{}, Added)})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failing")
	assert.Empty(t, calls)
}

func TestEngine_PostActionHooksAreSeparate(t *testing.T) {
	engine := NewEngine(testutil.SetupTestLogger(t))
	var calls []string
	engine.AddPostActionHooks(recordingHook("post", Added, &calls))

	entries := []*Entry{NewEntry(&note{}, Added)}
	require.NoError(t, engine.RunPreActionHooks(context.Background(), entries))
	assert.Empty(t, calls)

	require.NoError(t, engine.RunPostActionHooks(context.Background(), entries))
	assert.Equal(t, []string{"post"}, calls)
	assert.Len(t, engine.PostActionHooks(), 1)
	assert.Empty(t, engine.PreActionHooks())
}

func TestEntityState_String(t *testing.T) {
	assert.Equal(t, "added", Added.String())
	assert.Equal(t, "modified", Modified.String())
	assert.Equal(t, "deleted", Deleted.String())
	assert.Equal(t, "unknown", EntityState(0).String())
}
