package hooks

import (
	"context"
	"fmt"
	"sync"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/logger"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/metrics"
)

// Engine holds the ordered pre-action and post-action hooks.
type Engine struct {
	mu     sync.RWMutex
	pre    []Hook
	post   []Hook
	logger logger.Logger
}

// NewEngine creates an engine without hooks.
func NewEngine(logger logger.Logger) *Engine {
	return &Engine{logger: logger}
}

// AddPreActionHooks appends hooks that run before entries are persisted.
func (e *Engine) AddPreActionHooks(hooks ...Hook) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pre = append(e.pre, hooks...)
}

// AddPostActionHooks appends hooks that run after the save committed.
func (e *Engine) AddPostActionHooks(hooks ...Hook) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.post = append(e.post, hooks...)
}

// PreActionHooks returns the registered pre-action hooks in order.
func (e *Engine) PreActionHooks() []Hook {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]Hook(nil), e.pre...)
}

// PostActionHooks returns the registered post-action hooks in order.
func (e *Engine) PostActionHooks() []Hook {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]Hook(nil), e.post...)
}

// RunPreActionHooks runs the pre-action hooks against entries.
func (e *Engine) RunPreActionHooks(ctx context.Context, entries []*Entry) error {
	return e.run(ctx, "pre", e.PreActionHooks(), entries)
}

// RunPostActionHooks runs the post-action hooks against entries.
func (e *Engine) RunPostActionHooks(ctx context.Context, entries []*Entry) error {
	return e.run(ctx, "post", e.PostActionHooks(), entries)
}

func (e *Engine) run(ctx context.Context, phase string, hooks []Hook, entries []*Entry) error {
	if len(hooks) == 0 {
		return nil
	}

	for _, entry := range entries {
		state := entry.PreSaveState()
		for _, hook := range hooks {
			if hook.State() != state || !hook.Matches(entry) {
				continue
			}

			err := hook.Hook(ctx, entry)
			metrics.RecordHookInvocation(hook.Name(), state.String(), err)
			if err != nil {
				e.logger.Error(fmt.Sprintf("%s-action hook %s failed on %T: %v", phase, hook.Name(), entry.Entity, err))
				return fmt.Errorf("hook %s: %w", hook.Name(), err)
			}
		}
	}

	return nil
}
