package hooks

import "context"

// Hook is a callback invoked by the save pipeline for entries in State.
type Hook interface {
	Name() string
	State() EntityState
	Matches(entry *Entry) bool
	Hook(ctx context.Context, entry *Entry) error
}

// HookFunc handles an entry whose entity implements T.
type HookFunc[T any] func(ctx context.Context, entity T, entry *Entry) error

type typedHook[T any] struct {
	name  string
	state EntityState
	fn    HookFunc[T]
}

// NewHook returns a hook for entries in state whose entity implements T.
func NewHook[T any](name string, state EntityState, fn HookFunc[T]) Hook {
	return &typedHook[T]{name: name, state: state, fn: fn}
}

// NewInsertHook returns a hook for added entities implementing T.
func NewInsertHook[T any](name string, fn HookFunc[T]) Hook {
	return NewHook(name, Added, fn)
}

// NewUpdateHook returns a hook for modified entities implementing T.
func NewUpdateHook[T any](name string, fn HookFunc[T]) Hook {
	return NewHook(name, Modified, fn)
}

// NewDeleteHook returns a hook for deleted entities implementing T.
func NewDeleteHook[T any](name string, fn HookFunc[T]) Hook {
	return NewHook(name, Deleted, fn)
}

func (h *typedHook[T]) Name() string {
	return h.name
}

func (h *typedHook[T]) State() EntityState {
	return h.state
}

func (h *typedHook[T]) Matches(entry *Entry) bool {
	_, ok := entry.Entity.(T)
	return ok
}

func (h *typedHook[T]) Hook(ctx context.Context, entry *Entry) error {
	entity, ok := entry.Entity.(T)
	if !ok {
		return nil
	}
	return h.fn(ctx, entity, entry)
}
