package persistence

import "errors"

// ErrConcurrencyConflict is returned when a row versioned entity was changed
// by someone else since it was loaded.
var ErrConcurrencyConflict = errors.New("the entity was modified by another user")
