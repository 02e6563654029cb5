package hooks

// EntityState is the pending change recorded for an entry.
type EntityState int

const (
	Added EntityState = iota + 1
	Modified
	Deleted
)

func (s EntityState) String() string {
	switch s {
	case Added:
		return "added"
	case Modified:
		return "modified"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Entry is an entity staged for persistence.
type Entry struct {
	// Entity is a pointer to the staged entity.
	Entity any
	// State may be rewritten by hooks.
	State EntityState
	// OriginalVersion holds the row version loaded from the database when a
	// row version hook bumped it. The update is conditioned on it. Once set
	// it is kept, so running the hooks again for a retried save bumps from
	// the same base.
	OriginalVersion *int64
	// Columns restricts the update of a Modified entry to these fields.
	// Empty means every column.
	Columns []string

	preSaveState EntityState
}

// NewEntry stages entity with the given state.
func NewEntry(entity any, state EntityState) *Entry {
	return &Entry{Entity: entity, State: state, preSaveState: state}
}

// PreSaveState returns the state the entry had when it was staged.
func (e *Entry) PreSaveState() EntityState {
	return e.preSaveState
}

// BumpVersion conditions the entry on the version loaded from the database
// and moves the entity to the next version. Repeated calls for the same entry
// keep the first recorded version.
func (e *Entry) BumpVersion(entity interface {
	RowVersion() int64
	SetRowVersion(version int64)
}) {
	if e.OriginalVersion == nil {
		original := entity.RowVersion()
		e.OriginalVersion = &original
	}
	entity.SetRowVersion(*e.OriginalVersion + 1)
}
