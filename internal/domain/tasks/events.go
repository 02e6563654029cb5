package tasks

import "github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/eventing"

// TaskCreating is raised before a task is stored; a failed handler result
// prevents the creation.
type TaskCreating struct {
	eventing.BusinessEventBase
	Task *Task
}

// TaskEditing is raised before a task is updated.
type TaskEditing struct {
	eventing.BusinessEventBase
	Task *Task
}

// TaskCreated is raised once a task was stored.
type TaskCreated struct {
	eventing.DomainEventBase
	Task Task
}

// TaskDeleted is raised once a task was deleted.
type TaskDeleted struct {
	eventing.DomainEventBase
	TaskID int64
}
