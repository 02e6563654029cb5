package tasks

import (
	"context"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/result"
)

// TaskRepository reads the tasks visible to the caller in ctx.
type TaskRepository interface {
	List(ctx context.Context, query *TaskQuery) ([]*Task, error)
	GetByID(ctx context.Context, id int64) (*Task, error)
	ExistsByTitle(ctx context.Context, title string, excludeID int64) (bool, error)
}

// TaskService manages tasks.
type TaskService interface {
	// Create stores a new task. A failed result reports validation or
	// business rule failures; the error reports infrastructure failures.
	Create(ctx context.Context, task *Task) (result.Result, error)
	// Edit updates title, description and state. task.Version must be the
	// version the caller loaded.
	Edit(ctx context.Context, task *Task) (result.Result, error)
	List(ctx context.Context, query *TaskQuery) ([]*Task, error)
	GetByID(ctx context.Context, id int64) (*Task, error)
	Delete(ctx context.Context, id int64) error
}
