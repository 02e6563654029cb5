package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/tasks"

	"gorm.io/gorm"
)

type gormTaskRepository struct {
	uow *UnitOfWork
}

// NewGormTaskRepository creates a TaskRepository reading through uow. Only
// tasks of the caller's tenant and user that are not deleted are visible.
func NewGormTaskRepository(uow *UnitOfWork) tasks.TaskRepository {
	return &gormTaskRepository{uow: uow}
}

func (r *gormTaskRepository) visible(ctx context.Context) *gorm.DB {
	return r.uow.DB(ctx).Model(&tasks.Task{}).Scopes(NotDeleted, ForSession(ctx, true, true))
}

func (r *gormTaskRepository) List(ctx context.Context, query *tasks.TaskQuery) ([]*tasks.Task, error) {
	if query == nil {
		query = tasks.NewTaskQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.visible(ctx)
	if query.Title != "" {
		dbQuery = dbQuery.Where("title LIKE ?", "%"+query.Title+"%")
	}
	if query.State != "" {
		dbQuery = dbQuery.Where("state = ?", query.State)
	}

	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = "id"
	}
	order := query.SortOrder
	if order == "" {
		order = "asc"
	}
	dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", sortBy, order))

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	var list []*tasks.Task
	if err := dbQuery.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}
	return list, nil
}

func (r *gormTaskRepository) GetByID(ctx context.Context, id int64) (*tasks.Task, error) {
	var task tasks.Task
	if err := r.visible(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("task %d: %w", id, tasks.ErrTaskNotFound)
		}
		return nil, fmt.Errorf("failed to fetch task: %w", err)
	}
	return &task, nil
}

// ExistsByTitle looks at the whole tenant, not only the caller's tasks.
func (r *gormTaskRepository) ExistsByTitle(ctx context.Context, title string, excludeID int64) (bool, error) {
	var count int64
	err := r.uow.DB(ctx).Model(&tasks.Task{}).
		Scopes(NotDeleted, ForSession(ctx, true, false)).
		Where("title = ? AND id <> ?", title, excludeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check task title: %w", err)
	}
	return count > 0, nil
}
