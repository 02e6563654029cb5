package app

import (
	"context"
	"fmt"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/eventing"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/result"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/tasks"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/persistence"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/logger"
)

// taskService implements the TaskService interface
type taskService struct {
	uows   *persistence.UnitOfWorkFactory
	bus    eventing.EventBus
	logger logger.Logger
}

// NewTaskService creates a new taskService instance
func NewTaskService(uows *persistence.UnitOfWorkFactory, bus eventing.EventBus, logger logger.Logger) (tasks.TaskService, error) {
	if uows == nil || bus == nil {
		return nil, fmt.Errorf("unit of work factory and event bus are required")
	}
	return &taskService{
		uows:   uows,
		bus:    bus,
		logger: logger,
	}, nil
}

// Create validates the task, lets business handlers veto it, stores it and
// announces it.
func (s *taskService) Create(ctx context.Context, task *tasks.Task) (result.Result, error) {
	task.Normalize()
	if res := task.Validate(); res.Failed() {
		return res, nil
	}

	res, err := s.bus.TriggerBusiness(ctx, tasks.TaskCreating{Task: task})
	if err != nil || res.Failed() {
		return res, err
	}

	uow, err := s.uows.New(ctx)
	if err != nil {
		return result.Result{}, err
	}
	uow.Add(task)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return result.Result{}, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("Created task with id ", task.ID)

	if err := s.bus.TriggerDomain(ctx, tasks.TaskCreated{Task: *task}); err != nil {
		return result.Result{}, err
	}
	return result.Ok(), nil
}

// Edit applies title, description and state of task to the stored task.
func (s *taskService) Edit(ctx context.Context, task *tasks.Task) (result.Result, error) {
	uow, err := s.uows.New(ctx)
	if err != nil {
		return result.Result{}, err
	}

	existing, err := persistence.NewGormTaskRepository(uow).GetByID(ctx, task.ID)
	if err != nil {
		return result.Result{}, err
	}

	existing.Title = task.Title
	existing.Description = task.Description
	existing.State = task.State
	existing.Version = task.Version
	existing.Normalize()
	if res := existing.Validate(); res.Failed() {
		return res, nil
	}

	res, err := s.bus.TriggerBusiness(ctx, tasks.TaskEditing{Task: existing})
	if err != nil || res.Failed() {
		return res, err
	}

	uow.Update(existing)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return result.Result{}, fmt.Errorf("failed to update task: %w", err)
	}

	*task = *existing
	s.logger.Info("Updated task with id ", task.ID)
	return result.Ok(), nil
}

// List returns the tasks visible to the caller.
func (s *taskService) List(ctx context.Context, query *tasks.TaskQuery) ([]*tasks.Task, error) {
	uow, err := s.uows.New(ctx)
	if err != nil {
		return nil, err
	}
	return persistence.NewGormTaskRepository(uow).List(ctx, query)
}

// GetByID returns a task visible to the caller.
func (s *taskService) GetByID(ctx context.Context, id int64) (*tasks.Task, error) {
	uow, err := s.uows.New(ctx)
	if err != nil {
		return nil, err
	}
	return persistence.NewGormTaskRepository(uow).GetByID(ctx, id)
}

// Delete soft deletes a task visible to the caller.
func (s *taskService) Delete(ctx context.Context, id int64) error {
	uow, err := s.uows.New(ctx)
	if err != nil {
		return err
	}

	task, err := persistence.NewGormTaskRepository(uow).GetByID(ctx, id)
	if err != nil {
		return err
	}

	uow.Remove(task)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Info("Deleted task with id ", id)
	return s.bus.TriggerDomain(ctx, tasks.TaskDeleted{TaskID: id})
}
