// Package tasks is the sample domain built on the framework: a task entity
// using every entity capability, its business and domain events and the
// permissions guarding it.
package tasks

import (
	"errors"
	"fmt"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/entities"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/result"

	"github.com/go-playground/validator/v10"
)

// Task states
const (
	StateTodo  = "todo"
	StateDoing = "doing"
	StateDone  = "done"
)

// Permissions guarding the task endpoints
const (
	PermissionView   = "tasks.view"
	PermissionCreate = "tasks.create"
	PermissionEdit   = "tasks.edit"
	PermissionDelete = "tasks.delete"
)

// ErrTaskNotFound is returned when no visible task has the requested id.
var ErrTaskNotFound = errors.New("task not found")

// Task is a unit of work owned by a user of a tenant branch.
type Task struct {
	entities.TrackableEntity
	entities.SoftDeleteFields
	entities.RowVersionFields
	entities.RowLevelSecurityFields
	entities.TenantFields
	entities.BranchFields
	Title       string  `gorm:"type:varchar(256);not null;index" json:"title" validate:"required,max=256"`
	Description *string `gorm:"type:text" json:"description,omitempty" validate:"omitempty,max=1024"`
	State       string  `gorm:"type:varchar(16);not null" json:"state" validate:"oneof=todo doing done"`
}

// Validate checks the task and reports the invalid fields as a result.
func (t *Task) Validate() result.Result {
	return result.FromValidation(validator.New().Struct(t))
}

// Normalize fills defaults before validation.
func (t *Task) Normalize() {
	if t.State == "" {
		t.State = StateTodo
	}
}

// TaskQuery filters task listings
type TaskQuery struct {
	Title     string `validate:"omitempty,max=256"`
	State     string `validate:"omitempty,oneof=todo doing done"`
	SortBy    string `validate:"omitempty,oneof=id title state created_date_time"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
	Limit     int    `validate:"omitempty,min=1,max=100"`
	Offset    int    `validate:"omitempty,min=0"`
}

// NewTaskQuery creates a TaskQuery with default values
func NewTaskQuery() *TaskQuery {
	return &TaskQuery{Limit: 20}
}

// Validate for validating TaskQuery struct
func (q *TaskQuery) Validate() error {
	if err := validator.New().Struct(q); err != nil {
		return fmt.Errorf("validation failed for TaskQuery: %w", err)
	}
	return nil
}
