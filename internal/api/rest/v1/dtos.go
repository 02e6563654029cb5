package v1

import (
	"fmt"
	"time"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/result"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/tasks"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message  string                     `json:"message"`
	Failures []result.ValidationFailure `json:"failures,omitempty"`
}

// CreateTaskRequest is the body of POST /tasks.
type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required,max=256"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1024"`
	State       string  `json:"state,omitempty" validate:"omitempty,oneof=todo doing done"`
}

// Validate for validating CreateTaskRequest struct
func (r *CreateTaskRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return fmt.Errorf("validation failed for CreateTaskRequest: %w", err)
	}
	return nil
}

// EditTaskRequest is the body of PUT /tasks/:id. Version must be the version
// returned when the task was read.
type EditTaskRequest struct {
	Title       string  `json:"title" validate:"required,max=256"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1024"`
	State       string  `json:"state" validate:"required,oneof=todo doing done"`
	Version     int64   `json:"version" validate:"min=0"`
}

// Validate for validating EditTaskRequest struct
func (r *EditTaskRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return fmt.Errorf("validation failed for EditTaskRequest: %w", err)
	}
	return nil
}

// TaskResponse is the representation of a task returned by the API.
type TaskResponse struct {
	ID               int64      `json:"id"`
	Title            string     `json:"title"`
	Description      *string    `json:"description,omitempty"`
	State            string     `json:"state"`
	Version          int64      `json:"version"`
	UserID           int64      `json:"userId"`
	CreatedDateTime  time.Time  `json:"createdDateTime"`
	ModifiedDateTime *time.Time `json:"modifiedDateTime,omitempty"`
}

func newTaskResponse(task *tasks.Task) TaskResponse {
	return TaskResponse{
		ID:               task.ID,
		Title:            task.Title,
		Description:      task.Description,
		State:            task.State,
		Version:          task.Version,
		UserID:           task.UserID,
		CreatedDateTime:  task.CreatedDateTime,
		ModifiedDateTime: task.ModifiedDateTime,
	}
}

// TokenRequest is the body of POST /auth/token.
type TokenRequest struct {
	UserName string `json:"userName" validate:"required,max=256"`
	Password string `json:"password" validate:"required"`
}

// Validate for validating TokenRequest struct
func (r *TokenRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return fmt.Errorf("validation failed for TokenRequest: %w", err)
	}
	return nil
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}
