package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/result"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/tasks"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/persistence"

	"github.com/gin-gonic/gin"
)

// TaskHandler defines the interface for handling task-related operations
type TaskHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Edit(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type taskHandler struct {
	taskService tasks.TaskService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService tasks.TaskService) TaskHandler {
	return &taskHandler{taskService: taskService}
}

// Create handles the POST request to create a task
// @Summary Create a task
// @Tags Task
// @Accept json
// @Produce json
// @Param requestBody body CreateTaskRequest true "Task"
// @Success 201 {object} TaskResponse
// @Failure 400 {object} ErrorResponse
// @Router /tasks [post]
func (handler *taskHandler) Create(ctx *gin.Context) {
	var request CreateTaskRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid task data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, validationResponse(err))
		return
	}

	task := &tasks.Task{Title: request.Title, Description: request.Description, State: request.State}
	res, err := handler.taskService.Create(ctx.Request.Context(), task)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	if res.Failed() {
		ctx.JSON(http.StatusBadRequest, failedResponse(res))
		return
	}

	ctx.JSON(http.StatusCreated, newTaskResponse(task))
}

// List handles the GET request to list tasks with optional query parameters
// @Summary List tasks
// @Tags Task
// @Produce json
// @Param title query string false "Title contains"
// @Param state query string false "State"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} TaskResponse
// @Failure 400 {object} ErrorResponse
// @Router /tasks [get]
func (handler *taskHandler) List(ctx *gin.Context) {
	query := tasks.NewTaskQuery()
	query.Title = ctx.Query("title")
	query.State = ctx.Query("state")
	query.SortBy = ctx.Query("sortBy")
	query.SortOrder = ctx.Query("sortOrder")

	if limit := ctx.Query("limit"); len(limit) > 0 {
		n, err := strconv.Atoi(limit)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "limit must be a number"})
			return
		}
		query.Limit = n
	}
	if offset := ctx.Query("offset"); len(offset) > 0 {
		n, err := strconv.Atoi(offset)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "offset must be a number"})
			return
		}
		query.Offset = n
	}

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, validationResponse(err))
		return
	}

	list, err := handler.taskService.List(ctx.Request.Context(), query)
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	response := make([]TaskResponse, 0, len(list))
	for _, task := range list {
		response = append(response, newTaskResponse(task))
	}
	ctx.JSON(http.StatusOK, response)
}

// GetByID handles the GET request to retrieve a task by ID
// @Summary Retrieve a task by ID
// @Tags Task
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} TaskResponse
// @Failure 404 {object} ErrorResponse
// @Router /tasks/{id} [get]
func (handler *taskHandler) GetByID(ctx *gin.Context) {
	id, ok := taskID(ctx)
	if !ok {
		return
	}

	task, err := handler.taskService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		handleTaskError(ctx, id, err)
		return
	}
	ctx.JSON(http.StatusOK, newTaskResponse(task))
}

// Edit handles the PUT request to update a task
// @Summary Update a task
// @Tags Task
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param requestBody body EditTaskRequest true "Task"
// @Success 200 {object} TaskResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /tasks/{id} [put]
func (handler *taskHandler) Edit(ctx *gin.Context) {
	id, ok := taskID(ctx)
	if !ok {
		return
	}

	var request EditTaskRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid task data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, validationResponse(err))
		return
	}

	task := &tasks.Task{Title: request.Title, Description: request.Description, State: request.State}
	task.ID = id
	task.Version = request.Version

	res, err := handler.taskService.Edit(ctx.Request.Context(), task)
	if err != nil {
		handleTaskError(ctx, id, err)
		return
	}
	if res.Failed() {
		ctx.JSON(http.StatusBadRequest, failedResponse(res))
		return
	}

	ctx.JSON(http.StatusOK, newTaskResponse(task))
}

// DeleteByID handles the DELETE request to delete a task by ID
// @Summary Delete a task by ID
// @Tags Task
// @Param id path int true "Task ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /tasks/{id} [delete]
func (handler *taskHandler) DeleteByID(ctx *gin.Context) {
	id, ok := taskID(ctx)
	if !ok {
		return
	}

	if err := handler.taskService.Delete(ctx.Request.Context(), id); err != nil {
		handleTaskError(ctx, id, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func taskID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid task id %q", ctx.Param("id"))})
		return 0, false
	}
	return id, true
}

func handleTaskError(ctx *gin.Context, id int64, err error) {
	switch {
	case errors.Is(err, tasks.ErrTaskNotFound):
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("task with id %d not found", id)})
	case errors.Is(err, persistence.ErrConcurrencyConflict):
		ctx.JSON(http.StatusConflict, ErrorResponse{Message: "the task was changed by another user, reload and try again"})
	default:
		_ = ctx.Error(err)
	}
}

func validationResponse(err error) ErrorResponse {
	return failedResponse(result.FromValidation(err))
}

func failedResponse(res result.Result) ErrorResponse {
	return ErrorResponse{Message: res.Message(), Failures: res.Failures()}
}
