//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/result"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/tasks"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/persistence"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestContext(method, url, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, url, nil)
	} else {
		req, _ = http.NewRequest(method, url, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func TestTaskHandler_Create_Success(t *testing.T) {
	mockTaskService := new(MockTaskService)
	handler := NewTaskHandler(mockTaskService)

	mockTaskService.
		On("Create", mock.Anything, mock.MatchedBy(func(task *tasks.Task) bool { return task.Title == "write docs" })).
		Run(func(args mock.Arguments) {
			task := args.Get(1).(*tasks.Task)
			task.ID = 7
			task.State = tasks.StateTodo
			task.CreatedDateTime = time.Now()
		}).
		Return(result.Ok(), nil)

	c, w := newTestContext("POST", "/tasks", `{"title": "write docs"}`)
	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":7`)
	mockTaskService.AssertExpectations(t)
}

func TestTaskHandler_Create_InvalidRequest(t *testing.T) {
	mockTaskService := new(MockTaskService)
	handler := NewTaskHandler(mockTaskService)

	c, w := newTestContext("POST", "/tasks", `{"state": "todo"}`)
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Title is required")
	mockTaskService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTaskHandler_Create_BusinessRuleFailure(t *testing.T) {
	mockTaskService := new(MockTaskService)
	handler := NewTaskHandler(mockTaskService)

	mockTaskService.On("Create", mock.Anything, mock.Anything).
		Return(result.Fail("a task with this title already exists", result.ValidationFailure{MemberName: "Title", Message: "duplicate"}), nil)

	c, w := newTestContext("POST", "/tasks", `{"title": "release"}`)
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
	assert.Contains(t, w.Body.String(), `"memberName":"Title"`)
}

func TestTaskHandler_Create_ServiceError(t *testing.T) {
	mockTaskService := new(MockTaskService)
	handler := NewTaskHandler(mockTaskService)

	mockTaskService.On("Create", mock.Anything, mock.Anything).Return(result.Result{}, errors.New("db down"))

	c, _ := newTestContext("POST", "/tasks", `{"title": "release"}`)
	handler.Create(c)

	assert.Len(t, c.Errors, 1, "infrastructure errors are left to the error handler")
}

func TestTaskHandler_List_Success(t *testing.T) {
	mockTaskService := new(MockTaskService)
	handler := NewTaskHandler(mockTaskService)

	task := &tasks.Task{Title: "first", State: tasks.StateDoing}
	task.ID = 1
	mockTaskService.
		On("List", mock.Anything, mock.MatchedBy(func(q *tasks.TaskQuery) bool {
			return q.State == tasks.StateDoing && q.Limit == 5
		})).
		Return([]*tasks.Task{task}, nil)

	c, w := newTestContext("GET", "/tasks?state=doing&limit=5", "")
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"first"`)
	mockTaskService.AssertExpectations(t)
}

func TestTaskHandler_List_InvalidQuery(t *testing.T) {
	handler := NewTaskHandler(new(MockTaskService))

	c, w := newTestContext("GET", "/tasks?limit=abc", "")
	handler.List(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	c, w = newTestContext("GET", "/tasks?sortOrder=sideways", "")
	handler.List(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaskHandler_GetByID_NotFound(t *testing.T) {
	mockTaskService := new(MockTaskService)
	handler := NewTaskHandler(mockTaskService)

	mockTaskService.On("GetByID", mock.Anything, int64(9)).Return(nil, tasks.ErrTaskNotFound)

	c, w := newTestContext("GET", "/tasks/9", "")
	c.Params = gin.Params{gin.Param{Key: "id", Value: "9"}}
	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "task with id 9 not found")
}

func TestTaskHandler_GetByID_InvalidID(t *testing.T) {
	handler := NewTaskHandler(new(MockTaskService))

	c, w := newTestContext("GET", "/tasks/abc", "")
	c.Params = gin.Params{gin.Param{Key: "id", Value: "abc"}}
	handler.GetByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaskHandler_Edit_Conflict(t *testing.T) {
	mockTaskService := new(MockTaskService)
	handler := NewTaskHandler(mockTaskService)

	mockTaskService.
		On("Edit", mock.Anything, mock.MatchedBy(func(task *tasks.Task) bool {
			return task.ID == 3 && task.Version == 1
		})).
		Return(result.Result{}, persistence.ErrConcurrencyConflict)

	c, w := newTestContext("PUT", "/tasks/3", `{"title": "plan", "state": "done", "version": 1}`)
	c.Params = gin.Params{gin.Param{Key: "id", Value: "3"}}
	handler.Edit(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockTaskService.AssertExpectations(t)
}

func TestTaskHandler_Edit_Success(t *testing.T) {
	mockTaskService := new(MockTaskService)
	handler := NewTaskHandler(mockTaskService)

	mockTaskService.On("Edit", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(1).(*tasks.Task).Version = 2
		}).
		Return(result.Ok(), nil)

	c, w := newTestContext("PUT", "/tasks/3", `{"title": "plan", "state": "done", "version": 1}`)
	c.Params = gin.Params{gin.Param{Key: "id", Value: "3"}}
	handler.Edit(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version":2`)
}

func TestTaskHandler_DeleteByID_Success(t *testing.T) {
	mockTaskService := new(MockTaskService)
	handler := NewTaskHandler(mockTaskService)

	mockTaskService.On("Delete", mock.Anything, int64(4)).Return(nil)

	c, _ := newTestContext("DELETE", "/tasks/4", "")
	c.Params = gin.Params{gin.Param{Key: "id", Value: "4"}}
	handler.DeleteByID(c)

	assert.Equal(t, http.StatusNoContent, c.Writer.Status())
	mockTaskService.AssertExpectations(t)
}
