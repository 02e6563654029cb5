//go:build unit
// +build unit

package v1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateTaskRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   CreateTaskRequest
		shouldErr bool
	}{
		{"Valid title only", CreateTaskRequest{Title: "write docs"}, false},
		{"Valid with state", CreateTaskRequest{Title: "write docs", State: "doing"}, false},
		{"Missing title", CreateTaskRequest{State: "todo"}, true},
		{"Unknown state", CreateTaskRequest{Title: "write docs", State: "blocked"}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestEditTaskRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   EditTaskRequest
		shouldErr bool
	}{
		{"Valid", EditTaskRequest{Title: "t", State: "done", Version: 2}, false},
		{"State required", EditTaskRequest{Title: "t"}, true},
		{"Negative version", EditTaskRequest{Title: "t", State: "todo", Version: -1}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestTokenRequest_Validate(t *testing.T) {
	require.NoError(t, (&TokenRequest{UserName: "admin", Password: "secret"}).Validate())
	require.Error(t, (&TokenRequest{UserName: "admin"}).Validate())
}
