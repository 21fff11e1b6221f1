// Package mocks provides testify mocks for collaborator interfaces.
package mocks

import (
	"context"

	"github.com/VideoEngager/aws-videoengager-addons/pkg/connect"
	"github.com/stretchr/testify/mock"
)

// MockTaskStarter is a mock implementation of the connect.TaskStarter
// interface.
type MockTaskStarter struct {
	mock.Mock
}

func (m *MockTaskStarter) StartTask(ctx context.Context, input connect.TaskInput) (string, error) {
	args := m.Called(ctx, input)

	return args.String(0), args.Error(1)
}
