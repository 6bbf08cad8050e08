package testutil

import (
	"context"
	"errors"
)

// MockCommandExecutor is a mock implementation of ports.CommandExecutor.
type MockCommandExecutor struct {
	ExecuteFunc func(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// Execute calls the mock ExecuteFunc.
func (m *MockCommandExecutor) Execute(ctx context.Context, name string, args ...string) (string, string, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, name, args...)
	}
	return "", "", errors.New("MockCommandExecutor.ExecuteFunc not implemented")
}
