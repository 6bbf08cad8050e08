package testutil

import (
	"context"
	"errors"

	"github.com/fpsh/fpsh/internal/core/domain/app"
)

// MockAppInventory is a mock implementation of ports.AppInventory.
type MockAppInventory struct {
	ListInstalledFunc func(ctx context.Context) ([]app.InstalledApp, error)
	DisplayNameFunc   func(ctx context.Context, appID string) (string, error)
	ExistsFunc        func(ctx context.Context, appID string) (bool, error)
}

func (m *MockAppInventory) ListInstalled(ctx context.Context) ([]app.InstalledApp, error) {
	if m.ListInstalledFunc != nil {
		return m.ListInstalledFunc(ctx)
	}
	return nil, errors.New("MockAppInventory: ListInstalledFunc not implemented")
}

func (m *MockAppInventory) DisplayName(ctx context.Context, appID string) (string, error) {
	if m.DisplayNameFunc != nil {
		return m.DisplayNameFunc(ctx, appID)
	}
	return "", nil
}

func (m *MockAppInventory) Exists(ctx context.Context, appID string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, appID)
	}
	return false, errors.New("MockAppInventory: ExistsFunc not implemented")
}
