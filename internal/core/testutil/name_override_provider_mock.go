package testutil

// MockNameOverrideProvider is a mock implementation of
// ports.NameOverrideProvider.
type MockNameOverrideProvider struct {
	OverridesFunc func() (map[string]string, error)
}

func (m *MockNameOverrideProvider) Overrides() (map[string]string, error) {
	if m.OverridesFunc != nil {
		return m.OverridesFunc()
	}
	return map[string]string{}, nil
}
