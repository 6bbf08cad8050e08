package testutil

import "errors"

// MockConfirmationGate is a mock implementation of ports.ConfirmationGate.
type MockConfirmationGate struct {
	ConfirmFunc  func(prompt string) (bool, error)
	ReadNameFunc func(prompt string) (string, error)

	// Prompts records every question asked, in order.
	Prompts []string
}

func (m *MockConfirmationGate) Confirm(prompt string) (bool, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(prompt)
	}
	return false, errors.New("MockConfirmationGate: ConfirmFunc not implemented")
}

func (m *MockConfirmationGate) ReadName(prompt string) (string, error) {
	if m.ReadNameFunc != nil {
		return m.ReadNameFunc(prompt)
	}
	return "", errors.New("MockConfirmationGate: ReadNameFunc not implemented")
}
