package testutil

import (
	"github.com/fpsh/fpsh/internal/core/domain/aliasfile"
)

/*
MockAliasRepository is an in-memory implementation of ports.AliasRepository.
Unlike the function-field mocks, it defaults to a working store so engine
tests can assert on the resulting file content; individual behaviors can
still be overridden.
*/
type MockAliasRepository struct {
	Store *aliasfile.Store

	LoadErr    error
	PersistErr error

	// UpdateCalls counts completed read-modify-write cycles.
	UpdateCalls int
}

// NewMockAliasRepository returns a repository seeded by parsing text.
func NewMockAliasRepository(text string) *MockAliasRepository {
	return &MockAliasRepository{Store: aliasfile.Parse(text)}
}

func (m *MockAliasRepository) Load() (*aliasfile.Store, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	// Round-trip through the serialized form, like the file-backed
	// repository does.
	return aliasfile.Parse(m.Store.Serialize()), nil
}

func (m *MockAliasRepository) Update(fn func(*aliasfile.Store) error) error {
	if m.LoadErr != nil {
		return m.LoadErr
	}
	store, err := m.Load()
	if err != nil {
		return err
	}
	if err := fn(store); err != nil {
		return err
	}
	if m.PersistErr != nil {
		return m.PersistErr
	}
	m.Store = store
	m.UpdateCalls++
	return nil
}

func (m *MockAliasRepository) Path() string {
	return "/tmp/aliases"
}
