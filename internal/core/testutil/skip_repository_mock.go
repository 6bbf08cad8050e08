package testutil

import (
	"github.com/fpsh/fpsh/internal/core/domain/skipset"
)

// MockSkipRepository is an in-memory implementation of ports.SkipRepository.
type MockSkipRepository struct {
	Set *skipset.Set

	LoadErr    error
	PersistErr error

	// PersistCalls counts persists, which must follow every mutation.
	PersistCalls int
}

// NewMockSkipRepository returns a repository seeded with the given IDs.
func NewMockSkipRepository(ids ...string) *MockSkipRepository {
	return &MockSkipRepository{Set: skipset.New(ids...)}
}

func (m *MockSkipRepository) Load() (*skipset.Set, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return skipset.New(m.Set.IDs()...), nil
}

func (m *MockSkipRepository) Persist(set *skipset.Set) error {
	if m.PersistErr != nil {
		return m.PersistErr
	}
	m.Set = skipset.New(set.IDs()...)
	m.PersistCalls++
	return nil
}
