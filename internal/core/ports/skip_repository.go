package ports

import "github.com/fpsh/fpsh/internal/core/domain/skipset"

// SkipRepository defines the interface for loading and persisting the
// skip-list file. Mutations are persisted immediately, never batched.
type SkipRepository interface {
	// Load reads the skip list. An absent file yields an empty set.
	Load() (*skipset.Set, error)

	// Persist overwrites the skip file with its fixed header and the set's
	// IDs in sorted order.
	Persist(set *skipset.Set) error
}
