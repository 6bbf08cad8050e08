package ports

import "github.com/fpsh/fpsh/internal/core/domain/aliasfile"

/*
AliasRepository defines the interface for reading and rewriting the persisted
alias file. This is a driven port, implemented by a repository adapter that
understands the on-disk format and performs atomic replacement.
*/
type AliasRepository interface {
	// Load parses the alias file into a store. An absent file yields an
	// empty store; an unreadable one is an error.
	Load() (*aliasfile.Store, error)

	/*
	   Update performs one read-modify-write cycle: it loads the current
	   store, applies fn, and persists the result atomically. If fn returns
	   an error, nothing is written. When advisory locking is enabled the
	   lock is held only for this window, never across operator prompts.
	*/
	Update(fn func(*aliasfile.Store) error) error

	// Path returns the alias file location, for operator-facing messages.
	Path() string
}
