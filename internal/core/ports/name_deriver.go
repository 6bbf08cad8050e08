package ports

/*
NameDeriver defines the contract for turning an application identifier (and
optional display-name metadata) into a normalized candidate alias name.
This is a driven port, representing a pure domain capability.
*/
type NameDeriver interface {
	// Derive returns the candidate alias name for the given identifier.
	// An empty result is a derivation failure the caller must handle;
	// an empty alias name is never persisted.
	Derive(appID, displayName string) string

	// Sanitize applies only the character normalization step, used as the
	// last-resort fallback when full derivation produces an empty name.
	Sanitize(s string) string
}
