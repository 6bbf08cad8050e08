package ports

// NameOverrideProvider defines the interface for sourcing user-pinned alias
// names from a predefined list, like a configuration file. Overrides are
// consulted before derivation.
type NameOverrideProvider interface {
	// Overrides loads the app-ID-to-alias-name overrides. A missing
	// configuration file yields an empty map.
	Overrides() (map[string]string, error)
}
