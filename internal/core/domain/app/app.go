/*
Package app defines core domain entities for installed Flatpak applications.
*/
package app

import "regexp"

/*
InstalledApp represents one application present in the current Flatpak
installation, as reported by the inventory collaborator. This is a core
domain entity; the set of installed apps is fetched fresh for every
reconciliation pass and never cached.
*/
type InstalledApp struct {
	ID          string
	DisplayName string
}

// idRegex accepts dotted reverse-DNS identifiers: at least two segments of
// alphanumerics/underscores separated by dots, e.g. org.gnome.TextEditor.
var idRegex = regexp.MustCompile(`^[A-Za-z0-9_]+(\.[A-Za-z0-9_]+)+$`)

// IsValidID reports whether s is a well-formed application identifier.
// Inventory adapters must drop anything that fails this check.
func IsValidID(s string) bool {
	return idRegex.MatchString(s)
}
