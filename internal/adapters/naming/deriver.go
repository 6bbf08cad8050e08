/*
Package naming derives human-friendly default alias names from Flatpak
application identifiers and display-name metadata.
*/
package naming

import (
	"regexp"
	"strings"

	"github.com/fpsh/fpsh/internal/core/ports"
)

// knownPrefixes are reverse-DNS prefixes stripped from a candidate only when
// they occur at the very start of the string.
var knownPrefixes = []string{
	"org.", "com.", "net.", "io.", "md.", "de.", "it.", "one.",
}

// knownSuffixes are trailing tokens stripped from a derived name, matched
// case-insensitively. A suffix is never stripped when it would leave an
// empty stem.
var knownSuffixes = []string{
	"-text-editor", "-flatpak", "-community", "-desktop", "-gui2", "-code",
}

var invalidCharsRegex = regexp.MustCompile(`[^a-z0-9-]+`)
var dashRunsRegex = regexp.MustCompile(`-{2,}`)

// Deriver implements ports.NameDeriver. It is a pure function of its inputs
// plus the fixed prefix and suffix tables.
type Deriver struct{}

// NewDeriver creates a new Deriver.
func NewDeriver() ports.NameDeriver {
	return &Deriver{}
}

/*
Derive turns an application identifier into a normalized candidate alias.

When a display name is available and differs from the identifier it is the
starting point; otherwise the segment after the last dot of the identifier
is used. The candidate is lowercased, a leading reverse-DNS prefix is
removed, every character outside [a-z0-9-] becomes a dash, dash runs are
collapsed, and known suffix tokens are trimmed.

An empty result means derivation failed; callers must fall back to
Sanitize on the full identifier rather than persist an empty name.
*/
func (d *Deriver) Derive(appID, displayName string) string {
	candidate := displayName
	if candidate == "" || candidate == appID {
		if i := strings.LastIndex(appID, "."); i >= 0 {
			candidate = appID[i+1:]
		} else {
			candidate = appID
		}
	}

	candidate = strings.ToLower(candidate)
	for _, p := range knownPrefixes {
		if strings.HasPrefix(candidate, p) {
			candidate = candidate[len(p):]
			break
		}
	}

	candidate = d.Sanitize(candidate)
	return stripKnownSuffixes(candidate)
}

// Sanitize replaces every character outside [a-z0-9-] with a dash, collapses
// dash runs, and trims leading and trailing dashes. The input is lowercased
// first so the result is always a valid alias name or empty.
func (d *Deriver) Sanitize(s string) string {
	s = strings.ToLower(s)
	s = invalidCharsRegex.ReplaceAllString(s, "-")
	s = dashRunsRegex.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func stripKnownSuffixes(name string) string {
	for _, suffix := range knownSuffixes {
		if strings.HasSuffix(name, suffix) {
			stem := name[:len(name)-len(suffix)]
			if stem != "" {
				name = stem
			}
		}
	}
	return name
}
