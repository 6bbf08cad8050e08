/*
Package aliasfile defines the in-memory model of the persisted alias file:
an ordered sequence of lines, each either a recognized alias entry or an
opaque passenger line carried verbatim across rewrites.
*/
package aliasfile

import (
	"fmt"
	"regexp"
	"strings"
)

/*
Entry represents one persisted binding from a short alias name to the
Flatpak run command for a single application. This is a core domain entity.
*/
type Entry struct {
	Name  string
	AppID string
}

// Format renders the entry in the exact persisted form. Any deviation from
// this form is not recognized by Parse and survives only as a passenger line.
func (e Entry) Format() string {
	return fmt.Sprintf("alias %s=\"flatpak run %s\"", e.Name, e.AppID)
}

// line is one physical line of the file. entry is nil for passenger lines,
// in which case raw holds the original text verbatim.
type line struct {
	raw   string
	entry *Entry
}

// entryLineRegex matches exactly the persisted entry grammar:
// alias <name>="flatpak run <app_id>". Extra spaces or different quoting
// make the line a passenger.
var entryLineRegex = regexp.MustCompile(`^alias ([^=\s"]+)="flatpak run ([^"\s]+)"$`)

/*
Store is the ordered in-memory representation of one alias file. It owns its
line sequence exclusively for the duration of a single process invocation;
the file on disk remains the sole durable ground truth.
*/
type Store struct {
	lines []line
}

// NewStore returns an empty store, equivalent to parsing an absent file.
func NewStore() *Store {
	return &Store{}
}

// Parse reconstructs a store from persisted text. Every line that does not
// match the entry grammar is retained as a passenger in its original position.
func Parse(text string) *Store {
	s := &Store{}
	if text == "" {
		return s
	}
	raw := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for _, l := range raw {
		if m := entryLineRegex.FindStringSubmatch(l); m != nil {
			s.lines = append(s.lines, line{entry: &Entry{Name: m[1], AppID: m[2]}})
		} else {
			s.lines = append(s.lines, line{raw: l})
		}
	}
	return s
}

// Serialize renders passenger lines and entry lines interleaved in their
// current order, one per line, with a trailing newline when non-empty.
func (s *Store) Serialize() string {
	if len(s.lines) == 0 {
		return ""
	}
	var b strings.Builder
	for _, l := range s.lines {
		if l.entry != nil {
			b.WriteString(l.entry.Format())
		} else {
			b.WriteString(l.raw)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// FindByAppID returns the first entry bound to appID in file order, or nil.
// Later duplicate entries for the same app are ignored by lookup but remain
// removable.
func (s *Store) FindByAppID(appID string) *Entry {
	for _, l := range s.lines {
		if l.entry != nil && l.entry.AppID == appID {
			e := *l.entry
			return &e
		}
	}
	return nil
}

// FindByAliasName returns the first entry with the exact alias name, or nil.
func (s *Store) FindByAliasName(name string) *Entry {
	for _, l := range s.lines {
		if l.entry != nil && l.entry.Name == name {
			e := *l.entry
			return &e
		}
	}
	return nil
}

/*
Upsert removes every existing entry bound to appID (whatever its current
name) and every existing entry named aliasName (whatever its app), then
appends a fresh entry at the end. The two-sided removal guarantees the
post-condition "exactly one entry for this app AND exactly one entry for
this name" in a single idempotent operation.
*/
func (s *Store) Upsert(appID, aliasName string) {
	kept := s.lines[:0]
	for _, l := range s.lines {
		if l.entry != nil && (l.entry.AppID == appID || l.entry.Name == aliasName) {
			continue
		}
		kept = append(kept, l)
	}
	s.lines = append(kept, line{entry: &Entry{Name: aliasName, AppID: appID}})
}

// Remove deletes all entries whose alias name or app ID equals key exactly
// and reports how many were removed. Passenger lines are never touched.
func (s *Store) Remove(key string) int {
	removed := 0
	kept := s.lines[:0]
	for _, l := range s.lines {
		if l.entry != nil && (l.entry.Name == key || l.entry.AppID == key) {
			removed++
			continue
		}
		kept = append(kept, l)
	}
	s.lines = kept
	return removed
}

// RemoveAllEntries deletes every entry line unconditionally, preserving all
// passenger lines, and reports how many entries were removed.
func (s *Store) RemoveAllEntries() int {
	removed := 0
	kept := s.lines[:0]
	for _, l := range s.lines {
		if l.entry != nil {
			removed++
			continue
		}
		kept = append(kept, l)
	}
	s.lines = kept
	return removed
}

// Entries returns all entries in file order, duplicates included.
func (s *Store) Entries() []Entry {
	var out []Entry
	for _, l := range s.lines {
		if l.entry != nil {
			out = append(out, *l.entry)
		}
	}
	return out
}

// PassengerCount returns how many opaque lines the store carries.
func (s *Store) PassengerCount() int {
	n := 0
	for _, l := range s.lines {
		if l.entry == nil {
			n++
		}
	}
	return n
}
