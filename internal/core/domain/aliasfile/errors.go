package aliasfile

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that the requested alias name or app ID has no
// corresponding entry in the store.
var ErrNotFound = errors.New("alias entry not found")

// ConflictError indicates that a desired alias name is already bound to a
// different application and no resolution was supplied.
type ConflictError struct {
	Name          string
	ExistingAppID string
	NewAppID      string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("alias %q is already bound to %s (wanted for %s)",
		e.Name, e.ExistingAppID, e.NewAppID)
}
