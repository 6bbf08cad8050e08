package ports

import (
	"context"

	"github.com/fpsh/fpsh/internal/core/domain/aliasfile"
)

// Action is the terminal outcome of the per-application decision process.
type Action string

const (
	ActionCreated         Action = "created"
	ActionKept            Action = "kept"
	ActionOverwritten     Action = "overwritten"
	ActionRenamed         Action = "renamed"
	ActionSkipped         Action = "skipped"
	ActionSkippedConflict Action = "skipped_conflict"
	ActionFailed          Action = "failed"
)

// SyncOptions controls one reconciliation pass.
type SyncOptions struct {
	// Interactive enables the conflict-resolution prompt loop.
	Interactive bool
	// Force overwrites differing aliases without confirmation.
	Force bool
	// AssumeYes answers every confirmation affirmatively without prompting.
	AssumeYes bool
}

// Result is the outcome for a single application within a pass.
type Result struct {
	AppID  string
	Alias  string
	Action Action
	Err    error
}

// Report holds per-application results of a bulk pass. When a pass aborts,
// Results still carries everything processed before the failure.
type Report struct {
	Results []Result
}

// Count returns how many results resolved to the given action.
func (r Report) Count(a Action) int {
	n := 0
	for _, res := range r.Results {
		if res.Action == a {
			n++
		}
	}
	return n
}

// StaleReport holds the outcome of a stale-entry pass.
type StaleReport struct {
	Removed []aliasfile.Entry
	Kept    []aliasfile.Entry
}

/*
ReconciliationService defines the contract for the alias-file reconciliation
engine: bulk synchronization, single adds, renames, removals, stale-entry
handling, purge, and skip-set management.
*/
type ReconciliationService interface {
	// SyncAll reconciles every installed application against the alias file.
	// Existing aliases are never silently renamed in bulk mode.
	SyncAll(ctx context.Context, opts SyncOptions) (Report, error)

	// Add creates or updates the alias for a single installed application.
	// aliasName may be empty, in which case a name is derived.
	Add(ctx context.Context, appID, aliasName string, opts SyncOptions) (Result, error)

	// Rename rebinds an existing alias to a new name under one confirmation.
	Rename(ctx context.Context, oldName, newName string, opts SyncOptions) error

	// Remove deletes all entries matching the given alias name or app ID.
	Remove(key string) error

	// CheckStale finds entries whose app is no longer installed and asks,
	// entry by entry, whether to remove them.
	CheckStale(ctx context.Context, opts SyncOptions) (StaleReport, error)

	// PurgeAll removes every entry line after a single whole-operation
	// confirmation, preserving all passenger lines. It returns the number
	// of entries removed, or -1 if the operator declined.
	PurgeAll(opts SyncOptions) (int, error)

	// Skip adds appID to the skip set; Unskip removes it. Both persist
	// immediately and are idempotent.
	Skip(appID string) error
	Unskip(appID string) error

	// ListSkipped returns the skipped app IDs in sorted order.
	ListSkipped() ([]string, error)

	// ListEntries returns all alias entries in file order plus the number
	// of passenger lines travelling with them.
	ListEntries() ([]aliasfile.Entry, int, error)

	// Snapshot writes a YAML export of the current entries and skip set.
	Snapshot(path string) error
}
