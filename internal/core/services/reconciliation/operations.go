package reconciliation

import (
	"context"
	"fmt"

	"github.com/fpsh/fpsh/internal/core/domain/aliasfile"
	"github.com/fpsh/fpsh/internal/core/domain/app"
	"github.com/fpsh/fpsh/internal/core/ports"
)

// Add creates or updates the alias for a single application. The app must be
// installed; aliasName may be empty, in which case a name is derived.
func (s *service) Add(ctx context.Context, appID, aliasName string, opts ports.SyncOptions) (ports.Result, error) {
	if !app.IsValidID(appID) {
		return ports.Result{AppID: appID}, fmt.Errorf("%q is not a valid application id", appID)
	}

	exists, err := s.inventory.Exists(ctx, appID)
	if err != nil {
		return ports.Result{AppID: appID}, err
	}
	if !exists {
		return ports.Result{AppID: appID}, fmt.Errorf("application %s: %w", appID, aliasfile.ErrNotFound)
	}

	displayName, err := s.inventory.DisplayName(ctx, appID)
	if err != nil {
		// Metadata is best-effort; derivation falls back to the id tail.
		s.logger.Warn().Str("app", appID).Err(err).Msg("could not fetch display name")
		displayName = ""
	}

	overrides, err := s.loadOverrides()
	if err != nil {
		return ports.Result{AppID: appID}, err
	}

	// An explicit add bypasses the skip set.
	res := s.reconcileOne(app.InstalledApp{ID: appID, DisplayName: displayName}, aliasName, nil, overrides, opts)
	return res, res.Err
}

// Rename rebinds oldName to newName for the same application, atomically,
// under one confirmation.
func (s *service) Rename(ctx context.Context, oldName, newName string, opts ports.SyncOptions) error {
	if newName == "" {
		return fmt.Errorf("new alias name cannot be empty")
	}
	if oldName == newName {
		return nil
	}

	store, err := s.aliases.Load()
	if err != nil {
		return err
	}
	entry := store.FindByAliasName(oldName)
	if entry == nil {
		return fmt.Errorf("alias %q: %w", oldName, aliasfile.ErrNotFound)
	}
	if other := store.FindByAliasName(newName); other != nil && other.AppID != entry.AppID {
		return &aliasfile.ConflictError{Name: newName, ExistingAppID: other.AppID, NewAppID: entry.AppID}
	}

	ok, err := s.confirm(opts, fmt.Sprintf("Rename alias %q to %q for %s?", oldName, newName, entry.AppID))
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	return s.aliases.Update(func(st *aliasfile.Store) error {
		// Re-check against the store seen inside the write window.
		current := st.FindByAliasName(oldName)
		if current == nil {
			return fmt.Errorf("alias %q: %w", oldName, aliasfile.ErrNotFound)
		}
		if other := st.FindByAliasName(newName); other != nil && other.AppID != current.AppID {
			return &aliasfile.ConflictError{Name: newName, ExistingAppID: other.AppID, NewAppID: current.AppID}
		}
		st.Remove(oldName)
		st.Upsert(current.AppID, newName)
		return nil
	})
}

// Remove deletes all entries whose alias name or app ID equals key.
func (s *service) Remove(key string) error {
	return s.aliases.Update(func(st *aliasfile.Store) error {
		if st.Remove(key) == 0 {
			return fmt.Errorf("%q: %w", key, aliasfile.ErrNotFound)
		}
		return nil
	})
}

/*
CheckStale finds entries whose application is absent from the current
installation and consults the gate for each one independently; declining one
entry does not block the remaining ones.
*/
func (s *service) CheckStale(ctx context.Context, opts ports.SyncOptions) (ports.StaleReport, error) {
	var report ports.StaleReport

	installed, err := s.inventory.ListInstalled(ctx)
	if err != nil {
		return report, err
	}
	installedSet := make(map[string]struct{}, len(installed))
	for _, a := range installed {
		installedSet[a.ID] = struct{}{}
	}

	store, err := s.aliases.Load()
	if err != nil {
		return report, err
	}

	for _, entry := range store.Entries() {
		if _, ok := installedSet[entry.AppID]; ok {
			continue
		}
		ok, err := s.confirm(opts, fmt.Sprintf("Alias %q points to %s, which is no longer installed. Remove it?", entry.Name, entry.AppID))
		if err != nil {
			return report, err
		}
		if !ok {
			report.Kept = append(report.Kept, entry)
			continue
		}
		err = s.aliases.Update(func(st *aliasfile.Store) error {
			st.Remove(entry.Name)
			return nil
		})
		if err != nil {
			return report, err
		}
		report.Removed = append(report.Removed, entry)
		s.logger.Info().Str("alias", entry.Name).Str("app", entry.AppID).Msg("stale alias removed")
	}
	return report, nil
}

// PurgeAll removes every entry line after a single confirmation, preserving
// passengers. It returns the number removed, or -1 if the operator declined.
func (s *service) PurgeAll(opts ports.SyncOptions) (int, error) {
	ok, err := s.confirm(opts, fmt.Sprintf("Remove ALL aliases from %s?", s.aliases.Path()))
	if err != nil {
		return 0, err
	}
	if !ok {
		return -1, nil
	}

	removed := 0
	err = s.aliases.Update(func(st *aliasfile.Store) error {
		removed = st.RemoveAllEntries()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// Skip adds appID to the skip set and persists immediately. Idempotent.
func (s *service) Skip(appID string) error {
	set, err := s.skips.Load()
	if err != nil {
		return err
	}
	set.Add(appID)
	return s.skips.Persist(set)
}

// Unskip removes appID from the skip set and persists immediately. Idempotent.
func (s *service) Unskip(appID string) error {
	set, err := s.skips.Load()
	if err != nil {
		return err
	}
	set.Remove(appID)
	return s.skips.Persist(set)
}

// ListSkipped returns the skipped app IDs in sorted order.
func (s *service) ListSkipped() ([]string, error) {
	set, err := s.skips.Load()
	if err != nil {
		return nil, err
	}
	return set.IDs(), nil
}

// ListEntries returns all alias entries in file order plus the passenger
// line count.
func (s *service) ListEntries() ([]aliasfile.Entry, int, error) {
	store, err := s.aliases.Load()
	if err != nil {
		return nil, 0, err
	}
	return store.Entries(), store.PassengerCount(), nil
}
