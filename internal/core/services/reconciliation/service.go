/*
Package reconciliation implements the alias-file reconciliation engine: the
per-application decision process (create / keep / overwrite / rename / skip),
stale-entry detection, purge, and skip-set management.
*/
package reconciliation

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fpsh/fpsh/internal/core/domain/aliasfile"
	"github.com/fpsh/fpsh/internal/core/domain/app"
	"github.com/fpsh/fpsh/internal/core/domain/skipset"
	"github.com/fpsh/fpsh/internal/core/ports"
	"github.com/fpsh/fpsh/pkg/logging"
)

type service struct {
	aliases   ports.AliasRepository
	skips     ports.SkipRepository
	inventory ports.AppInventory
	deriver   ports.NameDeriver
	gate      ports.ConfirmationGate
	overrides ports.NameOverrideProvider // may be nil
	logger    zerolog.Logger
}

// NewService creates a new reconciliation service. It panics if any required
// dependency is nil. overrides may be nil, in which case no user-pinned
// names are consulted.
func NewService(
	aliases ports.AliasRepository,
	skips ports.SkipRepository,
	inventory ports.AppInventory,
	deriver ports.NameDeriver,
	gate ports.ConfirmationGate,
	overrides ports.NameOverrideProvider,
) ports.ReconciliationService {
	if aliases == nil {
		panic("aliases repository cannot be nil")
	}
	if skips == nil {
		panic("skip repository cannot be nil")
	}
	if inventory == nil {
		panic("inventory cannot be nil")
	}
	if deriver == nil {
		panic("deriver cannot be nil")
	}
	if gate == nil {
		panic("confirmation gate cannot be nil")
	}
	return &service{
		aliases:   aliases,
		skips:     skips,
		inventory: inventory,
		deriver:   deriver,
		gate:      gate,
		overrides: overrides,
		logger:    logging.GetLogger("reconciliation"),
	}
}

// confirm consults the gate unless assume-yes mode answers for the operator.
func (s *service) confirm(opts ports.SyncOptions, prompt string) (bool, error) {
	if opts.AssumeYes {
		return true, nil
	}
	return s.gate.Confirm(prompt)
}

// loadOverrides returns the user-pinned names, or an empty map when no
// provider is configured.
func (s *service) loadOverrides() (map[string]string, error) {
	if s.overrides == nil {
		return map[string]string{}, nil
	}
	return s.overrides.Overrides()
}

/*
SyncAll reconciles every installed application against the alias file.

Each application is processed independently and its mutation is persisted
before the next one starts, so interrupting the process leaves a consistent
file reflecting all fully processed applications. An inventory failure
aborts the pass; the returned report still carries everything processed
before the failure.
*/
func (s *service) SyncAll(ctx context.Context, opts ports.SyncOptions) (ports.Report, error) {
	var report ports.Report

	installed, err := s.inventory.ListInstalled(ctx)
	if err != nil {
		return report, err
	}

	skips, err := s.skips.Load()
	if err != nil {
		return report, err
	}
	overrides, err := s.loadOverrides()
	if err != nil {
		return report, err
	}

	for _, a := range installed {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("sync aborted: %w", err)
		}
		res := s.reconcileOne(a, "", skips, overrides, opts)
		report.Results = append(report.Results, res)
		if res.Err != nil {
			s.logger.Warn().Str("app", a.ID).Err(res.Err).Msg("application not reconciled")
		} else {
			s.logger.Debug().Str("app", a.ID).Str("alias", res.Alias).Str("action", string(res.Action)).Msg("application reconciled")
		}
	}
	return report, nil
}

/*
reconcileOne runs the per-application decision process. desiredName is empty
in bulk mode. All operator prompts are resolved before the store mutation,
so no lock is ever held across a prompt.
*/
func (s *service) reconcileOne(
	a app.InstalledApp,
	desiredName string,
	skips *skipset.Set,
	overrides map[string]string,
	opts ports.SyncOptions,
) ports.Result {
	res := ports.Result{AppID: a.ID}

	if skips != nil && skips.Contains(a.ID) {
		res.Action = ports.ActionSkipped
		return res
	}

	store, err := s.aliases.Load()
	if err != nil {
		res.Action = ports.ActionFailed
		res.Err = err
		return res
	}

	existing := store.FindByAppID(a.ID)
	if existing != nil {
		// Existing aliases are never silently renamed in bulk mode.
		if desiredName == "" || desiredName == existing.Name {
			res.Alias = existing.Name
			res.Action = ports.ActionKept
			return res
		}
		if !opts.Force {
			ok, err := s.confirm(opts, fmt.Sprintf("Replace alias %q with %q for %s?", existing.Name, desiredName, a.ID))
			if err != nil {
				res.Action = ports.ActionFailed
				res.Err = err
				return res
			}
			if !ok {
				res.Alias = existing.Name
				res.Action = ports.ActionSkipped
				return res
			}
		}
		return s.apply(a.ID, desiredName, ports.ActionOverwritten)
	}

	name := desiredName
	if name == "" {
		name = overrides[a.ID]
	}
	if name == "" {
		name = s.deriver.Derive(a.ID, a.DisplayName)
		if name == "" {
			// Last resort: the sanitized full identifier. Never persist an
			// empty alias name.
			name = s.deriver.Sanitize(a.ID)
		}
		if name == "" {
			res.Action = ports.ActionFailed
			res.Err = fmt.Errorf("could not derive an alias name for %s", a.ID)
			return res
		}
	}

	action := ports.ActionCreated
	if conflict := store.FindByAliasName(name); conflict != nil && conflict.AppID != a.ID {
		name, action = s.resolveConflict(store, a.ID, name, conflict, opts)
		if action == ports.ActionSkippedConflict {
			res.Alias = name
			res.Action = action
			return res
		}
	}
	return s.apply(a.ID, name, action)
}

/*
resolveConflict decides what happens when the suggested name is already
bound to a different application. Interactive mode offers overwrite, a
rename loop, or skip; non-interactive mode has no resolution path other
than overwrite-by-force or default-skip.
*/
func (s *service) resolveConflict(
	store *aliasfile.Store,
	appID, name string,
	conflict *aliasfile.Entry,
	opts ports.SyncOptions,
) (string, ports.Action) {
	if opts.Force {
		return name, ports.ActionOverwritten
	}
	if !opts.Interactive {
		return name, ports.ActionSkippedConflict
	}

	ok, err := s.gate.Confirm(fmt.Sprintf("Alias %q already points to %s. Overwrite for %s?", name, conflict.AppID, appID))
	if err != nil {
		return name, ports.ActionSkippedConflict
	}
	if ok {
		return name, ports.ActionOverwritten
	}

	// Rename loop: collect a new non-empty, non-conflicting name; an empty
	// reply gives up.
	for {
		replacement, err := s.gate.ReadName(fmt.Sprintf("New alias name for %s (empty to skip)", appID))
		if err != nil || replacement == "" {
			return name, ports.ActionSkippedConflict
		}
		if other := store.FindByAliasName(replacement); other != nil && other.AppID != appID {
			fmt.Printf("Alias %q already points to %s, pick another.\n", replacement, other.AppID)
			continue
		}
		return replacement, ports.ActionRenamed
	}
}

// apply performs the upsert through one atomic read-modify-write cycle.
func (s *service) apply(appID, name string, action ports.Action) ports.Result {
	res := ports.Result{AppID: appID, Alias: name, Action: action}
	err := s.aliases.Update(func(store *aliasfile.Store) error {
		store.Upsert(appID, name)
		return nil
	})
	if err != nil {
		res.Action = ports.ActionFailed
		res.Err = err
	}
	return res
}
