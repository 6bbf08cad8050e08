/*
Package flatpak implements the application inventory and existence ports by
driving the flatpak CLI through a command executor.
*/
package flatpak

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fpsh/fpsh/internal/core/domain/app"
	"github.com/fpsh/fpsh/internal/core/ports"
	"github.com/fpsh/fpsh/pkg/logging"
)

// InventoryError wraps a failure of the flatpak collaborator. A failed or
// timed-out inventory call aborts the in-progress bulk operation.
type InventoryError struct {
	Op  string
	Err error
}

func (e *InventoryError) Error() string {
	return fmt.Sprintf("flatpak %s failed: %v", e.Op, e.Err)
}

func (e *InventoryError) Unwrap() error { return e.Err }

// Inventory implements ports.AppInventory via the flatpak binary.
type Inventory struct {
	executor ports.CommandExecutor
	logger   zerolog.Logger
}

// NewInventory creates a new Inventory. It panics if the executor is nil.
func NewInventory(executor ports.CommandExecutor) ports.AppInventory {
	if executor == nil {
		panic("executor cannot be nil")
	}
	return &Inventory{
		executor: executor,
		logger:   logging.GetLogger("flatpak"),
	}
}

// ListInstalled enumerates installed applications via
// `flatpak list --app --columns=application,name`. Lines with malformed
// identifiers are dropped.
func (inv *Inventory) ListInstalled(ctx context.Context) ([]app.InstalledApp, error) {
	stdout, _, err := inv.executor.Execute(ctx, "flatpak", "list", "--app", "--columns=application,name")
	if err != nil {
		return nil, &InventoryError{Op: "list", Err: err}
	}

	var apps []app.InstalledApp
	for _, line := range strings.Split(stdout, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		id, display, _ := strings.Cut(line, "\t")
		id = strings.TrimSpace(id)
		if !app.IsValidID(id) {
			inv.logger.Debug().Str("line", line).Msg("dropping malformed application id")
			continue
		}
		apps = append(apps, app.InstalledApp{ID: id, DisplayName: strings.TrimSpace(display)})
	}
	return apps, nil
}

// DisplayName returns the human-readable name for appID, or an empty string
// when the app is not in the current listing.
func (inv *Inventory) DisplayName(ctx context.Context, appID string) (string, error) {
	apps, err := inv.ListInstalled(ctx)
	if err != nil {
		return "", err
	}
	for _, a := range apps {
		if a.ID == appID {
			return a.DisplayName, nil
		}
	}
	return "", nil
}

// Exists reports whether appID is installed, via `flatpak info`.
// A non-zero exit is treated as "not installed" rather than a collaborator
// failure, matching the CLI's behavior for unknown refs.
func (inv *Inventory) Exists(ctx context.Context, appID string) (bool, error) {
	if !app.IsValidID(appID) {
		return false, nil
	}
	_, _, err := inv.executor.Execute(ctx, "flatpak", "info", appID)
	if err != nil {
		if ctx.Err() != nil {
			return false, &InventoryError{Op: "info", Err: ctx.Err()}
		}
		return false, nil
	}
	return true, nil
}
