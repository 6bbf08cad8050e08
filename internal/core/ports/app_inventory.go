package ports

import (
	"context"

	"github.com/fpsh/fpsh/internal/core/domain/app"
)

/*
AppInventory defines the contract for querying the current Flatpak
installation state. This is a driven port, implemented by an adapter that
shells out to the flatpak CLI.
*/
type AppInventory interface {
	/*
	   ListInstalled enumerates the currently installed applications in a
	   stable order. Malformed identifiers are filtered out by the adapter.
	   Failure or timeout of the underlying call must abort the in-progress
	   bulk operation.
	*/
	ListInstalled(ctx context.Context) ([]app.InstalledApp, error)

	// DisplayName returns the human-readable name for an installed app, or
	// an empty string when none is known.
	DisplayName(ctx context.Context, appID string) (string, error)

	// Exists reports whether appID is currently installed.
	Exists(ctx context.Context, appID string) (bool, error)
}
