package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/fpsh/fpsh/internal/adapters/confirm"
	"github.com/fpsh/fpsh/internal/adapters/flatpak"
	"github.com/fpsh/fpsh/internal/adapters/nameoverrides"
	"github.com/fpsh/fpsh/internal/adapters/naming"
	"github.com/fpsh/fpsh/internal/adapters/oscommand"
	"github.com/fpsh/fpsh/internal/core/ports"
	"github.com/fpsh/fpsh/internal/core/services/reconciliation"
	"github.com/fpsh/fpsh/internal/core/services/watch"
	"github.com/fpsh/fpsh/internal/handlers/cli"
	aliasrepo "github.com/fpsh/fpsh/internal/repositories/aliasfile"
	"github.com/fpsh/fpsh/internal/repositories/skiplist"
)

// Version is set at build time
var Version = "dev"

func buildService(opts cli.GlobalOptions) (ports.ReconciliationService, error) {
	aliases, err := aliasrepo.NewFileRepository(opts.AliasFile, opts.Lock)
	if err != nil {
		return nil, fmt.Errorf("initializing alias repository: %w", err)
	}
	skips, err := skiplist.NewFileRepository(opts.SkipFile)
	if err != nil {
		return nil, fmt.Errorf("initializing skip repository: %w", err)
	}

	inventory := flatpak.NewInventory(oscommand.NewOSCommandExecutor())
	deriver := naming.NewDeriver()
	gate := confirm.NewInteractiveGate(os.Stdin, os.Stderr)

	// overridesProvider can be nil if NewYAMLProvider returns an error; the
	// service handles a nil provider.
	overridesPath := filepath.Join(xdg.ConfigHome, "fpsh", "names.yaml")
	overridesProvider, err := nameoverrides.NewYAMLProvider(overridesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not initialize name overrides provider: %v. Continuing without overrides.\n", err)
		overridesProvider = nil
	}

	return reconciliation.NewService(aliases, skips, inventory, deriver, gate, overridesProvider), nil
}

func buildWatcher(service ports.ReconciliationService, opts ports.SyncOptions) cli.Runner {
	return watch.NewWatcher(watch.DefaultConfig(), service, opts)
}

func main() {
	rootCmd := cli.NewRootCommand(Version, buildService, buildWatcher)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
