package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	"github.com/fpsh/fpsh/internal/core/ports"
	"github.com/fpsh/fpsh/pkg/logging"
)

// GlobalOptions carries the persistent flag values every command sees.
type GlobalOptions struct {
	AliasFile string
	SkipFile  string
	Lock      bool
	Force     bool
	AssumeYes bool
	Verbosity int
}

// ServiceFactory builds the reconciliation service once the persistent flags
// are known. The composition root supplies it so this package stays wired to
// ports only.
type ServiceFactory func(opts GlobalOptions) (ports.ReconciliationService, error)

// Runner is anything that blocks until its context is canceled.
type Runner interface {
	Run(ctx context.Context) error
}

// WatcherFactory builds the background watcher over an existing service.
type WatcherFactory func(service ports.ReconciliationService, opts ports.SyncOptions) Runner

var (
	rootCmd    *cobra.Command
	service    ports.ReconciliationService
	globalOpts GlobalOptions
)

func NewRootCommand(
	version string,
	factory ServiceFactory,
	watcherFactory WatcherFactory,
) *cobra.Command {
	rootCmd = &cobra.Command{
		Use:   "fpsh",
		Short: "fpsh keeps shell aliases in sync with installed Flatpak applications.",
		Long: `fpsh maintains a shell alias file mapping short names to "flatpak run"
commands and keeps it synchronized with the set of installed applications.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if factory == nil {
				return fmt.Errorf("service factory not initialized for command %s", cmd.Name())
			}
			logging.SetupLogger(globalOpts.Verbosity)
			svc, err := factory(globalOpts)
			if err != nil {
				return fmt.Errorf("could not initialize services: %w", err)
			}
			service = svc
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&globalOpts.AliasFile, "alias-file", filepath.Join(xdg.ConfigHome, "fpsh", "aliases"), "Path to the managed alias file.")
	pf.StringVar(&globalOpts.SkipFile, "skip-file", filepath.Join(xdg.ConfigHome, "fpsh", "skip"), "Path to the skip-list file.")
	pf.BoolVar(&globalOpts.Lock, "lock", false, "Take an advisory lock around each alias file rewrite.")
	pf.BoolVar(&globalOpts.Force, "force", false, "Overwrite conflicting aliases without confirmation.")
	pf.BoolVarP(&globalOpts.AssumeYes, "yes", "y", false, "Answer yes to every confirmation.")
	pf.CountVarP(&globalOpts.Verbosity, "verbose", "v", "Increase log verbosity (repeatable).")

	rootCmd.AddCommand(NewSyncCommand())
	rootCmd.AddCommand(NewAddCommand())
	rootCmd.AddCommand(NewRenameCommand())
	rootCmd.AddCommand(NewRemoveCommand())
	rootCmd.AddCommand(NewStaleCommand())
	rootCmd.AddCommand(NewPurgeCommand())
	rootCmd.AddCommand(NewSkipCommand())
	rootCmd.AddCommand(NewUnskipCommand())
	rootCmd.AddCommand(NewSkippedCommand())
	rootCmd.AddCommand(NewListCommand())
	rootCmd.AddCommand(NewSnapshotCommand())
	rootCmd.AddCommand(NewWatchCommand(watcherFactory))

	return rootCmd
}

// syncOptions translates the persistent flags into engine options.
func syncOptions(interactive bool) ports.SyncOptions {
	return ports.SyncOptions{
		Interactive: interactive,
		Force:       globalOpts.Force,
		AssumeYes:   globalOpts.AssumeYes,
	}
}
