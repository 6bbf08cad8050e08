package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fpsh/fpsh/internal/core/ports"
	"github.com/fpsh/fpsh/internal/handlers/ui"
)

// NewWatchCommand creates the 'watch' subcommand.
func NewWatchCommand(watcherFactory WatcherFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch for installs and removals and keep the alias file in sync.",
		Long: `Runs in the foreground, observing the Flatpak installation directories.
After each change settles, it reconciles the alias file and prunes stale
entries without prompting. Stop with Ctrl-C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatchCmd(cmd, watcherFactory)
		},
	}
	return cmd
}

func runWatchCmd(cmd *cobra.Command, watcherFactory WatcherFactory) error {
	if watcherFactory == nil {
		return fmt.Errorf("watcher not initialized for command %s", cmd.Name())
	}

	// Watch passes never prompt: stale pruning assumes yes, conflicts are
	// skipped unless --force.
	opts := ports.SyncOptions{Force: globalOpts.Force, AssumeYes: true}
	watcher := watcherFactory(service, opts)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Println(ui.InfoColor("Watching Flatpak installations. Press Ctrl-C to stop."))
	return watcher.Run(ctx)
}
