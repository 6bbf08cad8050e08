package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	"github.com/fpsh/fpsh/internal/handlers/ui"
)

// NewSnapshotCommand creates the 'snapshot' subcommand.
func NewSnapshotCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot [path]",
		Short: "Export the current aliases and skip list to a YAML file.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshotCmd(args)
		},
	}
	return cmd
}

func runSnapshotCmd(args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		name := fmt.Sprintf("fpsh-%s.yaml", time.Now().Format("20060102-150405"))
		path = filepath.Join(xdg.DataHome, "fpsh", "snapshots", name)
	}

	if err := service.Snapshot(path); err != nil {
		return fmt.Errorf("could not write snapshot: %w", err)
	}
	fmt.Println(ui.SuccessColor(fmt.Sprintf("Snapshot written to %s.", path)))
	return nil
}
