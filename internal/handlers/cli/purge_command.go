package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fpsh/fpsh/internal/handlers/ui"
)

// NewPurgeCommand creates the 'purge' subcommand.
func NewPurgeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Remove every managed alias after a single confirmation.",
		Long: `Removes every alias entry line from the alias file, whether or not the
application is still installed. Lines that are not alias entries are always
preserved.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPurgeCmd()
		},
	}
	return cmd
}

func runPurgeCmd() error {
	removed, err := service.PurgeAll(syncOptions(false))
	if err != nil {
		return fmt.Errorf("could not purge aliases: %w", err)
	}
	if removed < 0 {
		fmt.Println(ui.InfoColor("Purge cancelled, nothing removed."))
		return nil
	}
	fmt.Println(ui.SuccessColor(fmt.Sprintf("%d alias(es) removed.", removed)))
	return nil
}
