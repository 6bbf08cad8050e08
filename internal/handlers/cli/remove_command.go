package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fpsh/fpsh/internal/handlers/ui"
)

// NewRemoveCommand creates the 'remove' subcommand.
func NewRemoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <app-id|alias>",
		Aliases: []string{"rm"},
		Short:   "Remove the alias for an application, by either key.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemoveCmd(args)
		},
	}
	return cmd
}

func runRemoveCmd(args []string) error {
	key := args[0]
	if err := service.Remove(key); err != nil {
		return fmt.Errorf("could not remove %q: %w", key, err)
	}
	fmt.Println(ui.SuccessColor(fmt.Sprintf("Removed alias entry for %q.", key)))
	return nil
}
