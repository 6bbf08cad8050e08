package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fpsh/fpsh/internal/handlers/ui"
)

// NewRenameCommand creates the 'rename' subcommand.
func NewRenameCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <old> <new>",
		Short: "Rename an existing alias.",
		Long: `Rebinds an alias to a new name. Fails when the old name has no entry or
the new name already belongs to a different application.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRenameCmd(cmd, args)
		},
	}
	return cmd
}

func runRenameCmd(cmd *cobra.Command, args []string) error {
	oldName, newName := args[0], args[1]

	if err := service.Rename(cmd.Context(), oldName, newName, syncOptions(true)); err != nil {
		return fmt.Errorf("could not rename %q: %w", oldName, err)
	}
	fmt.Println(ui.SuccessColor(fmt.Sprintf("Alias %q renamed to %q.", oldName, newName)))
	return nil
}
