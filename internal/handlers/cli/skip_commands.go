package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fpsh/fpsh/internal/handlers/ui"
)

// NewSkipCommand creates the 'skip' subcommand.
func NewSkipCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "skip <app-id>",
		Short: "Exclude an application from bulk alias generation.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := service.Skip(args[0]); err != nil {
				return fmt.Errorf("could not skip %s: %w", args[0], err)
			}
			fmt.Println(ui.SuccessColor(fmt.Sprintf("%s added to the skip list.", args[0])))
			return nil
		},
	}
}

// NewUnskipCommand creates the 'unskip' subcommand.
func NewUnskipCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unskip <app-id>",
		Short: "Remove an application from the skip list.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := service.Unskip(args[0]); err != nil {
				return fmt.Errorf("could not unskip %s: %w", args[0], err)
			}
			fmt.Println(ui.SuccessColor(fmt.Sprintf("%s removed from the skip list.", args[0])))
			return nil
		},
	}
}

// NewSkippedCommand creates the 'skipped' subcommand.
func NewSkippedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "skipped",
		Short: "List applications excluded from bulk alias generation.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := service.ListSkipped()
			if err != nil {
				return fmt.Errorf("could not list skipped applications: %w", err)
			}
			if len(ids) == 0 {
				fmt.Println(ui.InfoColor("The skip list is empty."))
				return nil
			}
			for _, id := range ids {
				fmt.Println(ui.AppIDColor(id))
			}
			return nil
		},
	}
}
