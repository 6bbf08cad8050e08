package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fpsh/fpsh/internal/handlers/ui"
)

// NewStaleCommand creates the 'stale' subcommand.
func NewStaleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stale",
		Short: "Find and optionally remove aliases for uninstalled applications.",
		Long: `Checks every alias entry against the current installation and asks, entry
by entry, whether stale ones should be removed. With --yes all stale entries
are pruned without prompting.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStaleCmd(cmd)
		},
	}
	return cmd
}

func runStaleCmd(cmd *cobra.Command) error {
	report, err := service.CheckStale(cmd.Context(), syncOptions(false))
	if err != nil {
		return fmt.Errorf("could not check stale aliases: %w", err)
	}

	if len(report.Removed) == 0 && len(report.Kept) == 0 {
		fmt.Println(ui.InfoColor("No stale aliases found."))
		return nil
	}
	for _, e := range report.Removed {
		fmt.Printf("%s %s (%s)\n", ui.SuccessColor("removed"), ui.AliasNameColor(e.Name), ui.AppIDColor(e.AppID))
	}
	for _, e := range report.Kept {
		fmt.Printf("%s %s (%s)\n", ui.DetailColor("kept"), ui.AliasNameColor(e.Name), ui.AppIDColor(e.AppID))
	}
	fmt.Println(ui.InfoColor(fmt.Sprintf("%d stale alias(es) removed, %d kept.", len(report.Removed), len(report.Kept))))
	return nil
}
