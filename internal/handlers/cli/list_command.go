package cli

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fpsh/fpsh/internal/handlers/ui"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the managed aliases.",
		Long:  `Displays every alias entry in the managed alias file, in file order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd()
		},
	}
	return cmd
}

func runListCmd() error {
	entries, passengers, err := service.ListEntries()
	if err != nil {
		return fmt.Errorf("could not list aliases: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println(ui.InfoColor("No aliases are currently managed."))
		return nil
	}

	fmt.Println(ui.HeaderColor("Managed aliases:"))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Alias", "Application"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, e := range entries {
		table.Append([]string{e.Name, e.AppID})
	}
	table.Render()

	if globalOpts.Verbosity > 0 && passengers > 0 {
		fmt.Println(ui.DetailColor(fmt.Sprintf("%d unmanaged line(s) preserved in the file.", passengers)))
	}
	return nil
}
