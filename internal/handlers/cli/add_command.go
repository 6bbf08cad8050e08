package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fpsh/fpsh/internal/core/ports"
	"github.com/fpsh/fpsh/internal/handlers/ui"
)

// NewAddCommand creates the 'add' subcommand.
func NewAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <app-id> [alias]",
		Short: "Create or update the alias for a single installed application.",
		Long: `Adds an alias for one application. When no alias name is given, a name is
derived from the application's identifier and display name. The application
must be installed.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddCmd(cmd, args)
		},
	}
	return cmd
}

func runAddCmd(cmd *cobra.Command, args []string) error {
	appID := args[0]
	aliasName := ""
	if len(args) > 1 {
		aliasName = args[1]
	}

	res, err := service.Add(cmd.Context(), appID, aliasName, syncOptions(true))
	if err != nil {
		return fmt.Errorf("could not add alias for %s: %w", appID, err)
	}

	switch res.Action {
	case ports.ActionKept:
		fmt.Println(ui.InfoColor(fmt.Sprintf("Alias %q already covers %s, nothing to do.", res.Alias, res.AppID)))
	case ports.ActionSkipped, ports.ActionSkippedConflict:
		fmt.Println(ui.WarningColor(fmt.Sprintf("No alias written for %s.", res.AppID)))
	default:
		fmt.Printf("%s %s %s=%s\n",
			ui.SuccessColor("Added"),
			ui.AliasKeywordColor("alias"),
			ui.AliasNameColor(res.Alias),
			ui.AppIDColor(fmt.Sprintf("\"flatpak run %s\"", res.AppID)))
	}
	return nil
}
