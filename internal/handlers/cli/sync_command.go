package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fpsh/fpsh/internal/core/ports"
	"github.com/fpsh/fpsh/internal/handlers/ui"
)

// NewSyncCommand creates the 'sync' subcommand.
func NewSyncCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Create aliases for every installed Flatpak application.",
		Long: `Reconciles the alias file against the current installation: creates an
alias for each installed application that has none, keeps existing aliases
untouched, and honors the skip list. With --interactive, naming conflicts
offer overwrite / rename / skip; otherwise conflicts are skipped unless
--force is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSyncCmd(cmd, interactive)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Resolve naming conflicts interactively.")

	return cmd
}

func runSyncCmd(cmd *cobra.Command, interactive bool) error {
	fmt.Println(ui.InfoColor("Reconciling aliases with installed applications..."))

	report, err := service.SyncAll(cmd.Context(), syncOptions(interactive))
	if err != nil {
		if len(report.Results) > 0 {
			fmt.Println(ui.WarningColor(fmt.Sprintf("Aborted after processing %d application(s).", len(report.Results))))
		}
		return fmt.Errorf("could not reconcile aliases: %w", err)
	}

	printReport(report)
	return nil
}

func printReport(report ports.Report) {
	for _, res := range report.Results {
		switch res.Action {
		case ports.ActionCreated:
			fmt.Printf("%s %s -> %s\n", ui.SuccessColor("created"), ui.AliasNameColor(res.Alias), ui.AppIDColor(res.AppID))
		case ports.ActionOverwritten:
			fmt.Printf("%s %s -> %s\n", ui.WarningColor("overwrote"), ui.AliasNameColor(res.Alias), ui.AppIDColor(res.AppID))
		case ports.ActionRenamed:
			fmt.Printf("%s %s -> %s\n", ui.WarningColor("renamed"), ui.AliasNameColor(res.Alias), ui.AppIDColor(res.AppID))
		case ports.ActionSkippedConflict:
			fmt.Printf("%s %s (name %s taken)\n", ui.DetailColor("conflict"), ui.AppIDColor(res.AppID), ui.AliasNameColor(res.Alias))
		case ports.ActionFailed:
			fmt.Printf("%s %s: %v\n", ui.ErrorColor("failed"), ui.AppIDColor(res.AppID), res.Err)
		}
	}

	created := report.Count(ports.ActionCreated)
	kept := report.Count(ports.ActionKept)
	skipped := report.Count(ports.ActionSkipped) + report.Count(ports.ActionSkippedConflict)
	failed := report.Count(ports.ActionFailed)

	summary := fmt.Sprintf("%d created, %d kept, %d skipped", created, kept, skipped)
	if failed > 0 {
		summary += fmt.Sprintf(", %d failed", failed)
	}
	fmt.Println(ui.InfoColor(summary + "."))
}
