package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"timepick/internal/tui"
)

// edit: interactive editor; prints the chosen time on exit.
func editCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the time interactively (Up/Down step, Tab switches field, q quits)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := appCtx.Picker(cmd.Context())
			editor := tui.NewEditor(p)
			if err := editor.Run(nil, cmd.OutOrStdout()); err != nil {
				return err
			}
			if err := p.Err(); err != nil {
				appCtx.Logger.Warn("Last change was not saved", "error", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.FormatTime())
			return nil
		},
	}
}
