package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"timepick/internal/services/session"
)

func sessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage the storage session",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "new",
			Short: "Print a fresh session id (export it as TIMEPICK_SESSION)",
			Args:  cobra.NoArgs,

			PersistentPreRunE: skipWiring,
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), session.NewID())
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Forget the time stored in the current session",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := appCtx.Times.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared session %s\n", appCtx.Session)
				return nil
			},
		},
	)
	return cmd
}
