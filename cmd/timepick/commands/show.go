package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"timepick/internal/domain"
)

func showCmd() *cobra.Command {
	var fields bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the session's time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := appCtx.Picker(cmd.Context())
			if fields {
				fmt.Fprintf(cmd.OutOrStdout(), "hours=%s minutes=%s\n",
					p.Display(domain.FieldHours), p.Display(domain.FieldMinutes))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.FormatTime())
			return nil
		},
	}
	cmd.Flags().BoolVar(&fields, "fields", false, "print the two input field values instead")
	return cmd
}
