package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"timepick/internal/domain"
)

// set <field> <text>: type text into a field. Input that is not a number in
// the field's range is ignored, as the input field would ignore it.
func setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <hours|minutes> <value>",
		Short: "Type a value into the hours or minutes field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := domain.ParseField(args[0])
			if err != nil {
				return err
			}
			p := appCtx.Picker(cmd.Context())
			p.HandleText(field, args[1])
			if err := p.Err(); err != nil {
				return fmt.Errorf("time not saved: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.FormatTime())
			return nil
		},
	}
}
