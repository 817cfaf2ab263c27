package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"timepick/internal/domain"
)

// stepCmd builds "up" and "down", which act like the Up and Down keys on a
// focused field. Steps wrap around: up from 23 hours is 00.
func stepCmd(direction string) *cobra.Command {
	key := domain.KeyIncrease
	short := "Increase a field by one, wrapping around"
	if direction == "down" {
		key = domain.KeyDecrease
		short = "Decrease a field by one, wrapping around"
	}

	var count int
	cmd := &cobra.Command{
		Use:   direction + " <hours|minutes>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := domain.ParseField(args[0])
			if err != nil {
				return err
			}
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}
			p := appCtx.Picker(cmd.Context())
			for i := 0; i < count; i++ {
				p.HandleKey(field, key)
			}
			if err := p.Err(); err != nil {
				return fmt.Errorf("time not saved: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.FormatTime())
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of steps")
	return cmd
}
