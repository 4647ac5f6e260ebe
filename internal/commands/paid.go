package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPaidCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "paid <id>...",
		Short: "Toggle the paid flag on the selected expenses",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService(*dir)
			if err != nil {
				return err
			}

			if _, err := svc.TogglePaid(args); err != nil {
				return err
			}

			fmt.Printf("Toggled paid on %d expense(s)\n", len(args))
			return nil
		},
	}
}
