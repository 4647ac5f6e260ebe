package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kharchpani-dev/kharchpani/internal/tracker"
)

func newEditCommand(dir *string) *cobra.Command {
	var date, description, amount string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService(*dir)
			if err != nil {
				return err
			}

			existing, err := svc.Get(args[0])
			if err != nil {
				return err
			}

			// Unset flags keep the stored value.
			in := tracker.Input{
				Date:        existing.Date,
				Description: existing.Description,
				Amount:      existing.Amount.String(),
			}
			if cmd.Flags().Changed("date") {
				in.Date = date
			}
			if cmd.Flags().Changed("description") {
				in.Description = description
			}
			if cmd.Flags().Changed("amount") {
				in.Amount = amount
			}

			if _, err := svc.Update(args[0], in); err != nil {
				return err
			}

			fmt.Printf("Updated %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "new date as yyyy-MM-dd")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&amount, "amount", "", "new amount")

	return cmd
}
