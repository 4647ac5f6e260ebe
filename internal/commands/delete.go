package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService(*dir)
			if err != nil {
				return err
			}

			st, err := svc.Delete(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Deleted %s (%d expenses remain)\n", args[0], len(st.Expenses))
			return nil
		},
	}
}
