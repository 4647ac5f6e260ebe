package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCommand(dir *string) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import expenses from another document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService(*dir)
			if err != nil {
				return err
			}

			st, n, err := svc.Import(args[0], !replace)
			if err != nil {
				return err
			}

			policy := "Merged"
			if replace {
				policy = "Replaced with"
			}
			fmt.Printf("%s %d records from %s; collection now holds %d expenses\n",
				policy, n, args[0], len(st.Expenses))
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "discard the current collection instead of merging")

	return cmd
}

func newExportCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "export <destination>",
		Short: "Copy the expenses document to another location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService(*dir)
			if err != nil {
				return err
			}

			if err := svc.Export(args[0]); err != nil {
				return err
			}

			fmt.Printf("Exported %s to %s\n", svc.DocumentPath(), args[0])
			return nil
		},
	}
}
