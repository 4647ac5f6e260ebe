package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kharchpani-dev/kharchpani/internal/filter"
	"github.com/kharchpani-dev/kharchpani/internal/format"
)

func newListCommand(dir *string) *cobra.Command {
	var filterName string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := filter.Parse(filterName)
			if err != nil {
				return err
			}

			svc, _, err := newService(*dir)
			if err != nil {
				return err
			}

			st, err := svc.Refresh()
			if err != nil {
				return err
			}

			visible := svc.View(st, f)
			if len(visible) == 0 {
				fmt.Println("No expenses.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tAMOUNT\tPAID\tDESCRIPTION\tID")
			for _, e := range visible {
				paid := ""
				if e.IsPaid {
					paid = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					e.Date, format.Currency(e.Amount), paid, e.Description, e.ID)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&filterName, "filter", "all", "today, week, month or all")

	return cmd
}
