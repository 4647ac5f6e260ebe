package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kharchpani-dev/kharchpani/internal/dateutil"
	"github.com/kharchpani-dev/kharchpani/internal/format"
	"github.com/kharchpani-dev/kharchpani/internal/tracker"
)

func newAddCommand(dir *string) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "add <description> <amount>",
		Short: "Record a new expense",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService(*dir)
			if err != nil {
				return err
			}

			if date == "" {
				date = time.Now().Format(dateutil.Layout)
			}

			e, st, err := svc.Add(tracker.Input{
				Date:        date,
				Description: args[0],
				Amount:      args[1],
			})
			if err != nil {
				return err
			}

			fmt.Printf("Added %s (%s) on %s [%s]\n",
				e.Description, format.Currency(e.Amount), e.Date, e.ID)
			fmt.Printf("Today: %s  This month: %s\n",
				format.Currency(st.Summary.TodayTotal),
				format.Currency(st.Summary.MonthlyTotal))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "expense date as yyyy-MM-dd (default: today)")

	return cmd
}
