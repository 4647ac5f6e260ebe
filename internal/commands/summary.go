package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kharchpani-dev/kharchpani/internal/aggregate"
	"github.com/kharchpani-dev/kharchpani/internal/format"
)

func newSummaryCommand(dir *string) *cobra.Command {
	var charts bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show spending totals and trends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService(*dir)
			if err != nil {
				return err
			}

			st, err := svc.Refresh()
			if err != nil {
				return err
			}
			s := st.Summary

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Today\t%s\n", format.Currency(s.TodayTotal))
			fmt.Fprintf(w, "Yesterday\t%s\n", format.Currency(s.YesterdayTotal))
			fmt.Fprintf(w, "This week\t%s\n", format.Currency(s.WeeklyTotal))
			fmt.Fprintf(w, "Last week\t%s\n", format.Currency(s.LastWeekTotal))
			fmt.Fprintf(w, "This month\t%s\n", format.Currency(s.MonthlyTotal))
			fmt.Fprintf(w, "This year\t%s\n", format.Currency(s.CurrentYearTotal))
			fmt.Fprintf(w, "Avg daily spend\t%s\n", format.Currency(s.AverageDailySpend))
			fmt.Fprintf(w, "Month over month\t%s\n", format.Percent(s.MonthOverMonthChange))
			if err := w.Flush(); err != nil {
				return err
			}

			if charts {
				printChart("This week by day", s.WeeklyChart)
				printChart("This month by day", s.MonthlyChart)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&charts, "charts", false, "include weekly and monthly chart series")

	return cmd
}

func printChart(title string, points []aggregate.ChartPoint) {
	fmt.Printf("\n%s:\n", title)
	if len(points) == 0 {
		fmt.Println("  (no expenses)")
		return
	}
	for _, p := range points {
		fmt.Printf("  %-4s %s\n", p.Label, format.Currency(p.Amount))
	}
}
