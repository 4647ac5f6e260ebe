// Package filter derives the currently visible expense list from the full
// snapshot, the active filter, and "now". Applying a filter is a pure
// re-derivation; it never goes back to storage.
package filter

import (
	"fmt"
	"time"

	"github.com/kharchpani-dev/kharchpani/internal/dateutil"
	"github.com/kharchpani-dev/kharchpani/internal/model"
)

// Filter selects which slice of time the expense list shows.
type Filter string

const (
	Today Filter = "today"
	Week  Filter = "week" // current Sunday-Saturday window
	Month Filter = "month"
	All   Filter = "all"
)

// Parse maps user input to a Filter.
func Parse(s string) (Filter, error) {
	switch Filter(s) {
	case Today, Week, Month, All:
		return Filter(s), nil
	}
	return "", fmt.Errorf("unknown filter %q (want today, week, month or all)", s)
}

// Apply narrows the snapshot to the expenses the filter selects. Records
// with unparseable dates only survive the All filter; every other variant
// is date-windowed and silently drops them. The snapshot's ordering is
// preserved.
func Apply(expenses []model.Expense, f Filter, now time.Time) []model.Expense {
	if f == All {
		return expenses
	}

	now = dateutil.DayOf(now)
	var start, end time.Time
	switch f {
	case Today:
		start, end = now, now
	case Week:
		start, end = dateutil.StartOfWeek(now), dateutil.EndOfWeek(now)
	case Month:
		start, end = dateutil.MonthBounds(now)
	default:
		return expenses
	}

	var visible []model.Expense
	for _, e := range expenses {
		day, ok := dateutil.ParseDate(e.Date)
		if ok && dateutil.Between(day, start, end) {
			visible = append(visible, e)
		}
	}
	return visible
}
