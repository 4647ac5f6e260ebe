// Package aggregate computes every derived summary figure and chart series
// from a snapshot of the expense collection and a single "now" date. The
// computation is pure: same snapshot and now, same Summary, and each call
// re-derives its windows from scratch rather than updating incrementally.
package aggregate

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kharchpani-dev/kharchpani/internal/dateutil"
	"github.com/kharchpani-dev/kharchpani/internal/model"
)

// ChartPoint is one bucket in a chart series.
type ChartPoint struct {
	Label  string
	Amount decimal.Decimal
}

// Summary holds all figures shown by the summary views, computed in one
// pass from one snapshot and one date so they can never disagree.
type Summary struct {
	TodayTotal           decimal.Decimal
	YesterdayTotal       decimal.Decimal
	WeeklyTotal          decimal.Decimal
	LastWeekTotal        decimal.Decimal
	MonthlyTotal         decimal.Decimal
	CurrentYearTotal     decimal.Decimal
	AverageDailySpend    decimal.Decimal
	MonthOverMonthChange decimal.Decimal // percent
	WeeklyChart          []ChartPoint
	MonthlyChart         []ChartPoint
}

// dated pairs an expense amount with its parsed calendar day. Records whose
// date does not parse never make it into a dated slice, which is how they
// stay out of every figure below.
type dated struct {
	day    time.Time
	amount decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// Compute derives the full Summary for the snapshot as of now.
func Compute(expenses []model.Expense, now time.Time) Summary {
	now = dateutil.DayOf(now)
	valid := parseDated(expenses)

	monthFirst, monthLast := dateutil.MonthBounds(now)
	yearFirst, yearLast := dateutil.YearBounds(now)
	prevYear, prevMonth := dateutil.PreviousMonth(now)
	prevFirst, prevLast := dateutil.MonthBounds(time.Date(prevYear, prevMonth, 1, 0, 0, 0, 0, time.UTC))

	monthly := sumBetween(valid, monthFirst, monthLast)
	previous := sumBetween(valid, prevFirst, prevLast)

	return Summary{
		TodayTotal:           sumOnDay(valid, now),
		YesterdayTotal:       sumOnDay(valid, dateutil.Yesterday(now)),
		WeeklyTotal:          sumBetween(valid, dateutil.StartOfWeek(now), dateutil.EndOfWeek(now)),
		LastWeekTotal:        sumBetween(valid, dateutil.StartOfLastWeek(now), dateutil.EndOfLastWeek(now)),
		MonthlyTotal:         monthly,
		CurrentYearTotal:     sumBetween(valid, yearFirst, yearLast),
		AverageDailySpend:    averageDailySpend(valid, monthly, now),
		MonthOverMonthChange: percentChange(monthly, previous),
		WeeklyChart:          weeklyChart(valid, now),
		MonthlyChart:         monthlyChart(valid, now),
	}
}

func parseDated(expenses []model.Expense) []dated {
	valid := make([]dated, 0, len(expenses))
	for _, e := range expenses {
		if day, ok := dateutil.ParseDate(e.Date); ok {
			valid = append(valid, dated{day: day, amount: e.Amount})
		}
	}
	return valid
}

func sumOnDay(valid []dated, day time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, d := range valid {
		if dateutil.SameDay(d.day, day) {
			total = total.Add(d.amount)
		}
	}
	return total
}

func sumBetween(valid []dated, start, end time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, d := range valid {
		if dateutil.Between(d.day, start, end) {
			total = total.Add(d.amount)
		}
	}
	return total
}

// averageDailySpend divides the current-month total by now's day-of-month:
// average per elapsed day, not per days-in-month. Zero when the month has
// no expenses yet.
func averageDailySpend(valid []dated, monthly decimal.Decimal, now time.Time) decimal.Decimal {
	first, last := dateutil.MonthBounds(now)
	for _, d := range valid {
		if dateutil.Between(d.day, first, last) {
			return monthly.Div(decimal.NewFromInt(int64(now.Day())))
		}
	}
	return decimal.Zero
}

// percentChange implements the month-over-month policy: a previous total of
// zero with current spending reports +100% instead of dividing by zero, and
// two zero months report 0%.
func percentChange(current, previous decimal.Decimal) decimal.Decimal {
	switch {
	case previous.IsPositive():
		return current.Sub(previous).Div(previous).Mul(hundred)
	case current.IsPositive():
		return hundred
	default:
		return decimal.Zero
	}
}

// weeklyChart buckets the current Sunday-Saturday window by day of week.
// Labels are three-letter uppercase day names in chronological order; days
// with no expenses are omitted rather than zero-filled.
func weeklyChart(valid []dated, now time.Time) []ChartPoint {
	start := dateutil.StartOfWeek(now)

	var points []ChartPoint
	for offset := 0; offset < 7; offset++ {
		day := start.AddDate(0, 0, offset)
		total := decimal.Zero
		seen := false
		for _, d := range valid {
			if dateutil.SameDay(d.day, day) {
				total = total.Add(d.amount)
				seen = true
			}
		}
		if seen {
			label := strings.ToUpper(day.Weekday().String())[:3]
			points = append(points, ChartPoint{Label: label, Amount: total})
		}
	}
	return points
}

// monthlyChart buckets the current calendar month by day of month, labeled
// by day number, in chronological order with the same no-zero-fill policy.
func monthlyChart(valid []dated, now time.Time) []ChartPoint {
	first, last := dateutil.MonthBounds(now)

	var points []ChartPoint
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		total := decimal.Zero
		seen := false
		for _, d := range valid {
			if dateutil.SameDay(d.day, day) {
				total = total.Add(d.amount)
				seen = true
			}
		}
		if seen {
			points = append(points, ChartPoint{Label: strconv.Itoa(day.Day()), Amount: total})
		}
	}
	return points
}
