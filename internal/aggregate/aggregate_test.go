package aggregate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kharchpani-dev/kharchpani/internal/model"
)

func expense(date, amount string) model.Expense {
	return model.Expense{
		ID:     date + "/" + amount,
		Date:   date,
		Amount: decimal.RequireFromString(amount),
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// now is Tuesday 2024-01-16; its week runs Sunday 2024-01-14 through
// Saturday 2024-01-20, last week 2024-01-07 through 2024-01-13.
var now = time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC)

func TestCompute_DayTotals(t *testing.T) {
	s := Compute([]model.Expense{
		expense("2024-01-15", "100"),
		expense("2024-01-16", "50"),
		expense("2023-12-20", "200"),
	}, now)

	assert.True(t, s.TodayTotal.Equal(dec("50")), "today = %s", s.TodayTotal)
	assert.True(t, s.YesterdayTotal.Equal(dec("100")), "yesterday = %s", s.YesterdayTotal)
	assert.True(t, s.MonthlyTotal.Equal(dec("150")), "monthly = %s", s.MonthlyTotal)
}

func TestCompute_WeekWindows(t *testing.T) {
	s := Compute([]model.Expense{
		expense("2024-01-14", "10"), // Sunday, this week
		expense("2024-01-20", "20"), // Saturday, this week
		expense("2024-01-13", "40"), // Saturday, last week
		expense("2024-01-07", "80"), // Sunday, last week
		expense("2024-01-06", "160"), // week before last
		expense("2024-01-21", "320"), // next week
	}, now)

	assert.True(t, s.WeeklyTotal.Equal(dec("30")), "weekly = %s", s.WeeklyTotal)
	assert.True(t, s.LastWeekTotal.Equal(dec("120")), "last week = %s", s.LastWeekTotal)
}

func TestCompute_YearTotal(t *testing.T) {
	s := Compute([]model.Expense{
		expense("2024-01-01", "1"),
		expense("2024-12-31", "2"),
		expense("2023-12-31", "4"),
		expense("2025-01-01", "8"),
	}, now)

	assert.True(t, s.CurrentYearTotal.Equal(dec("3")), "year = %s", s.CurrentYearTotal)
}

func TestCompute_InvalidDatesExcluded(t *testing.T) {
	s := Compute([]model.Expense{
		expense("2024-01-16", "50"),
		expense("not-a-date", "9999"),
		expense("2024-02-30", "9999"), // impossible calendar date
	}, now)

	assert.True(t, s.TodayTotal.Equal(dec("50")))
	assert.True(t, s.MonthlyTotal.Equal(dec("50")))
	assert.True(t, s.CurrentYearTotal.Equal(dec("50")))
	require.Len(t, s.MonthlyChart, 1)
	require.Len(t, s.WeeklyChart, 1)
}

func TestCompute_ExactDecimalAddition(t *testing.T) {
	s := Compute([]model.Expense{
		expense("2024-01-16", "0.1"),
		expense("2024-01-16", "0.2"),
	}, now)

	assert.True(t, s.TodayTotal.Equal(dec("0.3")), "today = %s", s.TodayTotal)
}

func TestAverageDailySpend_PerElapsedDay(t *testing.T) {
	s := Compute([]model.Expense{
		expense("2024-01-01", "100"),
		expense("2024-01-10", "60"),
	}, now)

	// 160 over 16 elapsed days.
	assert.True(t, s.AverageDailySpend.Equal(dec("10")), "avg = %s", s.AverageDailySpend)
}

func TestAverageDailySpend_EmptyMonth(t *testing.T) {
	s := Compute([]model.Expense{expense("2023-12-20", "500")}, now)
	assert.True(t, s.AverageDailySpend.IsZero())
}

func TestMonthOverMonthChange(t *testing.T) {
	tests := []struct {
		name     string
		expenses []model.Expense
		want     string
	}{
		{
			"both months zero",
			nil,
			"0",
		},
		{
			"previous zero, current positive",
			[]model.Expense{expense("2024-01-10", "75")},
			"100",
		},
		{
			"spending doubled",
			[]model.Expense{expense("2023-12-15", "100"), expense("2024-01-10", "200")},
			"100",
		},
		{
			"spending halved",
			[]model.Expense{expense("2023-12-15", "200"), expense("2024-01-10", "100")},
			"-50",
		},
		{
			"spending stopped",
			[]model.Expense{expense("2023-12-15", "200")},
			"-100",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Compute(tt.expenses, now)
			assert.True(t, s.MonthOverMonthChange.Equal(dec(tt.want)),
				"change = %s, want %s", s.MonthOverMonthChange, tt.want)
		})
	}
}

func TestMonthOverMonthChange_JanuaryLooksAtDecember(t *testing.T) {
	// Previous month of 2024-01 is 2023-12, not month zero of 2024.
	s := Compute([]model.Expense{
		expense("2023-12-31", "50"),
		expense("2024-01-16", "100"),
	}, now)
	assert.True(t, s.MonthOverMonthChange.Equal(dec("100")))
}

func TestWeeklyChart(t *testing.T) {
	s := Compute([]model.Expense{
		expense("2024-01-20", "5"),  // Saturday
		expense("2024-01-14", "10"), // Sunday
		expense("2024-01-14", "15"), // Sunday again, same bucket
		expense("2024-01-13", "99"), // last week, outside window
	}, now)

	require.Len(t, s.WeeklyChart, 2, "days without expenses are omitted")
	assert.Equal(t, "SUN", s.WeeklyChart[0].Label)
	assert.True(t, s.WeeklyChart[0].Amount.Equal(dec("25")))
	assert.Equal(t, "SAT", s.WeeklyChart[1].Label)
	assert.True(t, s.WeeklyChart[1].Amount.Equal(dec("5")))
}

func TestMonthlyChart(t *testing.T) {
	s := Compute([]model.Expense{
		expense("2024-01-31", "7"),
		expense("2024-01-03", "1"),
		expense("2024-01-03", "2"),
		expense("2023-12-03", "99"), // prior month, outside window
	}, now)

	require.Len(t, s.MonthlyChart, 2)
	assert.Equal(t, "3", s.MonthlyChart[0].Label)
	assert.True(t, s.MonthlyChart[0].Amount.Equal(dec("3")))
	assert.Equal(t, "31", s.MonthlyChart[1].Label)
	assert.True(t, s.MonthlyChart[1].Amount.Equal(dec("7")))
}

func TestCompute_EmptySnapshot(t *testing.T) {
	s := Compute(nil, now)
	assert.True(t, s.TodayTotal.IsZero())
	assert.True(t, s.CurrentYearTotal.IsZero())
	assert.True(t, s.MonthOverMonthChange.IsZero())
	assert.Empty(t, s.WeeklyChart)
	assert.Empty(t, s.MonthlyChart)
}
