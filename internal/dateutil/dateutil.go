// Package dateutil provides the pure date-window arithmetic used by all
// time-based expense calculations. Weeks run Sunday through Saturday.
package dateutil

import "time"

// Layout is the on-disk date format for expense records.
const Layout = "2006-01-02"

// ParseDate parses a yyyy-MM-dd string. Invalid syntax or an impossible
// calendar date (e.g. 2024-02-30) reports ok=false; it never panics.
func ParseDate(s string) (time.Time, bool) {
	d, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// DayOf strips any time-of-day component, leaving midnight UTC.
func DayOf(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfWeek returns the most recent Sunday on or before d.
func StartOfWeek(d time.Time) time.Time {
	d = DayOf(d)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// EndOfWeek returns the Saturday ending the week containing d.
func EndOfWeek(d time.Time) time.Time {
	return StartOfWeek(d).AddDate(0, 0, 6)
}

// StartOfLastWeek returns the Sunday starting the week before d's week.
func StartOfLastWeek(d time.Time) time.Time {
	return StartOfWeek(DayOf(d).AddDate(0, 0, -7))
}

// EndOfLastWeek returns the Saturday ending the week before d's week.
func EndOfLastWeek(d time.Time) time.Time {
	return StartOfLastWeek(d).AddDate(0, 0, 6)
}

// MonthBounds returns the first and last calendar day of d's month.
func MonthBounds(d time.Time) (first, last time.Time) {
	first = time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	last = first.AddDate(0, 1, -1)
	return first, last
}

// YearBounds returns Jan 1 and Dec 31 of d's year.
func YearBounds(d time.Time) (first, last time.Time) {
	first = time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	last = time.Date(d.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	return first, last
}

// Yesterday returns the calendar day before d (not d minus 24 hours).
func Yesterday(d time.Time) time.Time {
	return DayOf(d).AddDate(0, 0, -1)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// Between reports whether d falls within [start, end], inclusive on both ends.
func Between(d, start, end time.Time) bool {
	d = DayOf(d)
	return !d.Before(DayOf(start)) && !d.After(DayOf(end))
}

// PreviousMonth returns the year and month immediately before d's month.
// Computed explicitly so a day-31 input cannot skid across month boundaries.
func PreviousMonth(d time.Time) (year int, month time.Month) {
	if d.Month() == time.January {
		return d.Year() - 1, time.December
	}
	return d.Year(), d.Month() - 1
}
