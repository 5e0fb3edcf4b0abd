// Package calendar provides working-day arithmetic over a fixed
// Monday-Friday work week. All functions operate on calendar dates only;
// time-of-day is ignored and no clock is ever read.
package calendar

import "time"

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MonthStart returns the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthEnd returns the last day of t's month.
func MonthEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location()).AddDate(0, 0, -1)
}

// IsWorkingDay reports whether t falls on a working day (Monday-Friday).
func IsWorkingDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// WorkingDaysBetween counts working days in [start, end], inclusive of both
// ends. Returns 0 when start is after end.
func WorkingDaysBetween(start, end time.Time) int {
	start = StartOfDay(start)
	end = StartOfDay(end)

	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsWorkingDay(d) {
			days++
		}
	}
	return days
}

// WorkingDaysInMonth counts the working days of the month containing ref.
func WorkingDaysInMonth(ref time.Time) int {
	return WorkingDaysBetween(MonthStart(ref), MonthEnd(ref))
}

// WorkingDaysElapsed counts working days from the start of ref's month
// through ref itself.
func WorkingDaysElapsed(ref time.Time) int {
	return WorkingDaysBetween(MonthStart(ref), ref)
}

// WorkingDaysRemaining counts working days after ref through the end of
// ref's month. Zero when ref is on or past the last working day.
func WorkingDaysRemaining(ref time.Time) int {
	return WorkingDaysBetween(StartOfDay(ref).AddDate(0, 0, 1), MonthEnd(ref))
}
