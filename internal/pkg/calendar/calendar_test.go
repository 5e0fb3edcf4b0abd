package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsWorkingDay(t *testing.T) {
	cases := []struct {
		day  time.Time
		want bool
	}{
		{date(2025, time.June, 2), true},  // Monday
		{date(2025, time.June, 4), true},  // Wednesday
		{date(2025, time.June, 6), true},  // Friday
		{date(2025, time.June, 7), false}, // Saturday
		{date(2025, time.June, 8), false}, // Sunday
	}
	for _, c := range cases {
		got := IsWorkingDay(c.day)
		if got != c.want {
			t.Errorf("IsWorkingDay(%s) = %v, want %v", c.day.Format("2006-01-02"), got, c.want)
		}
	}
}

func TestWorkingDaysBetween(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"single working day", date(2025, time.June, 2), date(2025, time.June, 2), 1},
		{"single weekend day", date(2025, time.June, 7), date(2025, time.June, 7), 0},
		{"full calendar week", date(2025, time.June, 2), date(2025, time.June, 8), 5},
		{"weekend only", date(2025, time.June, 7), date(2025, time.June, 8), 0},
		{"start after end", date(2025, time.June, 10), date(2025, time.June, 2), 0},
		{"across month boundary", date(2025, time.May, 30), date(2025, time.June, 2), 2},
		{"time of day ignored", date(2025, time.June, 2).Add(23 * time.Hour), date(2025, time.June, 2).Add(5 * time.Minute), 1},
	}
	for _, c := range cases {
		got := WorkingDaysBetween(c.start, c.end)
		if got != c.want {
			t.Errorf("%s: WorkingDaysBetween = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestWorkingDaysInMonth(t *testing.T) {
	cases := []struct {
		ref  time.Time
		want int
	}{
		{date(2025, time.June, 15), 21},     // June 2025
		{date(2025, time.February, 1), 20},  // February 2025: exactly four weeks
		{date(2024, time.February, 10), 21}, // leap February 2024
		{date(2025, time.August, 31), 21},   // August 2025
	}
	for _, c := range cases {
		got := WorkingDaysInMonth(c.ref)
		if got != c.want {
			t.Errorf("WorkingDaysInMonth(%s) = %d, want %d", c.ref.Format("2006-01"), got, c.want)
		}
	}
}

func TestWorkingDaysElapsedAndRemaining(t *testing.T) {
	// Tuesday June 10 2025: elapsed covers Jun 2-6 and Jun 9-10.
	ref := date(2025, time.June, 10)
	if got := WorkingDaysElapsed(ref); got != 7 {
		t.Errorf("WorkingDaysElapsed = %d, want 7", got)
	}
	if got := WorkingDaysRemaining(ref); got != 14 {
		t.Errorf("WorkingDaysRemaining = %d, want 14", got)
	}

	// Last day of month: nothing remains.
	if got := WorkingDaysRemaining(date(2025, time.June, 30)); got != 0 {
		t.Errorf("WorkingDaysRemaining(month end) = %d, want 0", got)
	}
	if got := WorkingDaysElapsed(date(2025, time.June, 30)); got != 21 {
		t.Errorf("WorkingDaysElapsed(month end) = %d, want 21", got)
	}
}

// Elapsed is inclusive of the reference date and remaining starts the day
// after, so together they partition the month's working days exactly.
func TestElapsedPlusRemainingPartitionsMonth(t *testing.T) {
	months := []time.Time{
		date(2025, time.June, 1),
		date(2025, time.February, 1),
		date(2024, time.February, 1), // leap year
		date(2025, time.December, 1),
	}
	for _, first := range months {
		total := WorkingDaysInMonth(first)
		for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
			sum := WorkingDaysElapsed(d) + WorkingDaysRemaining(d)
			if sum != total {
				t.Errorf("%s: elapsed+remaining = %d, want %d", d.Format("2006-01-02"), sum, total)
			}
		}
	}
}

func TestMonthBounds(t *testing.T) {
	ref := date(2024, time.February, 10)
	if got := MonthStart(ref); !got.Equal(date(2024, time.February, 1)) {
		t.Errorf("MonthStart = %s", got.Format("2006-01-02"))
	}
	if got := MonthEnd(ref); !got.Equal(date(2024, time.February, 29)) {
		t.Errorf("MonthEnd = %s", got.Format("2006-01-02"))
	}
	if got := MonthEnd(date(2025, time.December, 5)); !got.Equal(date(2025, time.December, 31)) {
		t.Errorf("MonthEnd(December) = %s", got.Format("2006-01-02"))
	}
}
