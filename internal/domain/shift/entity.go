package shift

import (
	"time"
)

// Spec is an employee's recurring shift window, as "HH:MM" wall-clock times
// in the business timezone. A start later than the end means the shift runs
// past midnight (e.g. 21:00-05:00).
type Spec struct {
	Start string
	End   string
}

// Instance is one concrete occurrence of a shift: real instants plus the
// calendar date the occurrence's telemetry and attendance are booked
// against. The attributed date is always the date the shift starts, so an
// overnight shift never splits across two reporting days.
type Instance struct {
	StartsAt       time.Time
	EndsAt         time.Time
	AttributedDate time.Time
	Overnight      bool
}

// Paused reports whether this occurrence falls on a weekend. The start day
// decides: a Friday-night shift ending Saturday morning is still a working
// shift.
func (i Instance) Paused() bool {
	wd := i.AttributedDate.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
