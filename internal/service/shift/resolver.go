package shift

import (
	"time"

	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/shift"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/pkg/calendar"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/pkg/validator"
)

// Resolver maps a shift spec plus an instant to the single occurrence that
// instant belongs to. It is pure: the caller supplies now, so resolution is
// deterministic and testable.
//
// Telemetry and attendance reset at shift start rather than at midnight, so
// an overnight worker gets one stable accounting window per shift instead of
// having every night split across two reporting dates.
type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve picks the occurrence for now. For an overnight spec (start later
// than end as minute of day): an instant past the start belongs to the
// shift beginning today; an instant before the end is the tail of the shift
// that began yesterday; an instant between shifts resolves to today's
// window, so reporting rolls over once a shift has fully ended. Same-day
// specs split the same way around their start time.
func (r *Resolver) Resolve(spec shift.Spec, now time.Time) (shift.Instance, error) {
	startMin, endMin, err := r.parseSpec(spec)
	if err != nil {
		return shift.Instance{}, err
	}

	nowMin := now.Hour()*60 + now.Minute()
	today := calendar.StartOfDay(now)
	overnight := startMin > endMin

	base := today
	if overnight {
		if nowMin < endMin {
			// Tail of the shift that started yesterday evening.
			base = today.AddDate(0, 0, -1)
		}
	} else {
		if nowMin < startMin {
			// Today's shift has not opened yet; the last finished window
			// is yesterday's.
			base = today.AddDate(0, 0, -1)
		}
	}

	endDay := base
	if overnight {
		endDay = base.AddDate(0, 0, 1)
	}

	return shift.Instance{
		StartsAt:       clockOn(base, startMin),
		EndsAt:         clockOn(endDay, endMin),
		AttributedDate: base,
		Overnight:      overnight,
	}, nil
}

// Next returns the occurrence that follows the given one.
func (r *Resolver) Next(instance shift.Instance) shift.Instance {
	return shift.Instance{
		StartsAt:       instance.StartsAt.AddDate(0, 0, 1),
		EndsAt:         instance.EndsAt.AddDate(0, 0, 1),
		AttributedDate: instance.AttributedDate.AddDate(0, 0, 1),
		Overnight:      instance.Overnight,
	}
}

// clockOn places a minute-of-day on a calendar date in that date's location.
func clockOn(day time.Time, minuteOfDay int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), minuteOfDay/60, minuteOfDay%60, 0, 0, day.Location())
}

func (r *Resolver) parseSpec(spec shift.Spec) (int, int, error) {
	var errs validator.ValidationErrors

	startMin, ok := validator.IsValidClock(spec.Start)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "shift_start", Message: "must be a valid HH:MM time"})
	}
	endMin, ok := validator.IsValidClock(spec.End)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "shift_end", Message: "must be a valid HH:MM time"})
	}
	if len(errs) == 0 && startMin == endMin {
		errs = append(errs, validator.ValidationError{Field: "shift_end", Message: "must differ from shift_start"})
	}

	if len(errs) > 0 {
		return 0, 0, errs
	}
	return startMin, endMin, nil
}
