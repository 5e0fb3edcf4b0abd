package shift

import (
	"errors"
	"testing"
	"time"

	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/shift"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestResolveOvernightShift(t *testing.T) {
	t.Parallel()

	resolver := NewResolver()
	spec := shift.Spec{Start: "21:00", End: "05:00"}

	tests := []struct {
		name           string
		now            time.Time
		wantAttributed time.Time
		wantStartsAt   time.Time
		wantEndsAt     time.Time
	}{
		{
			name:           "during evening leg belongs to today",
			now:            date(2025, time.June, 10, 22, 0),
			wantAttributed: date(2025, time.June, 10, 0, 0),
			wantStartsAt:   date(2025, time.June, 10, 21, 0),
			wantEndsAt:     date(2025, time.June, 11, 5, 0),
		},
		{
			name:           "after midnight still belongs to the start day",
			now:            date(2025, time.June, 11, 2, 0),
			wantAttributed: date(2025, time.June, 10, 0, 0),
			wantStartsAt:   date(2025, time.June, 10, 21, 0),
			wantEndsAt:     date(2025, time.June, 11, 5, 0),
		},
		{
			name:           "between shifts rolls over to the next window",
			now:            date(2025, time.June, 11, 6, 0),
			wantAttributed: date(2025, time.June, 11, 0, 0),
			wantStartsAt:   date(2025, time.June, 11, 21, 0),
			wantEndsAt:     date(2025, time.June, 12, 5, 0),
		},
		{
			name:           "exactly at shift start opens today's window",
			now:            date(2025, time.June, 10, 21, 0),
			wantAttributed: date(2025, time.June, 10, 0, 0),
			wantStartsAt:   date(2025, time.June, 10, 21, 0),
			wantEndsAt:     date(2025, time.June, 11, 5, 0),
		},
		{
			name:           "exactly at shift end already rolls over",
			now:            date(2025, time.June, 11, 5, 0),
			wantAttributed: date(2025, time.June, 11, 0, 0),
			wantStartsAt:   date(2025, time.June, 11, 21, 0),
			wantEndsAt:     date(2025, time.June, 12, 5, 0),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Act
			instance, err := resolver.Resolve(spec, tt.now)

			// Assert
			require.NoError(t, err)
			assert.True(t, instance.Overnight)
			assert.Equal(t, tt.wantAttributed, instance.AttributedDate)
			assert.Equal(t, tt.wantStartsAt, instance.StartsAt)
			assert.Equal(t, tt.wantEndsAt, instance.EndsAt)
			assert.True(t, instance.StartsAt.Before(instance.EndsAt))
		})
	}
}

func TestResolveSameDayShift(t *testing.T) {
	t.Parallel()

	resolver := NewResolver()
	spec := shift.Spec{Start: "09:00", End: "17:00"}

	tests := []struct {
		name           string
		now            time.Time
		wantAttributed time.Time
	}{
		{
			name:           "during the shift belongs to today",
			now:            date(2025, time.June, 10, 10, 0),
			wantAttributed: date(2025, time.June, 10, 0, 0),
		},
		{
			name:           "before today's start resolves to yesterday's window",
			now:            date(2025, time.June, 10, 7, 0),
			wantAttributed: date(2025, time.June, 9, 0, 0),
		},
		{
			name:           "after the shift end still belongs to today",
			now:            date(2025, time.June, 10, 18, 0),
			wantAttributed: date(2025, time.June, 10, 0, 0),
		},
		{
			name:           "exactly at shift start opens today's window",
			now:            date(2025, time.June, 10, 9, 0),
			wantAttributed: date(2025, time.June, 10, 0, 0),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Act
			instance, err := resolver.Resolve(spec, tt.now)

			// Assert
			require.NoError(t, err)
			assert.False(t, instance.Overnight)
			assert.Equal(t, tt.wantAttributed, instance.AttributedDate)
			assert.Equal(t, tt.wantAttributed.Add(9*time.Hour), instance.StartsAt)
			assert.Equal(t, tt.wantAttributed.Add(17*time.Hour), instance.EndsAt)
		})
	}
}

func TestResolveWeekendAttribution(t *testing.T) {
	t.Parallel()

	resolver := NewResolver()
	spec := shift.Spec{Start: "21:00", End: "05:00"}

	t.Run("friday night shift spilling into saturday is a working shift", func(t *testing.T) {
		t.Parallel()

		// Act: 2025-06-14 is a Saturday; 02:00 is the tail of Friday's shift.
		instance, err := resolver.Resolve(spec, date(2025, time.June, 14, 2, 0))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, date(2025, time.June, 13, 0, 0), instance.AttributedDate)
		assert.False(t, instance.Paused())
	})

	t.Run("shift starting on saturday is paused", func(t *testing.T) {
		t.Parallel()

		// Act
		instance, err := resolver.Resolve(spec, date(2025, time.June, 14, 22, 0))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, date(2025, time.June, 14, 0, 0), instance.AttributedDate)
		assert.True(t, instance.Paused())
	})
}

func TestResolveInvalidSpec(t *testing.T) {
	t.Parallel()

	resolver := NewResolver()

	tests := []struct {
		name      string
		spec      shift.Spec
		wantField string
	}{
		{
			name:      "malformed start time",
			spec:      shift.Spec{Start: "9pm", End: "05:00"},
			wantField: "shift_start",
		},
		{
			name:      "out of range start time",
			spec:      shift.Spec{Start: "25:00", End: "05:00"},
			wantField: "shift_start",
		},
		{
			name:      "empty end time",
			spec:      shift.Spec{Start: "21:00", End: ""},
			wantField: "shift_end",
		},
		{
			name:      "equal start and end",
			spec:      shift.Spec{Start: "09:00", End: "09:00"},
			wantField: "shift_end",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Act
			_, err := resolver.Resolve(tt.spec, date(2025, time.June, 10, 12, 0))

			// Assert
			require.Error(t, err)
			var validationErrs validator.ValidationErrors
			require.True(t, errors.As(err, &validationErrs))
			assert.Contains(t, validationErrs.ToMap(), tt.wantField)
		})
	}
}
