package payroll

import (
	"testing"
	"time"

	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/attendance"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/payroll"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/performance"
	perfsvc "github.com/BytesPlatform-ops/sales-management-sub000/internal/service/performance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// June 2025 has 21 working days, so a base salary of 84000 gives a daily
// potential of exactly 4000.
const baseSalary = 84000

func newCalculator(clamp bool) *SalaryCalculator {
	scorer := perfsvc.NewScoreCalculator(performance.Weights{Calls: 0.40, TalkTime: 0.30, Leads: 0.30})
	return NewSalaryCalculator(payroll.Policy{FreeLates: 3, ClampNegativeTotal: clamp}, scorer)
}

func testTargets() performance.Targets {
	return performance.Targets{Calls: 120, TalkTimeSeconds: 10800, Leads: 3}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fullStat() *performance.DailyStat {
	return &performance.DailyStat{Calls: 120, TalkTimeSeconds: 10800, LeadsApproved: 3}
}

func att(status attendance.Status, approved bool) *attendance.Attendance {
	return &attendance.Attendance{Status: status, HRApproved: approved}
}

func TestLatePolicy(t *testing.T) {
	t.Parallel()

	calculator := newCalculator(false)

	repeat := func(status attendance.Status, n int) []attendance.Attendance {
		records := make([]attendance.Attendance, 0, n)
		for i := 0; i < n; i++ {
			records = append(records, attendance.Attendance{Status: status})
		}
		return records
	}

	tests := []struct {
		name string
		in   []attendance.Attendance
		want LatePolicyResult
	}{
		{
			name: "no records",
			in:   nil,
			want: LatePolicyResult{FreeLatesRemaining: 3},
		},
		{
			name: "two lates are free",
			in:   repeat(attendance.StatusLate, 2),
			want: LatePolicyResult{TotalLates: 2, FreeLatesUsed: 2, FreeLatesRemaining: 1},
		},
		{
			name: "four lates and one half day",
			in:   append(repeat(attendance.StatusLate, 4), attendance.Attendance{Status: attendance.StatusHalfDay}),
			want: LatePolicyResult{TotalLates: 4, FreeLatesUsed: 3, ExcessLates: 1, TotalHalfDays: 1, DeductionDays: 1.0},
		},
		{
			name: "six lates",
			in:   repeat(attendance.StatusLate, 6),
			want: LatePolicyResult{TotalLates: 6, FreeLatesUsed: 3, ExcessLates: 3, DeductionDays: 1.5},
		},
		{
			name: "on time and absent days never count",
			in:   append(repeat(attendance.StatusOnTime, 5), repeat(attendance.StatusAbsent, 2)...),
			want: LatePolicyResult{FreeLatesRemaining: 3},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Act
			got := calculator.LatePolicy(tt.in)

			// Assert
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDailyEarnings(t *testing.T) {
	t.Parallel()

	calculator := newCalculator(false)
	potential := decimal.NewFromInt(4000)

	tests := []struct {
		name  string
		score float64
		att   *attendance.Attendance
		want  string
	}{
		{name: "missing attendance pays nothing", score: 1, att: nil, want: "0.00"},
		{name: "on time at full score", score: 1, att: att(attendance.StatusOnTime, false), want: "4000.00"},
		{name: "late still earns in full for the day", score: 1, att: att(attendance.StatusLate, false), want: "4000.00"},
		{name: "approved half day earns half", score: 1, att: att(attendance.StatusHalfDay, true), want: "2000.00"},
		{name: "unapproved half day is halved twice", score: 1, att: att(attendance.StatusHalfDay, false), want: "1000.00"},
		{name: "absent earns nothing", score: 1, att: att(attendance.StatusAbsent, true), want: "0.00"},
		{name: "score scales the day", score: 0.5, att: att(attendance.StatusOnTime, true), want: "2000.00"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Act
			got := calculator.DailyEarnings(potential, tt.score, tt.att)

			// Assert
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestBreakdownGhostDays(t *testing.T) {
	t.Parallel()

	calculator := newCalculator(false)

	// Launch on Tue June 10; working days June 2-9 are the ghost span.
	input := BreakdownInput{
		EmployeeID:    "emp-1",
		BaseSalary:    decimal.NewFromInt(baseSalary),
		Targets:       testTargets(),
		LaunchDate:    day(2025, time.June, 10),
		ReferenceDate: day(2025, time.June, 20),
		Today:         &DayInput{Date: day(2025, time.June, 20), Stat: fullStat(), Attendance: att(attendance.StatusOnTime, true)},
	}
	for _, d := range []int{10, 11, 12, 13, 16, 17, 18, 19} {
		input.PastDays = append(input.PastDays, DayInput{
			Date:       day(2025, time.June, d),
			Stat:       fullStat(),
			Attendance: att(attendance.StatusOnTime, true),
		})
	}
	// Rows from before launch or on weekends never add to active earnings.
	input.PastDays = append(input.PastDays,
		DayInput{Date: day(2025, time.June, 5), Stat: fullStat(), Attendance: att(attendance.StatusOnTime, true)},
		DayInput{Date: day(2025, time.June, 14), Stat: fullStat(), Attendance: att(attendance.StatusOnTime, true)},
	)

	// Act
	breakdown, err := calculator.Breakdown(input)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 21, breakdown.WorkingDaysInMonth)
	assert.Equal(t, 15, breakdown.WorkingDaysElapsed)
	assert.Equal(t, 6, breakdown.WorkingDaysRemained)
	assert.Equal(t, "4000.00", breakdown.DailyPotential.StringFixed(2))
	assert.Equal(t, 6, breakdown.GhostDays)
	assert.Equal(t, "24000.00", breakdown.GhostEarnings.StringFixed(2))
	assert.Equal(t, "32000.00", breakdown.ActiveEarnings.StringFixed(2))
	assert.Equal(t, "4000.00", breakdown.TodayEarnings.StringFixed(2))
	assert.Equal(t, "0.00", breakdown.DeductionAmount.StringFixed(2))
	assert.Equal(t, "60000.00", breakdown.TotalEarned.StringFixed(2))
	assert.InDelta(t, 1.0, breakdown.AvgPerformanceScore, 1e-9)
	assert.Equal(t, "84000.00", breakdown.ProjectedSalary.StringFixed(2))
}

func TestBreakdownLaunchInFutureMonth(t *testing.T) {
	t.Parallel()

	calculator := newCalculator(false)

	// Act: system launches next month, so every elapsed day is a ghost day.
	breakdown, err := calculator.Breakdown(BreakdownInput{
		EmployeeID:    "emp-1",
		BaseSalary:    decimal.NewFromInt(baseSalary),
		Targets:       testTargets(),
		LaunchDate:    day(2025, time.July, 15),
		ReferenceDate: day(2025, time.June, 20),
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 15, breakdown.GhostDays)
	assert.Equal(t, "60000.00", breakdown.GhostEarnings.StringFixed(2))
	assert.Equal(t, "60000.00", breakdown.TotalEarned.StringFixed(2))
	assert.Zero(t, breakdown.AvgPerformanceScore)
	assert.Equal(t, "60000.00", breakdown.ProjectedSalary.StringFixed(2))
}

func TestBreakdownMissingAttendanceIsUnpaid(t *testing.T) {
	t.Parallel()

	calculator := newCalculator(false)

	// Act: full telemetry on June 10 but nobody checked in.
	breakdown, err := calculator.Breakdown(BreakdownInput{
		EmployeeID:    "emp-1",
		BaseSalary:    decimal.NewFromInt(baseSalary),
		Targets:       testTargets(),
		LaunchDate:    day(2025, time.June, 1),
		ReferenceDate: day(2025, time.June, 11),
		PastDays:      []DayInput{{Date: day(2025, time.June, 10), Stat: fullStat()}},
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0, breakdown.GhostDays)
	assert.Equal(t, "0.00", breakdown.ActiveEarnings.StringFixed(2))
	assert.Equal(t, "0.00", breakdown.TotalEarned.StringFixed(2))
}

func TestBreakdownUnapprovedHalfDay(t *testing.T) {
	t.Parallel()

	input := BreakdownInput{
		EmployeeID:    "emp-1",
		BaseSalary:    decimal.NewFromInt(baseSalary),
		Targets:       testTargets(),
		LaunchDate:    day(2025, time.June, 1),
		ReferenceDate: day(2025, time.June, 11),
		PastDays: []DayInput{
			{Date: day(2025, time.June, 10), Stat: fullStat(), Attendance: att(attendance.StatusHalfDay, false)},
		},
	}

	t.Run("deduction can drive the total negative", func(t *testing.T) {
		t.Parallel()

		// Act
		breakdown, err := newCalculator(false).Breakdown(input)

		// Assert: the day earns 4000*0.5*0.5, the half-day deducts 2000.
		require.NoError(t, err)
		assert.Equal(t, "1000.00", breakdown.ActiveEarnings.StringFixed(2))
		assert.Equal(t, 1, breakdown.TotalHalfDays)
		assert.Equal(t, 0.5, breakdown.DeductionDays)
		assert.Equal(t, "2000.00", breakdown.DeductionAmount.StringFixed(2))
		assert.Equal(t, "-1000.00", breakdown.TotalEarned.StringFixed(2))
		assert.Equal(t, "51000.00", breakdown.ProjectedSalary.StringFixed(2))
	})

	t.Run("clamp floors the total at zero", func(t *testing.T) {
		t.Parallel()

		// Act
		breakdown, err := newCalculator(true).Breakdown(input)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "0.00", breakdown.TotalEarned.StringFixed(2))
		assert.Equal(t, "52000.00", breakdown.ProjectedSalary.StringFixed(2))
	})
}

func TestBreakdownLatePolicyIntegration(t *testing.T) {
	t.Parallel()

	calculator := newCalculator(false)

	input := BreakdownInput{
		EmployeeID:    "emp-1",
		BaseSalary:    decimal.NewFromInt(baseSalary),
		Targets:       testTargets(),
		LaunchDate:    day(2025, time.June, 1),
		ReferenceDate: day(2025, time.June, 20),
		Today:         &DayInput{Date: day(2025, time.June, 20), Stat: fullStat(), Attendance: att(attendance.StatusOnTime, true)},
	}
	statuses := map[int]*attendance.Attendance{
		2: att(attendance.StatusLate, true),
		3: att(attendance.StatusLate, true),
		4: att(attendance.StatusLate, true),
		5: att(attendance.StatusLate, true),
		6: att(attendance.StatusHalfDay, true),
	}
	for _, d := range []int{2, 3, 4, 5, 6, 9, 10, 11, 12, 13, 16, 17, 18, 19} {
		a := statuses[d]
		if a == nil {
			a = att(attendance.StatusOnTime, true)
		}
		input.PastDays = append(input.PastDays, DayInput{Date: day(2025, time.June, d), Stat: fullStat(), Attendance: a})
	}

	// Act
	breakdown, err := calculator.Breakdown(input)

	// Assert: 4 lates burn the 3 free ones, the excess late plus the
	// half-day cost one full day's potential.
	require.NoError(t, err)
	assert.Equal(t, 4, breakdown.TotalLates)
	assert.Equal(t, 3, breakdown.FreeLatesUsed)
	assert.Equal(t, 0, breakdown.FreeLatesRemaining)
	assert.Equal(t, 1, breakdown.ExcessLates)
	assert.Equal(t, 1, breakdown.TotalHalfDays)
	assert.Equal(t, 1.0, breakdown.DeductionDays)
	assert.Equal(t, "4000.00", breakdown.DeductionAmount.StringFixed(2))
	assert.Equal(t, "54000.00", breakdown.ActiveEarnings.StringFixed(2))
	assert.Equal(t, "4000.00", breakdown.TodayEarnings.StringFixed(2))
	assert.Equal(t, "54000.00", breakdown.TotalEarned.StringFixed(2))
	assert.Equal(t, "78000.00", breakdown.ProjectedSalary.StringFixed(2))
}

func TestBreakdownIsDeterministic(t *testing.T) {
	t.Parallel()

	calculator := newCalculator(false)

	input := BreakdownInput{
		EmployeeID:    "emp-1",
		BaseSalary:    decimal.NewFromInt(baseSalary),
		Targets:       testTargets(),
		LaunchDate:    day(2025, time.June, 1),
		ReferenceDate: day(2025, time.June, 20),
		PastDays: []DayInput{
			{Date: day(2025, time.June, 10), Stat: &performance.DailyStat{Calls: 77, TalkTimeSeconds: 4321, LeadsApproved: 1}, Attendance: att(attendance.StatusLate, true)},
			{Date: day(2025, time.June, 11), Stat: &performance.DailyStat{Calls: 130, TalkTimeSeconds: 9999, LeadsApproved: 2}, Attendance: att(attendance.StatusHalfDay, false)},
		},
		Today: &DayInput{Date: day(2025, time.June, 20), Stat: fullStat(), Attendance: att(attendance.StatusOnTime, true)},
	}

	// Act
	first, err := calculator.Breakdown(input)
	require.NoError(t, err)
	second, err := calculator.Breakdown(input)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, first, second)
}
