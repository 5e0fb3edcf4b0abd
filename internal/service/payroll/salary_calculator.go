package payroll

import (
	"time"

	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/attendance"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/payroll"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/performance"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/pkg/calendar"
	perfsvc "github.com/BytesPlatform-ops/sales-management-sub000/internal/service/performance"
	"github.com/shopspring/decimal"
)

// DayInput pairs one attributed date's telemetry with its attendance record.
// Either side may be nil: no telemetry scores 0, no attendance pays 0.
type DayInput struct {
	Date       time.Time
	Stat       *performance.DailyStat
	Attendance *attendance.Attendance
}

// BreakdownInput carries everything the calculator needs. It holds no clock:
// the caller supplies the reference date, so identical inputs always produce
// identical breakdowns.
type BreakdownInput struct {
	EmployeeID    string
	BaseSalary    decimal.Decimal
	Targets       performance.Targets
	LaunchDate    time.Time
	ReferenceDate time.Time

	// PastDays are the month's day pairs strictly before the reference
	// date. Today is the reference date's pair, nil when it has no rows.
	PastDays []DayInput
	Today    *DayInput
}

// LatePolicyResult is the month-level outcome of the free-lates policy.
type LatePolicyResult struct {
	TotalLates         int
	FreeLatesUsed      int
	FreeLatesRemaining int
	ExcessLates        int
	TotalHalfDays      int
	DeductionDays      float64
}

// SalaryCalculator derives month-to-date earnings from calendar arithmetic,
// per-day scores and attendance multipliers. All methods are pure.
type SalaryCalculator struct {
	policy payroll.Policy
	scorer *perfsvc.ScoreCalculator
}

func NewSalaryCalculator(policy payroll.Policy, scorer *perfsvc.ScoreCalculator) *SalaryCalculator {
	return &SalaryCalculator{
		policy: policy,
		scorer: scorer,
	}
}

// LatePolicy counts the month's lates and half-days and converts them into
// deduction days. The first FreeLates late arrivals are free; each excess
// late and each half-day costs half a day's pay, applied once at month
// level rather than on the day itself.
func (c *SalaryCalculator) LatePolicy(records []attendance.Attendance) LatePolicyResult {
	totalLates := 0
	totalHalfDays := 0
	for _, att := range records {
		switch att.Status {
		case attendance.StatusLate:
			totalLates++
		case attendance.StatusHalfDay:
			totalHalfDays++
		}
	}

	freeLatesUsed := totalLates
	if freeLatesUsed > c.policy.FreeLates {
		freeLatesUsed = c.policy.FreeLates
	}
	excessLates := totalLates - c.policy.FreeLates
	if excessLates < 0 {
		excessLates = 0
	}

	return LatePolicyResult{
		TotalLates:         totalLates,
		FreeLatesUsed:      freeLatesUsed,
		FreeLatesRemaining: c.policy.FreeLates - freeLatesUsed,
		ExcessLates:        excessLates,
		TotalHalfDays:      totalHalfDays,
		DeductionDays:      float64(totalHalfDays)*0.5 + float64(excessLates)*0.5,
	}
}

// DailyEarnings applies the attendance multiplier to a day's scored
// potential. A late day still earns in full here; its penalty lands in the
// month-level late policy. An unapproved half-day is halved twice.
func (c *SalaryCalculator) DailyEarnings(dailyPotential decimal.Decimal, score float64, att *attendance.Attendance) decimal.Decimal {
	if att == nil {
		// No recorded attendance means unpaid for that day.
		return decimal.Zero
	}

	earnings := dailyPotential.Mul(decimal.NewFromFloat(score))
	switch att.Status {
	case attendance.StatusOnTime, attendance.StatusLate:
		return earnings
	case attendance.StatusHalfDay:
		earnings = earnings.Mul(decimal.NewFromFloat(0.5))
		if !att.HRApproved {
			earnings = earnings.Mul(decimal.NewFromFloat(0.5))
		}
		return earnings
	default:
		return decimal.Zero
	}
}

// Breakdown assembles the full month-to-date figure. Monetary amounts
// accumulate at full precision and are rounded to 2 decimal places once,
// per returned field.
func (c *SalaryCalculator) Breakdown(in BreakdownInput) (payroll.SalaryBreakdown, error) {
	ref := calendar.StartOfDay(in.ReferenceDate)
	monthStart := calendar.MonthStart(ref)

	workingDaysInMonth := calendar.WorkingDaysInMonth(ref)
	if workingDaysInMonth == 0 {
		return payroll.SalaryBreakdown{}, payroll.ErrNoWorkingDays
	}
	elapsed := calendar.WorkingDaysElapsed(ref)
	remaining := calendar.WorkingDaysRemaining(ref)

	dailyPotential := in.BaseSalary.Div(decimal.NewFromInt(int64(workingDaysInMonth)))

	// Ghost span: working days this month from before the system existed,
	// paid at full potential since no telemetry was recorded back then.
	launch := calendar.StartOfDay(in.LaunchDate)
	ghostCutoff := launch.AddDate(0, 0, -1)
	if ghostCutoff.After(ref) {
		ghostCutoff = ref
	}
	ghostDays := calendar.WorkingDaysBetween(monthStart, ghostCutoff)
	ghostEarnings := dailyPotential.Mul(decimal.NewFromInt(int64(ghostDays)))

	activeStart := launch
	if monthStart.After(launch) {
		activeStart = monthStart
	}

	activeEarnings := decimal.Zero
	var scores []float64
	var attendanceRecords []attendance.Attendance

	for _, day := range in.PastDays {
		date := calendar.StartOfDay(day.Date)
		if date.Before(activeStart) || !date.Before(ref) || !calendar.IsWorkingDay(date) {
			continue
		}

		score, err := c.dayScore(day, in.Targets)
		if err != nil {
			return payroll.SalaryBreakdown{}, err
		}
		scores = append(scores, score)
		if day.Attendance != nil {
			attendanceRecords = append(attendanceRecords, *day.Attendance)
		}

		activeEarnings = activeEarnings.Add(c.DailyEarnings(dailyPotential, score, day.Attendance))
	}

	todayEarnings := decimal.Zero
	if in.Today != nil {
		date := calendar.StartOfDay(in.Today.Date)
		if date.Equal(ref) && !date.Before(activeStart) && calendar.IsWorkingDay(date) {
			score, err := c.dayScore(*in.Today, in.Targets)
			if err != nil {
				return payroll.SalaryBreakdown{}, err
			}
			scores = append(scores, score)
			if in.Today.Attendance != nil {
				attendanceRecords = append(attendanceRecords, *in.Today.Attendance)
			}

			todayEarnings = c.DailyEarnings(dailyPotential, score, in.Today.Attendance)
		}
	}

	// Late policy runs over the union of past and today attendance.
	latePolicy := c.LatePolicy(attendanceRecords)
	deductionAmount := dailyPotential.Mul(decimal.NewFromFloat(latePolicy.DeductionDays))

	totalEarned := ghostEarnings.Add(activeEarnings).Add(todayEarnings).Sub(deductionAmount)
	if c.policy.ClampNegativeTotal && totalEarned.IsNegative() {
		totalEarned = decimal.Zero
	}

	// Ghost days carry no telemetry and stay out of the average.
	avgScore := 0.0
	if len(scores) > 0 {
		sum := 0.0
		for _, s := range scores {
			sum += s
		}
		avgScore = sum / float64(len(scores))
	}

	projected := totalEarned.Add(
		dailyPotential.Mul(decimal.NewFromInt(int64(remaining))).Mul(decimal.NewFromFloat(avgScore)))

	return payroll.SalaryBreakdown{
		EmployeeID:    in.EmployeeID,
		ReferenceDate: ref,

		BaseSalary:          in.BaseSalary.Round(2),
		WorkingDaysInMonth:  workingDaysInMonth,
		WorkingDaysElapsed:  elapsed,
		WorkingDaysRemained: remaining,
		DailyPotential:      dailyPotential.Round(2),

		GhostDays:      ghostDays,
		GhostEarnings:  ghostEarnings.Round(2),
		ActiveEarnings: activeEarnings.Round(2),
		TodayEarnings:  todayEarnings.Round(2),

		TotalLates:         latePolicy.TotalLates,
		FreeLatesUsed:      latePolicy.FreeLatesUsed,
		FreeLatesRemaining: latePolicy.FreeLatesRemaining,
		ExcessLates:        latePolicy.ExcessLates,
		TotalHalfDays:      latePolicy.TotalHalfDays,
		DeductionDays:      latePolicy.DeductionDays,
		DeductionAmount:    deductionAmount.Round(2),

		TotalEarned:         totalEarned.Round(2),
		AvgPerformanceScore: avgScore,
		ProjectedSalary:     projected.Round(2),
	}, nil
}

func (c *SalaryCalculator) dayScore(day DayInput, targets performance.Targets) (float64, error) {
	if day.Stat == nil {
		return 0, nil
	}
	return c.scorer.Score(*day.Stat, targets)
}
