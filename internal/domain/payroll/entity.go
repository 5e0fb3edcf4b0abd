package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Policy - month-level pay rules applied on top of daily earnings
type Policy struct {
	// FreeLates is how many late arrivals per month carry no deduction.
	FreeLates int
	// ClampNegativeTotal floors the net month total at zero. Off by
	// default: heavy deductions may legitimately drive the figure negative
	// and finance wants to see that.
	ClampNegativeTotal bool
}

// SalaryBreakdown - derived month-to-date earnings figure, computed fresh
// on every request and never persisted
type SalaryBreakdown struct {
	EmployeeID    string
	ReferenceDate time.Time

	BaseSalary          decimal.Decimal
	WorkingDaysInMonth  int
	WorkingDaysElapsed  int
	WorkingDaysRemained int
	DailyPotential      decimal.Decimal

	GhostDays      int
	GhostEarnings  decimal.Decimal
	ActiveEarnings decimal.Decimal
	TodayEarnings  decimal.Decimal

	TotalLates         int
	FreeLatesUsed      int
	FreeLatesRemaining int
	ExcessLates        int
	TotalHalfDays      int
	DeductionDays      float64
	DeductionAmount    decimal.Decimal

	TotalEarned         decimal.Decimal
	AvgPerformanceScore float64
	ProjectedSalary     decimal.Decimal
}
