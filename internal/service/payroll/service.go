package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/attendance"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/employee"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/payroll"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/performance"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/shift"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/pkg/calendar"
	shiftsvc "github.com/BytesPlatform-ops/sales-management-sub000/internal/service/shift"
)

type PayrollServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	statRepo       performance.DailyStatRepository
	attendanceRepo attendance.AttendanceRepository
	resolver       *shiftsvc.Resolver
	calculator     *SalaryCalculator
	targets        performance.TargetsByType
	launchDate     time.Time
	loc            *time.Location
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	statRepo performance.DailyStatRepository,
	attendanceRepo attendance.AttendanceRepository,
	resolver *shiftsvc.Resolver,
	calculator *SalaryCalculator,
	targets performance.TargetsByType,
	launchDate time.Time,
	loc *time.Location,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo:   employeeRepo,
		statRepo:       statRepo,
		attendanceRepo: attendanceRepo,
		resolver:       resolver,
		calculator:     calculator,
		targets:        targets,
		launchDate:     launchDate,
		loc:            loc,
	}
}

// GetSalaryBreakdown implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetSalaryBreakdown(ctx context.Context, req payroll.GetBreakdownRequest) (payroll.SalaryBreakdownResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryBreakdownResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.SalaryBreakdownResponse{}, err
	}

	ref, err := s.referenceDate(emp, req.Date)
	if err != nil {
		return payroll.SalaryBreakdownResponse{}, err
	}

	targets, ok := s.targets[string(emp.EmploymentType)]
	if !ok {
		return payroll.SalaryBreakdownResponse{}, performance.ErrTargetsNotConfigured
	}

	monthStart := calendar.MonthStart(ref)

	stats, err := s.statRepo.ListByEmployeeAndRange(ctx, emp.ID, monthStart, ref)
	if err != nil {
		return payroll.SalaryBreakdownResponse{}, fmt.Errorf("failed to list daily stats: %w", err)
	}
	attendances, err := s.attendanceRepo.ListByEmployeeAndRange(ctx, emp.ID, monthStart, ref)
	if err != nil {
		return payroll.SalaryBreakdownResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	pastDays, today := s.pairDays(stats, attendances, ref)

	breakdown, err := s.calculator.Breakdown(BreakdownInput{
		EmployeeID:    emp.ID,
		BaseSalary:    emp.BaseSalary,
		Targets:       targets,
		LaunchDate:    s.launchDate,
		ReferenceDate: ref,
		PastDays:      pastDays,
		Today:         today,
	})
	if err != nil {
		return payroll.SalaryBreakdownResponse{}, err
	}

	return mapBreakdownToResponse(breakdown), nil
}

// referenceDate picks the breakdown's reference date: an explicit date wins,
// otherwise the attributed date of the agent's current shift, so an
// overnight agent checking at 02:00 still sees the month as of the day
// their shift began.
func (s *PayrollServiceImpl) referenceDate(emp employee.Employee, date *string) (time.Time, error) {
	if date != nil && *date != "" {
		return time.ParseInLocation("2006-01-02", *date, s.loc)
	}

	now := time.Now().In(s.loc)
	instance, err := s.resolver.Resolve(shift.Spec{Start: emp.ShiftStart, End: emp.ShiftEnd}, now)
	if err != nil {
		return time.Time{}, err
	}
	return instance.AttributedDate, nil
}

// pairDays joins stat and attendance rows on their attributed date and
// splits the result into past pairs and the reference date's pair.
func (s *PayrollServiceImpl) pairDays(stats []performance.DailyStat, attendances []attendance.Attendance, ref time.Time) ([]DayInput, *DayInput) {
	byDate := make(map[string]*DayInput)
	var order []string

	dayFor := func(date time.Time) *DayInput {
		key := date.Format("2006-01-02")
		day, ok := byDate[key]
		if !ok {
			day = &DayInput{Date: s.dateInLoc(date)}
			byDate[key] = day
			order = append(order, key)
		}
		return day
	}

	for i := range stats {
		dayFor(stats[i].Date).Stat = &stats[i]
	}
	for i := range attendances {
		dayFor(attendances[i].Date).Attendance = &attendances[i]
	}

	var pastDays []DayInput
	var today *DayInput
	for _, key := range order {
		day := byDate[key]
		if day.Date.Equal(ref) {
			today = day
			continue
		}
		pastDays = append(pastDays, *day)
	}

	return pastDays, today
}

// dateInLoc renormalizes a date read from storage into the business
// timezone so calendar arithmetic stays consistent.
func (s *PayrollServiceImpl) dateInLoc(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.loc)
}

func mapBreakdownToResponse(b payroll.SalaryBreakdown) payroll.SalaryBreakdownResponse {
	return payroll.SalaryBreakdownResponse{
		EmployeeID:    b.EmployeeID,
		ReferenceDate: b.ReferenceDate.Format("2006-01-02"),

		BaseSalary:          b.BaseSalary.StringFixed(2),
		WorkingDaysInMonth:  b.WorkingDaysInMonth,
		WorkingDaysElapsed:  b.WorkingDaysElapsed,
		WorkingDaysRemained: b.WorkingDaysRemained,
		DailyPotential:      b.DailyPotential.StringFixed(2),

		GhostDays:      b.GhostDays,
		GhostEarnings:  b.GhostEarnings.StringFixed(2),
		ActiveEarnings: b.ActiveEarnings.StringFixed(2),
		TodayEarnings:  b.TodayEarnings.StringFixed(2),

		TotalLates:         b.TotalLates,
		FreeLatesUsed:      b.FreeLatesUsed,
		FreeLatesRemaining: b.FreeLatesRemaining,
		ExcessLates:        b.ExcessLates,
		TotalHalfDays:      b.TotalHalfDays,
		DeductionDays:      b.DeductionDays,
		DeductionAmount:    b.DeductionAmount.StringFixed(2),

		TotalEarned:         b.TotalEarned.StringFixed(2),
		AvgPerformanceScore: b.AvgPerformanceScore,
		ProjectedSalary:     b.ProjectedSalary.StringFixed(2),
	}
}
