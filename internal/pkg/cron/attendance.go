package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/attendance"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/employee"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/pkg/calendar"
)

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	launchDate     time.Time
	loc            *time.Location
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	launchDate time.Time,
	loc *time.Location,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		launchDate:     launchDate,
		loc:            loc,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler, spec string) error {
	return scheduler.AddJob("mark_absent_agents", spec, j.MarkAbsentAgents)
}

// MarkAbsentAgents backfills an absent attendance row for every active agent
// who has no record for yesterday's attributed date. It runs after the last
// overnight shift attributed to yesterday has closed, so a missing row at
// that point means the agent never checked in.
func (j *AttendanceJobs) MarkAbsentAgents(ctx context.Context) error {
	yesterday := calendar.StartOfDay(time.Now().In(j.loc).AddDate(0, 0, -1))
	return j.markAbsentFor(ctx, yesterday)
}

func (j *AttendanceJobs) markAbsentFor(ctx context.Context, date time.Time) error {
	// Shifts are paused on weekends; there is nothing to sweep.
	if !calendar.IsWorkingDay(date) {
		return nil
	}

	// Days before system launch carry no telemetry.
	if date.Before(j.launchDate) {
		return nil
	}

	slog.Info("Cron: Starting mark absent agents job", "date", date.Format("2006-01-02"))

	employees, err := j.employeeRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to get active employees: %w", err)
	}

	markedCount := 0
	for _, emp := range employees {
		existing, err := j.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, date)
		if err != nil {
			slog.Error("Cron: Failed to check attendance", "employee_id", emp.ID, "error", err)
			continue
		}
		if existing != nil {
			// Already has a record (either checked in or marked absent), skip
			continue
		}

		absenceRecord := attendance.Attendance{
			EmployeeID:  emp.ID,
			Date:        date,
			Status:      attendance.StatusAbsent,
			HRApproved:  false,
			LateMinutes: 0,
		}

		if _, err := j.attendanceRepo.Create(ctx, absenceRecord); err != nil {
			slog.Error("Cron: Failed to create absence record",
				"employee_id", emp.ID,
				"date", date.Format("2006-01-02"),
				"error", err)
			continue
		}

		markedCount++
	}

	slog.Info("Cron: Marked absent agents", "count", markedCount)
	return nil
}
