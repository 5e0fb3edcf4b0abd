package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/attendance"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/employee"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/shift"
	shiftsvc "github.com/BytesPlatform-ops/sales-management-sub000/internal/service/shift"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	resolver         *shiftsvc.Resolver
	lateGraceMinutes int
	loc              *time.Location
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !emp.IsActive {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeInactive
	}

	now := time.Now().In(a.loc)
	instance, err := a.resolver.Resolve(shift.Spec{Start: emp.ShiftStart, End: emp.ShiftEnd}, now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// An arrival after the resolved window has already ended is an early
	// check-in for the next shift, not a very late one for the last.
	if now.After(instance.EndsAt) {
		instance = a.resolver.Next(instance)
	}

	if instance.Paused() {
		return attendance.AttendanceResponse{}, attendance.ErrShiftPaused
	}

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, instance.AttributedDate)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check for existing attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	graceLimit := instance.StartsAt.Add(time.Duration(a.lateGraceMinutes) * time.Minute)

	status := attendance.StatusOnTime
	lateMinutes := 0
	if now.After(graceLimit) {
		status = attendance.StatusLate
		// Lateness counts from the scheduled start, not from the grace limit.
		diff := now.Sub(instance.StartsAt).Minutes()
		if diff > 0 {
			lateMinutes = int(math.Floor(diff))
		}
	}

	created, err := a.AttendanceRepository.Create(ctx, attendance.Attendance{
		EmployeeID:  emp.ID,
		Date:        instance.AttributedDate,
		Status:      status,
		HRApproved:  false,
		LateMinutes: lateMinutes,
		CheckedInAt: &now,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return mapAttendanceToResponse(created), nil
}

// GetAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	att, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(att), nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, totalCount, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	return attendance.ListAttendanceResponse{
		Attendances: responses,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalCount:  totalCount,
	}, nil
}

// UpdateAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.Status != nil {
		att.Status = attendance.Status(*req.Status)
	}
	if req.Note != nil {
		att.Note = req.Note
	}

	if err := a.AttendanceRepository.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	updated, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get updated attendance: %w", err)
	}

	return mapAttendanceToResponse(updated), nil
}

// ApproveAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ApproveAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	att, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// Approval never flips back; approving twice is a no-op.
	if att.HRApproved {
		return mapAttendanceToResponse(att), nil
	}

	att.HRApproved = true
	if err := a.AttendanceRepository.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to approve attendance: %w", err)
	}

	updated, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get updated attendance: %w", err)
	}

	return mapAttendanceToResponse(updated), nil
}

func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:          att.ID,
		EmployeeID:  att.EmployeeID,
		Date:        att.Date.Format("2006-01-02"),
		Status:      string(att.Status),
		HRApproved:  att.HRApproved,
		LateMinutes: att.LateMinutes,
		CheckedInAt: timePtrToString(att.CheckedInAt),
		Note:        att.Note,
		CreatedAt:   att.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   att.UpdatedAt.Format(time.RFC3339),
	}
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	resolver *shiftsvc.Resolver,
	lateGraceMinutes int,
	loc *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		resolver:             resolver,
		lateGraceMinutes:     lateGraceMinutes,
		loc:                  loc,
	}
}
