package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/attendance"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmployeeRepo struct {
	employee.EmployeeRepository
	active []employee.Employee
}

func (s *stubEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return s.active, nil
}

type stubAttendanceRepo struct {
	attendance.AttendanceRepository
	existing  map[string]*attendance.Attendance
	lookupErr map[string]error
	created   []attendance.Attendance
}

func (s *stubAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	if err := s.lookupErr[employeeID]; err != nil {
		return nil, err
	}
	return s.existing[employeeID], nil
}

func (s *stubAttendanceRepo) Create(ctx context.Context, rec attendance.Attendance) (attendance.Attendance, error) {
	s.created = append(s.created, rec)
	return rec, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMarkAbsentCreatesMissingRecords(t *testing.T) {
	t.Parallel()

	sweepDate := day(2025, time.June, 10) // Tuesday
	checkedIn := &attendance.Attendance{EmployeeID: "emp-2", Date: sweepDate, Status: attendance.StatusOnTime}

	attendanceRepo := &stubAttendanceRepo{
		existing: map[string]*attendance.Attendance{"emp-2": checkedIn},
	}
	employeeRepo := &stubEmployeeRepo{
		active: []employee.Employee{{ID: "emp-1"}, {ID: "emp-2"}, {ID: "emp-3"}},
	}

	jobs := NewAttendanceJobs(attendanceRepo, employeeRepo, day(2025, time.June, 1), time.UTC)
	err := jobs.markAbsentFor(context.Background(), sweepDate)
	require.NoError(t, err)

	require.Len(t, attendanceRepo.created, 2)
	for _, rec := range attendanceRepo.created {
		assert.Equal(t, attendance.StatusAbsent, rec.Status)
		assert.False(t, rec.HRApproved)
		assert.Zero(t, rec.LateMinutes)
		assert.True(t, rec.Date.Equal(sweepDate))
	}
	assert.Equal(t, "emp-1", attendanceRepo.created[0].EmployeeID)
	assert.Equal(t, "emp-3", attendanceRepo.created[1].EmployeeID)
}

func TestMarkAbsentSkipsWeekend(t *testing.T) {
	t.Parallel()

	attendanceRepo := &stubAttendanceRepo{}
	employeeRepo := &stubEmployeeRepo{active: []employee.Employee{{ID: "emp-1"}}}

	jobs := NewAttendanceJobs(attendanceRepo, employeeRepo, day(2025, time.June, 1), time.UTC)
	err := jobs.markAbsentFor(context.Background(), day(2025, time.June, 14)) // Saturday
	require.NoError(t, err)

	assert.Empty(t, attendanceRepo.created)
}

func TestMarkAbsentSkipsPreLaunchDates(t *testing.T) {
	t.Parallel()

	attendanceRepo := &stubAttendanceRepo{}
	employeeRepo := &stubEmployeeRepo{active: []employee.Employee{{ID: "emp-1"}}}

	jobs := NewAttendanceJobs(attendanceRepo, employeeRepo, day(2025, time.July, 1), time.UTC)
	err := jobs.markAbsentFor(context.Background(), day(2025, time.June, 10))
	require.NoError(t, err)

	assert.Empty(t, attendanceRepo.created)
}

func TestMarkAbsentContinuesPastLookupErrors(t *testing.T) {
	t.Parallel()

	attendanceRepo := &stubAttendanceRepo{
		lookupErr: map[string]error{"emp-1": errors.New("connection reset")},
	}
	employeeRepo := &stubEmployeeRepo{
		active: []employee.Employee{{ID: "emp-1"}, {ID: "emp-2"}},
	}

	jobs := NewAttendanceJobs(attendanceRepo, employeeRepo, day(2025, time.June, 1), time.UTC)
	err := jobs.markAbsentFor(context.Background(), day(2025, time.June, 10))
	require.NoError(t, err)

	require.Len(t, attendanceRepo.created, 1)
	assert.Equal(t, "emp-2", attendanceRepo.created[0].EmployeeID)
}
