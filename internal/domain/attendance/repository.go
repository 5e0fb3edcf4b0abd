package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves attendance by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate retrieves attendance for a specific employee on a
	// specific attributed date. Returns nil when no record exists.
	// Used to prevent double check-in.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, attendance Attendance) error

	// List retrieves attendance records with filters and pagination
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int, error)

	// ListByEmployeeAndRange retrieves an employee's records over an
	// inclusive date range, ordered by date
	ListByEmployeeAndRange(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]Attendance, error)
}
