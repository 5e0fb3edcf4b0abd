package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn records an agent's arrival for the current shift, grading it
	// on time or late against the shift start
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// GetAttendance retrieves a single attendance record by ID
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)

	// ListAttendance retrieves attendance records with filters
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// UpdateAttendance lets HR revise a record's status or note
	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// ApproveAttendance marks a record as HR-approved. Approval is
	// idempotent and cannot be revoked.
	ApproveAttendance(ctx context.Context, id string) (AttendanceResponse, error)
}
