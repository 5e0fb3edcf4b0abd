package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in errors
	ErrAlreadyCheckedIn = errors.New("you have already checked in for this shift")
	ErrShiftPaused      = errors.New("shift is paused on weekends")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
