package response

import (
	"errors"
	"net/http"

	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/attendance"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/employee"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/payroll"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/performance"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/sale"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is inactive", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in for this shift")
	case errors.Is(err, attendance.ErrShiftPaused):
		BadRequest(w, "Shift is paused on weekends", nil)

	// Sale domain errors
	case errors.Is(err, sale.ErrSaleNotFound):
		NotFound(w, "Sale not found")
	case errors.Is(err, sale.ErrSaleAlreadyCompleted):
		Conflict(w, "Sale is already completed")

	// Configuration-level errors
	case errors.Is(err, performance.ErrTargetsNotConfigured):
		InternalServerError(w, "No performance targets configured for this employment type")
	case errors.Is(err, payroll.ErrNoWorkingDays):
		InternalServerError(w, "Reference month has no working days")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
