package shift

import (
	"context"
)

// ShiftService resolves concrete shift windows for employees.
type ShiftService interface {
	// CurrentWindow resolves the employee's shift window for the current
	// instant in the business timezone.
	CurrentWindow(ctx context.Context, employeeID string) (WindowResponse, error)
}
