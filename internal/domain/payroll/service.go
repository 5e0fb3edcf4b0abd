package payroll

import (
	"context"
)

// PayrollService computes month-to-date earnings breakdowns
type PayrollService interface {
	// GetSalaryBreakdown assembles the full earnings figure for an agent as
	// of a reference date: ghost earnings before launch, performance-scored
	// earnings for elapsed days, today's live earnings, the late-policy
	// deduction and an end-of-month projection
	GetSalaryBreakdown(ctx context.Context, req GetBreakdownRequest) (SalaryBreakdownResponse, error)
}
