package payroll

import (
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/pkg/validator"
)

type GetBreakdownRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       *string `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
}

func (r *GetBreakdownRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Date != nil && *r.Date != "" {
		if _, valid := validator.IsValidDate(*r.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SalaryBreakdownResponse struct {
	EmployeeID    string `json:"employee_id"`
	ReferenceDate string `json:"reference_date"`

	BaseSalary          string `json:"base_salary"`
	WorkingDaysInMonth  int    `json:"working_days_in_month"`
	WorkingDaysElapsed  int    `json:"working_days_elapsed"`
	WorkingDaysRemained int    `json:"working_days_remaining"`
	DailyPotential      string `json:"daily_potential"`

	GhostDays      int    `json:"ghost_days"`
	GhostEarnings  string `json:"ghost_earnings"`
	ActiveEarnings string `json:"active_earnings"`
	TodayEarnings  string `json:"today_earnings"`

	TotalLates         int     `json:"total_lates"`
	FreeLatesUsed      int     `json:"free_lates_used"`
	FreeLatesRemaining int     `json:"free_lates_remaining"`
	ExcessLates        int     `json:"excess_lates"`
	TotalHalfDays      int     `json:"total_half_days"`
	DeductionDays      float64 `json:"deduction_days"`
	DeductionAmount    string  `json:"deduction_amount"`

	TotalEarned         string  `json:"total_earned"`
	AvgPerformanceScore float64 `json:"avg_performance_score"`
	ProjectedSalary     string  `json:"projected_salary"`
}
