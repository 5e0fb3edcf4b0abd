package performance

import (
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/pkg/validator"
)

type RecordActivityRequest struct {
	EmployeeID      string `json:"employee_id"`
	Calls           int    `json:"calls"`
	TalkTimeSeconds int    `json:"talk_time_seconds"`
	LeadsApproved   int    `json:"leads_approved"`
}

func (r *RecordActivityRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Calls < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "calls",
			Message: "calls must not be negative",
		})
	}
	if r.TalkTimeSeconds < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "talk_time_seconds",
			Message: "talk_time_seconds must not be negative",
		})
	}
	if r.LeadsApproved < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "leads_approved",
			Message: "leads_approved must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DailyStatFilter struct {
	EmployeeID string  `json:"employee_id"`
	Date       *string `json:"date,omitempty"` // YYYY-MM-DD, defaults to the current shift's date
}

func (f *DailyStatFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if f.Date != nil && *f.Date != "" {
		if _, valid := validator.IsValidDate(*f.Date); !valid {
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

type DailyStatResponse struct {
	EmployeeID      string  `json:"employee_id"`
	Date            string  `json:"date"`
	Calls           int     `json:"calls"`
	TalkTimeSeconds int     `json:"talk_time_seconds"`
	LeadsApproved   int     `json:"leads_approved"`
	SalesAmount     string  `json:"sales_amount"`
	Score           float64 `json:"score"`
}
