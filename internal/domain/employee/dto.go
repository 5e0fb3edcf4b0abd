package employee

import (
	"strings"

	"github.com/BytesPlatform-ops/sales-management-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	EmployeeCode   string  `json:"employee_code"`
	FullName       string  `json:"full_name"`
	Email          *string `json:"email,omitempty"`
	EmploymentType string  `json:"employment_type"`
	BaseSalary     string  `json:"base_salary"`
	ShiftStart     string  `json:"shift_start"` // HH:MM
	ShiftEnd       string  `json:"shift_end"`   // HH:MM
	SalesTarget    string  `json:"sales_target"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	} else if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must look like AGT-0042 (2-4 uppercase letters, dash, 3-5 digits)",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if !validator.IsInSlice(r.EmploymentType, EmploymentTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_type",
			Message: "employment_type must be one of: " + strings.Join(EmploymentTypeValues, ", "),
		})
	}

	if salary, err := decimal.NewFromString(r.BaseSalary); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must be a decimal number",
		})
	} else if !salary.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must be greater than zero",
		})
	}

	if _, ok := validator.IsValidClock(r.ShiftStart); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_start",
			Message: "shift_start must be in HH:MM format",
		})
	}
	if _, ok := validator.IsValidClock(r.ShiftEnd); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_end",
			Message: "shift_end must be in HH:MM format",
		})
	} else if r.ShiftStart == r.ShiftEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_end",
			Message: "shift_end must differ from shift_start",
		})
	}

	if r.SalesTarget != "" {
		if target, err := decimal.NewFromString(r.SalesTarget); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "sales_target",
				Message: "sales_target must be a decimal number",
			})
		} else if target.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "sales_target",
				Message: "sales_target must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID             string  `json:"-"`
	FullName       *string `json:"full_name,omitempty"`
	Email          *string `json:"email,omitempty"`
	EmploymentType *string `json:"employment_type,omitempty"`
	BaseSalary     *string `json:"base_salary,omitempty"`
	ShiftStart     *string `json:"shift_start,omitempty"`
	ShiftEnd       *string `json:"shift_end,omitempty"`
	SalesTarget    *string `json:"sales_target,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.EmploymentType != nil && !validator.IsInSlice(*r.EmploymentType, EmploymentTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_type",
			Message: "employment_type must be one of: " + strings.Join(EmploymentTypeValues, ", "),
		})
	}

	if r.BaseSalary != nil {
		if salary, err := decimal.NewFromString(*r.BaseSalary); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "base_salary",
				Message: "base_salary must be a decimal number",
			})
		} else if !salary.IsPositive() {
			errs = append(errs, validator.ValidationError{
				Field:   "base_salary",
				Message: "base_salary must be greater than zero",
			})
		}
	}

	if r.ShiftStart != nil {
		if _, ok := validator.IsValidClock(*r.ShiftStart); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "shift_start",
				Message: "shift_start must be in HH:MM format",
			})
		}
	}
	if r.ShiftEnd != nil {
		if _, ok := validator.IsValidClock(*r.ShiftEnd); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "shift_end",
				Message: "shift_end must be in HH:MM format",
			})
		} else if r.ShiftStart != nil && *r.ShiftStart == *r.ShiftEnd {
			errs = append(errs, validator.ValidationError{
				Field:   "shift_end",
				Message: "shift_end must differ from shift_start",
			})
		}
	}

	if r.SalesTarget != nil {
		if target, err := decimal.NewFromString(*r.SalesTarget); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "sales_target",
				Message: "sales_target must be a decimal number",
			})
		} else if target.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "sales_target",
				Message: "sales_target must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	EmployeeCode   string  `json:"employee_code"`
	FullName       string  `json:"full_name"`
	Email          *string `json:"email,omitempty"`
	EmploymentType string  `json:"employment_type"`
	BaseSalary     string  `json:"base_salary"`
	ShiftStart     string  `json:"shift_start"`
	ShiftEnd       string  `json:"shift_end"`
	SalesTarget    string  `json:"sales_target"`
	IsActive       bool    `json:"is_active"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

type EmployeeFilter struct {
	EmploymentType *string `json:"employment_type,omitempty"`
	IsActive       *bool   `json:"is_active,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`    // employee_code, full_name, created_at
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors

	// Page validation
	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	// Limit validation
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.EmploymentType != nil && !validator.IsInSlice(*f.EmploymentType, EmploymentTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_type",
			Message: "employment_type must be one of: " + strings.Join(EmploymentTypeValues, ", "),
		})
	}

	// Sort validation
	if f.SortBy != "" {
		validSortFields := []string{"employee_code", "full_name", "created_at"}
		if !validator.IsInSlice(f.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: employee_code, full_name, created_at",
			})
		}
	} else {
		f.SortBy = "employee_code" // Default sort
	}

	if f.SortOrder != "" {
		validSortOrders := []string{"asc", "desc"}
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), validSortOrders) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "asc" // Default ascending
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListEmployeeResponse struct {
	Employees  []EmployeeResponse `json:"employees"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalCount int                `json:"total_count"`
}
