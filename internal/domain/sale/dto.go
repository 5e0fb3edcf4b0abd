package sale

import (
	"strings"

	"github.com/BytesPlatform-ops/sales-management-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateSaleRequest struct {
	EmployeeID     string `json:"employee_id"`
	CustomerName   string `json:"customer_name"`
	TotalDealValue string `json:"total_deal_value"`
	InitialPayment string `json:"initial_payment,omitempty"`
}

func (r *CreateSaleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.CustomerName) {
		errs = append(errs, validator.ValidationError{
			Field:   "customer_name",
			Message: "customer_name is required",
		})
	}

	if value, err := decimal.NewFromString(r.TotalDealValue); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "total_deal_value",
			Message: "total_deal_value must be a decimal number",
		})
	} else if !value.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "total_deal_value",
			Message: "total_deal_value must be greater than zero",
		})
	}

	if r.InitialPayment != "" {
		if payment, err := decimal.NewFromString(r.InitialPayment); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "initial_payment",
				Message: "initial_payment must be a decimal number",
			})
		} else if payment.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "initial_payment",
				Message: "initial_payment must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AddPaymentRequest struct {
	SaleID string `json:"-"`
	Amount string `json:"amount"`
}

func (r *AddPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SaleID) {
		errs = append(errs, validator.ValidationError{
			Field:   "sale_id",
			Message: "sale_id is required",
		})
	}

	if amount, err := decimal.NewFromString(r.Amount); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be a decimal number",
		})
	} else if !amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SaleResponse struct {
	ID               string `json:"id"`
	EmployeeID       string `json:"employee_id"`
	CustomerName     string `json:"customer_name"`
	TotalDealValue   string `json:"total_deal_value"`
	AmountCollected  string `json:"amount_collected"`
	Status           string `json:"status"`
	CommissionPaid   bool   `json:"commission_paid"`
	CommissionAmount string `json:"commission_amount"`
	AttributedDate   string `json:"attributed_date"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

type SaleFilter struct {
	// Search & Filter
	EmployeeID *string `json:"employee_id,omitempty"`
	Status     *string `json:"status,omitempty"`
	Date       *string `json:"date,omitempty"` // YYYY-MM-DD attributed date

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`    // created_at, customer_name, total_deal_value
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *SaleFilter) Validate() error {
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

	// Status validation
	if f.Status != nil && !validator.IsInSlice(*f.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(StatusValues, ", "),
		})
	}

	// Date validation
	if f.Date != nil && *f.Date != "" {
		if _, valid := validator.IsValidDate(*f.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	// Sort validation
	if f.SortBy != "" {
		validSortFields := []string{"created_at", "customer_name", "total_deal_value"}
		if !validator.IsInSlice(f.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: created_at, customer_name, total_deal_value",
			})
		}
	} else {
		f.SortBy = "created_at" // Default sort
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
		f.SortOrder = "desc" // Default descending (newest first)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListSaleResponse struct {
	Sales      []SaleResponse `json:"sales"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalCount int            `json:"total_count"`
}

type TargetStatusRequest struct {
	EmployeeID string  `json:"-"`
	Date       *string `json:"date,omitempty"` // YYYY-MM-DD, defaults to the current shift's attributed date
}

func (r *TargetStatusRequest) Validate() error {
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

type TargetStatusResponse struct {
	EmployeeID      string `json:"employee_id"`
	Date            string `json:"date"`
	SalesTarget     string `json:"sales_target"`
	CumulativeSales string `json:"cumulative_sales"`
	TargetHit       bool   `json:"target_hit"`
}
