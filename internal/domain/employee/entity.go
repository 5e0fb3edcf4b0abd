package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID             string
	EmployeeCode   string
	FullName       string
	Email          *string
	EmploymentType EmploymentType
	BaseSalary     decimal.Decimal
	ShiftStart     string
	ShiftEnd       string
	SalesTarget    decimal.Decimal
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type EmploymentType string

const (
	EmploymentTypeFullTime EmploymentType = "full_time"
	EmploymentTypePartTime EmploymentType = "part_time"
)

var EmploymentTypeValues = []string{
	string(EmploymentTypeFullTime),
	string(EmploymentTypePartTime),
}
