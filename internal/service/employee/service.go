package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/employee"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:             emp.ID,
		EmployeeCode:   emp.EmployeeCode,
		FullName:       emp.FullName,
		Email:          emp.Email,
		EmploymentType: string(emp.EmploymentType),
		BaseSalary:     emp.BaseSalary.StringFixed(2),
		ShiftStart:     emp.ShiftStart,
		ShiftEnd:       emp.ShiftEnd,
		SalesTarget:    emp.SalesTarget.StringFixed(2),
		IsActive:       emp.IsActive,
		CreatedAt:      emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      emp.UpdatedAt.Format(time.RFC3339),
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Check if employee code already exists
	if _, err := s.employeeRepo.GetByEmployeeCode(ctx, req.EmployeeCode); err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee code existence: %w", err)
	}

	baseSalary, _ := decimal.NewFromString(req.BaseSalary)

	salesTarget := decimal.Zero
	if req.SalesTarget != "" {
		salesTarget, _ = decimal.NewFromString(req.SalesTarget)
	}

	newEmployee := employee.Employee{
		EmployeeCode:   req.EmployeeCode,
		FullName:       req.FullName,
		Email:          req.Email,
		EmploymentType: employee.EmploymentType(req.EmploymentType),
		BaseSalary:     baseSalary,
		ShiftStart:     req.ShiftStart,
		ShiftEnd:       req.ShiftEnd,
		SalesTarget:    salesTarget,
		IsActive:       true,
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return mapEmployeeToResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	employees, totalCount, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	return employee.ListEmployeeResponse{
		Employees:  responses,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalCount: totalCount,
	}, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	// The effective shift window after a partial update must stay a valid
	// pair; equal start and end can never be resolved.
	shiftStart := current.ShiftStart
	if req.ShiftStart != nil {
		shiftStart = *req.ShiftStart
	}
	shiftEnd := current.ShiftEnd
	if req.ShiftEnd != nil {
		shiftEnd = *req.ShiftEnd
	}
	if shiftStart == shiftEnd {
		return employee.EmployeeResponse{}, validator.ValidationErrors{{
			Field:   "shift_end",
			Message: "shift_end must differ from shift_start",
		}}
	}

	if err := s.employeeRepo.Update(ctx, req.ID, req); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	updated, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(updated), nil
}

// DeactivateEmployee implements employee.EmployeeService. Deactivated agents
// keep their history; they just stop accruing shifts, pay, and telemetry.
func (s *EmployeeServiceImpl) DeactivateEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.employeeRepo.SetActive(ctx, id, false); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to deactivate employee: %w", err)
	}

	updated, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(updated), nil
}
