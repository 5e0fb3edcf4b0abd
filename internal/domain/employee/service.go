package employee

import (
	"context"
)

// EmployeeService defines business logic for agent roster operations
type EmployeeService interface {
	// CreateEmployee registers a new agent with shift and compensation settings
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee retrieves a single agent by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// ListEmployees lists agents with filters and pagination
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)

	// UpdateEmployee updates an existing agent
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeactivateEmployee removes an agent from payroll and scheduling
	DeactivateEmployee(ctx context.Context, id string) (EmployeeResponse, error)
}
