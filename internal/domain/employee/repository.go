package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmployeeCode(ctx context.Context, employeeCode string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int, error)
	ListActive(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) error
	SetActive(ctx context.Context, id string, active bool) error
}
