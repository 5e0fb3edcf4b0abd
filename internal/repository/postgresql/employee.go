package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/employee"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	if newEmployee.ID == "" {
		newEmployee.ID = uuid.New().String()
	}

	query := `
		INSERT INTO employees (
			id, employee_code, full_name, email, employment_type,
			base_salary, shift_start, shift_end, sales_target, is_active
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newEmployee.ID,
		newEmployee.EmployeeCode,
		newEmployee.FullName,
		newEmployee.Email,
		newEmployee.EmploymentType,
		newEmployee.BaseSalary,
		newEmployee.ShiftStart,
		newEmployee.ShiftEnd,
		newEmployee.SalesTarget,
		newEmployee.IsActive,
	).Scan(&newEmployee.CreatedAt, &newEmployee.UpdatedAt)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return newEmployee, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_code, full_name, email, employment_type,
			   base_salary, shift_start, shift_end, sales_target, is_active,
			   created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.EmployeeCode, &emp.FullName, &emp.Email, &emp.EmploymentType,
		&emp.BaseSalary, &emp.ShiftStart, &emp.ShiftEnd, &emp.SalesTarget, &emp.IsActive,
		&emp.CreatedAt, &emp.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return emp, nil
}

// GetByEmployeeCode implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmployeeCode(ctx context.Context, employeeCode string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_code, full_name, email, employment_type,
			   base_salary, shift_start, shift_end, sales_target, is_active,
			   created_at, updated_at
		FROM employees
		WHERE employee_code = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, employeeCode).Scan(
		&emp.ID, &emp.EmployeeCode, &emp.FullName, &emp.Email, &emp.EmploymentType,
		&emp.BaseSalary, &emp.ShiftStart, &emp.ShiftEnd, &emp.SalesTarget, &emp.IsActive,
		&emp.CreatedAt, &emp.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by code: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int, error) {
	q := GetQuerier(ctx, e.db)

	// Build WHERE clause
	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	// Employment type filter
	if filter.EmploymentType != nil && *filter.EmploymentType != "" {
		baseWhere += fmt.Sprintf(" AND employment_type = $%d", argIdx)
		args = append(args, *filter.EmploymentType)
		argIdx++
	}

	// Active filter
	if filter.IsActive != nil {
		baseWhere += fmt.Sprintf(" AND is_active = $%d", argIdx)
		args = append(args, *filter.IsActive)
		argIdx++
	}

	// Count total
	countQuery := "SELECT COUNT(*) FROM employees WHERE " + baseWhere
	var total int
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	// Build ORDER BY
	orderByField := "employee_code"
	switch filter.SortBy {
	case "full_name":
		orderByField = "full_name"
	case "created_at":
		orderByField = "created_at"
	}
	sortOrder := "ASC"
	if strings.ToLower(filter.SortOrder) == "desc" {
		sortOrder = "DESC"
	}

	// Build query with pagination
	selectQuery := fmt.Sprintf(`
		SELECT id, employee_code, full_name, email, employment_type,
			   base_salary, shift_start, shift_end, sales_target, is_active,
			   created_at, updated_at
		FROM employees
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, baseWhere, orderByField, sortOrder, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.EmployeeCode, &emp.FullName, &emp.Email, &emp.EmploymentType,
			&emp.BaseSalary, &emp.ShiftStart, &emp.ShiftEnd, &emp.SalesTarget, &emp.IsActive,
			&emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// ListActive implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_code, full_name, email, employment_type,
			   base_salary, shift_start, shift_end, sales_target, is_active,
			   created_at, updated_at
		FROM employees
		WHERE is_active = TRUE
		ORDER BY employee_code
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.EmployeeCode, &emp.FullName, &emp.Email, &emp.EmploymentType,
			&emp.BaseSalary, &emp.ShiftStart, &emp.ShiftEnd, &emp.SalesTarget, &emp.IsActive,
			&emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, e.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.FullName != nil {
		updates = append(updates, fmt.Sprintf("full_name = $%d", argIdx))
		args = append(args, *req.FullName)
		argIdx++
	}
	if req.Email != nil {
		updates = append(updates, fmt.Sprintf("email = $%d", argIdx))
		args = append(args, *req.Email)
		argIdx++
	}
	if req.EmploymentType != nil {
		updates = append(updates, fmt.Sprintf("employment_type = $%d", argIdx))
		args = append(args, *req.EmploymentType)
		argIdx++
	}
	if req.BaseSalary != nil {
		updates = append(updates, fmt.Sprintf("base_salary = $%d", argIdx))
		args = append(args, *req.BaseSalary)
		argIdx++
	}
	if req.ShiftStart != nil {
		updates = append(updates, fmt.Sprintf("shift_start = $%d", argIdx))
		args = append(args, *req.ShiftStart)
		argIdx++
	}
	if req.ShiftEnd != nil {
		updates = append(updates, fmt.Sprintf("shift_end = $%d", argIdx))
		args = append(args, *req.ShiftEnd)
		argIdx++
	}
	if req.SalesTarget != nil {
		updates = append(updates, fmt.Sprintf("sales_target = $%d", argIdx))
		args = append(args, *req.SalesTarget)
		argIdx++
	}

	if len(updates) == 0 {
		return nil
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++

	args = append(args, id)

	query := "UPDATE employees SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING id", argIdx)

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

// SetActive implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET is_active = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, active, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to set employee active flag: %w", err)
	}

	return nil
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}
