package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/sale"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type saleRepository struct {
	db *database.DB
}

const saleColumns = `id, employee_id, customer_name, total_deal_value, amount_collected,
		   status, commission_paid, commission_amount, attributed_date, created_at, updated_at`

// Create implements sale.SaleRepository.
func (r *saleRepository) Create(ctx context.Context, newSale sale.Sale) (sale.Sale, error) {
	q := GetQuerier(ctx, r.db)

	if newSale.ID == "" {
		newSale.ID = uuid.New().String()
	}

	query := `
		INSERT INTO sales (
			id, employee_id, customer_name, total_deal_value, amount_collected,
			status, commission_paid, commission_amount, attributed_date
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newSale.ID,
		newSale.EmployeeID,
		newSale.CustomerName,
		newSale.TotalDealValue,
		newSale.AmountCollected,
		newSale.Status,
		newSale.CommissionPaid,
		newSale.CommissionAmount,
		newSale.AttributedDate,
	).Scan(&newSale.CreatedAt, &newSale.UpdatedAt)

	if err != nil {
		return sale.Sale{}, fmt.Errorf("failed to create sale: %w", err)
	}

	return newSale, nil
}

func (r *saleRepository) getByID(ctx context.Context, id string, forUpdate bool) (sale.Sale, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + saleColumns + `
		FROM sales
		WHERE id = $1
	`
	if forUpdate {
		query += " FOR UPDATE"
	}

	var found sale.Sale
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID, &found.EmployeeID, &found.CustomerName, &found.TotalDealValue, &found.AmountCollected,
		&found.Status, &found.CommissionPaid, &found.CommissionAmount, &found.AttributedDate,
		&found.CreatedAt, &found.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return sale.Sale{}, sale.ErrSaleNotFound
		}
		return sale.Sale{}, fmt.Errorf("failed to get sale by ID: %w", err)
	}

	return found, nil
}

// GetByID implements sale.SaleRepository.
func (r *saleRepository) GetByID(ctx context.Context, id string) (sale.Sale, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate implements sale.SaleRepository. Only meaningful inside a
// transaction; the row lock is released at commit or rollback.
func (r *saleRepository) GetByIDForUpdate(ctx context.Context, id string) (sale.Sale, error) {
	return r.getByID(ctx, id, true)
}

// Update implements sale.SaleRepository.
func (r *saleRepository) Update(ctx context.Context, updated sale.Sale) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE sales
		SET amount_collected = $1, status = $2, commission_paid = $3, commission_amount = $4, updated_at = $5
		WHERE id = $6
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		updated.AmountCollected, updated.Status, updated.CommissionPaid, updated.CommissionAmount,
		time.Now(), updated.ID,
	).Scan(&updatedID)

	if err != nil {
		if err == pgx.ErrNoRows {
			return sale.ErrSaleNotFound
		}
		return fmt.Errorf("failed to update sale: %w", err)
	}

	return nil
}

// List implements sale.SaleRepository.
func (r *saleRepository) List(ctx context.Context, filter sale.SaleFilter) ([]sale.Sale, int, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE clause
	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	// Employee ID filter
	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	// Status filter
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	// Attributed date filter
	if filter.Date != nil && *filter.Date != "" {
		baseWhere += fmt.Sprintf(" AND attributed_date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}

	// Count total
	countQuery := "SELECT COUNT(*) FROM sales WHERE " + baseWhere
	var total int
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count sales: %w", err)
	}

	// Build ORDER BY
	orderByField := "created_at"
	switch filter.SortBy {
	case "customer_name":
		orderByField = "customer_name"
	case "total_deal_value":
		orderByField = "total_deal_value"
	}
	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	// Build query with pagination
	selectQuery := fmt.Sprintf(`
		SELECT `+saleColumns+`
		FROM sales
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
		return nil, 0, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	var sales []sale.Sale
	for rows.Next() {
		var found sale.Sale
		err := rows.Scan(
			&found.ID, &found.EmployeeID, &found.CustomerName, &found.TotalDealValue, &found.AmountCollected,
			&found.Status, &found.CommissionPaid, &found.CommissionAmount, &found.AttributedDate,
			&found.CreatedAt, &found.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan sale: %w", err)
		}
		sales = append(sales, found)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return sales, total, nil
}

func NewSaleRepository(db *database.DB) sale.SaleRepository {
	return &saleRepository{db: db}
}
